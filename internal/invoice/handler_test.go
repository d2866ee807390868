package invoice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lightlabcreation/gym-backend/internal/apperr"
)

type MockService struct{ mock.Mock }

func (m *MockService) ComputeInvoice(ctx context.Context, paymentID int) (*Invoice, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Invoice), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/invoices/:paymentID", NewHandler(svc).GetInvoice)
	return r
}

func TestGetInvoiceHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("ComputeInvoice", mock.Anything, 12).Return(&Invoice{PaymentID: 12, Subtotal: 1000, CGSTAmount: 90}, nil)
	svc.On("ComputeInvoice", mock.Anything, 13).Return(nil, apperr.ErrPaymentNotFound)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/12", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1000.0, body["subtotal"])
	assert.Equal(t, 90.0, body["cgstAmount"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/13", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PaymentNotFound")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/zero", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
