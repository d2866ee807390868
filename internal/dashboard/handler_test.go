package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lightlabcreation/gym-backend/internal/apperr"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Housekeeping(ctx context.Context, userID int) (*Housekeeping, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Housekeeping), args.Error(1)
}

func serveHousekeeping(svc Service, userID int) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	r.GET("/dashboard/housekeeping", func(c *gin.Context) {
		if userID > 0 {
			c.Set("user_id", userID)
		}
		h.Housekeeping(c)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/housekeeping", nil))
	return w
}

func TestHandler_Housekeeping(t *testing.T) {
	svc := new(MockService)
	svc.On("Housekeeping", mock.Anything, 8).Return(&Housekeeping{
		WeeklyRoster: []RosterEntry{},
		TaskGraph:    []TaskDay{},
	}, nil)

	w := serveHousekeeping(svc, 8)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"weeklyRoster":[]`)
	svc.AssertExpectations(t)
}

func TestHandler_Housekeeping_WrongRole(t *testing.T) {
	svc := new(MockService)
	svc.On("Housekeeping", mock.Anything, 9).Return(nil, apperr.Unauthorized("Unauthorized: Not a housekeeping user"))

	w := serveHousekeeping(svc, 9)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Not a housekeeping user")
}

func TestHandler_Housekeeping_Anonymous(t *testing.T) {
	svc := new(MockService)

	w := serveHousekeeping(svc, 0)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "Housekeeping", mock.Anything, mock.Anything)
}
