package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lightlabcreation/gym-backend/internal/api"
	"github.com/lightlabcreation/gym-backend/internal/apperr"
)

type MockService struct{ mock.Mock }

func (m *MockService) BookClass(ctx context.Context, userID, scheduleID int) (*Booking, error) {
	args := m.Called(ctx, userID, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockService) ListBookableSchedules(ctx context.Context, memberID *int, adminID int) ([]BookableSchedule, error) {
	args := m.Called(ctx, memberID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookableSchedule), args.Error(1)
}

func (m *MockService) CancelBooking(ctx context.Context, memberID, scheduleID int) error {
	return m.Called(ctx, memberID, scheduleID).Error(0)
}

func (m *MockService) MemberBookings(ctx context.Context, memberID int) ([]MemberBooking, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]MemberBooking), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", 30)
		c.Set("admin_id", 1)
		c.Next()
	})

	h := NewHandler(svc)
	r.GET("/schedules", h.ListSchedules)
	r.POST("/schedules/:scheduleID/book", h.BookClass)
	r.GET("/members/:memberID/bookings", h.MemberBookings)
	r.DELETE("/members/:memberID/bookings/:scheduleID", h.CancelBooking)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestBookClassHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockService)
		svc.On("BookClass", mock.Anything, 30, 7).Return(&Booking{ID: 1, MemberID: 3, ScheduleID: 7}, nil)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/schedules/7/book", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"already booked", apperr.ErrAlreadyBooked, http.StatusBadRequest, "AlreadyBooked"},
		{"full", apperr.ErrClassFull, http.StatusBadRequest, "ClassFull"},
		{"session limit", apperr.SessionLimitReached(3, 3), http.StatusBadRequest, "SessionLimitReached"},
		{"missing schedule", apperr.ErrScheduleNotFound, http.StatusNotFound, "ScheduleNotFound"},
		{"database", errors.New("connection reset"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("BookClass", mock.Anything, 30, 7).Return(nil, tt.err)

			w := httptest.NewRecorder()
			setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/schedules/7/book", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}

	t.Run("session limit message", func(t *testing.T) {
		svc := new(MockService)
		svc.On("BookClass", mock.Anything, 30, 7).Return(nil, apperr.SessionLimitReached(3, 3))

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/schedules/7/book", nil))

		assert.Equal(t, "session limit reached: you have used 3/3 sessions", decodeError(t, w).Error)
	})

	t.Run("bad id", func(t *testing.T) {
		svc := new(MockService)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/schedules/abc/book", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "BookClass", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListSchedulesHandler(t *testing.T) {
	t.Run("with member", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListBookableSchedules", mock.Anything, mock.MatchedBy(func(id *int) bool {
			return id != nil && *id == 3
		}), 1).Return([]BookableSchedule{{ID: 7, IsBookable: true}}, nil)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedules?memberId=3", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var rows []BookableSchedule
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.True(t, rows[0].IsBookable)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListBookableSchedules", mock.Anything, (*int)(nil), 1).Return([]BookableSchedule{}, nil)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedules", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid member id", func(t *testing.T) {
		svc := new(MockService)

		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedules?memberId=x", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ValidationError", decodeError(t, w).Code)
	})
}

func TestCancelBookingHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("CancelBooking", mock.Anything, 3, 7).Return(nil).Once()
	svc.On("CancelBooking", mock.Anything, 3, 8).Return(apperr.ErrBookingNotFound).Once()
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/members/3/bookings/7", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Booking cancelled successfully")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/members/3/bookings/8", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "BookingNotFound", decodeError(t, w).Code)
}

func TestMemberBookingsHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("MemberBookings", mock.Anything, 3).Return([]MemberBooking{{Booking: Booking{ID: 1}}}, nil)

	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/members/3/bookings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
