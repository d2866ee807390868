package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lightlabcreation/gym-backend/internal/api"
	"github.com/lightlabcreation/gym-backend/internal/apperr"
	"github.com/lightlabcreation/gym-backend/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// BookClass godoc
// @Summary      Book a class
// @Description  Books the scheduled class for the member profile of the logged in user.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        scheduleID  path      int  true  "Schedule ID"
// @Success      201         {object}  Booking
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Failure      500         {object}  api.ErrorResponse
// @Router       /schedules/{scheduleID}/book [post]
func (h *Handler) BookClass(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	scheduleID, ok := api.ParamID(c, "scheduleID")
	if !ok {
		return
	}

	b, err := h.service.BookClass(c.Request.Context(), userID, scheduleID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ListSchedules godoc
// @Summary      List bookable schedules
// @Description  Lists the tenant's class schedules with the member's booking state.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        memberId  query     int  false  "Member ID"
// @Success      200       {array}   BookableSchedule
// @Failure      400       {object}  api.ErrorResponse
// @Router       /schedules [get]
func (h *Handler) ListSchedules(c *gin.Context) {
	adminID, _ := auth.GetAdminID(c)

	var memberID *int
	if raw := c.Query("memberId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			api.RespondError(c, apperr.Validation("memberId must be a number"))
			return
		}
		memberID = &id
	}

	rows, err := h.service.ListBookableSchedules(c.Request.Context(), memberID, adminID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        memberID    path      int  true  "Member ID"
// @Param        scheduleID  path      int  true  "Schedule ID"
// @Success      200         {object}  CancelBookingResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /members/{memberID}/bookings/{scheduleID} [delete]
func (h *Handler) CancelBooking(c *gin.Context) {
	memberID, ok := api.ParamID(c, "memberID")
	if !ok {
		return
	}
	scheduleID, ok := api.ParamID(c, "scheduleID")
	if !ok {
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), memberID, scheduleID); err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CancelBookingResponse{Message: "Booking cancelled successfully"})
}

// MemberBookings godoc
// @Summary      List a member's bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {array}   MemberBooking
// @Router       /members/{memberID}/bookings [get]
func (h *Handler) MemberBookings(c *gin.Context) {
	memberID, ok := api.ParamID(c, "memberID")
	if !ok {
		return
	}

	rows, err := h.service.MemberBookings(c.Request.Context(), memberID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
