package attendance

import (
	"net/http"
	"time"

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

// CheckIn godoc
// @Summary      Member check-in
// @Tags         attendance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckInRequest  true  "Check-in"
// @Success      201      {object}  Attendance
// @Failure      400      {object}  api.ErrorResponse
// @Router       /attendance/checkin [post]
func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if !api.BindJSON(c, &req) {
		return
	}

	a, err := h.service.CheckIn(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// CheckOut godoc
// @Summary      Member check-out
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Attendance ID"
// @Success      200  {object}  Attendance
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /attendance/checkout/{id} [put]
func (h *Handler) CheckOut(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.CheckOut(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) ListByMember(c *gin.Context) {
	memberID, ok := api.ParamID(c, "memberID")
	if !ok {
		return
	}

	rows, err := h.service.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Daily godoc
// @Summary      Daily attendance report
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Param        date    query     string  false  "Day (YYYY-MM-DD), defaults to today"
// @Param        search  query     string  false  "Member name filter"
// @Param        status  query     string  false  "Status filter"
// @Success      200     {array}   Attendance
// @Router       /attendance/daily [get]
func (h *Handler) Daily(c *gin.Context) {
	adminID, _ := auth.GetAdminID(c)
	f := DailyFilter{
		AdminID: adminID,
		Search:  c.Query("search"),
		Status:  c.Query("status"),
	}
	if d := c.Query("date"); d != "" {
		day, err := time.Parse("2006-01-02", d)
		if err != nil {
			api.RespondError(c, apperr.Validation("date must be YYYY-MM-DD"))
			return
		}
		f.Date = day
	}

	rows, err := h.service.Daily(c.Request.Context(), f)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) TodaySummary(c *gin.Context) {
	adminID, _ := auth.GetAdminID(c)

	s, err := h.service.TodaySummary(c.Request.Context(), adminID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Attendance deleted"})
}
