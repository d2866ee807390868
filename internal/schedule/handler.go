package schedule

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lightlabcreation/gym-backend/internal/api"
	"github.com/lightlabcreation/gym-backend/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateSchedule godoc
// @Summary      Create class schedule
// @Tags         schedules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateScheduleRequest  true  "Schedule"
// @Success      201      {object}  Schedule
// @Failure      400      {object}  api.ErrorResponse
// @Router       /admin/schedules [post]
func (h *Handler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if !api.BindJSON(c, &req) {
		return
	}
	if req.AdminID == 0 {
		req.AdminID, _ = auth.GetAdminID(c)
	}

	sch, err := h.service.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sch)
}

// ListSchedules godoc
// @Summary      List class schedules of the tenant
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Summary
// @Router       /admin/schedules [get]
func (h *Handler) ListSchedules(c *gin.Context) {
	adminID, _ := auth.GetAdminID(c)

	rows, err := h.service.ListSchedules(c.Request.Context(), adminID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetSchedule godoc
// @Summary      Get class schedule
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Param        scheduleID  path      int  true  "Schedule ID"
// @Success      200         {object}  Schedule
// @Failure      404         {object}  api.ErrorResponse
// @Router       /schedules/{scheduleID} [get]
func (h *Handler) GetSchedule(c *gin.Context) {
	id, ok := api.ParamID(c, "scheduleID")
	if !ok {
		return
	}

	sch, err := h.service.GetSchedule(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sch)
}

// UpdateSchedule godoc
// @Summary      Update class schedule
// @Description  Partial update. Only the fields present in the body are changed.
// @Tags         schedules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        scheduleID  path      int                    true  "Schedule ID"
// @Param        request     body      UpdateScheduleRequest  true  "Fields to change"
// @Success      200         {object}  Schedule
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /admin/schedules/{scheduleID} [put]
func (h *Handler) UpdateSchedule(c *gin.Context) {
	id, ok := api.ParamID(c, "scheduleID")
	if !ok {
		return
	}
	var req UpdateScheduleRequest
	if !api.BindJSON(c, &req) {
		return
	}

	sch, err := h.service.UpdateSchedule(c.Request.Context(), id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sch)
}

// DeleteSchedule godoc
// @Summary      Delete class schedule and its bookings
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Param        scheduleID  path      int  true  "Schedule ID"
// @Success      200         {object}  api.MessageResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /admin/schedules/{scheduleID} [delete]
func (h *Handler) DeleteSchedule(c *gin.Context) {
	id, ok := api.ParamID(c, "scheduleID")
	if !ok {
		return
	}

	if err := h.service.DeleteSchedule(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Class schedule deleted"})
}

func (h *Handler) CreateClassType(c *gin.Context) {
	var req CreateClassTypeRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ct, err := h.service.CreateClassType(c.Request.Context(), req.Name)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ct)
}

func (h *Handler) ListClassTypes(c *gin.Context) {
	types, err := h.service.ListClassTypes(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// ListTrainers godoc
// @Summary      Trainers available for classes and personal plans
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Trainer
// @Router       /admin/trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	adminID, _ := auth.GetAdminID(c)

	trainers, err := h.service.ListTrainers(c.Request.Context(), adminID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}
