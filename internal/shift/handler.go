package shift

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lightlabcreation/gym-backend/internal/api"
	"github.com/lightlabcreation/gym-backend/internal/auth"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateShiftBatch godoc
// @Summary      Create shifts
// @Description  Creates one shift per staff id. staffIds accepts an array, a comma separated string or a single id.
// @Tags         shifts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateShiftBatchRequest  true  "Shift batch"
// @Success      201      {object}  CreateShiftsResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/shifts [post]
func (h *Handler) CreateShiftBatch(c *gin.Context) {
	var req CreateShiftBatchRequest
	if !api.BindJSON(c, &req) {
		return
	}
	if userID, ok := auth.GetUserID(c); ok {
		req.CreatedByID = &userID
	}

	shifts, err := h.service.CreateShiftBatch(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateShiftsResponse{Message: "Shifts created successfully!", Data: shifts})
}

// ListShifts godoc
// @Summary      List shifts of the tenant
// @Tags         shifts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Shift
// @Failure      400  {object}  api.ErrorResponse
// @Router       /admin/shifts [get]
func (h *Handler) ListShifts(c *gin.Context) {
	adminID, _ := auth.GetAdminID(c)

	shifts, err := h.service.ListShifts(c.Request.Context(), adminID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// ExportRoster godoc
// @Summary      Export shift roster
// @Tags         shifts
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /admin/shifts/export [get]
func (h *Handler) ExportRoster(c *gin.Context) {
	adminID, _ := auth.GetAdminID(c)

	var buf bytes.Buffer
	if err := h.service.ExportRoster(c.Request.Context(), adminID, &buf); err != nil {
		api.RespondError(c, err)
		return
	}

	fileName := fmt.Sprintf("shift_roster_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GetShift godoc
// @Summary      Get shift
// @Tags         shifts
// @Security     BearerAuth
// @Produce      json
// @Param        shiftID  path      int  true  "Shift ID"
// @Success      200      {object}  Shift
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/shifts/{shiftID} [get]
func (h *Handler) GetShift(c *gin.Context) {
	id, ok := api.ParamID(c, "shiftID")
	if !ok {
		return
	}

	sh, err := h.service.GetShift(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sh)
}

// ListByStaff godoc
// @Summary      List shifts of a staff member
// @Tags         shifts
// @Security     BearerAuth
// @Produce      json
// @Param        staffID  path      int  true  "Staff ID"
// @Success      200      {array}   Shift
// @Router       /shifts/staff/{staffID} [get]
func (h *Handler) ListByStaff(c *gin.Context) {
	staffID, ok := api.ParamID(c, "staffID")
	if !ok {
		return
	}

	shifts, err := h.service.ListByStaff(c.Request.Context(), staffID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// UpdateShift godoc
// @Summary      Update shift
// @Tags         shifts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        shiftID  path      int                 true  "Shift ID"
// @Param        request  body      UpdateShiftRequest  true  "Fields to change"
// @Success      200      {object}  Shift
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/shifts/{shiftID} [put]
func (h *Handler) UpdateShift(c *gin.Context) {
	id, ok := api.ParamID(c, "shiftID")
	if !ok {
		return
	}

	var req UpdateShiftRequest
	if !api.BindJSON(c, &req) {
		return
	}

	sh, err := h.service.UpdateShift(c.Request.Context(), id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sh)
}

// UpdateShiftStatus godoc
// @Summary      Approve or reject a shift
// @Tags         shifts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        shiftID  path      int                  true  "Shift ID"
// @Param        request  body      UpdateStatusRequest  true  "New status"
// @Success      200      {object}  Shift
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/shifts/{shiftID}/status [patch]
func (h *Handler) UpdateShiftStatus(c *gin.Context) {
	id, ok := api.ParamID(c, "shiftID")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !api.BindJSON(c, &req) {
		return
	}

	sh, err := h.service.UpdateShiftStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sh)
}

// DeleteShift godoc
// @Summary      Delete shift
// @Tags         shifts
// @Security     BearerAuth
// @Produce      json
// @Param        shiftID  path      int  true  "Shift ID"
// @Success      200      {object}  api.MessageResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/shifts/{shiftID} [delete]
func (h *Handler) DeleteShift(c *gin.Context) {
	id, ok := api.ParamID(c, "shiftID")
	if !ok {
		return
	}

	if err := h.service.DeleteShift(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Shift deleted"})
}
