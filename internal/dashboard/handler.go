package dashboard

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

// Housekeeping godoc
// @Summary      Housekeeping dashboard
// @Description  Weekly shift, task and attendance figures for the housekeeping staff of the tenant.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Housekeeping
// @Failure      401  {object}  api.ErrorResponse
// @Failure      403  {object}  api.ErrorResponse
// @Router       /dashboard/housekeeping [get]
func (h *Handler) Housekeeping(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	d, err := h.service.Housekeeping(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
