package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lightlabcreation/gym-backend/internal/apperr"
	"github.com/lightlabcreation/gym-backend/internal/logger"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
	Code  string `json:"code,omitempty" example:"ClassFull"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}

// RespondError writes err using its apperr kind. Errors without one are
// logged and reported as a generic 500.
func RespondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if appErr, ok := apperr.As(err); ok && status != http.StatusInternalServerError {
		c.JSON(status, ErrorResponse{Error: appErr.Message, Code: string(appErr.Code)})
		return
	}

	logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// ParamID reads a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name, Code: string(apperr.CodeValidation)})
		return 0, false
	}
	return id, true
}
