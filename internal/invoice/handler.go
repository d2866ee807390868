package invoice

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lightlabcreation/gym-backend/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetInvoice godoc
// @Summary      Get invoice
// @Description  Builds the invoice for a payment, splitting the paid amount into subtotal, CGST and SGST.
// @Tags         invoices
// @Security     BearerAuth
// @Produce      json
// @Param        paymentID  path      int  true  "Payment ID"
// @Success      200        {object}  Invoice
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /invoices/{paymentID} [get]
func (h *Handler) GetInvoice(c *gin.Context) {
	paymentID, ok := api.ParamID(c, "paymentID")
	if !ok {
		return
	}

	inv, err := h.service.ComputeInvoice(c.Request.Context(), paymentID)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, inv)
}
