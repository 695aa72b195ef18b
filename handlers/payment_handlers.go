package handlers

import (
	"splitledger/middleware"
	"splitledger/models"
	"splitledger/utils"

	"github.com/gin-gonic/gin"
)

// CreatePayment handles POST /groups/:id/payments
func (h *Handlers) CreatePayment(c *gin.Context) {
	var request models.PaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	payment, err := h.PaymentService.RecordPayment(c.Param("id"), middleware.CurrentUser(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payment)
}

// ListPayments handles GET /groups/:id/payments
func (h *Handlers) ListPayments(c *gin.Context) {
	payments, err := h.PaymentService.ListPayments(c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, payments)
}
