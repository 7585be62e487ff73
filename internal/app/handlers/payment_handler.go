package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/services"
)

type PaymentHandler struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentHandler(paymentService services.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var request models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.paymentService.RecordPayment(c.Request.Context(), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
