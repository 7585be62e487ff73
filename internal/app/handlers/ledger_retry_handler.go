package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/Cysparks-Inc/lendy-sub000/internal/app"
)

type LedgerRetryHandler struct {
	service app.LedgerRetryService
}

func NewLedgerRetryHandler(service app.LedgerRetryService) *LedgerRetryHandler {
	return &LedgerRetryHandler{service: service}
}

func (h *LedgerRetryHandler) RetryLedgerEvents(c *gin.Context) {

	successMessages, failedMessages, err := h.service.RetryLedgerEvents(c.Request.Context())
	if err != nil && len(successMessages) > 0 {
		c.JSON(http.StatusOK, gin.H{"Success Messages": successMessages, "failedMessages": failedMessages, "error": err})
		return
	} else if err != nil && len(successMessages) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Success Messages": successMessages, "failedMessages": failedMessages})
}
