package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/services"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/utils"
)

type LoanHandler struct {
	lifecycleService services.LoanLifecycleServiceInterface
}

func NewLoanHandler(lifecycleService services.LoanLifecycleServiceInterface) *LoanHandler {
	return &LoanHandler{lifecycleService: lifecycleService}
}

func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var request models.CreateLoanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loanId, err := h.lifecycleService.CreateLoan(c.Request.Context(), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"loanId": loanId.Hex()})
}

func (h *LoanHandler) ApproveLoan(c *gin.Context) {
	var request models.ApproveLoanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan, err := h.lifecycleService.ApproveLoan(c.Request.Context(), c.Param("LoanId"), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loan)
}

func (h *LoanHandler) RejectLoan(c *gin.Context) {
	var request models.RejectLoanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan, err := h.lifecycleService.RejectLoan(c.Request.Context(), c.Param("LoanId"), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loan)
}

func (h *LoanHandler) WriteOffLoan(c *gin.Context) {
	var request models.WriteOffLoanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan, err := h.lifecycleService.WriteOffLoan(c.Request.Context(), c.Param("LoanId"), request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loan)
}

func respondError(c *gin.Context, err error) {
	c.JSON(utils.HTTPStatusForError(err), gin.H{
		"error":     err.Error(),
		"errorCode": utils.GetErrorCode(err),
	})
}
