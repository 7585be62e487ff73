package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/services"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/utils"
)

type IncrementHandler struct {
	policy services.IncrementPolicyInterface
}

func NewIncrementHandler(policy services.IncrementPolicyInterface) *IncrementHandler {
	return &IncrementHandler{policy: policy}
}

func (h *IncrementHandler) NextIncrement(c *gin.Context) {
	memberId, err := utils.ParseObjectID(c.Param("MemberId"))
	if err != nil {
		respondError(c, err)
		return
	}

	suggestion, err := h.policy.NextIncrement(c.Request.Context(), memberId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
