package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/services"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/utils"
)

type OverdueReportHandler struct {
	overdueService services.OverdueReportServiceInterface
}

func NewOverdueReportHandler(overdueService services.OverdueReportServiceInterface) *OverdueReportHandler {
	return &OverdueReportHandler{overdueService: overdueService}
}

// OverdueReport serves both report styles: Mode=loan_due_date for the legacy
// view, Mode=installment (the default) for the unified installment-aware one.
func (h *OverdueReportHandler) OverdueReport(c *gin.Context) {
	scope := c.DefaultQuery("Scope", consts.ScopeGlobal)
	mode := c.DefaultQuery("Mode", consts.OverdueModeInstallment)

	scopeId := primitive.NilObjectID
	if scope != consts.ScopeGlobal {
		id, err := utils.ParseObjectID(c.Query("ScopeId"))
		if err != nil {
			respondError(c, err)
			return
		}
		scopeId = id
	}

	views, err := h.overdueService.OverdueReport(c.Request.Context(), scope, scopeId, mode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loans": views, "count": len(views)})
}
