package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

// OverdueReportService is the read-only classifier over active loans. Two
// computation modes ship because two report consumers exist: the legacy one
// measures days overdue from the loan's own due date, the installment-aware
// one from the earliest unpaid installment. Overdue amounts always come from
// installments in both modes.
type OverdueReportService struct {
	loanRepo        LoanScopeStoreInterface
	installmentRepo InstallmentStoreInterface
	thresholds      consts.RiskThresholds
}

func NewOverdueReportService(loanRepo LoanScopeStoreInterface, installmentRepo InstallmentStoreInterface, thresholds consts.RiskThresholds) *OverdueReportService {
	return &OverdueReportService{
		loanRepo:        loanRepo,
		installmentRepo: installmentRepo,
		thresholds:      thresholds,
	}
}

func (s *OverdueReportService) OverdueReport(ctx context.Context, scope string, scopeId primitive.ObjectID, mode string) ([]models.OverdueLoanView, error) {
	loans, err := s.loanRepo.ActiveLoansByScope(ctx, scope, scopeId)
	if err != nil {
		logger.Error(ctx, "OverdueReport : error fetching active loans for scope %v: %v", scope, err)
		return nil, consts.ErrorStoreTimeout
	}

	today := money.DateOnly(time.Now())
	views := make([]models.OverdueLoanView, 0, len(loans))

	for i := range loans {
		view, err := s.classify(ctx, &loans[i], today, mode)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *OverdueReportService) classify(ctx context.Context, loan *models.Loans, today time.Time, mode string) (*models.OverdueLoanView, error) {
	unpaid, err := s.installmentRepo.UnpaidInstallmentsByLoan(ctx, loan.LoanId)
	if err != nil {
		return nil, consts.ErrorStoreTimeout
	}

	overdueAmount := money.Zero
	var nextDueDate *time.Time
	for i := range unpaid {
		if nextDueDate == nil {
			due := unpaid[i].DueDate
			nextDueDate = &due
		}
		if unpaid[i].DueDate.Before(today) {
			overdueAmount = overdueAmount.Add(unpaid[i].RemainingDue())
		}
	}

	daysOverdue := 0
	switch mode {
	case consts.OverdueModeLoanDueDate:
		if loan.DueDate != nil {
			daysOverdue = money.DaysBetween(*loan.DueDate, today)
		}
	default:
		if nextDueDate != nil {
			daysOverdue = money.DaysBetween(*nextDueDate, today)
		}
	}
	if daysOverdue < 0 {
		daysOverdue = 0
	}

	return &models.OverdueLoanView{
		LoanId:        loan.LoanId,
		MemberId:      loan.MemberId,
		BranchId:      loan.BranchId,
		OfficerId:     loan.OfficerId,
		Program:       loan.Program,
		DaysOverdue:   daysOverdue,
		OverdueAmount: overdueAmount,
		Balance:       loan.CurrentBalance,
		RiskTier:      s.thresholds.Tier(daysOverdue),
		NextDueDate:   nextDueDate,
	}, nil
}
