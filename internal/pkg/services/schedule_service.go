package services

import (
	"time"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

// ScheduleService materializes the repayment plan for an approved loan. It is
// pure: identical inputs always produce the identical schedule and nothing is
// persisted here. The lifecycle service calls it exactly once per loan.
type ScheduleService struct {
}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

// GenerateSchedule splits principal and interest across termWeeks weekly
// installments, or a single end-of-term installment. Installments 1..n-1 get
// the per-week amount floored to the cent; the final installment absorbs the
// rounding remainder so the schedule sums back to principal + interest
// exactly. Due dates are issueDate + 7*k days.
func (s *ScheduleService) GenerateSchedule(principal money.Money, interest money.Money, issueDate time.Time, termWeeks int, installmentType models.InstallmentType) []models.Installment {
	if termWeeks < 1 {
		return nil
	}

	if installmentType == models.InstallmentEndOfTerm {
		return []models.Installment{{
			Sequence:     1,
			DueDate:      money.AddWeeks(issueDate, termWeeks),
			PrincipalDue: principal,
			InterestDue:  interest,
			Total:        principal.Add(interest),
			AmountPaid:   money.Zero,
		}}
	}

	principalParts := principal.SplitEven(termWeeks)
	interestParts := interest.SplitEven(termWeeks)

	installments := make([]models.Installment, termWeeks)
	for k := 0; k < termWeeks; k++ {
		installments[k] = models.Installment{
			Sequence:     k + 1,
			DueDate:      money.AddWeeks(issueDate, k+1),
			PrincipalDue: principalParts[k],
			InterestDue:  interestParts[k],
			Total:        principalParts[k].Add(interestParts[k]),
			AmountPaid:   money.Zero,
		}
	}
	return installments
}
