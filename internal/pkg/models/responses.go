package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

// IncrementSuggestion is the policy answer to "how much may this member borrow
// next". CanBorrowLess permits requesting strictly below Amount, never above.
type IncrementSuggestion struct {
	Level              int         `json:"level"`
	Amount             money.Money `json:"amount"`
	EligibleTermsWeeks []int       `json:"eligibleTermsWeeks"`
	CanBorrowLess      bool        `json:"canBorrowLess"`
}

// LoanValidationResult carries the policy verdict on a concrete request. For
// elevated roles an out-of-policy request comes back IsValid with the corrected
// figures in the suggestion fields instead of a hard rejection.
type LoanValidationResult struct {
	IsValid         bool        `json:"isValid"`
	SuggestedAmount money.Money `json:"suggestedAmount"`
	SuggestedWeeks  []int       `json:"suggestedWeeks"`
	ErrorMessage    string      `json:"errorMessage,omitempty"`
}

type PaymentResult struct {
	PaymentId           primitive.ObjectID   `json:"paymentId"`
	InstallmentsUpdated []primitive.ObjectID `json:"installmentsUpdated"`
	NewBalance          money.Money          `json:"newBalance"`
	ExcessCredit        money.Money          `json:"excessCredit"`
	LoanClosed          bool                 `json:"loanClosed"`
}

type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskMedium   RiskTier = "medium"
	RiskHigh     RiskTier = "high"
	RiskCritical RiskTier = "critical"
)

type OverdueLoanView struct {
	LoanId        primitive.ObjectID `json:"loanId"`
	MemberId      primitive.ObjectID `json:"memberId"`
	BranchId      primitive.ObjectID `json:"branchId"`
	OfficerId     primitive.ObjectID `json:"officerId"`
	Program       LoanProgram        `json:"program"`
	DaysOverdue   int                `json:"daysOverdue"`
	OverdueAmount money.Money        `json:"overdueAmount"`
	Balance       money.Money        `json:"currentBalance"`
	RiskTier      RiskTier           `json:"riskTier"`
	NextDueDate   *time.Time         `json:"nextDueDate,omitempty"`
}
