package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

type LoanStatus string

const (
	LoanPending   LoanStatus = "pending"
	LoanActive    LoanStatus = "active"
	LoanRepaid    LoanStatus = "repaid"
	LoanDefaulted LoanStatus = "defaulted"
	LoanBadDebt   LoanStatus = "bad_debt"
	LoanRejected  LoanStatus = "rejected"
)

// IsTerminal reports whether no further lifecycle transition is legal.
func (s LoanStatus) IsTerminal() bool {
	switch s {
	case LoanRepaid, LoanDefaulted, LoanBadDebt, LoanRejected:
		return true
	}
	return false
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type LoanProgram string

const (
	SmallLoan LoanProgram = "small_loan"
	BigLoan   LoanProgram = "big_loan"
)

type InstallmentType string

const (
	InstallmentWeekly    InstallmentType = "weekly"
	InstallmentEndOfTerm InstallmentType = "end_of_term"
)

// Loans is the central collection document. Invariant maintained by the
// payment engine: CurrentBalance = Principal + InterestDisbursed - TotalPaid,
// never negative; TotalPaid never decreases.
type Loans struct {
	LoanId            primitive.ObjectID  `bson:"_id,omitempty" json:"loanId"`
	MemberId          primitive.ObjectID  `bson:"memberId" json:"memberId"`
	BranchId          primitive.ObjectID  `bson:"branchId" json:"branchId"`
	OfficerId         primitive.ObjectID  `bson:"officerId" json:"officerId"`
	Program           LoanProgram         `bson:"program" json:"program"`
	Principal         money.Money         `bson:"principal" json:"principal"`
	InterestRate      float64             `bson:"interestRate" json:"interestRate"`
	InterestDisbursed money.Money         `bson:"interestDisbursed" json:"interestDisbursed"`
	IncrementLevel    int                 `bson:"incrementLevel" json:"incrementLevel"`
	PaymentTermWeeks  int                 `bson:"paymentTermWeeks" json:"paymentTermWeeks"`
	InstallmentType   InstallmentType     `bson:"installmentType" json:"installmentType"`
	IssueDate         *time.Time          `bson:"issueDate,omitempty" json:"issueDate,omitempty"`
	DueDate           *time.Time          `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CurrentBalance    money.Money         `bson:"currentBalance" json:"currentBalance"`
	TotalPaid         money.Money         `bson:"totalPaid" json:"totalPaid"`
	ExcessCredit      money.Money         `bson:"excessCredit" json:"excessCredit"`
	Status            LoanStatus          `bson:"status" json:"status"`
	ApprovalStatus    ApprovalStatus      `bson:"approvalStatus" json:"approvalStatus"`
	ApprovedBy        *primitive.ObjectID `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time          `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	RejectedReason    string              `bson:"rejectedReason,omitempty" json:"rejectedReason,omitempty"`
	WrittenOffDate    *time.Time          `bson:"writtenOffDate,omitempty" json:"writtenOffDate,omitempty"`
	WrittenOffBy      *primitive.ObjectID `bson:"writtenOffBy,omitempty" json:"writtenOffBy,omitempty"`
	WriteOffNotes     string              `bson:"writeOffNotes,omitempty" json:"writeOffNotes,omitempty"`
	PreviousLoanId    *primitive.ObjectID `bson:"previousLoanId,omitempty" json:"previousLoanId,omitempty"`
	Version           int32               `bson:"version" json:"version"`
	CreatedAt         time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Outstanding is the disbursed total still owed, before clamping.
func (l *Loans) Outstanding() money.Money {
	return l.Principal.Add(l.InterestDisbursed).Sub(l.TotalPaid)
}
