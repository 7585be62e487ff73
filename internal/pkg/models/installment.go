package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

// Installments are created once, at approval, and never reordered or deleted.
// Only AmountPaid, IsPaid and PaidDate mutate as payments distribute.
type Installment struct {
	InstallmentId primitive.ObjectID `bson:"_id,omitempty" json:"installmentId"`
	LoanId        primitive.ObjectID `bson:"loanId" json:"loanId"`
	Sequence      int                `bson:"sequence" json:"sequence"`
	DueDate       time.Time          `bson:"dueDate" json:"dueDate"`
	PrincipalDue  money.Money        `bson:"principalDue" json:"principalDue"`
	InterestDue   money.Money        `bson:"interestDue" json:"interestDue"`
	Total         money.Money        `bson:"total" json:"total"`
	AmountPaid    money.Money        `bson:"amountPaid" json:"amountPaid"`
	IsPaid        bool               `bson:"isPaid" json:"isPaid"`
	PaidDate      *time.Time         `bson:"paidDate,omitempty" json:"paidDate,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// RemainingDue is the unpaid slice of this installment.
func (i *Installment) RemainingDue() money.Money {
	return i.Total.Sub(i.AmountPaid)
}
