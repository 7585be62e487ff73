package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

// LoanIncrementLevel is static reference data: one row per graduated lending
// tier, mapping the level to its single eligible principal amount and the term
// lengths enabled at that level.
type LoanIncrementLevel struct {
	Id                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Level              int                `bson:"level" json:"level"`
	Amount             money.Money        `bson:"amount" json:"amount"`
	EligibleTermsWeeks []int              `bson:"eligibleTermsWeeks" json:"eligibleTermsWeeks"`
}

// TermAllowed reports whether the requested term is enabled at this level.
func (l *LoanIncrementLevel) TermAllowed(weeks int) bool {
	for _, w := range l.EligibleTermsWeeks {
		if w == weeks {
			return true
		}
	}
	return false
}
