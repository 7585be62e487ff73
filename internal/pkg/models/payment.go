package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

// Payments is append-only: a payment row is never edited after the distribution
// that recorded it commits. KafkaFlag marks whether the ledger event reached
// the broker; the retry endpoint re-publishes rows where it is false.
type Payments struct {
	PaymentId    primitive.ObjectID `bson:"_id,omitempty" json:"paymentId"`
	GUID         string             `bson:"GUID" json:"guid"`
	LoanId       primitive.ObjectID `bson:"loanId" json:"loanId"`
	Amount       money.Money        `bson:"amount" json:"amount"`
	ExcessCredit money.Money        `bson:"excessCredit" json:"excessCredit"`
	PaymentDate  time.Time          `bson:"paymentDate" json:"paymentDate"`
	Method       string             `bson:"method" json:"method"`
	Note         string             `bson:"note,omitempty" json:"note,omitempty"`
	RecordedBy   primitive.ObjectID `bson:"recordedBy" json:"recordedBy"`
	KafkaFlag    bool               `bson:"kafkaFlag" json:"kafkaFlag"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
