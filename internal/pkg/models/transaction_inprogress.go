package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionInProgress marks an origination in flight for a member so two
// concurrent create requests cannot both pass the policy check. Rows expire via
// a TTL index on CreatedAt.
type TransactionInProgress struct {
	Id        primitive.ObjectID `bson:"_id,omitempty"`
	MemberId  primitive.ObjectID `bson:"memberId"`
	CreatedAt time.Time          `bson:"createdAt"`
}
