package utils

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

// ParseObjectID parses a hex identifier from a request payload.
func ParseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, consts.ErrorInvalidObjectId
	}
	return id, nil
}

// ParseAmount parses a monetary amount from its string form.
func ParseAmount(s string) (money.Money, error) {
	amount, err := money.FromString(s)
	if err != nil {
		return money.Zero, consts.ErrorAmountNotPositive
	}
	return amount, nil
}

// ParseDate parses a YYYY-MM-DD calendar date. Time-of-day is never accepted
// on requests.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, consts.ErrorInvalidDate
	}
	return money.DateOnly(t), nil
}

// IsElevatedRole reports whether the acting role may override policy amount
// and term checks.
func IsElevatedRole(role string) bool {
	for _, r := range consts.ElevatedRoles {
		if r == role {
			return true
		}
	}
	return false
}
