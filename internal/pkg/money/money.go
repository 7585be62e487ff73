package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Money is a fixed-point monetary amount with two decimal places. All loan,
// installment and payment figures go through this type so that installment
// splits and running balances reconcile to the cent. Persisted in MongoDB as
// Decimal128.
type Money struct {
	dec decimal.Decimal
}

var Zero = Money{dec: decimal.Zero}

// New builds a Money from units and cents, e.g. New(1375, 0) = 1375.00.
func New(units int64, cents int64) Money {
	return Money{dec: decimal.New(units*100+cents, -2)}
}

// FromFloat rounds the given float to two decimal places.
func FromFloat(f float64) Money {
	return Money{dec: decimal.NewFromFloat(f).Round(2)}
}

func FromDecimal(d decimal.Decimal) Money {
	return Money{dec: d.Round(2)}
}

func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	return Money{dec: d.Round(2)}, nil
}

func (m Money) Add(n Money) Money      { return Money{dec: m.dec.Add(n.dec)} }
func (m Money) Sub(n Money) Money      { return Money{dec: m.dec.Sub(n.dec)} }
func (m Money) Cmp(n Money) int        { return m.dec.Cmp(n.dec) }
func (m Money) Equal(n Money) bool     { return m.dec.Equal(n.dec) }
func (m Money) IsZero() bool           { return m.dec.IsZero() }
func (m Money) IsNegative() bool       { return m.dec.IsNegative() }
func (m Money) IsPositive() bool       { return m.dec.IsPositive() }
func (m Money) String() string         { return m.dec.StringFixed(2) }
func (m Money) Float64() float64       { f, _ := m.dec.Float64(); return f }
func (m Money) Decimal() decimal.Decimal { return m.dec }

// MulRate multiplies by a fractional rate (e.g. 0.10) and rounds to the cent.
func (m Money) MulRate(rate float64) Money {
	return Money{dec: m.dec.Mul(decimal.NewFromFloat(rate)).Round(2)}
}

// Min returns the smaller of m and n.
func (m Money) Min(n Money) Money {
	if m.Cmp(n) <= 0 {
		return m
	}
	return n
}

// SplitEven divides m into n parts. Parts 1..n-1 are the amount floored to the
// cent; the final part absorbs the rounding remainder so the parts always sum
// back to m exactly.
func (m Money) SplitEven(n int) []Money {
	if n <= 0 {
		return nil
	}
	parts := make([]Money, n)
	if n == 1 {
		parts[0] = m
		return parts
	}
	base := Money{dec: m.dec.Div(decimal.NewFromInt(int64(n))).RoundDown(2)}
	running := Zero
	for i := 0; i < n-1; i++ {
		parts[i] = base
		running = running.Add(base)
	}
	parts[n-1] = m.Sub(running)
	return parts
}

// MarshalBSONValue stores the amount as Decimal128 so Mongo-side aggregation
// keeps exact cents.
func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(m.String())
	if err != nil {
		return 0, nil, fmt.Errorf("money: marshal %s: %w", m.String(), err)
	}
	return bson.MarshalValue(d128)
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDecimal128:
		var d128 primitive.Decimal128
		if err := rv.Unmarshal(&d128); err != nil {
			return err
		}
		d, err := decimal.NewFromString(d128.String())
		if err != nil {
			return fmt.Errorf("money: unmarshal decimal128 %s: %w", d128.String(), err)
		}
		m.dec = d.Round(2)
		return nil
	case bson.TypeDouble:
		// Legacy documents written before the Decimal128 migration.
		var f float64
		if err := rv.Unmarshal(&f); err != nil {
			return err
		}
		m.dec = decimal.NewFromFloat(f).Round(2)
		return nil
	case bson.TypeInt32, bson.TypeInt64:
		var i int64
		if err := rv.Unmarshal(&i); err != nil {
			return err
		}
		m.dec = decimal.NewFromInt(i)
		return nil
	default:
		return fmt.Errorf("money: cannot unmarshal bson type %s", t)
	}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" || s == "" {
		m.dec = decimal.Zero
		return nil
	}
	parsed, err := FromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
