package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount with two fraction digits, stored as NUMERIC(10,2) and
// serialized as a string ("1250.00"). Embedding decimal.Decimal gives it
// sql.Scanner and driver.Valuer.
type Money struct {
	decimal.Decimal
}

func NewMoney(amount float64) Money {
	return Money{decimal.NewFromFloat(amount).Round(2)}
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{d.Round(2)}, nil
}

func (m Money) String() string {
	return m.StringFixed(2)
}

// Float64 is used by report arithmetic, which works on plain floats.
func (m Money) Float64() float64 {
	return m.InexactFloat64()
}

func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both 1250.5 and "1250.50".
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseMoney(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	parsed, err := ParseMoney(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
