package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money unified monetary type (2 decimal places)
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a monetary value from a decimal.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// MarshalJSON always emits a string with 2 decimal places.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON parses a string or a number.
func (m *Money) UnmarshalJSON(b []byte) error {
	d, ok, err := decimalFromJSON(b)
	if err != nil {
		return err
	}
	if ok {
		m.Decimal = d.Round(2)
	}
	return nil
}

// Value database write
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).Value()
}

// Scan database read
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

// Quantity unified amount type (3 decimal places)
type Quantity struct {
	decimal.Decimal
}

// NewQuantityFromDecimal creates a quantity from a decimal.
func NewQuantityFromDecimal(amount decimal.Decimal) Quantity {
	return Quantity{Decimal: amount.Round(3)}
}

// MarshalJSON always emits a string with 3 decimal places.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Decimal.Round(3).StringFixed(3))
}

// UnmarshalJSON parses a string or a number.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	d, ok, err := decimalFromJSON(b)
	if err != nil {
		return err
	}
	if ok {
		q.Decimal = d.Round(3)
	}
	return nil
}

// Value database write
func (q Quantity) Value() (driver.Value, error) {
	return q.Decimal.Round(3).Value()
}

// Scan database read
func (q *Quantity) Scan(value interface{}) error {
	if err := q.Decimal.Scan(value); err != nil {
		return err
	}
	q.Decimal = q.Decimal.Round(3)
	return nil
}

// decimalFromJSON reads a JSON string or number. An empty string or null
// leaves the target untouched.
func decimalFromJSON(b []byte) (decimal.Decimal, bool, error) {
	if len(b) == 0 || string(b) == "null" {
		return decimal.Decimal{}, false, nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return decimal.Decimal{}, false, err
		}
		if s == "" {
			return decimal.Decimal{}, false, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, false, err
		}
		return d, true, nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return decimal.Decimal{}, false, err
	}
	return decimal.NewFromFloat(f), true, nil
}
