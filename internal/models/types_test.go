package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyMarshalsFixedTwoPlaces(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.NewFromFloat(12.5))
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"12.50"` {
		t.Fatalf("want \"12.50\" got %s", b)
	}
}

func TestMoneyUnmarshalAcceptsStringAndNumber(t *testing.T) {
	var fromString, fromNumber Money
	if err := json.Unmarshal([]byte(`"3.456"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if err := json.Unmarshal([]byte(`3.456`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	want := decimal.NewFromFloat(3.46)
	if !fromString.Decimal.Equal(want) || !fromNumber.Decimal.Equal(want) {
		t.Fatalf("want %s got %s / %s", want, fromString.Decimal, fromNumber.Decimal)
	}
}

func TestMoneyUnmarshalEmptyStringKeepsZero(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`""`), &m); err != nil {
		t.Fatalf("unmarshal empty string failed: %v", err)
	}
	if !m.Decimal.IsZero() {
		t.Fatalf("want zero got %s", m.Decimal)
	}
}

func TestQuantityKeepsThreePlaces(t *testing.T) {
	q := NewQuantityFromDecimal(decimal.NewFromFloat(1.2342))
	b, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"1.234"` {
		t.Fatalf("want \"1.234\" got %s", b)
	}
}
