// Package validation holds the pure structural checks applied to entities
// before they reach persistence. Every function operates on in-memory data
// only; uniqueness checks receive a snapshot of the existing names instead of
// querying storage themselves.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	nameMinLen       = 3
	statusNameMinLen = 2
	nameMaxLen       = 240
	abbrevMinLen     = 1
	abbrevMaxLen     = 20
)

var (
	// ErrNameLength rejects names outside the 3-240 character bounds.
	ErrNameLength = errors.New("Nome deve ter entre 3 e 240 caracteres")
	// ErrStatusNameLength rejects status names outside the 2-240 character bounds.
	ErrStatusNameLength = errors.New("Status deve ter entre 2 e 240 caracteres")
	// ErrAbbreviationLength rejects abbreviations outside the 1-20 character bounds.
	ErrAbbreviationLength = errors.New("Abreviatura deve ter entre 1 e 20 caracteres")
	// ErrNonPositiveUnitValue rejects zero or negative unit values.
	ErrNonPositiveUnitValue = errors.New("O valor unitário deve ser maior que zero")
	// ErrNonPositiveOutput rejects zero or negative batch output.
	ErrNonPositiveOutput = errors.New("Rendimento esperado deve ser maior que zero")
	// ErrNegativeOrder rejects negative status orders.
	ErrNegativeOrder = errors.New("Ordem deve ser um número não negativo")
)

// Name checks the 3-240 character bound shared by supplier, product, unit and
// material names. Bounds count runes, not bytes.
func Name(value string) error {
	length := utf8.RuneCountInString(value)
	if length < nameMinLen || length > nameMaxLen {
		return ErrNameLength
	}
	return nil
}

// StatusName checks the 2-240 character bound and returns the upper-cased
// value that gets stored.
func StatusName(value string) (string, error) {
	length := utf8.RuneCountInString(value)
	if length < statusNameMinLen || length > nameMaxLen {
		return "", ErrStatusNameLength
	}
	return strings.ToUpper(value), nil
}

// StatusOrder checks that a lifecycle order is non-negative.
func StatusOrder(order int) error {
	if order < 0 {
		return ErrNegativeOrder
	}
	return nil
}

// Abbreviation checks the 1-20 character bound of unit abbreviations.
func Abbreviation(value string) error {
	length := utf8.RuneCountInString(value)
	if length < abbrevMinLen || length > abbrevMaxLen {
		return ErrAbbreviationLength
	}
	return nil
}

// PositiveUnitValue checks that a material unit value is strictly positive.
func PositiveUnitValue(value decimal.Decimal) error {
	if !value.IsPositive() {
		return ErrNonPositiveUnitValue
	}
	return nil
}

// PositiveOutput checks that a batch output is strictly positive.
func PositiveOutput(value decimal.Decimal) error {
	if !value.IsPositive() {
		return ErrNonPositiveOutput
	}
	return nil
}

// MaterialNameAvailable checks a candidate material name against the snapshot
// of names already registered under the same supplier.
func MaterialNameAvailable(name, supplierName string, existing []string) error {
	for _, current := range existing {
		if current == name {
			return fmt.Errorf("O fornecedor %s já tem o material %s cadastrado", supplierName, name)
		}
	}
	return nil
}
