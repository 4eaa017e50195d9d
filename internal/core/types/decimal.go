package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal is an arbitrary-precision decimal number.
// Uses decimal.Decimal to avoid floating-point errors in comparisons.
type Decimal = decimal.Decimal

// ParseDecimal parses a plain decimal literal ("12.50", "-3", "1e3").
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty decimal")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse decimal: %w", err)
	}
	return d, nil
}

// MustDecimal parses a decimal, panics on error.
// Use only for constants and tests.
func MustDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}
