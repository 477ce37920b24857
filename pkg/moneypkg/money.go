// Package moneypkg converts decimal string amounts into integer cents.
package moneypkg

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotANumber indicates that the amount does not parse as a base-10 decimal.
	ErrNotANumber = errors.New("is not a number")
	// ErrPrecision indicates that the amount carries sub-cent precision.
	ErrPrecision = errors.New("cannot have more than 2 decimal places")
)

var oneHundred = decimal.NewFromInt(100)

// ParseCents parses a decimal string into integer cents.
// "14.50" yields 1450; "1.005" fails with ErrPrecision.
func ParseCents(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, ErrNotANumber
	}

	cents := d.Mul(oneHundred)
	if !cents.IsInteger() {
		return 0, ErrPrecision
	}

	return cents.IntPart(), nil
}
