package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// nonNegative is an ozzo validation rule for decimal fields that must not
// be below zero.
func nonNegative(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if d.IsNegative() {
		return errors.New("must be zero or greater")
	}
	return nil
}
