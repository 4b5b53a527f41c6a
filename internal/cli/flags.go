package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// parseDecFlag parses a decimal-valued flag, naming the flag in the error.
func parseDecFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s value %q: %w", name, value, err)
	}
	return d, nil
}
