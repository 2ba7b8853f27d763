package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineTotal multiplies a unit price by a quantity without float rounding.
func LineTotal(price string, quantity int) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q: %w", price, err)
	}
	return p.Mul(decimal.NewFromInt(int64(quantity))), nil
}
