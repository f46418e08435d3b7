package asset

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FromCurrency returns the amount of an asset purchasable for currencyAmount
// at the given unit price (currency per standard unit). The quotient is
// computed in standard units and then scaled like [FromStandardUnits], so
// precision below one microunit is discarded.
//
// FromCurrency returns an error if the unit price is zero.
func FromCurrency(id Identity, currencyAmount, unitPrice decimal.Decimal) (Amount, error) {
	if unitPrice.IsZero() {
		return Amount{}, fmt.Errorf("converting %v at price %v: %w", currencyAmount, unitPrice, ErrZeroPrice)
	}
	units, _ := currencyAmount.QuoRem(unitPrice, int32(max(id.Decimals, 0)))
	return FromStandardUnits(id, units)
}

// ValueAt returns the currency value of the amount at the given unit price
// (currency per standard unit), at full precision.
// It is the inverse of [FromCurrency] up to the documented microunit
// truncation.
func (a Amount) ValueAt(unitPrice decimal.Decimal) decimal.Decimal {
	return a.ExactStandardUnits().Mul(unitPrice)
}
