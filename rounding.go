package asset

import "github.com/shopspring/decimal"

// RoundingMode selects how [Amount.Round] resolves discarded digits.
// The set is closed and independent of the backing decimal library's
// enumeration. The zero value is [RoundHalfUp].
type RoundingMode int

const (
	// RoundHalfUp rounds to the nearest value; ties round away from zero.
	RoundHalfUp RoundingMode = iota
	// RoundDown rounds toward zero.
	RoundDown
	// RoundUp rounds away from zero.
	RoundUp
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	switch m {
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundCeiling:
		return "ceiling"
	case RoundFloor:
		return "floor"
	default:
		return "half-up"
	}
}

// round rounds d to an integer per the mode.
// Unknown modes fall back to half-up, the documented default.
func (m RoundingMode) round(d decimal.Decimal) decimal.Decimal {
	switch m {
	case RoundDown:
		return d.RoundDown(0)
	case RoundUp:
		return d.RoundUp(0)
	case RoundCeiling:
		return d.RoundCeil(0)
	case RoundFloor:
		return d.RoundFloor(0)
	default:
		return d.Round(0)
	}
}
