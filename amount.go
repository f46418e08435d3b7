package asset

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// ErrAssetMismatch occurs when an identity-sensitive operation combines
	// amounts of two different assets.
	ErrAssetMismatch = errors.New("asset identity mismatch")
	// ErrDecimalsMismatch occurs when two amounts share an asset id but
	// declare different decimal scales.
	ErrDecimalsMismatch = errors.New("asset decimals mismatch")
	// ErrDivisionByZero occurs when an amount is divided by a zero scalar.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrZeroPrice occurs when an amount is constructed from a currency value
	// at a zero unit price.
	ErrZeroPrice = errors.New("zero unit price")
	// ErrZeroBase occurs when a percentage is taken of a zero amount.
	ErrZeroBase = errors.New("zero percentage base")
)

// Amount represents a quantity of a single asset at microunit resolution.
// The quantity is backed by an arbitrary-precision decimal, so intermediate
// operations such as division may carry fractional microunits; precision is
// discarded only when the integer view is requested.
//
// Amount is immutable: every operation returns a new value, and the identity
// is snapshotted at construction. It is safe for concurrent use by multiple
// goroutines.
type Amount struct {
	identity Identity        // owned snapshot, never aliased to the caller
	raw      decimal.Decimal // quantity in microunits
}

func newAmount(id Identity, raw decimal.Decimal) (Amount, error) {
	if id.Decimals < 0 {
		return Amount{}, fmt.Errorf("constructing amount: negative decimals %d", id.Decimals)
	}
	return Amount{identity: id.clone(), raw: raw}, nil
}

// FromStandardUnits returns an amount equal to value standard units of the
// given asset. The value is scaled by 10^Decimals and truncated toward zero,
// so precision below one microunit is discarded.
//
// FromStandardUnits returns an error if the identity declares a negative scale.
func FromStandardUnits(id Identity, value decimal.Decimal) (Amount, error) {
	return newAmount(id, value.Shift(int32(id.Decimals)).Truncate(0))
}

// ParseStandardUnits converts a decimal string of standard units to an amount.
// See also function [FromStandardUnits].
func ParseStandardUnits(id Identity, value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing standard units: %w", err)
	}
	return FromStandardUnits(id, d)
}

// MustParseStandardUnits is like [ParseStandardUnits] but panics if the string
// cannot be parsed. It simplifies safe initialization of global variables
// holding amounts.
func MustParseStandardUnits(id Identity, value string) Amount {
	a, err := ParseStandardUnits(id, value)
	if err != nil {
		panic(fmt.Sprintf("ParseStandardUnits(%v, %q) failed: %v", id, value, err))
	}
	return a
}

// FromStandardUnitsFloat64 converts a float of standard units to an amount.
//
// FromStandardUnitsFloat64 returns an error if the float is a special value
// (NaN or Inf).
func FromStandardUnitsFloat64(id Identity, value float64) (Amount, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Amount{}, fmt.Errorf("converting float: special value %v", value)
	}
	return FromStandardUnits(id, decimal.NewFromFloat(value))
}

// FromMicroUnits returns an amount holding exactly value microunits.
// The value is stored as-is, fractional microunits included; truncation is
// applied only when the integer view is requested.
// See also method [Amount.ExactMicroUnits].
func FromMicroUnits(id Identity, value decimal.Decimal) (Amount, error) {
	return newAmount(id, value)
}

// FromMicroUnitsInt64 returns an amount holding value microunits.
func FromMicroUnitsInt64(id Identity, value int64) (Amount, error) {
	return newAmount(id, decimal.NewFromInt(value))
}

// FromMicroUnitsBigInt returns an amount holding value microunits.
// The big integer is copied, so later mutation by the caller does not affect
// the amount.
func FromMicroUnitsBigInt(id Identity, value *big.Int) (Amount, error) {
	if value == nil {
		value = new(big.Int)
	}
	return newAmount(id, decimal.NewFromBigInt(new(big.Int).Set(value), 0))
}

// ParseMicroUnits converts a decimal string of microunits to an amount.
// See also function [FromMicroUnits].
func ParseMicroUnits(id Identity, value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing microunits: %w", err)
	}
	return FromMicroUnits(id, d)
}

// MustParseMicroUnits is like [ParseMicroUnits] but panics if the string
// cannot be parsed.
func MustParseMicroUnits(id Identity, value string) Amount {
	a, err := ParseMicroUnits(id, value)
	if err != nil {
		panic(fmt.Sprintf("ParseMicroUnits(%v, %q) failed: %v", id, value, err))
	}
	return a
}

// Zero returns an amount of 0 microunits of the given asset.
func Zero(id Identity) Amount {
	return Amount{identity: id.clone()}
}

// Identity returns a copy of the asset identity of the amount.
func (a Amount) Identity() Identity {
	return a.identity.clone()
}

// MicroUnits returns the quantity truncated to whole microunits
// (rounded toward zero). The returned integer is a fresh copy.
// See also method [Amount.ExactMicroUnits].
func (a Amount) MicroUnits() *big.Int {
	return new(big.Int).Set(a.raw.Truncate(0).BigInt())
}

// ExactMicroUnits returns the full-precision microunit quantity, fractional
// microunits included. Use it for chained computation where no precision may
// be discarded.
func (a Amount) ExactMicroUnits() decimal.Decimal {
	return a.raw
}

// StandardUnits returns the whole-microunit quantity divided by 10^Decimals
// as a float. This conversion may lose data for very large magnitudes;
// callers needing exactness must use [Amount.ExactStandardUnits].
func (a Amount) StandardUnits() float64 {
	return decimal.NewFromBigInt(a.MicroUnits(), 0).Shift(-int32(a.identity.Decimals)).InexactFloat64()
}

// ExactStandardUnits returns the full-precision quantity in standard units.
func (a Amount) ExactStandardUnits() decimal.Decimal {
	return a.raw.Shift(-int32(a.identity.Decimals))
}

// Float64 returns the whole-microunit quantity as a float.
//
// This conversion is lossy for quantities beyond 2^53 microunits and exists
// only for hosts that need a plain numeric view; prefer [Amount.MicroUnits].
func (a Amount) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.MicroUnits()).Float64()
	return f
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.raw.IsZero()
}

// IsPositive returns true if the amount is not negative; zero counts as
// positive.
func (a Amount) IsPositive() bool {
	return !a.raw.IsNegative()
}

// IsNegative returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNegative() bool {
	return a.raw.IsNegative()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return Amount{identity: a.identity, raw: a.raw.Abs()}
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return Amount{identity: a.identity, raw: a.raw.Neg()}
}

// checkIdentity reports why amounts a and b may not be combined, or nil.
// The id check runs first, so mismatched assets surface as [ErrAssetMismatch]
// even when the scales differ too.
func (a Amount) checkIdentity(b Amount) error {
	if a.identity.id().Cmp(b.identity.id()) != 0 {
		return fmt.Errorf("asset %v does not match asset %v: %w", a.identity.id(), b.identity.id(), ErrAssetMismatch)
	}
	if a.identity.Decimals != b.identity.Decimals {
		return fmt.Errorf("scale %d does not match scale %d: %w", a.identity.Decimals, b.identity.Decimals, ErrDecimalsMismatch)
	}
	return nil
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if the amounts belong to different assets or declare
// different scales.
func (a Amount) Add(b Amount) (Amount, error) {
	if err := a.checkIdentity(b); err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return Amount{identity: a.identity, raw: a.raw.Add(b.raw)}, nil
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if the amounts belong to different assets or declare
// different scales.
func (a Amount) Sub(b Amount) (Amount, error) {
	if err := a.checkIdentity(b); err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return Amount{identity: a.identity, raw: a.raw.Sub(b.raw)}, nil
}

// Mul returns the product of amount a and dimensionless factor e, truncated
// to whole microunits (rounded toward zero).
func (a Amount) Mul(e decimal.Decimal) Amount {
	return Amount{identity: a.identity, raw: a.raw.Mul(e).Truncate(0)}
}

// Div returns the quotient of amount a and dimensionless divisor e, truncated
// to whole microunits (rounded toward zero).
//
// Div returns an error if the divisor is zero.
func (a Amount) Div(e decimal.Decimal) (Amount, error) {
	if e.IsZero() {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, ErrDivisionByZero)
	}
	q, _ := a.raw.QuoRem(e, 0)
	return Amount{identity: a.identity, raw: q}, nil
}

// Round rounds the amount to the given number of decimal places in standard
// units using the given rounding mode.
//
// When places is not smaller than the asset's scale, the amount is already
// bounded more tightly by its own microunit resolution and is returned
// unchanged.
func (a Amount) Round(places int, mode RoundingMode) Amount {
	if places >= a.identity.Decimals {
		return a
	}
	digits := int32(a.identity.Decimals - places)
	d := mode.round(a.raw.Truncate(0).Shift(-digits))
	return Amount{identity: a.identity, raw: d.Shift(digits)}
}

// PercentageOf returns the amount expressed as a percentage of base.
//
// PercentageOf returns an error if the amounts belong to different assets,
// declare different scales, or the base amount is zero.
func (a Amount) PercentageOf(base Amount) (float64, error) {
	if err := a.checkIdentity(base); err != nil {
		return 0, fmt.Errorf("computing percentage of [%v] in [%v]: %w", a, base, err)
	}
	if base.raw.IsZero() {
		return 0, fmt.Errorf("computing percentage of [%v] in [%v]: %w", a, base, ErrZeroBase)
	}
	return a.raw.Div(base.raw).Mul(decimal.NewFromInt(100)).InexactFloat64(), nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if the amounts belong to different assets or declare
// different scales.
func (a Amount) Cmp(b Amount) (int, error) {
	if err := a.checkIdentity(b); err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, err)
	}
	return a.raw.Cmp(b.raw), nil
}

// IsGreaterThan returns true if a > b.
// It fails the same way [Amount.Cmp] does on mismatched identities.
func (a Amount) IsGreaterThan(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c > 0, err
}

// IsLessThan returns true if a < b.
// It fails the same way [Amount.Cmp] does on mismatched identities.
func (a Amount) IsLessThan(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c < 0, err
}

// IsGreaterOrEqual returns true if a >= b.
// It fails the same way [Amount.Cmp] does on mismatched identities.
func (a Amount) IsGreaterOrEqual(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c >= 0, err
}

// IsLessOrEqual returns true if a <= b.
// It fails the same way [Amount.Cmp] does on mismatched identities.
func (a Amount) IsLessOrEqual(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return c <= 0, err
}

// Equal returns true if the amounts share the same identity and hold exactly
// the same microunit quantity.
//
// Unlike the ordering methods, Equal never fails: amounts of different assets
// or scales are simply not equal. This asymmetry is deliberate.
func (a Amount) Equal(b Amount) bool {
	if !a.identity.Equal(b.identity) {
		return false
	}
	return a.raw.Equal(b.raw)
}

// Min returns the smaller amount.
//
// Min returns an error if the amounts belong to different assets or declare
// different scales.
func (a Amount) Min(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c <= 0:
		return a, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if the amounts belong to different assets or declare
// different scales.
func (a Amount) Max(b Amount) (Amount, error) {
	switch c, err := a.Cmp(b); {
	case err != nil:
		return Amount{}, err
	case c >= 0:
		return a, nil
	default:
		return b, nil
	}
}

type amountJSON struct {
	Identity Identity `json:"identity"`
	Micro    string   `json:"microUnits"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The microunit quantity is emitted as an exact base-10 decimal string, never
// a floating-point literal, so the serialized form round-trips losslessly.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(amountJSON{Identity: a.identity, Micro: a.raw.String()})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Amount.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw amountJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshaling amount: %w", err)
	}
	b, err := ParseMicroUnits(raw.Identity, raw.Micro)
	if err != nil {
		return fmt.Errorf("unmarshaling amount: %w", err)
	}
	*a = b
	return nil
}
