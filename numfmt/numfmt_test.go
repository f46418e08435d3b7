package numfmt

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Plain(t *testing.T) {
	assert.Equal(t, "1,234,567.89", Format(1234567.891))
	assert.Equal(t, "1,234.50", Format(1234.5))
	assert.Equal(t, "0.00", Format(0))
	assert.Equal(t, "-1,234.50", Format(-1234.5))
	assert.Equal(t, "1,234", Format(1234.4, FractionDigits(0)))
	assert.Equal(t, "0.5000", Format(0.5, FractionDigits(4)))
}

func TestFormat_InputKinds(t *testing.T) {
	assert.Equal(t, "42.00", Format(42))
	assert.Equal(t, "42.00", Format(int64(42)))
	assert.Equal(t, "42.00", Format(uint32(42)))
	assert.Equal(t, "42.50", Format("42.5"))
	assert.Equal(t, "42.50", Format(decimal.RequireFromString("42.5")))
	assert.Equal(t, "NaN", Format("not a number"))
	assert.Equal(t, "NaN", Format(nil))
}

func TestFormat_BigInt(t *testing.T) {
	v, ok := new(big.Int).SetString("123456789123456789123456789", 10)
	require.True(t, ok)

	// plain notation keeps the full width exactly
	assert.Equal(t, "123,456,789,123,456,789,123,456,789.00", Format(v))
	assert.Equal(t, "123,456,789,123,456,789,123,456,789", Format(v, FractionDigits(0)))
	assert.Equal(t, "1,500,000.00", Format(big.NewInt(1500000)))
	assert.Equal(t, "-1,500,000.00", Format(big.NewInt(-1500000)))
	assert.Equal(t, "1.5M", Format(big.NewInt(1500000), Compact()))

	// the argument must survive formatting untouched
	w := big.NewInt(-1500000)
	Format(w)
	assert.Equal(t, int64(-1500000), w.Int64())
}

func TestFormat_Compact(t *testing.T) {
	assert.Equal(t, "1.5M", Format(1500000, Compact()))
	assert.Equal(t, "1.0K", Format(1000, Compact()))
	assert.Equal(t, "2.5K", Format(2500, Compact()))
	assert.Equal(t, "1.0M", Format(1000000, Compact()))
	assert.Equal(t, "1.0B", Format(1000000000, Compact()))
	assert.Equal(t, "1.0T", Format(1e12, Compact()))
	assert.Equal(t, "2,500.0T", Format(2.5e15, Compact()))
	assert.Equal(t, "-1.5M", Format(-1500000, Compact()))
	assert.Equal(t, "1.25M", Format(1250000, Compact(), FractionDigits(2)))

	// below the smallest tier, compact falls through to plain notation
	assert.Equal(t, "999.00", Format(999, Compact()))
	assert.Equal(t, "-999.00", Format(-999, Compact()))
}

func TestFormat_CompactAuto(t *testing.T) {
	assert.Equal(t, "99,999.00", Format(99999, CompactAuto()))
	assert.Equal(t, "100.0K", Format(100000, CompactAuto()))
	assert.Equal(t, "1.5M", Format(1500000, CompactAuto()))
	assert.Equal(t, "-100.0K", Format(-100000, CompactAuto()))
}

func TestFormat_AdaptiveDecimals(t *testing.T) {
	assert.Equal(t, "0.00001", Format(0.00001, AdaptiveDecimals()))
	assert.Equal(t, "0.0006", Format(0.0005678, AdaptiveDecimals()))
	assert.Equal(t, "-0.0006", Format(-0.0005678, AdaptiveDecimals()))

	// values at or above the fixed precision keep it
	assert.Equal(t, "0.50", Format(0.5, AdaptiveDecimals()))
	assert.Equal(t, "0.01", Format(0.01, AdaptiveDecimals()))
	assert.Equal(t, "123.46", Format(123.456, AdaptiveDecimals()))

	// zero never widens
	assert.Equal(t, "0.00", Format(0, AdaptiveDecimals()))

	// the requested precision sets the activation threshold
	assert.Equal(t, "0.001", Format(0.001, AdaptiveDecimals(), FractionDigits(2)))
	assert.Equal(t, "0.0010", Format(0.001, AdaptiveDecimals(), FractionDigits(4)))
}

func TestFormat_CurrencyStyle(t *testing.T) {
	assert.Equal(t, "$1,234.50", Format(1234.5, CurrencyStyle()))
	assert.Equal(t, "$1.5M", Format(1500000, CurrencyStyle(), Compact()))
	assert.Equal(t, "$0.00", Format(0, CurrencyStyle()))
}

func TestRoundToFirstNonZeroDecimal(t *testing.T) {
	tests := []struct {
		num, want float64
	}{
		{0, 0},
		{0.0005678, 0.0006},
		{0.00001, 0.00001},
		{123.456, 123.46},
		{123, 123},
		{-0.0005678, -0.0006},
		{0.5, 0.5},
		{0.04, 0.04},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundToFirstNonZeroDecimal(tt.num), "RoundToFirstNonZeroDecimal(%v)", tt.num)
	}
}
