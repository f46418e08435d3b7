// Package numfmt renders numeric values for human-readable display.
//
// It applies a single fixed grouping convention (comma thousands separator,
// point decimal separator), supports abbreviated K/M/B/T notation for large
// magnitudes, and can adaptively widen precision so that small nonzero values
// do not render as all zeros.
//
// The package is stateless and performs no I/O; it is usable standalone and is
// the display backend for the asset package.
package numfmt

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// AutoCompactThreshold is the smallest absolute value that [CompactAuto]
// renders in abbreviated notation.
const AutoCompactThreshold = 100_000

// adaptiveMaxDigits bounds the precision of adaptively rounded values.
const adaptiveMaxDigits = 20

// compactTiers are evaluated in descending threshold order; the first tier
// whose threshold does not exceed the absolute value wins.
var compactTiers = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

var printer = message.NewPrinter(language.English)

// Format renders a numeric value as a display string.
//
// The value may be a float, any integer type, a [big.Int], a
// [decimal.Decimal], or a numeric string. Strings and decimals are parsed to
// float64 before rendering; a big.Int rendered in plain notation keeps its
// full width exactly. An unparseable value renders as "NaN".
func Format(value any, opts ...Option) string {
	cfg := config{digits: 2}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch v := value.(type) {
	case *big.Int:
		if v != nil {
			return formatBigInt(v, cfg)
		}
		return "NaN"
	case decimal.Decimal:
		return formatFloat(v.InexactFloat64(), cfg)
	default:
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return "NaN"
		}
		return formatFloat(f, cfg)
	}
}

func formatFloat(v float64, cfg config) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 0) {
		if v < 0 {
			return cfg.prefix() + "-∞"
		}
		return cfg.prefix() + "∞"
	}
	if cfg.compactActive(math.Abs(v)) {
		for _, tier := range compactTiers {
			if math.Abs(v) >= tier.threshold {
				scaled := v / tier.threshold
				return cfg.prefix() + fixed(scaled, cfg.fraction(1)) + tier.suffix
			}
		}
		// below the smallest tier, plain notation
	}
	digits := cfg.fraction(2)
	if cfg.adaptive && v != 0 && math.Abs(v) < math.Pow(10, -float64(digits)) {
		return cfg.prefix() + humanize.Commaf(RoundToFirstNonZeroDecimal(v))
	}
	return cfg.prefix() + fixed(v, digits)
}

// formatBigInt renders an integer of arbitrary width.
// Plain notation never transits float64, so the full width is preserved;
// compact notation is display-only and may round.
func formatBigInt(v *big.Int, cfg config) string {
	if cfg.compactActive(bigAbsFloat(v)) {
		f, _ := new(big.Float).SetInt(v).Float64()
		for _, tier := range compactTiers {
			if math.Abs(f) >= tier.threshold {
				scaled := f / tier.threshold
				return cfg.prefix() + fixed(scaled, cfg.fraction(1)) + tier.suffix
			}
		}
	}
	s := humanize.BigComma(new(big.Int).Set(v))
	if digits := cfg.fraction(2); digits > 0 {
		s += "." + strings.Repeat("0", digits)
	}
	return cfg.prefix() + s
}

func (c config) compactActive(abs float64) bool {
	switch c.compact {
	case compactOn:
		return true
	case compactAuto:
		return abs >= AutoCompactThreshold
	default:
		return false
	}
}

func bigAbsFloat(v *big.Int) float64 {
	f, _ := new(big.Float).Abs(new(big.Float).SetInt(v)).Float64()
	return f
}

// fixed renders v with grouping and exactly digits fraction digits.
func fixed(v float64, digits int) string {
	return printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits)))
}

// RoundToFirstNonZeroDecimal rounds num to as many decimal places as the
// absolute value of its scientific-notation exponent, so the first nonzero
// decimal digit survives:
//
//	RoundToFirstNonZeroDecimal(0.0005678) // 0.0006
//	RoundToFirstNonZeroDecimal(123.456)   // 123.46
//	RoundToFirstNonZeroDecimal(123)       // 123
//
// RoundToFirstNonZeroDecimal returns 0 for 0.
func RoundToFirstNonZeroDecimal(num float64) float64 {
	if num == 0 || math.IsNaN(num) || math.IsInf(num, 0) {
		return num
	}
	s := strconv.FormatFloat(num, 'e', -1, 64)
	exp, err := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if err != nil {
		return num
	}
	if exp < 0 {
		exp = -exp
	}
	if exp > adaptiveMaxDigits {
		exp = adaptiveMaxDigits
	}
	pow := math.Pow(10, float64(exp))
	return math.Round(num*pow) / pow
}
