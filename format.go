package asset

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/assetval/asset/numfmt"
)

type formatConfig struct {
	showSymbol bool
	symbol     string
	places     int
	placesSet  bool
	showMicro  bool
	trim       bool
}

// FormatOption configures a single [Amount.Format] call.
type FormatOption func(*formatConfig)

// ShowSymbol appends the asset's unit name to the formatted value.
func ShowSymbol() FormatOption {
	return func(c *formatConfig) { c.showSymbol = true }
}

// WithSymbol appends the given symbol to the formatted value, overriding the
// asset's unit name.
func WithSymbol(symbol string) FormatOption {
	return func(c *formatConfig) {
		c.showSymbol = true
		c.symbol = symbol
	}
}

// WithDecimalPlaces sets the number of fraction digits to render.
// Without this option the asset's own scale is used.
func WithDecimalPlaces(n int) FormatOption {
	return func(c *formatConfig) {
		c.places = n
		c.placesSet = true
	}
}

// ShowMicroUnits appends the grouped whole-microunit quantity to the
// formatted value, e.g. " (5,500,000 microunits)".
func ShowMicroUnits() FormatOption {
	return func(c *formatConfig) { c.showMicro = true }
}

// KeepZeroes preserves trailing fractional zeros, which are trimmed by
// default.
func KeepZeroes() FormatOption {
	return func(c *formatConfig) { c.trim = false }
}

// Format renders the amount's standard-unit value for display through the
// [numfmt] package.
//
// By default the asset's scale sets the fraction-digit count, trailing zeros
// are trimmed, and small nonzero values widen their precision instead of
// rendering as all zeros.
func (a Amount) Format(opts ...FormatOption) string {
	cfg := formatConfig{trim: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	digits := a.identity.Decimals
	if cfg.placesSet {
		digits = cfg.places
	}
	nopts := []numfmt.Option{numfmt.FractionDigits(digits)}
	if cfg.trim {
		nopts = append(nopts, numfmt.AdaptiveDecimals())
	}
	s := numfmt.Format(a.ExactStandardUnits().String(), nopts...)
	if cfg.trim && strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	if cfg.showSymbol {
		symbol := cfg.symbol
		if symbol == "" {
			symbol = a.identity.UnitName
		}
		if symbol != "" {
			s += " " + symbol
		}
	}
	if cfg.showMicro {
		s += " (" + humanize.BigComma(a.MicroUnits()) + " microunits)"
	}
	return s
}

// String implements the [fmt.Stringer] interface.
// The canonical form is the full-precision grouped standard-unit value,
// the unit name when the asset declares one, and the grouped whole-microunit
// quantity:
//
//	5.5 TOK (5,500,000 microunits)
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	s := groupDecimalString(a.ExactStandardUnits().String())
	if a.identity.UnitName != "" {
		s += " " + a.identity.UnitName
	}
	return s + " (" + humanize.BigComma(a.MicroUnits()) + " microunits)"
}

// groupDecimalString inserts thousands separators into the integer part of an
// exact decimal string without transiting float64.
func groupDecimalString(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		if neg {
			return "-" + s
		}
		return s
	}
	g := humanize.BigComma(n)
	if hasFrac {
		g += "." + frac
	}
	if neg {
		return "-" + g
	}
	return g
}
