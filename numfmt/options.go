package numfmt

type compactMode int

const (
	compactOff compactMode = iota
	compactOn
	compactAuto
)

type config struct {
	currency bool
	compact  compactMode
	digits   int
	digitSet bool
	adaptive bool
}

// Option configures a single [Format] call.
type Option func(*config)

// Compact renders large values in abbreviated notation with a K/M/B/T suffix.
// Values below one thousand fall through to plain notation.
func Compact() Option {
	return func(c *config) { c.compact = compactOn }
}

// CompactAuto renders in abbreviated notation only when the absolute value
// reaches [AutoCompactThreshold].
func CompactAuto() Option {
	return func(c *config) { c.compact = compactAuto }
}

// FractionDigits sets the exact number of fraction digits to render.
// Without this option, plain notation uses 2 digits and compact notation uses 1.
// Negative values are treated as 0.
func FractionDigits(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.digits = n
		c.digitSet = true
	}
}

// AdaptiveDecimals widens the rendered precision for small nonzero values that
// the fixed fraction-digit count would otherwise render as all zeros.
// See [RoundToFirstNonZeroDecimal].
func AdaptiveDecimals() Option {
	return func(c *config) { c.adaptive = true }
}

// CurrencyStyle prefixes the rendered value with a dollar sign.
func CurrencyStyle() Option {
	return func(c *config) { c.currency = true }
}

// fraction returns the configured fraction-digit count, or def when the caller
// did not set one.
func (c config) fraction(def int) int {
	if c.digitSet {
		return c.digits
	}
	return def
}

func (c config) prefix() string {
	if c.currency {
		return "$"
	}
	return ""
}
