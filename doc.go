/*
Package asset implements unit-safe, precision-exact quantities of fungible
assets, such as blockchain token balances.
It pairs an [Identity] record describing an asset's id and decimal scale with
an immutable [Amount] holding the quantity at microunit resolution, backed by
an arbitrary-precision decimal.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Exact integer arithmetic on microunits, never binary floating point
  - Identity checks on every combining operation, so quantities of different
    assets or scales can never be mixed silently
  - Explicit rounding modes (half-up, down, up, ceiling, floor)
  - Lossless JSON serialization with decimal-string microunits
  - Display formatting with thousands grouping, compact K/M/B/T notation,
    and adaptive decimals via the [numfmt] subpackage

# Representation

An Amount consists of an Identity and a decimal quantity of microunits,
where one standard unit equals 10^Decimals microunits.
The quantity may temporarily carry fractional microunits, for example after
a division; the fraction is discarded only when the integer view is requested
through [Amount.MicroUnits].

# Operations

Amounts of the same asset can be added, subtracted, and compared.
Amounts can be scaled by dimensionless decimal factors, rounded to a coarser
scale, and expressed as a percentage of another amount.
Operations that would combine different assets return an error wrapping
[ErrAssetMismatch] or [ErrDecimalsMismatch]; the sole exception is
[Amount.Equal], which reports false instead of failing.

# Errors

All failures are synchronous, caller-local validation errors: mixing assets,
dividing by zero, pricing at zero, or taking a percentage of a zero base.
Each is matchable with errors.Is against the package's sentinel errors.
Nothing is retried, substituted, or logged.
*/
package asset
