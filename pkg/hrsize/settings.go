package hrsize

import "fmt"

// NumericBackend selects the numeric strategy used by the reduction loop.
type NumericBackend string

const (
	// StandardFloat runs the reduction loop in native float64 arithmetic.
	// Inputs past what float64 counts exactly are rounded before the loop
	// starts.
	StandardFloat NumericBackend = "standard"

	// ArbitraryPrecision runs the reduction loop over exact rationals and
	// converts to float64 only for the final value.
	ArbitraryPrecision NumericBackend = "arbitrary-precision"
)

// Settings is the complete configuration of a conversion: the unit system to
// reduce against, the printf template for the numeric part, and the numeric
// backend. The zero value is not usable; start from DefaultSettings.
type Settings struct {
	System       UnitSystem
	OutputFormat string
	Backend      NumericBackend
}

// DefaultSettings returns the configuration in effect at process start:
// decimal units, one decimal place, arbitrary-precision arithmetic.
func DefaultSettings() Settings {
	return Settings{
		System:       Decimal,
		OutputFormat: "%.1f",
		Backend:      ArbitraryPrecision,
	}
}

// Validate checks both enum fields.
func (s Settings) Validate() error {
	if !s.System.valid() {
		return fmt.Errorf("%w: unknown unit system %q", ErrInvalidArgument, string(s.System))
	}
	switch s.Backend {
	case StandardFloat, ArbitraryPrecision:
	default:
		return fmt.Errorf("%w: unknown numeric backend %q", ErrInvalidArgument, string(s.Backend))
	}
	return nil
}
