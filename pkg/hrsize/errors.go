package hrsize

import "errors"

// Failure kinds returned by this package. Callers match them with errors.Is;
// the wrapped message carries the specifics.
var (
	// ErrInvalidArgument reports an unknown configuration key or value, a
	// negative size, or a unit label that is not part of the active table.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValueOutOfRange reports a size whose magnitude exceeds the largest
	// supported unit (exa scale).
	ErrValueOutOfRange = errors.New("value out of range")
)
