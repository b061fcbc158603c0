package hrsize

import (
	"fmt"
	"math/big"
)

// FormatSize renders size as "<value> <unit>" under the given settings.
func FormatSize(size int64, s Settings) (string, error) {
	if size < 0 {
		return "", fmt.Errorf("%w: size must be a non-negative integer, got %d", ErrInvalidArgument, size)
	}
	return FormatBig(big.NewInt(size), s)
}

// FormatBig is FormatSize for sizes beyond the int64 range. Magnitudes at or
// past base^7 have no unit label and fail with ErrValueOutOfRange.
func FormatBig(n *big.Int, s Settings) (string, error) {
	value, power, err := Reduce(n, s)
	if err != nil {
		return "", err
	}
	if power > MaxPower {
		return "", fmt.Errorf("%w: file size exceeds the maximum representable unit (%s)",
			ErrValueOutOfRange, s.System.Units()[MaxPower])
	}
	return fmt.Sprintf(s.OutputFormat, value) + " " + s.System.Units()[power], nil
}
