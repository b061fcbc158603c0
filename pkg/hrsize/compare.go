package hrsize

import "fmt"

// Size is a human-readable size: the rendered value and its unit label. It is
// what a conversion produces and what the comparator consumes.
type Size struct {
	Value float64
	Unit  string
}

// CompareSizes orders two human-readable sizes, returning -1, 0 or 1.
//
// Sizes carrying the same unit label compare numerically. Sizes with
// different labels compare by the label's position in the active unit table
// alone; the numeric values are not weighed, so (999, "KB") sorts below
// (0.1, "MB"). A label missing from the active table fails with
// ErrInvalidArgument, which usually means the operands were formatted under a
// different unit system than the one configured.
func CompareSizes(a, b Size, s Settings) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if a.Unit == b.Unit {
		return compareFloats(a.Value, b.Value), nil
	}
	ra, rb := s.System.rank(a.Unit), s.System.rank(b.Unit)
	if ra < 0 || rb < 0 {
		missing := a.Unit
		if ra >= 0 {
			missing = b.Unit
		}
		return 0, fmt.Errorf("%w: unit system mismatch: label %q is not part of the %s unit table",
			ErrInvalidArgument, missing, string(s.System))
	}
	if ra < rb {
		return -1, nil
	}
	return 1, nil
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
