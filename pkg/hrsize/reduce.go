package hrsize

import (
	"fmt"
	"math"
	"math/big"
)

// reducer is the numeric strategy behind the reduction loop. Both
// implementations run the same repeated division and agree on the resulting
// power for any input float64 can count exactly.
type reducer interface {
	reduce(n *big.Int, base int64) (value float64, power int)
}

func (b NumericBackend) reducer() reducer {
	if b == StandardFloat {
		return floatReducer{}
	}
	return ratReducer{}
}

// floatReducer converts the input to float64 once, then divides natively.
type floatReducer struct{}

func (floatReducer) reduce(n *big.Int, base int64) (float64, int) {
	v, _ := new(big.Float).SetInt(n).Float64()
	if math.IsInf(v, 1) {
		// Inputs past float64's range convert to +Inf, which no amount of
		// division brings below the base. Such sizes are past the label
		// table regardless; report a power the formatter rejects.
		return v, MaxPower + 1
	}
	fb := float64(base)
	power := 0
	for v >= fb {
		v /= fb
		power++
	}
	return v, power
}

// ratReducer runs the loop over exact rationals and rounds only once, when
// producing the returned value.
type ratReducer struct{}

func (ratReducer) reduce(n *big.Int, base int64) (float64, int) {
	v := new(big.Rat).SetInt(n)
	b := new(big.Rat).SetInt64(base)
	power := 0
	for v.Cmp(b) >= 0 {
		v.Quo(v, b)
		power++
	}
	f, _ := v.Float64()
	return f, power
}

// Reduce divides n by the configured base until it falls below the base,
// returning the remaining value and the number of divisions performed. The
// loop runs iteratively rather than through a logarithm so exact powers of
// the base land on the right side of the boundary. Zero reduces to (0, 0).
//
// Reduce itself never rejects large magnitudes; rendering a power past
// MaxPower is the formatter's error.
func Reduce(n *big.Int, s Settings) (float64, int, error) {
	if err := s.Validate(); err != nil {
		return 0, 0, err
	}
	if n == nil || n.Sign() < 0 {
		return 0, 0, fmt.Errorf("%w: size must be a non-negative integer", ErrInvalidArgument)
	}
	value, power := s.Backend.reducer().reduce(n, s.System.Base())
	return value, power, nil
}
