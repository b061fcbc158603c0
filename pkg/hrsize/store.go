package hrsize

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Options carries configuration overrides as key/value pairs. Keys are
// matched case-insensitively with dashes ignored, so "unitSystem",
// "unit-system" and "unitsystem" all name the same setting. Values are
// coerced to strings.
type Options map[string]any

// Canonical option keys after normalization.
const (
	keyUnitSystem     = "unitsystem"
	keyOutputFormat   = "outputformat"
	keyNumericBackend = "numericbackend"
)

// Store holds process-wide settings behind a lock, so concurrent Configure
// and conversion calls do not race on the unit table. Most callers use the
// package-level functions, which share a single default store.
type Store struct {
	mu sync.RWMutex
	v  *viper.Viper
}

// NewStore returns a store initialized with DefaultSettings.
func NewStore() *Store {
	def := DefaultSettings()
	v := viper.New()
	v.SetDefault(keyUnitSystem, string(def.System))
	v.SetDefault(keyOutputFormat, def.OutputFormat)
	v.SetDefault(keyNumericBackend, string(def.Backend))
	return &Store{v: v}
}

var defaultStore = NewStore()

func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "-", ""))
}

// validateOptions resolves every option to its canonical key and checks its
// value, without touching any store. Two spellings of the same key in one
// Options map are rejected: map iteration order would make the winner
// arbitrary.
func validateOptions(opts Options) (map[string]string, error) {
	resolved := make(map[string]string, len(opts))
	for key, value := range opts {
		str, err := cast.ToStringE(value)
		if err != nil {
			return nil, fmt.Errorf("%w: option %q: %v", ErrInvalidArgument, key, err)
		}
		canon := normalizeKey(key)
		switch canon {
		case keyUnitSystem:
			if !UnitSystem(str).valid() {
				return nil, fmt.Errorf("%w: unknown unit system %q", ErrInvalidArgument, str)
			}
		case keyNumericBackend:
			switch NumericBackend(str) {
			case StandardFloat, ArbitraryPrecision:
			default:
				return nil, fmt.Errorf("%w: unknown numeric backend %q", ErrInvalidArgument, str)
			}
		case keyOutputFormat:
			// Used verbatim as the printf template for the numeric part.
		default:
			return nil, fmt.Errorf("%w: unknown configuration key %q", ErrInvalidArgument, key)
		}
		if _, dup := resolved[canon]; dup {
			return nil, fmt.Errorf("%w: option %q given more than once", ErrInvalidArgument, key)
		}
		resolved[canon] = str
	}
	return resolved, nil
}

// Configure applies the given overrides to the store. Every key and value is
// validated before any is applied: a failed call leaves the store unchanged.
// Unspecified keys keep their previous value.
func (st *Store) Configure(opts Options) error {
	resolved, err := validateOptions(opts)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	for key, value := range resolved {
		st.v.Set(key, value)
	}
	return nil
}

// Settings returns a snapshot of the current configuration.
func (st *Store) Settings() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return Settings{
		System:       UnitSystem(st.v.GetString(keyUnitSystem)),
		OutputFormat: st.v.GetString(keyOutputFormat),
		Backend:      NumericBackend(st.v.GetString(keyNumericBackend)),
	}
}

// settingsWith overlays per-call overrides on a snapshot of the store.
// Overrides passed to a single conversion are scoped to that call and never
// written back.
func (st *Store) settingsWith(opts []Options) (Settings, error) {
	s := st.Settings()
	for _, o := range opts {
		resolved, err := validateOptions(o)
		if err != nil {
			return Settings{}, err
		}
		if v, ok := resolved[keyUnitSystem]; ok {
			s.System = UnitSystem(v)
		}
		if v, ok := resolved[keyOutputFormat]; ok {
			s.OutputFormat = v
		}
		if v, ok := resolved[keyNumericBackend]; ok {
			s.Backend = NumericBackend(v)
		}
	}
	return s, nil
}

// ToHumanReadable converts size using the store's settings overlaid with any
// per-call overrides.
func (st *Store) ToHumanReadable(size int64, opts ...Options) (string, error) {
	s, err := st.settingsWith(opts)
	if err != nil {
		return "", err
	}
	return FormatSize(size, s)
}

// ToHumanReadableBig is ToHumanReadable for sizes beyond the int64 range.
func (st *Store) ToHumanReadableBig(n *big.Int, opts ...Options) (string, error) {
	s, err := st.settingsWith(opts)
	if err != nil {
		return "", err
	}
	return FormatBig(n, s)
}

// Compare orders two previously formatted sizes using the store's settings
// overlaid with any per-call overrides. See CompareSizes for the policy.
func (st *Store) Compare(a, b Size, opts ...Options) (int, error) {
	s, err := st.settingsWith(opts)
	if err != nil {
		return 0, err
	}
	return CompareSizes(a, b, s)
}
