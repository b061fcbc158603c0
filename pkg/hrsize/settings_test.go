package hrsize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, Decimal, s.System)
	assert.Equal(t, "%.1f", s.OutputFormat)
	assert.Equal(t, ArbitraryPrecision, s.Backend)
	assert.NoError(t, s.Validate())
}

func TestSettingsValidate(t *testing.T) {
	t.Run("rejects unknown unit system", func(t *testing.T) {
		s := DefaultSettings()
		s.System = "metric"
		err := s.Validate()
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "metric")
	})

	t.Run("rejects unknown numeric backend", func(t *testing.T) {
		s := DefaultSettings()
		s.Backend = "quantum"
		err := s.Validate()
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "quantum")
	})

	t.Run("accepts both systems and backends", func(t *testing.T) {
		for _, system := range []UnitSystem{Decimal, Binary} {
			for _, backend := range []NumericBackend{StandardFloat, ArbitraryPrecision} {
				s := Settings{System: system, OutputFormat: "%.1f", Backend: backend}
				assert.NoError(t, s.Validate())
			}
		}
	})
}

func TestUnitSystemTables(t *testing.T) {
	assert.Equal(t, int64(1000), Decimal.Base())
	assert.Equal(t, int64(1024), Binary.Base())
	assert.Equal(t, []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}, Decimal.Units())
	assert.Equal(t, []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}, Binary.Units())
}
