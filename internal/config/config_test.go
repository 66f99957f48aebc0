package config_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	want := &config.Config{
		Logging: config.LogConfig{Level: "info"},
		Output:  config.OutputConfig{Order: config.OrderRow, Precision: -1},
		Random:  config.RandomConfig{Seed: 1},
	}
	assert.Equal(t, want, cfg)
}

// TestUsage lists every variable once with its default.
func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, config.Usage(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for i, key := range []string{"LVNUM_LOG_LEVEL", "LVNUM_LOG_DEV", "LVNUM_ORDER", "LVNUM_PRECISION", "LVNUM_SEED"} {
		assert.Contains(t, lines[i], key)
	}
	assert.Contains(t, lines[2], "default row")
	assert.Contains(t, lines[3], "default -1")
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LVNUM_LOG_LEVEL", "debug")
	t.Setenv("LVNUM_LOG_DEV", "true")
	t.Setenv("LVNUM_ORDER", "col")
	t.Setenv("LVNUM_PRECISION", "3")
	t.Setenv("LVNUM_SEED", "42")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "col", cfg.Output.Order)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, uint64(42), cfg.Random.Seed)

	lc := cfg.LoggingConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.True(t, lc.Development)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"LVNUM_ORDER":     "diagonal",
		"LVNUM_PRECISION": "-2",
		"LVNUM_LOG_LEVEL": "loud",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := config.Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalidConfig))
		})
	}

	t.Run("unparsable", func(t *testing.T) {
		t.Setenv("LVNUM_SEED", "minus-one")
		_, err := config.Load()
		assert.Error(t, err)
	})
}

func TestParseOrder(t *testing.T) {
	o, err := config.ParseOrder("col")
	require.NoError(t, err)
	assert.Equal(t, matrix.ColMajor, o)

	o, err = config.ParseOrder("row")
	require.NoError(t, err)
	assert.Equal(t, matrix.RowMajor, o)

	_, err = config.ParseOrder("ROW")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
