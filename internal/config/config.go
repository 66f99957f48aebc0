// Package config loads the lvnum command configuration from LVNUM_*
// environment variables. Command-line flags override these values.
package config

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/lvnum/internal/logging"
	"github.com/katalvlaran/lvnum/matrix"
)

// Prefix is the environment variable prefix.
const Prefix = "LVNUM"

// Accepted storage-order names.
const (
	OrderRow = "row"
	OrderCol = "col"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all command configuration.
type Config struct {
	Logging LogConfig
	Output  OutputConfig
	Random  RandomConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" desc:"debug, info, warn or error"`
	Development bool   `envconfig:"LOG_DEV" default:"false" desc:"console encoder instead of JSON"`
}

// OutputConfig controls how results are laid out and printed.
type OutputConfig struct {
	Order     string `envconfig:"ORDER" default:"row" desc:"storage order: row or col"`
	Precision int    `envconfig:"PRECISION" default:"-1" desc:"decimal places, -1 keeps full precision"`
}

// RandomConfig seeds the random constructors.
type RandomConfig struct {
	Seed uint64 `envconfig:"SEED" default:"1" desc:"PCG seed for rand"`
}

// Load reads LVNUM_* variables over the defaults and validates the result.
func Load() (*Config, error) {
	var cfg Config
	for _, part := range cfg.parts() {
		if err := envconfig.Process(Prefix, part); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// usageFormat renders one variable per line; Usage aligns the columns.
const usageFormat = "{{range .}}  {{usage_key .}}\t{{usage_type .}}\tdefault {{usage_default .}}\t{{usage_description .}}\n{{end}}"

// Usage writes every LVNUM_* variable with its type, default and description.
func Usage(w io.Writer) error {
	var cfg Config
	tabs := tabwriter.NewWriter(w, 1, 0, 2, ' ', 0)
	for _, part := range cfg.parts() {
		if err := envconfig.Usagef(Prefix, part, tabs, usageFormat); err != nil {
			return err
		}
	}

	return tabs.Flush()
}

// parts lists the sub-structs processed under Prefix. Each is processed on
// its own so the variable names stay flat (LVNUM_ORDER, not LVNUM_OUTPUT_ORDER).
func (c *Config) parts() []any {
	return []any{&c.Logging, &c.Output, &c.Random}
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	if _, err := ParseOrder(c.Output.Order); err != nil {
		return err
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("%w: LVNUM_PRECISION=%d", ErrInvalidConfig, c.Output.Precision)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: LVNUM_LOG_LEVEL=%q", ErrInvalidConfig, c.Logging.Level)
	}

	return nil
}

// LoggingConfig maps the log settings onto a logging.Config.
func (c *Config) LoggingConfig() logging.Config {
	lc := logging.DefaultConfig()
	if c.Logging.Development {
		lc = logging.DevelopmentConfig()
	}
	lc.Level = c.Logging.Level

	return lc
}

// ParseOrder maps "row" / "col" to a matrix storage order.
func ParseOrder(s string) (matrix.Order, error) {
	switch s {
	case OrderRow:
		return matrix.RowMajor, nil
	case OrderCol:
		return matrix.ColMajor, nil
	}

	return matrix.RowMajor, fmt.Errorf("%w: order %q (want %q or %q)", ErrInvalidConfig, s, OrderRow, OrderCol)
}
