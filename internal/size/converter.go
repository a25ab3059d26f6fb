// Package size converts between byte counts and human-readable size
// strings such as "1.50 MiB" or "10 GB".
package size

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// DecimalBase is the multiplier between adjacent SI units.
	DecimalBase = 1000
	// BinaryBase is the multiplier between adjacent IEC units.
	BinaryBase = 1024
	// DefaultPrecision is the number of fraction digits used when none is configured.
	DefaultPrecision = 2
)

var (
	// DecimalUnits is the SI unit ladder, index 0 being the base unit.
	DecimalUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
	// BinaryUnits is the IEC unit ladder, index 0 being the base unit.
	BinaryUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}
)

// Config defines the configuration for creating a Converter.
//
// A zero Base and a nil Units are derived from BinaryPrefix.
//
//nolint:govet // fieldalignment: readability preferred over optimization
type Config struct {
	BinaryPrefix bool
	Base         int
	Units        []string
	Precision    int
}

// DefaultConfig returns the decimal configuration with two fraction digits.
func DefaultConfig() Config {
	return Config{Precision: DefaultPrecision}
}

// BinaryConfig returns the binary configuration with two fraction digits.
func BinaryConfig() Config {
	return Config{BinaryPrefix: true, Precision: DefaultPrecision}
}

// Converter formats byte counts and parses size strings.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	base      float64
	units     []string
	precision int
	cfg       Config
}

var (
	decimal = mustConverter(DefaultConfig())
	binary  = mustConverter(BinaryConfig())
)

// Decimal returns the default converter: base 1000, SI units, precision 2.
func Decimal() *Converter {
	return decimal
}

// Binary returns the binary converter: base 1024, IEC units, precision 2.
func Binary() *Converter {
	return binary
}

// NewConverter validates cfg and creates a Converter from it.
func NewConverter(cfg Config) (*Converter, error) {
	if cfg.Precision < 0 {
		return nil, &ConfigurationError{
			Field:  "precision",
			Reason: fmt.Sprintf("must not be negative, got %d", cfg.Precision),
		}
	}

	base, err := resolveBase(cfg)
	if err != nil {
		return nil, err
	}

	units := cfg.Units
	if units == nil {
		units = DecimalUnits
		if cfg.BinaryPrefix {
			units = BinaryUnits
		}
	}

	if err := validateUnits(units); err != nil {
		return nil, err
	}

	owned := append([]string(nil), units...)
	cfg.Base = base
	cfg.Units = owned

	return &Converter{
		base:      float64(base),
		units:     owned,
		precision: cfg.Precision,
		cfg:       cfg,
	}, nil
}

func mustConverter(cfg Config) *Converter {
	c, err := NewConverter(cfg)
	if err != nil {
		panic(err)
	}

	return c
}

func resolveBase(cfg Config) (int, error) {
	switch {
	case cfg.Base == 0 && cfg.BinaryPrefix:
		return BinaryBase, nil
	case cfg.Base == 0:
		return DecimalBase, nil
	case cfg.BinaryPrefix && cfg.Base != BinaryBase:
		return 0, &ConfigurationError{
			Field:  "base",
			Reason: fmt.Sprintf("binary prefix requires base %d, got %d", BinaryBase, cfg.Base),
		}
	case cfg.Base < 2:
		return 0, &ConfigurationError{
			Field:  "base",
			Reason: fmt.Sprintf("must be at least 2, got %d", cfg.Base),
		}
	}

	return cfg.Base, nil
}

func validateUnits(units []string) error {
	if len(units) == 0 {
		return &ConfigurationError{Field: "units", Reason: "unit table is empty"}
	}

	seen := make(map[string]int, len(units))

	for i, u := range units {
		if u == "" {
			return &ConfigurationError{Field: "units", Reason: fmt.Sprintf("unit %d is empty", i)}
		}

		for _, r := range u {
			if !unicode.IsLetter(r) {
				return &ConfigurationError{
					Field:  "units",
					Reason: fmt.Sprintf("unit %q contains non-letter %q", u, r),
				}
			}
		}

		key := strings.ToLower(u)
		if j, dup := seen[key]; dup {
			return &ConfigurationError{
				Field:  "units",
				Reason: fmt.Sprintf("unit %q duplicates %q", u, units[j]),
			}
		}

		seen[key] = i
	}

	return nil
}

// Config returns a copy of the configuration the converter was built from,
// with Base and Units resolved.
func (c *Converter) Config() Config {
	cfg := c.cfg
	cfg.Units = c.Units()

	return cfg
}

// Units returns a copy of the unit table.
func (c *Converter) Units() []string {
	return append([]string(nil), c.units...)
}

// Base returns the multiplier between adjacent units.
func (c *Converter) Base() int {
	return c.cfg.Base
}

// Precision returns the number of fraction digits rendered by Format.
func (c *Converter) Precision() int {
	return c.precision
}

// WithPrecision returns a new converter that differs only in precision.
func (c *Converter) WithPrecision(precision int) (*Converter, error) {
	cfg := c.Config()
	cfg.Precision = precision

	return NewConverter(cfg)
}

// WithBase returns a new converter using base and units together.
// A nil units keeps the current unit table.
func (c *Converter) WithBase(base int, units []string) (*Converter, error) {
	cfg := c.Config()
	cfg.BinaryPrefix = false
	cfg.Base = base

	if units != nil {
		cfg.Units = units
	}

	return NewConverter(cfg)
}
