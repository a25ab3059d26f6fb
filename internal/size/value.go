package size

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Size is a byte count that can be set from human-readable strings in
// flags and config files. Both decimal (KB = 1000) and binary (KiB = 1024)
// units are accepted.
type Size uint64

// ParseSize parses s with either unit ladder.
func ParseSize(s string) (Size, error) {
	n, err := Decimal().ParseBytes(s)
	if err == nil {
		return Size(n), nil
	}

	if Decimal().knows(s) {
		return 0, err
	}

	n, binErr := Binary().ParseBytes(s)
	if binErr != nil {
		if Binary().knows(s) {
			return 0, binErr
		}

		return 0, err
	}

	return Size(n), nil
}

// knows reports whether the unit of s is in the converter's table.
func (c *Converter) knows(s string) bool {
	_, _, err := c.split(s)

	return err == nil
}

// Bytes returns the size as a plain byte count.
func (s Size) Bytes() uint64 {
	return uint64(s)
}

// String renders the size with binary units.
func (s Size) String() string {
	out, err := Binary().FormatUint64(uint64(s))
	if err != nil {
		return strconv.FormatUint(uint64(s), 10) + " B"
	}

	return out
}

// Set implements pflag.Value.
func (s *Size) Set(value string) error {
	parsed, err := ParseSize(value)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// Type implements pflag.Value.
func (s *Size) Type() string {
	return "size"
}

// MarshalText renders the exact byte count so it parses back unchanged.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(s), 10) + " B"), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return nil
	}

	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("size must be a string, got kind %d", value.Kind)
	}

	if value.Tag == "!!null" {
		*s = 0

		return nil
	}

	return s.Set(value.Value)
}
