package size

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every ConfigurationError.
	ErrConfiguration = errors.New("invalid size configuration")
	// ErrInvalidValue is matched by every InvalidValueError.
	ErrInvalidValue = errors.New("invalid byte count")
	// ErrParse is matched by every ParseError.
	ErrParse = errors.New("invalid size string")
)

// ConfigurationError reports invalid converter construction arguments.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid size configuration: %s: %s", e.Field, e.Reason)
}

// Is makes ConfigurationError match ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvalidValueError reports a byte count that cannot be formatted.
type InvalidValueError struct {
	Value float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid byte count %v: must be a finite non-negative number", e.Value)
}

// Is makes InvalidValueError match ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// ParseError reports a size string that cannot be converted to bytes.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse size %q: %s", e.Input, e.Reason)
}

// Is makes ParseError match ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
