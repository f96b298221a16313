package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for expected failure modes
var (
	ErrInvalidInversion = errors.New("inversion index out of range for quality")
	ErrRangeTooNarrow   = errors.New("octave range too narrow for chord")
	ErrUnknownQuality   = errors.New("unknown chord quality")
	ErrUnknownLevel     = errors.New("unknown level")
)

// ConfigError represents a misconfigured level. Wrong answers are plain
// booleans everywhere in the engine; only configuration preconditions
// surface as errors.
type ConfigError struct {
	Field  string // "qualities", "inversions", "octave_range", ...
	Reason string
	Cause  error
}

func (e *ConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("level config %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("level config %s: %v", e.Field, e.Cause)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a ConfigError
func NewConfigError(field, reason string, cause error) *ConfigError {
	return &ConfigError{
		Field:  field,
		Reason: reason,
		Cause:  cause,
	}
}
