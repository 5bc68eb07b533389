package types

import "fmt"

// ValidationError reports malformed input data: out-of-range intervals,
// negative durations, non-finite timecodes, oversize caption text. It is
// always fatal to the current invocation and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// Validationf builds a ValidationError with a formatted reason.
func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ConfigError reports invalid configuration (missing frame rate, bad
// threshold). Fatal at startup.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}
