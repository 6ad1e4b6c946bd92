package config

import "fmt"

// ConfigurationError reports an invalid flag value
type ConfigurationError struct {
	Flag   string
	Value  string
	Reason string
	Err    error // parse error, if any
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s: %s", e.Value, e.Flag, e.Reason)
}

// Unwrap returns the underlying parse error for errors.Is/As support
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
