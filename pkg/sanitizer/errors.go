package sanitizer

import (
	"errors"
	"strings"
)

// ErrInternal wraps unexpected failures during traversal, such as a custom
// transform function panicking.
var ErrInternal = errors.New("sanitizer: internal error")

// ConfigError reports rule names requested at configuration time that are not
// present in the registry. It is returned by ValidateNames only; Sanitize
// silently drops unknown names instead.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "sanitizer: unknown rules in config: " + strings.Join(e.Missing, ", ")
}

// ViolationError is returned by Sanitize when strict mode with rejection is
// enabled and at least one violation was recorded. The message lists every
// violation type so transport-layer error handlers can surface it directly.
type ViolationError struct {
	Violations []Violation
}

func (e *ViolationError) Error() string {
	types := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		types[i] = string(v.Type)
	}
	return "sanitization failed: " + strings.Join(types, ", ")
}
