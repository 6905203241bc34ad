package config

import (
	"fmt"
	"strings"

	"github.com/schmitthub/sevlog/pkg/logger"
)

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Message
}

// MultiValidationError holds multiple validation errors
type MultiValidationError struct {
	Errors []error
}

func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d configuration errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendSimple, BackendZerolog, BackendNop:
	default:
		errs = append(errs, &ValidationError{
			Field:   "backend",
			Message: fmt.Sprintf("must be one of %s, %s, %s", BackendSimple, BackendZerolog, BackendNop),
			Value:   c.Backend,
		})
	}

	if _, err := logger.ParseLevel(c.Level); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "level",
			Message: err.Error(),
			Value:   c.Level,
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errs = append(errs, &ValidationError{
			Field:   "logging.max_size_mb",
			Message: "must not be negative",
			Value:   c.Logging.MaxSizeMB,
		})
	}

	if len(errs) > 0 {
		return &MultiValidationError{Errors: errs}
	}
	return nil
}
