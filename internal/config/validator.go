package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MultiValidationError represents multiple validation errors.
type MultiValidationError struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *MultiValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("validation failed with %d errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		builder.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return builder.String()
}

// Validate checks that every required key is present and that present values
// are in range. It reports all problems at once and must be called before
// ApplyDefaults, otherwise absent required keys cannot be detected.
func (c *Config) Validate() error {
	var errors []ValidationError

	if c.RecordFrequency == nil {
		errors = append(errors, ValidationError{
			Field:   "perf_record_frequency",
			Message: "required key is missing",
		})
	} else if *c.RecordFrequency <= 0 {
		errors = append(errors, ValidationError{
			Field:   "perf_record_frequency",
			Message: "sampling frequency must be positive",
		})
	}

	if c.RecordDuration == nil {
		errors = append(errors, ValidationError{
			Field:   "perf_record_duration",
			Message: "required key is missing",
		})
	} else if *c.RecordDuration < 0 {
		errors = append(errors, ValidationError{
			Field:   "perf_record_duration",
			Message: "duration must not be negative",
		})
	}

	if c.StatDuration == nil {
		errors = append(errors, ValidationError{
			Field:   "perf_stat_duration",
			Message: "required key is missing",
		})
	} else if *c.StatDuration < 0 {
		errors = append(errors, ValidationError{
			Field:   "perf_stat_duration",
			Message: "duration must not be negative",
		})
	}

	if c.StatCountDeltas != nil && *c.StatCountDeltas < 0 {
		errors = append(errors, ValidationError{
			Field:   "perf_stat_count_deltas",
			Message: "interval must not be negative",
		})
	}

	if len(errors) > 0 {
		return &MultiValidationError{Errors: errors}
	}
	return nil
}
