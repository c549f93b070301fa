package config

import (
	"fmt"
	"strconv"
)

// ConfigurationError reports a planner input outside its allowed range.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ValidateDailyHours accepts daily budgets from MIN_DAILY_HOURS to MAX_DAILY_HOURS.
func ValidateDailyHours(hours int) error {
	if hours < MIN_DAILY_HOURS || hours > MAX_DAILY_HOURS {
		return &ConfigurationError{
			Field:  "daily_hours",
			Value:  strconv.Itoa(hours),
			Reason: fmt.Sprintf("must be between %d and %d", MIN_DAILY_HOURS, MAX_DAILY_HOURS),
		}
	}
	return nil
}

// ValidateSubjectHours rejects a negative weekly hour count.
func ValidateSubjectHours(subject string, hours int) error {
	if hours < 0 {
		return &ConfigurationError{
			Field:  "weekly hours of " + subject,
			Value:  strconv.Itoa(hours),
			Reason: "must not be negative",
		}
	}
	return nil
}
