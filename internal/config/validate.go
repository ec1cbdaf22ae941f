package config

import (
	"fmt"
	"regexp"
)

// Environment variable names accepted for the job summary target.
var varNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidationError represents an invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the resolved settings.
func Validate(s Settings) error {
	if s.XMLPath == "" {
		return &ValidationError{Field: "--xml", Message: "is required"}
	}
	if s.Title == "" {
		return &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if err := ValidateVarName(s.SummaryVar); err != nil {
		return err
	}
	return nil
}

// ValidateVarName checks that name is a usable environment variable name.
func ValidateVarName(name string) error {
	if name == "" {
		return &ValidationError{Field: "summary_var", Message: "is required"}
	}
	if !varNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   "summary_var",
			Message: "must match pattern ^[A-Za-z_][A-Za-z0-9_]*$",
		}
	}
	return nil
}
