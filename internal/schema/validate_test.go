package schema

import (
	"strings"
	"testing"
)

func TestValidateConfig_Valid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"empty", `{}`},
		{"full", `{
			"title": "Nightly",
			"max_fail": -1,
			"truncate_message": 0,
			"show_passed": true,
			"no_emoji": false,
			"summary_var": "GITHUB_STEP_SUMMARY",
			"console_encoding": "ISO-8859-1"
		}`},
		{"with $schema", `{"$schema": "./config.schema.json", "max_fail": 10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateConfig([]byte(tt.json)); err != nil {
				t.Errorf("ValidateConfig() error = %v", err)
			}
		})
	}
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not an object", `[]`},
		{"unknown key", `{"max_failures": 3}`},
		{"wrong type", `{"max_fail": "ten"}`},
		{"fractional count", `{"truncate_message": 1.5}`},
		{"empty title", `{"title": ""}`},
		{"bad variable name", `{"summary_var": "1-BAD"}`},
		{"bool as string", `{"show_passed": "yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateConfig([]byte(tt.json)); err == nil {
				t.Errorf("ValidateConfig(%s) error = nil, want error", tt.json)
			}
		})
	}
}

func TestValidateConfig_MalformedJSON(t *testing.T) {
	err := ValidateConfig([]byte(`{"max_fail":`))
	if err == nil || !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("ValidateConfig() error = %v, want invalid JSON", err)
	}
}

func TestValidateValue(t *testing.T) {
	if err := ValidateValue(map[string]any{"max_fail": 5, "show_passed": true}); err != nil {
		t.Errorf("ValidateValue() error = %v", err)
	}
	if err := ValidateValue(map[string]any{"unexpected": 1}); err == nil {
		t.Error("ValidateValue() error = nil, want error")
	}
}
