package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestReportError_Error(t *testing.T) {
	cause := errors.New("unexpected EOF")
	tests := []struct {
		name     string
		err      *ReportError
		expected string
	}{
		{
			name:     "message only",
			err:      &ReportError{Message: "something failed"},
			expected: "something failed",
		},
		{
			name:     "with path",
			err:      &ReportError{Message: "XML file not found", Path: "report.xml"},
			expected: "XML file not found: report.xml",
		},
		{
			name:     "with path and cause",
			err:      &ReportError{Message: "failed to parse XML", Path: "report.xml", Cause: cause},
			expected: "failed to parse XML: report.xml: unexpected EOF",
		},
		{
			name:     "cause without path",
			err:      &ReportError{Message: "write failed", Cause: cause},
			expected: "write failed: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReportError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ReportError{
		Message: "wrapper",
		Cause:   cause,
	}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}

	errNoCause := &ReportError{Message: "no cause"}
	if got := errNoCause.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestReportError_ExitCode(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want int
	}{
		{KindRuntime, ExitRuntimeError},
		{KindNotFound, ExitNotFound},
		{KindParse, ExitParseError},
		{KindConfig, ExitConfigError},
		{KindIO, ExitRuntimeError},
	}

	for _, tt := range tests {
		err := &ReportError{Kind: tt.kind}
		if got := err.ExitCode(); got != tt.want {
			t.Errorf("ExitCode() for kind %d = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestExitCodes_Distinct(t *testing.T) {
	if ExitNotFound == ExitParseError {
		t.Fatal("not-found and parse errors must use different exit codes")
	}
	for _, code := range []int{ExitNotFound, ExitParseError, ExitConfigError, ExitRuntimeError} {
		if code == ExitSuccess {
			t.Errorf("failure exit code %d collides with success", code)
		}
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	if err := NotFound("XML file", "a.xml"); err.Kind != KindNotFound || err.Error() != "XML file not found: a.xml" {
		t.Errorf("NotFound() = %+v", err)
	}
	if err := Parse("a.xml", cause); err.Kind != KindParse || err.Cause != cause {
		t.Errorf("Parse() = %+v", err)
	}
	if err := Configf("bad %s", "flag"); err.Kind != KindConfig || err.Message != "bad flag" {
		t.Errorf("Configf() = %+v", err)
	}
	if err := IO("write output", "out.md", cause); err.Kind != KindIO || err.Path != "out.md" {
		t.Errorf("IO() = %+v", err)
	}
	if err := Wrap(cause, "context"); err.Kind != KindRuntime || err.Cause != cause {
		t.Errorf("Wrap() = %+v", err)
	}
	if err := Newf("n=%d", 3); err.Message != "n=3" || err.ExitCode() != ExitRuntimeError {
		t.Errorf("Newf() = %+v", err)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"not found", NotFound("XML file", "x"), ExitNotFound},
		{"parse", Parse("x", errors.New("bad")), ExitParseError},
		{"config", Config("bad"), ExitConfigError},
		{"wrapped parse", fmt.Errorf("load: %w", Parse("x", nil)), ExitParseError},
		{"plain error", errors.New("plain"), ExitRuntimeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("XML file", "x"))
	if !IsKind(err, KindNotFound) {
		t.Error("IsKind(KindNotFound) = false, want true")
	}
	if IsKind(err, KindParse) {
		t.Error("IsKind(KindParse) = true, want false")
	}
	if IsKind(errors.New("plain"), KindRuntime) {
		t.Error("IsKind on a plain error = true, want false")
	}
}
