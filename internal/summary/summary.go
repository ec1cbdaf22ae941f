// Package summary aggregates a parsed report into per-suite rows, global
// totals and the failing/passed case listings rendered in the Markdown summary.
package summary

import (
	"strings"

	"github.com/quickprint-soft/gtest-run/internal/report"
)

// Defaults mirrored by the CLI flags.
const (
	DefaultMaxMessage = 300
	Ellipsis          = "..."
	messageSeparator  = " | "
)

// Options controls aggregation.
type Options struct {
	// MaxMessage truncates failure messages longer than this many characters.
	// Zero or negative disables truncation.
	MaxMessage int
	// ShowPassed collects the names of passing cases.
	ShowPassed bool
}

// Counts holds the declared and derived counts of a suite or of the whole run.
// Passed is derived and may be negative when the declared counts disagree.
type Counts struct {
	Total   int
	Passed  int
	Failed  int
	Errors  int
	Skipped int
}

// SuiteRow is one line of the per-suite table.
type SuiteRow struct {
	Name string
	Counts
	Time string
}

// FailingCase is a case with a failure and/or error marker.
type FailingCase struct {
	Name    string
	Message string
}

// Summary is the aggregated view of a report.
type Summary struct {
	Suites  []SuiteRow
	Totals  Counts
	Failing []FailingCase
	Passed  []string
}

// Aggregate walks the report once. Ordering follows the document.
func Aggregate(rep *report.Report, opts Options) *Summary {
	s := &Summary{}
	if rep == nil {
		return s
	}

	for _, suite := range rep.Suites {
		s.Suites = append(s.Suites, SuiteRow{
			Name: suite.Name,
			Counts: Counts{
				Total:   suite.Tests,
				Passed:  suite.Passed(),
				Failed:  suite.Failures,
				Errors:  suite.Errors,
				Skipped: suite.Skipped,
			},
			Time: suite.Time,
		})

		s.Totals.Total += suite.Tests
		s.Totals.Failed += suite.Failures
		s.Totals.Errors += suite.Errors
		s.Totals.Skipped += suite.Skipped

		for _, c := range suite.Cases {
			switch c.Outcome() {
			case report.OutcomeFailed, report.OutcomeErrored:
				s.Failing = append(s.Failing, FailingCase{
					Name:    c.FullName(),
					Message: Truncate(CombinedMessage(c), opts.MaxMessage),
				})
			case report.OutcomePassed:
				if opts.ShowPassed {
					s.Passed = append(s.Passed, c.FullName())
				}
			}
		}
	}

	s.Totals.Passed = s.Totals.Total - s.Totals.Failed - s.Totals.Errors - s.Totals.Skipped
	return s
}

// CombinedMessage joins the failure and error markers of a case, in that order.
// Each part is "<message> <body>" trimmed; empty parts are dropped.
func CombinedMessage(c report.Case) string {
	var parts []string
	for _, m := range []*report.Marker{c.Failure, c.Error} {
		if m == nil {
			continue
		}
		if part := strings.TrimSpace(m.Message + " " + m.Text); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, messageSeparator)
}

// Truncate cuts msg to limit characters and appends Ellipsis when it is longer.
// A limit of zero or less returns msg unchanged.
func Truncate(msg string, limit int) string {
	if limit <= 0 {
		return msg
	}
	runes := []rune(msg)
	if len(runes) <= limit {
		return msg
	}
	return string(runes[:limit]) + Ellipsis
}

// HasFailures reports whether any failed or errored tests were declared.
func (s *Summary) HasFailures() bool {
	return s.Totals.Failed > 0 || s.Totals.Errors > 0
}
