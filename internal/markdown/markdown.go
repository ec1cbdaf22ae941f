// Package markdown renders an aggregated test summary as a Markdown document
// suitable for CI job summaries.
package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quickprint-soft/gtest-run/internal/summary"
)

// Defaults mirrored by the CLI flags.
const (
	DefaultTitle      = "GTest Summary"
	DefaultMaxFailing = 50
)

// Status symbols used by the decorated vocabulary.
const (
	SymbolPass = "✅"
	SymbolFail = "❌"
	SymbolWarn = "⚠️"
)

// ASCIIFallback maps each status symbol to a bracketed plain-text tag. The
// pairs are in strings.NewReplacer order.
var ASCIIFallback = []string{
	SymbolPass, "[PASS]",
	SymbolFail, "[FAIL]",
	SymbolWarn, "[WARN]",
	"⚠", "[WARN]",
}

// Status is the overall outcome of a run.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailures
	StatusErrors
	StatusIssues
)

var (
	decoratedLabels = map[Status]string{
		StatusSuccess:  SymbolPass + " All Passed",
		StatusFailures: SymbolFail + " Failures",
		StatusErrors:   SymbolWarn + " Errors",
		StatusIssues:   SymbolWarn + " Issues",
	}
	plainLabels = map[Status]string{
		StatusSuccess:  "ALL PASSED",
		StatusFailures: "FAILURES",
		StatusErrors:   "ERRORS",
		StatusIssues:   "ISSUES",
	}
)

// StatusOf derives the overall status from the global totals.
func StatusOf(totals summary.Counts) Status {
	switch {
	case totals.Failed == 0 && totals.Errors == 0:
		return StatusSuccess
	case totals.Failed > 0:
		return StatusFailures
	case totals.Errors > 0:
		return StatusErrors
	default:
		return StatusIssues
	}
}

// Label returns the status label in the decorated or plain vocabulary.
func (s Status) Label(plain bool) string {
	if plain {
		return plainLabels[s]
	}
	return decoratedLabels[s]
}

// Options controls rendering.
type Options struct {
	// Title is the level-one heading; DefaultTitle when empty.
	Title string
	// MaxFailing limits the failing case listing. Zero hides the section,
	// negative lists every case.
	MaxFailing int
	// Plain selects the ASCII status vocabulary.
	Plain bool
}

var suiteHeader = []string{"TestSuite", "Total", "Passed", "Failed", "Errors", "Skipped", "Time(s)"}

// Render formats the summary. The output is deterministic for equal inputs.
func Render(s *summary.Summary, opts Options) string {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	var lines []string
	lines = append(lines,
		"# "+title,
		fmt.Sprintf("Status: **%s**", StatusOf(s.Totals).Label(opts.Plain)),
		"",
		tableRow(suiteHeader),
		separatorRow(suiteHeader),
	)
	for _, row := range s.Suites {
		lines = append(lines, tableRow([]string{
			row.Name,
			strconv.Itoa(row.Total),
			strconv.Itoa(row.Passed),
			strconv.Itoa(row.Failed),
			strconv.Itoa(row.Errors),
			strconv.Itoa(row.Skipped),
			row.Time,
		}))
	}

	lines = append(lines,
		"",
		"## Totals",
		"| Metric | Value |",
		"|--------|-------|",
		fmt.Sprintf("| Total | %d |", s.Totals.Total),
		fmt.Sprintf("| Passed | %d |", s.Totals.Passed),
		fmt.Sprintf("| Failed | %d |", s.Totals.Failed),
		fmt.Sprintf("| Errors | %d |", s.Totals.Errors),
		fmt.Sprintf("| Skipped | %d |", s.Totals.Skipped),
	)

	if len(s.Failing) > 0 && opts.MaxFailing != 0 {
		shown := s.Failing
		if opts.MaxFailing > 0 && opts.MaxFailing < len(shown) {
			shown = shown[:opts.MaxFailing]
		}
		lines = append(lines, "", "## Failed / Error TestCases")
		for _, fc := range shown {
			lines = append(lines, fmt.Sprintf("- **%s**: %s", Escape(fc.Name), Escape(fc.Message)))
		}
		if hidden := len(s.Failing) - len(shown); hidden > 0 {
			lines = append(lines, fmt.Sprintf("\n... (%d more not shown) ...", hidden))
		}
	}

	if len(s.Passed) > 0 {
		lines = append(lines, "", fmt.Sprintf("<details><summary>Passed TestCases (%d)</summary>", len(s.Passed)))
		for _, name := range s.Passed {
			lines = append(lines, "- "+Escape(name))
		}
		lines = append(lines, "</details>")
	}

	return strings.Join(lines, "\n") + "\n"
}

// Escape escapes vertical bars so cell text cannot split a table row.
func Escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func tableRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = Escape(c)
	}
	return "| " + strings.Join(escaped, " | ") + " |"
}

func separatorRow(header []string) string {
	var b strings.Builder
	b.WriteString("|")
	for _, h := range header {
		b.WriteString(strings.Repeat("-", len(h)+2))
		b.WriteString("|")
	}
	return b.String()
}
