// Package report loads JUnit-style XML test reports (as written by GoogleTest
// and similar C++ frameworks) into an in-memory tree.
package report

// UnnamedSuite is the display name used for a suite without a name attribute.
const UnnamedSuite = "(unnamed)"

// Report is the root of a parsed test report.
type Report struct {
	Suites []Suite
}

// Suite is a named group of test cases with the counts its generator declared.
type Suite struct {
	Name     string
	Tests    int
	Failures int
	Errors   int
	Skipped  int
	Time     string // Elapsed time, kept verbatim
	Cases    []Case
}

// Passed returns the derived passed count. It is not clamped: a negative value
// means the declared counts are inconsistent.
func (s Suite) Passed() int {
	return s.Tests - s.Failures - s.Errors - s.Skipped
}

// Case is a single test result.
type Case struct {
	ClassName string
	Name      string
	Failure   *Marker
	Error     *Marker
	Skipped   bool
}

// Marker is a <failure> or <error> element attached to a case.
type Marker struct {
	Message string
	Text    string
}

// FullName returns "classname.name", or just the name when there is no class.
func (c Case) FullName() string {
	if c.ClassName != "" {
		return c.ClassName + "." + c.Name
	}
	return c.Name
}

// Failing reports whether the case carries a failure or error marker.
func (c Case) Failing() bool {
	return c.Failure != nil || c.Error != nil
}

// Outcome classifies a case into exactly one result bucket.
type Outcome int

const (
	OutcomePassed Outcome = iota
	OutcomeFailed
	OutcomeErrored
	OutcomeSkipped
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeFailed:
		return "failed"
	case OutcomeErrored:
		return "errored"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "passed"
	}
}

// Outcome returns the case's classification. A failure marker takes precedence
// over an error marker, and both take precedence over a skip marker.
func (c Case) Outcome() Outcome {
	switch {
	case c.Failure != nil:
		return OutcomeFailed
	case c.Error != nil:
		return OutcomeErrored
	case c.Skipped:
		return OutcomeSkipped
	default:
		return OutcomePassed
	}
}
