// Package gtestmd provides public constants for tools wrapping the gtest-md CLI.
package gtestmd

// Exit codes returned by the gtest-md CLI.
// These constants allow CI scripts and wrappers to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the summary was rendered and delivered.
	ExitSuccess = 0

	// ExitNotFound indicates the input report path does not exist.
	ExitNotFound = 1

	// ExitParseError indicates the input report is not well-formed XML.
	ExitParseError = 2

	// ExitConfigError indicates invalid flags or an invalid configuration file.
	ExitConfigError = 3

	// ExitRuntimeError indicates an output artifact could not be written.
	ExitRuntimeError = 4
)
