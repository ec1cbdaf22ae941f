package testhelper

import (
	"fmt"
	"strings"
)

// CompareMarkdown compares two documents line by line. On mismatch it returns
// false and a description of the first differing line.
func CompareMarkdown(expected, actual string) (bool, string) {
	if expected == actual {
		return true, ""
	}

	want := strings.Split(expected, "\n")
	got := strings.Split(actual, "\n")
	for i := 0; i < len(want) && i < len(got); i++ {
		if want[i] != got[i] {
			return false, fmt.Sprintf("line %d: expected %q, got %q", i+1, want[i], got[i])
		}
	}
	if len(got) > len(want) {
		return false, fmt.Sprintf("line %d: unexpected extra line %q", len(want)+1, got[len(want)])
	}
	return false, fmt.Sprintf("line %d: missing line %q", len(got)+1, want[len(got)])
}
