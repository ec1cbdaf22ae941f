package report

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// AttrInt parses a count attribute. Missing, empty and malformed values yield
// 0. Negative values are kept so inconsistent reports stay visible.
func AttrInt(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// attr returns the value of the named attribute, or "" when absent.
func attr(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
