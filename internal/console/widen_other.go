//go:build !windows

package console

import "io"

// widenConsole is a no-op: the terminal encoding follows the locale and
// cannot be changed by the process.
func widenConsole(io.Writer) bool {
	return false
}
