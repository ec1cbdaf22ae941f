//go:build windows

package console

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

const codePageUTF8 = 65001

// widenConsole switches the attached Windows console to the UTF-8 code page.
func widenConsole(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return false
	}
	return windows.SetConsoleOutputCP(codePageUTF8) == nil
}
