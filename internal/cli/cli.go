// Package cli implements the gtest-md command.
package cli

import (
	"os"

	"github.com/quickprint-soft/gtest-run/internal/errors"
	"github.com/quickprint-soft/gtest-run/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the shared writer for notes, warnings and help.
var out = output.New()

// lookupEnv and getwd are replaced in tests.
var (
	lookupEnv = os.LookupEnv
	getwd     = os.Getwd
)

// wantsHelp returns true if args contain -h or --help in a flag position.
// The argument following a value flag is its value, never a flag.
func wantsHelp(args []string) bool {
	return hasFlag(args, "-h", "--help")
}

// hasFlag reports whether any of names appears in a flag position.
func hasFlag(args []string, names ...string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		for _, name := range names {
			if arg == name {
				return true
			}
		}
		if valueFlags[arg] {
			i++
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if wantsHelp(args) {
		printUsage(out)
		return errors.ExitSuccess
	}
	if hasFlag(args, "--version") {
		out.Println("gtest-md %s", Version)
		return errors.ExitSuccess
	}

	opts, err := parseFlags(args)
	if err != nil {
		return fail(err)
	}
	out.SetQuiet(opts.quiet)

	settings, env, err := resolveSettings(opts)
	if err != nil {
		return fail(err)
	}

	if err := execute(settings, env); err != nil {
		return fail(err)
	}
	return errors.ExitSuccess
}

// fail reports err on stderr and returns its exit code.
func fail(err error) int {
	out.ErrorPrefix("%v", err)
	if errors.IsKind(err, errors.KindConfig) {
		out.Errorln("run 'gtest-md --help' for usage")
	}
	return errors.GetExitCode(err)
}
