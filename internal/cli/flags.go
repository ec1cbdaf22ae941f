package cli

import (
	"strconv"
	"strings"

	"github.com/quickprint-soft/gtest-run/internal/config"
	"github.com/quickprint-soft/gtest-run/internal/errors"
)

// flagValues holds parsed command line flags. Pointer fields are nil when the
// flag was not given, so the config file can supply the value instead.
type flagValues struct {
	xml        string
	out        string
	html       string
	envFile    string
	configPath string
	summaryEnv bool
	quiet      bool

	title           *string
	maxFail         *int
	truncateMessage *int
	showPassed      *bool
	noEmoji         *bool
	summaryVar      *string
	consoleEncoding *string
}

// valueFlags are the flags that take an argument.
var valueFlags = map[string]bool{
	"--xml":              true,
	"--out":              true,
	"--html":             true,
	"--env-file":         true,
	"--config":           true,
	"--title":            true,
	"--max-fail":         true,
	"--truncate-message": true,
	"--summary-var":      true,
	"--console-encoding": true,
}

// parseFlags parses the command line. Both "--flag value" and "--flag=value"
// are accepted for flags taking a value.
func parseFlags(args []string) (*flagValues, error) {
	opts := &flagValues{}

	i := 0
	for i < len(args) {
		arg := args[i]
		i++

		name, value, hasValue := strings.Cut(arg, "=")
		if !strings.HasPrefix(name, "--") {
			hasValue = false
			name = arg
		}

		if valueFlags[name] {
			if !hasValue {
				if i >= len(args) {
					return nil, errors.Configf("%s requires a value", name)
				}
				value = args[i]
				i++
			}
			if err := opts.setValue(name, value); err != nil {
				return nil, err
			}
			continue
		}

		if hasValue {
			return nil, errors.Configf("%s does not take a value", name)
		}

		switch name {
		case "--summary-env":
			opts.summaryEnv = true
		case "--show-passed":
			opts.showPassed = boolPtr(true)
		case "--no-emoji":
			opts.noEmoji = boolPtr(true)
		case "-q", "--quiet":
			opts.quiet = true
		default:
			if strings.HasPrefix(name, "-") {
				return nil, errors.Configf("unknown flag %q", name)
			}
			return nil, errors.Configf("unexpected argument %q", name)
		}
	}

	return opts, nil
}

func (f *flagValues) setValue(name, value string) error {
	switch name {
	case "--xml":
		f.xml = value
	case "--out":
		f.out = value
	case "--html":
		f.html = value
	case "--env-file":
		f.envFile = value
	case "--config":
		f.configPath = value
	case "--title":
		f.title = &value
	case "--summary-var":
		f.summaryVar = &value
	case "--console-encoding":
		f.consoleEncoding = &value
	case "--max-fail", "--truncate-message":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errors.Configf("invalid %s value %q: must be an integer", name, value)
		}
		if name == "--max-fail" {
			f.maxFail = &n
		} else {
			f.truncateMessage = &n
		}
	default:
		return errors.Newf("unhandled flag %s", name)
	}
	return nil
}

// applyTo overlays the given flags onto s.
func (f *flagValues) applyTo(s *config.Settings) {
	s.XMLPath = f.xml
	s.OutPath = f.out
	s.HTMLPath = f.html
	s.EnvFile = f.envFile
	s.SummaryEnv = f.summaryEnv
	s.Quiet = f.quiet

	if f.title != nil {
		s.Title = *f.title
	}
	if f.maxFail != nil {
		s.MaxFail = *f.maxFail
	}
	if f.truncateMessage != nil {
		s.TruncateMessage = *f.truncateMessage
	}
	if f.showPassed != nil {
		s.ShowPassed = *f.showPassed
	}
	if f.noEmoji != nil {
		s.NoEmoji = *f.noEmoji
	}
	if f.summaryVar != nil {
		s.SummaryVar = *f.summaryVar
	}
	if f.consoleEncoding != nil {
		s.ConsoleEncoding = *f.consoleEncoding
	}
}

func boolPtr(b bool) *bool { return &b }
