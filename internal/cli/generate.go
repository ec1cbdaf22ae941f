package cli

import (
	"github.com/quickprint-soft/gtest-run/internal/config"
	"github.com/quickprint-soft/gtest-run/internal/console"
	"github.com/quickprint-soft/gtest-run/internal/errors"
	"github.com/quickprint-soft/gtest-run/internal/fsx"
	"github.com/quickprint-soft/gtest-run/internal/markdown"
	"github.com/quickprint-soft/gtest-run/internal/report"
	"github.com/quickprint-soft/gtest-run/internal/summary"
)

// generate loads the report and renders it as Markdown.
func generate(s config.Settings) (string, error) {
	rep, err := report.LoadFile(s.XMLPath)
	if err != nil {
		return "", err
	}

	sum := summary.Aggregate(rep, summary.Options{
		MaxMessage: s.TruncateMessage,
		ShowPassed: s.ShowPassed,
	})

	return markdown.Render(sum, markdown.Options{
		Title:      s.Title,
		MaxFailing: s.MaxFail,
		Plain:      s.NoEmoji,
	}), nil
}

// execute renders the report and delivers it to every requested destination.
// The console copy is always written last.
func execute(s config.Settings, env Env) error {
	con, err := newConsole(s, env)
	if err != nil {
		return err
	}

	doc, err := generate(s)
	if err != nil {
		return err
	}

	if s.OutPath != "" {
		if err := fsx.WriteFileAtomic(s.OutPath, []byte(doc), fsx.DefaultFileMode); err != nil {
			return errors.IO("failed to write Markdown", s.OutPath, err)
		}
		out.Info("Markdown written to %s", s.OutPath)
	}

	if s.HTMLPath != "" {
		page, err := markdown.HTMLPage(s.Title, []byte(doc))
		if err != nil {
			return errors.Wrap(err, "failed to render HTML")
		}
		if err := fsx.WriteFileAtomic(s.HTMLPath, page, fsx.DefaultFileMode); err != nil {
			return errors.IO("failed to write HTML", s.HTMLPath, err)
		}
		out.Info("HTML written to %s", s.HTMLPath)
	}

	if s.SummaryEnv {
		if err := appendSummary(s.SummaryVar, doc, env); err != nil {
			return err
		}
	}

	if _, err := con.Print(doc); err != nil {
		return errors.IO("failed to write to console", "", err)
	}
	return nil
}

// appendSummary appends doc to the file named by the variable. An unset or
// empty variable only produces a warning.
func appendSummary(name, doc string, env Env) error {
	target := env.Getenv(name)
	if target == "" {
		out.Warning("$%s not set; skipping append", name)
		return nil
	}
	if err := fsx.AppendFile(target, []byte(doc), fsx.DefaultFileMode); err != nil {
		return errors.IO("failed to append summary", target, err)
	}
	out.Info("Appended to $%s", name)
	return nil
}

// newConsole opens the console for the final copy of the document. The
// charset comes from the settings, then the locale.
func newConsole(s config.Settings, env Env) (*console.Console, error) {
	charset := s.ConsoleEncoding
	if charset == "" {
		charset = console.FromLocale(env.Getenv)
	}

	con, err := console.New(out.Stdout(), charset)
	if err != nil {
		if s.ConsoleEncoding != "" {
			return nil, errors.Configf("invalid console encoding %q: %v", s.ConsoleEncoding, err)
		}
		// An unknown locale charset falls back to UTF-8.
		con, err = console.New(out.Stdout(), "")
		if err != nil {
			return nil, errors.Wrap(err, "failed to open console")
		}
	}
	con.SetFallback(markdown.ASCIIFallback...)
	if !s.NoEmoji {
		con.WidenToUTF8()
	}
	return con, nil
}
