package cli

import "github.com/quickprint-soft/gtest-run/internal/output"

// widthFlag aligns flag descriptions in help output.
const widthFlag = 26

func printUsage(w *output.Writer) {
	w.HelpTitle("gtest-md - summarize GoogleTest XML reports as Markdown")

	w.HelpSection("Usage:")
	w.HelpUsage("gtest-md --xml <path> [flags]")

	w.HelpSection("Input and Output:")
	w.HelpFlag("--xml <path>", "JUnit/GoogleTest XML report (required)", widthFlag)
	w.HelpFlag("--out <path>", "Write the Markdown summary to a file", widthFlag)
	w.HelpFlag("--html <path>", "Also write an HTML rendition", widthFlag)
	w.HelpFlag("--summary-env", "Append to the file named by the summary variable", widthFlag)
	w.HelpFlag("--summary-var <name>", "Summary variable (default GITHUB_STEP_SUMMARY)", widthFlag)

	w.HelpSection("Formatting:")
	w.HelpFlag("--title <text>", "Document title (default \"GTest Summary\")", widthFlag)
	w.HelpFlag("--max-fail <n>", "Failing cases to list; 0 none, negative all (default 50)", widthFlag)
	w.HelpFlag("--truncate-message <n>", "Truncate messages to n characters; 0 disables (default 300)", widthFlag)
	w.HelpFlag("--show-passed", "List passed test cases", widthFlag)
	w.HelpFlag("--no-emoji", "Plain ASCII status labels", widthFlag)

	w.HelpSection("General:")
	w.HelpFlag("--config <path>", "YAML defaults (default .gtest-md.yaml if present)", widthFlag)
	w.HelpFlag("--env-file <path>", "Dotenv file overlaying the environment", widthFlag)
	w.HelpFlag("--console-encoding <name>", "Console charset (default from locale)", widthFlag)
	w.HelpFlag("-q, --quiet", "Suppress informational notes", widthFlag)
	w.HelpFlag("-h, --help", "Show this help", widthFlag)
	w.HelpFlag("--version", "Show version", widthFlag)

	w.HelpSection("Environment:")
	w.HelpEnvVar("GITHUB_STEP_SUMMARY", "Job summary file used by --summary-env", 20)
	w.HelpEnvVar("LC_ALL, LC_CTYPE, LANG", "Locale consulted for the console charset", 20)

	w.HelpSection("Exit Codes:")
	w.HelpEnvVar("0", "Success", 2)
	w.HelpEnvVar("1", "Report not found", 2)
	w.HelpEnvVar("2", "Report is not well-formed XML", 2)
	w.HelpEnvVar("3", "Invalid flags or configuration", 2)
	w.HelpEnvVar("4", "Output could not be written", 2)

	w.HelpSection("Examples:")
	w.HelpExample("gtest-md --xml build/test-results.xml", "Print the summary")
	w.HelpExample("gtest-md --xml report.xml --out summary.md --summary-env", "Write a file and append to the CI job summary")
	w.HelpExample("gtest-md --xml report.xml --no-emoji --max-fail=-1", "ASCII labels, every failure listed")
	w.Println("")
}
