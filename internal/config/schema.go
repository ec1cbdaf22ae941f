// Package config loads the optional YAML file holding defaults for the
// gtest-md command line flags.
package config

// Config mirrors the configuration file. Pointer fields distinguish an unset
// key from an explicit zero value.
type Config struct {
	Title           *string `yaml:"title,omitempty" json:"title,omitempty"`
	MaxFail         *int    `yaml:"max_fail,omitempty" json:"max_fail,omitempty"`
	TruncateMessage *int    `yaml:"truncate_message,omitempty" json:"truncate_message,omitempty"`
	ShowPassed      *bool   `yaml:"show_passed,omitempty" json:"show_passed,omitempty"`
	NoEmoji         *bool   `yaml:"no_emoji,omitempty" json:"no_emoji,omitempty"`
	SummaryVar      *string `yaml:"summary_var,omitempty" json:"summary_var,omitempty"`
	ConsoleEncoding *string `yaml:"console_encoding,omitempty" json:"console_encoding,omitempty"`
}

// Settings are the fully resolved options of one run.
type Settings struct {
	XMLPath         string
	OutPath         string
	HTMLPath        string
	EnvFile         string
	SummaryEnv      bool
	Quiet           bool
	Title           string
	MaxFail         int
	TruncateMessage int
	ShowPassed      bool
	NoEmoji         bool
	SummaryVar      string
	ConsoleEncoding string
}
