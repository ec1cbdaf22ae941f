package config

// Default configuration values.
const (
	DefaultFileName        = ".gtest-md.yaml"
	DefaultTitle           = "GTest Summary"
	DefaultMaxFail         = 50
	DefaultTruncateMessage = 300
	DefaultSummaryVar      = "GITHUB_STEP_SUMMARY"
)

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Title:           DefaultTitle,
		MaxFail:         DefaultMaxFail,
		TruncateMessage: DefaultTruncateMessage,
		SummaryVar:      DefaultSummaryVar,
	}
}

// ApplyTo overlays the keys present in the file onto s.
func (c *Config) ApplyTo(s *Settings) {
	if c == nil {
		return
	}
	if c.Title != nil {
		s.Title = *c.Title
	}
	if c.MaxFail != nil {
		s.MaxFail = *c.MaxFail
	}
	if c.TruncateMessage != nil {
		s.TruncateMessage = *c.TruncateMessage
	}
	if c.ShowPassed != nil {
		s.ShowPassed = *c.ShowPassed
	}
	if c.NoEmoji != nil {
		s.NoEmoji = *c.NoEmoji
	}
	if c.SummaryVar != nil {
		s.SummaryVar = *c.SummaryVar
	}
	if c.ConsoleEncoding != nil {
		s.ConsoleEncoding = *c.ConsoleEncoding
	}
}
