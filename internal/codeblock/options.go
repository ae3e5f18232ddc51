package codeblock

import (
	"fmt"
	"strings"
)

// Theme selects the color palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme accepts "light" or "dark" (case-insensitive); empty means dark.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// Mode is the rendering mode of a code block.
type Mode int

const (
	ModePlain Mode = iota
	ModeCommandLine
)

func (m Mode) String() string {
	if m == ModeCommandLine {
		return "command-line"
	}
	return "plain"
}

// CommandLineConfig holds the transcript session parameters.
type CommandLineConfig struct {
	User               string `json:"user" yaml:"user"`
	Host               string `json:"host" yaml:"host"`
	Path               string `json:"path" yaml:"path"`
	BasePrompt         string `json:"basePrompt" yaml:"basePrompt"`
	ContinuationPrompt string `json:"continuationPrompt" yaml:"continuationPrompt"`
	// Lines, when non-empty, replaces automatic classification.
	Lines []Line `json:"lines,omitempty" yaml:"lines,omitempty"`
}

// DefaultCommandLine returns the defaults every session starts from.
func DefaultCommandLine() CommandLineConfig {
	return CommandLineConfig{
		User:               "user",
		Host:               "localhost",
		Path:               "~",
		BasePrompt:         "",
		ContinuationPrompt: "→ ",
	}
}

// CommandLineOverrides are caller-supplied fields; nil means "use default".
type CommandLineOverrides struct {
	User               *string `json:"user,omitempty" yaml:"user,omitempty"`
	Host               *string `json:"host,omitempty" yaml:"host,omitempty"`
	Path               *string `json:"path,omitempty" yaml:"path,omitempty"`
	BasePrompt         *string `json:"basePrompt,omitempty" yaml:"basePrompt,omitempty"`
	ContinuationPrompt *string `json:"continuationPrompt,omitempty" yaml:"continuationPrompt,omitempty"`
	Lines              []Line  `json:"lines,omitempty" yaml:"lines,omitempty"`
}

// MergeCommandLine lays overrides on top of DefaultCommandLine.
func MergeCommandLine(o CommandLineOverrides) CommandLineConfig {
	cfg := DefaultCommandLine()
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.User, o.User)
	set(&cfg.Host, o.Host)
	set(&cfg.Path, o.Path)
	set(&cfg.BasePrompt, o.BasePrompt)
	set(&cfg.ContinuationPrompt, o.ContinuationPrompt)
	if len(o.Lines) > 0 {
		cfg.Lines = append([]Line(nil), o.Lines...)
	}
	return cfg
}

// Options is the public parameter surface of a code block.
type Options struct {
	Code              string               `json:"code" yaml:"code"`
	Language          Language             `json:"language,omitempty" yaml:"language,omitempty"`
	ShowLineNumbers   *bool                `json:"showLineNumbers,omitempty" yaml:"showLineNumbers,omitempty"`
	ShowCopyButton    *bool                `json:"showCopyButton,omitempty" yaml:"showCopyButton,omitempty"`
	ShowLanguageLabel *bool                `json:"showLanguageLabel,omitempty" yaml:"showLanguageLabel,omitempty"`
	Theme             Theme                `json:"theme,omitempty" yaml:"theme,omitempty"`
	IsCommandLine     bool                 `json:"isCommandLine,omitempty" yaml:"isCommandLine,omitempty"`
	CommandLine       CommandLineOverrides `json:"commandLine,omitempty" yaml:"commandLine,omitempty"`
}

// Normalize fills every unset option with its default. Unknown themes
// fall back to dark.
func (o Options) Normalize() Options {
	o.Language = ParseLanguage(string(o.Language))
	if o.ShowLineNumbers == nil {
		o.ShowLineNumbers = Bool(true)
	}
	if o.ShowCopyButton == nil {
		o.ShowCopyButton = Bool(true)
	}
	if o.ShowLanguageLabel == nil {
		o.ShowLanguageLabel = Bool(true)
	}
	if t, err := ParseTheme(string(o.Theme)); err == nil {
		o.Theme = t
	} else {
		o.Theme = ThemeDark
	}
	return o
}

// Mode reports the rendering mode selected by IsCommandLine.
func (o Options) Mode() Mode {
	if o.IsCommandLine {
		return ModeCommandLine
	}
	return ModePlain
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s.
func String(s string) *string { return &s }
