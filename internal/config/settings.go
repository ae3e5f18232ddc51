package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"orhub/internal/codeblock"
)

// Settings are user defaults applied beneath command-line flags.
// Path: ~/.orhub/config.yaml
type Settings struct {
	Theme             string      `yaml:"theme,omitempty" json:"theme,omitempty" jsonschema:"enum=light,enum=dark,description=Default color theme"`
	Language          string      `yaml:"language,omitempty" json:"language,omitempty" jsonschema:"description=Default highlighting language"`
	ShowLineNumbers   *bool       `yaml:"showLineNumbers,omitempty" json:"showLineNumbers,omitempty"`
	ShowCopyButton    *bool       `yaml:"showCopyButton,omitempty" json:"showCopyButton,omitempty"`
	ShowLanguageLabel *bool       `yaml:"showLanguageLabel,omitempty" json:"showLanguageLabel,omitempty"`
	CommandLine       CommandLine `yaml:"commandLine,omitempty" json:"commandLine,omitempty" jsonschema:"description=Transcript prompt identity"`
}

// CommandLine holds transcript defaults. Empty strings mean unset;
// ContinuationPrompt is a pointer so an empty prompt can be configured.
type CommandLine struct {
	User               string  `yaml:"user,omitempty" json:"user,omitempty"`
	Host               string  `yaml:"host,omitempty" json:"host,omitempty"`
	Path               string  `yaml:"path,omitempty" json:"path,omitempty"`
	BasePrompt         string  `yaml:"basePrompt,omitempty" json:"basePrompt,omitempty"`
	ContinuationPrompt *string `yaml:"continuationPrompt,omitempty" json:"continuationPrompt,omitempty"`
}

// Default returns settings matching the built-in code block defaults.
func Default() Settings {
	d := codeblock.DefaultCommandLine()
	return Settings{
		Theme:             string(codeblock.ThemeDark),
		Language:          string(codeblock.DefaultLanguage),
		ShowLineNumbers:   codeblock.Bool(true),
		ShowCopyButton:    codeblock.Bool(true),
		ShowLanguageLabel: codeblock.Bool(true),
		CommandLine: CommandLine{
			User: d.User,
			Host: d.Host,
			Path: d.Path,
		},
	}
}

// Load reads settings from ~/.orhub/config.yaml, falling back to the OS
// config dir. A missing file yields Default() and no error. Environment
// overrides (ORHUB_THEME, ORHUB_USER, ORHUB_HOST) are applied last. The
// returned path is the file that was read, or "" when none was.
func Load() (Settings, string, error) {
	s := Default()
	var candidates []string
	if p, err := Path(); err == nil {
		candidates = append(candidates, p)
	}
	if d, err := Dir(); err == nil {
		candidates = append(candidates, filepath.Join(d, fileName))
	}
	source := ""
	for _, p := range candidates {
		b, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return s, p, err
		}
		if err := yaml.Unmarshal(b, &s); err != nil {
			return Default(), p, fmt.Errorf("parse %s: %w", p, err)
		}
		source = p
		break
	}
	applyEnv(&s)
	if err := s.Validate(); err != nil {
		return s, source, err
	}
	return s, source, nil
}

func applyEnv(s *Settings) {
	if v := strings.TrimSpace(os.Getenv("ORHUB_THEME")); v != "" {
		s.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("ORHUB_USER")); v != "" {
		s.CommandLine.User = v
	}
	if v := strings.TrimSpace(os.Getenv("ORHUB_HOST")); v != "" {
		s.CommandLine.Host = v
	}
}

// Validate checks enumerated fields.
func (s Settings) Validate() error {
	if _, err := codeblock.ParseTheme(s.Theme); err != nil {
		return err
	}
	return nil
}

// Save writes s to ~/.orhub/config.yaml and returns the path.
func Save(s Settings) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	p, err := Path()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return p, os.WriteFile(p, b, 0o644)
}

// Apply fills the options the caller left unset from s.
func (s Settings) Apply(o codeblock.Options) codeblock.Options {
	if o.Language == "" && s.Language != "" {
		o.Language = codeblock.ParseLanguage(s.Language)
	}
	if o.Theme == "" && s.Theme != "" {
		if t, err := codeblock.ParseTheme(s.Theme); err == nil {
			o.Theme = t
		}
	}
	if o.ShowLineNumbers == nil {
		o.ShowLineNumbers = s.ShowLineNumbers
	}
	if o.ShowCopyButton == nil {
		o.ShowCopyButton = s.ShowCopyButton
	}
	if o.ShowLanguageLabel == nil {
		o.ShowLanguageLabel = s.ShowLanguageLabel
	}
	cl := &o.CommandLine
	fill := func(dst **string, v string) {
		if *dst == nil && v != "" {
			*dst = codeblock.String(v)
		}
	}
	fill(&cl.User, s.CommandLine.User)
	fill(&cl.Host, s.CommandLine.Host)
	fill(&cl.Path, s.CommandLine.Path)
	fill(&cl.BasePrompt, s.CommandLine.BasePrompt)
	if cl.ContinuationPrompt == nil && s.CommandLine.ContinuationPrompt != nil {
		cl.ContinuationPrompt = codeblock.String(*s.CommandLine.ContinuationPrompt)
	}
	return o
}

// Schema returns the JSON Schema of the settings file.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Settings{})
	sch.Title = "orhub settings"
	sch.Description = "Defaults for rendered code blocks (~/.orhub/config.yaml)."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
