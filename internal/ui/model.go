package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"orhub/internal/clip"
	"orhub/internal/codeblock"
	"orhub/internal/highlight"
	"orhub/internal/render"
	"orhub/internal/showcase"
)

// Config wires the preview to its content and environment.
type Config struct {
	Catalog   *showcase.Catalog
	Registry  *highlight.Registry
	Clipboard clip.Writer
	// Defaults supplies the theme, visibility toggles and transcript
	// identity; Code, Language and IsCommandLine come from the sample.
	Defaults codeblock.Options
	// Start selects the initial sample; zero means the first one.
	Start showcase.Ref
}

type model struct {
	catalog  *showcase.Catalog
	catIdx   int
	smpIdx   int
	session  *render.Session
	identity codeblock.CommandLineOverrides

	clip clip.Writer
	ack  clip.Ack

	zones *zone.Manager
	vp    viewport.Model
	keys  keyMap
	help  help.Model

	width  int
	height int
	ready  bool
}

// New builds the preview model. The catalog must hold at least one
// category with one sample.
func New(cfg Config) tea.Model { return newModel(cfg) }

func newModel(cfg Config) model {
	w := cfg.Clipboard
	if w == nil {
		w = clip.System{}
	}
	m := model{
		catalog:  cfg.Catalog,
		identity: cfg.Defaults.CommandLine,
		clip:     w,
		zones:    zone.New(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	if cfg.Start.Category != "" {
		for ci, c := range m.catalog.Categories {
			if c.ID != cfg.Start.Category {
				continue
			}
			m.catIdx = ci
			for si, s := range c.Samples {
				if s.Name == cfg.Start.Name {
					m.smpIdx = si
				}
			}
		}
	}
	opts := cfg.Defaults
	cat, smp := m.current()
	so := smp.Options(cat)
	opts.Code, opts.Language, opts.IsCommandLine = so.Code, so.Language, so.IsCommandLine
	opts.CommandLine = m.overrides(so.CommandLine)
	m.session = render.NewSession(opts, cfg.Registry)
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) current() (showcase.Category, showcase.Sample) {
	cat := m.catalog.Categories[m.catIdx]
	return cat, cat.Samples[m.smpIdx]
}

// overrides lays the configured identity over a sample's own.
func (m model) overrides(base codeblock.CommandLineOverrides) codeblock.CommandLineOverrides {
	pick := func(dst **string, v *string) {
		if v != nil {
			*dst = v
		}
	}
	pick(&base.User, m.identity.User)
	pick(&base.Host, m.identity.Host)
	pick(&base.Path, m.identity.Path)
	pick(&base.BasePrompt, m.identity.BasePrompt)
	pick(&base.ContinuationPrompt, m.identity.ContinuationPrompt)
	return base
}

// selectSample loads the current sample into the session, keeping the
// user's theme and toggles.
func (m *model) selectSample() {
	cat, smp := m.current()
	so := smp.Options(cat)
	m.session.SetCode(so.Code)
	m.session.SetLanguage(so.Language)
	m.session.SetCommandLineConfig(m.overrides(so.CommandLine))
	m.session.SetCommandLine(so.IsCommandLine)
	m.vp.GotoTop()
}

func (m *model) moveCategory(delta int) {
	n := len(m.catalog.Categories)
	m.catIdx = ((m.catIdx+delta)%n + n) % n
	m.smpIdx = 0
	m.selectSample()
}

func (m *model) moveSample(delta int) {
	n := len(m.catalog.Categories[m.catIdx].Samples)
	m.smpIdx = ((m.smpIdx+delta)%n + n) % n
	m.selectSample()
}

func (m *model) toggleTheme() {
	if m.session.Theme() == codeblock.ThemeLight {
		m.session.SetTheme(codeblock.ThemeDark)
		return
	}
	m.session.SetTheme(codeblock.ThemeLight)
}
