package render

import (
	"strings"

	"orhub/internal/codeblock"
	"orhub/internal/highlight"
	"orhub/internal/system"
)

// Session is the view state of one rendered code block. Everything it
// shows is derived from (code, mode, command-line config) and recomputed
// when one of them changes.
type Session struct {
	opts     codeblock.Options
	cmd      codeblock.CommandLineConfig
	lines    []codeblock.Line
	registry *highlight.Registry

	showLineNumbers bool

	hlKey   highlightKey
	hlLines [][]highlight.Span
	hlValid bool
	hlRuns  int
}

type highlightKey struct {
	text string
	lang codeblock.Language
	mode codeblock.Mode
}

// NewSession normalizes opts and derives the initial view state. A nil
// registry gets a private one.
func NewSession(opts codeblock.Options, reg *highlight.Registry) *Session {
	if reg == nil {
		reg = highlight.NewRegistry()
	}
	opts = opts.Normalize()
	s := &Session{
		opts:            opts,
		registry:        reg,
		showLineNumbers: *opts.ShowLineNumbers,
	}
	s.cmd = codeblock.MergeCommandLine(opts.CommandLine)
	s.derive()
	return s
}

func (s *Session) derive() {
	s.hlValid = false
	if s.opts.IsCommandLine {
		s.lines = codeblock.Resolve(s.opts.Code, s.cmd)
		return
	}
	s.lines = nil
}

// Options returns the normalized options the session was built from,
// with the current line-number toggle applied.
func (s *Session) Options() codeblock.Options {
	o := s.opts
	o.ShowLineNumbers = codeblock.Bool(s.showLineNumbers)
	return o
}

// SetCode replaces the source text.
func (s *Session) SetCode(code string) {
	s.opts.Code = code
	s.derive()
}

// SetLanguage switches the highlighting grammar.
func (s *Session) SetLanguage(lang codeblock.Language) {
	s.opts.Language = codeblock.ParseLanguage(string(lang))
}

// SetCommandLine toggles transcript mode.
func (s *Session) SetCommandLine(on bool) {
	s.opts.IsCommandLine = on
	s.derive()
}

// SetCommandLineConfig re-merges the transcript parameters.
func (s *Session) SetCommandLineConfig(o codeblock.CommandLineOverrides) {
	s.opts.CommandLine = o
	s.cmd = codeblock.MergeCommandLine(o)
	s.derive()
}

// SetTheme changes the palette. Tokenization is unaffected.
func (s *Session) SetTheme(t codeblock.Theme) { s.opts.Theme = t }

// SetShowCopyButton toggles the copy affordance.
func (s *Session) SetShowCopyButton(on bool) { s.opts.ShowCopyButton = codeblock.Bool(on) }

// SetShowLanguageLabel toggles the header label.
func (s *Session) SetShowLanguageLabel(on bool) { s.opts.ShowLanguageLabel = codeblock.Bool(on) }

// ToggleLineNumbers flips gutter visibility and returns the new state.
func (s *Session) ToggleLineNumbers() bool {
	s.showLineNumbers = !s.showLineNumbers
	return s.showLineNumbers
}

func (s *Session) ShowLineNumbers() bool   { return s.showLineNumbers }
func (s *Session) ShowCopyButton() bool    { return *s.opts.ShowCopyButton }
func (s *Session) ShowLanguageLabel() bool { return *s.opts.ShowLanguageLabel }
func (s *Session) Theme() codeblock.Theme  { return s.opts.Theme }
func (s *Session) Mode() codeblock.Mode    { return s.opts.Mode() }

// Language is the declared grammar tag.
func (s *Session) Language() codeblock.Language { return s.opts.Language }

// CommandLine is the merged transcript configuration.
func (s *Session) CommandLine() codeblock.CommandLineConfig { return s.cmd }

// Lines is the derived transcript line sequence; nil in plain mode.
func (s *Session) Lines() []codeblock.Line { return s.lines }

// Label is the header text: "Terminal" in transcript mode, otherwise the
// language name.
func (s *Session) Label() string {
	if s.opts.IsCommandLine {
		return "Terminal"
	}
	return s.opts.Language.Label()
}

// DisplayedText is what the highlighter sees: the source in plain mode,
// the joined line contents in transcript mode.
func (s *Session) DisplayedText() string {
	if s.opts.IsCommandLine {
		return codeblock.JoinContents(s.lines)
	}
	return s.opts.Code
}

// LineCount is the number of rows the body renders.
func (s *Session) LineCount() int {
	if s.opts.IsCommandLine {
		return len(s.lines)
	}
	return strings.Count(s.opts.Code, "\n") + 1
}

// Prompt returns the prompt of transcript line i.
func (s *Session) Prompt(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	return codeblock.PromptFor(s.lines[i], s.cmd)
}

// CopyText is the clipboard payload for the current state.
func (s *Session) CopyText() string {
	return codeblock.CopyText(s.opts.Code, s.lines, s.opts.Mode())
}

// Highlight returns highlighted spans grouped per displayed row. The
// engine runs only when text, language or mode changed since the last
// call. Engine failures fall back to plain rows.
func (s *Session) Highlight() [][]highlight.Span {
	key := highlightKey{text: s.DisplayedText(), lang: s.opts.Language, mode: s.opts.Mode()}
	if s.hlValid && s.hlKey == key {
		return s.hlLines
	}
	s.hlRuns++
	if s.opts.IsCommandLine {
		s.hlLines = s.highlightTranscript()
	} else {
		spans, err := s.registry.Highlight(key.lang, key.text)
		if err != nil {
			system.Logger.Debug("highlight failed, rendering plain text", "language", key.lang, "err", err)
		}
		s.hlLines = highlight.SplitLines(spans)
	}
	s.hlKey = key
	s.hlValid = true
	return s.hlLines
}

// highlightTranscript tokenizes each command row as bash; output rows are
// left plain.
func (s *Session) highlightTranscript() [][]highlight.Span {
	out := make([][]highlight.Span, len(s.lines))
	for i, l := range s.lines {
		text := codeblock.DisplayContent(l)
		if l.IsOutput {
			out[i], _ = highlight.Passthrough{}.Highlight(text)
			continue
		}
		spans, err := s.registry.Highlight(codeblock.Bash, text)
		if err != nil {
			system.Logger.Debug("highlight failed, rendering plain text", "language", codeblock.Bash, "err", err)
		}
		// a single command row never spans lines
		out[i] = flatten(highlight.SplitLines(spans))
	}
	return out
}

func flatten(rows [][]highlight.Span) []highlight.Span {
	var out []highlight.Span
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}
