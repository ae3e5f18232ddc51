package render

import (
	"testing"

	"github.com/alecthomas/chroma/v2"

	"orhub/internal/codeblock"
	"orhub/internal/highlight"
)

func TestSession_HighlightRunsOncePerChange(t *testing.T) {
	s := NewSession(codeblock.Options{Code: "const a = 1;\nconst b = 2;"}, nil)
	first := s.Highlight()
	second := s.Highlight()
	if s.hlRuns != 1 {
		t.Fatalf("expected one engine run for unchanged inputs, got %d", s.hlRuns)
	}
	if len(first) != len(second) || highlight.Join(first[0]) != highlight.Join(second[0]) {
		t.Fatalf("repeated highlight produced different output")
	}

	s.SetTheme(codeblock.ThemeLight)
	s.Highlight()
	if s.hlRuns != 1 {
		t.Fatalf("theme change must not re-tokenize, runs=%d", s.hlRuns)
	}

	s.SetLanguage(codeblock.JavaScript)
	s.Highlight()
	s.SetCode("let c = 3;")
	s.Highlight()
	s.SetCommandLine(true)
	s.Highlight()
	if s.hlRuns != 4 {
		t.Fatalf("expected a run per language/code/mode change, got %d", s.hlRuns)
	}
}

func TestSession_LineFlagsInvalidateHighlight(t *testing.T) {
	asOutput := []codeblock.Line{{Content: "echo hi", IsOutput: true}}
	s := NewSession(codeblock.Options{
		IsCommandLine: true,
		CommandLine:   codeblock.CommandLineOverrides{Lines: asOutput},
	}, nil)
	rows := s.Highlight()
	if len(rows[0]) != 1 || rows[0][0].Type != chroma.Text {
		t.Fatalf("output row should stay plain, got %+v", rows[0])
	}

	asCommand := []codeblock.Line{{Content: "echo hi"}}
	s.SetCommandLineConfig(codeblock.CommandLineOverrides{Lines: asCommand})
	rows = s.Highlight()
	if s.hlRuns != 2 {
		t.Fatalf("changed line flags must re-tokenize, runs=%d", s.hlRuns)
	}
	if rows[0][0].Type == chroma.Text {
		t.Fatalf("command row kept stale plain spans: %+v", rows[0])
	}
}

func TestSession_HighlightDoesNotMutateLines(t *testing.T) {
	src := "$ npm install\nInstalling..."
	s := NewSession(codeblock.Options{Code: src, IsCommandLine: true}, nil)
	before := append([]codeblock.Line(nil), s.Lines()...)
	rows := s.Highlight()
	if len(rows) != len(before) {
		t.Fatalf("expected %d rows, got %d", len(before), len(rows))
	}
	for i, l := range s.Lines() {
		if l != before[i] {
			t.Fatalf("line %d mutated: %+v", i, l)
		}
	}
	if highlight.Join(rows[0]) != "npm install" {
		t.Fatalf("command row should highlight display content, got %q", highlight.Join(rows[0]))
	}
	if s.Options().Code != src {
		t.Fatalf("source text mutated")
	}
}

func TestSession_UnknownLanguageDegrades(t *testing.T) {
	s := NewSession(codeblock.Options{Code: "IDENTIFICATION DIVISION.", Language: "cobol"}, nil)
	rows := s.Highlight()
	if len(rows) != 1 || highlight.Join(rows[0]) != "IDENTIFICATION DIVISION." {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if s.Label() != "Cobol" {
		t.Fatalf("unexpected label %q", s.Label())
	}
}

func TestSession_ModesAndCopy(t *testing.T) {
	src := "$ npm install\nInstalling...\n$ npm start"
	s := NewSession(codeblock.Options{Code: src}, nil)
	if s.Label() != "Typescript" || s.Lines() != nil || s.LineCount() != 3 {
		t.Fatalf("unexpected plain state: label=%q lines=%v count=%d", s.Label(), s.Lines(), s.LineCount())
	}
	if s.CopyText() != src {
		t.Fatalf("plain copy should be source")
	}
	s.SetCommandLine(true)
	if s.Label() != "Terminal" || len(s.Lines()) != 3 {
		t.Fatalf("unexpected transcript state")
	}
	if got := s.CopyText(); got != "npm install\nnpm start" {
		t.Fatalf("unexpected copy text %q", got)
	}
	if got := s.Prompt(0); got != "[user@localhost ~]$" {
		t.Fatalf("unexpected prompt %q", got)
	}
	if got := s.Prompt(1); got != "" {
		t.Fatalf("output prompt should be empty, got %q", got)
	}
	if got := s.Prompt(9); got != "" {
		t.Fatalf("out of range prompt should be empty, got %q", got)
	}
}

func TestSession_LineNumberToggle(t *testing.T) {
	s := NewSession(codeblock.Options{Code: "x", ShowLineNumbers: codeblock.Bool(false)}, nil)
	if s.ShowLineNumbers() {
		t.Fatalf("initial toggle should follow option")
	}
	if !s.ToggleLineNumbers() || !*s.Options().ShowLineNumbers {
		t.Fatalf("toggle did not flip")
	}
}

func TestSession_CommandLineConfigChange(t *testing.T) {
	s := NewSession(codeblock.Options{Code: "$ ls", IsCommandLine: true}, nil)
	s.SetCommandLineConfig(codeblock.CommandLineOverrides{BasePrompt: codeblock.String("#")})
	if got := s.Prompt(0); got != "#" {
		t.Fatalf("base prompt not applied: %q", got)
	}
	s.SetCommandLineConfig(codeblock.CommandLineOverrides{Lines: []codeblock.Line{{Content: "whoami"}}})
	if len(s.Lines()) != 1 || s.Lines()[0].Content != "whoami" {
		t.Fatalf("supplied lines not used: %+v", s.Lines())
	}
}
