package codeblock

import "strings"

// Line is one displayable unit of a code block.
type Line struct {
	Content        string  `json:"content" yaml:"content"`
	IsOutput       bool    `json:"isOutput" yaml:"isOutput"`
	IsContinuation bool    `json:"isContinuation" yaml:"isContinuation"`
	CustomPrompt   *string `json:"customPrompt,omitempty" yaml:"customPrompt,omitempty"`
}

const (
	commandMarker      = "$"
	continuationMarker = ">"
)

// Classify splits src into transcript lines. The whole input is trimmed
// first; markers are matched on the raw line, so "  $ ls" is output.
// Empty input yields no lines.
func Classify(src string) []Line {
	src = strings.TrimSpace(src)
	if src == "" {
		return []Line{}
	}
	raw := strings.Split(src, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		cont := strings.HasPrefix(l, continuationMarker)
		lines = append(lines, Line{
			Content:        l,
			IsContinuation: cont,
			IsOutput:       !cont && !strings.HasPrefix(l, commandMarker),
		})
	}
	return lines
}

// Resolve returns the authoritative line list: cfg.Lines when supplied,
// otherwise Classify(src).
func Resolve(src string, cfg CommandLineConfig) []Line {
	if len(cfg.Lines) > 0 {
		return append([]Line(nil), cfg.Lines...)
	}
	return Classify(src)
}

// JoinContents rebuilds display text from lines, markers included.
func JoinContents(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Content
	}
	return strings.Join(parts, "\n")
}
