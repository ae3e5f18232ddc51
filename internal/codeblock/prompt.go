package codeblock

import (
	"regexp"
	"strings"
)

// commandPrefix matches the "$" marker and the whitespace after it.
var commandPrefix = regexp.MustCompile(`^\$\s*`)

// PromptFor computes the prompt shown before line. The result depends only
// on line and cfg. An empty custom prompt counts as unset.
func PromptFor(line Line, cfg CommandLineConfig) string {
	switch {
	case line.CustomPrompt != nil && *line.CustomPrompt != "":
		return *line.CustomPrompt
	case line.IsOutput:
		return ""
	case line.IsContinuation:
		return cfg.ContinuationPrompt
	case cfg.BasePrompt != "":
		return cfg.BasePrompt
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(cfg.User)
	b.WriteString("@")
	b.WriteString(cfg.Host)
	b.WriteString(" ")
	b.WriteString(cfg.Path)
	b.WriteString("]$")
	return b.String()
}

// DisplayContent is the text shown after the prompt: the "$" marker and
// following whitespace are dropped, everything else is kept.
func DisplayContent(line Line) string {
	return stripCommandMarker(line.Content)
}

func stripCommandMarker(s string) string {
	return commandPrefix.ReplaceAllString(s, "")
}
