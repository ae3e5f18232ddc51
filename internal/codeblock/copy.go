package codeblock

import "strings"

// CopyText derives the clipboard payload. Plain mode returns src untouched;
// command-line mode keeps only command and continuation lines with the
// "$" marker stripped, so the result can be pasted back into a shell.
func CopyText(src string, lines []Line, mode Mode) string {
	if mode != ModeCommandLine {
		return src
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.IsOutput {
			continue
		}
		out = append(out, stripCommandMarker(l.Content))
	}
	return strings.Join(out, "\n")
}
