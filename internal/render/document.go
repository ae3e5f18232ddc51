package render

import (
	"orhub/internal/codeblock"
	"orhub/internal/highlight"
)

// TokenSpan is the serializable form of a highlighted span.
type TokenSpan struct {
	Text  string `json:"text"`
	Token string `json:"token"`
}

// Document is the machine-readable view of a session, shared by
// `render --format json` and the HTTP API.
type Document struct {
	Language    codeblock.Language          `json:"language"`
	Label       string                      `json:"label"`
	Mode        string                      `json:"mode"`
	Theme       codeblock.Theme             `json:"theme"`
	CommandLine codeblock.CommandLineConfig `json:"commandLine"`
	Lines       []codeblock.Line            `json:"lines"`
	Prompts     []string                    `json:"prompts"`
	CopyText    string                      `json:"copyText"`
	Highlighted [][]TokenSpan               `json:"highlighted"`
	HTML        string                      `json:"html,omitempty"`
}

// NewDocument snapshots s. withHTML also renders the HTML fragment.
func NewDocument(s *Session, withHTML bool) (Document, error) {
	d := Document{
		Language:    s.Language(),
		Label:       s.Label(),
		Mode:        s.Mode().String(),
		Theme:       s.Theme(),
		CommandLine: s.CommandLine(),
		Lines:       s.Lines(),
		Prompts:     []string{},
		CopyText:    s.CopyText(),
	}
	if d.Lines == nil {
		d.Lines = []codeblock.Line{}
	}
	for i := range d.Lines {
		d.Prompts = append(d.Prompts, s.Prompt(i))
	}
	for _, row := range s.Highlight() {
		d.Highlighted = append(d.Highlighted, tokenSpans(row))
	}
	if withHTML {
		h, err := HTML(s)
		if err != nil {
			return d, err
		}
		d.HTML = h
	}
	return d, nil
}

func tokenSpans(row []highlight.Span) []TokenSpan {
	out := make([]TokenSpan, 0, len(row))
	for _, sp := range row {
		out = append(out, TokenSpan{Text: sp.Text, Token: sp.Type.String()})
	}
	return out
}
