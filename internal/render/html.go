package render

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"

	"orhub/internal/highlight"
)

var blockTmpl = template.Must(template.New("codeblock").Parse(`<div class="orhub-codeblock orhub-{{.Theme}}" style="background:{{.Background}};color:{{.Text}};border:1px solid {{.Border}};border-radius:8px;overflow:hidden">
<div class="orhub-header" style="display:flex;justify-content:space-between;padding:8px 16px;border-bottom:1px solid {{.Border}}">
<span class="orhub-label">{{if .ShowLabel}}{{.Label}}{{end}}</span>
{{- if .ShowCopy}}
<button class="orhub-copy" type="button" data-copy="{{.CopyText}}" title="Copy code">Copy</button>
{{- end}}
</div>
<pre class="orhub-code language-{{.Language}}" style="margin:0;padding:16px;overflow-x:auto">
{{- range .Rows -}}
<div class="orhub-line{{if .Output}} orhub-output{{end}}" style="display:flex;white-space:pre{{if .Output}};opacity:.8{{end}}">
{{- if $.LineNumbers}}<span class="orhub-ln" style="user-select:none;width:2em;margin-right:1em;text-align:right;opacity:.6;color:{{$.Gutter}}">{{.Number}}</span>{{end}}
{{- if $.CommandLine}}<span class="orhub-prompt" style="user-select:none;margin-right:1em;color:{{$.Prompt}}">{{.Prompt}}</span>{{end -}}
<span class="orhub-content">{{.Content}}</span></div>
{{- end -}}
</pre>
</div>
`))

type htmlRow struct {
	Number  int
	Prompt  string
	Content template.HTML
	Output  bool
}

type htmlBlock struct {
	Theme       string
	Language    string
	Label       string
	ShowLabel   bool
	ShowCopy    bool
	LineNumbers bool
	CommandLine bool
	CopyText    string
	Background  string
	Text        string
	Border      string
	Gutter      string
	Prompt      string
	Rows        []htmlRow
}

// HTML renders the session as a self-contained HTML fragment with inline
// styles. The copy button carries the clipboard payload in data-copy.
func HTML(s *Session) (string, error) {
	pal := PaletteFor(s.Theme())
	cs := highlight.Style(s.Theme())
	rows := s.rows()
	data := htmlBlock{
		Theme:       string(s.Theme()),
		Language:    string(s.Language()),
		Label:       s.Label(),
		ShowLabel:   s.ShowLanguageLabel(),
		ShowCopy:    s.ShowCopyButton(),
		LineNumbers: s.ShowLineNumbers(),
		CommandLine: s.opts.IsCommandLine,
		CopyText:    s.CopyText(),
		Background:  string(pal.Background),
		Text:        string(pal.Text),
		Border:      string(pal.Border),
		Gutter:      string(pal.Gutter),
		Prompt:      string(pal.Prompt),
		Rows:        make([]htmlRow, 0, len(rows)),
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, htmlRow{
			Number:  r.number,
			Prompt:  r.prompt,
			Content: spansHTML(r.spans, cs),
			Output:  r.output,
		})
	}
	var buf bytes.Buffer
	if err := blockTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func spansHTML(spans []highlight.Span, cs *chroma.Style) template.HTML {
	var b strings.Builder
	for _, sp := range spans {
		text := html.EscapeString(sp.Text)
		css := ""
		if sp.Type != chroma.Text {
			css = highlight.CSS(sp.Type, cs)
		}
		if css == "" {
			b.WriteString(text)
			continue
		}
		b.WriteString(`<span style="`)
		b.WriteString(css)
		b.WriteString(`">`)
		b.WriteString(text)
		b.WriteString(`</span>`)
	}
	return template.HTML(b.String())
}
