package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"orhub/internal/highlight"
)

// Zone IDs of the clickable header buttons.
const (
	ZoneLineNumbers = "codeblock.lines"
	ZoneCopy        = "codeblock.copy"
	ZoneTheme       = "codeblock.theme"
)

// TermOptions controls terminal rendering.
type TermOptions struct {
	// Width is the outer width including the border; <= 0 sizes to content.
	Width int
	// Copied shows the transient copy acknowledgment.
	Copied bool
	// Mark wraps a button for mouse hit-testing; nil leaves it as is.
	Mark func(id, s string) string
}

func (o TermOptions) mark(id, s string) string {
	if o.Mark == nil {
		return s
	}
	return o.Mark(id, s)
}

// row is one body row before styling.
type row struct {
	number int
	prompt string
	spans  []highlight.Span
	output bool
}

func (s *Session) rows() []row {
	hl := s.Highlight()
	out := make([]row, 0, len(hl))
	if s.opts.IsCommandLine {
		for i, l := range s.lines {
			out = append(out, row{number: i + 1, prompt: s.Prompt(i), spans: hl[i], output: l.IsOutput})
		}
		return out
	}
	for i, spans := range hl {
		out = append(out, row{number: i + 1, spans: spans})
	}
	return out
}

// Terminal renders the session as an ANSI-styled bordered block.
func Terminal(s *Session, o TermOptions) string {
	pal := PaletteFor(s.Theme())
	cs := highlight.Style(s.Theme())
	rows := s.rows()

	gutterW := len(strconv.Itoa(len(rows)))
	if gutterW < 2 {
		gutterW = 2
	}
	promptW := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.prompt); w > promptW {
			promptW = w
		}
	}

	gutter := lipgloss.NewStyle().Foreground(pal.Gutter).Faint(true)
	prompt := lipgloss.NewStyle().Foreground(pal.Prompt)
	base := lipgloss.NewStyle().Foreground(pal.Text)

	body := make([]string, 0, len(rows))
	for _, r := range rows {
		var b strings.Builder
		if s.ShowLineNumbers() {
			b.WriteString(gutter.Render(fmt.Sprintf("%*d", gutterW, r.number)))
			b.WriteString("  ")
		}
		if s.opts.IsCommandLine && promptW > 0 {
			b.WriteString(prompt.Render(runewidth.FillRight(r.prompt, promptW)))
			b.WriteString(" ")
		}
		for _, sp := range r.spans {
			st := base
			if sp.Type != chroma.Text {
				st = highlight.Lipgloss(sp.Type, cs).Inherit(base)
			}
			if r.output {
				st = st.Faint(true)
			}
			b.WriteString(st.Render(sp.Text))
		}
		body = append(body, b.String())
	}

	left := ""
	if s.ShowLanguageLabel() {
		left = base.Bold(true).Render("❯_ " + s.Label())
	}
	var buttons []string
	lnStyle := base
	if s.ShowLineNumbers() {
		lnStyle = lipgloss.NewStyle().Foreground(pal.Accent).Bold(true)
	}
	buttons = append(buttons, o.mark(ZoneLineNumbers, lnStyle.Render("#")))
	if s.ShowCopyButton() {
		if o.Copied {
			buttons = append(buttons, o.mark(ZoneCopy, lipgloss.NewStyle().Foreground(pal.Success).Render("✓ copied")))
		} else {
			buttons = append(buttons, o.mark(ZoneCopy, base.Render("⧉ copy")))
		}
	}
	right := strings.Join(buttons, " ")

	inner := o.Width - 4
	if o.Width <= 0 {
		inner = xansi.StringWidth(left) + xansi.StringWidth(right) + 2
		for _, l := range body {
			if w := xansi.StringWidth(l); w > inner {
				inner = w
			}
		}
	}
	if inner < 10 {
		inner = 10
	}
	for i, l := range body {
		if xansi.StringWidth(l) > inner {
			body[i] = xansi.Truncate(l, inner, "…")
		}
	}
	gap := inner - xansi.StringWidth(left) - xansi.StringWidth(right)
	if gap < 1 {
		left = xansi.Truncate(left, maxInt(0, inner-xansi.StringWidth(right)-1), "")
		gap = maxInt(1, inner-xansi.StringWidth(left)-xansi.StringWidth(right))
	}
	header := left + strings.Repeat(" ", gap) + right
	sep := lipgloss.NewStyle().Foreground(pal.Border).Render(strings.Repeat("─", inner))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Border).
		Padding(0, 1).
		Width(inner + 2)
	return box.Render(header + "\n" + sep + "\n" + strings.Join(body, "\n"))
}

// PlainText renders the session without styling: optional gutter, prompts
// and display content. Used for piping and snapshots.
func PlainText(s *Session) string {
	rows := s.rows()
	gutterW := len(strconv.Itoa(len(rows)))
	if gutterW < 2 {
		gutterW = 2
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		if s.ShowLineNumbers() {
			fmt.Fprintf(&b, "%*d  ", gutterW, r.number)
		}
		if r.prompt != "" {
			b.WriteString(r.prompt)
			b.WriteString(" ")
		}
		b.WriteString(highlight.Join(r.spans))
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
