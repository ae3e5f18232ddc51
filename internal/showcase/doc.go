package showcase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"orhub/internal/codeblock"
	"orhub/internal/highlight"
	"orhub/internal/render"
)

// glamour pads rendered blocks by two columns on each side
const glamourGutter = 2

// InstallOptions returns the install command as a one-line transcript.
// Commands stored without a "$" marker get one so they stay copyable.
func (c Component) InstallOptions() codeblock.Options {
	cmd := strings.TrimSpace(c.InstallCommand)
	if !strings.HasPrefix(cmd, "$") {
		cmd = "$ " + cmd
	}
	return codeblock.Options{Code: cmd, IsCommandLine: true}
}

// UsageOptions returns the usage example as a code block.
func (c Component) UsageOptions() codeblock.Options {
	return codeblock.Options{Code: c.UsageCode, Language: codeblock.ParseLanguage(c.UsageLanguage)}
}

// Markdown renders the whole page as Markdown, code blocks fenced.
func (c Component) Markdown() string {
	var b strings.Builder
	b.WriteString(c.headMarkdown())
	b.WriteString("\n## Installation\n\n```shell-session\n")
	b.WriteString(c.InstallOptions().Code)
	b.WriteString("\n```\n\n## Usage\n\n```")
	b.WriteString(string(c.UsageOptions().Language))
	b.WriteString("\n")
	b.WriteString(c.UsageCode)
	b.WriteString("\n```\n")
	b.WriteString(c.propsMarkdown())
	return b.String()
}

func (c Component) headMarkdown() string {
	return fmt.Sprintf("# %s\n\n%s\n", c.Title, c.Description)
}

func (c Component) propsMarkdown() string {
	if len(c.Props) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n## Props\n\n")
	for _, p := range c.Props {
		b.WriteString("- `")
		b.WriteString(p.Name)
		b.WriteString("`")
		if p.Required {
			b.WriteString("*")
		}
		fmt.Fprintf(&b, " (%s)", p.Type)
		if p.Default != "" {
			fmt.Fprintf(&b, " = `%s`", p.Default)
		}
		b.WriteString(": ")
		b.WriteString(p.Description)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderDoc renders a component page for a terminal: prose through
// glamour, install and usage blocks through the code block renderer.
func RenderDoc(c Component, theme codeblock.Theme, width int, reg *highlight.Registry) (string, error) {
	if width <= 0 {
		width = 80
	}
	wrap := width - glamourGutter
	if wrap < 20 {
		wrap = 20
	}
	style := styles.DarkStyleConfig
	if theme == codeblock.ThemeLight {
		style = styles.LightStyleConfig
	}
	md, err := glamour.NewTermRenderer(glamour.WithStyles(style), glamour.WithWordWrap(wrap))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	section := func(src string) (string, error) {
		out, err := md.Render(src)
		if err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return strings.TrimRight(out, "\n"), nil
	}
	block := func(o codeblock.Options) string {
		o.Theme = theme
		s := render.NewSession(o, reg)
		return indent(render.Terminal(s, render.TermOptions{Width: width - 2*glamourGutter}), glamourGutter)
	}

	var parts []string
	for _, step := range []func() (string, error){
		func() (string, error) { return section(c.headMarkdown() + "\n## Installation\n") },
		func() (string, error) { return block(c.InstallOptions()), nil },
		func() (string, error) { return section("## Usage\n") },
		func() (string, error) { return block(c.UsageOptions()), nil },
		func() (string, error) {
			if len(c.Props) == 0 {
				return "", nil
			}
			return section(c.propsMarkdown())
		},
	} {
		out, err := step()
		if err != nil {
			return "", err
		}
		if out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
