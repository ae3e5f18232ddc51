package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"orhub/internal/codeblock"
)

// chroma style names per theme
const (
	darkStyleName  = "dracula"
	lightStyleName = "github"
)

// Style returns the chroma style for a theme. Unknown style names fall
// back to chroma's default.
func Style(theme codeblock.Theme) *chroma.Style {
	if theme == codeblock.ThemeLight {
		return styles.Get(lightStyleName)
	}
	return styles.Get(darkStyleName)
}

// Lipgloss converts the style entry of a token type to a lipgloss style.
func Lipgloss(t chroma.TokenType, style *chroma.Style) lipgloss.Style {
	entry := style.Get(t)
	s := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}

// CSS converts the style entry of a token type to an inline CSS
// declaration list. Empty when the token is unstyled.
func CSS(t chroma.TokenType, style *chroma.Style) string {
	entry := style.Get(t)
	var decl []string
	if entry.Colour.IsSet() {
		decl = append(decl, "color:"+entry.Colour.String())
	}
	if entry.Bold == chroma.Yes {
		decl = append(decl, "font-weight:bold")
	}
	if entry.Italic == chroma.Yes {
		decl = append(decl, "font-style:italic")
	}
	if entry.Underline == chroma.Yes {
		decl = append(decl, "text-decoration:underline")
	}
	return strings.Join(decl, ";")
}
