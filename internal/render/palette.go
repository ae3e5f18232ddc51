package render

import (
	"github.com/charmbracelet/lipgloss"

	"orhub/internal/codeblock"
)

// Palette holds the block colors for one theme.
type Palette struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Gutter     lipgloss.Color
	Prompt     lipgloss.Color
	Border     lipgloss.Color
	Hover      lipgloss.Color
	Accent     lipgloss.Color // active toggle
	Success    lipgloss.Color // copy acknowledgment
}

var darkPalette = Palette{
	Background: lipgloss.Color("#111827"),
	Text:       lipgloss.Color("#f3f4f6"),
	Gutter:     lipgloss.Color("#6b7280"),
	Prompt:     lipgloss.Color("#9ca3af"),
	Border:     lipgloss.Color("#374151"),
	Hover:      lipgloss.Color("#374151"),
	Accent:     lipgloss.Color("#3b82f6"),
	Success:    lipgloss.Color("#22c55e"),
}

var lightPalette = Palette{
	Background: lipgloss.Color("#f9fafb"),
	Text:       lipgloss.Color("#1f2937"),
	Gutter:     lipgloss.Color("#9ca3af"),
	Prompt:     lipgloss.Color("#6b7280"),
	Border:     lipgloss.Color("#e5e7eb"),
	Hover:      lipgloss.Color("#e5e7eb"),
	Accent:     lipgloss.Color("#3b82f6"),
	Success:    lipgloss.Color("#22c55e"),
}

// PaletteFor returns the palette of a theme.
func PaletteFor(t codeblock.Theme) Palette {
	if t == codeblock.ThemeLight {
		return lightPalette
	}
	return darkPalette
}
