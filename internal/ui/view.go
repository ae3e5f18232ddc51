package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orhub/internal/render"
	appver "orhub/internal/version"
)

func (m model) View() string {
	if !m.ready {
		return "loading…"
	}
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderSamples())
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBarLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return m.zones.Scan(b.String())
}

func (m model) renderTabs() string {
	tabs := make([]string, 0, len(m.catalog.Categories))
	for i, c := range m.catalog.Categories {
		tabs = append(tabs, m.zones.Mark(tabZone(i), TabStyle(i == m.catIdx).Render(c.Label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) renderSamples() string {
	cat := m.catalog.Categories[m.catIdx]
	items := make([]string, 0, len(cat.Samples))
	for i, s := range cat.Samples {
		items = append(items, m.zones.Mark(sampleZone(i), SampleStyle(i == m.smpIdx).Render(s.Label)))
	}
	return " " + strings.Join(items, "  ")
}

func (m model) renderStatusBarLine() string {
	cat, smp := m.current()
	left := []string{
		"orhub",
		cat.Label + " / " + smp.Label,
		m.session.Mode().String(),
		m.zones.Mark(render.ZoneTheme, string(m.session.Theme())),
	}
	right := []string{m.session.Label(), appver.AppVersion}
	return renderStatusBar(m.width, left, right)
}
