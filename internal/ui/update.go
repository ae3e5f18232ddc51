package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"orhub/internal/render"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.vp = viewport.New(msg.Width, m.viewportHeight())
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = m.viewportHeight()
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			return m.handleClick(msg)
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case copiedMsg:
		if !msg.ok {
			return m, nil
		}
		gen := m.ack.Start()
		m.refresh()
		return m, ackExpireCmd(gen)

	case ackExpiredMsg:
		if m.ack.Expire(msg.gen) {
			m.refresh()
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.vp.Height = m.viewportHeight()
	case key.Matches(msg, m.keys.NextCategory):
		m.moveCategory(1)
	case key.Matches(msg, m.keys.PrevCategory):
		m.moveCategory(-1)
	case key.Matches(msg, m.keys.NextSample):
		m.moveSample(1)
	case key.Matches(msg, m.keys.PrevSample):
		m.moveSample(-1)
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.LineNumbers):
		m.session.ToggleLineNumbers()
	case key.Matches(msg, m.keys.CopyButton):
		m.session.SetShowCopyButton(!m.session.ShowCopyButton())
	case key.Matches(msg, m.keys.Label):
		m.session.SetShowLanguageLabel(!m.session.ShowLanguageLabel())
	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.clip, m.session.CopyText())
	default:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	m.refresh()
	return m, nil
}

func (m model) handleClick(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.zones.Get(render.ZoneCopy).InBounds(msg):
		return m, copyCmd(m.clip, m.session.CopyText())
	case m.zones.Get(render.ZoneLineNumbers).InBounds(msg):
		m.session.ToggleLineNumbers()
	case m.zones.Get(render.ZoneTheme).InBounds(msg):
		m.toggleTheme()
	default:
		for i := range m.catalog.Categories {
			if m.zones.Get(tabZone(i)).InBounds(msg) {
				m.catIdx, m.smpIdx = i, 0
				m.selectSample()
				m.refresh()
				return m, nil
			}
		}
		for i := range m.catalog.Categories[m.catIdx].Samples {
			if m.zones.Get(sampleZone(i)).InBounds(msg) {
				m.smpIdx = i
				m.selectSample()
				m.refresh()
				return m, nil
			}
		}
		return m, nil
	}
	m.refresh()
	return m, nil
}

func tabZone(i int) string    { return fmt.Sprintf("preview.tab.%d", i) }
func sampleZone(i int) string { return fmt.Sprintf("preview.sample.%d", i) }

// chromeHeight is the number of rows around the viewport: tabs, samples,
// status bar and help.
func (m model) chromeHeight() int {
	return 3 + lipgloss.Height(m.help.View(m.keys))
}

func (m model) viewportHeight() int {
	h := m.height - m.chromeHeight()
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) refresh() {
	if !m.ready {
		return
	}
	m.vp.SetContent(m.renderBlock())
}

func (m model) renderBlock() string {
	return render.Terminal(m.session, render.TermOptions{
		Width:  m.width,
		Copied: m.ack.Active(),
		Mark:   m.zones.Mark,
	})
}
