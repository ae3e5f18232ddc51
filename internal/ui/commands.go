package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"orhub/internal/clip"
)

// copyCmd writes text off the update loop.
func copyCmd(w clip.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{ok: clip.Copy(w, text)}
	}
}

// ackExpireCmd fires once the acknowledgment window has passed.
func ackExpireCmd(gen uint64) tea.Cmd {
	return tea.Tick(clip.AckDuration, func(time.Time) tea.Msg {
		return ackExpiredMsg{gen: gen}
	})
}
