package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderStatusBar lays out chips on the left and right of a full-width
// bar. The first left part is the key chip; the rest cycle through the
// accent colors. Left parts are dropped from the end when space runs out.
func renderStatusBar(width int, leftParts, rightParts []string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	bar := StatusBarBase()
	nuggetBG := []lipgloss.Color{Vitesse.Blue, Vitesse.Yellow, Vitesse.Magenta}

	left := make([]string, 0, len(leftParts))
	for i, s := range leftParts {
		if i == 0 {
			left = append(left, ChipKeyStyle().Inherit(bar).Render(s))
			continue
		}
		left = append(left, ChipStyle(nuggetBG[(i-1)%len(nuggetBG)]).Render(s))
	}
	right := make([]string, 0, len(rightParts))
	for _, s := range rightParts {
		right = append(right, lipgloss.NewStyle().Inherit(bar).Padding(0, 1).Render(s))
	}
	rightStr := strings.Join(right, "")
	rw := xansi.StringWidth(rightStr)

	leftStr := strings.Join(left, "")
	for len(left) > 1 && xansi.StringWidth(leftStr)+rw > w {
		left = left[:len(left)-1]
		leftStr = strings.Join(left, "")
	}
	if lw := xansi.StringWidth(leftStr); lw+rw > w {
		leftStr = xansi.Truncate(leftStr, max(0, w-rw), "")
	}
	pad := w - xansi.StringWidth(leftStr) - rw
	if pad < 0 {
		pad = 0
	}
	return leftStr + bar.Render(strings.Repeat(" ", pad)) + rightStr
}
