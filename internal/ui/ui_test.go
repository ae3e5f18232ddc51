package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"orhub/internal/codeblock"
	"orhub/internal/showcase"
)

type fakeClipboard struct {
	got []string
	err error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.got = append(f.got, text)
	return nil
}

func newTestModel(t *testing.T, cb *fakeClipboard, start showcase.Ref) model {
	t.Helper()
	c, err := showcase.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	m := newModel(Config{Catalog: c, Clipboard: cb, Start: start})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func TestNew_StartSample(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{}, showcase.Ref{Category: "terminal", Name: "docker"})
	cat, smp := m.current()
	if cat.ID != "terminal" || smp.Name != "docker" {
		t.Fatalf("unexpected start sample %s/%s", cat.ID, smp.Name)
	}
	if m.session.Mode() != codeblock.ModeCommandLine {
		t.Fatalf("terminal sample should start in transcript mode")
	}
}

func TestUpdate_CategoryNavigationResetsSample(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{}, showcase.Ref{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.smpIdx != 1 {
		t.Fatalf("right should select next sample, got %d", m.smpIdx)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.catIdx != 1 || m.smpIdx != 0 {
		t.Fatalf("tab should move category and reset sample: %d/%d", m.catIdx, m.smpIdx)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.catIdx != len(m.catalog.Categories)-1 {
		t.Fatalf("shift+tab should wrap to last category, got %d", m.catIdx)
	}
	if m.session.Mode() != codeblock.ModeCommandLine || !strings.Contains(xansi.Strip(m.View()), "Terminal") {
		t.Fatalf("terminal category should render a transcript")
	}
}

func TestUpdate_TogglesSurviveSampleSwitch(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{}, showcase.Ref{})
	m, _ = send(t, m, runes("n"))
	m, _ = send(t, m, runes("t"))
	if m.session.ShowLineNumbers() || m.session.Theme() != codeblock.ThemeLight {
		t.Fatalf("toggles not applied")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.session.ShowLineNumbers() || m.session.Theme() != codeblock.ThemeLight {
		t.Fatalf("toggles lost on category switch")
	}
	m, _ = send(t, m, runes("b"))
	if m.session.ShowCopyButton() {
		t.Fatalf("copy button should be hidden")
	}
	if strings.Contains(xansi.Strip(m.renderBlock()), "copy") {
		t.Fatalf("hidden copy button still rendered")
	}
}

func TestUpdate_CopyAckLifecycle(t *testing.T) {
	cb := &fakeClipboard{}
	m := newTestModel(t, cb, showcase.Ref{Category: "terminal", Name: "npm"})
	m, cmd := send(t, m, runes("c"))
	if cmd == nil {
		t.Fatalf("copy should return a command")
	}
	m, expire := send(t, m, cmd())
	if len(cb.got) != 1 || strings.Contains(cb.got[0], "$") {
		t.Fatalf("unexpected clipboard contents %q", cb.got)
	}
	if !m.ack.Active() || expire == nil {
		t.Fatalf("ack should be active with a pending expiry")
	}
	if !strings.Contains(xansi.Strip(m.renderBlock()), "copied") {
		t.Fatalf("ack not rendered")
	}

	// a second copy supersedes the first expiry
	m, cmd = send(t, m, runes("c"))
	m, _ = send(t, m, cmd())
	m, _ = send(t, m, ackExpiredMsg{gen: 1})
	if !m.ack.Active() {
		t.Fatalf("stale expiry cleared a newer ack")
	}
	m, _ = send(t, m, ackExpiredMsg{gen: 2})
	if m.ack.Active() {
		t.Fatalf("current expiry should clear the ack")
	}
}

func TestUpdate_CopyFailureIsSilent(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("denied")}
	m := newTestModel(t, cb, showcase.Ref{})
	before := m.View()
	m, cmd := send(t, m, runes("y"))
	m, expire := send(t, m, cmd())
	if m.ack.Active() || expire != nil {
		t.Fatalf("failed copy must not acknowledge")
	}
	after := m.View()
	if after != before {
		t.Fatalf("failed copy changed the view:\n%s", xansi.Strip(after))
	}
	if !strings.Contains(xansi.Strip(m.renderStatusBarLine()), string(m.session.Theme())) {
		t.Fatalf("theme chip missing from status bar")
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t, &fakeClipboard{}, showcase.Ref{})
	_, cmd := send(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestRenderStatusBar_Width(t *testing.T) {
	out := renderStatusBar(40, []string{"orhub", "Algorithms / Python", "plain"}, []string{"dev"})
	if w := xansi.StringWidth(out); w != 40 {
		t.Fatalf("status bar width %d, want 40", w)
	}
	narrow := renderStatusBar(12, []string{"orhub", "a long segment"}, []string{"dev"})
	if w := xansi.StringWidth(narrow); w > 12 {
		t.Fatalf("narrow status bar overflowed: %d", w)
	}
}
