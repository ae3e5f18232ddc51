package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"orhub/internal/render"
	"orhub/internal/showcase"
	tu "orhub/internal/testutil"
)

// resetFlags restores every flag of c and its children to its default so
// commands can be executed repeatedly.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	tu.TempHome(t)
	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func mustCatalog(t *testing.T) *showcase.Catalog {
	t.Helper()
	c, err := showcase.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return c
}

type fakeClipboard struct{ got string }

func (f *fakeClipboard) WriteAll(text string) error {
	f.got = text
	return nil
}

func TestRenderCommand(t *testing.T) {
	transcript := "$ npm install\nInstalling...\n"
	tests := []struct {
		name     string
		stdin    string
		args     []string
		contains []string
		excludes []string
		wantErr  string
	}{
		{
			name:     "plain transcript with flags",
			stdin:    transcript,
			args:     []string{"render", "--format", "plain", "-c", "--user", "dev", "-"},
			contains: []string{" 1  [dev@localhost ~]$ npm install\n 2  Installing..."},
		},
		{
			name:     "line numbers off",
			stdin:    "const a = 1;",
			args:     []string{"render", "--format", "plain", "--line-numbers=false"},
			contains: []string{"const a = 1;"},
			excludes: []string{" 1  "},
		},
		{
			name:     "catalog sample",
			args:     []string{"render", "--sample", "docker", "--format", "plain"},
			contains: []string{"[user@localhost ~]$ docker build -t my-app .", "[+] Building 12.5s"},
		},
		{
			name:     "html",
			stdin:    "<b>",
			args:     []string{"render", "--format", "html", "-l", "markdown"},
			contains: []string{"&lt;b&gt;", "data-copy"},
		},
		{
			name:     "ansi block",
			stdin:    "print(1)",
			args:     []string{"render", "-l", "python", "--width", "40"},
			contains: []string{"Python", "print"},
		},
		{
			name:    "unknown format",
			stdin:   "x",
			args:    []string{"render", "--format", "pdf"},
			wantErr: "unknown format",
		},
		{
			name:    "bad theme",
			stdin:   "x",
			args:    []string{"render", "--theme", "neon"},
			wantErr: "unknown theme",
		},
		{
			name:    "watch needs a file",
			stdin:   "x",
			args:    []string{"render", "--watch"},
			wantErr: "--watch needs a file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("render error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("missing %q in:\n%s", want, out)
				}
			}
			for _, excluded := range tt.excludes {
				if strings.Contains(out, excluded) {
					t.Errorf("unexpected %q in:\n%s", excluded, out)
				}
			}
		})
	}
}

func TestRenderCommand_JSON(t *testing.T) {
	out, err := run(t, "$ git status\nOn branch main\n", "render", "--format", "json", "-c")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	var d render.Document
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatalf("decode document: %v\n%s", err, out)
	}
	if d.CopyText != "git status" || d.Mode != "command-line" {
		t.Fatalf("unexpected document: copy=%q mode=%q", d.CopyText, d.Mode)
	}
	if len(d.Lines) != 2 || d.HTML == "" {
		t.Fatalf("expected 2 lines and html, got %d lines", len(d.Lines))
	}
}

func TestRenderCommand_SettingsApply(t *testing.T) {
	home := tu.TempHome(t)
	dir := filepath.Join(home, ".orhub")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("showLineNumbers: false\ncommandLine:\n  host: box\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("$ ls"))
	rootCmd.SetArgs([]string{"render", "--format", "plain", "-c"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := buf.String(); got != "[user@box ~]$ ls\n" {
		t.Fatalf("settings not applied, got %q", got)
	}
}

func TestCopyCommand(t *testing.T) {
	fake := &fakeClipboard{}
	old := copyClipboard
	copyClipboard = fake
	t.Cleanup(func() { copyClipboard = old })

	if _, err := run(t, "$ npm install\nInstalling...\n> --save\n", "copy", "-c"); err != nil {
		t.Fatalf("copy error: %v", err)
	}
	if fake.got != "npm install\n> --save" {
		t.Fatalf("unexpected transcript copy %q", fake.got)
	}

	if _, err := run(t, "a  \nb", "copy"); err != nil {
		t.Fatalf("copy error: %v", err)
	}
	if fake.got != "a  \nb" {
		t.Fatalf("plain copy should be verbatim, got %q", fake.got)
	}
}

func TestListingCommands(t *testing.T) {
	tests := []struct {
		args     []string
		contains []string
	}{
		{[]string{"languages"}, []string{"shell-session", "TypeScript"}},
		{[]string{"samples"}, []string{"terminal/git", "algorithms/python", "command-line"}},
		{[]string{"samples", "--json"}, []string{`"dataStructures"`}},
		{[]string{"docs"}, []string{"code-block", "split-text"}},
		{[]string{"docs", "code-block", "--markdown"}, []string{"# Code Block Component", "## Props"}},
		{[]string{"docs", "split-text", "--theme", "light"}, []string{"npm install"}},
		{[]string{"config", "schema"}, []string{"orhub settings"}},
		{[]string{"version"}, []string{"dev"}},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("command error: %v", err)
			}
			out = xansi.Strip(out)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("missing %q in:\n%s", want, out)
				}
			}
		})
	}
}

func TestDocsCommand_UnknownComponent(t *testing.T) {
	_, err := run(t, "", "docs", "calendar")
	if err == nil || !strings.Contains(err.Error(), "unknown component") {
		t.Fatalf("expected unknown component error, got %v", err)
	}
}

func TestConfigCommand_CreatesFile(t *testing.T) {
	out, err := run(t, "", "config")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	if !strings.Contains(out, "created") || !strings.Contains(out, "theme: dark") {
		t.Fatalf("unexpected config output:\n%s", out)
	}

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".orhub", "config.yaml")); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
}

func TestLogLevelFlag(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "version")
	if err == nil || !strings.Contains(err.Error(), "log level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}

func TestPreviewConfig(t *testing.T) {
	tu.TempHome(t)
	c := mustCatalog(t)
	conf, err := previewConfig(c, "git")
	if err != nil {
		t.Fatalf("previewConfig error: %v", err)
	}
	if got := conf.Start.String(); got != "terminal/git" {
		t.Fatalf("unexpected start sample %q", got)
	}
	if u := conf.Defaults.CommandLine.User; u == nil || *u != "user" {
		t.Fatalf("settings defaults not applied: %v", u)
	}

	if _, err := previewConfig(c, "zzzzqqq"); err == nil {
		t.Fatalf("expected error for unmatched sample")
	}
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "snippet.sh")
	if err := os.WriteFile(p, []byte("$ ls"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fired := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, p, func() error {
			select {
			case fired <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// the watcher registers asynchronously; keep writing until it fires
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-fired:
			break loop
		case <-tick.C:
			_ = os.WriteFile(p, []byte("$ ls -la"), 0o644)
		case <-deadline:
			t.Fatal("watcher did not fire")
		}
	}
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watchFile error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
