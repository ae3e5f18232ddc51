package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"orhub/internal/clip"
	"orhub/internal/codeblock"
	"orhub/internal/highlight"
	"orhub/internal/render"
	"orhub/internal/showcase"
	"orhub/internal/system"
)

// Output formats of the render command.
const (
	formatANSI  = "ansi"
	formatPlain = "plain"
	formatHTML  = "html"
	formatJSON  = "json"
)

var (
	renderBlock  blockFlags
	renderFormat string
	renderWidth  int
	renderCopy   bool
	renderWatch  bool
	renderSample string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderBlock.register(renderCmd.Flags())
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", formatANSI, "output format: ansi, plain, html or json")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "W", 0, "outer width of the ansi block (0 fits the content)")
	renderCmd.Flags().BoolVar(&renderCopy, "copy", false, "also copy the copyable text to the clipboard")
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "re-render whenever the input file changes")
	renderCmd.Flags().StringVarP(&renderSample, "sample", "s", "", "render a catalog sample, e.g. terminal/git")
}

var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render a code block",
	Long:  "Renders source code, or a shell transcript with --command-line, to the terminal, HTML, JSON or plain text. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch renderFormat {
		case formatANSI, formatPlain, formatHTML, formatJSON:
		default:
			return fmt.Errorf("unknown format %q (want ansi, plain, html or json)", renderFormat)
		}
		reg := highlight.NewRegistry()
		once := func() error {
			o, err := renderOptions(cmd, args)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), render.NewSession(o, reg))
		}
		if !renderWatch {
			return once()
		}
		if len(args) == 0 || args[0] == "-" {
			return fmt.Errorf("--watch needs a file argument")
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		redraw := func() error {
			if renderFormat == formatANSI {
				// cursor home, clear screen
				fmt.Fprint(cmd.OutOrStdout(), "\x1b[H\x1b[2J")
			}
			return once()
		}
		if err := redraw(); err != nil {
			return err
		}
		return watchFile(ctx, args[0], redraw)
	},
}

func renderOptions(cmd *cobra.Command, args []string) (codeblock.Options, error) {
	if renderSample == "" {
		code, err := readSource(cmd, args)
		if err != nil {
			return codeblock.Options{}, err
		}
		return renderBlock.options(cmd, code)
	}
	c, err := showcase.Load()
	if err != nil {
		return codeblock.Options{}, err
	}
	ref, ok := c.FindSample(renderSample)
	if !ok {
		return codeblock.Options{}, fmt.Errorf("no sample matches %q (see `orhub samples`)", renderSample)
	}
	cat, _ := c.Category(ref.Category)
	smp, _ := c.Sample(ref.Category, ref.Name)
	so := smp.Options(cat)
	if !cmd.Flags().Changed("command-line") {
		renderBlock.commandLine = so.IsCommandLine
	}
	o, err := renderBlock.options(cmd, so.Code)
	if err != nil {
		return o, err
	}
	if !cmd.Flags().Changed("language") {
		o.Language = so.Language
	}
	return o, nil
}

func emit(w io.Writer, s *render.Session) error {
	copied := false
	if renderCopy {
		copied = clip.Copy(clip.System{}, s.CopyText())
		if copied {
			system.Logger.Info("copied to clipboard", "lines", len(s.Lines()))
		}
	}
	switch renderFormat {
	case formatPlain:
		_, err := fmt.Fprintln(w, render.PlainText(s))
		return err
	case formatHTML:
		h, err := render.HTML(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, h)
		return err
	case formatJSON:
		d, err := render.NewDocument(s, true)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		_, err := fmt.Fprintln(w, render.Terminal(s, render.TermOptions{Width: renderWidth, Copied: copied}))
		return err
	}
}

// watchFile calls fn after every write to path until ctx is done. The
// parent directory is watched so editors that replace the file on save
// keep triggering.
func watchFile(ctx context.Context, path string, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	system.Logger.Debug("watching", "path", abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := fn(); err != nil {
				system.Logger.Warn("re-render failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			system.Logger.Warn("watch error", "err", err)
		}
	}
}
