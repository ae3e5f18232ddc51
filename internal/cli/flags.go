package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"orhub/internal/codeblock"
	cfg "orhub/internal/config"
	"orhub/internal/system"
)

// blockFlags are the code block options shared by render and copy.
type blockFlags struct {
	language           string
	theme              string
	lineNumbers        bool
	copyButton         bool
	label              bool
	commandLine        bool
	user               string
	host               string
	path               string
	basePrompt         string
	continuationPrompt string
}

func (f *blockFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.language, "language", "l", "", "highlighting language (see `orhub languages`)")
	fs.StringVar(&f.theme, "theme", "", "color theme: light or dark")
	fs.BoolVar(&f.lineNumbers, "line-numbers", true, "show line numbers")
	fs.BoolVar(&f.copyButton, "copy-button", true, "show the copy button")
	fs.BoolVar(&f.label, "label", true, "show the language label")
	fs.BoolVarP(&f.commandLine, "command-line", "c", false, "render as a shell transcript")
	fs.StringVar(&f.user, "user", "", "transcript prompt user")
	fs.StringVar(&f.host, "host", "", "transcript prompt host")
	fs.StringVar(&f.path, "path", "", "transcript prompt path")
	fs.StringVar(&f.basePrompt, "base-prompt", "", "literal prompt replacing [user@host path]$")
	fs.StringVar(&f.continuationPrompt, "continuation-prompt", "", "prompt for > continuation lines")
}

// options builds code block options for code. Only flags the user set
// are applied; the rest fall back to the settings file, then defaults.
func (f *blockFlags) options(cmd *cobra.Command, code string) (codeblock.Options, error) {
	o := codeblock.Options{Code: code, IsCommandLine: f.commandLine}
	fs := cmd.Flags()
	if fs.Changed("language") {
		o.Language = codeblock.ParseLanguage(f.language)
		if !o.Language.Supported() {
			if sug, ok := codeblock.SuggestLanguage(f.language); ok {
				system.Logger.Warn("unknown language, rendering without highlighting", "language", f.language, "did_you_mean", sug)
			} else {
				system.Logger.Warn("unknown language, rendering without highlighting", "language", f.language)
			}
		}
	}
	if fs.Changed("theme") {
		t, err := codeblock.ParseTheme(f.theme)
		if err != nil {
			return o, err
		}
		o.Theme = t
	}
	if fs.Changed("line-numbers") {
		o.ShowLineNumbers = codeblock.Bool(f.lineNumbers)
	}
	if fs.Changed("copy-button") {
		o.ShowCopyButton = codeblock.Bool(f.copyButton)
	}
	if fs.Changed("label") {
		o.ShowLanguageLabel = codeblock.Bool(f.label)
	}
	str := func(name, v string) *string {
		if fs.Changed(name) {
			return codeblock.String(v)
		}
		return nil
	}
	o.CommandLine = codeblock.CommandLineOverrides{
		User:               str("user", f.user),
		Host:               str("host", f.host),
		Path:               str("path", f.path),
		BasePrompt:         str("base-prompt", f.basePrompt),
		ContinuationPrompt: str("continuation-prompt", f.continuationPrompt),
	}

	s, src, err := cfg.Load()
	if err != nil {
		return o, err
	}
	if src != "" {
		system.Logger.Debug("loaded settings", "path", src)
	}
	return s.Apply(o), nil
}

// readSource reads the file named by args[0], or stdin for "-" or no
// argument. One trailing newline is dropped.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return trimFinalNewline(string(b)), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return trimFinalNewline(string(b)), nil
}

func trimFinalNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
