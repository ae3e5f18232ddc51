package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"orhub/internal/app"
	"orhub/internal/clip"
	"orhub/internal/codeblock"
	cfg "orhub/internal/config"
	"orhub/internal/highlight"
	"orhub/internal/showcase"
	"orhub/internal/system"
	"orhub/internal/ui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [sample]",
	Short: "Open the interactive code block preview",
	Long:  "Browses the sample catalog in a live preview. Keys: tab switches category, ←/→ switch sample, t theme, n line numbers, c copy.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := ""
		if len(args) == 1 {
			q = args[0]
		}
		return runPreview(q)
	},
}

func runPreview(query string) error {
	c, err := showcase.Load()
	if err != nil {
		return err
	}
	conf, err := previewConfig(c, query)
	if err != nil {
		return err
	}
	if !clip.Available() {
		system.Logger.Warn("no clipboard utility found; copy will be unavailable")
	}
	return app.Start(conf)
}

func previewConfig(c *showcase.Catalog, query string) (ui.Config, error) {
	s, _, err := cfg.Load()
	if err != nil {
		return ui.Config{}, err
	}
	conf := ui.Config{
		Catalog:   c,
		Registry:  highlight.NewRegistry(),
		Clipboard: clip.System{},
		Defaults:  s.Apply(codeblock.Options{}),
	}
	if query != "" {
		ref, ok := c.FindSample(query)
		if !ok {
			return conf, fmt.Errorf("no sample matches %q (see `orhub samples`)", query)
		}
		conf.Start = ref
	}
	return conf, nil
}
