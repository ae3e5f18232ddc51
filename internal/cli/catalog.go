package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"orhub/internal/codeblock"
	cfg "orhub/internal/config"
	"orhub/internal/highlight"
	"orhub/internal/showcase"
)

var (
	docsTheme    string
	docsWidth    int
	docsMarkdown bool
	samplesJSON  bool
)

func init() {
	rootCmd.AddCommand(docsCmd, samplesCmd, languagesCmd)
	docsCmd.Flags().StringVar(&docsTheme, "theme", "", "color theme: light or dark")
	docsCmd.Flags().IntVarP(&docsWidth, "width", "W", 80, "wrap width")
	docsCmd.Flags().BoolVar(&docsMarkdown, "markdown", false, "print the page as raw Markdown")
	samplesCmd.Flags().BoolVar(&samplesJSON, "json", false, "print the catalog as JSON")
}

var docsCmd = &cobra.Command{
	Use:   "docs [component]",
	Short: "Show a component documentation page",
	Long:  "Without an argument, lists the documented components. With one, renders its page: description, install command, usage and props.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := showcase.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, comp := range c.Components {
				fmt.Fprintf(tw, "%s\t%s\n", comp.Slug, comp.Title)
			}
			return tw.Flush()
		}
		comp, ok := c.Component(args[0])
		if !ok {
			return fmt.Errorf("unknown component %q (see `orhub docs`)", args[0])
		}
		if docsMarkdown {
			_, err := io.WriteString(out, comp.Markdown())
			return err
		}
		theme, err := docsThemeOrSettings(cmd)
		if err != nil {
			return err
		}
		page, err := showcase.RenderDoc(comp, theme, docsWidth, highlight.NewRegistry())
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, page)
		return err
	},
}

func docsThemeOrSettings(cmd *cobra.Command) (codeblock.Theme, error) {
	if cmd.Flags().Changed("theme") {
		return codeblock.ParseTheme(docsTheme)
	}
	s, _, err := cfg.Load()
	if err != nil {
		return "", err
	}
	return codeblock.ParseTheme(s.Theme)
}

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the sample catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := showcase.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if samplesJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(c.Categories)
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, cat := range c.Categories {
			for _, s := range cat.Samples {
				mode := codeblock.ModePlain
				if cat.CommandLine {
					mode = codeblock.ModeCommandLine
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", showcase.Ref{Category: cat.ID, Name: s.Name}, s.Label, mode)
			}
		}
		return tw.Flush()
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported highlighting languages",
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, l := range codeblock.SupportedLanguages {
			fmt.Fprintf(tw, "%s\t%s\n", l, l.Label())
		}
		_ = tw.Flush()
	},
}
