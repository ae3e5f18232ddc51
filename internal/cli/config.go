package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfg "orhub/internal/config"
)

func init() { rootCmd.AddCommand(configCmd) }

// wizard flag
var configWizard bool

func init() {
	configCmd.Flags().BoolVarP(&configWizard, "wizard", "w", false, "run the interactive settings wizard")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialize and show the settings file",
	Long:  "Creates ~/.orhub/config.yaml with defaults when missing, then prints its location and effective contents.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, src, err := cfg.Load()
		if err != nil {
			return err
		}
		if configWizard {
			s, err = cfg.RunWizard(s)
			if err != nil {
				return fmt.Errorf("wizard: %w", err)
			}
			p, err := cfg.Save(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ saved %s\n", p)
			return nil
		}

		p, err := cfg.Path()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		switch {
		case src == "":
			if p, err = cfg.Save(s); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ created %s\n", p)
		case src != p:
			// migrate the legacy OS config dir file to ~/.orhub
			if !fileExists(p) {
				if p, err = cfg.Save(s); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ copied %s to %s\n", src, p)
			}
		default:
			fmt.Fprintf(out, "• using %s\n", p)
		}

		b, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s", b)
		return nil
	},
}

func fileExists(path string) bool {
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		return true
	}
	return false
}
