package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orhub/internal/system"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "orhub",
	Short: "orhub – code block renderer and component showcase",
	Long:  "orhub renders source code and shell transcripts as highlighted code blocks, in the terminal, as HTML, or in a live preview.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl := logLevel
		if lvl == "" {
			lvl = os.Getenv("ORHUB_LOG_LEVEL")
		}
		if err := system.SetLevel(lvl); err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the live preview
		return runPreview("")
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (env ORHUB_LOG_LEVEL)")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
