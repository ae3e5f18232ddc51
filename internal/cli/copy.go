package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"orhub/internal/clip"
	"orhub/internal/render"
	"orhub/internal/system"
)

var (
	copyBlock blockFlags
	// copyClipboard is swapped in tests.
	copyClipboard clip.Writer = clip.System{}
)

func init() {
	rootCmd.AddCommand(copyCmd)
	copyBlock.register(copyCmd.Flags())
}

var copyCmd = &cobra.Command{
	Use:   "copy [file|-]",
	Short: "Copy a code block's copyable text to the clipboard",
	Long:  "Copies the text the copy button would copy: the source as is, or with --command-line only the commands, without prompts or output.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		o, err := copyBlock.options(cmd, code)
		if err != nil {
			return err
		}
		text := render.NewSession(o, nil).CopyText()
		if err := copyClipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		system.Logger.Info("copied to clipboard", "bytes", len(text))
		return nil
	},
}
