package config

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"orhub/internal/codeblock"
)

// RunWizard edits s interactively and returns the result; s itself is
// not modified. Cancelling the form returns its error.
func RunWizard(s Settings) (Settings, error) {
	out := s
	lineNumbers := s.ShowLineNumbers == nil || *s.ShowLineNumbers
	copyButton := s.ShowCopyButton == nil || *s.ShowCopyButton
	label := s.ShowLanguageLabel == nil || *s.ShowLanguageLabel

	green := lipgloss.Color("#22c55e")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Focused.Title = theme.Focused.Title.Foreground(green).Bold(true)
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)

	langs := make([]huh.Option[string], 0, len(codeblock.SupportedLanguages))
	for _, l := range codeblock.SupportedLanguages {
		langs = append(langs, huh.NewOption(l.Label(), string(l)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Code block defaults").Description("Saved to ~/.orhub/config.yaml"),
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOption("Dark", "dark"), huh.NewOption("Light", "light")).
				Value(&out.Theme),
			huh.NewSelect[string]().
				Title("Language").
				Options(langs...).
				Height(6).
				Value(&out.Language),
			huh.NewConfirm().Title("Show line numbers").Value(&lineNumbers),
			huh.NewConfirm().Title("Show copy button").Value(&copyButton),
			huh.NewConfirm().Title("Show language label").Value(&label),
		),
		huh.NewGroup(
			huh.NewInput().Title("Prompt user").Value(&out.CommandLine.User),
			huh.NewInput().Title("Prompt host").Value(&out.CommandLine.Host),
			huh.NewInput().Title("Prompt path").Value(&out.CommandLine.Path),
			huh.NewInput().Title("Base prompt").Description("Replaces [user@host path]$ when set").Value(&out.CommandLine.BasePrompt),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return s, err
	}
	out.ShowLineNumbers = codeblock.Bool(lineNumbers)
	out.ShowCopyButton = codeblock.Bool(copyButton)
	out.ShowLanguageLabel = codeblock.Bool(label)
	return out, nil
}
