package cli

import (
	"fmt"

	"github.com/alexanderramin/carga/internal/cli/formatter"
	"github.com/alexanderramin/carga/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cargaHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func cargaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirmForm asks a yes/no question.
func confirmForm(title, description string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(cargaHuhTheme()).WithShowHelp(false)
}

// dedicationForm picks a professor and the percentage of the section they teach.
func dedicationForm(profs []*domain.Professor, professorID, pct *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(profs))
	for _, p := range profs {
		label := fmt.Sprintf("%s (%s)", p.Name, domain.CanonicalCategory(p.Category))
		options = append(options, huh.NewOption(label, p.ID))
	}
	if *pct == "" {
		*pct = "100"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which professor?").
				Options(options...).
				Value(professorID),
			huh.NewInput().
				Title("Dedication (%)").
				Description("0 removes the professor from the section").
				Placeholder("100").
				Value(pct).
				Validate(validatePercent),
		),
	).WithTheme(cargaHuhTheme()).WithShowHelp(false)
}

// validatePercent accepts a number between 0 and 100.
func validatePercent(s string) error {
	v, err := parsePercent(s)
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a percentage between 0 and 100")
	}
	return nil
}
