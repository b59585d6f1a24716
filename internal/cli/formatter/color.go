package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/carga/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ClassColor returns the style used for a staffing class.
func ClassColor(class domain.ClassType) lipgloss.Style {
	switch class {
	case domain.ClassTeorico:
		return StyleBlue
	case domain.ClassPractico:
		return StylePurple
	default:
		return StyleDim
	}
}

// ClassBadge renders a colored class label such as "● Teorico".
func ClassBadge(class domain.ClassType) string {
	if class == "" {
		return StyleDim.Render("● --")
	}
	return ClassColor(class).Render("● " + string(class))
}

// CategoryLabel renders a professor category, dimming the catch-all and
// excluded categories.
func CategoryLabel(c domain.ProfessorCategory) string {
	switch {
	case c.ExcludedFromWorkload():
		return StyleDim.Render(string(c) + " (excluido)")
	case c.IsCatchAll():
		return StyleYellow.Render(string(c))
	default:
		return StyleFg.Render(string(c))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
