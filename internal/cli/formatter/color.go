package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox palette for chrome and status text. Stage rows and Gantt bars
// use the stage color tokens instead, see StageStyle.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Styles over the palette.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StageStyle colors text with the stage's own color token. Unknown ids fall
// back to the foreground color.
func StageStyle(id domain.StageID) lipgloss.Style {
	s, ok := domain.StageByID(id)
	if !ok || s.Color == "" {
		return StyleFg
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
}

// ComplexityBadge returns a colored tier label such as "● COMPLEX".
func ComplexityBadge(c domain.Complexity) string {
	switch c {
	case domain.ComplexityComplex:
		return StylePurple.Render("● COMPLEX")
	case domain.ComplexitySimple:
		return StyleGreen.Render("● SIMPLE")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(c)))
	}
}

// Header renders text upper-cased over a rule of the same width.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders secondary text.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold highlights names and totals.
func Bold(text string) string {
	return StyleBold.Render(text)
}
