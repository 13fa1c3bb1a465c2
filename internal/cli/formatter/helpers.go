package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatDays renders a working-day count with its unit.
func FormatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// FormatRate renders a rate without trailing zeros: 22, 5.5, 0.5.
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTotals renders the schedule length in days, weeks and months.
func FormatTotals(days int, weeks, months float64) string {
	return fmt.Sprintf("%d working days (~%.1f weeks, ~%.1f months)", days, weeks, months)
}

// HumanDate returns a short absolute date such as "Oct 18, 2026".
func HumanDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006")
}
