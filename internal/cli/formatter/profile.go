package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
)

// RenderProfileList renders saved rate profiles, one per row.
func RenderProfileList(profiles []domain.RateProfile) string {
	if len(profiles) == 0 {
		return Dim("No saved rate profiles.") + "\n"
	}
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			Bold(p.Name),
			ComplexityBadge(p.BaseComplexity),
			HumanDate(p.UpdatedAt),
			Dim(p.Notes),
		})
	}
	return RenderTable([]string{"NAME", "BASE", "UPDATED", "NOTES"}, rows)
}

// RenderProfile renders one profile with its rate table.
func RenderProfile(p domain.RateProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  based on %s\n", Bold(p.Name), ComplexityBadge(p.BaseComplexity))
	if p.Notes != "" {
		b.WriteString(Dim(p.Notes) + "\n")
	}
	if p.Rates == domain.PresetRates(p.BaseComplexity) {
		b.WriteString(Dim("Same as the "+string(p.BaseComplexity)+" preset.") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(RenderRates(p.Rates))
	return b.String()
}
