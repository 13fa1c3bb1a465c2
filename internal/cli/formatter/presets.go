package formatter

import (
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
)

// RenderRates renders one rate table with the unit of each stage.
func RenderRates(rates domain.RateConfig) string {
	rows := make([][]string, 0, len(domain.Stages))
	for _, s := range domain.Stages {
		rows = append(rows, []string{
			StageStyle(s.ID).Render(s.Name),
			FormatRate(rates.Rate(s.ID)),
			Dim(s.RateUnit),
		})
	}
	return RenderTable([]string{"STAGE", "RATE", "UNIT"}, rows, 1)
}

// RenderPresets renders the Simple and Complex preset tables.
func RenderPresets() string {
	var b strings.Builder
	for i, c := range []domain.Complexity{domain.ComplexitySimple, domain.ComplexityComplex} {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(ComplexityBadge(c))
		b.WriteString("\n")
		b.WriteString(RenderRates(domain.PresetRates(c)))
	}
	return b.String()
}
