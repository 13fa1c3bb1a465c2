package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/estimator"
)

const ganttWidth = 30

// RenderTimeline renders the project summary, the six-stage table with a
// Gantt column, and the totals.
func RenderTimeline(project domain.ProjectConfig, team domain.TeamConfig, result domain.CalculationResult, customized bool) string {
	var b strings.Builder

	b.WriteString(Header(project.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		Bold(string(project.Subject)),
		ComplexityBadge(project.Complexity),
		Dim(fmt.Sprintf("%d books × %d pages = %d pages", project.NumberOfBooks, project.PagesPerBook, project.TotalPages())),
	)

	headers := []string{"STAGE", "PEOPLE", "START", "END", "DAYS", "TIMELINE"}
	rows := make([][]string, 0, len(result.Stages))
	for _, s := range result.Stages {
		rows = append(rows, []string{
			StageStyle(s.ID).Render(s.Name),
			strconv.Itoa(team.Headcount(s.ID)),
			strconv.Itoa(s.StartDate),
			strconv.Itoa(s.EndDate),
			strconv.Itoa(s.DurationDays),
			RenderGanttBar(s, result.TotalDays, ganttWidth),
		})
	}
	b.WriteString(RenderTable(headers, rows, 1, 2, 3, 4))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render("Total:"), Bold(FormatTotals(result.TotalDays, result.TotalWeeks, result.TotalMonths)))
	if stage, ok := estimator.Bottleneck(result); ok {
		fmt.Fprintf(&b, "%s %s %s\n",
			Dim("Longest stage:"),
			StageStyle(stage.ID).Render(stage.Name),
			Dim(fmt.Sprintf("(%s, %.0f%% of the schedule)", FormatDays(stage.DurationDays), estimator.Share(result, stage)*100)),
		)
	}
	if customized {
		b.WriteString(StyleYellow.Render("Rates customized: not the "+string(project.Complexity)+" preset.") + "\n")
	}
	return b.String()
}
