package formatter

import (
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// GanttSpan splits a bar of width columns into the columns before, during
// and after the interval [start, end) of a schedule total days long. A
// non-empty interval always gets at least one column; an empty one gets
// none.
func GanttSpan(start, end, total, width int) (lead, fill, trail int) {
	if width < 1 {
		width = 1
	}
	if total <= 0 || end <= start {
		return 0, 0, width
	}

	lead = start * width / total
	fill = end*width/total - lead
	if fill < 1 {
		fill = 1
		if lead+fill > width {
			lead = width - fill
		}
	}
	trail = width - lead - fill
	return lead, fill, trail
}

// RenderGanttBar draws the stage's interval in its color over a dim track.
func RenderGanttBar(stage domain.StageResult, total, width int) string {
	lead, fill, trail := GanttSpan(stage.StartDate, stage.EndDate, total, width)
	return StyleDim.Render(strings.Repeat(emptyBlock, lead)) +
		StageStyle(stage.ID).Render(strings.Repeat(filledBlock, fill)) +
		StyleDim.Render(strings.Repeat(emptyBlock, trail))
}
