// Package export writes an estimate to CSV and XLSX files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/folio/internal/domain"
)

// Estimate is everything a report needs: the inputs and their result.
type Estimate struct {
	Project domain.ProjectConfig     `json:"project"`
	Team    domain.TeamConfig        `json:"team"`
	Rates   domain.RateConfig        `json:"rates"`
	Result  domain.CalculationResult `json:"results"`
}

var timelineHeaders = []string{"Stage", "Name", "People", "Start Day", "End Day", "Duration (days)"}

// timelineRows renders one row per stage in the fixed stage order.
func timelineRows(e Estimate) [][]string {
	rows := make([][]string, 0, len(e.Result.Stages))
	for _, s := range e.Result.Stages {
		rows = append(rows, []string{
			string(s.ID),
			s.Name,
			strconv.Itoa(e.Team.Headcount(s.ID)),
			strconv.Itoa(s.StartDate),
			strconv.Itoa(s.EndDate),
			strconv.Itoa(s.DurationDays),
		})
	}
	return rows
}

func totalRows(r domain.CalculationResult) [][]string {
	return [][]string{
		{"Total days", strconv.Itoa(r.TotalDays)},
		{"Total weeks", strconv.FormatFloat(r.TotalWeeks, 'f', 1, 64)},
		{"Total months", strconv.FormatFloat(r.TotalMonths, 'f', 1, 64)},
	}
}

// WriteCSV writes the timeline table followed by a blank line and totals.
func WriteCSV(w io.Writer, e Estimate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(timelineHeaders); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := cw.WriteAll(timelineRows(e)); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	if err := cw.Write(nil); err != nil {
		return fmt.Errorf("writing csv separator: %w", err)
	}
	if err := cw.WriteAll(totalRows(e.Result)); err != nil {
		return fmt.Errorf("writing csv totals: %w", err)
	}
	return nil
}
