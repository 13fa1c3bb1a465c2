package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	TimelineSheet = "Timeline"
	InputsSheet   = "Inputs"
)

// WriteXLSX writes a workbook with a Timeline sheet (stage rows filled with
// the stage color, then totals) and an Inputs sheet.
func WriteXLSX(w io.Writer, e Estimate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), TimelineSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(InputsSheet); err != nil {
		return fmt.Errorf("adding inputs sheet: %w", err)
	}

	if err := writeTimeline(f, e); err != nil {
		return fmt.Errorf("writing timeline: %w", err)
	}
	if err := writeInputs(f, e); err != nil {
		return fmt.Errorf("writing inputs: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"3C3836"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeTimeline(f *excelize.File, e Estimate) error {
	hdr, err := headerStyle(f)
	if err != nil {
		return err
	}
	headers := make([]any, len(timelineHeaders))
	for i, h := range timelineHeaders {
		headers[i] = h
	}
	if err := writeRow(f, TimelineSheet, 1, headers); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(timelineHeaders), 1)
	if err := f.SetCellStyle(TimelineSheet, "A1", last, hdr); err != nil {
		return err
	}

	row := 2
	for _, s := range e.Result.Stages {
		if err := writeRow(f, TimelineSheet, row, []any{
			string(s.ID), s.Name, e.Team.Headcount(s.ID), s.StartDate, s.EndDate, s.DurationDays,
		}); err != nil {
			return err
		}
		fill, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{strings.TrimPrefix(s.Color, "#")}, Pattern: 1},
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		})
		if err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellStyle(TimelineSheet, cell, cell, fill); err != nil {
			return err
		}
		row++
	}

	row++
	for _, r := range totalsAny(e.Result) {
		if err := writeRow(f, TimelineSheet, row, r); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(TimelineSheet, "A", "A", 14); err != nil {
		return err
	}
	return f.SetColWidth(TimelineSheet, "B", "B", 30)
}

func totalsAny(r domain.CalculationResult) [][]any {
	return [][]any{
		{"Total days", r.TotalDays},
		{"Total weeks", r.TotalWeeks},
		{"Total months", r.TotalMonths},
	}
}

func writeInputs(f *excelize.File, e Estimate) error {
	hdr, err := headerStyle(f)
	if err != nil {
		return err
	}

	p := e.Project
	rows := [][]any{
		{"Project", ""},
		{"Name", p.Name},
		{"Subject", string(p.Subject)},
		{"Complexity", string(p.Complexity)},
		{"Books", p.NumberOfBooks},
		{"Pages per book", p.PagesPerBook},
		{"Total pages", p.TotalPages()},
		{},
		{"Stage", "People", "Rate", "Unit"},
	}
	for _, s := range domain.Stages {
		rows = append(rows, []any{s.Name, e.Team.Headcount(s.ID), e.Rates.Rate(s.ID), s.RateUnit})
	}

	for i, r := range rows {
		if err := writeRow(f, InputsSheet, i+1, r); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(InputsSheet, "A1", "B1", hdr); err != nil {
		return err
	}
	if err := f.SetCellStyle(InputsSheet, "A9", "D9", hdr); err != nil {
		return err
	}
	return f.SetColWidth(InputsSheet, "A", "A", 30)
}
