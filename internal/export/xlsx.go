package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"runner/internal/plan"
)

// Workbook sheet names
const (
	SheetOverview = "Overview"
	SheetSchedule = "Schedule"
)

var scheduleColumns = []string{"Week", "Phase", "Day", "Workout", "Type", "Pace", "Distance", "Description"}

// WriteXLSX writes the plan as a workbook with an overview sheet and a one-row-per-day schedule
func WriteXLSX(path string, p *plan.TrainingPlan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSchedule); err != nil {
		return fmt.Errorf("creating schedule sheet: %w", err)
	}

	if err := writeOverviewSheet(f, p); err != nil {
		return fmt.Errorf("writing overview: %w", err)
	}
	if err := writeScheduleSheet(f, p); err != nil {
		return fmt.Errorf("writing schedule: %w", err)
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeOverviewSheet(f *excelize.File, p *plan.TrainingPlan) error {
	sheet := SheetOverview
	info := p.Info()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", planTitle(p))
	f.MergeCell(sheet, "A1", "B1")
	f.SetCellStyle(sheet, "A1", "B1", titleStyle)
	f.SetRowHeight(sheet, 1, 30)

	rows := [][]any{
		{"Distance", fmt.Sprintf("%s (%s)", info.Name, plan.FormatKm(info.Km))},
		{"Weeks", len(p.Weeks)},
		{"Current pace", plan.FormatPace(p.CurrentPace)},
		{"Target pace", plan.FormatPace(p.TargetPace)},
		{"Training days", p.TrainingDays},
		{"Summary", p.Summary},
	}
	for i, row := range rows {
		n := i + 3
		f.SetCellValue(sheet, fmt.Sprintf("A%d", n), row[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", n), row[1])
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", n), fmt.Sprintf("A%d", n), labelStyle)
	}

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "B", "B", 90)
	return nil
}

func writeScheduleSheet(f *excelize.File, p *plan.TrainingPlan) error {
	sheet := SheetSchedule

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	raceStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FCE4D6"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, name := range scheduleColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(scheduleColumns))
	f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)

	row := 2
	for _, week := range p.Weeks {
		for _, d := range week.Days {
			values := []any{week.Week, string(week.Phase), d.Day, d.Workout, string(d.Type), d.Pace, d.Distance, d.Description}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
			if d.IsRaceDay() {
				f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", lastCol, row), raceStyle)
			}
			row++
		}
	}

	f.SetColWidth(sheet, "A", "A", 7)
	f.SetColWidth(sheet, "B", "B", 15)
	f.SetColWidth(sheet, "C", "C", 11)
	f.SetColWidth(sheet, "D", "D", 30)
	f.SetColWidth(sheet, "E", "E", 10)
	f.SetColWidth(sheet, "F", "G", 22)
	f.SetColWidth(sheet, "H", "H", 70)
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}
