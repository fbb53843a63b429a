package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"runner/internal/plan"
)

// WritePDF renders the plan as an A4 document: title, summary, then a section per week
func WritePDF(path string, p *plan.TrainingPlan) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; UTF-8 text must be translated first
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(planTitle(p)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Current pace: %s    Target pace: %s    Days/week: %d",
		plan.FormatPace(p.CurrentPace), plan.FormatPace(p.TargetPace), p.TrainingDays)))
	pdf.Ln(8)
	pdf.MultiCell(0, 6, tr(p.Summary), "", "", false)
	pdf.Ln(4)

	for _, week := range p.Weeks {
		// Keep a week heading with at least a few of its days
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, tr(weekHeading(week)))
		pdf.Ln(8)

		for _, d := range week.Days {
			if d.Type == plan.DayRest {
				pdf.SetFont("Arial", "I", 10)
			} else {
				pdf.SetFont("Arial", "", 10)
			}
			pdf.CellFormat(28, 6, tr(d.Day), "", 0, "", false, 0, "")
			pdf.CellFormat(62, 6, tr(d.Workout), "", 0, "", false, 0, "")
			pdf.CellFormat(0, 6, tr(dayDetail(d)), "", 1, "", false, 0, "")
		}
		pdf.Ln(3)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
