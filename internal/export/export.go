// Package export writes generated training plans to files.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"runner/internal/plan"
)

// ErrUnsupportedFormat is returned for file extensions with no writer
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format identifies an export file type
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath picks the export format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".txt":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// WriteFile exports p to path in the format implied by its extension
func WriteFile(path string, p *plan.TrainingPlan) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatPDF:
		return WritePDF(path, p)
	case FormatXLSX:
		return WriteXLSX(path, p)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	switch format {
	case FormatJSON:
		err = WriteJSON(f, p)
	case FormatYAML:
		err = WriteYAML(f, p)
	default:
		err = WriteText(f, p)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteJSON writes the plan as indented JSON
func WriteJSON(w io.Writer, p *plan.TrainingPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding plan json: %w", err)
	}
	return nil
}

// WriteYAML writes the plan as YAML with the same field names as the JSON form
func WriteYAML(w io.Writer, p *plan.TrainingPlan) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding plan yaml: %w", err)
	}
	return enc.Close()
}

// weekHeading is shared by the text and PDF writers
func weekHeading(w plan.TrainingWeek) string {
	return fmt.Sprintf("Week %d · %s · %s", w.Week, w.Phase, w.TotalMileage)
}

// dayDetail joins distance and pace the way the plan screen shows them
func dayDetail(d plan.TrainingDay) string {
	switch {
	case d.Distance != "" && d.Pace != "":
		return d.Distance + " @ " + d.Pace
	case d.Distance != "":
		return d.Distance
	default:
		return d.Pace
	}
}

func planTitle(p *plan.TrainingPlan) string {
	info := p.Info()
	return fmt.Sprintf("%s Training Plan", info.Name)
}
