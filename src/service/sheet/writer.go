package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"quality-trends/src/model"
	"quality-trends/src/util"
)

// Fill colors for the difference column, matching the existing reports.
const (
	improvementColor = "00FF00"
	regressionColor  = "FF0000"
)

// Writer produces the colored comparison workbooks
type Writer struct{}

// NewWriter creates a new comparison workbook writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write creates one comparison workbook for a metric. The difference cell
// of each row is filled green for improvements and red for regressions.
// When the result is empty a single placeholder cell is written instead of
// a table. A non-nil chart is embedded as a PNG next to the table.
func (w *Writer) Write(result model.ComparisonResult, chart []byte, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := result.Metric + " Changes"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if result.Empty() {
		msg := fmt.Sprintf("No significant changes in %s between first and second", result.Metric)
		if err := f.SetCellValue(sheetName, "A1", msg); err != nil {
			return fmt.Errorf("writing placeholder: %w", err)
		}
		if err := f.SaveAs(path); err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		util.Info("No significant changes found for %s", result.Metric)
		return nil
	}

	headers := []string{
		"Repository Name",
		"Branch",
		"Clean Name",
		fmt.Sprintf("%s (first)", result.Metric),
		fmt.Sprintf("%s (second)", result.Metric),
		fmt.Sprintf("%s Difference", result.Metric),
	}
	for col, header := range headers {
		cellName, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cellName, header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	improvement, err := fillStyle(f, improvementColor)
	if err != nil {
		return err
	}
	regression, err := fillStyle(f, regressionColor)
	if err != nil {
		return err
	}

	for i, delta := range result.Deltas {
		row := i + 2
		values := []any{
			delta.Repository,
			delta.Branch,
			delta.CleanName,
			delta.Before,
			delta.After,
			delta.Difference,
		}
		for col, v := range values {
			cellName, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cellName, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
		}

		diffCell, _ := excelize.CoordinatesToCellName(len(values), row)
		style := regression
		if delta.Improved() {
			style = improvement
		}
		if err := f.SetCellStyle(sheetName, diffCell, diffCell, style); err != nil {
			return fmt.Errorf("styling row %d: %w", row, err)
		}
	}

	if chart != nil {
		pic := &excelize.Picture{
			Extension: ".png",
			File:      chart,
			Format:    &excelize.GraphicOptions{ScaleX: 0.6, ScaleY: 0.5},
		}
		if err := f.AddPictureFromBytes(sheetName, "H2", pic); err != nil {
			return fmt.Errorf("embedding chart: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func fillStyle(f *excelize.File, color string) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
	if err != nil {
		return 0, fmt.Errorf("creating fill style: %w", err)
	}
	return style, nil
}
