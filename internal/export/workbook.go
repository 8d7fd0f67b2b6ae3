// Package export writes analysis results to spreadsheet files:
// multi-sheet workbooks with sized columns, a summary sheet stamped
// with a run identifier, and charts where the analysis calls for them.
package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const maxColWidth = 50

// newWorkbook creates a workbook whose first sheet carries the given
// name instead of the default "Sheet1".
func newWorkbook(first string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", first); err != nil {
		return nil, err
	}
	return f, nil
}

// writeSheet fills a sheet with a bold header row and data rows, then
// sizes its columns. The sheet is created when absent.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}
	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return sizeColumns(f, sheet, header, rows)
}

// sizeColumns widens each column to its longest value, capped so one
// verbose cell cannot blow up the layout.
func sizeColumns(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	for c := range header {
		width := len(header[c])
		for _, row := range rows {
			if c >= len(row) {
				continue
			}
			if l := len(fmt.Sprint(row[c])); l > width {
				width = l
			}
		}
		if width+2 < maxColWidth {
			width += 2
		} else {
			width = maxColWidth
		}
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

// writeSummary writes a METRIC/VALUE sheet and stamps it with the run
// identifier and generation time.
func writeSummary(f *excelize.File, sheet string, metrics [][2]interface{}) error {
	rows := make([][]interface{}, 0, len(metrics)+2)
	for _, m := range metrics {
		rows = append(rows, []interface{}{m[0], m[1]})
	}
	rows = append(rows,
		[]interface{}{"Run ID", uuid.NewString()},
		[]interface{}{"Generated at", time.Now().Format(time.RFC3339)},
	)
	return writeSheet(f, sheet, []string{"METRIC", "VALUE"}, rows)
}

// embedPNG places PNG bytes on the sheet at the anchor cell.
func embedPNG(f *excelize.File, sheet, cell string, png []byte) error {
	return f.AddPictureFromBytes(sheet, cell, &excelize.Picture{
		Extension: ".png",
		File:      png,
	})
}

// pieChart adds a native pie chart to sheet at cell, with categories
// and values given as A1-style range references.
func pieChart(f *excelize.File, sheet, cell, title, categories, values string) error {
	return f.AddChart(sheet, cell, &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       title,
			Categories: categories,
			Values:     values,
		}},
		Title: []excelize.RichTextRun{{Text: title}},
	})
}
