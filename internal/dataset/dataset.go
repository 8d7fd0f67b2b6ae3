// Package dataset loads the consumption workbook and hands cleaned
// column data to the analysis layer.
package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet conventionally holding the records.
const DefaultSheetName = "Dataset"

// DefaultSheetIndex is the 1-based positional fallback used when the
// named sheet is absent (the upstream exports keep the data on the
// second sheet, after a cover sheet).
const DefaultSheetIndex = 2

// Sheet is one worksheet loaded fully into memory: a header row plus
// data rows. Aggregation never touches the workbook again after this.
type Sheet struct {
	File   string
	Name   string
	Header []string
	Rows   [][]string
	// FellBack reports that the sheet was resolved by position because
	// the requested name was not present.
	FellBack bool
}

// Load opens the workbook at path and reads the requested sheet.
// Resolution mirrors the upstream behavior: match sheetName
// case-insensitively, otherwise fall back to the 1-based sheetIndex.
func Load(path, sheetName string, sheetIndex int) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	target := ""
	fellBack := false
	for _, n := range names {
		if strings.EqualFold(n, sheetName) {
			target = n
			break
		}
	}
	if target == "" {
		if sheetIndex >= 1 && sheetIndex <= len(names) {
			target = names[sheetIndex-1]
			fellBack = true
		} else {
			return nil, &SheetNotFoundError{Name: sheetName, Available: names}
		}
	}

	rows, err := f.GetRows(target)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", target, err)
	}
	s := &Sheet{File: path, Name: target, FellBack: fellBack}
	if len(rows) > 0 {
		s.Header = rows[0]
		s.Rows = rows[1:]
	}
	return s, nil
}

// columnIndex finds a header column by case-insensitive name, or -1.
func (s *Sheet) columnIndex(name string) int {
	for i, h := range s.Header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// Require resolves the given column names to indices, collecting every
// missing name into one error so the report can list them all at once.
func (s *Sheet) Require(cols ...string) ([]int, error) {
	idx := make([]int, 0, len(cols))
	var missing []string
	for _, c := range cols {
		i := s.columnIndex(c)
		if i < 0 {
			missing = append(missing, c)
			continue
		}
		idx = append(idx, i)
	}
	if len(missing) > 0 {
		avail := make([]string, 0, len(s.Header))
		for _, h := range s.Header {
			avail = append(avail, strings.TrimSpace(h))
		}
		return nil, &MissingColumnError{Missing: missing, Available: avail}
	}
	return idx, nil
}

// Records extracts the named columns as cleaned string tuples. Fields
// are trimmed; a row is dropped when any requested field is empty or
// the literal "nan" (an artifact of the upstream export). Returns
// ErrNoRecords when nothing survives.
func (s *Sheet) Records(cols ...string) ([][]string, error) {
	idx, err := s.Require(cols...)
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(s.Rows))
rows:
	for _, row := range s.Rows {
		rec := make([]string, len(idx))
		for k, i := range idx {
			v := ""
			if i < len(row) {
				v = strings.TrimSpace(row[i])
			}
			if v == "" || strings.EqualFold(v, "nan") {
				continue rows
			}
			rec[k] = v
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, ErrNoRecords
	}
	return out, nil
}
