package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRecords is returned when cleaning leaves nothing to aggregate.
// Every downstream percentage and index divides by a row total, so an
// empty dataset must stop here rather than surface as a NaN later.
var ErrNoRecords = errors.New("no valid records after cleaning")

// MissingColumnError reports required columns absent from the sheet
// header. The analysis aborts; there is no partial output.
type MissingColumnError struct {
	Missing   []string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column(s) %s; available columns: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

// SheetNotFoundError reports that neither the requested sheet name nor
// the positional fallback resolved to a sheet.
type SheetNotFoundError struct {
	Name      string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found and no positional fallback available; sheets: %s",
		e.Name, strings.Join(e.Available, ", "))
}
