package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/viewlens/viewlens-cli/internal/analysis"
)

// Customers writes the duplicate-ID audit as CSV: one row per distinct
// customer ID with its frequency and a duplicated flag.
func Customers(path string, a *analysis.IDAudit) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"CUSTOMER_ID", "FREQUENCY", "DUPLICATED"}); err != nil {
		return err
	}
	for _, c := range a.All {
		rec := []string{c.ID, strconv.Itoa(c.Count), strconv.FormatBool(c.Count > 1)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
