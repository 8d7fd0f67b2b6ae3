package export

import (
	"fmt"

	"github.com/viewlens/viewlens-cli/internal/analysis"
)

// chartFold bounds how many slices a pie chart gets before the rest is
// folded into "Other".
const chartFold = 10

// Genres writes the genre popularity workbook, optionally with a pie
// chart of the folded top genres.
func Genres(path string, r *analysis.GenreRanking, withChart bool) error {
	f, err := newWorkbook("Genres")
	if err != nil {
		return err
	}
	defer f.Close()

	rows := make([][]interface{}, 0, len(r.Genres))
	for _, g := range r.Genres {
		rows = append(rows, []interface{}{g.Genre, g.Views, g.Pct})
	}
	if err := writeSheet(f, "Genres", []string{"GENRE", "VIEWS", "PERCENTAGE"}, rows); err != nil {
		return err
	}

	lead := r.Leader()
	if err := writeSummary(f, "Summary", [][2]interface{}{
		{"Total views", r.Total},
		{"Unique genres", len(r.Genres)},
		{"Most viewed genre", lead.Genre},
		{"Views of the top genre", lead.Views},
		{"Share of the top genre", fmt.Sprintf("%.2f%%", lead.Pct)},
	}); err != nil {
		return err
	}

	if withChart {
		folded := r.Fold(chartFold)
		data := make([][]interface{}, 0, len(folded))
		for _, g := range folded {
			data = append(data, []interface{}{g.Genre, g.Views})
		}
		if err := writeSheet(f, "ChartData", []string{"GENRE", "VIEWS"}, data); err != nil {
			return err
		}
		cats := fmt.Sprintf("ChartData!$A$2:$A$%d", len(folded)+1)
		vals := fmt.Sprintf("ChartData!$B$2:$B$%d", len(folded)+1)
		if err := pieChart(f, "Genres", "E2", "Views by genre", cats, vals); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
