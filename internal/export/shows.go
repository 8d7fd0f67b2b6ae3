package export

import (
	"fmt"

	"github.com/viewlens/viewlens-cli/internal/analysis"
)

// Shows writes the top-shows workbook: the full ranking, each genre's
// leader, the executive summary and the genre distribution, optionally
// with a pie chart of the folded top titles.
func Shows(path string, r *analysis.ShowRanking, top int, withChart bool) error {
	f, err := newWorkbook("Shows")
	if err != nil {
		return err
	}
	defer f.Close()

	header := []string{"TITLE", "GENRE", "VIEWS", "PERCENTAGE", "CUMULATIVE"}
	rows := make([][]interface{}, 0, len(r.Shows))
	for _, s := range r.Shows {
		rows = append(rows, []interface{}{s.Title, s.Genre, s.Views, s.Pct, s.CumPct})
	}
	if err := writeSheet(f, "Shows", header, rows); err != nil {
		return err
	}

	best := make([][]interface{}, 0, len(r.TopPerGenre))
	for _, s := range r.TopPerGenre {
		best = append(best, []interface{}{s.Genre, s.Title, s.Views, s.Pct})
	}
	if err := writeSheet(f, "TopPerGenre",
		[]string{"GENRE", "TITLE", "VIEWS", "PERCENTAGE"}, best); err != nil {
		return err
	}

	lead := r.Shows[0]
	if err := writeSummary(f, "Summary", [][2]interface{}{
		{"Total views", r.Total},
		{"Unique shows", r.UniqueShows},
		{"Unique genres", r.UniqueGenres},
		{"Most viewed show", lead.Title},
		{"Views of the top show", lead.Views},
		{"Share of the top show", fmt.Sprintf("%.4f%%", lead.Pct)},
		{"Most popular genre", r.TopGenre},
		{"Cumulative share of top 10", fmt.Sprintf("%.2f%%", r.CumulativeShare(10))},
		{"Cumulative share of top 20", fmt.Sprintf("%.2f%%", r.CumulativeShare(20))},
		{"Shows with a single view", r.SingleView},
	}); err != nil {
		return err
	}

	dist := make([][]interface{}, 0, len(r.GenreTotals))
	for _, g := range r.GenreTotals {
		dist = append(dist, []interface{}{g.Genre, g.Views, g.Pct})
	}
	if err := writeSheet(f, "Genres", []string{"GENRE", "VIEWS", "PERCENTAGE"}, dist); err != nil {
		return err
	}

	if withChart {
		folded := r.Fold(top)
		data := make([][]interface{}, 0, len(folded))
		for _, s := range folded {
			data = append(data, []interface{}{s.Title, s.Views})
		}
		if err := writeSheet(f, "ChartData", []string{"TITLE", "VIEWS"}, data); err != nil {
			return err
		}
		cats := fmt.Sprintf("ChartData!$A$2:$A$%d", len(folded)+1)
		vals := fmt.Sprintf("ChartData!$B$2:$B$%d", len(folded)+1)
		if err := pieChart(f, "Shows", "G2", "Views by show", cats, vals); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
