package export

import (
	"fmt"

	"github.com/viewlens/viewlens-cli/internal/analysis"
)

// chartRegionLimit mirrors the analysis origin: distribution charts
// stop being readable past this many regions and are skipped.
const chartRegionLimit = 15

// Regions writes the region/genre workbook: contingency counts, row
// percentages, top-3 ranking, per-region summary and the executive
// summary, optionally with a stacked distribution chart.
func Regions(path string, ct *analysis.Crosstab, sums []analysis.RegionSummary, rel analysis.RegionRelation, withChart bool) error {
	f, err := newWorkbook("Counts")
	if err != nil {
		return err
	}
	defer f.Close()

	header := append([]string{"REGION"}, ct.Genres...)
	counts := make([][]interface{}, 0, len(ct.Regions))
	pcts := make([][]interface{}, 0, len(ct.Regions))
	for _, region := range ct.Regions {
		shares := ct.RowShares(region)
		crow := make([]interface{}, 0, len(header))
		prow := make([]interface{}, 0, len(header))
		crow = append(crow, region)
		prow = append(prow, region)
		for _, genre := range ct.Genres {
			crow = append(crow, ct.Count(region, genre))
			prow = append(prow, shares[genre])
		}
		counts = append(counts, crow)
		pcts = append(pcts, prow)
	}
	if err := writeSheet(f, "Counts", header, counts); err != nil {
		return err
	}
	if err := writeSheet(f, "Percentages", header, pcts); err != nil {
		return err
	}

	top := make([][]interface{}, 0, 3*len(ct.Regions))
	for _, region := range ct.Regions {
		total := ct.RowTotal(region)
		for rank, g := range ct.TopK(region, 3) {
			top = append(top, []interface{}{region, rank + 1, g.Genre, g.Count, g.Share, total})
		}
	}
	if err := writeSheet(f, "TopGenres",
		[]string{"REGION", "RANK", "GENRE", "VIEWS", "PERCENTAGE", "REGION_TOTAL"}, top); err != nil {
		return err
	}

	srows := make([][]interface{}, 0, len(sums))
	for _, s := range sums {
		srows = append(srows, []interface{}{
			s.Region, s.Total, s.DistinctGenres, s.TopGenre, s.TopGenreViews,
			s.TopShare, round1(s.Index), s.Tier,
		})
	}
	if err := writeSheet(f, "Regions", []string{
		"REGION", "TOTAL_VIEWS", "UNIQUE_GENRES", "TOP_GENRE", "TOP_GENRE_VIEWS",
		"TOP_GENRE_SHARE", "CONCENTRATION_INDEX", "DIVERSITY_TIER",
	}, srows); err != nil {
		return err
	}

	if err := writeSummary(f, "Summary", [][2]interface{}{
		{"Records analyzed", rel.Records},
		{"Unique regions", rel.RegionCount},
		{"Unique genres", rel.GenreCount},
		{"Busiest region", rel.BusiestRegion},
		{"Quietest region", rel.QuietestRegion},
		{"Most popular genre overall", rel.GlobalTop},
		{"Most diverse region", rel.MostDiverse},
		{"Least diverse region", rel.LeastDiverse},
		{"Average top-genre share", fmt.Sprintf("%.1f%%", rel.AvgTopShare)},
		{"Regions with high diversity", rel.HighTier},
		{"Regions with low diversity", rel.LowTier},
		{"Region/genre relation", rel.Strength},
	}); err != nil {
		return err
	}

	if withChart && len(sums) <= chartRegionLimit {
		png, err := stackedSharesPNG("Genre distribution by region", ct)
		if err != nil {
			return err
		}
		anchor := fmt.Sprintf("A%d", len(sums)+3)
		if err := embedPNG(f, "Regions", anchor, png); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
