package export

import (
	"fmt"

	"github.com/viewlens/viewlens-cli/internal/analysis"
)

const topCustomers = 20

// Screentime writes the recurrence workbook: per-customer detail,
// summary, segment matrix, valuable customers and three top-20 sheets,
// optionally with a frequency distribution chart.
func Screentime(path string, r *analysis.ScreentimeReport, withChart bool) error {
	f, err := newWorkbook("Customers")
	if err != nil {
		return err
	}
	defer f.Close()

	header := []string{
		"CUSTOMER_ID", "VIEWS", "SCREENTIME_TOTAL", "SCREENTIME_MEAN",
		"SCREENTIME_STDDEV", "MINUTES_PER_VIEW", "FREQUENCY_BUCKET", "SCREENTIME_TIER",
	}
	if err := writeSheet(f, "Customers", header, customerRows(r.Customers)); err != nil {
		return err
	}

	if err := writeSummary(f, "Summary", [][2]interface{}{
		{"Records analyzed", r.Records},
		{"Unique customers", r.UniqueCustomers},
		{"Total screentime (minutes)", fmt.Sprintf("%.0f", r.TotalMinutes)},
		{"Average screentime per customer", fmt.Sprintf("%.1f", r.MeanPerCustomer)},
		{"Average views per customer", fmt.Sprintf("%.2f", r.MeanViews)},
		{"Average minutes per view", fmt.Sprintf("%.1f", r.MeanPerView)},
		{"Most views", fmt.Sprintf("%s (%d views)", r.TopViewer.CustomerID, r.TopViewer.Views)},
		{"Most screentime", fmt.Sprintf("%s (%.0f minutes)", r.TopWatcher.CustomerID, r.TopWatcher.Total)},
		{"33rd percentile of totals", fmt.Sprintf("%.1f", r.P33)},
		{"66th percentile of totals", fmt.Sprintf("%.1f", r.P66)},
		{"Views/screentime correlation", fmt.Sprintf("%.3f", r.Correlation)},
		{"Valuable customers", len(r.Valuable)},
	}); err != nil {
		return err
	}

	segHeader := append([]string{"FREQUENCY"}, analysis.ScreentimeTiers...)
	segs := make([][]interface{}, 0, len(analysis.FrequencyBuckets))
	for _, bucket := range analysis.FrequencyBuckets {
		row, ok := r.Segments[bucket]
		if !ok {
			continue
		}
		srow := make([]interface{}, 0, len(segHeader))
		srow = append(srow, bucket)
		for _, tier := range analysis.ScreentimeTiers {
			srow = append(srow, row[tier])
		}
		segs = append(segs, srow)
	}
	if err := writeSheet(f, "Segments", segHeader, segs); err != nil {
		return err
	}

	if err := writeSheet(f, "Valuable", header, customerRows(r.Valuable)); err != nil {
		return err
	}
	if err := writeSheet(f, "TopViews", header, customerRows(r.TopByViews(topCustomers))); err != nil {
		return err
	}
	if err := writeSheet(f, "TopScreentime", header, customerRows(r.TopByTotal(topCustomers))); err != nil {
		return err
	}
	if err := writeSheet(f, "TopPerView", header, customerRows(r.TopByMean(topCustomers))); err != nil {
		return err
	}

	if withChart {
		charts := []struct {
			title  string
			dist   []analysis.BucketShare
			anchor string
		}{
			{"Customers by view frequency", r.FrequencyDist, "D2"},
			{"Customers by screentime tier", r.TierDist, "D28"},
		}
		for _, c := range charts {
			labels := make([]string, 0, len(c.dist))
			values := make([]float64, 0, len(c.dist))
			for _, b := range c.dist {
				labels = append(labels, b.Label)
				values = append(values, float64(b.Customers))
			}
			png, err := barChartPNG(c.title, "Customers", labels, values)
			if err != nil {
				return err
			}
			if err := embedPNG(f, "Summary", c.anchor, png); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

func customerRows(cs []analysis.CustomerScreentime) [][]interface{} {
	rows := make([][]interface{}, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []interface{}{
			c.CustomerID, c.Views,
			round1(c.Total), round1(c.Mean), round1(c.Std), round1(c.PerView),
			c.Bucket, c.Tier,
		})
	}
	return rows
}
