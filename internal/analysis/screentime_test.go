package analysis

import (
	"errors"
	"testing"

	"github.com/viewlens/viewlens-cli/internal/dataset"
)

func TestParseViewingRecords(t *testing.T) {
	rows := [][]string{
		{"a", "12.5"},
		{"b", "not-a-number"},
		{"c", "40"},
	}
	recs, err := ParseViewingRecords(rows)
	if err != nil {
		t.Fatalf("ParseViewingRecords: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2 (non-numeric dropped)", len(recs))
	}
	if recs[0].CustomerID != "a" || recs[0].Minutes != 12.5 {
		t.Fatalf("recs[0] = %+v", recs[0])
	}
}

func TestParseViewingRecordsAllBad(t *testing.T) {
	rows := [][]string{{"a", "x"}, {"b", "y"}}
	if _, err := ParseViewingRecords(rows); !errors.Is(err, dataset.ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestFrequencyBucketBoundaries(t *testing.T) {
	cases := []struct {
		views int
		want  string
	}{
		{1, "Occasional (1)"},
		{2, "Frequent (2-3)"},
		{3, "Frequent (2-3)"},
		{4, "Very Frequent (4-10)"},
		{10, "Very Frequent (4-10)"},
		{11, "Super User (11-50)"},
		{50, "Super User (11-50)"},
		{51, "Power User (50+)"},
	}
	for _, c := range cases {
		if got := frequencyBucket(c.views); got != c.want {
			t.Fatalf("frequencyBucket(%d) = %q, want %q", c.views, got, c.want)
		}
	}
}

func TestAnalyzeScreentime(t *testing.T) {
	recs := []ViewingRecord{
		{"a", 10}, {"a", 20}, {"a", 30},
		{"b", 5},
		{"c", 100}, {"c", 200}, {"c", 50}, {"c", 25}, {"c", 60},
	}
	r, err := AnalyzeScreentime(recs)
	if err != nil {
		t.Fatalf("AnalyzeScreentime: %v", err)
	}
	if r.Records != 9 || r.UniqueCustomers != 3 {
		t.Fatalf("records/customers = %d/%d, want 9/3", r.Records, r.UniqueCustomers)
	}
	approx(t, r.TotalMinutes, 500, 0.001, "total minutes")
	approx(t, r.MeanViews, 3, 0.001, "mean views")

	// Sorted by views descending: c (5), a (3), b (1).
	if r.Customers[0].CustomerID != "c" || r.Customers[1].CustomerID != "a" || r.Customers[2].CustomerID != "b" {
		t.Fatalf("order = %s, %s, %s", r.Customers[0].CustomerID, r.Customers[1].CustomerID, r.Customers[2].CustomerID)
	}
	if r.TopViewer.CustomerID != "c" || r.TopWatcher.CustomerID != "c" {
		t.Fatalf("top viewer/watcher = %s/%s, want c/c", r.TopViewer.CustomerID, r.TopWatcher.CustomerID)
	}

	// Totals 5, 60, 435: b below P33, a between, c above P66.
	byID := make(map[string]CustomerScreentime)
	for _, c := range r.Customers {
		byID[c.CustomerID] = c
	}
	if byID["b"].Tier != "Low Consumption" {
		t.Fatalf("b tier = %q", byID["b"].Tier)
	}
	if byID["a"].Tier != "Medium Consumption" {
		t.Fatalf("a tier = %q", byID["a"].Tier)
	}
	if byID["c"].Tier != "High Consumption" {
		t.Fatalf("c tier = %q", byID["c"].Tier)
	}
	if byID["a"].Bucket != "Frequent (2-3)" || byID["c"].Bucket != "Very Frequent (4-10)" {
		t.Fatalf("buckets = %q/%q", byID["a"].Bucket, byID["c"].Bucket)
	}

	// c watches often and sits in the high tercile.
	if len(r.Valuable) != 1 || r.Valuable[0].CustomerID != "c" {
		t.Fatalf("valuable = %+v", r.Valuable)
	}
	if r.Segments["Very Frequent (4-10)"]["High Consumption"] != 1 {
		t.Fatalf("segments = %+v", r.Segments)
	}
	if r.Correlation <= 0 {
		t.Fatalf("correlation = %v, want positive", r.Correlation)
	}
}

func TestScreentimeTopLists(t *testing.T) {
	recs := []ViewingRecord{
		{"a", 100},
		{"b", 10}, {"b", 10},
		{"c", 1}, {"c", 1}, {"c", 1},
	}
	r, err := AnalyzeScreentime(recs)
	if err != nil {
		t.Fatalf("AnalyzeScreentime: %v", err)
	}
	if got := r.TopByViews(2); len(got) != 2 || got[0].CustomerID != "c" {
		t.Fatalf("TopByViews = %+v", got)
	}
	if got := r.TopByTotal(1); got[0].CustomerID != "a" {
		t.Fatalf("TopByTotal = %+v", got)
	}
	if got := r.TopByMean(1); got[0].CustomerID != "a" {
		t.Fatalf("TopByMean = %+v", got)
	}
}
