package analysis

import (
	"errors"
	"testing"

	"github.com/viewlens/viewlens-cli/internal/dataset"
)

func showPairs() [][2]string {
	return [][2]string{
		{"S1", "Drama"}, {"S1", "Drama"}, {"S1", "Drama"},
		{"S2", "Comedy"}, {"S2", "Comedy"},
		{"S3", "Drama"},
	}
}

func TestRankShowsEmpty(t *testing.T) {
	if _, err := RankShows(nil); !errors.Is(err, dataset.ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestRankShows(t *testing.T) {
	r, err := RankShows(showPairs())
	if err != nil {
		t.Fatalf("RankShows: %v", err)
	}
	if r.Total != 6 || r.UniqueShows != 3 || r.UniqueGenres != 2 {
		t.Fatalf("totals = %d/%d/%d, want 6/3/2", r.Total, r.UniqueShows, r.UniqueGenres)
	}
	wantOrder := []string{"S1", "S2", "S3"}
	for i, w := range wantOrder {
		if r.Shows[i].Title != w {
			t.Fatalf("Shows[%d] = %q, want %q", i, r.Shows[i].Title, w)
		}
	}
	approx(t, r.Shows[0].Pct, 50, 0.001, "S1 pct")
	approx(t, r.Shows[1].CumPct, 83.33, 0.001, "cumulative after S2")
	approx(t, r.Shows[2].CumPct, 100, 0.05, "cumulative after S3")
	if r.SingleView != 1 {
		t.Fatalf("SingleView = %d, want 1", r.SingleView)
	}
	if r.TopGenre != "Drama" {
		t.Fatalf("TopGenre = %q, want Drama", r.TopGenre)
	}

	// Per-genre leaders sorted by genre.
	if len(r.TopPerGenre) != 2 {
		t.Fatalf("TopPerGenre = %+v", r.TopPerGenre)
	}
	if r.TopPerGenre[0].Genre != "Comedy" || r.TopPerGenre[0].Title != "S2" {
		t.Fatalf("TopPerGenre[0] = %+v", r.TopPerGenre[0])
	}
	if r.TopPerGenre[1].Genre != "Drama" || r.TopPerGenre[1].Title != "S1" {
		t.Fatalf("TopPerGenre[1] = %+v", r.TopPerGenre[1])
	}
}

func TestRankShowsTieBreaksOnTitle(t *testing.T) {
	r, err := RankShows([][2]string{{"B", "Drama"}, {"A", "Drama"}})
	if err != nil {
		t.Fatalf("RankShows: %v", err)
	}
	if r.Shows[0].Title != "A" || r.Shows[1].Title != "B" {
		t.Fatalf("tie order = %s, %s; want A, B", r.Shows[0].Title, r.Shows[1].Title)
	}
}

func TestShowFoldAndCumulativeShare(t *testing.T) {
	r, err := RankShows(showPairs())
	if err != nil {
		t.Fatalf("RankShows: %v", err)
	}
	folded := r.Fold(2)
	if len(folded) != 3 {
		t.Fatalf("folded length = %d, want 3", len(folded))
	}
	other := folded[2]
	if other.Title != "Other" || other.Views != 1 {
		t.Fatalf("other = %+v", other)
	}
	approx(t, r.CumulativeShare(2), 83.33, 0.001, "cumulative share of top 2")
	// Asking past the end clamps to the full table.
	approx(t, r.CumulativeShare(99), 100, 0.05, "clamped cumulative share")
	if got := r.CumulativeShare(0); got != 0 {
		t.Fatalf("CumulativeShare(0) = %v, want 0", got)
	}
}
