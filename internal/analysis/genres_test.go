package analysis

import (
	"errors"
	"testing"

	"github.com/viewlens/viewlens-cli/internal/dataset"
)

func TestRankGenresEmpty(t *testing.T) {
	if _, err := RankGenres(nil); !errors.Is(err, dataset.ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestRankGenres(t *testing.T) {
	r, err := RankGenres([]string{"Drama", "Comedy", "Drama", "Action"})
	if err != nil {
		t.Fatalf("RankGenres: %v", err)
	}
	if r.Total != 4 {
		t.Fatalf("Total = %d, want 4", r.Total)
	}
	// Drama leads; the Action/Comedy tie breaks on the label.
	wantOrder := []string{"Drama", "Action", "Comedy"}
	for i, g := range wantOrder {
		if r.Genres[i].Genre != g {
			t.Fatalf("Genres[%d] = %q, want %q", i, r.Genres[i].Genre, g)
		}
	}
	lead := r.Leader()
	if lead.Genre != "Drama" || lead.Views != 2 {
		t.Fatalf("leader = %+v", lead)
	}
	approx(t, lead.Pct, 50, 0.001, "leader pct")
}

func TestGenreFold(t *testing.T) {
	r, err := RankGenres([]string{"Drama", "Drama", "Comedy", "Action"})
	if err != nil {
		t.Fatalf("RankGenres: %v", err)
	}
	folded := r.Fold(1)
	if len(folded) != 2 {
		t.Fatalf("folded length = %d, want 2", len(folded))
	}
	if folded[0].Genre != "Drama" {
		t.Fatalf("folded[0] = %+v", folded[0])
	}
	other := folded[1]
	if other.Genre != "Other" || other.Views != 2 {
		t.Fatalf("other = %+v", other)
	}
	approx(t, other.Pct, 50, 0.001, "other pct")

	// Folding wider than the table is a no-op.
	if got := r.Fold(10); len(got) != len(r.Genres) {
		t.Fatalf("wide fold length = %d, want %d", len(got), len(r.Genres))
	}
}
