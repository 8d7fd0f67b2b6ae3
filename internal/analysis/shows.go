package analysis

import (
	"sort"

	"github.com/samber/lo"

	"github.com/viewlens/viewlens-cli/internal/dataset"
)

// ShowCount is one title with its genre, views and running share.
type ShowCount struct {
	Title  string
	Genre  string
	Views  int
	Pct    float64 // share of all views, 2 dp
	CumPct float64 // cumulative share in ranking order, 2 dp
}

// ShowRanking is the full top-shows analysis.
type ShowRanking struct {
	Total        int
	UniqueShows  int
	UniqueGenres int

	// Shows is sorted by views descending, title ascending, with
	// cumulative percentages accumulated in that order.
	Shows []ShowCount
	// TopPerGenre holds each genre's most viewed title, sorted by the
	// genre label.
	TopPerGenre []ShowCount
	// GenreTotals is the genre view distribution for context.
	GenreTotals []GenreCount

	TopGenre   string // genre with the most views overall
	SingleView int    // titles seen exactly once
}

// RankShows aggregates cleaned (title, genre) pairs.
func RankShows(pairs [][2]string) (*ShowRanking, error) {
	if len(pairs) == 0 {
		return nil, dataset.ErrNoRecords
	}
	type key struct{ title, genre string }
	counts := make(map[key]int)
	titles := make(map[string]bool)
	genreViews := make(map[string]int)
	for _, p := range pairs {
		counts[key{p[0], p[1]}]++
		titles[p[0]] = true
		genreViews[p[1]]++
	}

	r := &ShowRanking{
		Total:        len(pairs),
		UniqueShows:  len(titles),
		UniqueGenres: len(genreViews),
	}
	r.Shows = make([]ShowCount, 0, len(counts))
	for k, n := range counts {
		r.Shows = append(r.Shows, ShowCount{
			Title: k.title,
			Genre: k.genre,
			Views: n,
			Pct:   round2(float64(n) * 100 / float64(r.Total)),
		})
	}
	sort.Slice(r.Shows, func(i, j int) bool {
		if r.Shows[i].Views == r.Shows[j].Views {
			return r.Shows[i].Title < r.Shows[j].Title
		}
		return r.Shows[i].Views > r.Shows[j].Views
	})
	var cum float64
	for i := range r.Shows {
		cum += r.Shows[i].Pct
		r.Shows[i].CumPct = round2(cum)
		if r.Shows[i].Views == 1 {
			r.SingleView++
		}
	}

	best := make(map[string]ShowCount)
	for _, s := range r.Shows {
		if cur, ok := best[s.Genre]; !ok || s.Views > cur.Views {
			best[s.Genre] = s
		}
	}
	r.TopPerGenre = lo.Values(best)
	sort.Slice(r.TopPerGenre, func(i, j int) bool {
		return r.TopPerGenre[i].Genre < r.TopPerGenre[j].Genre
	})

	r.GenreTotals = make([]GenreCount, 0, len(genreViews))
	for g, n := range genreViews {
		r.GenreTotals = append(r.GenreTotals, GenreCount{
			Genre: g,
			Views: n,
			Pct:   round2(float64(n) * 100 / float64(r.Total)),
		})
	}
	sort.Slice(r.GenreTotals, func(i, j int) bool {
		if r.GenreTotals[i].Views == r.GenreTotals[j].Views {
			return r.GenreTotals[i].Genre < r.GenreTotals[j].Genre
		}
		return r.GenreTotals[i].Views > r.GenreTotals[j].Views
	})
	r.TopGenre = r.GenreTotals[0].Genre
	return r, nil
}

// Fold keeps the top entries of the ranking and folds the rest into an
// "Other" row for charting.
func (r *ShowRanking) Fold(top int) []ShowCount {
	if top <= 0 || len(r.Shows) <= top {
		return r.Shows
	}
	out := make([]ShowCount, top, top+1)
	copy(out, r.Shows[:top])
	rest := r.Shows[top:]
	other := ShowCount{Title: "Other"}
	other.Views = lo.SumBy(rest, func(s ShowCount) int { return s.Views })
	other.Pct = round2(float64(other.Views) * 100 / float64(r.Total))
	return append(out, other)
}

// CumulativeShare is the share of views covered by the first n shows.
func (r *ShowRanking) CumulativeShare(n int) float64 {
	if n <= 0 {
		return 0
	}
	if n > len(r.Shows) {
		n = len(r.Shows)
	}
	return r.Shows[n-1].CumPct
}
