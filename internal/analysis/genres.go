package analysis

import (
	"sort"

	"github.com/samber/lo"

	"github.com/viewlens/viewlens-cli/internal/dataset"
)

// GenreCount is one genre with its view count and overall share.
type GenreCount struct {
	Genre string
	Views int
	Pct   float64 // 2 dp
}

// GenreRanking is the genre popularity table, descending by views with
// ties broken on the genre label.
type GenreRanking struct {
	Total  int
	Genres []GenreCount
}

// RankGenres counts cleaned genre labels.
func RankGenres(genres []string) (*GenreRanking, error) {
	if len(genres) == 0 {
		return nil, dataset.ErrNoRecords
	}
	counts := lo.CountValues(genres)
	r := &GenreRanking{Total: len(genres)}
	r.Genres = make([]GenreCount, 0, len(counts))
	for g, n := range counts {
		r.Genres = append(r.Genres, GenreCount{
			Genre: g,
			Views: n,
			Pct:   round2(float64(n) * 100 / float64(len(genres))),
		})
	}
	sort.Slice(r.Genres, func(i, j int) bool {
		if r.Genres[i].Views == r.Genres[j].Views {
			return r.Genres[i].Genre < r.Genres[j].Genre
		}
		return r.Genres[i].Views > r.Genres[j].Views
	})
	return r, nil
}

// Leader is the most viewed genre.
func (r *GenreRanking) Leader() GenreCount {
	return r.Genres[0]
}

// Fold keeps the top entries and folds the remainder into a single
// "Other" bucket, the shape charts are built from.
func (r *GenreRanking) Fold(top int) []GenreCount {
	if top <= 0 || len(r.Genres) <= top {
		return r.Genres
	}
	out := make([]GenreCount, top, top+1)
	copy(out, r.Genres[:top])
	rest := r.Genres[top:]
	other := GenreCount{Genre: "Other"}
	other.Views = lo.SumBy(rest, func(g GenreCount) int { return g.Views })
	other.Pct = round2(float64(other.Views) * 100 / float64(r.Total))
	return append(out, other)
}
