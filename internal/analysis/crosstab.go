// Package analysis holds the pure aggregation cores. Each entry point
// takes cleaned in-memory records and returns result structures; the
// report and export layers render them afterwards.
package analysis

import (
	"sort"

	"github.com/viewlens/viewlens-cli/internal/dataset"
)

// Diversity tiers derived from the concentration index. Boundaries are
// the fixed breakpoints 1500 and 2500 on a [0, 10000] scale.
const (
	TierHigh   = "High Diversity"
	TierMedium = "Medium Diversity"
	TierLow    = "Low Diversity"
)

// Crosstab is a contingency table over two categorical fields: counts
// of every (region, genre) co-occurrence. Immutable once built.
type Crosstab struct {
	Regions []string
	Genres  []string
	Total   int

	counts map[string]map[string]int
}

// RankedGenre is one entry of a per-region ranking.
type RankedGenre struct {
	Genre string
	Count int
	Share float64 // percentage of the region's total, 2 dp
}

// RegionSummary is the derived per-region view: totals, the leading
// genre, and the concentration index with its tier.
type RegionSummary struct {
	Region         string
	Total          int
	DistinctGenres int
	TopGenre       string
	TopGenreViews  int
	TopShare       float64
	Index          float64
	Tier           string
}

// RegionRelation is the headline verdict on whether genre preferences
// vary by region, judged from the spread of per-region top shares.
type RegionRelation struct {
	Records       int
	RegionCount   int
	GenreCount    int
	GlobalTop     string
	BusiestRegion string
	QuietestRegion string
	MostDiverse   string
	LeastDiverse  string
	AvgTopShare   float64
	Spread        float64
	Strength      string // "strong", "moderate" or "none"
	HighTier      int
	LowTier       int
}

// NewCrosstab builds the contingency table from (region, genre) pairs.
// Labels are kept in ascending order for deterministic iteration.
func NewCrosstab(pairs [][2]string) (*Crosstab, error) {
	if len(pairs) == 0 {
		return nil, dataset.ErrNoRecords
	}
	c := &Crosstab{counts: make(map[string]map[string]int)}
	genreSeen := make(map[string]bool)
	for _, p := range pairs {
		region, genre := p[0], p[1]
		row := c.counts[region]
		if row == nil {
			row = make(map[string]int)
			c.counts[region] = row
			c.Regions = append(c.Regions, region)
		}
		row[genre]++
		if !genreSeen[genre] {
			genreSeen[genre] = true
			c.Genres = append(c.Genres, genre)
		}
		c.Total++
	}
	sort.Strings(c.Regions)
	sort.Strings(c.Genres)
	return c, nil
}

// Count returns the cell count; missing combinations are zero.
func (c *Crosstab) Count(region, genre string) int {
	return c.counts[region][genre]
}

// RowTotal is the number of records in a region. Regions only exist in
// the table because at least one record produced them, so a present
// region's total is always positive.
func (c *Crosstab) RowTotal(region string) int {
	t := 0
	for _, n := range c.counts[region] {
		t += n
	}
	return t
}

// ColTotal is the number of records for a genre across all regions.
func (c *Crosstab) ColTotal(genre string) int {
	t := 0
	for _, row := range c.counts {
		t += row[genre]
	}
	return t
}

// RowShares returns the region's genre distribution as percentages
// rounded to 2 decimal places, keyed by genre. Genres absent from the
// region are omitted (implicitly zero).
func (c *Crosstab) RowShares(region string) map[string]float64 {
	total := c.RowTotal(region)
	if total == 0 {
		return nil
	}
	out := make(map[string]float64, len(c.counts[region]))
	for genre, n := range c.counts[region] {
		out[genre] = round2(float64(n) * 100 / float64(total))
	}
	return out
}

// TopK ranks the region's genres by count descending; ties break on
// the genre label ascending so the ranking is deterministic.
func (c *Crosstab) TopK(region string, k int) []RankedGenre {
	total := c.RowTotal(region)
	if total == 0 {
		return nil
	}
	ranked := make([]RankedGenre, 0, len(c.counts[region]))
	for genre, n := range c.counts[region] {
		ranked = append(ranked, RankedGenre{
			Genre: genre,
			Count: n,
			Share: round2(float64(n) * 100 / float64(total)),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Genre < ranked[j].Genre
		}
		return ranked[i].Count > ranked[j].Count
	})
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// concentrationIndex is the Herfindahl-style sum of squared percentage
// shares. Computed from the rounded shares so the exported percentage
// table and the index agree with each other.
func concentrationIndex(shares map[string]float64) float64 {
	var idx float64
	for _, s := range shares {
		idx += s * s
	}
	return idx
}

func tierFor(index float64) string {
	switch {
	case index <= 1500:
		return TierHigh
	case index <= 2500:
		return TierMedium
	default:
		return TierLow
	}
}

// RegionSummaries derives the per-region summary rows, ordered by
// region label.
func (c *Crosstab) RegionSummaries() []RegionSummary {
	out := make([]RegionSummary, 0, len(c.Regions))
	for _, region := range c.Regions {
		top := c.TopK(region, 1)[0]
		shares := c.RowShares(region)
		out = append(out, RegionSummary{
			Region:         region,
			Total:          c.RowTotal(region),
			DistinctGenres: len(c.counts[region]),
			TopGenre:       top.Genre,
			TopGenreViews:  top.Count,
			TopShare:       top.Share,
			Index:          concentrationIndex(shares),
			Tier:           tierFor(concentrationIndex(shares)),
		})
	}
	return out
}

// Relation judges the region/genre relationship from the summaries.
func (c *Crosstab) Relation(sums []RegionSummary) RegionRelation {
	rel := RegionRelation{
		Records:     c.Total,
		RegionCount: len(c.Regions),
		GenreCount:  len(c.Genres),
	}
	best := 0
	for _, g := range c.Genres {
		if t := c.ColTotal(g); t > best {
			best = t
			rel.GlobalTop = g
		}
	}

	shares := make([]float64, 0, len(sums))
	for i, s := range sums {
		shares = append(shares, s.TopShare)
		if i == 0 {
			rel.BusiestRegion, rel.QuietestRegion = s.Region, s.Region
			rel.MostDiverse, rel.LeastDiverse = s.Region, s.Region
			continue
		}
		if s.Total > regionTotal(sums, rel.BusiestRegion) {
			rel.BusiestRegion = s.Region
		}
		if s.Total < regionTotal(sums, rel.QuietestRegion) {
			rel.QuietestRegion = s.Region
		}
		if s.Index < regionIndex(sums, rel.MostDiverse) {
			rel.MostDiverse = s.Region
		}
		if s.Index > regionIndex(sums, rel.LeastDiverse) {
			rel.LeastDiverse = s.Region
		}
	}
	for _, s := range sums {
		switch s.Tier {
		case TierHigh:
			rel.HighTier++
		case TierLow:
			rel.LowTier++
		}
	}

	mean, std := meanStd(shares)
	rel.AvgTopShare = mean
	rel.Spread = std
	switch {
	case std > 15:
		rel.Strength = "strong"
	case std > 5:
		rel.Strength = "moderate"
	default:
		rel.Strength = "none"
	}
	return rel
}

func regionTotal(sums []RegionSummary, region string) int {
	for _, s := range sums {
		if s.Region == region {
			return s.Total
		}
	}
	return 0
}

func regionIndex(sums []RegionSummary, region string) float64 {
	for _, s := range sums {
		if s.Region == region {
			return s.Index
		}
	}
	return 0
}
