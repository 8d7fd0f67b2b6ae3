package analysis

import (
	"sort"
	"strconv"

	"github.com/viewlens/viewlens-cli/internal/dataset"
)

// ViewingRecord is one cleaned (customer, screentime) observation.
type ViewingRecord struct {
	CustomerID string
	Minutes    float64
}

// Frequency buckets over per-customer view counts, in severity order.
var FrequencyBuckets = []string{
	"Occasional (1)",
	"Frequent (2-3)",
	"Very Frequent (4-10)",
	"Super User (11-50)",
	"Power User (50+)",
}

// Screentime terciles over per-customer total minutes, in order.
var ScreentimeTiers = []string{
	"Low Consumption",
	"Medium Consumption",
	"High Consumption",
}

// CustomerScreentime is one customer's recurrence profile.
type CustomerScreentime struct {
	CustomerID string
	Views      int
	Total      float64
	Mean       float64
	Std        float64
	PerView    float64
	Bucket     string
	Tier       string
}

// BucketShare is one segment label with its customer count.
type BucketShare struct {
	Label     string
	Customers int
	Pct       float64
}

// ScreentimeReport is the full recurrence analysis.
type ScreentimeReport struct {
	Records         int
	UniqueCustomers int

	// Customers is sorted by view count descending, ID ascending.
	Customers []CustomerScreentime

	TotalMinutes    float64
	MeanPerCustomer float64
	MeanViews       float64
	MeanPerView     float64
	TopViewer       CustomerScreentime // most views
	TopWatcher      CustomerScreentime // most total minutes

	P33, P66      float64
	FrequencyDist []BucketShare
	TierDist      []BucketShare
	Correlation   float64 // views vs total minutes

	// Segments counts customers per (frequency bucket, tier) cell.
	Segments map[string]map[string]int
	// Valuable customers watch often (4+ views) and land in the high
	// consumption tercile.
	Valuable []CustomerScreentime
}

// ParseViewingRecords coerces the screentime field to a number,
// dropping rows that do not parse. Cleaning already removed empties.
func ParseViewingRecords(rows [][]string) ([]ViewingRecord, error) {
	out := make([]ViewingRecord, 0, len(rows))
	for _, r := range rows {
		m, err := strconv.ParseFloat(r[1], 64)
		if err != nil {
			continue
		}
		out = append(out, ViewingRecord{CustomerID: r[0], Minutes: m})
	}
	if len(out) == 0 {
		return nil, dataset.ErrNoRecords
	}
	return out, nil
}

func frequencyBucket(views int) string {
	switch {
	case views <= 1:
		return FrequencyBuckets[0]
	case views <= 3:
		return FrequencyBuckets[1]
	case views <= 10:
		return FrequencyBuckets[2]
	case views <= 50:
		return FrequencyBuckets[3]
	default:
		return FrequencyBuckets[4]
	}
}

// AnalyzeScreentime aggregates viewing recurrence per customer.
func AnalyzeScreentime(recs []ViewingRecord) (*ScreentimeReport, error) {
	if len(recs) == 0 {
		return nil, dataset.ErrNoRecords
	}
	minutes := make(map[string][]float64)
	for _, r := range recs {
		minutes[r.CustomerID] = append(minutes[r.CustomerID], r.Minutes)
	}

	rep := &ScreentimeReport{
		Records:         len(recs),
		UniqueCustomers: len(minutes),
		Segments:        make(map[string]map[string]int),
	}
	rep.Customers = make([]CustomerScreentime, 0, len(minutes))
	totals := make([]float64, 0, len(minutes))
	for id, vals := range minutes {
		mean, std := meanStd(vals)
		var total float64
		for _, v := range vals {
			total += v
		}
		c := CustomerScreentime{
			CustomerID: id,
			Views:      len(vals),
			Total:      total,
			Mean:       mean,
			Std:        std,
			PerView:    total / float64(len(vals)),
			Bucket:     frequencyBucket(len(vals)),
		}
		rep.Customers = append(rep.Customers, c)
		totals = append(totals, total)
		rep.TotalMinutes += total
	}

	rep.P33 = quantileOf(totals, 0.33)
	rep.P66 = quantileOf(totals, 0.66)
	for i := range rep.Customers {
		c := &rep.Customers[i]
		switch {
		case c.Total <= rep.P33:
			c.Tier = ScreentimeTiers[0]
		case c.Total <= rep.P66:
			c.Tier = ScreentimeTiers[1]
		default:
			c.Tier = ScreentimeTiers[2]
		}
	}
	sort.Slice(rep.Customers, func(i, j int) bool {
		if rep.Customers[i].Views == rep.Customers[j].Views {
			return rep.Customers[i].CustomerID < rep.Customers[j].CustomerID
		}
		return rep.Customers[i].Views > rep.Customers[j].Views
	})

	views := make([]float64, 0, len(rep.Customers))
	sums := make([]float64, 0, len(rep.Customers))
	freqCount := make(map[string]int)
	tierCount := make(map[string]int)
	for _, c := range rep.Customers {
		views = append(views, float64(c.Views))
		sums = append(sums, c.Total)
		freqCount[c.Bucket]++
		tierCount[c.Tier]++
		if rep.Segments[c.Bucket] == nil {
			rep.Segments[c.Bucket] = make(map[string]int)
		}
		rep.Segments[c.Bucket][c.Tier]++
		if c.Views >= 4 && c.Tier == ScreentimeTiers[2] {
			rep.Valuable = append(rep.Valuable, c)
		}
		rep.MeanViews += float64(c.Views)
		rep.MeanPerView += c.PerView
	}
	n := float64(rep.UniqueCustomers)
	rep.MeanPerCustomer = rep.TotalMinutes / n
	rep.MeanViews /= n
	rep.MeanPerView /= n
	rep.Correlation = pearson(views, sums)

	rep.TopViewer = rep.Customers[0]
	rep.TopWatcher = rep.Customers[0]
	for _, c := range rep.Customers {
		if c.Total > rep.TopWatcher.Total {
			rep.TopWatcher = c
		}
	}

	for _, b := range FrequencyBuckets {
		if freqCount[b] == 0 {
			continue
		}
		rep.FrequencyDist = append(rep.FrequencyDist, BucketShare{
			Label:     b,
			Customers: freqCount[b],
			Pct:       round2(float64(freqCount[b]) * 100 / n),
		})
	}
	for _, t := range ScreentimeTiers {
		if tierCount[t] == 0 {
			continue
		}
		rep.TierDist = append(rep.TierDist, BucketShare{
			Label:     t,
			Customers: tierCount[t],
			Pct:       round2(float64(tierCount[t]) * 100 / n),
		})
	}
	return rep, nil
}

// TopByViews returns up to n customers by view count descending.
func (r *ScreentimeReport) TopByViews(n int) []CustomerScreentime {
	return topBy(r.Customers, n, func(c CustomerScreentime) float64 { return float64(c.Views) })
}

// TopByTotal returns up to n customers by total minutes descending.
func (r *ScreentimeReport) TopByTotal(n int) []CustomerScreentime {
	return topBy(r.Customers, n, func(c CustomerScreentime) float64 { return c.Total })
}

// TopByMean returns up to n customers by minutes per view descending.
func (r *ScreentimeReport) TopByMean(n int) []CustomerScreentime {
	return topBy(r.Customers, n, func(c CustomerScreentime) float64 { return c.Mean })
}

func topBy(cs []CustomerScreentime, n int, key func(CustomerScreentime) float64) []CustomerScreentime {
	cp := make([]CustomerScreentime, len(cs))
	copy(cp, cs)
	sort.Slice(cp, func(i, j int) bool {
		ki, kj := key(cp[i]), key(cp[j])
		if ki == kj {
			return cp[i].CustomerID < cp[j].CustomerID
		}
		return ki > kj
	})
	if n > 0 && len(cp) > n {
		cp = cp[:n]
	}
	return cp
}
