package analysis

import (
	"sort"

	"github.com/samber/lo"

	"github.com/viewlens/viewlens-cli/internal/dataset"
)

// IDCount is one customer ID with its record frequency.
type IDCount struct {
	ID    string
	Count int
}

// IDAudit summarizes duplicate customer IDs in the dataset.
type IDAudit struct {
	Total  int
	Unique int

	// All holds every ID with its frequency, duplicated first, then by
	// count descending and ID ascending.
	All []IDCount
	// Duplicated is the subset of All with Count > 1.
	Duplicated []IDCount
	// SampleUnique keeps the first few distinct IDs in encounter order,
	// as a sanity check of what the column actually contains.
	SampleUnique []string
	// DuplicatePct is duplicated IDs over unique IDs, as a percentage.
	DuplicatePct float64
}

// SampleSize bounds IDAudit.SampleUnique.
const SampleSize = 5

// AuditIDs counts frequencies over cleaned customer IDs.
func AuditIDs(ids []string) (*IDAudit, error) {
	if len(ids) == 0 {
		return nil, dataset.ErrNoRecords
	}
	counts := lo.CountValues(ids)
	sample := lo.Uniq(ids)
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}

	a := &IDAudit{
		Total:        len(ids),
		Unique:       len(counts),
		SampleUnique: sample,
	}
	a.All = make([]IDCount, 0, len(counts))
	for id, n := range counts {
		a.All = append(a.All, IDCount{ID: id, Count: n})
	}
	sort.Slice(a.All, func(i, j int) bool {
		if a.All[i].Count == a.All[j].Count {
			return a.All[i].ID < a.All[j].ID
		}
		return a.All[i].Count > a.All[j].Count
	})
	for _, c := range a.All {
		if c.Count > 1 {
			a.Duplicated = append(a.Duplicated, c)
		}
	}
	a.DuplicatePct = round2(float64(len(a.Duplicated)) * 100 / float64(a.Unique))
	return a, nil
}
