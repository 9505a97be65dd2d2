// Package classification groups solver paths by feedback pattern and by subtree.
package classification

import (
	"sort"

	"github.com/Veraticus/slate/internal/model"
)

// Groups maps a key to the records filed under it, remembering first-seen key order.
type Groups struct {
	buckets map[string][]model.Record
	order   []string
	total   int
}

func newGroups() *Groups {
	return &Groups{buckets: make(map[string][]model.Record)}
}

func (g *Groups) add(key string, rec model.Record) {
	if _, ok := g.buckets[key]; !ok {
		g.order = append(g.order, key)
	}
	g.buckets[key] = append(g.buckets[key], rec)
	g.total++
}

// Keys returns the keys in first-seen order.
func (g *Groups) Keys() []string {
	return append([]string(nil), g.order...)
}

// SortedKeys returns the keys in byte-lexicographic order.
func (g *Groups) SortedKeys() []string {
	keys := g.Keys()
	sort.Strings(keys)
	return keys
}

// Get returns the records of key in insertion order.
func (g *Groups) Get(key string) []model.Record {
	return g.buckets[key]
}

// Has reports whether key has a bucket.
func (g *Groups) Has(key string) bool {
	_, ok := g.buckets[key]
	return ok
}

// Count returns the number of records filed under key.
func (g *Groups) Count(key string) int {
	return len(g.buckets[key])
}

// Len returns the number of distinct keys.
func (g *Groups) Len() int {
	return len(g.order)
}

// Total returns the number of records across all buckets.
func (g *Groups) Total() int {
	return g.total
}

// Sorted returns a copy of the bucket ordered by joined path.
func (g *Groups) Sorted(key string) []model.Record {
	recs := append([]model.Record(nil), g.buckets[key]...)
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Line < recs[j].Line
	})
	return recs
}

// Example returns the lexicographically smallest path of the bucket.
func (g *Groups) Example(key string) (model.Record, bool) {
	recs := g.buckets[key]
	if len(recs) == 0 {
		return model.Record{}, false
	}
	best := recs[0]
	for _, r := range recs[1:] {
		if r.Line < best.Line {
			best = r
		}
	}
	return best, true
}

// Largest returns the key with the most records.
// Ties go to the lexicographically smallest key.
func (g *Groups) Largest() (string, int, bool) {
	var (
		bestKey   string
		bestCount int
		found     bool
	)
	for _, key := range g.order {
		n := len(g.buckets[key])
		if !found || n > bestCount || (n == bestCount && key < bestKey) {
			bestKey, bestCount, found = key, n, true
		}
	}
	return bestKey, bestCount, found
}

// Buckets flattens the grouping into snapshot rows in sorted key order.
func (g *Groups) Buckets(kind model.BucketKind) []model.Bucket {
	keys := g.SortedKeys()
	buckets := make([]model.Bucket, 0, len(keys))
	for _, key := range keys {
		example, _ := g.Example(key)
		buckets = append(buckets, model.Bucket{
			Kind:    kind,
			Key:     key,
			Count:   g.Count(key),
			Example: example.Line,
		})
	}
	return buckets
}
