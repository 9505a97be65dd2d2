package classification

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Veraticus/slate/internal/model"
	"github.com/Veraticus/slate/internal/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureRecords() []model.Record {
	return []model.Record{
		model.NewRecord("slate,crane,mount"),
		model.NewRecord("slate,pious,shout"),
		model.NewRecord("slate,crane,stale"),
		model.NewRecord("slate,crane,count"),
		model.NewRecord("slate"),
		// Built directly: the loader would never produce a short secret.
		{Line: "slate,crane,xx", Fields: []string{"slate", "crane", "xx"}},
	}
}

func lines(recs []model.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Line
	}
	return out
}

func TestByPattern(t *testing.T) {
	groups := ByPattern(fixtureRecords(), pattern.NewScorer("slate"))

	assert.Equal(t, []string{"___y_", "g__y_", "gygyg", "ggggg"}, groups.Keys())
	assert.Equal(t, []string{"___y_", "g__y_", "ggggg", "gygyg"}, groups.SortedKeys())
	assert.Equal(t, 4, groups.Len())
	assert.Equal(t, 5, groups.Total())

	assert.Equal(t, []string{"slate,crane,mount", "slate,crane,count"}, lines(groups.Get("___y_")))
	assert.Equal(t, []string{"slate,crane,count", "slate,crane,mount"}, lines(groups.Sorted("___y_")))
	assert.Equal(t, 2, groups.Count("___y_"))
	assert.Equal(t, []string{"slate"}, lines(groups.Get("ggggg")))

	example, ok := groups.Example("___y_")
	require.True(t, ok)
	assert.Equal(t, "slate,crane,count", example.Line)

	assert.False(t, groups.Has(string(pattern.Invalid)), "short secrets are skipped, not filed as all grey")
}

func TestBySubtree(t *testing.T) {
	groups := BySubtree(fixtureRecords())

	assert.Equal(t, []string{"crane", "pious"}, groups.Keys())
	assert.Equal(t, 5, groups.Total(), "only the single-field record is excluded")
	assert.Equal(t, []string{
		"slate,crane,mount",
		"slate,crane,stale",
		"slate,crane,count",
		"slate,crane,xx",
	}, lines(groups.Get("crane")))
	assert.False(t, groups.Has("slate"))
}

func TestBySubtree_CaseSensitiveKeys(t *testing.T) {
	recs := []model.Record{
		{Line: "slate,Crane,mount", Fields: []string{"slate", "Crane", "mount"}},
		model.NewRecord("slate,crane,mount"),
	}

	groups := BySubtree(recs)
	assert.Equal(t, []string{"Crane", "crane"}, groups.Keys())
}

func TestGroups_Empty(t *testing.T) {
	groups := ByPattern(nil, pattern.NewScorer("slate"))

	assert.Equal(t, 0, groups.Len())
	assert.Equal(t, 0, groups.Total())
	assert.Empty(t, groups.Keys())

	_, ok := groups.Example("_____")
	assert.False(t, ok)

	_, _, ok = groups.Largest()
	assert.False(t, ok)
}

func TestGroups_LargestTieBreak(t *testing.T) {
	recs := []model.Record{
		model.NewRecord("slate,pious,shout"),
		model.NewRecord("slate,crane,mount"),
		model.NewRecord("slate,pious,pious"),
		model.NewRecord("slate,crane,count"),
	}

	key, count, ok := BySubtree(recs).Largest()
	require.True(t, ok)
	assert.Equal(t, "crane", key, "equal buckets resolve to the smallest key, not the first seen")
	assert.Equal(t, 2, count)
}

func TestWithProgress(t *testing.T) {
	calls := 0
	recs := fixtureRecords()

	ByPattern(recs, pattern.NewScorer("slate"), WithProgress(func() { calls++ }))
	BySubtree(recs, WithProgress(func() { calls++ }))

	assert.Equal(t, 2*len(recs), calls)
}

func TestGrouping_Partition(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	words := []string{"crane", "mount", "stale", "pious", "shout", "least", "tales", "atlas", "geese"}

	var recs []model.Record
	for i := 0; i < 500; i++ {
		fields := []string{"slate"}
		for n := r.Intn(4); n > 0; n-- {
			fields = append(fields, words[r.Intn(len(words))])
		}
		if r.Intn(10) == 0 {
			fields = append(fields, "bad")
		}
		line := strings.Join(fields, ",")
		recs = append(recs, model.Record{Line: line, Fields: fields})
	}

	var validSecret, multiField []string
	for _, rec := range recs {
		if len(rec.Secret()) == model.WordLength {
			validSecret = append(validSecret, rec.Line)
		}
		if rec.Len() >= 2 {
			multiField = append(multiField, rec.Line)
		}
	}

	byPattern := ByPattern(recs, pattern.NewScorer("slate"))
	var filed []string
	for _, key := range byPattern.Keys() {
		for _, rec := range byPattern.Get(key) {
			assert.Equal(t, key, string(pattern.Compute("slate", rec.Secret())))
			filed = append(filed, rec.Line)
		}
	}
	assert.ElementsMatch(t, validSecret, filed)
	assert.Equal(t, len(validSecret), byPattern.Total())

	bySubtree := BySubtree(recs)
	filed = filed[:0]
	for _, key := range bySubtree.Keys() {
		for _, rec := range bySubtree.Get(key) {
			second, ok := rec.SecondGuess()
			require.True(t, ok)
			assert.Equal(t, key, second)
			filed = append(filed, rec.Line)
		}
	}
	assert.ElementsMatch(t, multiField, filed)
}

func TestGroups_Buckets(t *testing.T) {
	buckets := BySubtree(fixtureRecords()).Buckets(model.KindSubtree)

	require.Len(t, buckets, 2)
	assert.Equal(t, model.Bucket{
		Kind:    model.KindSubtree,
		Key:     "crane",
		Count:   4,
		Example: "slate,crane,count",
	}, buckets[0])
	assert.Equal(t, "pious", buckets[1].Key)
	assert.Empty(t, buckets[1].RunID)
}
