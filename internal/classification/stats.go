package classification

import (
	"sort"

	"github.com/Veraticus/slate/internal/model"
	"github.com/Veraticus/slate/internal/pattern"
)

// Stats summarizes both groupings of one run.
type Stats struct {
	LargestPattern      string `json:"largest_pattern" yaml:"largest_pattern"`
	LargestSubtree      string `json:"largest_subtree" yaml:"largest_subtree"`
	Total               int    `json:"total" yaml:"total"`
	Patterns            int    `json:"patterns" yaml:"patterns"`
	LargestPatternCount int    `json:"largest_pattern_count" yaml:"largest_pattern_count"`
	ZeroGreenPatterns   int    `json:"zero_green_patterns" yaml:"zero_green_patterns"`
	Subtrees            int    `json:"subtrees" yaml:"subtrees"`
	LargestSubtreeCount int    `json:"largest_subtree_count" yaml:"largest_subtree_count"`
}

// ComputeStats derives the run statistics from the two groupings.
func ComputeStats(patterns, subtrees *Groups) Stats {
	s := Stats{
		Total:    patterns.Total(),
		Patterns: patterns.Len(),
		Subtrees: subtrees.Len(),
	}

	s.LargestPattern, s.LargestPatternCount, _ = patterns.Largest()
	s.LargestSubtree, s.LargestSubtreeCount, _ = subtrees.Largest()

	for _, key := range patterns.Keys() {
		if !pattern.Pattern(key).HasGreen() {
			s.ZeroGreenPatterns++
		}
	}

	return s
}

// Match is a path whose secret was looked up directly.
type Match struct {
	Record  model.Record
	Pattern pattern.Pattern
}

// FindBySecret returns every path that ends in word, ordered by joined path.
func FindBySecret(records []model.Record, scorer pattern.Scorer, word string) []Match {
	var matches []Match
	for _, rec := range records {
		if rec.Secret() != word {
			continue
		}
		matches = append(matches, Match{
			Record:  rec,
			Pattern: scorer.Score(word),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Record.Line < matches[j].Record.Line
	})
	return matches
}
