// Package statistics provides ranking/summarization utilities over a
// finished mining run's output.
package statistics

import (
	"sort"

	"github.com/yshekhar/cliquecoloc/internal/colocation"
)

// TopPatternsCalculator ranks prevalent colocation patterns by their
// participation index and truncates to a caller-chosen count.
type TopPatternsCalculator struct {
	topN    int
	minSize int
}

// TopPatternsOption configures a TopPatternsCalculator.
type TopPatternsOption func(*TopPatternsCalculator)

// WithTopN sets the number of patterns to return.
func WithTopN(n int) TopPatternsOption {
	return func(c *TopPatternsCalculator) {
		c.topN = n
	}
}

// WithMinSize filters out patterns with fewer than n features.
func WithMinSize(n int) TopPatternsOption {
	return func(c *TopPatternsCalculator) {
		c.minSize = n
	}
}

// NewTopPatternsCalculator creates a TopPatternsCalculator with topN
// defaulting to 15 and no size floor.
func NewTopPatternsCalculator(opts ...TopPatternsOption) *TopPatternsCalculator {
	c := &TopPatternsCalculator{topN: 15, minSize: 0}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PatternEntry is one ranked pattern in a TopPatternsResult.
type PatternEntry struct {
	Features []string
	PI       float64
}

// TopPatternsResult holds the ranked output of Calculate.
type TopPatternsResult struct {
	Patterns     []PatternEntry
	TotalMined   int
	FilteredSize int
}

// Calculate ranks patterns by PI descending (ties broken by larger feature
// count, then lexicographically by joined feature key for determinism) and
// returns the top topN.
func (c *TopPatternsCalculator) Calculate(patterns []colocation.PrevalentPattern) *TopPatternsResult {
	result := &TopPatternsResult{TotalMined: len(patterns)}

	filtered := make([]colocation.PrevalentPattern, 0, len(patterns))
	for _, p := range patterns {
		if len(p.Features) < c.minSize {
			continue
		}
		filtered = append(filtered, p)
	}
	result.FilteredSize = len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].PI != filtered[j].PI {
			return filtered[i].PI > filtered[j].PI
		}
		if len(filtered[i].Features) != len(filtered[j].Features) {
			return len(filtered[i].Features) > len(filtered[j].Features)
		}
		return joinFeatures(filtered[i].Features) < joinFeatures(filtered[j].Features)
	})

	topN := c.topN
	if topN <= 0 || topN > len(filtered) {
		topN = len(filtered)
	}

	result.Patterns = make([]PatternEntry, 0, topN)
	for _, p := range filtered[:topN] {
		result.Patterns = append(result.Patterns, PatternEntry{Features: p.Features, PI: p.PI})
	}
	return result
}

func joinFeatures(features []string) string {
	if len(features) == 0 {
		return ""
	}
	out := features[0]
	for _, f := range features[1:] {
		out += "," + f
	}
	return out
}
