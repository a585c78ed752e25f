// Package colocation implements the clique-based co-location pattern mining
// pipeline: neighborhood materialization, maximal-clique enumeration (IDS and
// NDS), the C-Hash index, and top-down participation-index prevalence
// filtering.
package colocation

import (
	"fmt"
	"math"
)

// Instance is an immutable geo-referenced, feature-labeled point.
//
// The pair (Feature, Idx) uniquely identifies an instance within a dataset;
// callers are responsible for that uniqueness (see Less).
type Instance struct {
	Feature string
	Idx     int
	X, Y    float64
}

// Name returns the conventional "feature.idx" label, e.g. "A.1".
func (in Instance) Name() string {
	return fmt.Sprintf("%s.%d", in.Feature, in.Idx)
}

// Less reports whether in sorts strictly before other under the dataset's
// total order: lexicographic on (Feature, Idx, X, Y). Every stage of the
// pipeline shares this single comparator; using a different one silently
// produces duplicate or missing cliques (spec design note).
func (in Instance) Less(other Instance) bool {
	if in.Feature != other.Feature {
		return in.Feature < other.Feature
	}
	if in.Idx != other.Idx {
		return in.Idx < other.Idx
	}
	if in.X != other.X {
		return in.X < other.X
	}
	return in.Y < other.Y
}

// Equal reports structural equality.
func (in Instance) Equal(other Instance) bool {
	return in.Feature == other.Feature && in.Idx == other.Idx && in.X == other.X && in.Y == other.Y
}

// DistanceSquared returns the squared Euclidean distance to other, avoiding
// a square root on the hot neighbor-check path.
func (in Instance) DistanceSquared(other Instance) float64 {
	dx := in.X - other.X
	dy := in.Y - other.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to other.
func (in Instance) Distance(other Instance) float64 {
	return math.Sqrt(in.DistanceSquared(other))
}
