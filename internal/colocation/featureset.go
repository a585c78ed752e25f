package colocation

import (
	"sort"
	"strings"

	"github.com/yshekhar/cliquecoloc/pkg/collections"
)

// FeatureUniverse assigns a stable bit index to every feature label seen by
// a mining run. A colocation type's membership test, subset test, and
// superset test all reduce to O(word-count) bitset ops against a shared
// universe: a bitset over feature indices yields near-O(1) subset,
// superset, and difference tests.
type FeatureUniverse struct {
	index map[string]int
	names []string
}

// NewFeatureUniverse builds a universe from the dataset's features, indexed
// in sorted order for determinism.
func NewFeatureUniverse(features []string) *FeatureUniverse {
	names := make([]string, len(features))
	copy(names, features)
	sort.Strings(names)

	u := &FeatureUniverse{index: make(map[string]int, len(names)), names: names}
	for i, f := range names {
		u.index[f] = i
	}
	return u
}

func (u *FeatureUniverse) indexOf(feature string) int {
	if i, ok := u.index[feature]; ok {
		return i
	}
	// Features absent from the seeding dataset (shouldn't happen in
	// practice) still get a stable slot so bitset ops remain well-defined.
	i := len(u.names)
	u.index[feature] = i
	u.names = append(u.names, feature)
	return i
}

// FeatureSet is a co-location type: an unordered, size>=2 set of feature
// labels. It carries both a canonical sorted-slice form (for
// deterministic iteration and string keys) and a bitset form (for fast
// subset/superset comparisons).
type FeatureSet struct {
	universe *FeatureUniverse
	sorted   []string
	bits     *collections.Bitset
}

// NewFeatureSet builds a FeatureSet from an arbitrary (possibly unsorted,
// possibly duplicated) slice of feature labels.
func NewFeatureSet(universe *FeatureUniverse, features []string) FeatureSet {
	dedup := make(map[string]struct{}, len(features))
	for _, f := range features {
		dedup[f] = struct{}{}
	}
	sorted := make([]string, 0, len(dedup))
	for f := range dedup {
		sorted = append(sorted, f)
	}
	sort.Strings(sorted)

	bits := collections.NewBitset(len(universe.names))
	for _, f := range sorted {
		bits.Set(universe.indexOf(f))
	}

	return FeatureSet{universe: universe, sorted: sorted, bits: bits}
}

// Size returns the number of features in the set.
func (fs FeatureSet) Size() int {
	return len(fs.sorted)
}

// Features returns the sorted feature labels.
func (fs FeatureSet) Features() []string {
	out := make([]string, len(fs.sorted))
	copy(out, fs.sorted)
	return out
}

// Key returns a canonical, comma-joined string key suitable for use as a map
// key or for deterministic tie-breaking in sorts.
func (fs FeatureSet) Key() string {
	return strings.Join(fs.sorted, ",")
}

// Contains reports whether feature f is a member.
func (fs FeatureSet) Contains(f string) bool {
	idx, ok := fs.universe.index[f]
	if !ok {
		return false
	}
	return fs.bits.Test(idx)
}

// IsSubsetOf reports whether fs ⊆ other.
func (fs FeatureSet) IsSubsetOf(other FeatureSet) bool {
	if fs.Size() > other.Size() {
		return false
	}
	clone := fs.bits.Clone()
	clone.AndNot(other.bits)
	return clone.Count() == 0
}

// DirectSubsets returns every subset obtained by removing exactly one
// feature (cardinality Size()-1), in feature order.
func (fs FeatureSet) DirectSubsets() []FeatureSet {
	if fs.Size() <= 1 {
		return nil
	}
	out := make([]FeatureSet, 0, fs.Size())
	for i := range fs.sorted {
		remaining := make([]string, 0, fs.Size()-1)
		remaining = append(remaining, fs.sorted[:i]...)
		remaining = append(remaining, fs.sorted[i+1:]...)
		out = append(out, NewFeatureSet(fs.universe, remaining))
	}
	return out
}

// AllNonEmptySubsetsAtLeastTwo returns every subset of size >= 2.
func (fs FeatureSet) AllNonEmptySubsetsAtLeastTwo() []FeatureSet {
	n := fs.Size()
	var out []FeatureSet
	for mask := 1; mask < (1 << n); mask++ {
		if popcount(mask) < 2 {
			continue
		}
		feats := make([]string, 0, popcount(mask))
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				feats = append(feats, fs.sorted[i])
			}
		}
		out = append(out, NewFeatureSet(fs.universe, feats))
	}
	return out
}

func popcount(mask int) int {
	c := 0
	for mask != 0 {
		mask &= mask - 1
		c++
	}
	return c
}
