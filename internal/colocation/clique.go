package colocation

// Clique is a maximal or candidate set of feature-distinct instances that
// are pairwise within min_dist of each other. Instances are kept in the
// dataset total order so two cliques with the same members always compare
// equal and hash to the same key.
type Clique struct {
	Instances []Instance
}

// NewClique builds a Clique from instances, sorting them into the dataset
// total order. It does not itself verify pairwise distance or feature
// distinctness. ids.go and nds.go assemble cliques from the neighborhood
// relation's edges and do not call Validate; Validate is the separate
// O(k^2) pairwise re-check, which the tests run on their results.
func NewClique(instances []Instance) Clique {
	out := make([]Instance, len(instances))
	copy(out, instances)
	sortInstances(out)
	return Clique{Instances: out}
}

// Size returns the number of instances in the clique.
func (c Clique) Size() int {
	return len(c.Instances)
}

// FeatureSet returns the colocation type of this clique against universe.
func (c Clique) FeatureSet(universe *FeatureUniverse) FeatureSet {
	features := make([]string, len(c.Instances))
	for i, in := range c.Instances {
		features[i] = in.Feature
	}
	return NewFeatureSet(universe, features)
}

// Key returns a string uniquely identifying this clique's instance
// membership, suitable for deduplication in a C-Hash bucket.
func (c Clique) Key() string {
	var b []byte
	for i, in := range c.Instances {
		if i > 0 {
			b = append(b, '|')
		}
		b = append(b, in.Name()...)
	}
	return string(b)
}

// Validate checks the two invariants every clique must satisfy: every pair
// of instances is feature-distinct, and every pair is within minDist of
// each other. It is O(k^2) and meant for tests and defensive checks at
// enumerator boundaries, not the enumerators' inner loops.
func (c Clique) Validate(minDist float64) error {
	minDistSq := minDist * minDist
	for i := 0; i < len(c.Instances); i++ {
		for j := i + 1; j < len(c.Instances); j++ {
			a, b := c.Instances[i], c.Instances[j]
			if a.Feature == b.Feature {
				return errNotFeatureDistinct(a, b)
			}
			if a.DistanceSquared(b) > minDistSq {
				return errInvariantNotClique(a, b, minDist)
			}
		}
	}
	return nil
}

// Contains reports whether in is a member of the clique.
func (c Clique) Contains(in Instance) bool {
	for _, m := range c.Instances {
		if m.Equal(in) {
			return true
		}
	}
	return false
}
