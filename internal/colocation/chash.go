package colocation

// CHash indexes maximal cliques by colocation type.
// Each bucket maps a feature of the type to the set of distinct instances
// of that feature that participated in at least one clique of that type —
// exactly what the participation-ratio calculation in prevalence.go needs,
// without re-scanning every clique per candidate type.
type CHash struct {
	universe *FeatureUniverse
	buckets  map[string]*chashBucket
}

type chashBucket struct {
	featureSet FeatureSet
	instances  map[string]map[Instance]struct{} // feature -> instance set
}

// NewCHash creates an empty index over universe.
func NewCHash(universe *FeatureUniverse) *CHash {
	return &CHash{universe: universe, buckets: make(map[string]*chashBucket)}
}

// AddClique indexes clique under its colocation type. Cliques of size < 2
// carry no colocation information and are ignored, matching the source
// algorithm's own filter.
func (h *CHash) AddClique(clique Clique) {
	if clique.Size() < 2 {
		return
	}
	fs := clique.FeatureSet(h.universe)
	if fs.Size() < 2 {
		return
	}

	key := fs.Key()
	bucket, ok := h.buckets[key]
	if !ok {
		bucket = &chashBucket{featureSet: fs, instances: make(map[string]map[Instance]struct{}, fs.Size())}
		for _, f := range fs.Features() {
			bucket.instances[f] = make(map[Instance]struct{})
		}
		h.buckets[key] = bucket
	}

	for _, in := range clique.Instances {
		bucket.instances[in.Feature][in] = struct{}{}
	}
}

// Candidates returns every colocation type with at least one indexed
// clique, in no particular order.
func (h *CHash) Candidates() []FeatureSet {
	out := make([]FeatureSet, 0, len(h.buckets))
	for _, b := range h.buckets {
		out = append(out, b.featureSet)
	}
	return out
}

// SupersetsOf returns every indexed colocation type that is a superset of
// cp (cp itself included when indexed). ParticipationIndex uses it to
// gather every indexed type whose row instances contribute to cp.
func (h *CHash) SupersetsOf(cp FeatureSet) []FeatureSet {
	var out []FeatureSet
	for _, b := range h.buckets {
		if cp.IsSubsetOf(b.featureSet) {
			out = append(out, b.featureSet)
		}
	}
	return out
}

// InstancesFor returns the distinct instances of feature that participated
// in some clique of colocation type key. It returns (nil, false) if key was
// never indexed.
func (h *CHash) InstancesFor(key FeatureSet, feature string) ([]Instance, bool) {
	bucket, ok := h.buckets[key.Key()]
	if !ok {
		return nil, false
	}
	set, ok := bucket.instances[feature]
	if !ok {
		return nil, false
	}
	out := make([]Instance, 0, len(set))
	for in := range set {
		out = append(out, in)
	}
	sortInstances(out)
	return out, true
}
