package colocation

import "sort"

// PrevalentPattern is one colocation type that cleared the min_prev
// threshold, paired with its participation index.
type PrevalentPattern struct {
	Features []string
	PI       float64
}

// PrevalenceMiner computes participation ratios/index from a C-Hash and
// filters colocation types against min_prev using the anti-monotone,
// top-down scan: a prevalent type short-circuits evaluation of all its subsets (they are
// prevalent too, by the PI anti-monotone property), while a non-prevalent
// type queues its direct (size-1-smaller) subsets for their own evaluation.
type PrevalenceMiner struct {
	chash        *CHash
	featureCount map[string]int
	minPrev      float64
}

// NewPrevalenceMiner builds a miner over chash, using dataset's per-feature
// counts as participation-ratio denominators.
func NewPrevalenceMiner(chash *CHash, dataset *SpatialDataset, minPrev float64) (*PrevalenceMiner, error) {
	if minPrev < 0 || minPrev > 1 {
		return nil, errInvalidMinPrev(minPrev)
	}
	return &PrevalenceMiner{chash: chash, featureCount: dataset.FeatureCounts(), minPrev: minPrev}, nil
}

// ParticipationIndex computes PI(cp): the minimum, over cp's features, of
// that feature's participation ratio in cp — the fraction of its dataset
// instances that appear in some indexed clique whose colocation type is a
// superset of cp.
func (m *PrevalenceMiner) ParticipationIndex(cp FeatureSet) float64 {
	supersets := m.chash.SupersetsOf(cp)
	if len(supersets) == 0 {
		return 0
	}

	union := make(map[string]map[Instance]struct{}, cp.Size())
	for _, f := range cp.Features() {
		union[f] = make(map[Instance]struct{})
	}

	for _, patt := range supersets {
		for _, f := range cp.Features() {
			instances, ok := m.chash.InstancesFor(patt, f)
			if !ok {
				continue
			}
			for _, in := range instances {
				union[f][in] = struct{}{}
			}
		}
	}

	pi := 1.0
	first := true
	for _, f := range cp.Features() {
		denom := m.featureCount[f]
		var ratio float64
		if denom > 0 {
			ratio = float64(len(union[f])) / float64(denom)
		}
		if first || ratio < pi {
			pi = ratio
			first = false
		}
	}
	if first {
		return 0
	}
	return pi
}

// Mine runs the top-down prevalence filter over every colocation type the
// C-Hash indexed, returning one PrevalentPattern per type whose PI clears
// min_prev.
func (m *PrevalenceMiner) Mine() []PrevalentPattern {
	candidates := m.chash.Candidates()
	pending := make([]FeatureSet, len(candidates))
	copy(pending, candidates)
	sortCandidates(pending)

	result := make(map[string]PrevalentPattern)

	for len(pending) > 0 {
		curr := pending[0]
		pi := m.ParticipationIndex(curr)

		if pi >= m.minPrev {
			for _, sub := range curr.AllNonEmptySubsetsAtLeastTwo() {
				if _, ok := result[sub.Key()]; ok {
					continue
				}
				result[sub.Key()] = PrevalentPattern{Features: sub.Features(), PI: m.ParticipationIndex(sub)}
			}
			pending = removeFeatureSet(pending, curr)
		} else {
			pending = removeFeatureSet(pending, curr)
			for _, sub := range curr.DirectSubsets() {
				if sub.Size() < 2 {
					continue
				}
				if _, ok := result[sub.Key()]; ok {
					continue
				}
				if !containsFeatureSet(pending, sub) {
					pending = append(pending, sub)
				}
			}
			sortCandidates(pending)
		}
	}

	out := make([]PrevalentPattern, 0, len(result))
	for _, p := range result {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Features) != len(out[j].Features) {
			return len(out[i].Features) > len(out[j].Features)
		}
		return sortedJoin(out[i].Features) < sortedJoin(out[j].Features)
	})
	return out
}

// sortCandidates orders by decreasing size, then lexicographically by
// feature key, matching the reference scan order so ties resolve the same
// way run to run.
func sortCandidates(fs []FeatureSet) {
	sort.Slice(fs, func(i, j int) bool {
		if fs[i].Size() != fs[j].Size() {
			return fs[i].Size() > fs[j].Size()
		}
		return fs[i].Key() < fs[j].Key()
	})
}

func removeFeatureSet(fs []FeatureSet, target FeatureSet) []FeatureSet {
	out := fs[:0]
	for _, f := range fs {
		if f.Key() != target.Key() {
			out = append(out, f)
		}
	}
	return out
}

func containsFeatureSet(fs []FeatureSet, target FeatureSet) bool {
	for _, f := range fs {
		if f.Key() == target.Key() {
			return true
		}
	}
	return false
}

func sortedJoin(features []string) string {
	cp := make([]string, len(features))
	copy(cp, features)
	sort.Strings(cp)
	out := ""
	for i, f := range cp {
		if i > 0 {
			out += ","
		}
		out += f
	}
	return out
}
