package colocation

import "sort"

// SpatialDataset is an ordered, immutable sequence of Instances, sorted by
// the total order on construction, plus a per-feature index used for
// participation-ratio denominators.
type SpatialDataset struct {
	instances []Instance
	byFeature map[string][]Instance
	counts    map[string]int
}

// NewSpatialDataset sorts instances (deterministically, stably) and derives
// the per-feature grouping. The returned dataset is immutable; all pipeline
// stages treat it as read-only. It rejects a dataset carrying two instances
// with the same (feature, idx) pair — that pair uniquely identifies an
// instance.
func NewSpatialDataset(instances []Instance) (*SpatialDataset, error) {
	sorted := make([]Instance, len(instances))
	copy(sorted, instances)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	type key struct {
		feature string
		idx     int
	}
	seen := make(map[key]struct{}, len(sorted))

	byFeature := make(map[string][]Instance)
	counts := make(map[string]int)
	for _, in := range sorted {
		k := key{in.Feature, in.Idx}
		if _, dup := seen[k]; dup {
			return nil, errDuplicateInstance(in)
		}
		seen[k] = struct{}{}

		byFeature[in.Feature] = append(byFeature[in.Feature], in)
		counts[in.Feature]++
	}

	return &SpatialDataset{instances: sorted, byFeature: byFeature, counts: counts}, nil
}

// Instances returns the dataset's instances in total order. The returned
// slice must not be mutated by callers.
func (d *SpatialDataset) Instances() []Instance {
	return d.instances
}

// Len returns the number of instances in the dataset.
func (d *SpatialDataset) Len() int {
	return len(d.instances)
}

// FeatureCount returns |f|, the dataset count of feature f.
func (d *SpatialDataset) FeatureCount(feature string) int {
	return d.counts[feature]
}

// FeatureCounts returns a copy of the per-feature instance counts.
func (d *SpatialDataset) FeatureCounts() map[string]int {
	out := make(map[string]int, len(d.counts))
	for f, c := range d.counts {
		out[f] = c
	}
	return out
}

// InstancesForFeature returns the ordered instances carrying feature f.
func (d *SpatialDataset) InstancesForFeature(feature string) []Instance {
	return d.byFeature[feature]
}

// Features returns the set of distinct feature labels present, sorted.
func (d *SpatialDataset) Features() []string {
	out := make([]string, 0, len(d.byFeature))
	for f := range d.byFeature {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
