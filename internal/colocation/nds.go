package colocation

// ndsExpander runs Bron-Kerbosch over one head's induced subgraph
// ({head} ∪ BNs(head)). Candidates start as BNs(head) and are narrowed to
// Ns(v) of each instance added, so every clique it reports has head as its
// smallest member. A clique that is maximal within this subgraph can still
// be contained in a clique whose smallest member precedes head;
// MineCliquesNDS removes those afterwards with dropSubsumed.
type ndsExpander struct {
	rel     *NeighborhoodRelation
	cliques []Clique
}

// MineCliquesNDS enumerates maximal cliques via the neighborhood-driven
// scheme: Bron-Kerbosch per head instance restricted to its big-neighbor
// set, with an explicit feature-distinctness guard folded into each
// expansion step. No pivot is used.
func MineCliquesNDS(dataset *SpatialDataset, rel *NeighborhoodRelation) []Clique {
	e := &ndsExpander{rel: rel}

	for _, head := range dataset.Instances() {
		candidates := instanceSet(rel.BigNeighbors(head))
		excluded := instanceSet(nil)
		e.expand([]Instance{head}, map[string]struct{}{head.Feature: {}}, candidates, excluded)
	}

	return dropSubsumed(dedupeCliques(e.cliques))
}

func (e *ndsExpander) expand(clique []Instance, features map[string]struct{}, candidates, excluded map[Instance]struct{}) {
	// Same-feature instances can never join this clique, so they are not
	// adjacent to it: strip them from both P and X before the maximality
	// test and the expansion loop, rather than only skipping them while
	// still letting them block termination or occupy X.
	candidates = withoutFeatureClash(candidates, features)
	excluded = withoutFeatureClash(excluded, features)

	if len(candidates) == 0 && len(excluded) == 0 {
		if len(clique) > 1 {
			e.cliques = append(e.cliques, NewClique(clique))
		}
		return
	}

	for v := range cloneInstanceSet(candidates) {
		newClique := append(append([]Instance{}, clique...), v)
		newFeatures := cloneFeatureSet(features)
		newFeatures[v.Feature] = struct{}{}

		newCandidates := neighborsWithin(v, candidates, e.rel)
		newExcluded := neighborsWithin(v, excluded, e.rel)

		e.expand(newClique, newFeatures, newCandidates, newExcluded)

		delete(candidates, v)
		excluded[v] = struct{}{}
	}
}

// withoutFeatureClash returns the subset of set whose feature is not
// already present in features.
func withoutFeatureClash(set map[Instance]struct{}, features map[string]struct{}) map[Instance]struct{} {
	out := make(map[Instance]struct{}, len(set))
	for v := range set {
		if _, clash := features[v.Feature]; !clash {
			out[v] = struct{}{}
		}
	}
	return out
}

func instanceSet(instances []Instance) map[Instance]struct{} {
	out := make(map[Instance]struct{}, len(instances))
	for _, in := range instances {
		out[in] = struct{}{}
	}
	return out
}

func cloneInstanceSet(s map[Instance]struct{}) map[Instance]struct{} {
	out := make(map[Instance]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func cloneFeatureSet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func neighborsWithin(v Instance, set map[Instance]struct{}, rel *NeighborhoodRelation) map[Instance]struct{} {
	out := make(map[Instance]struct{})
	for _, n := range rel.Neighbors(v) {
		if _, ok := set[n]; ok {
			out[n] = struct{}{}
		}
	}
	return out
}

// dedupeCliques guards against the same instance set surfacing twice,
// mirroring the reference implementation's own defensive final pass.
func dedupeCliques(cliques []Clique) []Clique {
	seen := make(map[string]struct{}, len(cliques))
	out := make([]Clique, 0, len(cliques))
	for _, c := range cliques {
		key := c.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// dropSubsumed removes any clique that is a strict instance-subset of
// another clique in the list, the maximality guard spec.md calls out as a
// defensive final pass over the Bron-Kerbosch output.
func dropSubsumed(cliques []Clique) []Clique {
	sets := make([]map[Instance]struct{}, len(cliques))
	for i, c := range cliques {
		sets[i] = instanceSet(c.Instances)
	}

	out := make([]Clique, 0, len(cliques))
	for i, c := range cliques {
		subsumed := false
		for j := range cliques {
			if i == j || len(sets[j]) <= len(sets[i]) {
				continue
			}
			if isSubset(sets[i], sets[j]) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			out = append(out, c)
		}
	}
	return out
}

func isSubset(small, big map[Instance]struct{}) bool {
	for in := range small {
		if _, ok := big[in]; !ok {
			return false
		}
	}
	return true
}
