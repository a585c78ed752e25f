package colocation

import "sort"

// sortInstances sorts in by the dataset total order in place.
func sortInstances(in []Instance) {
	sort.Slice(in, func(i, j int) bool {
		return in[i].Less(in[j])
	})
}
