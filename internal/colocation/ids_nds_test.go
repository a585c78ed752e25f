package colocation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cliqueKeys(t *testing.T, cliques []Clique) map[string]struct{} {
	t.Helper()
	out := make(map[string]struct{}, len(cliques))
	for _, c := range cliques {
		out[c.Key()] = struct{}{}
	}
	return out
}

func TestMineCliquesIDS_FindsTrianglesInToyDataset(t *testing.T) {
	ds := toyDataset(t)
	rel, err := MaterializeNeighborhoods(context.Background(), ds, 0.2, 1)
	require.NoError(t, err)

	cliques := MineCliquesIDS(ds, rel)
	for _, c := range cliques {
		require.NoError(t, c.Validate(0.2))
	}

	keys := cliqueKeys(t, cliques)
	assert.Contains(t, keys, "A.1|B.1|C.1")
	assert.Contains(t, keys, "A.2|B.2|C.2")
}

func TestMineCliquesNDS_FindsTrianglesInToyDataset(t *testing.T) {
	ds := toyDataset(t)
	rel, err := MaterializeNeighborhoods(context.Background(), ds, 0.2, 1)
	require.NoError(t, err)

	cliques := MineCliquesNDS(ds, rel)
	for _, c := range cliques {
		require.NoError(t, c.Validate(0.2))
	}

	keys := cliqueKeys(t, cliques)
	assert.Contains(t, keys, "A.1|B.1|C.1")
	assert.Contains(t, keys, "A.2|B.2|C.2")
}

func TestMineCliquesNDS_NoDuplicateMaximalCliques(t *testing.T) {
	ds := toyDataset(t)
	rel, err := MaterializeNeighborhoods(context.Background(), ds, 0.2, 1)
	require.NoError(t, err)

	cliques := MineCliquesNDS(ds, rel)
	seen := make(map[string]int)
	for _, c := range cliques {
		seen[c.Key()]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, "clique %s reported more than once", key)
	}
}

func TestMineCliquesIDS_FeatureDistinctness(t *testing.T) {
	ds := featureDistinctnessDataset(t)
	rel, err := MaterializeNeighborhoods(context.Background(), ds, 0.1, 1)
	require.NoError(t, err)

	cliques := MineCliquesIDS(ds, rel)
	keys := cliqueKeys(t, cliques)

	assert.Contains(t, keys, "A.1|B.1")
	assert.Contains(t, keys, "A.2|B.1")
	assert.NotContains(t, keys, "A.1|A.2|B.1")
	for _, c := range cliques {
		assert.NoError(t, c.Validate(0.1))
	}
}

func TestMineCliquesNDS_FeatureDistinctness(t *testing.T) {
	ds := featureDistinctnessDataset(t)
	rel, err := MaterializeNeighborhoods(context.Background(), ds, 0.1, 1)
	require.NoError(t, err)

	cliques := MineCliquesNDS(ds, rel)
	keys := cliqueKeys(t, cliques)

	assert.Contains(t, keys, "A.1|B.1")
	assert.Contains(t, keys, "A.2|B.1")
	assert.NotContains(t, keys, "A.1|A.2|B.1")
	for _, c := range cliques {
		assert.NoError(t, c.Validate(0.1))
	}
}

func TestMineCliquesIDSAndNDS_AgreeOnColocationTypes(t *testing.T) {
	ds := toyDataset(t)
	rel, err := MaterializeNeighborhoods(context.Background(), ds, 0.2, 1)
	require.NoError(t, err)

	universe := NewFeatureUniverse(ds.Features())

	idsChash := NewCHash(universe)
	for _, c := range MineCliquesIDS(ds, rel) {
		idsChash.AddClique(c)
	}
	ndsChash := NewCHash(universe)
	for _, c := range MineCliquesNDS(ds, rel) {
		ndsChash.AddClique(c)
	}

	idsTypes := make(map[string]struct{})
	for _, fs := range idsChash.Candidates() {
		idsTypes[fs.Key()] = struct{}{}
	}
	ndsTypes := make(map[string]struct{})
	for _, fs := range ndsChash.Candidates() {
		ndsTypes[fs.Key()] = struct{}{}
	}

	// IDS also reports non-maximal path cliques (e.g. {A.1,C.1}, a leaf
	// under head A.1), so its type set can be larger than NDS's. Every NDS
	// type must appear among the IDS types, and every IDS type must be
	// contained in some NDS type.
	for key := range ndsTypes {
		assert.Contains(t, idsTypes, key)
	}
	for _, fs := range idsChash.Candidates() {
		covered := false
		for _, nfs := range ndsChash.Candidates() {
			if fs.IsSubsetOf(nfs) {
				covered = true
				break
			}
		}
		assert.True(t, covered, "IDS type %s is not contained in any NDS type", fs.Key())
	}
}
