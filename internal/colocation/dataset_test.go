package colocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpatialDataset_SortsByTotalOrder(t *testing.T) {
	ds, err := NewSpatialDataset([]Instance{
		{Feature: "B", Idx: 1, X: 0, Y: 0},
		{Feature: "A", Idx: 2, X: 0, Y: 0},
		{Feature: "A", Idx: 1, X: 0, Y: 0},
	})
	require.NoError(t, err)

	got := ds.Instances()
	require.Len(t, got, 3)
	assert.Equal(t, "A.1", got[0].Name())
	assert.Equal(t, "A.2", got[1].Name())
	assert.Equal(t, "B.1", got[2].Name())
}

func TestNewSpatialDataset_RejectsDuplicateFeatureIdx(t *testing.T) {
	_, err := NewSpatialDataset([]Instance{
		{Feature: "A", Idx: 1, X: 0, Y: 0},
		{Feature: "A", Idx: 1, X: 5, Y: 5},
	})
	require.Error(t, err)
}

func TestSpatialDataset_FeatureCounts(t *testing.T) {
	ds := toyDataset(t)

	counts := ds.FeatureCounts()
	assert.Equal(t, 2, counts["A"])
	assert.Equal(t, 2, counts["B"])
	assert.Equal(t, 2, counts["C"])
	assert.Equal(t, 1, counts["D"])
}

func TestSpatialDataset_Features(t *testing.T) {
	ds := toyDataset(t)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ds.Features())
}
