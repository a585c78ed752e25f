package colocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClique_ValidateAcceptsFeatureDistinctCloseSet(t *testing.T) {
	a := Instance{Feature: "A", Idx: 1, X: 0.0, Y: 0.0}
	b := Instance{Feature: "B", Idx: 1, X: 0.1, Y: 0.0}
	c := Instance{Feature: "C", Idx: 1, X: 0.05, Y: 0.08}

	clique := NewClique([]Instance{c, a, b})
	assert.NoError(t, clique.Validate(0.2))
	// NewClique re-sorts into total order regardless of construction order.
	assert.Equal(t, "A.1", clique.Instances[0].Name())
}

func TestClique_ValidateRejectsSameFeature(t *testing.T) {
	a := Instance{Feature: "A", Idx: 1, X: 0, Y: 0}
	a2 := Instance{Feature: "A", Idx: 2, X: 0.01, Y: 0}

	clique := NewClique([]Instance{a, a2})
	require.Error(t, clique.Validate(0.2))
}

func TestClique_ValidateRejectsTooFar(t *testing.T) {
	a := Instance{Feature: "A", Idx: 1, X: 0, Y: 0}
	b := Instance{Feature: "B", Idx: 1, X: 10, Y: 10}

	clique := NewClique([]Instance{a, b})
	require.Error(t, clique.Validate(0.2))
}

func TestClique_Key_IsStableAcrossConstructionOrder(t *testing.T) {
	a := Instance{Feature: "A", Idx: 1, X: 0, Y: 0}
	b := Instance{Feature: "B", Idx: 1, X: 0.1, Y: 0}

	c1 := NewClique([]Instance{a, b})
	c2 := NewClique([]Instance{b, a})
	assert.Equal(t, c1.Key(), c2.Key())
}
