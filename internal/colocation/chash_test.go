package colocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCHash_AddCliqueIgnoresSizeBelowTwo(t *testing.T) {
	universe := NewFeatureUniverse([]string{"A"})
	h := NewCHash(universe)

	h.AddClique(NewClique([]Instance{{Feature: "A", Idx: 1}}))
	assert.Empty(t, h.Candidates())
}

func TestCHash_InstancesForAccumulatesAcrossCliques(t *testing.T) {
	universe := NewFeatureUniverse([]string{"A", "B"})
	h := NewCHash(universe)

	a1 := Instance{Feature: "A", Idx: 1, X: 0, Y: 0}
	a2 := Instance{Feature: "A", Idx: 2, X: 5, Y: 5}
	b1 := Instance{Feature: "B", Idx: 1, X: 0.1, Y: 0}
	b2 := Instance{Feature: "B", Idx: 2, X: 5.1, Y: 5}

	h.AddClique(NewClique([]Instance{a1, b1}))
	h.AddClique(NewClique([]Instance{a2, b2}))

	ab := NewFeatureSet(universe, []string{"A", "B"})
	aInstances, ok := h.InstancesFor(ab, "A")
	assert.True(t, ok)
	assert.ElementsMatch(t, []Instance{a1, a2}, aInstances)
}

func TestCHash_SupersetsOf(t *testing.T) {
	universe := NewFeatureUniverse([]string{"A", "B", "C"})
	h := NewCHash(universe)

	a := Instance{Feature: "A", Idx: 1}
	b := Instance{Feature: "B", Idx: 1}
	c := Instance{Feature: "C", Idx: 1}
	h.AddClique(NewClique([]Instance{a, b, c}))

	ab := NewFeatureSet(universe, []string{"A", "B"})
	supersets := h.SupersetsOf(ab)
	assert.Len(t, supersets, 1)
	assert.Equal(t, "A,B,C", supersets[0].Key())
}
