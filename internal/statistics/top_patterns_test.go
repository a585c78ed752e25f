package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yshekhar/cliquecoloc/internal/colocation"
)

func samplePatterns() []colocation.PrevalentPattern {
	return []colocation.PrevalentPattern{
		{Features: []string{"A", "B"}, PI: 0.9},
		{Features: []string{"A", "B", "C"}, PI: 0.6},
		{Features: []string{"D", "E"}, PI: 0.95},
		{Features: []string{"F", "G"}, PI: 0.2},
	}
}

func TestTopPatternsCalculator_Calculate_OrdersByPIDescending(t *testing.T) {
	calc := NewTopPatternsCalculator(WithTopN(3))
	result := calc.Calculate(samplePatterns())

	require.Len(t, result.Patterns, 3)
	assert.Equal(t, []string{"D", "E"}, result.Patterns[0].Features)
	assert.Equal(t, []string{"A", "B"}, result.Patterns[1].Features)
	assert.Equal(t, []string{"A", "B", "C"}, result.Patterns[2].Features)
}

func TestTopPatternsCalculator_Calculate_EmptyInput(t *testing.T) {
	calc := NewTopPatternsCalculator()
	result := calc.Calculate(nil)

	require.NotNil(t, result)
	assert.Equal(t, 0, result.TotalMined)
	assert.Empty(t, result.Patterns)
}

func TestTopPatternsCalculator_Calculate_MinSizeFilter(t *testing.T) {
	calc := NewTopPatternsCalculator(WithMinSize(3))
	result := calc.Calculate(samplePatterns())

	require.Len(t, result.Patterns, 1)
	assert.Equal(t, []string{"A", "B", "C"}, result.Patterns[0].Features)
	assert.Equal(t, 4, result.TotalMined)
	assert.Equal(t, 1, result.FilteredSize)
}

func TestTopPatternsCalculator_Calculate_TopNBeyondLength(t *testing.T) {
	calc := NewTopPatternsCalculator(WithTopN(100))
	result := calc.Calculate(samplePatterns())
	assert.Len(t, result.Patterns, 4)
}
