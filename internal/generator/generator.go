// Package generator implements the synthetic spatial dataset generator:
// sample a handful of core colocation patterns, scatter row-instances for
// each in clumpy batches across a uniform grid, and pad or truncate to the
// requested total instance count with uniform noise.
package generator

import (
	"math/rand/v2"
	"sort"

	apperrors "github.com/yshekhar/cliquecoloc/pkg/errors"
	"github.com/yshekhar/cliquecoloc/pkg/model"
)

// Params configures one generator run, matching
// original_source/colocation/synthetic.py's GeneratorParams field for
// field: P core patterns, I row-instances per pattern, a D x D
// spatial extent, F total features, target core-pattern size Q, m total
// instances, the min_dist grid cell size, and a clumpy batch size.
type Params struct {
	CorePatterns     int     // P
	InstancesPerCore int     // I
	Extent           float64 // D
	Features         int     // F
	CoreSize         int     // Q
	TotalInstances   int     // m
	MinDist          float64
	Clumpy           int
}

// Validate rejects a configuration that would make generation ill-defined.
func (p Params) Validate() error {
	if p.Features < 2 {
		return apperrors.NewInvalidConfiguration("generator: features must be >= 2")
	}
	if p.CoreSize < 2 || p.CoreSize > p.Features {
		return apperrors.NewInvalidConfiguration("generator: core_size must be in [2, features]")
	}
	if p.MinDist <= 0 {
		return apperrors.NewInvalidConfiguration("generator: min_dist must be > 0")
	}
	if p.Extent <= 0 {
		return apperrors.NewInvalidConfiguration("generator: extent must be > 0")
	}
	if p.TotalInstances < 0 {
		return apperrors.NewInvalidConfiguration("generator: total_instances must be >= 0")
	}
	if p.Clumpy < 1 {
		return apperrors.NewInvalidConfiguration("generator: clumpy must be >= 1")
	}
	return nil
}

// FeatureNames returns the first p.Features labels of the A, B, ..., Z,
// AA, AB, ... sequence.
func (p Params) FeatureNames() []string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	names := make([]string, 0, p.Features)
	for k := 0; len(names) < p.Features; k++ {
		if k < len(alphabet) {
			names = append(names, string(alphabet[k]))
			continue
		}
		prefix := alphabet[(k/len(alphabet))-1]
		suffix := alphabet[k%len(alphabet)]
		names = append(names, string(prefix)+string(suffix))
	}
	return names[:p.Features]
}

// Generator produces synthetic datasets from a fixed Params and an
// injected random source, so a run is reproducible given the same seed.
type Generator struct {
	params      Params
	rng         *rand.Rand
	featureIdx  map[string]int
	cellsPerDim int
}

// New creates a Generator. seed selects the PCG stream driving every random
// draw; two Generators built with the same params and seed produce
// byte-identical output.
func New(params Params, seed uint64) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	cellsPerDim := int(params.Extent / params.MinDist)
	if cellsPerDim < 1 {
		cellsPerDim = 1
	}

	return &Generator{
		params:      params,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		featureIdx:  make(map[string]int),
		cellsPerDim: cellsPerDim,
	}, nil
}

// Generate produces one synthetic dataset as a flat slice of
// InstanceRecords, sorted for determinism.
func (g *Generator) Generate() []model.InstanceRecord {
	featureNames := g.params.FeatureNames()

	var instances []model.InstanceRecord
	for _, pattern := range g.corePatterns(featureNames) {
		instances = append(instances, g.rowInstancesForPattern(pattern)...)
	}

	if len(instances) < g.params.TotalInstances {
		instances = append(instances, g.noiseInstances(featureNames, g.params.TotalInstances-len(instances))...)
	}
	if len(instances) > g.params.TotalInstances {
		instances = instances[:g.params.TotalInstances]
	}

	sort.Slice(instances, func(i, j int) bool {
		a, b := instances[i], instances[j]
		if a.Feature != b.Feature {
			return a.Feature < b.Feature
		}
		return a.Idx < b.Idx
	})
	return instances
}

// corePatterns samples P feature subsets of size ~Q (gaussian-jittered,
// clamped to [2, F]), each a candidate colocation type the generated data
// should actually contain.
func (g *Generator) corePatterns(featureNames []string) [][]string {
	patterns := make([][]string, 0, g.params.CorePatterns)
	for i := 0; i < g.params.CorePatterns; i++ {
		size := g.params.CoreSize + int(g.rng.NormFloat64())
		if size < 2 {
			size = 2
		}
		if size > g.params.Features {
			size = g.params.Features
		}

		shuffled := append([]string(nil), featureNames...)
		g.rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		pattern := append([]string(nil), shuffled[:size]...)
		sort.Strings(pattern)
		patterns = append(patterns, pattern)
	}
	return patterns
}

func (g *Generator) rowInstancesForPattern(pattern []string) []model.InstanceRecord {
	var out []model.InstanceRecord
	remaining := g.params.InstancesPerCore

	for remaining > 0 {
		gx, gy := g.randomGrid()
		batch := g.params.Clumpy
		if batch > remaining {
			batch = remaining
		}

		for b := 0; b < batch; b++ {
			for _, f := range pattern {
				x, y := g.randomPointInGrid(gx, gy)
				out = append(out, model.InstanceRecord{Feature: f, Idx: g.nextIdx(f), X: x, Y: y})
			}
		}
		remaining -= batch
	}
	return out
}

func (g *Generator) noiseInstances(featureNames []string, count int) []model.InstanceRecord {
	out := make([]model.InstanceRecord, 0, count)
	for i := 0; i < count; i++ {
		f := featureNames[g.rng.IntN(len(featureNames))]
		out = append(out, model.InstanceRecord{
			Feature: f,
			Idx:     g.nextIdx(f),
			X:       g.rng.Float64() * g.params.Extent,
			Y:       g.rng.Float64() * g.params.Extent,
		})
	}
	return out
}

func (g *Generator) randomGrid() (int, int) {
	return g.rng.IntN(g.cellsPerDim), g.rng.IntN(g.cellsPerDim)
}

func (g *Generator) randomPointInGrid(gx, gy int) (float64, float64) {
	baseX := float64(gx) * g.params.MinDist
	baseY := float64(gy) * g.params.MinDist
	x := baseX + g.rng.Float64()*g.params.MinDist
	y := baseY + g.rng.Float64()*g.params.MinDist
	if x > g.params.Extent-1e-6 {
		x = g.params.Extent - 1e-6
	}
	if y > g.params.Extent-1e-6 {
		y = g.params.Extent - 1e-6
	}
	return x, y
}

func (g *Generator) nextIdx(feature string) int {
	g.featureIdx[feature]++
	return g.featureIdx[feature]
}
