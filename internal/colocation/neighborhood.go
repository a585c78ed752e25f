package colocation

import (
	"context"
	"math"

	"github.com/yshekhar/cliquecoloc/pkg/parallel"
)

// NeighborhoodRelation holds, for every instance s, its small neighbors
// SNs(s) and big neighbors BNs(s) under the dataset total order. Ns(s) is
// their union and is reconstructed on demand rather than stored twice.
type NeighborhoodRelation struct {
	small map[Instance][]Instance
	big   map[Instance][]Instance
}

// SmallNeighbors returns SNs(s): neighbors of s that sort before s.
func (r *NeighborhoodRelation) SmallNeighbors(s Instance) []Instance {
	return r.small[s]
}

// BigNeighbors returns BNs(s): neighbors of s that sort after s.
func (r *NeighborhoodRelation) BigNeighbors(s Instance) []Instance {
	return r.big[s]
}

// Neighbors returns Ns(s) = SNs(s) ∪ BNs(s).
func (r *NeighborhoodRelation) Neighbors(s Instance) []Instance {
	out := make([]Instance, 0, len(r.small[s])+len(r.big[s]))
	out = append(out, r.small[s]...)
	out = append(out, r.big[s]...)
	return out
}

// gridCell identifies a cell in the uniform grid used to bound pairwise
// distance checks to a 3x3 window.
type gridCell struct{ gx, gy int }

// MaterializeNeighborhoods partitions the plane into a uniform grid of cell
// side minDist and emits the neighbor relation for dataset's instances.
// Only pairs that fall within the same cell or one of its 8 neighbors are
// ever distance-checked; acceptance uses squared distance, never a square
// root. Cell indices are relative to the origin (0,0); any origin choice
// works as long as it's applied consistently within a single run, which it
// is here.
//
// workers, when > 1, parallelizes the per-cell pair-check pass; workers <= 0
// uses the default pool size (2 to 8 workers), and workers == 1 runs it on
// a single worker. The neighbor relation itself is assembled deterministically regardless of
// worker count.
func MaterializeNeighborhoods(ctx context.Context, dataset *SpatialDataset, minDist float64, workers int) (*NeighborhoodRelation, error) {
	if minDist <= 0 {
		return nil, errInvalidMinDist(minDist)
	}

	instances := dataset.Instances()
	rel := &NeighborhoodRelation{
		small: make(map[Instance][]Instance, len(instances)),
		big:   make(map[Instance][]Instance, len(instances)),
	}
	if len(instances) == 0 {
		return rel, nil
	}

	grid := make(map[gridCell][]Instance)
	for _, in := range instances {
		cell := cellFor(in, minDist)
		grid[cell] = append(grid[cell], in)
	}

	order := make(map[Instance]int, len(instances))
	for i, in := range instances {
		order[in] = i
	}

	cells := make([]gridCell, 0, len(grid))
	for c := range grid {
		cells = append(cells, c)
	}

	minDistSq := minDist * minDist

	type pairEdge struct{ small, big Instance }
	edgesByCell := parallel.NewWorkerPool[gridCell, []pairEdge](parallel.DefaultPoolConfig().WithWorkers(effectiveWorkers(workers)))
	results := edgesByCell.ExecuteFunc(ctx, cells, func(_ context.Context, cell gridCell) ([]pairEdge, error) {
		candidates := make([]Instance, 0, len(grid[cell]))
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				candidates = append(candidates, grid[gridCell{cell.gx + dx, cell.gy + dy}]...)
			}
		}

		var edges []pairEdge
		for _, s := range grid[cell] {
			for _, t := range candidates {
				if s.Equal(t) {
					continue
				}
				if s.DistanceSquared(t) > minDistSq {
					continue
				}
				if order[s] < order[t] {
					edges = append(edges, pairEdge{small: s, big: t})
				}
			}
		}
		return edges, nil
	})

	seen := make(map[pairEdge]struct{})
	for _, res := range results {
		for _, e := range res.Result {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			rel.big[e.small] = append(rel.big[e.small], e.big)
			rel.small[e.big] = append(rel.small[e.big], e.small)
		}
	}

	for _, in := range instances {
		sortInstances(rel.small[in])
		sortInstances(rel.big[in])
	}

	return rel, nil
}

func cellFor(in Instance, minDist float64) gridCell {
	return gridCell{
		gx: int(math.Floor(in.X / minDist)),
		gy: int(math.Floor(in.Y / minDist)),
	}
}

func effectiveWorkers(workers int) int {
	if workers <= 0 {
		return parallel.DefaultPoolConfig().MaxWorkers
	}
	return workers
}
