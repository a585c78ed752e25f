package colocation

import (
	"context"
	"strings"
)

// Scheme selects which clique enumeration algorithm Mine runs.
type Scheme string

const (
	SchemeIDS Scheme = "ids"
	SchemeNDS Scheme = "nds"

	// DefaultScheme is used whenever a caller passes an empty scheme.
	DefaultScheme Scheme = SchemeNDS
)

// normalize lower-cases scheme and substitutes DefaultScheme for "", so
// callers accept "IDS", "Nds", "" etc. the same way.
func (s Scheme) normalize() Scheme {
	if s == "" {
		return DefaultScheme
	}
	return Scheme(strings.ToLower(string(s)))
}

// MiningResult is everything a caller needs to render, persist, or compress
// the outcome of one mining run.
type MiningResult struct {
	Scheme        Scheme
	MinDist       float64
	MinPrev       float64
	InstanceCount int
	CliqueCount   int
	Patterns      []PrevalentPattern
}

// Mine is the pipeline entry point: materialize neighborhoods,
// enumerate maximal cliques with the requested scheme, index them in a
// C-Hash, and run the top-down prevalence filter. It is pure with respect
// to its inputs — no I/O, no global state — so callers own ingestion and
// persistence.
func Mine(ctx context.Context, dataset *SpatialDataset, minDist, minPrev float64, scheme Scheme, workers int) (*MiningResult, error) {
	if minDist <= 0 {
		return nil, errInvalidMinDist(minDist)
	}
	if minPrev < 0 || minPrev > 1 {
		return nil, errInvalidMinPrev(minPrev)
	}
	scheme = scheme.normalize()
	if scheme != SchemeIDS && scheme != SchemeNDS {
		return nil, errUnknownScheme(string(scheme))
	}

	rel, err := MaterializeNeighborhoods(ctx, dataset, minDist, workers)
	if err != nil {
		return nil, err
	}

	var cliques []Clique
	switch scheme {
	case SchemeIDS:
		cliques = MineCliquesIDS(dataset, rel)
	case SchemeNDS:
		cliques = MineCliquesNDS(dataset, rel)
	}

	universe := NewFeatureUniverse(dataset.Features())
	chash := NewCHash(universe)
	for _, c := range cliques {
		chash.AddClique(c)
	}

	miner, err := NewPrevalenceMiner(chash, dataset, minPrev)
	if err != nil {
		return nil, err
	}

	return &MiningResult{
		Scheme:        scheme,
		MinDist:       minDist,
		MinPrev:       minPrev,
		InstanceCount: dataset.Len(),
		CliqueCount:   len(cliques),
		Patterns:      miner.Mine(),
	}, nil
}
