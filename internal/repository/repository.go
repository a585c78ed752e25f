// Package repository provides database abstraction for mining run
// persistence.
package repository

import (
	"context"

	"github.com/yshekhar/cliquecoloc/pkg/model"
)

// RunRepository defines the interface for mining-run persistence.
type RunRepository interface {
	// SaveRun persists a mining run's configuration and headline counts,
	// returning its assigned ID.
	SaveRun(ctx context.Context, run *model.MiningRunRecord) (uint, error)

	// GetRun retrieves a mining run by ID.
	GetRun(ctx context.Context, id uint) (*model.MiningRunRecord, error)

	// ListRuns retrieves the most recent mining runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]*model.MiningRunRecord, error)
}

// PatternRepository defines the interface for prevalent-pattern
// persistence.
type PatternRepository interface {
	// SavePatterns persists the prevalent patterns discovered by runID.
	SavePatterns(ctx context.Context, runID uint, patterns []model.PrevalentPatternRecord) error

	// GetPatternsByRun retrieves every pattern discovered by runID.
	GetPatternsByRun(ctx context.Context, runID uint) ([]model.PrevalentPatternRecord, error)
}
