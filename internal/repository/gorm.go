package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yshekhar/cliquecoloc/pkg/model"
	"gorm.io/gorm"
)

// GormRunRepository implements RunRepository using GORM.
type GormRunRepository struct {
	db *gorm.DB
}

// NewGormRunRepository creates a new GormRunRepository.
func NewGormRunRepository(db *gorm.DB) *GormRunRepository {
	return &GormRunRepository{db: db}
}

// SaveRun persists a mining run and returns its assigned ID.
func (r *GormRunRepository) SaveRun(ctx context.Context, run *model.MiningRunRecord) (uint, error) {
	record := &MiningRun{
		Scheme:        run.Scheme,
		MinDist:       run.MinDist,
		MinPrev:       run.MinPrev,
		InstanceCount: run.InstanceCount,
		CliqueCount:   run.CliqueCount,
		SourcePath:    run.SourcePath,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return 0, fmt.Errorf("failed to save mining run: %w", err)
	}

	return uint(record.ID), nil
}

// GetRun retrieves a mining run by ID.
func (r *GormRunRepository) GetRun(ctx context.Context, id uint) (*model.MiningRunRecord, error) {
	var record MiningRun

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mining run not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get mining run: %w", err)
	}

	return record.ToModel(), nil
}

// ListRuns retrieves the most recent mining runs, newest first.
func (r *GormRunRepository) ListRuns(ctx context.Context, limit int) ([]*model.MiningRunRecord, error) {
	var records []MiningRun

	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list mining runs: %w", err)
	}

	out := make([]*model.MiningRunRecord, len(records))
	for i, rec := range records {
		out[i] = rec.ToModel()
	}
	return out, nil
}

// GormPatternRepository implements PatternRepository using GORM.
type GormPatternRepository struct {
	db *gorm.DB
}

// NewGormPatternRepository creates a new GormPatternRepository.
func NewGormPatternRepository(db *gorm.DB) *GormPatternRepository {
	return &GormPatternRepository{db: db}
}

// SavePatterns persists the prevalent patterns discovered by runID.
func (r *GormPatternRepository) SavePatterns(ctx context.Context, runID uint, patterns []model.PrevalentPatternRecord) error {
	if len(patterns) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range patterns {
			record := &PrevalentPatternRow{
				MiningRunID:  int64(runID),
				Features:     p.Features,
				FeatureCount: p.FeatureCount,
				PI:           p.PI,
			}
			if err := tx.Create(record).Error; err != nil {
				return fmt.Errorf("failed to insert pattern: %w", err)
			}
		}
		return nil
	})
}

// GetPatternsByRun retrieves every pattern discovered by runID.
func (r *GormPatternRepository) GetPatternsByRun(ctx context.Context, runID uint) ([]model.PrevalentPatternRecord, error) {
	var records []PrevalentPatternRow

	err := r.db.WithContext(ctx).Where("mining_run_id = ?", runID).Order("pi DESC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}

	out := make([]model.PrevalentPatternRecord, len(records))
	for i, rec := range records {
		out[i] = rec.ToModel()
	}
	return out, nil
}
