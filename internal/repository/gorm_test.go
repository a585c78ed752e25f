package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yshekhar/cliquecoloc/pkg/model"
)

func sampleRun() *model.MiningRunRecord {
	return &model.MiningRunRecord{
		Scheme:        "ids",
		MinDist:       10.0,
		MinPrev:       0.5,
		InstanceCount: 42,
		CliqueCount:   7,
		SourcePath:    "testdata/instances.csv",
	}
}

func TestGormRunRepository_SaveAndGet(t *testing.T) {
	db := newTestGormDB(t)
	repo := NewGormRunRepository(db)
	ctx := context.Background()

	id, err := repo.SaveRun(ctx, sampleRun())
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := repo.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ids", got.Scheme)
	assert.Equal(t, 42, got.InstanceCount)
	assert.Equal(t, 7, got.CliqueCount)
}

func TestGormRunRepository_GetRun_NotFound(t *testing.T) {
	db := newTestGormDB(t)
	repo := NewGormRunRepository(db)

	_, err := repo.GetRun(context.Background(), 9999)
	assert.Error(t, err)
}

func TestGormRunRepository_ListRuns_NewestFirst(t *testing.T) {
	db := newTestGormDB(t)
	repo := NewGormRunRepository(db)
	ctx := context.Background()

	first, err := repo.SaveRun(ctx, sampleRun())
	require.NoError(t, err)
	second, err := repo.SaveRun(ctx, sampleRun())
	require.NoError(t, err)

	runs, err := repo.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, first, runs[1].ID)
}

func TestGormPatternRepository_SaveAndGet(t *testing.T) {
	db := newTestGormDB(t)
	runRepo := NewGormRunRepository(db)
	patternRepo := NewGormPatternRepository(db)
	ctx := context.Background()

	runID, err := runRepo.SaveRun(ctx, sampleRun())
	require.NoError(t, err)

	patterns := []model.PrevalentPatternRecord{
		{Features: "A,B", FeatureCount: 2, PI: 0.6},
		{Features: "A,B,C", FeatureCount: 3, PI: 0.9},
	}
	require.NoError(t, patternRepo.SavePatterns(ctx, runID, patterns))

	got, err := patternRepo.GetPatternsByRun(ctx, runID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A,B,C", got[0].Features)
	assert.Equal(t, "A,B", got[1].Features)
}

func TestGormPatternRepository_SavePatterns_EmptyIsNoop(t *testing.T) {
	db := newTestGormDB(t)
	patternRepo := NewGormPatternRepository(db)

	err := patternRepo.SavePatterns(context.Background(), 1, nil)
	assert.NoError(t, err)
}
