package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yshekhar/cliquecoloc/pkg/model"
)

// MockRunRepository is a mock implementation of the RunRepository interface.
type MockRunRepository struct {
	mock.Mock
}

// SaveRun mocks the SaveRun method.
func (m *MockRunRepository) SaveRun(ctx context.Context, run *model.MiningRunRecord) (uint, error) {
	args := m.Called(ctx, run)
	return args.Get(0).(uint), args.Error(1)
}

// GetRun mocks the GetRun method.
func (m *MockRunRepository) GetRun(ctx context.Context, id uint) (*model.MiningRunRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MiningRunRecord), args.Error(1)
}

// ListRuns mocks the ListRuns method.
func (m *MockRunRepository) ListRuns(ctx context.Context, limit int) ([]*model.MiningRunRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MiningRunRecord), args.Error(1)
}

// ExpectSaveRun sets up an expectation for SaveRun.
func (m *MockRunRepository) ExpectSaveRun(id uint, err error) *mock.Call {
	return m.On("SaveRun", mock.Anything, mock.Anything).Return(id, err)
}

// ExpectGetRun sets up an expectation for GetRun.
func (m *MockRunRepository) ExpectGetRun(id uint, run *model.MiningRunRecord, err error) *mock.Call {
	return m.On("GetRun", mock.Anything, id).Return(run, err)
}

// ExpectListRuns sets up an expectation for ListRuns.
func (m *MockRunRepository) ExpectListRuns(limit int, runs []*model.MiningRunRecord, err error) *mock.Call {
	return m.On("ListRuns", mock.Anything, limit).Return(runs, err)
}

// MockPatternRepository is a mock implementation of the PatternRepository interface.
type MockPatternRepository struct {
	mock.Mock
}

// SavePatterns mocks the SavePatterns method.
func (m *MockPatternRepository) SavePatterns(ctx context.Context, runID uint, patterns []model.PrevalentPatternRecord) error {
	args := m.Called(ctx, runID, patterns)
	return args.Error(0)
}

// GetPatternsByRun mocks the GetPatternsByRun method.
func (m *MockPatternRepository) GetPatternsByRun(ctx context.Context, runID uint) ([]model.PrevalentPatternRecord, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PrevalentPatternRecord), args.Error(1)
}

// ExpectSavePatterns sets up an expectation for SavePatterns.
func (m *MockPatternRepository) ExpectSavePatterns(err error) *mock.Call {
	return m.On("SavePatterns", mock.Anything, mock.Anything, mock.Anything).Return(err)
}

// ExpectGetPatternsByRun sets up an expectation for GetPatternsByRun.
func (m *MockPatternRepository) ExpectGetPatternsByRun(runID uint, patterns []model.PrevalentPatternRecord, err error) *mock.Call {
	return m.On("GetPatternsByRun", mock.Anything, runID).Return(patterns, err)
}
