package mocks

import (
	"context"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/stretchr/testify/mock"
)

// ResultRepository testify mock
type ResultRepository struct {
	mock.Mock
}

func (m *ResultRepository) UpsertTotal(ctx context.Context, result *puzzle_grid_models.ResultMetadata) error {
	ret := m.Called(ctx, result)
	return ret.Error(0)
}

func (m *ResultRepository) GetTopByDate(ctx context.Context, puzzleDate string, limit int64) ([]*puzzle_grid_models.ResultMetadata, error) {
	ret := m.Called(ctx, puzzleDate, limit)
	var results []*puzzle_grid_models.ResultMetadata
	if v := ret.Get(0); v != nil {
		results = v.([]*puzzle_grid_models.ResultMetadata)
	}
	return results, ret.Error(1)
}

func (m *ResultRepository) DeleteForPlayer(ctx context.Context, userID, puzzleDate string) (int64, error) {
	ret := m.Called(ctx, userID, puzzleDate)
	return ret.Get(0).(int64), ret.Error(1)
}
