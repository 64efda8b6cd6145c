package mocks

import (
	"context"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuessRepository testify mock
type GuessRepository struct {
	mock.Mock
}

func (m *GuessRepository) CountForPlayerCell(ctx context.Context, userID string, cell puzzle_grid_models.CellKey) (int64, error) {
	ret := m.Called(ctx, userID, cell)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *GuessRepository) Insert(ctx context.Context, guess *puzzle_grid_models.GuessMetadata) error {
	ret := m.Called(ctx, guess)
	return ret.Error(0)
}

func (m *GuessRepository) SetRarity(ctx context.Context, id primitive.ObjectID, rarity float64) error {
	ret := m.Called(ctx, id, rarity)
	return ret.Error(0)
}

func (m *GuessRepository) CountForCell(ctx context.Context, cell puzzle_grid_models.CellKey) (int64, error) {
	ret := m.Called(ctx, cell)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *GuessRepository) CountAlbumForCell(ctx context.Context, cell puzzle_grid_models.CellKey, album string) (int64, error) {
	ret := m.Called(ctx, cell, album)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *GuessRepository) CountForPlayer(ctx context.Context, userID, puzzleDate string) (int64, error) {
	ret := m.Called(ctx, userID, puzzleDate)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *GuessRepository) SumRarityForPlayer(ctx context.Context, userID, puzzleDate string) (float64, error) {
	ret := m.Called(ctx, userID, puzzleDate)
	return ret.Get(0).(float64), ret.Error(1)
}

func (m *GuessRepository) GetForPlayer(ctx context.Context, userID, puzzleDate string) ([]*puzzle_grid_models.GuessMetadata, error) {
	ret := m.Called(ctx, userID, puzzleDate)
	var guesses []*puzzle_grid_models.GuessMetadata
	if v := ret.Get(0); v != nil {
		guesses = v.([]*puzzle_grid_models.GuessMetadata)
	}
	return guesses, ret.Error(1)
}

func (m *GuessRepository) DeleteForPlayer(ctx context.Context, userID, puzzleDate string) (int64, error) {
	ret := m.Called(ctx, userID, puzzleDate)
	return ret.Get(0).(int64), ret.Error(1)
}
