package mocks

import (
	"context"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/stretchr/testify/mock"
)

// CheckGuessUsecase testify mock
type CheckGuessUsecase struct {
	mock.Mock
}

func (m *CheckGuessUsecase) CheckGuess(
	ctx context.Context,
	player puzzle_grid_models.Player,
	req puzzle_grid_models.CheckGuessRequest,
) (*puzzle_grid_models.CheckGuessResult, error) {
	ret := m.Called(ctx, player, req)
	var result *puzzle_grid_models.CheckGuessResult
	if v := ret.Get(0); v != nil {
		result = v.(*puzzle_grid_models.CheckGuessResult)
	}
	return result, ret.Error(1)
}

// PlayerGuessUsecase testify mock
type PlayerGuessUsecase struct {
	mock.Mock
}

func (m *PlayerGuessUsecase) GetTodayGuesses(
	ctx context.Context,
	player puzzle_grid_models.Player,
) ([]*puzzle_grid_models.GuessMetadata, error) {
	ret := m.Called(ctx, player)
	var guesses []*puzzle_grid_models.GuessMetadata
	if v := ret.Get(0); v != nil {
		guesses = v.([]*puzzle_grid_models.GuessMetadata)
	}
	return guesses, ret.Error(1)
}

// LeaderboardUsecase testify mock
type LeaderboardUsecase struct {
	mock.Mock
}

func (m *LeaderboardUsecase) GetLeaderboard(ctx context.Context) ([]puzzle_grid_models.LeaderboardEntry, error) {
	ret := m.Called(ctx)
	var entries []puzzle_grid_models.LeaderboardEntry
	if v := ret.Get(0); v != nil {
		entries = v.([]puzzle_grid_models.LeaderboardEntry)
	}
	return entries, ret.Error(1)
}

// GridResetUsecase testify mock
type GridResetUsecase struct {
	mock.Mock
}

func (m *GridResetUsecase) ResetGrid(ctx context.Context, player puzzle_grid_models.Player) error {
	ret := m.Called(ctx, player)
	return ret.Error(0)
}
