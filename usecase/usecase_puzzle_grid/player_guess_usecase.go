package usecase_puzzle_grid

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_util"
)

// PlayerGuessUsecase 玩家当日已答格子，用于客户端恢复网格状态
type PlayerGuessUsecase struct {
	guesses puzzle_grid_interface.GuessRepository
	clock   domain_util.Clock
	timeout time.Duration
}

func NewPlayerGuessUsecase(
	guesses puzzle_grid_interface.GuessRepository,
	clock domain_util.Clock,
	timeout time.Duration,
) *PlayerGuessUsecase {
	return &PlayerGuessUsecase{guesses: guesses, clock: clock, timeout: timeout}
}

var _ puzzle_grid_interface.PlayerGuessUsecase = (*PlayerGuessUsecase)(nil)

func (uc *PlayerGuessUsecase) GetTodayGuesses(
	ctx context.Context,
	player puzzle_grid_models.Player,
) ([]*puzzle_grid_models.GuessMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	guesses, err := uc.guesses.GetForPlayer(ctx, player.UserID, uc.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to load player guesses: %w", err)
	}
	return guesses, nil
}
