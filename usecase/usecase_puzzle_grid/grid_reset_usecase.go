package usecase_puzzle_grid

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_util"
	"go.uber.org/zap"
)

type GridResetUsecase struct {
	guesses puzzle_grid_interface.GuessRepository
	results puzzle_grid_interface.ResultRepository
	clock   domain_util.Clock
	logger  *zap.Logger
	timeout time.Duration
}

func NewGridResetUsecase(
	guesses puzzle_grid_interface.GuessRepository,
	results puzzle_grid_interface.ResultRepository,
	clock domain_util.Clock,
	logger *zap.Logger,
	timeout time.Duration,
) *GridResetUsecase {
	return &GridResetUsecase{
		guesses: guesses,
		results: results,
		clock:   clock,
		logger:  logger,
		timeout: timeout,
	}
}

var _ puzzle_grid_interface.GridResetUsecase = (*GridResetUsecase)(nil)

// ResetGrid 删除玩家当日全部猜测及排行榜记录
func (uc *GridResetUsecase) ResetGrid(ctx context.Context, player puzzle_grid_models.Player) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	today := uc.clock.Today()

	deletedGuesses, err := uc.guesses.DeleteForPlayer(ctx, player.UserID, today)
	if err != nil {
		return fmt.Errorf("failed to delete guesses: %w", err)
	}
	deletedResults, err := uc.results.DeleteForPlayer(ctx, player.UserID, today)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}

	uc.logger.Info("网格已重置",
		zap.String("user_id", player.UserID),
		zap.String("puzzle_date", today),
		zap.Int64("guesses", deletedGuesses),
		zap.Int64("results", deletedResults))
	return nil
}
