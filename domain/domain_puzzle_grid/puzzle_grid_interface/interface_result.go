package puzzle_grid_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
)

type ResultRepository interface {
	UpsertTotal(ctx context.Context, result *puzzle_grid_models.ResultMetadata) error
	GetTopByDate(ctx context.Context, puzzleDate string, limit int64) ([]*puzzle_grid_models.ResultMetadata, error)
	DeleteForPlayer(ctx context.Context, userID, puzzleDate string) (int64, error)
}

type LeaderboardUsecase interface {
	GetLeaderboard(ctx context.Context) ([]puzzle_grid_models.LeaderboardEntry, error)
}

type GridResetUsecase interface {
	ResetGrid(ctx context.Context, player puzzle_grid_models.Player) error
}
