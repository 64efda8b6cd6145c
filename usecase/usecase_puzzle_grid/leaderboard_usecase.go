package usecase_puzzle_grid

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_util"
)

type LeaderboardUsecase struct {
	results puzzle_grid_interface.ResultRepository
	clock   domain_util.Clock
	timeout time.Duration
}

func NewLeaderboardUsecase(
	results puzzle_grid_interface.ResultRepository,
	clock domain_util.Clock,
	timeout time.Duration,
) *LeaderboardUsecase {
	return &LeaderboardUsecase{results: results, clock: clock, timeout: timeout}
}

var _ puzzle_grid_interface.LeaderboardUsecase = (*LeaderboardUsecase)(nil)

// GetLeaderboard 当日前 10 名，总分升序
func (uc *LeaderboardUsecase) GetLeaderboard(ctx context.Context) ([]puzzle_grid_models.LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	results, err := uc.results.GetTopByDate(ctx, uc.clock.Today(), puzzle_grid_models.LeaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	entries := make([]puzzle_grid_models.LeaderboardEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, puzzle_grid_models.LeaderboardEntry{
			Username:   r.Username,
			TotalScore: r.TotalScore,
		})
	}
	return entries, nil
}
