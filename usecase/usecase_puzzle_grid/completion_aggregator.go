package usecase_puzzle_grid

import (
	"context"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/util/metrics"
	"go.uber.org/zap"
)

// CompletionAggregator 第 9 个正确答案写入后汇总总分并写入排行榜
// 全部失败只记录日志，不影响本次猜测的响应
type CompletionAggregator struct {
	guesses puzzle_grid_interface.GuessRepository
	results puzzle_grid_interface.ResultRepository
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewCompletionAggregator(
	guesses puzzle_grid_interface.GuessRepository,
	results puzzle_grid_interface.ResultRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
) *CompletionAggregator {
	return &CompletionAggregator{guesses: guesses, results: results, logger: logger, metrics: metrics.OrUnregistered(m)}
}

// Aggregate 返回是否写入了排行榜记录
func (c *CompletionAggregator) Aggregate(
	ctx context.Context,
	player puzzle_grid_models.Player,
	puzzleDate string,
) bool {
	logger := c.logger.With(
		zap.String("user_id", player.UserID),
		zap.String("puzzle_date", puzzleDate))

	count, err := c.guesses.CountForPlayer(ctx, player.UserID, puzzleDate)
	if err != nil {
		logger.Warn("统计玩家答题数失败", zap.Error(err))
		c.metrics.SecondaryWrites.WithLabelValues("count_player").Inc()
		return false
	}
	if count != puzzle_grid_models.GridCellCount {
		return false
	}

	total, err := c.guesses.SumRarityForPlayer(ctx, player.UserID, puzzleDate)
	if err != nil {
		logger.Warn("汇总稀有度失败", zap.Error(err))
		c.metrics.SecondaryWrites.WithLabelValues("sum_rarity").Inc()
		return false
	}

	result := &puzzle_grid_models.ResultMetadata{
		UserID:     player.UserID,
		Username:   player.Username,
		PuzzleDate: puzzleDate,
		TotalScore: total,
	}
	if err := c.results.UpsertTotal(ctx, result); err != nil {
		logger.Error("写入排行榜失败", zap.Float64("total_score", total), zap.Error(err))
		c.metrics.SecondaryWrites.WithLabelValues("upsert_result").Inc()
		return false
	}

	logger.Info("玩家完成当日网格", zap.Float64("total_score", total))
	c.metrics.CompletedGrids.Inc()
	return true
}
