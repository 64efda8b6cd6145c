package usecase_puzzle_grid

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/util/metrics"
	"go.uber.org/zap"
)

// ScoreRecorder 先写入猜测（rarity 为 null），再按格子统计回填稀有度
type ScoreRecorder struct {
	guesses puzzle_grid_interface.GuessRepository
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewScoreRecorder(
	guesses puzzle_grid_interface.GuessRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
) *ScoreRecorder {
	return &ScoreRecorder{guesses: guesses, logger: logger, metrics: metrics.OrUnregistered(m)}
}

// ComputeRarity 该专辑在本格全部正确答案中的占比，保留一位小数；无答案时为 100
func ComputeRarity(albumCount, totalCount int64) float64 {
	if totalCount <= 0 {
		return 100
	}
	rarity := math.Round(float64(albumCount)/float64(totalCount)*1000) / 10
	return math.Max(0, math.Min(100, rarity))
}

// Record 返回计算出的稀有度；唯一键冲突返回 domain.ErrAlreadyGuessed
func (s *ScoreRecorder) Record(
	ctx context.Context,
	userID string,
	guess *puzzle_grid_models.ValidGuess,
	album *puzzle_grid_models.MatchedAlbum,
) (float64, error) {
	record := &puzzle_grid_models.GuessMetadata{
		UserID:     userID,
		PuzzleDate: guess.PuzzleDate,
		RowIndex:   guess.Row,
		ColIndex:   guess.Col,
		Album:      album.Title,
		ReleaseID:  album.ReleaseID,
		Cover:      album.Cover,
	}
	if err := s.guesses.Insert(ctx, record); err != nil {
		if errors.Is(err, domain.ErrAlreadyGuessed) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to record guess: %w", err)
	}

	cell := cellOf(guess)
	albumCount, err := s.guesses.CountAlbumForCell(ctx, cell, album.Title)
	if err != nil {
		return 0, fmt.Errorf("failed to count album answers: %w", err)
	}
	totalCount, err := s.guesses.CountForCell(ctx, cell)
	if err != nil {
		return 0, fmt.Errorf("failed to count cell answers: %w", err)
	}

	rarity := ComputeRarity(albumCount, totalCount)

	if err := s.guesses.SetRarity(ctx, record.ID, rarity); err != nil {
		s.logger.Error("稀有度回写失败",
			zap.String("guess_id", record.ID.Hex()),
			zap.Float64("rarity", rarity),
			zap.Error(err))
		s.metrics.SecondaryWrites.WithLabelValues("set_rarity").Inc()
	}

	return rarity, nil
}
