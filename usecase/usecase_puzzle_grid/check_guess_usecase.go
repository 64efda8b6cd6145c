package usecase_puzzle_grid

import (
	"context"
	"errors"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_util"
	"github.com/Super-Badmen-Viper/JazzGrid/util/metrics"
	"go.uber.org/zap"
)

// CheckGuessUsecase 猜测流水线：
// 校验 -> 去重 -> 目录匹配 -> 记录稀有度 -> 完成汇总，任一阶段可提前结束
type CheckGuessUsecase struct {
	validator  *RequestValidator
	guard      *DuplicateGuard
	matcher    *MetadataMatcher
	recorder   *ScoreRecorder
	aggregator *CompletionAggregator
	logger     *zap.Logger
	metrics    *metrics.Metrics
	timeout    time.Duration
}

func NewCheckGuessUsecase(
	guesses puzzle_grid_interface.GuessRepository,
	results puzzle_grid_interface.ResultRepository,
	catalog puzzle_grid_interface.CatalogRepository,
	clock domain_util.Clock,
	logger *zap.Logger,
	m *metrics.Metrics,
	timeout time.Duration,
) *CheckGuessUsecase {
	m = metrics.OrUnregistered(m)
	return &CheckGuessUsecase{
		validator:  NewRequestValidator(clock),
		guard:      NewDuplicateGuard(guesses),
		matcher:    NewMetadataMatcher(catalog, logger),
		recorder:   NewScoreRecorder(guesses, logger, m),
		aggregator: NewCompletionAggregator(guesses, results, logger, m),
		logger:     logger,
		metrics:    m,
		timeout:    timeout,
	}
}

var _ puzzle_grid_interface.CheckGuessUsecase = (*CheckGuessUsecase)(nil)

func (uc *CheckGuessUsecase) CheckGuess(
	ctx context.Context,
	player puzzle_grid_models.Player,
	req puzzle_grid_models.CheckGuessRequest,
) (*puzzle_grid_models.CheckGuessResult, error) {
	guess, err := uc.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	logger := uc.logger.With(
		zap.String("user_id", player.UserID),
		zap.String("puzzle_date", guess.PuzzleDate),
		zap.Int("row", guess.Row),
		zap.Int("col", guess.Col))

	duplicate, err := uc.guard.AlreadyGuessed(ctx, player.UserID, guess)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return uc.finish(&puzzle_grid_models.CheckGuessResult{Outcome: puzzle_grid_models.OutcomeAlreadyGuessed}), nil
	}

	album, outcome, err := uc.matcher.Match(ctx, guess)
	if err != nil {
		logger.Error("目录匹配失败", zap.String("guess", guess.Guess), zap.Error(err))
		return nil, err
	}
	if outcome != puzzle_grid_models.OutcomeCorrect {
		logger.Debug("猜测未命中", zap.String("guess", guess.Guess), zap.String("outcome", string(outcome)))
		return uc.finish(&puzzle_grid_models.CheckGuessResult{Outcome: outcome}), nil
	}

	rarity, err := uc.recorder.Record(ctx, player.UserID, guess, album)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyGuessed) {
			// 并发重复提交，由唯一索引拦截
			return uc.finish(&puzzle_grid_models.CheckGuessResult{Outcome: puzzle_grid_models.OutcomeAlreadyGuessed}), nil
		}
		logger.Error("记录猜测失败", zap.Error(err))
		return nil, err
	}

	complete := uc.aggregator.Aggregate(ctx, player, guess.PuzzleDate)

	logger.Info("猜测正确",
		zap.String("album", album.Title),
		zap.Int64("release_id", album.ReleaseID),
		zap.Float64("rarity", rarity))

	return uc.finish(&puzzle_grid_models.CheckGuessResult{
		Outcome:  puzzle_grid_models.OutcomeCorrect,
		Album:    album.Title,
		Rarity:   rarity,
		Cover:    album.Cover,
		Complete: complete,
	}), nil
}

func (uc *CheckGuessUsecase) finish(result *puzzle_grid_models.CheckGuessResult) *puzzle_grid_models.CheckGuessResult {
	uc.metrics.GuessOutcomes.WithLabelValues(string(result.Outcome)).Inc()
	return result
}
