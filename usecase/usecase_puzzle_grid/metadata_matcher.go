package usecase_puzzle_grid

import (
	"context"
	"fmt"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_util"
	"go.uber.org/zap"
)

// MaxCandidates 每次猜测最多校验的候选数
const MaxCandidates = 5

// MetadataMatcher 通过目录确认专辑同时署名了行、列两位乐手
type MetadataMatcher struct {
	catalog puzzle_grid_interface.CatalogRepository
	logger  *zap.Logger
}

func NewMetadataMatcher(catalog puzzle_grid_interface.CatalogRepository, logger *zap.Logger) *MetadataMatcher {
	return &MetadataMatcher{catalog: catalog, logger: logger}
}

// Match 返回 (专辑, OutcomeCorrect)、(nil, OutcomeAlbumNotFound) 或 (nil, OutcomeNotFeatured)
// 搜索失败返回错误；单个候选获取失败只记录并跳过
func (m *MetadataMatcher) Match(
	ctx context.Context,
	guess *puzzle_grid_models.ValidGuess,
) (*puzzle_grid_models.MatchedAlbum, puzzle_grid_models.GuessOutcome, error) {
	candidates, err := m.catalog.SearchReleases(ctx, guess.Guess)
	if err != nil {
		return nil, "", fmt.Errorf("catalog search failed: %w", err)
	}
	if len(candidates) == 0 {
		return nil, puzzle_grid_models.OutcomeAlbumNotFound, nil
	}
	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}

	rowMusician := domain_util.NormalizeName(guess.RowMusician)
	columnMusician := domain_util.NormalizeName(guess.ColumnMusician)

	for _, candidate := range candidates {
		release, err := m.catalog.GetRelease(ctx, candidate.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, "", fmt.Errorf("catalog lookup aborted: %w", ctx.Err())
			}
			m.logger.Warn("获取候选发行失败，跳过",
				zap.Int64("release_id", candidate.ID),
				zap.Error(err))
			continue
		}

		contributors := domain_util.NormalizeNames(release.ContributorNames())
		if domain_util.AnyContains(contributors, rowMusician) &&
			domain_util.AnyContains(contributors, columnMusician) {
			return &puzzle_grid_models.MatchedAlbum{
				ReleaseID: release.ID,
				Title:     release.Title,
				Cover:     release.Cover(),
			}, puzzle_grid_models.OutcomeCorrect, nil
		}
	}

	return nil, puzzle_grid_models.OutcomeNotFeatured, nil
}
