package puzzle_grid_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
)

// CatalogRepository 外部音乐目录（Discogs）
type CatalogRepository interface {
	// SearchReleases 按标题搜索，返回按相关度排序的候选；调用失败返回 domain.ErrCatalogUnavailable
	SearchReleases(ctx context.Context, title string) ([]puzzle_grid_models.CatalogCandidate, error)
	// GetRelease 获取完整发行记录
	GetRelease(ctx context.Context, id int64) (*puzzle_grid_models.CatalogRelease, error)
}
