package puzzle_grid_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GuessRepository interface {
	// 去重
	CountForPlayerCell(ctx context.Context, userID string, cell puzzle_grid_models.CellKey) (int64, error)

	// 写入：唯一键冲突时返回 domain.ErrAlreadyGuessed
	Insert(ctx context.Context, guess *puzzle_grid_models.GuessMetadata) error
	SetRarity(ctx context.Context, id primitive.ObjectID, rarity float64) error

	// 稀有度统计
	CountForCell(ctx context.Context, cell puzzle_grid_models.CellKey) (int64, error)
	CountAlbumForCell(ctx context.Context, cell puzzle_grid_models.CellKey, album string) (int64, error)

	// 完成检测
	CountForPlayer(ctx context.Context, userID, puzzleDate string) (int64, error)
	SumRarityForPlayer(ctx context.Context, userID, puzzleDate string) (float64, error)

	GetForPlayer(ctx context.Context, userID, puzzleDate string) ([]*puzzle_grid_models.GuessMetadata, error)
	DeleteForPlayer(ctx context.Context, userID, puzzleDate string) (int64, error)
}

type CheckGuessUsecase interface {
	CheckGuess(ctx context.Context, player puzzle_grid_models.Player, req puzzle_grid_models.CheckGuessRequest) (*puzzle_grid_models.CheckGuessResult, error)
}

type PlayerGuessUsecase interface {
	GetTodayGuesses(ctx context.Context, player puzzle_grid_models.Player) ([]*puzzle_grid_models.GuessMetadata, error)
}
