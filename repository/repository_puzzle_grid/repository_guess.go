package repository_puzzle_grid

import (
	"context"
	"fmt"

	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"github.com/Super-Badmen-Viper/JazzGrid/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type guessRepository struct {
	*repository.BaseMongoRepository[puzzle_grid_models.GuessMetadata]
}

func NewGuessRepository(db mongo.Database, collection string) puzzle_grid_interface.GuessRepository {
	return &guessRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[puzzle_grid_models.GuessMetadata](db, collection),
	}
}

func cellFilter(cell puzzle_grid_models.CellKey) bson.M {
	return bson.M{
		"puzzle_date": cell.PuzzleDate,
		"row_index":   cell.RowIndex,
		"col_index":   cell.ColIndex,
	}
}

func playerFilter(userID, puzzleDate string) bson.M {
	return bson.M{
		"user_id":     userID,
		"puzzle_date": puzzleDate,
	}
}

func (r *guessRepository) CountForPlayerCell(
	ctx context.Context,
	userID string,
	cell puzzle_grid_models.CellKey,
) (int64, error) {
	filter := cellFilter(cell)
	filter["user_id"] = userID
	return r.Count(ctx, filter)
}

func (r *guessRepository) Insert(ctx context.Context, guess *puzzle_grid_models.GuessMetadata) error {
	guess.Rarity = nil
	if err := r.Create(ctx, guess); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", domain.ErrAlreadyGuessed, err)
		}
		return err
	}
	return nil
}

func (r *guessRepository) SetRarity(ctx context.Context, id primitive.ObjectID, rarity float64) error {
	matched, err := r.UpdateByID(ctx, id, bson.M{"$set": bson.M{"rarity": rarity}})
	if err != nil {
		return fmt.Errorf("稀有度写入失败: %w", err)
	}
	if !matched {
		return fmt.Errorf("稀有度写入失败: guess %s not found", id.Hex())
	}
	return nil
}

func (r *guessRepository) CountForCell(ctx context.Context, cell puzzle_grid_models.CellKey) (int64, error) {
	return r.Count(ctx, cellFilter(cell))
}

func (r *guessRepository) CountAlbumForCell(
	ctx context.Context,
	cell puzzle_grid_models.CellKey,
	album string,
) (int64, error) {
	filter := cellFilter(cell)
	filter["album"] = album
	return r.Count(ctx, filter)
}

func (r *guessRepository) CountForPlayer(ctx context.Context, userID, puzzleDate string) (int64, error) {
	return r.Count(ctx, playerFilter(userID, puzzleDate))
}

// SumRarityForPlayer 汇总玩家当日全部稀有度，null 不计入
func (r *guessRepository) SumRarityForPlayer(ctx context.Context, userID, puzzleDate string) (float64, error) {
	pipeline := driver.Pipeline{
		{{Key: "$match", Value: playerFilter(userID, puzzleDate)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$rarity"}}},
		}}},
	}

	cursor, err := r.Coll().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("稀有度汇总失败: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("稀有度汇总解码失败: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

func (r *guessRepository) GetForPlayer(
	ctx context.Context,
	userID, puzzleDate string,
) ([]*puzzle_grid_models.GuessMetadata, error) {
	return r.GetSortedByFilter(ctx, playerFilter(userID, puzzleDate), []domain.SortOrder{
		{Sort: "row_index", Order: domain.SortOrderAsc},
		{Sort: "col_index", Order: domain.SortOrderAsc},
	}, 0)
}

func (r *guessRepository) DeleteForPlayer(ctx context.Context, userID, puzzleDate string) (int64, error) {
	return r.DeleteMany(ctx, playerFilter(userID, puzzleDate))
}
