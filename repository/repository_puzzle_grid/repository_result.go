package repository_puzzle_grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"github.com/Super-Badmen-Viper/JazzGrid/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type resultRepository struct {
	*repository.BaseMongoRepository[puzzle_grid_models.ResultMetadata]
}

func NewResultRepository(db mongo.Database, collection string) puzzle_grid_interface.ResultRepository {
	return &resultRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[puzzle_grid_models.ResultMetadata](db, collection),
	}
}

// UpsertTotal 按 (user_id, puzzle_date) 写入或覆盖总分，重复调用结果一致
func (r *resultRepository) UpsertTotal(ctx context.Context, result *puzzle_grid_models.ResultMetadata) error {
	if result == nil {
		return errors.New("result cannot be nil")
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	filter := playerFilter(result.UserID, result.PuzzleDate)
	update := bson.M{
		"$set": bson.M{
			"username":    result.Username,
			"total_score": result.TotalScore,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.Coll().UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert result: %w", err)
	}
	return nil
}

// GetTopByDate 当日排行榜：总分升序，同分先完成者在前
func (r *resultRepository) GetTopByDate(
	ctx context.Context,
	puzzleDate string,
	limit int64,
) ([]*puzzle_grid_models.ResultMetadata, error) {
	return r.GetSortedByFilter(ctx, bson.M{"puzzle_date": puzzleDate}, []domain.SortOrder{
		{Sort: "total_score", Order: domain.SortOrderAsc},
		{Sort: "updated_at", Order: domain.SortOrderAsc},
	}, limit)
}

func (r *resultRepository) DeleteForPlayer(ctx context.Context, userID, puzzleDate string) (int64, error) {
	return r.DeleteMany(ctx, playerFilter(userID, puzzleDate))
}
