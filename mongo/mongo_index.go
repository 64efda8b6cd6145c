package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CreateIndexes 创建谜题网格相关索引
// 唯一索引是去重与排行榜幂等的最终保障，创建失败时返回错误；辅助索引失败仅记录日志
func CreateIndexes(db Database, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Guess Collection
	guessCollection := db.Collection(domain.CollectionPuzzleGridGuesses)
	if err := createUniqueIndex(ctx, logger, guessCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "puzzle_date", Value: 1},
		{Key: "row_index", Value: 1},
		{Key: "col_index", Value: 1}}, "user_date_cell_unique"); err != nil {
		return err
	}
	// 稀有度统计
	createIndex(ctx, logger, guessCollection, bson.D{
		{Key: "puzzle_date", Value: 1},
		{Key: "row_index", Value: 1},
		{Key: "col_index", Value: 1},
		{Key: "album", Value: 1}}, "date_cell_album_compound")
	// 完成检测
	createIndex(ctx, logger, guessCollection, bson.D{
		{Key: "puzzle_date", Value: 1},
		{Key: "user_id", Value: 1}}, "date_user_compound")

	// Result Collection
	resultCollection := db.Collection(domain.CollectionPuzzleGridResults)
	if err := createUniqueIndex(ctx, logger, resultCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "puzzle_date", Value: 1}}, "user_date_unique"); err != nil {
		return err
	}
	createIndex(ctx, logger, resultCollection, bson.D{
		{Key: "puzzle_date", Value: 1},
		{Key: "total_score", Value: 1},
		{Key: "updated_at", Value: 1}}, "date_score_compound")

	return nil
}

func createIndex(
	ctx context.Context,
	logger *zap.Logger,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Warn("创建索引失败", zap.String("index", name), zap.Error(err))
	} else {
		logger.Debug("索引创建成功", zap.String("index", name))
	}
}

func createUniqueIndex(
	ctx context.Context,
	logger *zap.Logger,
	collection Collection,
	keys bson.D,
	name string,
) error {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("创建唯一索引 '%s' 失败: %w", name, err)
	}
	logger.Debug("唯一索引创建成功", zap.String("index", name))
	return nil
}

// DropAllIndexes 删除谜题网格集合的全部索引（_id 除外）
func DropAllIndexes(db Database, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collections := []string{
		domain.CollectionPuzzleGridGuesses,
		domain.CollectionPuzzleGridResults,
	}

	for _, collName := range collections {
		collection := db.Collection(collName)
		if _, err := collection.Indexes().DropAll(ctx); err != nil {
			logger.Warn("删除索引失败", zap.String("collection", collName), zap.Error(err))
		} else {
			logger.Info("索引删除成功", zap.String("collection", collName))
		}
	}
}
