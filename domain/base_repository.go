package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseRepository 通用Repository接口
// T: 实体类型，必须包含ID字段
type BaseRepository[T any] interface {
	// 写入
	Create(ctx context.Context, entity *T) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)

	// 批量操作
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)

	// 查询操作
	GetSortedByFilter(ctx context.Context, filter interface{}, sort []SortOrder, limit int64) ([]*T, error)
	Count(ctx context.Context, filter interface{}) (int64, error)
}
