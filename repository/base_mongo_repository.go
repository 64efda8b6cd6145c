package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseMongoRepository MongoDB通用Repository实现
type BaseMongoRepository[T any] struct {
	db         mongo.Database
	collection string
}

// NewBaseMongoRepository 创建新的MongoDB Repository实例
func NewBaseMongoRepository[T any](db mongo.Database, collection string) *BaseMongoRepository[T] {
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
}

var _ domain.BaseRepository[struct{}] = (*BaseMongoRepository[struct{}])(nil)

// Coll 返回底层集合句柄
func (r *BaseMongoRepository[T]) Coll() mongo.Collection {
	return r.db.Collection(r.collection)
}

// Create 创建新实体，写入后回填生成的ID
// 唯一索引冲突时原样返回驱动错误（已包装），由调用方用 mongo.IsDuplicateKeyError 判定
func (r *BaseMongoRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	// 设置创建时间（如果实体有相关字段）
	r.setTimestamps(entity, true)

	resultID, err := r.Coll().InsertOne(ctx, entity)
	if err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}

	// 设置生成的ID
	if oid, ok := resultID.(primitive.ObjectID); ok {
		r.setEntityID(entity, oid)
	}

	return nil
}

// UpdateByID 根据ID更新指定字段
func (r *BaseMongoRepository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	if id.IsZero() {
		return false, errors.New("id cannot be empty")
	}

	result, err := r.Coll().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, fmt.Errorf("failed to update entity: %w", err)
	}

	return result.MatchedCount > 0, nil
}

// DeleteMany 批量删除
func (r *BaseMongoRepository[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	deletedCount, err := r.Coll().DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entities: %w", err)
	}

	return deletedCount, nil
}

// GetSortedByFilter 排序 + 限量查询，limit<=0 表示不限
func (r *BaseMongoRepository[T]) GetSortedByFilter(
	ctx context.Context,
	filter interface{},
	sort []domain.SortOrder,
	limit int64,
) ([]*T, error) {
	sortDoc := bson.D{}
	for _, s := range sort {
		sortDoc = append(sortDoc, bson.E{Key: s.Sort, Value: s.Direction()})
	}

	opts := options.Find().SetSort(sortDoc)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.Coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	return r.decodeAll(ctx, cursor)
}

// Count 统计数量
func (r *BaseMongoRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	count, err := r.Coll().CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}

	return count, nil
}

func (r *BaseMongoRepository[T]) decodeAll(ctx context.Context, cursor mongo.Cursor) ([]*T, error) {
	defer cursor.Close(ctx)

	entities := make([]*T, 0)
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		entities = append(entities, &entity)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor iteration failed: %w", err)
	}

	return entities, nil
}

// 辅助方法：设置时间戳
func (r *BaseMongoRepository[T]) setTimestamps(entity *T, isCreate bool) {
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()

	now := primitive.NewDateTimeFromTime(time.Now())

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		fieldName, _, _ := strings.Cut(fieldType.Tag.Get("bson"), ",")
		if fieldName == "" {
			fieldName = fieldType.Name
		}

		// 设置创建时间
		if isCreate && (fieldName == "created_at" || fieldName == "CreatedAt") && field.Type() == reflect.TypeOf(now) {
			field.Set(reflect.ValueOf(now))
		}

		// 设置更新时间
		if (fieldName == "updated_at" || fieldName == "UpdatedAt") && field.Type() == reflect.TypeOf(now) {
			field.Set(reflect.ValueOf(now))
		}
	}
}

// 设置实体ID
func (r *BaseMongoRepository[T]) setEntityID(entity *T, id primitive.ObjectID) {
	if entity == nil {
		return
	}
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() { // 跳过不可修改字段
			continue
		}

		// 统一解析标签
		fieldName, _, _ := strings.Cut(fieldType.Tag.Get("bson"), ",")
		if fieldName == "" {
			fieldName = fieldType.Name
		}

		// 类型检查兼容指针和非指针
		if matchesIDField(fieldName) && isObjectIDType(field.Type()) {
			if field.Kind() == reflect.Ptr {
				newID := id // 避免取地址临时变量
				field.Set(reflect.ValueOf(&newID))
			} else {
				field.Set(reflect.ValueOf(id))
			}
			return
		}
	}
}

// 辅助函数：检查字段名是否匹配ID
func matchesIDField(name string) bool {
	return name == "_id" || name == "ID"
}

// 辅助函数：检查类型是否为primitive.ObjectID或其指针
func isObjectIDType(t reflect.Type) bool {
	return t == reflect.TypeOf(primitive.ObjectID{}) ||
		t == reflect.TypeOf(&primitive.ObjectID{})
}
