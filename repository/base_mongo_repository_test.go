package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stampedEntity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt primitive.DateTime `bson:"created_at"`
	UpdatedAt primitive.DateTime `bson:"updated_at"`
}

type pointerIDEntity struct {
	ID   *primitive.ObjectID `bson:"_id,omitempty"`
	Name string              `bson:"name"`
}

type untaggedEntity struct {
	ID        primitive.ObjectID
	CreatedAt primitive.DateTime
}

func TestSetTimestamps(t *testing.T) {
	repo := NewBaseMongoRepository[stampedEntity](nil, "stamped")

	entity := &stampedEntity{Name: "x"}
	repo.setTimestamps(entity, true)
	assert.NotZero(t, entity.CreatedAt)
	assert.NotZero(t, entity.UpdatedAt)

	created := entity.CreatedAt
	entity.UpdatedAt = 0
	repo.setTimestamps(entity, false)
	assert.Equal(t, created, entity.CreatedAt, "更新时不改创建时间")
	assert.NotZero(t, entity.UpdatedAt)
}

func TestSetTimestamps_UntaggedFields(t *testing.T) {
	repo := NewBaseMongoRepository[untaggedEntity](nil, "untagged")

	entity := &untaggedEntity{}
	repo.setTimestamps(entity, true)
	assert.NotZero(t, entity.CreatedAt)
}

func TestSetEntityID(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("值类型", func(t *testing.T) {
		entity := &stampedEntity{}
		NewBaseMongoRepository[stampedEntity](nil, "c").setEntityID(entity, id)
		assert.Equal(t, id, entity.ID)
	})

	t.Run("指针类型", func(t *testing.T) {
		entity := &pointerIDEntity{}
		NewBaseMongoRepository[pointerIDEntity](nil, "c").setEntityID(entity, id)
		if assert.NotNil(t, entity.ID) {
			assert.Equal(t, id, *entity.ID)
		}
	})

	t.Run("无标签字段名", func(t *testing.T) {
		entity := &untaggedEntity{}
		NewBaseMongoRepository[untaggedEntity](nil, "c").setEntityID(entity, id)
		assert.Equal(t, id, entity.ID)
	})

	t.Run("nil 实体", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewBaseMongoRepository[stampedEntity](nil, "c").setEntityID(nil, id)
		})
	})
}

func TestNonStructEntityIsIgnored(t *testing.T) {
	repo := NewBaseMongoRepository[string](nil, "strings")
	value := "plain"
	assert.NotPanics(t, func() {
		repo.setTimestamps(&value, true)
		repo.setEntityID(&value, primitive.NewObjectID())
	})
	assert.Equal(t, "plain", value)
}

// sliceCursor 逐条返回预置文档，迭代结束后报告 err
type sliceCursor struct {
	docs   []stampedEntity
	pos    int
	err    error
	closed bool
}

func (c *sliceCursor) Close(context.Context) error { c.closed = true; return nil }

func (c *sliceCursor) Next(context.Context) bool {
	if c.pos >= len(c.docs) {
		return false
	}
	c.pos++
	return true
}

func (c *sliceCursor) Decode(v interface{}) error {
	*v.(*stampedEntity) = c.docs[c.pos-1]
	return nil
}

func (c *sliceCursor) All(context.Context, interface{}) error { return errors.New("not supported") }

func (c *sliceCursor) Err() error { return c.err }

func TestDecodeAll(t *testing.T) {
	repo := NewBaseMongoRepository[stampedEntity](nil, "stamped")

	cursor := &sliceCursor{docs: []stampedEntity{{Name: "a"}, {Name: "b"}}}
	entities, err := repo.decodeAll(context.Background(), cursor)
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "b", entities[1].Name)
	assert.True(t, cursor.closed)
}

func TestDecodeAll_EmptyIsNotNil(t *testing.T) {
	repo := NewBaseMongoRepository[stampedEntity](nil, "stamped")

	entities, err := repo.decodeAll(context.Background(), &sliceCursor{})
	require.NoError(t, err)
	assert.NotNil(t, entities)
	assert.Empty(t, entities)
}

func TestDecodeAll_IterationErrorIsReturned(t *testing.T) {
	repo := NewBaseMongoRepository[stampedEntity](nil, "stamped")

	// getMore 失败时驱动停止迭代并在 Err 中给出原因
	getMoreErr := errors.New("cursor killed")
	cursor := &sliceCursor{docs: []stampedEntity{{Name: "a"}}, err: getMoreErr}

	entities, err := repo.decodeAll(context.Background(), cursor)
	assert.Nil(t, entities)
	assert.ErrorIs(t, err, getMoreErr)
	assert.True(t, cursor.closed)
}
