package puzzle_grid_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GridDimension = 3                             // 网格边长（3×3）
	GridCellCount = GridDimension * GridDimension // 完成阈值：全部格子数
)

// GuessMetadata 玩家在某日某格子的正确作答记录
// (user_id, puzzle_date, row_index, col_index) 唯一
type GuessMetadata struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`         // 玩家标识（调用方提供）
	PuzzleDate string             `bson:"puzzle_date" json:"puzzle_date"` // YYYY-MM-DD
	RowIndex   int                `bson:"row_index" json:"row"`
	ColIndex   int                `bson:"col_index" json:"col"`
	Album      string             `bson:"album" json:"album"`           // 目录中命中的专辑标题
	ReleaseID  int64              `bson:"release_id" json:"release_id"` // 目录条目 ID
	Rarity     *float64           `bson:"rarity" json:"rarity"`         // 计算前为 null，之后固定在 [0,100]
	Cover      string             `bson:"cover" json:"cover"`
	CreatedAt  primitive.DateTime `bson:"created_at" json:"created_at"`
}

// CellKey 格子坐标
type CellKey struct {
	PuzzleDate string
	RowIndex   int
	ColIndex   int
}

// InGrid 检查坐标是否位于网格内
func InGrid(row, col int) bool {
	return row >= 0 && row < GridDimension && col >= 0 && col < GridDimension
}
