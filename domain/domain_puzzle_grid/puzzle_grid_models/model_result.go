package puzzle_grid_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResultMetadata 玩家完成当日网格后的总分
// (user_id, puzzle_date) 唯一，分数越低越稀有
type ResultMetadata struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID     string             `bson:"user_id" json:"-"`
	Username   string             `bson:"username" json:"username"`
	PuzzleDate string             `bson:"puzzle_date" json:"-"`
	TotalScore float64            `bson:"total_score" json:"total_score"`
	CreatedAt  primitive.DateTime `bson:"created_at" json:"-"`
	UpdatedAt  primitive.DateTime `bson:"updated_at" json:"-"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Username   string  `json:"username"`
	TotalScore float64 `json:"total_score"`
}

const LeaderboardLimit = 10
