package domain

type SortOrder struct {
	Sort  string `bson:"sort" json:"sort"`   // 排序字段
	Order string `bson:"order" json:"order"` // 排序方式（asc 或 desc）
}

const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Direction 转换为 MongoDB 排序方向
func (s SortOrder) Direction() int {
	if s.Order == SortOrderDesc {
		return -1
	}
	return 1
}
