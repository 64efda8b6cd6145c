package puzzle_grid_models

// CheckGuessRequest 提交猜测的请求体
// 指针字段用于区分 "缺失/null" 与零值
type CheckGuessRequest struct {
	Row            *int    `json:"row"`
	Col            *int    `json:"col"`
	RowMusician    *string `json:"rowMusician"`
	ColumnMusician *string `json:"columnMusician"`
	Guess          *string `json:"guess"`
	PuzzleDate     *string `json:"puzzleDate"`
}

// ValidGuess 校验通过后的猜测
type ValidGuess struct {
	Row            int
	Col            int
	RowMusician    string
	ColumnMusician string
	Guess          string
	PuzzleDate     string
}

// Player 请求方身份（无鉴权，调用方自报）
type Player struct {
	UserID   string
	Username string
}

const (
	GuestUserID   = "guest"
	GuestUsername = "Guest"
)

// GuessOutcome 猜测结果
type GuessOutcome string

const (
	OutcomeCorrect        GuessOutcome = "correct"
	OutcomeAlbumNotFound  GuessOutcome = "album_not_found"
	OutcomeNotFeatured    GuessOutcome = "not_featured"
	OutcomeAlreadyGuessed GuessOutcome = "already_guessed"
)

// MatchedAlbum 通过署名校验的专辑
type MatchedAlbum struct {
	ReleaseID int64
	Title     string
	Cover     string
}

// CheckGuessResult 流水线最终结果
type CheckGuessResult struct {
	Outcome  GuessOutcome
	Album    string
	Rarity   float64
	Cover    string
	Complete bool // 本次作答是否触发完成
}
