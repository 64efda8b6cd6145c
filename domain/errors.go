package domain

import "errors"

// 猜测流水线的哨兵错误，controller 层通过 errors.Is 区分响应
var (
	ErrInvalidGuessRequest = errors.New("invalid guess request")
	ErrAlreadyGuessed      = errors.New("cell already guessed")
	ErrCatalogUnavailable  = errors.New("catalog unavailable")
	ErrReleaseNotFound     = errors.New("catalog release not found")
)
