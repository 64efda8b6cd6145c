package usecase_puzzle_grid

import (
	"fmt"
	"strings"

	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_util"
)

// RequestValidator 校验猜测请求，无副作用
type RequestValidator struct {
	clock domain_util.Clock
}

func NewRequestValidator(clock domain_util.Clock) *RequestValidator {
	return &RequestValidator{clock: clock}
}

// Validate 必填字段齐全（null、缺失、空白都视为缺失），坐标在网格内，乐手名归一化后非空，
// 日期为 YYYY-MM-DD 且是服务器当日（UTC）
func (v *RequestValidator) Validate(req puzzle_grid_models.CheckGuessRequest) (*puzzle_grid_models.ValidGuess, error) {
	validations := []func() error{
		func() error {
			if req.Row == nil || req.Col == nil {
				return fmt.Errorf("missing row or col")
			}
			if !puzzle_grid_models.InGrid(*req.Row, *req.Col) {
				return fmt.Errorf("cell (%d,%d) outside grid", *req.Row, *req.Col)
			}
			return nil
		},
		func() error {
			for field, value := range map[string]*string{
				"rowMusician":    req.RowMusician,
				"columnMusician": req.ColumnMusician,
				"guess":          req.Guess,
				"puzzleDate":     req.PuzzleDate,
			} {
				if value == nil || strings.TrimSpace(*value) == "" {
					return fmt.Errorf("missing %s", field)
				}
			}
			return nil
		},
		func() error {
			// 括号注释会被归一化剥掉，只剩注释的名字会匹配任意唱片
			for field, value := range map[string]string{
				"rowMusician":    *req.RowMusician,
				"columnMusician": *req.ColumnMusician,
			} {
				if domain_util.NormalizeName(value) == "" {
					return fmt.Errorf("%s %q has no name after normalization", field, value)
				}
			}
			return nil
		},
		func() error {
			if !domain_util.IsPuzzleDate(*req.PuzzleDate) {
				return fmt.Errorf("malformed puzzle date %q", *req.PuzzleDate)
			}
			if today := v.clock.Today(); *req.PuzzleDate != today {
				return fmt.Errorf("puzzle date %q is not today (%s)", *req.PuzzleDate, today)
			}
			return nil
		},
	}

	for _, validate := range validations {
		if err := validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidGuessRequest, err)
		}
	}

	return &puzzle_grid_models.ValidGuess{
		Row:            *req.Row,
		Col:            *req.Col,
		RowMusician:    *req.RowMusician,
		ColumnMusician: *req.ColumnMusician,
		Guess:          *req.Guess,
		PuzzleDate:     *req.PuzzleDate,
	}, nil
}
