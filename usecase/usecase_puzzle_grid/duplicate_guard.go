package usecase_puzzle_grid

import (
	"context"
	"fmt"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
)

// DuplicateGuard 玩家当日已答过该格子时短路，不查目录也不写库
type DuplicateGuard struct {
	guesses puzzle_grid_interface.GuessRepository
}

func NewDuplicateGuard(guesses puzzle_grid_interface.GuessRepository) *DuplicateGuard {
	return &DuplicateGuard{guesses: guesses}
}

func (g *DuplicateGuard) AlreadyGuessed(
	ctx context.Context,
	userID string,
	guess *puzzle_grid_models.ValidGuess,
) (bool, error) {
	count, err := g.guesses.CountForPlayerCell(ctx, userID, cellOf(guess))
	if err != nil {
		return false, fmt.Errorf("duplicate check failed: %w", err)
	}
	return count > 0, nil
}

func cellOf(guess *puzzle_grid_models.ValidGuess) puzzle_grid_models.CellKey {
	return puzzle_grid_models.CellKey{
		PuzzleDate: guess.PuzzleDate,
		RowIndex:   guess.Row,
		ColIndex:   guess.Col,
	}
}
