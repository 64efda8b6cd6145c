package controller_puzzle_grid

import (
	"net/http"

	"github.com/Super-Badmen-Viper/JazzGrid/api/controller"
	"github.com/Super-Badmen-Viper/JazzGrid/api/middleware"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/gin-gonic/gin"
)

const MsgGuessesError = "Could not fetch guesses"

type PlayerGuessController struct {
	PlayerGuessUsecase puzzle_grid_interface.PlayerGuessUsecase
}

func NewPlayerGuessController(uc puzzle_grid_interface.PlayerGuessUsecase) *PlayerGuessController {
	return &PlayerGuessController{PlayerGuessUsecase: uc}
}

// GetMyGuesses 当日已答格子（客户端刷新后恢复网格）
func (c *PlayerGuessController) GetMyGuesses(ctx *gin.Context) {
	guesses, err := c.PlayerGuessUsecase.GetTodayGuesses(ctx.Request.Context(), middleware.CurrentPlayer(ctx))
	if err != nil {
		_ = ctx.Error(err)
		controller.ErrorResponse(ctx, http.StatusInternalServerError, MsgGuessesError)
		return
	}

	controller.SuccessResponse(ctx, "guesses", guesses)
}
