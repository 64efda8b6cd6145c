package controller_puzzle_grid

import (
	"net/http"

	"github.com/Super-Badmen-Viper/JazzGrid/api/controller"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/gin-gonic/gin"
)

const MsgLeaderboardError = "Could not fetch leaderboard"

type LeaderboardController struct {
	LeaderboardUsecase puzzle_grid_interface.LeaderboardUsecase
}

func NewLeaderboardController(uc puzzle_grid_interface.LeaderboardUsecase) *LeaderboardController {
	return &LeaderboardController{LeaderboardUsecase: uc}
}

func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	entries, err := c.LeaderboardUsecase.GetLeaderboard(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		controller.ErrorResponse(ctx, http.StatusInternalServerError, MsgLeaderboardError)
		return
	}

	controller.SuccessResponse(ctx, "leaderboard", entries)
}
