package controller_puzzle_grid

import (
	"net/http"

	"github.com/Super-Badmen-Viper/JazzGrid/api/controller"
	"github.com/Super-Badmen-Viper/JazzGrid/api/middleware"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/gin-gonic/gin"
)

const MsgResetError = "Could not reset grid"

type GridResetController struct {
	GridResetUsecase puzzle_grid_interface.GridResetUsecase
}

func NewGridResetController(uc puzzle_grid_interface.GridResetUsecase) *GridResetController {
	return &GridResetController{GridResetUsecase: uc}
}

func (c *GridResetController) ResetGrid(ctx *gin.Context) {
	if err := c.GridResetUsecase.ResetGrid(ctx.Request.Context(), middleware.CurrentPlayer(ctx)); err != nil {
		_ = ctx.Error(err)
		controller.ErrorResponse(ctx, http.StatusInternalServerError, MsgResetError)
		return
	}

	controller.SuccessResponse(ctx, "success", true)
}
