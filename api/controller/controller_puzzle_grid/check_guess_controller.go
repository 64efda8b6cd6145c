package controller_puzzle_grid

import (
	"errors"
	"net/http"

	"github.com/Super-Badmen-Viper/JazzGrid/api/controller"
	"github.com/Super-Badmen-Viper/JazzGrid/api/middleware"
	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidRequest = "Invalid request"
	MsgAlreadyGuessed = "Already guessed this cell"
	MsgAlbumNotFound  = "Album not found"
	MsgNotFeatured    = "Album does not feature both musicians"
	MsgServerError    = "Server error"
)

type CheckGuessController struct {
	CheckGuessUsecase puzzle_grid_interface.CheckGuessUsecase
}

func NewCheckGuessController(uc puzzle_grid_interface.CheckGuessUsecase) *CheckGuessController {
	return &CheckGuessController{CheckGuessUsecase: uc}
}

func (c *CheckGuessController) CheckGuess(ctx *gin.Context) {
	var req puzzle_grid_models.CheckGuessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(err)
		controller.ErrorResponse(ctx, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	result, err := c.CheckGuessUsecase.CheckGuess(ctx.Request.Context(), middleware.CurrentPlayer(ctx), req)
	if err != nil {
		_ = ctx.Error(err)
		if errors.Is(err, domain.ErrInvalidGuessRequest) {
			controller.ErrorResponse(ctx, http.StatusBadRequest, MsgInvalidRequest)
			return
		}
		controller.ErrorResponse(ctx, http.StatusInternalServerError, MsgServerError)
		return
	}

	switch result.Outcome {
	case puzzle_grid_models.OutcomeCorrect:
		ctx.JSON(http.StatusOK, gin.H{
			"correct": true,
			"album":   result.Album,
			"rarity":  result.Rarity,
			"cover":   result.Cover,
		})
	case puzzle_grid_models.OutcomeAlreadyGuessed:
		ctx.JSON(http.StatusBadRequest, gin.H{
			"correct":        false,
			"alreadyGuessed": true,
			"error":          MsgAlreadyGuessed,
		})
	case puzzle_grid_models.OutcomeAlbumNotFound:
		ctx.JSON(http.StatusOK, gin.H{"correct": false, "error": MsgAlbumNotFound})
	case puzzle_grid_models.OutcomeNotFeatured:
		ctx.JSON(http.StatusOK, gin.H{"correct": false, "error": MsgNotFeatured})
	default:
		controller.ErrorResponse(ctx, http.StatusInternalServerError, MsgServerError)
	}
}
