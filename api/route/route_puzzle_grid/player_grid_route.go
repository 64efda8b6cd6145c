package route_puzzle_grid

import (
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/api/controller/controller_puzzle_grid"
	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_util"
	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"github.com/Super-Badmen-Viper/JazzGrid/repository/repository_puzzle_grid"
	"github.com/Super-Badmen-Viper/JazzGrid/usecase/usecase_puzzle_grid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewPlayerGridRouter 玩家当日网格：查询已答格子、重置
func NewPlayerGridRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
	clock domain_util.Clock,
	logger *zap.Logger,
) {
	guessRepo := repository_puzzle_grid.NewGuessRepository(db, domain.CollectionPuzzleGridGuesses)
	resultRepo := repository_puzzle_grid.NewResultRepository(db, domain.CollectionPuzzleGridResults)

	resetCtrl := controller_puzzle_grid.NewGridResetController(
		usecase_puzzle_grid.NewGridResetUsecase(guessRepo, resultRepo, clock, logger, timeout))
	guessCtrl := controller_puzzle_grid.NewPlayerGuessController(
		usecase_puzzle_grid.NewPlayerGuessUsecase(guessRepo, clock, timeout))

	group.POST("/reset-grid", resetCtrl.ResetGrid)
	group.GET("/my-guesses", guessCtrl.GetMyGuesses)
}
