package route_puzzle_grid

import (
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/api/controller/controller_puzzle_grid"
	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_util"
	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"github.com/Super-Badmen-Viper/JazzGrid/repository/repository_puzzle_grid"
	"github.com/Super-Badmen-Viper/JazzGrid/usecase/usecase_puzzle_grid"
	"github.com/Super-Badmen-Viper/JazzGrid/util/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewCheckGuessRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
	catalog puzzle_grid_interface.CatalogRepository,
	clock domain_util.Clock,
	logger *zap.Logger,
	m *metrics.Metrics,
) {
	guessRepo := repository_puzzle_grid.NewGuessRepository(db, domain.CollectionPuzzleGridGuesses)
	resultRepo := repository_puzzle_grid.NewResultRepository(db, domain.CollectionPuzzleGridResults)

	usecase := usecase_puzzle_grid.NewCheckGuessUsecase(guessRepo, resultRepo, catalog, clock, logger, m, timeout)
	ctrl := controller_puzzle_grid.NewCheckGuessController(usecase)

	group.POST("/check-guess", ctrl.CheckGuess)
}
