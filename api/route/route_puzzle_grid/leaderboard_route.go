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
)

func NewLeaderboardRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
	clock domain_util.Clock,
) {
	repo := repository_puzzle_grid.NewResultRepository(db, domain.CollectionPuzzleGridResults)

	usecase := usecase_puzzle_grid.NewLeaderboardUsecase(repo, clock, timeout)
	ctrl := controller_puzzle_grid.NewLeaderboardController(usecase)

	group.GET("/leaderboard", ctrl.GetLeaderboard)
}
