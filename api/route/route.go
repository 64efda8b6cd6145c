package route

import (
	"net/http"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/api/controller/controller_system"
	"github.com/Super-Badmen-Viper/JazzGrid/api/middleware"
	"github.com/Super-Badmen-Viper/JazzGrid/api/route/route_puzzle_grid"
	"github.com/Super-Badmen-Viper/JazzGrid/bootstrap"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_util"
	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Setup 注册全部路由；谜题接口同时挂在根路径与 /api 下
func Setup(
	app *bootstrap.Application,
	timeout time.Duration,
	db mongo.Database,
	catalog puzzle_grid_interface.CatalogRepository,
	engine *gin.Engine,
) {
	engine.Use(
		gin.Recovery(),
		middleware.RequestLogger(app.Logger, app.Metrics),
	)

	// 系统路由不限流
	health := controller_system.NewHealthController(app.Mongo, timeout)
	engine.GET("/healthz", health.Healthz)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{})))

	var limiter *middleware.IPRateLimiter
	if app.Env.RateLimitPerSecond > 0 {
		limiter = middleware.NewIPRateLimiter(rate.Limit(app.Env.RateLimitPerSecond), app.Env.RateLimitBurst)
	}

	clock := domain_util.Clock(domain_util.SystemClock)
	for _, prefix := range []string{"", "/api"} {
		group := engine.Group(prefix, middleware.RateLimit(limiter), middleware.PlayerIdentity())

		route_puzzle_grid.NewCheckGuessRouter(timeout, db, group, catalog, clock, app.Logger, app.Metrics)
		route_puzzle_grid.NewLeaderboardRouter(timeout, db, group, clock)
		route_puzzle_grid.NewPlayerGridRouter(timeout, db, group, clock, app.Logger)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
