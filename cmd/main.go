package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/api/route"
	"github.com/Super-Badmen-Viper/JazzGrid/bootstrap"
	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"github.com/Super-Badmen-Viper/JazzGrid/repository/repository_catalog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configFile := flag.String("config", ".env", "path to the .env file")
	flag.Parse()

	app, err := bootstrap.App(*configFile)
	if err != nil {
		log.Fatalf("启动失败: %v", err)
	}
	defer app.Close()

	env := app.Env
	logger := app.Logger
	db := app.Database()

	if env.DBRebuildIndexes {
		mongo.DropAllIndexes(db, logger)
	}
	if err := mongo.CreateIndexes(db, logger); err != nil {
		logger.Error("创建索引失败", zap.Error(err))
		return
	}

	catalog := repository_catalog.NewDiscogsRepository(repository_catalog.DiscogsConfig{
		BaseURL:           env.DiscogsBaseURL,
		Token:             env.DiscogsToken,
		UserAgent:         env.DiscogsUserAgent,
		RequestsPerMinute: env.DiscogsRequestsPerMinute,
		HTTPTimeout:       env.DiscogsTimeout(),
	}, nil, logger.Named("discogs"), app.Metrics)

	if !env.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	route.Setup(app, env.Timeout(), db, catalog, engine)

	server := &http.Server{
		Addr:              env.ServerAddress,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("服务启动", zap.String("address", env.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("服务异常退出", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("收到退出信号，正在关闭服务")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务关闭失败", zap.Error(err))
	}
}
