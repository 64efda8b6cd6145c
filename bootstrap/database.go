package bootstrap

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"go.uber.org/zap"
)

const dbConnectTimeout = 10 * time.Second

func NewMongoDatabase(env *Env, logger *zap.Logger) (mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	client, err := mongo.NewClient(env.MongoURI())
	if err != nil {
		return nil, fmt.Errorf("创建 MongoDB 客户端失败: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("连接 MongoDB 失败: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB 不可达: %w", err)
	}

	logger.Info("MongoDB 已连接",
		zap.String("host", redactHost(env)),
		zap.String("database", env.DBName))
	return client, nil
}

func CloseMongoDBConnection(client mongo.Client, logger *zap.Logger) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("关闭 MongoDB 连接失败", zap.Error(err))
		return
	}
	logger.Info("MongoDB 连接已关闭")
}

// 日志中不输出凭据
func redactHost(env *Env) string {
	u := url.URL{Scheme: "mongodb", Host: env.DBHost + ":" + env.DBPort}
	return u.String()
}
