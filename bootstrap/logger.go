package bootstrap

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger 生产配置输出 JSON；开发环境降到 debug 并使用控制台编码
func NewLogger(env *Env) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env.IsDevelopment() {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return logger.With(zap.String("app_env", env.AppEnv)), nil
}
