package bootstrap

import (
	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"github.com/Super-Badmen-Viper/JazzGrid/util/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type Application struct {
	Env      *Env
	Mongo    mongo.Client
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
}

// App 按顺序初始化配置、日志、指标与数据库
func App(configFile string) (*Application, error) {
	env, err := NewEnv(configFile)
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(env)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client, err := NewMongoDatabase(env, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &Application{
		Env:      env,
		Mongo:    client,
		Logger:   logger,
		Registry: registry,
		Metrics:  metrics.New(registry),
	}, nil
}

func (app *Application) Database() mongo.Database {
	return app.Mongo.Database(app.Env.DBName)
}

func (app *Application) Close() {
	CloseMongoDBConnection(app.Mongo, app.Logger)
	_ = app.Logger.Sync()
}
