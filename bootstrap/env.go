package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

type Env struct {
	AppEnv           string `mapstructure:"APP_ENV"`
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout   int    `mapstructure:"CONTEXT_TIMEOUT"` // 秒
	DBHost           string `mapstructure:"DB_HOST"`
	DBPort           string `mapstructure:"DB_PORT"`
	DBUser           string `mapstructure:"DB_USER"`
	DBPass           string `mapstructure:"DB_PASS"`
	DBName           string `mapstructure:"DB_NAME"`
	DBRebuildIndexes bool   `mapstructure:"DB_REBUILD_INDEXES"`

	DiscogsToken             string `mapstructure:"DISCOGS_TOKEN"`
	DiscogsBaseURL           string `mapstructure:"DISCOGS_BASE_URL"`
	DiscogsUserAgent         string `mapstructure:"DISCOGS_USER_AGENT"`
	DiscogsRequestsPerMinute int    `mapstructure:"DISCOGS_REQUESTS_PER_MINUTE"`
	DiscogsHTTPTimeout       int    `mapstructure:"DISCOGS_HTTP_TIMEOUT"` // 秒

	RateLimitPerSecond float64 `mapstructure:"RATE_LIMIT_PER_SECOND"` // 0 关闭入站限流
	RateLimitBurst     int     `mapstructure:"RATE_LIMIT_BURST"`
}

var envDefaults = map[string]interface{}{
	"APP_ENV":            EnvDevelopment,
	"SERVER_ADDRESS":     ":8080",
	"CONTEXT_TIMEOUT":    10,
	"DB_HOST":            "localhost",
	"DB_PORT":            "27017",
	"DB_USER":            "",
	"DB_PASS":            "",
	"DB_NAME":            "jazzgrid",
	"DB_REBUILD_INDEXES": false,

	"DISCOGS_TOKEN":               "",
	"DISCOGS_BASE_URL":            "https://api.discogs.com",
	"DISCOGS_USER_AGENT":          "JazzGridPuzzle/1.0",
	"DISCOGS_REQUESTS_PER_MINUTE": 60,
	"DISCOGS_HTTP_TIMEOUT":        8,

	"RATE_LIMIT_PER_SECOND": 5.0,
	"RATE_LIMIT_BURST":      10,
}

// NewEnv 读取 .env（可选）与进程环境变量，环境变量优先
func NewEnv(configFile string) (*Env, error) {
	v := viper.New()
	for key, value := range envDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("读取配置文件 %s 失败: %w", configFile, err)
		}
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("解析环境变量失败: %w", err)
	}

	if err := env.validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *Env) validate() error {
	if e.DiscogsToken == "" && e.AppEnv != EnvDevelopment && e.AppEnv != EnvTest {
		return fmt.Errorf("DISCOGS_TOKEN is required when APP_ENV=%s", e.AppEnv)
	}
	if e.ContextTimeout <= 0 {
		return fmt.Errorf("CONTEXT_TIMEOUT must be positive, got %d", e.ContextTimeout)
	}
	if e.DiscogsRequestsPerMinute < 0 {
		return fmt.Errorf("DISCOGS_REQUESTS_PER_MINUTE must not be negative, got %d", e.DiscogsRequestsPerMinute)
	}
	return nil
}

func (e *Env) IsDevelopment() bool {
	return e.AppEnv == EnvDevelopment
}

func (e *Env) Timeout() time.Duration {
	return time.Duration(e.ContextTimeout) * time.Second
}

func (e *Env) DiscogsTimeout() time.Duration {
	return time.Duration(e.DiscogsHTTPTimeout) * time.Second
}

// MongoURI 有用户名时带凭据
func (e *Env) MongoURI() string {
	if e.DBUser == "" {
		return fmt.Sprintf("mongodb://%s:%s", e.DBHost, e.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", e.DBUser, e.DBPass, e.DBHost, e.DBPort)
}
