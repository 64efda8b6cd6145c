package route

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/bootstrap"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/mocks"
	"github.com/Super-Badmen-Viper/JazzGrid/mongo"
	"github.com/Super-Badmen-Viper/JazzGrid/util/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubClient 只实现健康检查需要的 Ping，其余请求在路由层就被拒绝，不会访问数据库
type stubClient struct {
	pingErr error
}

func (s *stubClient) Database(string) mongo.Database { return nil }
func (s *stubClient) Connect(context.Context) error { return nil }
func (s *stubClient) Disconnect(context.Context) error { return nil }
func (s *stubClient) Ping(context.Context) error { return s.pingErr }

func newEngine(t *testing.T, env *bootstrap.Env, client *stubClient) *gin.Engine {
	t.Helper()
	reg := prometheus.NewRegistry()
	app := &bootstrap.Application{
		Env:      env,
		Mongo:    client,
		Logger:   zap.NewNop(),
		Registry: reg,
		Metrics:  metrics.New(reg),
	}
	catalog := new(mocks.CatalogRepository)
	t.Cleanup(func() { catalog.AssertExpectations(t) })

	engine := gin.New()
	Setup(app, time.Second, nil, catalog, engine)
	return engine
}

func serve(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.10:40000"
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSetup_Routes(t *testing.T) {
	engine := newEngine(t, &bootstrap.Env{}, &stubClient{})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{"根路径 JSON 格式错误", http.MethodPost, "/check-guess", "{bad", http.StatusBadRequest, `{"error":"Invalid request"}`},
		{"/api 前缀 JSON 格式错误", http.MethodPost, "/api/check-guess", "{bad", http.StatusBadRequest, `{"error":"Invalid request"}`},
		{"/api 前缀校验失败", http.MethodPost, "/api/check-guess", `{"row":0}`, http.StatusBadRequest, `{"error":"Invalid request"}`},
		{"未知路径", http.MethodGet, "/api/unknown", "", http.StatusNotFound, `{"error":"Not found"}`},
		{"GET check-guess 不存在", http.MethodGet, "/check-guess", "", http.StatusNotFound, `{"error":"Not found"}`},
		{"健康检查", http.MethodGet, "/healthz", "", http.StatusOK, `{"status":"ok"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(engine, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}

	t.Run("metrics 暴露两个前缀的请求耗时", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "jazzgrid_http_request_duration_seconds")
		assert.Contains(t, body, `route="/check-guess"`)
		assert.Contains(t, body, `route="/api/check-guess"`)
		assert.Contains(t, body, `route="unmatched"`)
	})
}

func TestSetup_HealthzUnavailable(t *testing.T) {
	engine := newEngine(t, &bootstrap.Env{}, &stubClient{pingErr: errors.New("no reachable servers")})

	w := serve(engine, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
}

func TestSetup_RateLimit(t *testing.T) {
	env := &bootstrap.Env{RateLimitPerSecond: 0.001, RateLimitBurst: 1}
	engine := newEngine(t, env, &stubClient{})

	first := serve(engine, http.MethodPost, "/check-guess", "{bad")
	assert.Equal(t, http.StatusBadRequest, first.Code)

	t.Run("同一 IP 超出配额", func(t *testing.T) {
		w := serve(engine, http.MethodPost, "/check-guess", "{bad")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
	})

	t.Run("两个前缀共用同一令牌桶", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/leaderboard", "")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("系统路由不限流", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/healthz", "").Code)
		}
		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/metrics", "").Code)
	})
}
