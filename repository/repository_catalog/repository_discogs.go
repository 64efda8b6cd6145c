package repository_catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_interface"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/util/metrics"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultDiscogsBaseURL   = "https://api.discogs.com"
	DefaultDiscogsUserAgent = "JazzGridPuzzle/1.0"

	endpointSearch  = "search"
	endpointRelease = "release"
)

// DiscogsConfig Discogs 客户端配置，凭据由调用方注入
type DiscogsConfig struct {
	BaseURL           string
	Token             string
	UserAgent         string
	RequestsPerMinute int           // 0 表示不限速
	HTTPTimeout       time.Duration // 0 使用传输层默认值
}

type discogsRepository struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewDiscogsRepository(
	cfg DiscogsConfig,
	httpClient *http.Client,
	logger *zap.Logger,
	m *metrics.Metrics,
) puzzle_grid_interface.CatalogRepository {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultDiscogsBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultDiscogsUserAgent
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerMinute > 0 {
		// Discogs 按滑动的一分钟窗口计数，桶容量取每分钟配额
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute)
	}

	return &discogsRepository{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
		metrics:    metrics.OrUnregistered(m),
	}
}

type searchResponse struct {
	Results []puzzle_grid_models.CatalogCandidate `json:"results"`
}

// SearchReleases 按发行标题搜索（type=release），保持目录返回的排序
func (d *discogsRepository) SearchReleases(
	ctx context.Context,
	title string,
) ([]puzzle_grid_models.CatalogCandidate, error) {
	query := url.Values{}
	query.Set("release_title", title)
	query.Set("type", "release")
	endpoint := d.baseURL + "/database/search?" + query.Encode()

	var resp searchResponse
	status, err := d.getJSON(ctx, endpointSearch, endpoint, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: search %q: %v", domain.ErrCatalogUnavailable, title, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: search %q returned status %d", domain.ErrCatalogUnavailable, title, status)
	}

	d.logger.Debug("目录搜索完成",
		zap.String("title", title),
		zap.Int("candidates", len(resp.Results)))
	return resp.Results, nil
}

// GetRelease 获取完整发行记录
func (d *discogsRepository) GetRelease(
	ctx context.Context,
	id int64,
) (*puzzle_grid_models.CatalogRelease, error) {
	endpoint := d.baseURL + "/releases/" + strconv.FormatInt(id, 10)

	var release puzzle_grid_models.CatalogRelease
	status, err := d.getJSON(ctx, endpointRelease, endpoint, &release)
	if err != nil {
		return nil, fmt.Errorf("%w: release %d: %v", domain.ErrCatalogUnavailable, id, err)
	}
	switch {
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: release %d", domain.ErrReleaseNotFound, id)
	case status != http.StatusOK:
		return nil, fmt.Errorf("%w: release %d returned status %d", domain.ErrCatalogUnavailable, id, status)
	}

	if release.ID == 0 {
		release.ID = id
	}
	return &release, nil
}

// getJSON 发起 GET 请求；非 200 时不解码响应体，只返回状态码
func (d *discogsRepository) getJSON(ctx context.Context, name, endpoint string, out interface{}) (int, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)
	req.Header.Set("Accept", "application/json")
	if d.token != "" {
		req.Header.Set("Authorization", "Discogs token="+d.token)
	}

	start := time.Now()
	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.observe(name, "error", start)
		return 0, err
	}
	defer resp.Body.Close()
	d.observe(name, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode != http.StatusOK {
		// 读尽响应体以复用连接
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		d.logger.Warn("目录请求返回非200",
			zap.String("endpoint", name),
			zap.Int("status", resp.StatusCode))
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return resp.StatusCode, fmt.Errorf("empty response body")
		}
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func (d *discogsRepository) observe(name, status string, start time.Time) {
	d.metrics.CatalogRequests.WithLabelValues(name, status).Observe(time.Since(start).Seconds())
}
