package repository_catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/JazzGrid/domain"
	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/Super-Badmen-Viper/JazzGrid/util/metrics"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const kindOfBlueRelease = `{
	"id": 1764,
	"title": "Kind Of Blue",
	"artists": [{"name": "Miles Davis", "id": 23755}],
	"extraartists": [
		{"name": "Bill Evans", "role": "Piano"},
		{"name": "John Coltrane", "role": "Tenor Saxophone"}
	],
	"thumb": "https://img.example/thumb.jpg",
	"images": [{"type": "primary", "uri": "https://img.example/primary.jpg"}]
}`

func newTestRepository(t *testing.T, handler http.HandlerFunc, cfg DiscogsConfig) *discogsRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	repo := NewDiscogsRepository(cfg, srv.Client(), zap.NewNop(), metrics.NewUnregistered())
	return repo.(*discogsRepository)
}

func TestSearchReleases_SendsQueryAndCredentials(t *testing.T) {
	received := make(chan *http.Request, 1)
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		received <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"id": 1764, "title": "Miles Davis - Kind Of Blue", "thumb": "t1"},
			{"id": 9001, "title": "Miles Davis - Kind Of Blue (Legacy)", "cover_image": "c2"}
		]}`))
	}, DiscogsConfig{Token: "secret-token"})

	candidates, err := repo.SearchReleases(context.Background(), "Kind of Blue")
	require.NoError(t, err)

	req := <-received
	assert.Equal(t, "/database/search", req.URL.Path)
	assert.Equal(t, "Kind of Blue", req.URL.Query().Get("release_title"))
	assert.Equal(t, "release", req.URL.Query().Get("type"))
	assert.Equal(t, "Discogs token=secret-token", req.Header.Get("Authorization"))
	assert.Equal(t, DefaultDiscogsUserAgent, req.Header.Get("User-Agent"))

	want := []puzzle_grid_models.CatalogCandidate{
		{ID: 1764, Title: "Miles Davis - Kind Of Blue", Thumb: "t1"},
		{ID: 9001, Title: "Miles Davis - Kind Of Blue (Legacy)", CoverImage: "c2"},
	}
	if diff := cmp.Diff(want, candidates); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchReleases_EmptyResults(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"pagination":{"items":0},"results":[]}`))
	}, DiscogsConfig{})

	candidates, err := repo.SearchReleases(context.Background(), "No Such Album")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestSearchReleases_FailureIsCatalogUnavailable(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, DiscogsConfig{})

	_, err := repo.SearchReleases(context.Background(), "Kind of Blue")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestSearchReleases_MalformedBody(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	}, DiscogsConfig{})

	_, err := repo.SearchReleases(context.Background(), "Kind of Blue")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestGetRelease_ParsesCredits(t *testing.T) {
	paths := make(chan string, 1)
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		_, _ = w.Write([]byte(kindOfBlueRelease))
	}, DiscogsConfig{})

	release, err := repo.GetRelease(context.Background(), 1764)
	require.NoError(t, err)

	assert.Equal(t, "/releases/1764", <-paths)
	assert.Equal(t, "Kind Of Blue", release.Title)
	assert.Equal(t, []string{"Miles Davis", "Bill Evans", "John Coltrane"}, release.ContributorNames())
	assert.Equal(t, "https://img.example/thumb.jpg", release.Cover())
}

func TestGetRelease_NotFound(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}, DiscogsConfig{})

	_, err := repo.GetRelease(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrReleaseNotFound)
}

func TestGetRelease_ServerError(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, DiscogsConfig{})

	_, err := repo.GetRelease(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.NotErrorIs(t, err, domain.ErrReleaseNotFound)
}

func TestRateLimiter_HonoursContext(t *testing.T) {
	var calls atomic.Int32
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"results":[]}`))
	}, DiscogsConfig{RequestsPerMinute: 1})

	_, err := repo.SearchReleases(context.Background(), "first")
	require.NoError(t, err)

	// 配额已用尽，下一次需要等待约一分钟
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = repo.SearchReleases(ctx, "second")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}
