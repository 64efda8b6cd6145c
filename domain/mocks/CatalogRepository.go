package mocks

import (
	"context"

	"github.com/Super-Badmen-Viper/JazzGrid/domain/domain_puzzle_grid/puzzle_grid_models"
	"github.com/stretchr/testify/mock"
)

// CatalogRepository testify mock
type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) SearchReleases(ctx context.Context, title string) ([]puzzle_grid_models.CatalogCandidate, error) {
	ret := m.Called(ctx, title)
	var candidates []puzzle_grid_models.CatalogCandidate
	if v := ret.Get(0); v != nil {
		candidates = v.([]puzzle_grid_models.CatalogCandidate)
	}
	return candidates, ret.Error(1)
}

func (m *CatalogRepository) GetRelease(ctx context.Context, id int64) (*puzzle_grid_models.CatalogRelease, error) {
	ret := m.Called(ctx, id)
	var release *puzzle_grid_models.CatalogRelease
	if v := ret.Get(0); v != nil {
		release = v.(*puzzle_grid_models.CatalogRelease)
	}
	return release, ret.Error(1)
}
