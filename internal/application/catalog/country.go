package catalog

import (
	"context"

	"github.com/go-shop-api/internal/domain"
)

// CountryService is read-only: country rows are seeded out of band.
type CountryService interface {
	List(ctx context.Context) ([]domain.Country, error)
	GetByID(ctx context.Context, countryID string) (*domain.Country, error)
}

type countryStore interface {
	Get(ctx context.Context, countryID string) (*domain.Country, error)
	Scan(ctx context.Context) ([]domain.Country, error)
}

type countryService struct {
	repo countryStore
}

func NewCountryService(repo countryStore) CountryService {
	return &countryService{repo: repo}
}

func (s *countryService) List(ctx context.Context) ([]domain.Country, error) {
	return s.repo.Scan(ctx)
}

func (s *countryService) GetByID(ctx context.Context, countryID string) (*domain.Country, error) {
	return s.repo.Get(ctx, countryID)
}
