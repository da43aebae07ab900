// Package catalog holds the product catalog reference services: brands,
// manufacturers, countries and products.
package catalog

import (
	"context"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/id"
)

type BrandService interface {
	List(ctx context.Context) ([]domain.Brand, error)
	GetByID(ctx context.Context, brandID string) (*domain.Brand, error)
	Create(ctx context.Context, in domain.BrandInput) (*domain.Brand, error)
	Update(ctx context.Context, brandID string, in domain.BrandInput) (*domain.Brand, error)
	Delete(ctx context.Context, brandID string) error
}

type brandStore interface {
	Put(ctx context.Context, b *domain.Brand) error
	Get(ctx context.Context, brandID string) (*domain.Brand, error)
	Scan(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, brandID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, brandID string) error
}

type brandService struct {
	repo brandStore
}

func NewBrandService(repo brandStore) BrandService {
	return &brandService{repo: repo}
}

func (s *brandService) List(ctx context.Context) ([]domain.Brand, error) {
	return s.repo.Scan(ctx)
}

func (s *brandService) GetByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	return s.repo.Get(ctx, brandID)
}

func (s *brandService) Create(ctx context.Context, in domain.BrandInput) (*domain.Brand, error) {
	b := &domain.Brand{BrandID: id.New(), Name: in.Name}
	if err := s.repo.Put(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *brandService) Update(ctx context.Context, brandID string, in domain.BrandInput) (*domain.Brand, error) {
	if err := s.repo.Update(ctx, brandID, map[string]interface{}{"name": in.Name}); err != nil {
		return nil, err
	}
	return &domain.Brand{BrandID: brandID, Name: in.Name}, nil
}

func (s *brandService) Delete(ctx context.Context, brandID string) error {
	return s.repo.HardDelete(ctx, brandID)
}
