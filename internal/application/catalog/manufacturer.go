package catalog

import (
	"context"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/id"
)

type ManufacturerService interface {
	List(ctx context.Context) ([]domain.Manufacturer, error)
	GetByID(ctx context.Context, manufacturerID string) (*domain.Manufacturer, error)
	Create(ctx context.Context, in domain.ManufacturerInput) (*domain.Manufacturer, error)
	Update(ctx context.Context, manufacturerID string, in domain.ManufacturerInput) (*domain.Manufacturer, error)
	Delete(ctx context.Context, manufacturerID string) error
}

type manufacturerStore interface {
	Put(ctx context.Context, m *domain.Manufacturer) error
	Get(ctx context.Context, manufacturerID string) (*domain.Manufacturer, error)
	Scan(ctx context.Context) ([]domain.Manufacturer, error)
	Update(ctx context.Context, manufacturerID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, manufacturerID string) error
}

type manufacturerService struct {
	repo manufacturerStore
}

func NewManufacturerService(repo manufacturerStore) ManufacturerService {
	return &manufacturerService{repo: repo}
}

func (s *manufacturerService) List(ctx context.Context) ([]domain.Manufacturer, error) {
	return s.repo.Scan(ctx)
}

func (s *manufacturerService) GetByID(ctx context.Context, manufacturerID string) (*domain.Manufacturer, error) {
	return s.repo.Get(ctx, manufacturerID)
}

func (s *manufacturerService) Create(ctx context.Context, in domain.ManufacturerInput) (*domain.Manufacturer, error) {
	m := &domain.Manufacturer{ManufacturerID: id.New(), Name: in.Name}
	if err := s.repo.Put(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *manufacturerService) Update(ctx context.Context, manufacturerID string, in domain.ManufacturerInput) (*domain.Manufacturer, error) {
	if err := s.repo.Update(ctx, manufacturerID, map[string]interface{}{"name": in.Name}); err != nil {
		return nil, err
	}
	return &domain.Manufacturer{ManufacturerID: manufacturerID, Name: in.Name}, nil
}

func (s *manufacturerService) Delete(ctx context.Context, manufacturerID string) error {
	return s.repo.HardDelete(ctx, manufacturerID)
}
