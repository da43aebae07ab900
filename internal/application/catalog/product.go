package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/id"
)

type ProductService interface {
	// List returns active products only.
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	// Update replaces the product with the given input.
	Update(ctx context.Context, productID string, in domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error
}

type productStore interface {
	Put(ctx context.Context, p *domain.Product) error
	Get(ctx context.Context, productID string) (*domain.Product, error)
	ScanActive(ctx context.Context) ([]domain.Product, error)
	HardDelete(ctx context.Context, productID string) error
}

type categoryGetter interface {
	Get(ctx context.Context, categoryID string) (*domain.Category, error)
}

type countryGetter interface {
	Get(ctx context.Context, countryID string) (*domain.Country, error)
}

type brandGetter interface {
	Get(ctx context.Context, brandID string) (*domain.Brand, error)
}

type manufacturerGetter interface {
	Get(ctx context.Context, manufacturerID string) (*domain.Manufacturer, error)
}

type productService struct {
	repo          productStore
	categories    categoryGetter
	countries     countryGetter
	brands        brandGetter
	manufacturers manufacturerGetter
}

func NewProductService(repo productStore, categories categoryGetter, countries countryGetter, brands brandGetter, manufacturers manufacturerGetter) ProductService {
	return &productService{
		repo:          repo,
		categories:    categories,
		countries:     countries,
		brands:        brands,
		manufacturers: manufacturers,
	}
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ScanActive(ctx)
}

func (s *productService) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.repo.Get(ctx, productID)
}

func (s *productService) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}
	p := productFromInput(id.New(), in)
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, productID string, in domain.ProductInput) (*domain.Product, error) {
	if _, err := s.repo.Get(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}
	p := productFromInput(productID, in)
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, productID string) error {
	return s.repo.HardDelete(ctx, productID)
}

// checkReferences rejects inputs pointing at catalog rows that do not exist.
// A dangling reference is the caller's mistake, not a missing resource, so
// the error wraps ErrBadRequest rather than ErrNotFound.
func (s *productService) checkReferences(ctx context.Context, in domain.ProductInput) error {
	if _, err := s.categories.Get(ctx, in.CategoryID); err != nil {
		return refErr("category", in.CategoryID, err)
	}
	if _, err := s.countries.Get(ctx, in.CountryID); err != nil {
		return refErr("country", in.CountryID, err)
	}
	if in.BrandID != nil {
		if _, err := s.brands.Get(ctx, *in.BrandID); err != nil {
			return refErr("brand", *in.BrandID, err)
		}
	}
	if in.ManufacturerID != nil {
		if _, err := s.manufacturers.Get(ctx, *in.ManufacturerID); err != nil {
			return refErr("manufacturer", *in.ManufacturerID, err)
		}
	}
	return nil
}

func refErr(kind, refID string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s %s does not exist: %w", kind, refID, domain.ErrBadRequest)
	}
	return err
}

func productFromInput(productID string, in domain.ProductInput) *domain.Product {
	return &domain.Product{
		ProductID:      productID,
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		OriginalPrice:  in.OriginalPrice,
		Discount:       in.Discount,
		Stock:          in.Stock,
		IsActive:       in.IsActive,
		Volume:         in.Volume,
		VolumeType:     in.VolumeType,
		CategoryID:     in.CategoryID,
		CountryID:      in.CountryID,
		BrandID:        in.BrandID,
		ManufacturerID: in.ManufacturerID,
	}
}
