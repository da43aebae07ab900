package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-shop-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) Put(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockProductStore) Get(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if p, _ := args.Get(0).(*domain.Product); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProductStore) ScanActive(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if ps, _ := args.Get(0).([]domain.Product); ps != nil {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProductStore) HardDelete(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

type mockCategoryGetter struct{ mock.Mock }

func (m *mockCategoryGetter) Get(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if c, _ := args.Get(0).(*domain.Category); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCountryGetter struct{ mock.Mock }

func (m *mockCountryGetter) Get(ctx context.Context, countryID string) (*domain.Country, error) {
	args := m.Called(ctx, countryID)
	if c, _ := args.Get(0).(*domain.Country); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBrandGetter struct{ mock.Mock }

func (m *mockBrandGetter) Get(ctx context.Context, brandID string) (*domain.Brand, error) {
	args := m.Called(ctx, brandID)
	if b, _ := args.Get(0).(*domain.Brand); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockManufacturerGetter struct{ mock.Mock }

func (m *mockManufacturerGetter) Get(ctx context.Context, manufacturerID string) (*domain.Manufacturer, error) {
	args := m.Called(ctx, manufacturerID)
	if mf, _ := args.Get(0).(*domain.Manufacturer); mf != nil {
		return mf, args.Error(1)
	}
	return nil, args.Error(1)
}

type productMocks struct {
	repo          *mockProductStore
	categories    *mockCategoryGetter
	countries     *mockCountryGetter
	brands        *mockBrandGetter
	manufacturers *mockManufacturerGetter
}

func newProductService() (ProductService, *productMocks) {
	m := &productMocks{
		repo:          &mockProductStore{},
		categories:    &mockCategoryGetter{},
		countries:     &mockCountryGetter{},
		brands:        &mockBrandGetter{},
		manufacturers: &mockManufacturerGetter{},
	}
	return NewProductService(m.repo, m.categories, m.countries, m.brands, m.manufacturers), m
}

func notFound(kind string) error {
	return fmt.Errorf("%s not found: %w", kind, domain.ErrNotFound)
}

func validInput() domain.ProductInput {
	return domain.ProductInput{
		Name:          "Milk 3.2%",
		Description:   "Pasteurized milk",
		Price:         79.90,
		OriginalPrice: 89.90,
		Discount:      10,
		Stock:         120,
		IsActive:      true,
		Volume:        1,
		VolumeType:    domain.VolumeLiter,
		CategoryID:    "cat1",
		CountryID:     "ru",
	}
}

func TestProductCreate_HappyPath(t *testing.T) {
	svc, m := newProductService()
	m.categories.On("Get", mock.Anything, "cat1").Return(&domain.Category{CategoryID: "cat1"}, nil)
	m.countries.On("Get", mock.Anything, "ru").Return(&domain.Country{CountryID: "ru"}, nil)
	m.repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	p, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, p.ProductID)
	assert.Equal(t, "Milk 3.2%", p.Name)
	assert.Nil(t, p.BrandID)
	m.repo.AssertExpectations(t)
}

func TestProductCreate_ChecksOptionalReferences(t *testing.T) {
	svc, m := newProductService()
	m.categories.On("Get", mock.Anything, "cat1").Return(&domain.Category{CategoryID: "cat1"}, nil)
	m.countries.On("Get", mock.Anything, "ru").Return(&domain.Country{CountryID: "ru"}, nil)
	m.brands.On("Get", mock.Anything, "b1").Return(&domain.Brand{BrandID: "b1"}, nil)
	m.manufacturers.On("Get", mock.Anything, "m1").Return(&domain.Manufacturer{ManufacturerID: "m1"}, nil)
	m.repo.On("Put", mock.Anything, mock.Anything).Return(nil)

	brandID, manufacturerID := "b1", "m1"
	in := validInput()
	in.BrandID = &brandID
	in.ManufacturerID = &manufacturerID

	p, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	require.NotNil(t, p.BrandID)
	assert.Equal(t, "b1", *p.BrandID)
	m.brands.AssertExpectations(t)
	m.manufacturers.AssertExpectations(t)
}

func TestProductCreate_DanglingReference(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *productMocks, in *domain.ProductInput)
	}{
		{"category", func(m *productMocks, in *domain.ProductInput) {
			m.categories.On("Get", mock.Anything, "cat1").Return(nil, notFound("category"))
		}},
		{"country", func(m *productMocks, in *domain.ProductInput) {
			m.categories.On("Get", mock.Anything, "cat1").Return(&domain.Category{CategoryID: "cat1"}, nil)
			m.countries.On("Get", mock.Anything, "ru").Return(nil, notFound("country"))
		}},
		{"brand", func(m *productMocks, in *domain.ProductInput) {
			m.categories.On("Get", mock.Anything, "cat1").Return(&domain.Category{CategoryID: "cat1"}, nil)
			m.countries.On("Get", mock.Anything, "ru").Return(&domain.Country{CountryID: "ru"}, nil)
			brandID := "b1"
			in.BrandID = &brandID
			m.brands.On("Get", mock.Anything, "b1").Return(nil, notFound("brand"))
		}},
		{"manufacturer", func(m *productMocks, in *domain.ProductInput) {
			m.categories.On("Get", mock.Anything, "cat1").Return(&domain.Category{CategoryID: "cat1"}, nil)
			m.countries.On("Get", mock.Anything, "ru").Return(&domain.Country{CountryID: "ru"}, nil)
			manufacturerID := "m1"
			in.ManufacturerID = &manufacturerID
			m.manufacturers.On("Get", mock.Anything, "m1").Return(nil, notFound("manufacturer"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newProductService()
			in := validInput()
			tt.setup(m, &in)

			_, err := svc.Create(context.Background(), in)

			// The missing row is the caller's input, so this is a bad
			// request, not a 404.
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrBadRequest))
			assert.False(t, errors.Is(err, domain.ErrNotFound))
			m.repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
		})
	}
}

func TestProductUpdate_UnknownProduct(t *testing.T) {
	svc, m := newProductService()
	m.repo.On("Get", mock.Anything, "p1").Return(nil, notFound("product"))

	_, err := svc.Update(context.Background(), "p1", validInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProductUpdate_ReplacesItem(t *testing.T) {
	svc, m := newProductService()
	m.repo.On("Get", mock.Anything, "p1").Return(&domain.Product{ProductID: "p1", Name: "Old"}, nil)
	m.categories.On("Get", mock.Anything, "cat1").Return(&domain.Category{CategoryID: "cat1"}, nil)
	m.countries.On("Get", mock.Anything, "ru").Return(&domain.Country{CountryID: "ru"}, nil)
	m.repo.On("Put", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.ProductID == "p1" && p.Name == "Milk 3.2%"
	})).Return(nil)

	p, err := svc.Update(context.Background(), "p1", validInput())

	require.NoError(t, err)
	assert.Equal(t, "p1", p.ProductID)
	m.repo.AssertExpectations(t)
}

func TestProductList_ActiveOnly(t *testing.T) {
	svc, m := newProductService()
	m.repo.On("ScanActive", mock.Anything).Return([]domain.Product{
		{ProductID: "p1", IsActive: true},
	}, nil)

	ps, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "p1", ps[0].ProductID)
}

func TestProductDelete_Idempotent(t *testing.T) {
	svc, m := newProductService()
	m.repo.On("HardDelete", mock.Anything, "p1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "p1"))
	require.NoError(t, svc.Delete(context.Background(), "p1"))
}
