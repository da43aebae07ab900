package category

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

// --- mocks ---

type mockCategoryStore struct{ mock.Mock }

func (m *mockCategoryStore) Put(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCategoryStore) Get(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if c, _ := args.Get(0).(*domain.Category); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryStore) Scan(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *mockCategoryStore) ListByParent(ctx context.Context, parentID string) ([]domain.Category, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *mockCategoryStore) Update(ctx context.Context, categoryID string, updates map[string]interface{}) error {
	return m.Called(ctx, categoryID, updates).Error(0)
}
func (m *mockCategoryStore) ClearParent(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}
func (m *mockCategoryStore) HardDelete(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

// --- helpers ---

func ptr(s string) *string { return &s }

func notFoundErr(id string) error {
	return fmt.Errorf("category %s not found: %w", id, domain.ErrNotFound)
}

// chain builds the three-level tree A -> B -> C.
func chain() []domain.Category {
	return []domain.Category{
		{CategoryID: "A", Name: "electronics"},
		{CategoryID: "B", Name: "computers", ParentID: ptr("A")},
		{CategoryID: "C", Name: "laptops", ParentID: ptr("B")},
	}
}

// --- reads ---

func TestGetByID_DepthTruncation(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("Scan", mock.Anything).Return(chain(), nil)
	svc := NewService(repo)

	// depth=1: B materialized, C cut off with an empty (non-nil) child list.
	a, err := svc.GetByID(context.Background(), "A", 1)
	require.NoError(t, err)
	require.Len(t, a.Child, 1)
	assert.Equal(t, "B", a.Child[0].CategoryID)
	require.NotNil(t, a.Child[0].Child)
	assert.Empty(t, a.Child[0].Child)

	// depth=2: C appears, itself truncated.
	a, err = svc.GetByID(context.Background(), "A", 2)
	require.NoError(t, err)
	require.Len(t, a.Child, 1)
	require.Len(t, a.Child[0].Child, 1)
	assert.Equal(t, "C", a.Child[0].Child[0].CategoryID)
	assert.Empty(t, a.Child[0].Child[0].Child)

	// depth=0: no children at all.
	a, err = svc.GetByID(context.Background(), "A", 0)
	require.NoError(t, err)
	require.NotNil(t, a.Child)
	assert.Empty(t, a.Child)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("Scan", mock.Anything).Return([]domain.Category{}, nil)
	svc := NewService(repo)

	_, err := svc.GetByID(context.Background(), "nope", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetRootCategories(t *testing.T) {
	all := append(chain(), domain.Category{CategoryID: "D", Name: "food"})
	repo := &mockCategoryStore{}
	repo.On("Scan", mock.Anything).Return(all, nil)
	svc := NewService(repo)

	roots, err := svc.GetRootCategories(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, roots, 2)

	byID := map[string]*domain.Category{}
	for _, r := range roots {
		byID[r.CategoryID] = r
	}
	require.Contains(t, byID, "A")
	require.Contains(t, byID, "D")
	assert.Len(t, byID["A"].Child, 1)
	assert.Empty(t, byID["D"].Child)
}

// --- create ---

func TestCreate_RootCategory(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil)
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), domain.CreateCategoryRequest{Name: "electronics"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.CategoryID)
	assert.Nil(t, c.ParentID)
	require.NotNil(t, c.Child)
	assert.Empty(t, c.Child)
	repo.AssertExpectations(t)
}

func TestCreate_BadParent(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("Get", mock.Anything, "ghost").Return(nil, notFoundErr("ghost"))
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), domain.CreateCategoryRequest{
		Name:     "laptops",
		ParentID: ptr("ghost"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadParent))
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestCreate_WithParent(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("Get", mock.Anything, "A").Return(&domain.Category{CategoryID: "A"}, nil)
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), domain.CreateCategoryRequest{
		Name:     "computers",
		ParentID: ptr("A"),
	})
	require.NoError(t, err)
	require.NotNil(t, c.ParentID)
	assert.Equal(t, "A", *c.ParentID)
}

// --- update ---

func TestUpdate_SelfParentRejected(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("Get", mock.Anything, "A").Return(&domain.Category{CategoryID: "A", Name: "electronics"}, nil)
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "A", domain.UpdateCategoryRequest{ParentID: ptr("A")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCategoryOwnParent))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_UnknownID(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("Get", mock.Anything, "nope").Return(nil, notFoundErr("nope"))
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "nope", domain.UpdateCategoryRequest{Name: ptr("x")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdate_BadNewParent(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("Get", mock.Anything, "A").Return(&domain.Category{CategoryID: "A"}, nil)
	repo.On("Get", mock.Anything, "ghost").Return(nil, notFoundErr("ghost"))
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "A", domain.UpdateCategoryRequest{ParentID: ptr("ghost")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadParent))
}

func TestUpdate_NameAndParent_DepthZeroView(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("Get", mock.Anything, "B").Return(&domain.Category{CategoryID: "B", Name: "computers", ParentID: ptr("A")}, nil)
	repo.On("Get", mock.Anything, "D").Return(&domain.Category{CategoryID: "D", Name: "food"}, nil)
	repo.On("Update", mock.Anything, "B", map[string]interface{}{
		"name":      "hardware",
		"parent_id": "D",
	}).Return(nil)
	svc := NewService(repo)

	c, err := svc.Update(context.Background(), "B", domain.UpdateCategoryRequest{
		Name:     ptr("hardware"),
		ParentID: ptr("D"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hardware", c.Name)
	assert.Equal(t, "D", *c.ParentID)
	// Update never re-walks descendants.
	require.NotNil(t, c.Child)
	assert.Empty(t, c.Child)
	repo.AssertExpectations(t)
}

// --- delete ---

func TestDelete_PromotesChildren(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("ListByParent", mock.Anything, "A").Return([]domain.Category{
		{CategoryID: "B", ParentID: ptr("A")},
		{CategoryID: "C", ParentID: ptr("A")},
	}, nil)
	repo.On("ClearParent", mock.Anything, "B").Return(nil)
	repo.On("ClearParent", mock.Anything, "C").Return(nil)
	repo.On("HardDelete", mock.Anything, "A").Return(nil)
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), "A"))
	repo.AssertExpectations(t)
}

func TestDelete_UnknownID_IsSuccess(t *testing.T) {
	repo := &mockCategoryStore{}
	repo.On("ListByParent", mock.Anything, "nope").Return([]domain.Category{}, nil)
	repo.On("HardDelete", mock.Anything, "nope").Return(nil)
	svc := NewService(repo)

	assert.NoError(t, svc.Delete(context.Background(), "nope"))
}
