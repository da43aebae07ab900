package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/id"
)

type Service interface {
	// GetRootCategories returns all parentless categories with children
	// materialized down to depth levels.
	GetRootCategories(ctx context.Context, depth int) ([]*domain.Category, error)
	GetByID(ctx context.Context, categoryID string, depth int) (*domain.Category, error)
	Create(ctx context.Context, req domain.CreateCategoryRequest) (*domain.Category, error)
	// Update changes name and/or parent. The returned node is a depth-0 view.
	Update(ctx context.Context, categoryID string, req domain.UpdateCategoryRequest) (*domain.Category, error)
	// Delete removes the category and promotes its direct children to root.
	// Deleting an unknown id is success, not an error.
	Delete(ctx context.Context, categoryID string) error
}

type categoryStore interface {
	Put(ctx context.Context, c *domain.Category) error
	Get(ctx context.Context, categoryID string) (*domain.Category, error)
	Scan(ctx context.Context) ([]domain.Category, error)
	ListByParent(ctx context.Context, parentID string) ([]domain.Category, error)
	Update(ctx context.Context, categoryID string, updates map[string]interface{}) error
	ClearParent(ctx context.Context, categoryID string) error
	HardDelete(ctx context.Context, categoryID string) error
}

type service struct {
	repo categoryStore
}

func NewService(repo categoryStore) Service {
	return &service{repo: repo}
}

func (s *service) GetRootCategories(ctx context.Context, depth int) ([]*domain.Category, error) {
	all, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	idx := buildIndex(all)

	roots := make([]*domain.Category, 0)
	for i := range all {
		if all[i].ParentID == nil {
			roots = append(roots, materialize(&all[i], idx, depth))
		}
	}
	return roots, nil
}

func (s *service) GetByID(ctx context.Context, categoryID string, depth int) (*domain.Category, error) {
	// One bulk fetch instead of a lookup per tree level.
	all, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].CategoryID == categoryID {
			return materialize(&all[i], buildIndex(all), depth), nil
		}
	}
	return nil, fmt.Errorf("category %s not found: %w", categoryID, domain.ErrNotFound)
}

func (s *service) Create(ctx context.Context, req domain.CreateCategoryRequest) (*domain.Category, error) {
	if req.ParentID != nil {
		if _, err := s.repo.Get(ctx, *req.ParentID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("category %s does not exist: %w", *req.ParentID, domain.ErrBadParent)
			}
			return nil, err
		}
	}

	c := &domain.Category{
		CategoryID: id.New(),
		Name:       req.Name,
		ParentID:   req.ParentID,
		Child:      []*domain.Category{},
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, categoryID string, req domain.UpdateCategoryRequest) (*domain.Category, error) {
	current, err := s.repo.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
		current.Name = *req.Name
	}
	if req.ParentID != nil {
		if *req.ParentID == categoryID {
			return nil, fmt.Errorf("category %s: %w", categoryID, domain.ErrCategoryOwnParent)
		}
		if _, err := s.repo.Get(ctx, *req.ParentID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("category %s does not exist: %w", *req.ParentID, domain.ErrBadParent)
			}
			return nil, err
		}
		updates["parent_id"] = *req.ParentID
		current.ParentID = req.ParentID
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, categoryID, updates); err != nil {
			return nil, err
		}
	}

	current.Child = []*domain.Category{}
	return current, nil
}

func (s *service) Delete(ctx context.Context, categoryID string) error {
	// Children survive as new roots; deletion never cascades.
	children, err := s.repo.ListByParent(ctx, categoryID)
	if err != nil {
		return err
	}
	for i := range children {
		if err := s.repo.ClearParent(ctx, children[i].CategoryID); err != nil {
			return err
		}
	}
	return s.repo.HardDelete(ctx, categoryID)
}

// buildIndex groups categories by parent id: the adjacency view of the table.
func buildIndex(all []domain.Category) map[string][]*domain.Category {
	idx := make(map[string][]*domain.Category)
	for i := range all {
		if p := all[i].ParentID; p != nil {
			idx[*p] = append(idx[*p], &all[i])
		}
	}
	return idx
}

// materialize copies the node and recursively attaches children down to the
// given depth. Past the cutoff Child is an empty list, never nil; that shape
// is part of the response contract.
func materialize(c *domain.Category, idx map[string][]*domain.Category, depth int) *domain.Category {
	node := &domain.Category{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		ParentID:   c.ParentID,
		Child:      []*domain.Category{},
	}
	if depth <= 0 {
		return node
	}
	for _, child := range idx[c.CategoryID] {
		node.Child = append(node.Child, materialize(child, idx, depth-1))
	}
	return node
}
