package user

import (
	"context"
	"fmt"
	"time"

	"github.com/go-shop-api/internal/domain"
)

const birthdayLayout = "2006-01-02"

type Service interface {
	// Get returns the user's own profile.
	Get(ctx context.Context, userID string) (*domain.User, error)

	// Update applies partial profile changes. The birthday can be set only
	// once; further attempts are rejected.
	Update(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.User, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type service struct {
	users userStore
}

func NewService(users userStore) Service {
	return &service{users: users}
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.Get(ctx, userID)
}

func (s *service) Update(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.User, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
		u.FirstName = req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
		u.LastName = req.LastName
	}
	if req.Birthday != nil {
		if u.Birthday != nil {
			return nil, fmt.Errorf("birthday can be changed just once: %w", domain.ErrBadRequest)
		}
		bd, err := time.Parse(birthdayLayout, *req.Birthday)
		if err != nil {
			return nil, fmt.Errorf("birthday must be in YYYY-MM-DD format: %w", domain.ErrBadRequest)
		}
		updates["birthday"] = bd.Format(time.RFC3339Nano)
		u.Birthday = &bd
	}

	if len(updates) == 0 {
		return u, nil
	}
	if err := s.users.Update(ctx, userID, updates); err != nil {
		return nil, err
	}
	return u, nil
}
