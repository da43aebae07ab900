package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-shop-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	return m.Called(ctx, userID, updates).Error(0)
}

func strPtr(s string) *string { return &s }

func storedUser() *domain.User {
	return &domain.User{UserID: "u1", Phone: "+79995551234", Role: domain.RoleUser}
}

func TestGet(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "u1").Return(storedUser(), nil)

	u, err := NewService(repo).Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)
}

func TestUpdate_Names(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "u1").Return(storedUser(), nil)
	repo.On("Update", mock.Anything, "u1", map[string]interface{}{
		"first_name": "Ivan",
		"last_name":  "Petrov",
	}).Return(nil)

	u, err := NewService(repo).Update(context.Background(), "u1", domain.UpdateUserRequest{
		FirstName: strPtr("Ivan"),
		LastName:  strPtr("Petrov"),
	})

	require.NoError(t, err)
	require.NotNil(t, u.FirstName)
	assert.Equal(t, "Ivan", *u.FirstName)
	require.NotNil(t, u.LastName)
	assert.Equal(t, "Petrov", *u.LastName)
	repo.AssertExpectations(t)
}

func TestUpdate_BirthdayFirstTime(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "u1").Return(storedUser(), nil)
	repo.On("Update", mock.Anything, "u1", mock.MatchedBy(func(updates map[string]interface{}) bool {
		return updates["birthday"] == "1990-05-01T00:00:00Z"
	})).Return(nil)

	u, err := NewService(repo).Update(context.Background(), "u1", domain.UpdateUserRequest{
		Birthday: strPtr("1990-05-01"),
	})

	require.NoError(t, err)
	require.NotNil(t, u.Birthday)
	assert.Equal(t, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), *u.Birthday)
	repo.AssertExpectations(t)
}

func TestUpdate_BirthdayAlreadySet(t *testing.T) {
	bd := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	existing := storedUser()
	existing.Birthday = &bd

	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "u1").Return(existing, nil)

	_, err := NewService(repo).Update(context.Background(), "u1", domain.UpdateUserRequest{
		Birthday: strPtr("1991-06-02"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_BirthdayBadFormat(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "u1").Return(storedUser(), nil)

	_, err := NewService(repo).Update(context.Background(), "u1", domain.UpdateUserRequest{
		Birthday: strPtr("01.05.1990"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_NothingToChange(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "u1").Return(storedUser(), nil)

	u, err := NewService(repo).Update(context.Background(), "u1", domain.UpdateUserRequest{})

	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_UserMissing(t *testing.T) {
	repo := &mockUserStore{}
	repo.On("Get", mock.Anything, "u1").
		Return(nil, fmt.Errorf("user not found: %w", domain.ErrNotFound))

	_, err := NewService(repo).Update(context.Background(), "u1", domain.UpdateUserRequest{
		FirstName: strPtr("Ivan"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
