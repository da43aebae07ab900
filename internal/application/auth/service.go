package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-shop-api/internal/application/phonekey"
	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	// Register creates a user for the phone bound to a ready-to-use phone key,
	// consumes the key, and returns the user with a bearer token.
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, string, error)
	// Login exchanges phone + password for a bearer token. Failures are always
	// domain.ErrBadCredentials, whether the phone is unknown or the password
	// wrong — no user-existence leak.
	Login(ctx context.Context, req domain.LoginRequest) (string, error)
	// ResetPassword sets a new password for the user owning the phone bound to
	// a ready-to-use phone key, consuming the key.
	ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	// CheckPhone reports whether a user with this phone exists. Unlike login,
	// this endpoint deliberately reveals existence (registration UX).
	CheckPhone(ctx context.Context, phone string) (bool, error)
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type tokenSigner interface {
	Sign(userID, role string) (string, error)
}

type service struct {
	users     userStore
	phoneKeys phonekey.Service
	signer    tokenSigner
}

func NewService(users userStore, phoneKeys phonekey.Service, signer tokenSigner) Service {
	return &service{users: users, phoneKeys: phoneKeys, signer: signer}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, string, error) {
	pk, err := s.phoneKeys.GetReadyToUseByKey(ctx, req.PhoneKey)
	if err != nil {
		return nil, "", err
	}

	if _, err := s.users.GetByPhone(ctx, pk.Phone); err == nil {
		return nil, "", fmt.Errorf("user with this phone number already exists: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &domain.User{
		UserID:       id.New(),
		Phone:        pk.Phone,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Put(ctx, u); err != nil {
		return nil, "", err
	}

	// Re-validated atomically: the conditional mark-used fails for everyone
	// but the first consumer, so no token is issued on a lost race.
	if _, err := s.phoneKeys.UseByKey(ctx, pk.Key); err != nil {
		return nil, "", err
	}

	bearer, err := s.signer.Sign(u.UserID, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, bearer, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	u, err := s.users.GetByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrBadCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return "", domain.ErrBadCredentials
	}
	return s.signer.Sign(u.UserID, u.Role)
}

func (s *service) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	pk, err := s.phoneKeys.GetReadyToUseByKey(ctx, req.PhoneKey)
	if err != nil {
		return err
	}

	u, err := s.users.GetByPhone(ctx, pk.Phone)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.Update(ctx, u.UserID, map[string]interface{}{"password_hash": string(hash)}); err != nil {
		return err
	}

	_, err = s.phoneKeys.UseByKey(ctx, pk.Key)
	return err
}

func (s *service) CheckPhone(ctx context.Context, phone string) (bool, error) {
	_, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
