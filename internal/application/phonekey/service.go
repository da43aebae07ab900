package phonekey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/infrastructure/sns"
	pkgtoken "github.com/go-shop-api/internal/pkg/token"
)

const (
	// A fresh key must be verified within this window.
	initialTTL = 15 * time.Minute
	// Verification replaces the remaining window with this one, it is not added on top.
	verifiedTTL = 10 * time.Minute

	createLimit = 3
	limitWindow = time.Hour
)

type Service interface {
	// Create issues a new unverified key for the phone number, subject to the
	// per-phone creation limit (3 per trailing hour).
	Create(ctx context.Context, phone string) (*domain.PhoneKey, error)
	GetByKey(ctx context.Context, key string) (*domain.PhoneKey, error)
	// GetReadyToUseByKey is the single gate consumers call before acting on a
	// key: verified, unused, unexpired — or domain.ErrBadPhoneKey.
	GetReadyToUseByKey(ctx context.Context, key string) (*domain.PhoneKey, error)
	// Verify checks the confirmation code and, on success, marks the key
	// verified with a fresh 10-minute expiry.
	Verify(ctx context.Context, key, code string) (*domain.PhoneKey, error)
	// UseByKey consumes the key: a conditional mark-used that only one of any
	// concurrent callers can win. The losers get domain.ErrNotFound.
	UseByKey(ctx context.Context, key string) (*domain.PhoneKey, error)
}

type keyStore interface {
	Put(ctx context.Context, k *domain.PhoneKey) error
	GetByKey(ctx context.Context, key string) (*domain.PhoneKey, error)
	ListByPhoneSince(ctx context.Context, phone string, since time.Time) ([]domain.PhoneKey, error)
	Update(ctx context.Context, key string, updates map[string]interface{}) error
	MarkUsed(ctx context.Context, key string, usedAt time.Time) (*domain.PhoneKey, error)
}

// CodeChannel is the confirmation-code collaborator: it delivers a code for a
// freshly created key and validates submitted codes. In production this fronts
// a real SMS verification provider; Verify depends only on the boolean result.
type CodeChannel interface {
	SendCode(ctx context.Context, key *domain.PhoneKey) error
	CheckCode(ctx context.Context, key *domain.PhoneKey, code string) (bool, error)
}

// StaticCodeChannel accepts one fixed code and, when an SMS sender is wired,
// texts it to the key's phone number. Development use only.
type StaticCodeChannel struct {
	Code string
	SMS  sns.SMSSender // nil when SNS is not configured
}

func (c StaticCodeChannel) SendCode(ctx context.Context, key *domain.PhoneKey) error {
	if c.SMS == nil {
		return nil
	}
	return c.SMS.SendSMS(ctx, key.Phone, "Your confirmation code: "+c.Code)
}

func (c StaticCodeChannel) CheckCode(_ context.Context, _ *domain.PhoneKey, code string) (bool, error) {
	return code == c.Code, nil
}

type service struct {
	repo  keyStore
	codes CodeChannel
	now   func() time.Time
}

func NewService(repo keyStore, codes CodeChannel) Service {
	return &service{
		repo:  repo,
		codes: codes,
		now:   time.Now,
	}
}

func (s *service) Create(ctx context.Context, phone string) (*domain.PhoneKey, error) {
	now := s.now().UTC()

	// Soft limit: the count and the insert are two separate calls, so two
	// concurrent creates can both pass the check. Acceptable — this guards
	// against SMS abuse, it is not a security boundary.
	recent, err := s.repo.ListByPhoneSince(ctx, phone, now.Add(-limitWindow))
	if err != nil {
		return nil, err
	}
	if len(recent) >= createLimit {
		return nil, fmt.Errorf("phone key limit (%d per hour) exceeded for this number: %w",
			createLimit, domain.ErrRateLimited)
	}

	key, err := pkgtoken.NewPhoneKey()
	if err != nil {
		return nil, err
	}
	pk := &domain.PhoneKey{
		Key:       key,
		Phone:     phone,
		CreatedAt: now,
		ExpiresAt: now.Add(initialTTL),
	}
	if err := s.repo.Put(ctx, pk); err != nil {
		return nil, err
	}

	if err := s.codes.SendCode(ctx, pk); err != nil {
		slog.Warn("failed to send confirmation code", "phone", phone, "err", err)
	}
	return pk, nil
}

func (s *service) GetByKey(ctx context.Context, key string) (*domain.PhoneKey, error) {
	return s.repo.GetByKey(ctx, key)
}

func (s *service) GetReadyToUseByKey(ctx context.Context, key string) (*domain.PhoneKey, error) {
	pk, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("key is invalid: %w", domain.ErrBadPhoneKey)
		}
		return nil, err
	}
	if !pk.ReadyToUse(s.now().UTC()) {
		return nil, fmt.Errorf("key is not verified, already used or expired: %w", domain.ErrBadPhoneKey)
	}
	return pk, nil
}

func (s *service) Verify(ctx context.Context, key, code string) (*domain.PhoneKey, error) {
	pk, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("key is invalid: %w", domain.ErrBadPhoneKey)
		}
		return nil, err
	}

	now := s.now().UTC()
	// A key may be verified exactly once, while still in its unverified window.
	if pk.ExpiresAt.Before(now) || pk.IsVerified {
		return nil, fmt.Errorf("key is expired or already verified: %w", domain.ErrBadPhoneKey)
	}

	ok, err := s.codes.CheckCode(ctx, pk, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The key is untouched: the client may retry within the original window.
		return nil, &domain.BadConfirmationCodeError{Code: code}
	}

	expiresAt := now.Add(verifiedTTL)
	if err := s.repo.Update(ctx, key, map[string]interface{}{
		"is_verified": true,
		"verified_at": now,
		"expires_at":  expiresAt,
	}); err != nil {
		return nil, err
	}

	pk.IsVerified = true
	pk.VerifiedAt = &now
	pk.ExpiresAt = expiresAt
	return pk, nil
}

func (s *service) UseByKey(ctx context.Context, key string) (*domain.PhoneKey, error) {
	return s.repo.MarkUsed(ctx, key, s.now().UTC())
}
