package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/repository"
)

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	ttl      time.Duration
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionRepository, ttl time.Duration, logger *zap.Logger) *UseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
	}
}

// Login resolves the email to a stored user and opens a session. The email
// match is exact and case-sensitive; the password is only checked for
// presence, never verified against anything.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, nil, err
	}

	uc.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, session, nil
}

// Signup registers a new user with empty skill sets and public visibility.
func (uc *UseCase) Signup(ctx context.Context, name, email, password, location string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidPayload
	}

	user := &domain.User{
		Name:          name,
		Email:         email,
		Location:      location,
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
		Availability:  []string{},
		IsPublic:      true,
		Rating:        0,
		ReviewCount:   0,
		JoinedAt:      time.Now().UTC(),
	}

	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("user registered", zap.String("user_id", created.ID))
	return created, nil
}

// Logout discards the session. Stored users are not touched.
func (uc *UseCase) Logout(ctx context.Context, token string) error {
	return uc.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token to its user. Expired sessions are
// removed and reported as unauthorized.
func (uc *UseCase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidCredentials
	}

	session, err := uc.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, token)
		return nil, domain.ErrInvalidCredentials
	}

	return uc.users.GetByID(ctx, session.UserID)
}
