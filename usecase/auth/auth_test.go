package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/internal/infrastructure/snapshot"
	boltRepo "github.com/skillswap/backend/repository/bolt"
)

func newUseCase(t *testing.T, ttl time.Duration) *UseCase {
	t.Helper()
	store, err := snapshot.Open(filepath.Join(t.TempDir(), "skillswap.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(
		boltRepo.NewUserRepository(store),
		boltRepo.NewSessionRepository(store, ttl),
		ttl,
		nil,
	)
}

func TestSignupThenLogin(t *testing.T) {
	uc := newUseCase(t, time.Hour)
	ctx := context.Background()

	created, err := uc.Signup(ctx, "Dana", "dana@x.com", "secret", "")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an identifier to be assigned")
	}
	if !created.IsPublic || created.Rating != 0 || created.ReviewCount != 0 {
		t.Errorf("unexpected defaults: %+v", created)
	}
	if len(created.SkillsOffered) != 0 || len(created.SkillsWanted) != 0 {
		t.Error("expected empty skill sets on signup")
	}

	user, session, err := uc.Login(ctx, "dana@x.com", "anything")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("expected login to resolve the signed-up user, got %s vs %s", user.ID, created.ID)
	}
	if session.ID == "" || session.UserID != created.ID {
		t.Errorf("unexpected session: %+v", session)
	}
}

func TestLoginFailures(t *testing.T) {
	uc := newUseCase(t, time.Hour)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "Dana", "dana@x.com", "secret", ""); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, _, err := uc.Login(ctx, "unknown@x.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unregistered email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := uc.Login(ctx, "dana@x.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
	// Exact match only, no normalization.
	if _, _, err := uc.Login(ctx, "DANA@x.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("case-mismatched email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	uc := newUseCase(t, time.Hour)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "Dana", "dana@x.com", "secret", ""); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := uc.Signup(ctx, "Other", "dana@x.com", "secret", ""); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthenticateAndLogout(t *testing.T) {
	uc := newUseCase(t, time.Hour)
	ctx := context.Background()

	created, err := uc.Signup(ctx, "Dana", "dana@x.com", "secret", "")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, session, err := uc.Login(ctx, "dana@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	user, err := uc.Authenticate(ctx, session.ID)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, user.ID)
	}

	if err := uc.Logout(ctx, session.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := uc.Authenticate(ctx, session.ID); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials after logout, got %v", err)
	}
}

func TestAuthenticateExpiredSession(t *testing.T) {
	uc := newUseCase(t, time.Millisecond)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, "Dana", "dana@x.com", "secret", ""); err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, session, err := uc.Login(ctx, "dana@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := uc.Authenticate(ctx, session.ID); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for expired session, got %v", err)
	}
}
