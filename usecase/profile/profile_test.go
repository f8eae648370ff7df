package profile

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/internal/infrastructure/snapshot"
	"github.com/skillswap/backend/repository"
	boltRepo "github.com/skillswap/backend/repository/bolt"
)

func newFixture(t *testing.T) (*UseCase, repository.UserRepository) {
	t.Helper()
	store, err := snapshot.Open(filepath.Join(t.TempDir(), "skillswap.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	users := boltRepo.NewUserRepository(store)
	return New(users, nil), users
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestUpdateProfilePreservesProtectedFields(t *testing.T) {
	uc, users := newFixture(t)
	ctx := context.Background()

	joined := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	created, err := users.Create(ctx, &domain.User{
		Name:          "Dana",
		Email:         "dana@x.com",
		Location:      "Lisbon",
		SkillsOffered: []string{"Go"},
		SkillsWanted:  []string{"Piano"},
		IsPublic:      true,
		Rating:        4.5,
		ReviewCount:   2,
		JoinedAt:      joined,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	updated, err := uc.UpdateProfile(ctx, created.ID, Update{
		Name:          strPtr("Dana F."),
		SkillsOffered: []string{"Go", "SQL"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != created.ID || updated.Email != "dana@x.com" {
		t.Errorf("identity fields changed: %+v", updated)
	}
	if updated.Rating != 4.5 || updated.ReviewCount != 2 {
		t.Errorf("aggregate fields changed: rating=%.1f count=%d", updated.Rating, updated.ReviewCount)
	}
	if !updated.JoinedAt.Equal(joined) {
		t.Errorf("join date changed: %v", updated.JoinedAt)
	}
	if updated.Name != "Dana F." {
		t.Errorf("expected name applied, got %s", updated.Name)
	}
	if !reflect.DeepEqual(updated.SkillsOffered, []string{"Go", "SQL"}) {
		t.Errorf("expected offered skills replaced, got %v", updated.SkillsOffered)
	}
}

func TestUpdateProfilePartialPayloadKeepsOmittedFields(t *testing.T) {
	uc, users := newFixture(t)
	ctx := context.Background()

	created, err := users.Create(ctx, &domain.User{
		Name:         "Dana",
		Email:        "dana@x.com",
		Location:     "Lisbon",
		ProfilePhoto: "photo.jpg",
		Availability: []string{"Weekends"},
		IsPublic:     true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	updated, err := uc.UpdateProfile(ctx, created.ID, Update{IsPublic: boolPtr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.IsPublic {
		t.Error("expected visibility switched to private")
	}
	if updated.Location != "Lisbon" || updated.ProfilePhoto != "photo.jpg" {
		t.Errorf("omitted fields cleared: location=%q photo=%q", updated.Location, updated.ProfilePhoto)
	}
	if !reflect.DeepEqual(updated.Availability, []string{"Weekends"}) {
		t.Errorf("omitted availability changed: %v", updated.Availability)
	}

	// An explicit empty string still clears.
	updated, err = uc.UpdateProfile(ctx, created.ID, Update{Location: strPtr("")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Location != "" {
		t.Errorf("expected explicit empty location to clear, got %q", updated.Location)
	}
}

func TestUpdateProfileMissingUser(t *testing.T) {
	uc, _ := newFixture(t)

	if _, err := uc.UpdateProfile(context.Background(), "ghost", Update{Name: strPtr("X")}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
