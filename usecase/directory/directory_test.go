package directory

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/internal/infrastructure/snapshot"
	"github.com/skillswap/backend/repository"
	boltRepo "github.com/skillswap/backend/repository/bolt"
)

func newFixture(t *testing.T, pageSize int) (*UseCase, repository.UserRepository) {
	t.Helper()
	store, err := snapshot.Open(filepath.Join(t.TempDir(), "skillswap.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	users := boltRepo.NewUserRepository(store)
	reviews := boltRepo.NewReviewRepository(store)
	return New(users, reviews, pageSize, nil), users
}

func seedUser(t *testing.T, users repository.UserRepository, user domain.User) *domain.User {
	t.Helper()
	created, err := users.Create(context.Background(), &user)
	if err != nil {
		t.Fatalf("seed user %s: %v", user.Name, err)
	}
	return created
}

func TestListExcludesViewerPrivateAndAdmins(t *testing.T) {
	uc, users := newFixture(t, 10)
	ctx := context.Background()

	viewer := seedUser(t, users, domain.User{Name: "Viewer", Email: "v@x.com", IsPublic: true})
	seedUser(t, users, domain.User{Name: "Public", Email: "p@x.com", IsPublic: true})
	seedUser(t, users, domain.User{Name: "Private", Email: "h@x.com", IsPublic: false})
	seedUser(t, users, domain.User{Name: "Admin", Email: "a@x.com", IsPublic: true, IsAdmin: true})

	page, err := uc.List(ctx, Filter{Viewer: viewer.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 1 || len(page.Users) != 1 || page.Users[0].Name != "Public" {
		t.Errorf("expected only the public member, got %+v", page.Users)
	}
}

func TestListSearchAndAvailability(t *testing.T) {
	uc, users := newFixture(t, 10)
	ctx := context.Background()

	seedUser(t, users, domain.User{
		Name: "Gopher", Email: "g@x.com", IsPublic: true,
		SkillsOffered: []string{"Go"}, Availability: []string{"Weekends"},
	})
	seedUser(t, users, domain.User{
		Name: "Painter", Email: "p@x.com", IsPublic: true,
		SkillsWanted: []string{"Watercolor"}, Availability: []string{"Evenings"},
	})

	page, err := uc.List(ctx, Filter{Search: "go"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 1 || page.Users[0].Name != "Gopher" {
		t.Errorf("search go: expected Gopher, got %+v", page.Users)
	}

	page, err = uc.List(ctx, Filter{Search: "watercolor"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 1 || page.Users[0].Name != "Painter" {
		t.Errorf("search by wanted skill: expected Painter, got %+v", page.Users)
	}

	page, err = uc.List(ctx, Filter{Availability: "weekends"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 1 || page.Users[0].Name != "Gopher" {
		t.Errorf("availability filter: expected Gopher, got %+v", page.Users)
	}

	page, err = uc.List(ctx, Filter{Availability: "all"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("availability all: expected 2 members, got %d", page.Total)
	}
}

func TestListPagination(t *testing.T) {
	uc, users := newFixture(t, 4)
	ctx := context.Background()

	for _, name := range []string{"u1", "u2", "u3", "u4", "u5", "u6"} {
		seedUser(t, users, domain.User{Name: name, Email: name + "@x.com", IsPublic: true})
	}

	first, err := uc.List(ctx, Filter{Page: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if first.Total != 6 || first.TotalPages != 2 || len(first.Users) != 4 {
		t.Errorf("unexpected first page: total=%d pages=%d len=%d", first.Total, first.TotalPages, len(first.Users))
	}

	second, err := uc.List(ctx, Filter{Page: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second.Users) != 2 {
		t.Errorf("expected 2 members on the last page, got %d", len(second.Users))
	}
	if second.Users[0].Name != "u5" {
		t.Errorf("expected listing order preserved, got %s first on page 2", second.Users[0].Name)
	}

	beyond, err := uc.List(ctx, Filter{Page: 5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(beyond.Users) != 0 {
		t.Errorf("expected empty page past the end, got %d", len(beyond.Users))
	}
}

func TestGetUserVisibility(t *testing.T) {
	uc, users := newFixture(t, 4)
	ctx := context.Background()

	hidden := seedUser(t, users, domain.User{Name: "Hidden", Email: "h@x.com", IsPublic: false})

	if _, err := uc.GetUser(ctx, "someone-else", hidden.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("private profile to stranger: expected ErrUserNotFound, got %v", err)
	}
	if _, err := uc.GetUser(ctx, hidden.ID, hidden.ID); err != nil {
		t.Errorf("private profile to self: expected success, got %v", err)
	}
	if _, err := uc.GetUser(ctx, "", "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("missing user: expected ErrUserNotFound, got %v", err)
	}
}
