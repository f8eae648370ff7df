package admin

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/internal/infrastructure/snapshot"
	"github.com/skillswap/backend/repository"
	boltRepo "github.com/skillswap/backend/repository/bolt"
	reviewUC "github.com/skillswap/backend/usecase/review"
	swapUC "github.com/skillswap/backend/usecase/swap"
)

type fixture struct {
	uc       *UseCase
	swapper  *swapUC.UseCase
	reviewer *reviewUC.UseCase
	users    repository.UserRepository
	swaps    repository.SwapRequestRepository
	reviews  repository.ReviewRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := snapshot.Open(filepath.Join(t.TempDir(), "skillswap.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	users := boltRepo.NewUserRepository(store)
	swaps := boltRepo.NewSwapRequestRepository(store)
	reviews := boltRepo.NewReviewRepository(store)
	reviewer := reviewUC.New(reviews, swaps, users, nil)
	return &fixture{
		uc:       New(users, swaps, reviews, reviewer, nil),
		swapper:  swapUC.New(swaps, users, nil),
		reviewer: reviewer,
		users:    users,
		swaps:    swaps,
		reviews:  reviews,
	}
}

func (f *fixture) addUser(t *testing.T, name string, offered, wanted []string) *domain.User {
	t.Helper()
	user, err := f.users.Create(context.Background(), &domain.User{
		Name:          name,
		Email:         name + "@x.com",
		SkillsOffered: offered,
		SkillsWanted:  wanted,
		IsPublic:      true,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return user
}

func (f *fixture) completedSwap(t *testing.T, from, to *domain.User, offered, requested string) *domain.SwapRequest {
	t.Helper()
	ctx := context.Background()
	request, err := f.swapper.Propose(ctx, from.ID, to.ID, offered, requested, "")
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	if _, err := f.swapper.Respond(ctx, to.ID, request.ID, swapUC.DecisionAccept); err != nil {
		t.Fatalf("accept: %v", err)
	}
	completed, err := f.swapper.Complete(ctx, from.ID, request.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	return completed
}

func TestBanHidesUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	member := f.addUser(t, "member", nil, nil)

	banned, err := f.uc.Ban(ctx, member.ID)
	if err != nil {
		t.Fatalf("ban: %v", err)
	}
	if banned.IsPublic {
		t.Error("expected banned user to become private")
	}

	stored, err := f.users.GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("get banned user: %v", err)
	}
	if stored.IsPublic {
		t.Error("expected ban to persist")
	}

	if _, err := f.uc.Ban(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("ban missing user: expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addUser(t, "a", []string{"Go"}, []string{"Piano"})
	b := f.addUser(t, "b", []string{"Piano"}, []string{"Go"})
	c := f.addUser(t, "c", []string{"Chess"}, []string{"Go"})

	// a<->b: both review each other. a<->c: c reviews a.
	swapAB := f.completedSwap(t, a, b, "Go", "Go")
	swapAC := f.completedSwap(t, a, c, "Go", "Go")
	if _, err := f.reviewer.Submit(ctx, a.ID, swapAB.ID, 5, ""); err != nil {
		t.Fatalf("review a->b: %v", err)
	}
	if _, err := f.reviewer.Submit(ctx, b.ID, swapAB.ID, 2, ""); err != nil {
		t.Fatalf("review b->a: %v", err)
	}
	if _, err := f.reviewer.Submit(ctx, c.ID, swapAC.ID, 4, ""); err != nil {
		t.Fatalf("review c->a: %v", err)
	}

	if err := f.uc.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := f.users.GetByID(ctx, b.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected deleted user to be gone, got %v", err)
	}

	swaps, err := f.swaps.List(ctx)
	if err != nil {
		t.Fatalf("list swaps: %v", err)
	}
	if len(swaps) != 1 || swaps[0].ID != swapAC.ID {
		t.Errorf("expected only the a<->c swap to survive, got %d swaps", len(swaps))
	}

	reviews, err := f.reviews.List(ctx)
	if err != nil {
		t.Fatalf("list reviews: %v", err)
	}
	if len(reviews) != 1 || reviews[0].FromUser != c.ID {
		t.Errorf("expected only c's review to survive, got %d reviews", len(reviews))
	}

	// a lost b's 2-star review; only c's 4-star remains.
	refreshed, err := f.users.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("get a: %v", err)
	}
	if refreshed.Rating != 4.0 || refreshed.ReviewCount != 1 {
		t.Errorf("expected a's aggregate recomputed to 4.0/1, got %.1f/%d", refreshed.Rating, refreshed.ReviewCount)
	}

	if err := f.uc.Delete(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("delete missing user: expected ErrUserNotFound, got %v", err)
	}
}

func TestGenerateReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addUser(t, "a", []string{"Go", "SQL"}, []string{"Piano"})
	b := f.addUser(t, "b", []string{"Piano"}, []string{"Go"})
	admin, err := f.users.Create(ctx, &domain.User{Name: "admin", Email: "admin@x.com", IsAdmin: true})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	swap := f.completedSwap(t, a, b, "Go", "Go")
	if _, err := f.swapper.Propose(ctx, b.ID, a.ID, "Piano", "Piano", ""); err != nil {
		t.Fatalf("propose pending swap: %v", err)
	}
	if _, err := f.reviewer.Submit(ctx, a.ID, swap.ID, 5, ""); err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := f.reviewer.Submit(ctx, b.ID, swap.ID, 4, ""); err != nil {
		t.Fatalf("review: %v", err)
	}

	report, err := f.uc.GenerateReport(ctx)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.TotalUsers != 2 {
		t.Errorf("expected admins excluded from total_users, got %d", report.TotalUsers)
	}
	for _, summary := range report.Users {
		if summary.Email == admin.Email {
			t.Error("expected admin excluded from user summaries")
		}
	}
	if report.TotalSwaps != 2 || report.CompletedSwaps != 1 || report.PendingSwaps != 1 {
		t.Errorf("unexpected swap totals: total=%d completed=%d pending=%d",
			report.TotalSwaps, report.CompletedSwaps, report.PendingSwaps)
	}
	if report.AverageRating != "4.50" {
		t.Errorf("expected average rating 4.50, got %s", report.AverageRating)
	}
	if report.Users[0].SkillsOffered != 2 {
		t.Errorf("expected skill counts in summaries, got %d", report.Users[0].SkillsOffered)
	}
}

func TestGenerateReportFallbacks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.addUser(t, "a", []string{"Go"}, []string{"Piano"})
	b := f.addUser(t, "b", []string{"Piano"}, []string{"Go"})

	if _, err := f.swapper.Propose(ctx, a.ID, b.ID, "Go", "Go", ""); err != nil {
		t.Fatalf("propose: %v", err)
	}
	// Remove a behind the swap's back so the report sees a dangling reference.
	if err := f.users.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	report, err := f.uc.GenerateReport(ctx)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.AverageRating != "N/A" {
		t.Errorf("expected N/A average without reviews, got %s", report.AverageRating)
	}
	if len(report.SwapRequests) != 1 || report.SwapRequests[0].FromUser != "Unknown" {
		t.Errorf("expected dangling sender rendered as Unknown, got %+v", report.SwapRequests)
	}
	if report.SwapRequests[0].ToUser != "b" {
		t.Errorf("expected resolvable recipient name, got %s", report.SwapRequests[0].ToUser)
	}
}
