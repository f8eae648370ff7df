package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/repository"
)

// Load populates an empty store with the demo dataset. A store that already
// holds users is left untouched.
func Load(ctx context.Context, users repository.UserRepository, swaps repository.SwapRequestRepository, reviews repository.ReviewRepository, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	existing, err := users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("store already initialized, skipping seed", zap.Int("users", len(existing)))
		return nil
	}

	demoUsers, demoSwaps, demoReviews := Demo()

	ids := make(map[string]string, len(demoUsers))
	for i := range demoUsers {
		created, err := users.Create(ctx, &demoUsers[i])
		if err != nil {
			return err
		}
		ids[demoUsers[i].Email] = created.ID
	}

	swapIDs := make([]string, 0, len(demoSwaps))
	for i := range demoSwaps {
		demoSwaps[i].FromUser = ids[demoSwaps[i].FromUser]
		demoSwaps[i].ToUser = ids[demoSwaps[i].ToUser]
		wantStatus := demoSwaps[i].Status
		wantCompletedAt := demoSwaps[i].CompletedAt

		created, err := swaps.Create(ctx, &demoSwaps[i])
		if err != nil {
			return err
		}
		// Creation forces pending; restore the seeded status afterwards.
		if wantStatus != domain.StatusPending {
			created.Status = wantStatus
			created.CompletedAt = wantCompletedAt
			if err := swaps.Update(ctx, created); err != nil {
				return err
			}
		}
		swapIDs = append(swapIDs, created.ID)
	}

	for i := range demoReviews {
		demoReviews[i].SwapID = swapIDs[len(swapIDs)-1]
		demoReviews[i].FromUser = ids[demoReviews[i].FromUser]
		demoReviews[i].ToUser = ids[demoReviews[i].ToUser]
		if _, err := reviews.Create(ctx, &demoReviews[i]); err != nil {
			return err
		}
	}

	logger.Info("demo data seeded",
		zap.Int("users", len(demoUsers)),
		zap.Int("swap_requests", len(demoSwaps)),
		zap.Int("reviews", len(demoReviews)))
	return nil
}

// Demo returns the demo dataset. Swap and review references use emails as
// placeholders; Load rewrites them to assigned IDs. User aggregates are
// consistent with the seeded reviews.
func Demo() ([]domain.User, []domain.SwapRequest, []domain.Review) {
	joined := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}

	users := []domain.User{
		{
			Name:          "Maya Fernandes",
			Email:         "maya@example.com",
			Location:      "Lisbon",
			SkillsOffered: []string{"React", "TypeScript", "Node.js"},
			SkillsWanted:  []string{"Python", "Machine Learning"},
			Availability:  []string{"Weekends", "Evenings"},
			IsPublic:      true,
			JoinedAt:      joined("2024-01-15"),
		},
		{
			Name:          "Ravi Shankar",
			Email:         "ravi@example.com",
			Location:      "Pune",
			SkillsOffered: []string{"Photoshop", "UI Design", "Figma"},
			SkillsWanted:  []string{"React", "Frontend Development"},
			Availability:  []string{"Weekdays", "Evenings"},
			IsPublic:      true,
			JoinedAt:      joined("2024-02-20"),
		},
		{
			Name:          "Elena Petrova",
			Email:         "elena@example.com",
			Location:      "Sofia",
			SkillsOffered: []string{"Python", "Data Science", "Excel"},
			SkillsWanted:  []string{"Photoshop", "Video Editing"},
			Availability:  []string{"Weekends"},
			IsPublic:      true,
			Rating:        5.0,
			ReviewCount:   1,
			JoinedAt:      joined("2024-03-10"),
		},
		{
			Name:          "Tom Okafor",
			Email:         "tom@example.com",
			Location:      "Lagos",
			SkillsOffered: []string{"Video Editing", "Motion Graphics"},
			SkillsWanted:  []string{"Data Science", "Excel"},
			Availability:  []string{"Evenings", "Weekends"},
			IsPublic:      true,
			Rating:        4.0,
			ReviewCount:   1,
			JoinedAt:      joined("2024-02-05"),
		},
		{
			Name:          "Admin User",
			Email:         "admin@example.com",
			SkillsOffered: []string{},
			SkillsWanted:  []string{},
			Availability:  []string{},
			IsPublic:      false,
			IsAdmin:       true,
			JoinedAt:      joined("2024-01-01"),
		},
	}

	now := time.Now().UTC()
	swaps := []domain.SwapRequest{
		{
			FromUser:       "maya@example.com",
			ToUser:         "ravi@example.com",
			OfferedSkill:   "React",
			RequestedSkill: "React",
			Message:        "Happy to pair on React basics whenever suits you.",
			Status:         domain.StatusPending,
		},
		{
			FromUser:       "elena@example.com",
			ToUser:         "tom@example.com",
			OfferedSkill:   "Data Science",
			RequestedSkill: "Excel",
			Message:        "Would love to trade a few sessions.",
			Status:         domain.StatusCompleted,
			CompletedAt:    &now,
		},
	}

	reviews := []domain.Review{
		{
			FromUser: "elena@example.com",
			ToUser:   "tom@example.com",
			Rating:   4,
			Feedback: "Flexible with scheduling and a pleasure to swap with.",
		},
		{
			FromUser: "tom@example.com",
			ToUser:   "elena@example.com",
			Rating:   5,
			Feedback: "Excellent introduction to pandas and notebooks.",
		},
	}

	return users, swaps, reviews
}
