package admin

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/repository"
	reviewUC "github.com/skillswap/backend/usecase/review"
)

// Report is the downloadable platform summary.
type Report struct {
	GeneratedAt    time.Time     `json:"generated_at"`
	TotalUsers     int           `json:"total_users"`
	TotalSwaps     int           `json:"total_swaps"`
	CompletedSwaps int           `json:"completed_swaps"`
	PendingSwaps   int           `json:"pending_swaps"`
	AverageRating  string        `json:"average_rating"`
	Users          []UserSummary `json:"users"`
	SwapRequests   []SwapSummary `json:"swap_requests"`
}

type UserSummary struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	SkillsOffered int     `json:"skills_offered"`
	SkillsWanted  int     `json:"skills_wanted"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"review_count"`
	IsPublic      bool    `json:"is_public"`
}

type SwapSummary struct {
	FromUser       string            `json:"from_user"`
	ToUser         string            `json:"to_user"`
	OfferedSkill   string            `json:"offered_skill"`
	RequestedSkill string            `json:"requested_skill"`
	Status         domain.SwapStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

type UseCase struct {
	users   repository.UserRepository
	swaps   repository.SwapRequestRepository
	reviews repository.ReviewRepository
	ratings *reviewUC.UseCase
	logger  *zap.Logger
}

func New(users repository.UserRepository, swaps repository.SwapRequestRepository, reviews repository.ReviewRepository, ratings *reviewUC.UseCase, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:   users,
		swaps:   swaps,
		reviews: reviews,
		ratings: ratings,
		logger:  logger,
	}
}

// Ban hides a user from the directory by switching them to private.
func (uc *UseCase) Ban(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IsPublic = false
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	uc.logger.Info("user banned", zap.String("user_id", userID))
	return user, nil
}

// Delete purges a user together with every swap request and review that
// references them, then recomputes the ratings of users whose review set
// shrank.
func (uc *UseCase) Delete(ctx context.Context, userID string) error {
	if err := uc.users.Delete(ctx, userID); err != nil {
		return err
	}
	if err := uc.swaps.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	affected, err := uc.reviews.DeleteByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, target := range affected {
		if err := uc.ratings.Recalculate(ctx, target); err != nil {
			return err
		}
	}
	uc.logger.Info("user deleted",
		zap.String("user_id", userID),
		zap.Int("ratings_recomputed", len(affected)))
	return nil
}

// GenerateReport assembles the platform activity report. Dangling user
// references on swap requests render as "Unknown".
func (uc *UseCase) GenerateReport(ctx context.Context) (*Report, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	swaps, err := uc.swaps.List(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.reviews.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].Name
	}
	nameOf := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return "Unknown"
	}

	report := &Report{
		GeneratedAt:   time.Now().UTC(),
		TotalSwaps:    len(swaps),
		AverageRating: "N/A",
	}

	for i := range users {
		if users[i].IsAdmin {
			continue
		}
		report.TotalUsers++
		report.Users = append(report.Users, UserSummary{
			Name:          users[i].Name,
			Email:         users[i].Email,
			SkillsOffered: len(users[i].SkillsOffered),
			SkillsWanted:  len(users[i].SkillsWanted),
			Rating:        users[i].Rating,
			ReviewCount:   users[i].ReviewCount,
			IsPublic:      users[i].IsPublic,
		})
	}

	for i := range swaps {
		switch swaps[i].Status {
		case domain.StatusCompleted:
			report.CompletedSwaps++
		case domain.StatusPending:
			report.PendingSwaps++
		}
		report.SwapRequests = append(report.SwapRequests, SwapSummary{
			FromUser:       nameOf(swaps[i].FromUser),
			ToUser:         nameOf(swaps[i].ToUser),
			OfferedSkill:   swaps[i].OfferedSkill,
			RequestedSkill: swaps[i].RequestedSkill,
			Status:         swaps[i].Status,
			CreatedAt:      swaps[i].CreatedAt,
		})
	}

	if len(reviews) > 0 {
		sum := 0
		for i := range reviews {
			sum += reviews[i].Rating
		}
		report.AverageRating = fmt.Sprintf("%.2f", float64(sum)/float64(len(reviews)))
	}

	return report, nil
}
