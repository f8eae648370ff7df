package review

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/repository"
)

type UseCase struct {
	reviews repository.ReviewRepository
	swaps   repository.SwapRequestRepository
	users   repository.UserRepository
	logger  *zap.Logger
}

func New(reviews repository.ReviewRepository, swaps repository.SwapRequestRepository, users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		reviews: reviews,
		swaps:   swaps,
		users:   users,
		logger:  logger,
	}
}

// Submit records the actor's review of their counterpart on a completed
// swap and folds it into the counterpart's aggregate rating. One review per
// side per swap.
func (uc *UseCase) Submit(ctx context.Context, actorID, swapID string, rating int, feedback string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	swap, err := uc.swaps.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	targetID, ok := swap.Counterpart(actorID)
	if !ok {
		return nil, domain.ErrNotParticipant
	}
	if swap.Status != domain.StatusCompleted {
		return nil, domain.ErrInvalidTransition
	}

	existing, err := uc.reviews.ListBySwap(ctx, swapID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].FromUser == actorID {
			return nil, domain.ErrDuplicateReview
		}
	}

	if feedback == "" {
		feedback = fmt.Sprintf("Great experience swapping %s for %s!", swap.OfferedSkill, swap.RequestedSkill)
	}

	created, err := uc.reviews.Create(ctx, &domain.Review{
		SwapID:   swapID,
		FromUser: actorID,
		ToUser:   targetID,
		Rating:   rating,
		Feedback: feedback,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.Recalculate(ctx, targetID); err != nil {
		return nil, err
	}

	uc.logger.Info("review submitted",
		zap.String("swap_id", swapID),
		zap.String("target", targetID),
		zap.Int("rating", rating))
	return created, nil
}

// Recalculate recomputes a user's aggregate rating from the full review
// set. The result is independent of the order reviews were recorded in:
// rating is the mean rounded to one decimal, review count is the set size.
func (uc *UseCase) Recalculate(ctx context.Context, userID string) error {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	reviews, err := uc.reviews.ListByTarget(ctx, userID)
	if err != nil {
		return err
	}

	user.ReviewCount = len(reviews)
	if len(reviews) == 0 {
		user.Rating = 0
	} else {
		sum := 0
		for i := range reviews {
			sum += reviews[i].Rating
		}
		mean := float64(sum) / float64(len(reviews))
		user.Rating = math.Round(mean*10) / 10
	}

	return uc.users.Update(ctx, user)
}

// ListFor returns the reviews written about a user.
func (uc *UseCase) ListFor(ctx context.Context, userID string) ([]domain.Review, error) {
	return uc.reviews.ListByTarget(ctx, userID)
}
