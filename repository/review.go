package repository

import (
	"context"

	"github.com/skillswap/backend/domain"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	// ListByTarget returns the reviews written about the given user.
	ListByTarget(ctx context.Context, userID string) ([]domain.Review, error)
	ListBySwap(ctx context.Context, swapID string) ([]domain.Review, error)
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	// DeleteByUser removes every review the user wrote or received and
	// returns the IDs of other users whose received reviews were removed.
	DeleteByUser(ctx context.Context, userID string) ([]string, error)
}
