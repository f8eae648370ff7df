package bolt

import (
	"context"
	"time"

	"github.com/google/uuid"
	boltdb "go.etcd.io/bbolt"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/internal/infrastructure/snapshot"
	"github.com/skillswap/backend/repository"
)

type reviewRepository struct {
	store *snapshot.Store
}

// NewReviewRepository creates a snapshot-backed review repository.
func NewReviewRepository(store *snapshot.Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

func (r *reviewRepository) List(_ context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.store.View(func(tx *boltdb.Tx) error {
		var err error
		reviews, err = loadReviews(tx)
		return err
	})
	return reviews, err
}

func (r *reviewRepository) ListByTarget(_ context.Context, userID string) ([]domain.Review, error) {
	return r.filter(func(review domain.Review) bool {
		return review.ToUser == userID
	})
}

func (r *reviewRepository) ListBySwap(_ context.Context, swapID string) ([]domain.Review, error) {
	return r.filter(func(review domain.Review) bool {
		return review.SwapID == swapID
	})
}

func (r *reviewRepository) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if review == nil {
		return nil, domain.ErrInvalidPayload
	}
	created := *review
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now().UTC()

	err := r.store.Update(func(tx *boltdb.Tx) error {
		reviews, err := loadReviews(tx)
		if err != nil {
			return err
		}
		return saveReviews(tx, append(reviews, created))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *reviewRepository) DeleteByUser(_ context.Context, userID string) ([]string, error) {
	var affected []string
	err := r.store.Update(func(tx *boltdb.Tx) error {
		reviews, err := loadReviews(tx)
		if err != nil {
			return err
		}
		seen := make(map[string]bool)
		remaining := reviews[:0]
		for _, review := range reviews {
			if review.FromUser == userID || review.ToUser == userID {
				if review.ToUser != userID && !seen[review.ToUser] {
					seen[review.ToUser] = true
					affected = append(affected, review.ToUser)
				}
				continue
			}
			remaining = append(remaining, review)
		}
		return saveReviews(tx, remaining)
	})
	if err != nil {
		return nil, err
	}
	return affected, nil
}

func (r *reviewRepository) filter(keep func(domain.Review) bool) ([]domain.Review, error) {
	var matched []domain.Review
	err := r.store.View(func(tx *boltdb.Tx) error {
		reviews, err := loadReviews(tx)
		if err != nil {
			return err
		}
		for _, review := range reviews {
			if keep(review) {
				matched = append(matched, review)
			}
		}
		return nil
	})
	return matched, err
}

func loadReviews(tx *boltdb.Tx) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := snapshot.ReadCollection(tx, snapshot.BucketReviews, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func saveReviews(tx *boltdb.Tx, reviews []domain.Review) error {
	return snapshot.WriteCollection(tx, snapshot.BucketReviews, reviews)
}
