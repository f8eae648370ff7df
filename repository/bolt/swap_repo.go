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

type swapRepository struct {
	store *snapshot.Store
}

// NewSwapRequestRepository creates a snapshot-backed swap request repository.
func NewSwapRequestRepository(store *snapshot.Store) repository.SwapRequestRepository {
	return &swapRepository{store: store}
}

func (r *swapRepository) GetByID(_ context.Context, id string) (*domain.SwapRequest, error) {
	var found *domain.SwapRequest
	err := r.store.View(func(tx *boltdb.Tx) error {
		requests, err := loadSwaps(tx)
		if err != nil {
			return err
		}
		for i := range requests {
			if requests[i].ID == id {
				request := requests[i]
				found = &request
				return nil
			}
		}
		return domain.ErrSwapNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *swapRepository) List(_ context.Context) ([]domain.SwapRequest, error) {
	var requests []domain.SwapRequest
	err := r.store.View(func(tx *boltdb.Tx) error {
		var err error
		requests, err = loadSwaps(tx)
		return err
	})
	return requests, err
}

func (r *swapRepository) ListByUser(_ context.Context, userID string, direction repository.Direction) ([]domain.SwapRequest, error) {
	var matched []domain.SwapRequest
	err := r.store.View(func(tx *boltdb.Tx) error {
		requests, err := loadSwaps(tx)
		if err != nil {
			return err
		}
		for _, request := range requests {
			switch direction {
			case repository.DirectionSent:
				if request.FromUser == userID {
					matched = append(matched, request)
				}
			case repository.DirectionReceived:
				if request.ToUser == userID {
					matched = append(matched, request)
				}
			}
		}
		return nil
	})
	return matched, err
}

func (r *swapRepository) Create(_ context.Context, request *domain.SwapRequest) (*domain.SwapRequest, error) {
	if request == nil {
		return nil, domain.ErrInvalidPayload
	}
	created := *request
	created.ID = uuid.NewString()
	// Status is forced regardless of what the caller supplied.
	created.Status = domain.StatusPending
	created.CreatedAt = time.Now().UTC()
	created.CompletedAt = nil

	err := r.store.Update(func(tx *boltdb.Tx) error {
		requests, err := loadSwaps(tx)
		if err != nil {
			return err
		}
		return saveSwaps(tx, append(requests, created))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *swapRepository) Update(_ context.Context, request *domain.SwapRequest) error {
	if request == nil || request.ID == "" {
		return domain.ErrInvalidPayload
	}
	return r.store.Update(func(tx *boltdb.Tx) error {
		requests, err := loadSwaps(tx)
		if err != nil {
			return err
		}
		for i := range requests {
			if requests[i].ID == request.ID {
				requests[i] = *request
				return saveSwaps(tx, requests)
			}
		}
		return domain.ErrSwapNotFound
	})
}

func (r *swapRepository) Delete(_ context.Context, id string) error {
	return r.store.Update(func(tx *boltdb.Tx) error {
		requests, err := loadSwaps(tx)
		if err != nil {
			return err
		}
		remaining := requests[:0]
		removed := false
		for _, request := range requests {
			if request.ID == id {
				removed = true
				continue
			}
			remaining = append(remaining, request)
		}
		if !removed {
			return domain.ErrSwapNotFound
		}
		return saveSwaps(tx, remaining)
	})
}

func (r *swapRepository) DeleteByUser(_ context.Context, userID string) error {
	return r.store.Update(func(tx *boltdb.Tx) error {
		requests, err := loadSwaps(tx)
		if err != nil {
			return err
		}
		remaining := requests[:0]
		for _, request := range requests {
			if request.FromUser == userID || request.ToUser == userID {
				continue
			}
			remaining = append(remaining, request)
		}
		return saveSwaps(tx, remaining)
	})
}

func loadSwaps(tx *boltdb.Tx) ([]domain.SwapRequest, error) {
	var requests []domain.SwapRequest
	if err := snapshot.ReadCollection(tx, snapshot.BucketSwaps, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func saveSwaps(tx *boltdb.Tx, requests []domain.SwapRequest) error {
	return snapshot.WriteCollection(tx, snapshot.BucketSwaps, requests)
}
