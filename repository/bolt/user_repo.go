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

type userRepository struct {
	store *snapshot.Store
}

// NewUserRepository creates a snapshot-backed user repository.
func NewUserRepository(store *snapshot.Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	var found *domain.User
	err := r.store.View(func(tx *boltdb.Tx) error {
		users, err := loadUsers(tx)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID == id {
				user := users[i]
				found = &user
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	var found *domain.User
	err := r.store.View(func(tx *boltdb.Tx) error {
		users, err := loadUsers(tx)
		if err != nil {
			return err
		}
		// Exact, case-sensitive match. No normalization is performed.
		for i := range users {
			if users[i].Email == email {
				user := users[i]
				found = &user
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *userRepository) List(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.store.View(func(tx *boltdb.Tx) error {
		var err error
		users, err = loadUsers(tx)
		return err
	})
	return users, err
}

func (r *userRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrInvalidPayload
	}
	created := *user
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.JoinedAt.IsZero() {
		created.JoinedAt = time.Now().UTC()
	}

	err := r.store.Update(func(tx *boltdb.Tx) error {
		users, err := loadUsers(tx)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].Email == created.Email {
				return domain.ErrDuplicateEmail
			}
		}
		return saveUsers(tx, append(users, created))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *userRepository) Update(_ context.Context, user *domain.User) error {
	if user == nil || user.ID == "" {
		return domain.ErrInvalidPayload
	}
	return r.store.Update(func(tx *boltdb.Tx) error {
		users, err := loadUsers(tx)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = *user
				return saveUsers(tx, users)
			}
		}
		return domain.ErrUserNotFound
	})
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	return r.store.Update(func(tx *boltdb.Tx) error {
		users, err := loadUsers(tx)
		if err != nil {
			return err
		}
		remaining := users[:0]
		removed := false
		for _, user := range users {
			if user.ID == id {
				removed = true
				continue
			}
			remaining = append(remaining, user)
		}
		if !removed {
			return domain.ErrUserNotFound
		}
		return saveUsers(tx, remaining)
	})
}

func loadUsers(tx *boltdb.Tx) ([]domain.User, error) {
	var users []domain.User
	if err := snapshot.ReadCollection(tx, snapshot.BucketUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func saveUsers(tx *boltdb.Tx, users []domain.User) error {
	return snapshot.WriteCollection(tx, snapshot.BucketUsers, users)
}
