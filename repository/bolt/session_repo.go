package bolt

import (
	"context"
	"encoding/json"
	"time"

	boltdb "go.etcd.io/bbolt"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/internal/infrastructure/snapshot"
	"github.com/skillswap/backend/repository"
)

type sessionRepository struct {
	store *snapshot.Store
	ttl   time.Duration
}

// NewSessionRepository creates a snapshot-backed session repository.
// Sessions are keyed by token so a missing token is distinguishable from an
// empty record.
func NewSessionRepository(store *snapshot.Store, ttl time.Duration) repository.SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &sessionRepository{store: store, ttl: ttl}
}

func (r *sessionRepository) Get(_ context.Context, id string) (*domain.Session, error) {
	var session domain.Session
	err := r.store.View(func(tx *boltdb.Tx) error {
		raw := tx.Bucket(snapshot.BucketSessions).Get([]byte(id))
		if raw == nil {
			return domain.ErrSessionNotFound
		}
		return json.Unmarshal(raw, &session)
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Save(_ context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return domain.ErrInvalidPayload
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	if session.ExpiresAt.Before(session.CreatedAt) {
		session.ExpiresAt = session.CreatedAt.Add(r.ttl)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.store.Update(func(tx *boltdb.Tx) error {
		return tx.Bucket(snapshot.BucketSessions).Put([]byte(session.ID), payload)
	})
}

func (r *sessionRepository) Delete(_ context.Context, id string) error {
	return r.store.Update(func(tx *boltdb.Tx) error {
		return tx.Bucket(snapshot.BucketSessions).Delete([]byte(id))
	})
}
