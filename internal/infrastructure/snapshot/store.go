package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names for the four persisted collections.
var (
	BucketUsers    = []byte("users")
	BucketSwaps    = []byte("swap_requests")
	BucketReviews  = []byte("reviews")
	BucketSessions = []byte("sessions")
)

// CollectionKey is the single key each entity collection is stored under.
// A collection is always read in full and rewritten in full, preserving
// insertion order.
var CollectionKey = []byte("snapshot")

// Store wraps the BoltDB file that holds all persisted state.
type Store struct {
	db *bolt.DB
}

// Open initializes the BoltDB file and ensures all buckets exist.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{BucketUsers, BucketSwaps, BucketReviews, BucketSessions} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// View runs a read-only transaction.
func (s *Store) View(fn func(tx *bolt.Tx) error) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.View(fn)
}

// Update runs a read-write transaction. A returned error rolls the
// transaction back, leaving the stored snapshots untouched.
func (s *Store) Update(fn func(tx *bolt.Tx) error) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.Update(fn)
}

// ReadCollection decodes the collection stored in bucket into out.
// A missing value leaves out unchanged.
func ReadCollection(tx *bolt.Tx, bucket []byte, out interface{}) error {
	raw := tx.Bucket(bucket).Get(CollectionKey)
	if raw == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// WriteCollection replaces the collection stored in bucket with in.
func WriteCollection(tx *bolt.Tx, bucket []byte, in interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return tx.Bucket(bucket).Put(CollectionKey, payload)
}

// Counts summarizes the stored collections for health reporting.
type Counts struct {
	Users    int `json:"users"`
	Swaps    int `json:"swap_requests"`
	Reviews  int `json:"reviews"`
	Sessions int `json:"sessions"`
}

// Counts returns the number of records held in each snapshot.
func (s *Store) Counts() (Counts, error) {
	var counts Counts
	err := s.View(func(tx *bolt.Tx) error {
		var err error
		if counts.Users, err = collectionLen(tx, BucketUsers); err != nil {
			return err
		}
		if counts.Swaps, err = collectionLen(tx, BucketSwaps); err != nil {
			return err
		}
		if counts.Reviews, err = collectionLen(tx, BucketReviews); err != nil {
			return err
		}
		counts.Sessions = tx.Bucket(BucketSessions).Stats().KeyN
		return nil
	})
	return counts, err
}

func collectionLen(tx *bolt.Tx, bucket []byte) (int, error) {
	var records []json.RawMessage
	if err := ReadCollection(tx, bucket, &records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Stats exposes Bolt statistics for monitoring endpoints.
func (s *Store) Stats() bolt.Stats {
	if s == nil || s.db == nil {
		return bolt.Stats{}
	}
	return s.db.Stats()
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
