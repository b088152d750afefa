package pricewatch

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/tatilgo/backend-travel/internal/pricing"
)

// ErrNoSnapshot is returned when no competitor snapshot exists for a category.
var ErrNoSnapshot = errors.New("pricewatch: no snapshot for category")

// Store keeps the latest competitor snapshot per category in redis. Snapshots
// are written without a TTL; the bot overwrites them on every cycle and a
// stale snapshot still beats an empty comparison page.
type Store struct {
	client *redis.Client
}

// NewStore constructs a snapshot store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func snapshotKey(category pricing.Category) string {
	return "pricewatch:snapshot:" + string(category)
}

// Save stores the snapshot for its category.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	if s == nil || s.client == nil {
		return errors.New("pricewatch: store not configured")
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey(snap.Category), data, 0).Err()
}

// Get loads the snapshot for a category.
func (s *Store) Get(ctx context.Context, category pricing.Category) (Snapshot, error) {
	if s == nil || s.client == nil {
		return Snapshot{}, errors.New("pricewatch: store not configured")
	}
	data, err := s.client.Get(ctx, snapshotKey(category)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return Snapshot{}, ErrNoSnapshot
		}
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
