package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trf/navmenu/internal/domain"
)

// Snapshot is the last discovery menu that was fetched successfully for a group.
type Snapshot struct {
	Items     []domain.MenuItem `json:"items"`
	ETag      string            `json:"etag,omitempty"`
	FetchedAt time.Time         `json:"fetched_at"`
}

type SnapshotStore interface {
	// Load returns nil without error when no snapshot exists for group.
	Load(ctx context.Context, group string) (*Snapshot, error)
	Save(ctx context.Context, group string, snapshot *Snapshot) error
}

type redisSnapshotStore struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

// NewRedisSnapshotStore keeps snapshots under navmenu:snapshot:<group>. A zero ttl keeps them forever.
func NewRedisSnapshotStore(redisClient *redis.Client, ttl time.Duration) SnapshotStore {
	return &redisSnapshotStore{
		redisClient: redisClient,
		keyPrefix:   "navmenu:snapshot:",
		ttl:         ttl,
	}
}

func (s *redisSnapshotStore) Load(ctx context.Context, group string) (*Snapshot, error) {
	key := s.keyPrefix + group
	val, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Nothing fetched yet
		}
		return nil, fmt.Errorf("failed to get menu snapshot for group %s: %w", group, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse menu snapshot for group %s: %w", group, err)
	}

	return &snapshot, nil
}

func (s *redisSnapshotStore) Save(ctx context.Context, group string, snapshot *Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("nil menu snapshot for group %s", group)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode menu snapshot for group %s: %w", group, err)
	}

	key := s.keyPrefix + group
	if err := s.redisClient.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set menu snapshot for group %s: %w", group, err)
	}
	return nil
}
