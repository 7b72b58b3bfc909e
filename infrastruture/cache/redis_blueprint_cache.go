package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/beka-birhanu/maze-editor/domain"
	"github.com/beka-birhanu/maze-editor/maze"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	blueprintKeyFmt = "%s:blueprint:%s"

	fieldOwner     = "owner"
	fieldName      = "name"
	fieldVersion   = "version"
	fieldUpdatedAt = "updatedAt"
	fieldMaze      = "maze"
)

var ErrIncompleteEntry = errors.New("cached blueprint is incomplete")

// RedisBlueprintCache keeps blueprints in Redis hashes with a TTL.
type RedisBlueprintCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisBlueprintCache initializes a RedisBlueprintCache with the provided Redis client and TTL.
func NewRedisBlueprintCache(client *redis.Client, prefix string, ttlSeconds int) *RedisBlueprintCache {
	return &RedisBlueprintCache{
		client: client,
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Get loads a cached blueprint. A missing key is reported with found=false.
func (c *RedisBlueprintCache) Get(ctx context.Context, id uuid.UUID) (*domain.Blueprint, bool, error) {
	fields, err := c.client.HGetAll(ctx, c.key(id)).Result()
	if err != nil {
		return nil, false, err
	}
	if len(fields) == 0 {
		return nil, false, nil
	}

	blueprint, err := decodeFields(id, fields)
	if err != nil {
		return nil, false, err
	}
	return blueprint, true, nil
}

// Set writes the blueprint and restarts its TTL.
func (c *RedisBlueprintCache) Set(ctx context.Context, b *domain.Blueprint) error {
	fields, err := encodeFields(b)
	if err != nil {
		return err
	}

	key := c.key(b.ID)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	return err
}

// Evict drops the cached blueprint.
func (c *RedisBlueprintCache) Evict(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *RedisBlueprintCache) key(id uuid.UUID) string {
	return fmt.Sprintf(blueprintKeyFmt, c.prefix, id)
}

func encodeFields(b *domain.Blueprint) (map[string]interface{}, error) {
	walls, err := b.Maze.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		fieldOwner:     b.OwnerID.String(),
		fieldName:      b.Name,
		fieldVersion:   b.Version,
		fieldUpdatedAt: b.UpdatedAt.Format(time.RFC3339Nano),
		fieldMaze:      walls,
	}, nil
}

func decodeFields(id uuid.UUID, fields map[string]string) (*domain.Blueprint, error) {
	for _, name := range []string{fieldOwner, fieldName, fieldVersion, fieldUpdatedAt, fieldMaze} {
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrIncompleteEntry, name)
		}
	}

	owner, err := uuid.Parse(fields[fieldOwner])
	if err != nil {
		return nil, fmt.Errorf("%w: owner: %s", ErrIncompleteEntry, err)
	}

	version, err := strconv.ParseInt(fields[fieldVersion], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: version: %s", ErrIncompleteEntry, err)
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, fields[fieldUpdatedAt])
	if err != nil {
		return nil, fmt.Errorf("%w: updatedAt: %s", ErrIncompleteEntry, err)
	}

	m, err := maze.Decode([]byte(fields[fieldMaze]))
	if err != nil {
		return nil, err
	}

	return &domain.Blueprint{
		ID:        id,
		OwnerID:   owner,
		Name:      fields[fieldName],
		Version:   version,
		Maze:      m,
		UpdatedAt: updatedAt,
	}, nil
}
