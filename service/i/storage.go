package i

import (
	"context"

	"github.com/beka-birhanu/maze-editor/domain"
	"github.com/google/uuid"
)

// BlueprintCache keeps recently edited blueprints close to the editor.
type BlueprintCache interface {
	// Get reports found=false on a miss.
	Get(ctx context.Context, id uuid.UUID) (blueprint *domain.Blueprint, found bool, err error)
	Set(ctx context.Context, blueprint *domain.Blueprint) error
	Evict(ctx context.Context, id uuid.UUID) error
}

// Locker serializes edits across editor instances.
type Locker interface {
	// Lock blocks until key is held or ctx ends. The returned func releases it.
	Lock(ctx context.Context, key string) (release func() error, err error)
}
