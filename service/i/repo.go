package i

import (
	"context"

	"github.com/beka-birhanu/maze-editor/domain"
	"github.com/beka-birhanu/maze-editor/identity"
	"github.com/google/uuid"
)

// AuthorRepo defines the interface for author persistence operations.
type AuthorRepo interface {
	// Save inserts or updates an author in the repository.
	// If the author already exists, it updates the record. Otherwise, it creates a new one.
	Save(author *identity.Author) error

	// ByID retrieves an author by their unique ID.
	ByID(id uuid.UUID) (*identity.Author, error)

	// ByUsername retrieves an author by their username.
	ByUsername(username string) (*identity.Author, error)
}

// BlueprintRepo is the durable store of blueprints.
type BlueprintRepo interface {
	// Save inserts version 1 and otherwise replaces the version before
	// blueprint.Version. Anything else fails with domain.ErrEditConflict.
	Save(ctx context.Context, blueprint *domain.Blueprint) error

	// ByID returns domain.ErrBlueprintNotFound when no blueprint has the id.
	ByID(ctx context.Context, id uuid.UUID) (*domain.Blueprint, error)

	// ByOwner lists an author's blueprints, most recently updated first.
	ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Blueprint, error)

	// Delete returns domain.ErrBlueprintNotFound when nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
