package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/maze-editor/domain"
	"github.com/beka-birhanu/maze-editor/maze"
	"github.com/beka-birhanu/maze-editor/service/i"
	"github.com/google/uuid"
)

const (
	editLockKeyFmt = "blueprint:%s:edit_lock"
)

var (
	ErrMissingDependency = errors.New("editor dependency is nil")
)

// Editor applies maze edits to stored blueprints.
// Edits and deletes hold the blueprint's lock and read the repository, never
// the cache. The cache is only written under that lock, so a slow reader
// cannot replace a newer version or bring back a deleted blueprint.
type Editor struct {
	repo   i.BlueprintRepo
	cache  i.BlueprintCache
	locker i.Locker
	logger i.Logger
}

// EditorConfig holds the dependencies of an Editor.
type EditorConfig struct {
	Repo   i.BlueprintRepo
	Cache  i.BlueprintCache
	Locker i.Locker
	Logger i.Logger
}

// NewEditor creates an Editor. All dependencies are required.
func NewEditor(c *EditorConfig) (*Editor, error) {
	if c == nil || c.Repo == nil || c.Cache == nil || c.Locker == nil || c.Logger == nil {
		return nil, ErrMissingDependency
	}

	return &Editor{
		repo:   c.Repo,
		cache:  c.Cache,
		locker: c.Locker,
		logger: c.Logger,
	}, nil
}

// Create stores a new blueprint, either fully walled or carved by Wilson's algorithm.
func (e *Editor) Create(ctx context.Context, authorID uuid.UUID, name string, dimensions maze.Dimensions, generate bool) (*domain.Blueprint, error) {
	if err := domain.ValidateDimensions(dimensions); err != nil {
		return nil, err
	}

	var m *maze.Maze
	if generate {
		m = maze.Generate(dimensions, nil)
	} else {
		m = maze.New(dimensions)
	}

	blueprint, err := domain.NewBlueprint(domain.BlueprintConfig{
		ID:      uuid.New(),
		OwnerID: authorID,
		Name:    name,
		Maze:    m,
	})
	if err != nil {
		return nil, err
	}

	if err := e.repo.Save(ctx, blueprint); err != nil {
		e.logger.Error(fmt.Sprintf("saving new blueprint %s: %s", blueprint.ID, err))
		return nil, err
	}
	e.refreshCache(ctx, blueprint)

	e.logger.Info(fmt.Sprintf("blueprint created: ID=%s Owner=%s Size=%dx%d", blueprint.ID, authorID, dimensions.Width, dimensions.Height))
	return blueprint, nil
}

// Get returns a blueprint owned by the author.
func (e *Editor) Get(ctx context.Context, authorID, id uuid.UUID) (*domain.Blueprint, error) {
	blueprint, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return owned(blueprint, authorID)
}

// List returns the author's blueprints.
func (e *Editor) List(ctx context.Context, authorID uuid.UUID) ([]*domain.Blueprint, error) {
	return e.repo.ByOwner(ctx, authorID)
}

// SetWall sets the wall on the given side of cell (x, y).
func (e *Editor) SetWall(ctx context.Context, authorID, id uuid.UUID, x, y int, side maze.Side, value bool) (*domain.Blueprint, error) {
	return e.edit(ctx, authorID, id, func(m *maze.Maze) (*maze.Maze, error) {
		return m.Set(x, y, side, value)
	})
}

// ToggleWall flips the wall on the given side of cell (x, y).
func (e *Editor) ToggleWall(ctx context.Context, authorID, id uuid.UUID, x, y int, side maze.Side) (*domain.Blueprint, error) {
	return e.edit(ctx, authorID, id, func(m *maze.Maze) (*maze.Maze, error) {
		return m.Toggle(x, y, side)
	})
}

// Resize adds (n > 0) or removes (n < 0) rows or columns at one edge.
// Shrinking below one cell or growing past domain.MaxDimension is rejected.
func (e *Editor) Resize(ctx context.Context, authorID, id uuid.UUID, edge maze.Edge, axis maze.Axis, n int) (*domain.Blueprint, error) {
	return e.edit(ctx, authorID, id, func(m *maze.Maze) (*maze.Maze, error) {
		target := m.Dimensions()
		if axis == maze.Rows {
			target.Height += n
		} else {
			target.Width += n
		}
		if err := domain.ValidateDimensions(target); err != nil {
			return nil, fmt.Errorf("%w: resizing to %dx%d", err, target.Width, target.Height)
		}

		return m.Resize(edge, axis, n)
	})
}

// Delete removes a blueprint owned by the author.
func (e *Editor) Delete(ctx context.Context, authorID, id uuid.UUID) error {
	release, err := e.lock(ctx, id)
	if err != nil {
		return err
	}
	defer e.unlock(id, release)

	if _, err := e.stored(ctx, authorID, id); err != nil {
		return err
	}

	if err := e.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := e.cache.Evict(ctx, id); err != nil {
		e.logger.Warning(fmt.Sprintf("evicting deleted blueprint %s: %s", id, err))
	}

	e.logger.Info(fmt.Sprintf("blueprint deleted: ID=%s", id))
	return nil
}

// edit runs apply on the current maze under the blueprint's lock and stores
// the result as the next version.
func (e *Editor) edit(ctx context.Context, authorID, id uuid.UUID, apply func(*maze.Maze) (*maze.Maze, error)) (*domain.Blueprint, error) {
	release, err := e.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer e.unlock(id, release)

	blueprint, err := e.stored(ctx, authorID, id)
	if err != nil {
		return nil, err
	}

	m, err := apply(blueprint.Maze)
	if err != nil {
		return nil, err
	}

	updated := blueprint.WithMaze(m)
	if err := e.repo.Save(ctx, updated); err != nil {
		e.logger.Error(fmt.Sprintf("saving blueprint %s version %d: %s", id, updated.Version, err))
		return nil, err
	}
	e.refreshCache(ctx, updated)

	return updated, nil
}

// stored reads the repository copy of an author's blueprint.
// Callers hold the blueprint's lock.
func (e *Editor) stored(ctx context.Context, authorID, id uuid.UUID) (*domain.Blueprint, error) {
	blueprint, err := e.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return owned(blueprint, authorID)
}

// load reads through the cache, refilling it on a miss.
func (e *Editor) load(ctx context.Context, id uuid.UUID) (*domain.Blueprint, error) {
	blueprint, found, err := e.cache.Get(ctx, id)
	if err != nil {
		e.logger.Warning(fmt.Sprintf("reading blueprint %s from cache: %s", id, err))
	}
	if found {
		return blueprint, nil
	}
	return e.refill(ctx, id)
}

// refill reads the repository under the blueprint's lock and caches the result.
// When the lock is busy the repository copy is returned uncached.
func (e *Editor) refill(ctx context.Context, id uuid.UUID) (*domain.Blueprint, error) {
	release, err := e.locker.Lock(ctx, fmt.Sprintf(editLockKeyFmt, id))
	if err != nil {
		e.logger.Warning(fmt.Sprintf("skipping cache refill for blueprint %s: %s", id, err))
		return e.repo.ByID(ctx, id)
	}
	defer e.unlock(id, release)

	blueprint, err := e.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.refreshCache(ctx, blueprint)
	return blueprint, nil
}

func owned(blueprint *domain.Blueprint, authorID uuid.UUID) (*domain.Blueprint, error) {
	if !blueprint.OwnedBy(authorID) {
		return nil, domain.ErrForbidden
	}
	return blueprint, nil
}

// refreshCache stores the blueprint in the cache.
// The repository stays authoritative, so a failed cache write is only logged.
func (e *Editor) refreshCache(ctx context.Context, blueprint *domain.Blueprint) {
	if err := e.cache.Set(ctx, blueprint); err != nil {
		e.logger.Warning(fmt.Sprintf("caching blueprint %s: %s", blueprint.ID, err))
	}
}

func (e *Editor) lock(ctx context.Context, id uuid.UUID) (func() error, error) {
	release, err := e.locker.Lock(ctx, fmt.Sprintf(editLockKeyFmt, id))
	if err != nil {
		e.logger.Warning(fmt.Sprintf("obtaining edit lock for blueprint %s: %s", id, err))
		return nil, fmt.Errorf("%w: %s", domain.ErrEditConflict, err)
	}
	return release, nil
}

func (e *Editor) unlock(id uuid.UUID, release func() error) {
	if err := release(); err != nil {
		e.logger.Error(fmt.Sprintf("releasing edit lock for blueprint %s: %s", id, err))
	}
}
