package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/beka-birhanu/maze-editor/domain"
	"github.com/beka-birhanu/maze-editor/identity"
	"github.com/google/uuid"
)

type memBlueprintRepo struct {
	mu         sync.Mutex
	blueprints map[uuid.UUID]*domain.Blueprint
	saves      int
	saveErr    error
}

func newMemBlueprintRepo() *memBlueprintRepo {
	return &memBlueprintRepo{blueprints: make(map[uuid.UUID]*domain.Blueprint)}
}

func (r *memBlueprintRepo) Save(_ context.Context, b *domain.Blueprint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	stored, ok := r.blueprints[b.ID]
	if ok != (b.Version > 1) || (ok && stored.Version != b.Version-1) {
		return domain.ErrEditConflict
	}
	r.saves++
	r.blueprints[b.ID] = b
	return nil
}

func (r *memBlueprintRepo) ByID(_ context.Context, id uuid.UUID) (*domain.Blueprint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blueprints[id]
	if !ok {
		return nil, domain.ErrBlueprintNotFound
	}
	return b, nil
}

func (r *memBlueprintRepo) ByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.Blueprint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.Blueprint
	for _, b := range r.blueprints {
		if b.OwnerID == ownerID {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(a, b int) bool { return result[a].UpdatedAt.After(result[b].UpdatedAt) })
	return result, nil
}

func (r *memBlueprintRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blueprints[id]; !ok {
		return domain.ErrBlueprintNotFound
	}
	delete(r.blueprints, id)
	return nil
}

// pausingBlueprintRepo can hold one ByID call after it has read,
// until resume is closed.
type pausingBlueprintRepo struct {
	*memBlueprintRepo
	pauseMu sync.Mutex
	armed   bool
	paused  chan struct{}
	resume  chan struct{}
}

func newPausingBlueprintRepo(repo *memBlueprintRepo) *pausingBlueprintRepo {
	return &pausingBlueprintRepo{memBlueprintRepo: repo}
}

// pauseNextRead arms the pause for the next ByID call.
func (r *pausingBlueprintRepo) pauseNextRead() {
	r.pauseMu.Lock()
	defer r.pauseMu.Unlock()
	r.armed = true
	r.paused = make(chan struct{})
	r.resume = make(chan struct{})
}

func (r *pausingBlueprintRepo) ByID(ctx context.Context, id uuid.UUID) (*domain.Blueprint, error) {
	b, err := r.memBlueprintRepo.ByID(ctx, id)

	r.pauseMu.Lock()
	armed, paused, resume := r.armed, r.paused, r.resume
	r.armed = false
	r.pauseMu.Unlock()

	if armed {
		close(paused)
		<-resume
	}
	return b, err
}

type memBlueprintCache struct {
	mu         sync.Mutex
	blueprints map[uuid.UUID]*domain.Blueprint
	hits       int
	getErr     error
}

func newMemBlueprintCache() *memBlueprintCache {
	return &memBlueprintCache{blueprints: make(map[uuid.UUID]*domain.Blueprint)}
}

func (c *memBlueprintCache) Get(_ context.Context, id uuid.UUID) (*domain.Blueprint, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	b, ok := c.blueprints[id]
	if ok {
		c.hits++
	}
	return b, ok, nil
}

func (c *memBlueprintCache) Set(_ context.Context, b *domain.Blueprint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blueprints[b.ID] = b
	return nil
}

func (c *memBlueprintCache) Evict(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.blueprints, id)
	return nil
}

// memLocker hands out one in-process mutex per key.
type memLocker struct {
	mu      sync.Mutex
	locks   map[string]*sync.Mutex
	lockErr error
}

func newMemLocker() *memLocker {
	return &memLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *memLocker) Lock(_ context.Context, key string) (func() error, error) {
	if l.lockErr != nil {
		return nil, l.lockErr
	}

	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return func() error {
		m.Unlock()
		return nil
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type memAuthorRepo struct {
	mu      sync.Mutex
	authors map[string]*identity.Author
}

func newMemAuthorRepo() *memAuthorRepo {
	return &memAuthorRepo{authors: make(map[string]*identity.Author)}
}

func (r *memAuthorRepo) Save(a *identity.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authors[a.Username] = a
	return nil
}

func (r *memAuthorRepo) ByID(id uuid.UUID) (*identity.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.authors {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("author not found")
}

func (r *memAuthorRepo) ByUsername(username string) (*identity.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.authors[username]
	if !ok {
		return nil, errors.New("author not found")
	}
	return a, nil
}
