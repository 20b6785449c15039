package rosters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/army-builder/internal/domain/roster"
	armyerr "github.com/KirkDiggler/army-builder/internal/errors"
)

// inMemoryRepository implements Repository with maps. Stored rosters are
// copies so callers cannot mutate them without Update.
type inMemoryRepository struct {
	mu           sync.RWMutex
	rosters      map[string]*roster.Roster
	owners       map[string]map[string]struct{}
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory roster repository
func NewInMemoryRepository() Repository {
	return NewInMemoryRepositoryWithTime(NewTimeProvider())
}

// NewInMemoryRepositoryWithTime creates an in-memory repository with a
// custom clock
func NewInMemoryRepositoryWithTime(tp TimeProvider) Repository {
	return &inMemoryRepository{
		rosters:      make(map[string]*roster.Roster),
		owners:       make(map[string]map[string]struct{}),
		timeProvider: tp,
	}
}

// Create stores a new roster
func (r *inMemoryRepository) Create(ctx context.Context, ros *roster.Roster) error {
	if ros == nil {
		return armyerr.InvalidArgument("roster cannot be nil")
	}
	if ros.ID == "" {
		return armyerr.InvalidArgument("roster ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rosters[ros.ID]; exists {
		return armyerr.AlreadyExistsf("roster %s already exists", ros.ID)
	}

	now := r.timeProvider.Now()
	ros.CreatedAt = now
	ros.UpdatedAt = now

	r.rosters[ros.ID] = clone(ros)
	if r.owners[ros.OwnerID] == nil {
		r.owners[ros.OwnerID] = make(map[string]struct{})
	}
	r.owners[ros.OwnerID][ros.ID] = struct{}{}

	return nil
}

// Get retrieves a roster by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*roster.Roster, error) {
	if id == "" {
		return nil, armyerr.InvalidArgument("roster ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ros, exists := r.rosters[id]
	if !exists {
		return nil, armyerr.NotFoundf("roster %s not found", id)
	}

	return clone(ros), nil
}

// Update replaces an existing roster
func (r *inMemoryRepository) Update(ctx context.Context, ros *roster.Roster) error {
	if ros == nil {
		return armyerr.InvalidArgument("roster cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.rosters[ros.ID]
	if !exists {
		return armyerr.NotFoundf("roster %s not found", ros.ID)
	}

	ros.CreatedAt = existing.CreatedAt
	ros.UpdatedAt = r.timeProvider.Now()
	r.rosters[ros.ID] = clone(ros)

	return nil
}

// Delete removes a roster
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ros, exists := r.rosters[id]
	if !exists {
		return armyerr.NotFoundf("roster %s not found", id)
	}

	delete(r.owners[ros.OwnerID], id)
	delete(r.rosters, id)
	return nil
}

// ListByOwner retrieves every roster of an owner
func (r *inMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*roster.Roster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*roster.Roster
	for id := range r.owners[ownerID] {
		out = append(out, clone(r.rosters[id]))
	}

	return out, nil
}
