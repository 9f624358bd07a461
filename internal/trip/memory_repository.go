package trip

import (
	"context"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu    sync.RWMutex
	trips map[string]*Trip
	// order tracks insertion order so listings are deterministic.
	order []string
}

// NewInMemoryRepository creates a new in-memory trip repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		trips: make(map[string]*Trip),
	}
}

// Create persists a new trip.
func (r *InMemoryRepository) Create(_ context.Context, t *Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *t
	r.trips[t.ID] = &cpy
	r.order = append(r.order, t.ID)
	return nil
}

// List retrieves trips matching the filter, newest first.
func (r *InMemoryRepository) List(_ context.Context, filter Filter) ([]*Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trips := make([]*Trip, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		t, ok := r.trips[r.order[i]]
		if !ok {
			continue
		}
		if !matches(t, filter) {
			continue
		}
		cpy := *t
		trips = append(trips, &cpy)
	}

	return trips, nil
}

// matches reports whether a trip satisfies the filter.
func matches(t *Trip, filter Filter) bool {
	if filter.User != "" && t.User != filter.User {
		return false
	}
	if filter.Location != "" {
		found := false
		for _, loc := range t.Locations {
			if loc.Name == filter.Location {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Count returns the total number of stored trips.
func (r *InMemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.trips), nil
}

// Delete removes a trip by ID.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return ErrTripNotFound
	}

	delete(r.trips, id)
	for i, tripID := range r.order {
		if tripID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
