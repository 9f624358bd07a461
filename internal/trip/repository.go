package trip

import "context"

// Filter narrows a trip listing. Empty fields match everything.
type Filter struct {
	// User matches trips whose user equals this value exactly.
	User string

	// Location matches trips that contain a location with this exact name.
	Location string
}

// Repository defines the interface for trip data persistence.
type Repository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *Trip) error

	// List retrieves trips matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]*Trip, error)

	// Count returns the total number of stored trips.
	Count(ctx context.Context) (int, error)

	// Delete removes a trip by ID.
	// Returns ErrTripNotFound if no trip has that ID.
	Delete(ctx context.Context, id string) error
}
