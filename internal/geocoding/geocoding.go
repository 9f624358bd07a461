// Package geocoding resolves free-text place names into coordinates.
package geocoding

import (
	"context"
	"errors"
)

// Sentinel errors for geocoding operations.
var (
	// ErrNoResults indicates the provider found no match for the address.
	ErrNoResults = errors.New("no geocoding results for address")
	// ErrProviderUnavailable indicates the geocoding provider is down.
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
)

// Geocoder resolves a place name into a geographic location.
type Geocoder interface {
	// Geocode resolves the given free-text address. Returns ErrNoResults
	// (possibly wrapped) when the provider has no match.
	Geocode(ctx context.Context, address string) (*Location, error)
	// Name returns the provider identifier for logging and diagnostics.
	Name() string
}

// Location is a resolved place.
type Location struct {
	// FormattedAddress is the provider's canonical rendering of the place.
	FormattedAddress string
	Lat              float64
	Lng              float64
}

// Error carries provider diagnostics for a failed lookup.
type Error struct {
	Provider string
	Status   string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
