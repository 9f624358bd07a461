package planner

import (
	"context"
	"errors"
)

// Sentinel errors for directions providers.
var (
	// ErrProviderUnavailable indicates the directions provider is down or the circuit breaker is open.
	ErrProviderUnavailable = errors.New("directions provider unavailable")
	// ErrNoRouteFound indicates no route exists through the given waypoints.
	ErrNoRouteFound = errors.New("no route found through the given waypoints")
	// ErrRateLimitExceeded indicates the provider quota has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	// ErrInvalidRequest indicates the provider rejected the request as malformed.
	ErrInvalidRequest = errors.New("invalid directions request")
)

// Provider computes directions through an ordered set of stops.
type Provider interface {
	// Directions routes from origin to destination through the given
	// intermediate stops, returning one or more route alternatives.
	Directions(ctx context.Context, req DirectionsRequest) (*DirectionsResponse, error)
	// Name returns the provider identifier for logging and diagnostics.
	Name() string
}

// Stop is an intermediate waypoint in a directions request.
type Stop struct {
	Location LatLng
	// Stopover marks the stop as a true stop along the route rather than
	// a via point. Itinerary stops are always stopovers.
	Stopover bool
}

// DirectionsRequest describes a multi-stop directions query.
type DirectionsRequest struct {
	Origin      LatLng
	Destination LatLng
	Waypoints   []Stop
	// Optimize allows the provider to reorder intermediate stops.
	Optimize bool
	Mode     TravelMode
}

// DirectionsResponse contains the routes returned by a provider.
type DirectionsResponse struct {
	Routes   []Route
	Provider string
}

// Route is a single routed alternative through all stops.
type Route struct {
	Legs             []Leg
	OverviewPolyline string
}

// Leg is one provider-reported segment between consecutive stops.
type Leg struct {
	StartAddress    string
	EndAddress      string
	DistanceText    string
	DurationText    string
	DistanceMeters  int
	DurationSeconds int
	StartLocation   LatLng
	EndLocation     LatLng
}

// ProviderError carries the provider's diagnostic status alongside the
// mapped sentinel error. Status is surfaced to callers so a failed route
// computation is never silently downgraded to an empty route.
type ProviderError struct {
	Provider string
	Status   string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the failure is transient.
func (e *ProviderError) IsRetryable() bool {
	return errors.Is(e.Err, ErrProviderUnavailable) || errors.Is(e.Err, ErrRateLimitExceeded)
}
