// Package planner provides itinerary construction and route aggregation.
package planner

import (
	"errors"
	"strings"
)

// Sentinel errors for route generation.
var (
	// ErrInsufficientWaypoints indicates a route was requested with fewer than two waypoints.
	ErrInsufficientWaypoints = errors.New("at least two waypoints are required to generate a route")
	// ErrUnsupportedTravelMode indicates the requested travel mode is not recognised.
	ErrUnsupportedTravelMode = errors.New("unsupported travel mode")
)

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// Waypoint is a named stop in an itinerary. Waypoints have positional
// identity: they are addressed by index in the owning list, not by ID.
type Waypoint struct {
	Name     string
	Position LatLng
}

// TravelMode selects how legs between waypoints are routed.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "DRIVING"
	TravelModeWalking   TravelMode = "WALKING"
	TravelModeBicycling TravelMode = "BICYCLING"
	TravelModeTransit   TravelMode = "TRANSIT"
)

// ParseTravelMode parses a travel mode, accepting any casing.
// An empty string defaults to driving.
func ParseTravelMode(s string) (TravelMode, error) {
	if s == "" {
		return TravelModeDriving, nil
	}
	switch mode := TravelMode(strings.ToUpper(s)); mode {
	case TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit:
		return mode, nil
	default:
		return "", ErrUnsupportedTravelMode
	}
}

// RouteLeg is one routed segment between two consecutive stops, with both
// the provider-formatted text and the numeric values used for aggregation.
type RouteLeg struct {
	StartAddress    string
	EndAddress      string
	DistanceText    string
	DurationText    string
	DistanceMeters  int
	DurationSeconds int
	StartLocation   LatLng
	EndLocation     LatLng
}

// RouteResult is the aggregated outcome of a route generation request.
//
// Waypoints holds the snapshot that should be persisted with the itinerary.
// When the provider was allowed to optimize stopover order, this snapshot
// reflects the returned leg order rather than the requested order.
type RouteResult struct {
	Waypoints            []Waypoint
	Legs                 []RouteLeg
	TotalDistanceMeters  int
	TotalDurationSeconds int
	TotalDistance        string
	TotalDuration        string
	Geometry             []LatLng
	Provider             string
}
