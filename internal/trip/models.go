// Package trip provides trip itinerary persistence and management.
package trip

import (
	"errors"
	"time"
)

// Repository errors.
var (
	ErrTripNotFound = errors.New("trip not found")
)

// Trip represents a saved trip itinerary. Trips are immutable once
// created: there is no update path, only create, list, and delete.
type Trip struct {
	ID            string
	User          string
	Locations     []Location
	RouteDetails  []Leg
	TotalDistance *string
	TotalDuration *string
	CreatedAt     time.Time
}

// Location represents one stop in a trip. The JSON tags define the JSONB
// document shape used by the PostgreSQL repository; the location filter
// matches on the "name" key.
type Location struct {
	Name     string `json:"name"`
	Position Point  `json:"position"`
}

// Point represents a geographic point.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Leg is one routed segment stored with a trip.
type Leg struct {
	StartAddress    string `json:"startAddress"`
	EndAddress      string `json:"endAddress"`
	Distance        string `json:"distance"`
	Duration        string `json:"duration"`
	DistanceMeters  int    `json:"distanceMeters"`
	DurationSeconds int    `json:"durationSeconds"`
	StartLocation   Point  `json:"startLocation"`
	EndLocation     Point  `json:"endLocation"`
}
