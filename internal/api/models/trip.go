package models

// Trip represents a saved trip itinerary.
type Trip struct {
	ID            string         `json:"id"`
	User          string         `json:"user"`
	Locations     []TripLocation `json:"locations"`
	RouteDetails  []RouteLeg     `json:"routeDetails,omitempty"`
	TotalDistance *string        `json:"totalDistance,omitempty"`
	TotalDuration *string        `json:"totalDuration,omitempty"`
	CreatedAt     Timestamp      `json:"createdAt"`
}

// TripLocation is one stop in a saved trip.
type TripLocation struct {
	Name     string `json:"name"`
	Position Point  `json:"position"`
}

// TripCreateRequest is the request body for creating a trip.
type TripCreateRequest struct {
	User          string         `json:"user"`
	Locations     []TripLocation `json:"locations"`
	RouteDetails  []RouteLeg     `json:"routeDetails,omitempty"`
	TotalDistance *string        `json:"totalDistance,omitempty"`
	TotalDuration *string        `json:"totalDuration,omitempty"`
}

// TripCountResponse is the response body for the trip count endpoint.
type TripCountResponse struct {
	TotalTrips int `json:"totalTrips"`
}
