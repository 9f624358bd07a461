package models

// RouteComputeRequest is the request body for computing a route.
type RouteComputeRequest struct {
	Waypoints  []Waypoint `json:"waypoints"`
	TravelMode string     `json:"travelMode,omitempty"`
	Optimize   bool       `json:"optimize,omitempty"`
}

// RouteComputeResponse is the response body for a computed route.
//
// Waypoints reflects the effective visiting order. When the request allowed
// waypoint optimization this may differ from the requested order.
type RouteComputeResponse struct {
	Waypoints     []Waypoint `json:"waypoints"`
	Legs          []RouteLeg `json:"legs"`
	TotalDistance string     `json:"totalDistance"`
	TotalDuration string     `json:"totalDuration"`
	Geometry      []Point    `json:"geometry,omitempty"`
	Provider      string     `json:"provider"`
}

// GeocodeResponse is the response body for a geocoding lookup.
type GeocodeResponse struct {
	Address          string `json:"address"`
	FormattedAddress string `json:"formattedAddress"`
	Position         Point  `json:"position"`
}
