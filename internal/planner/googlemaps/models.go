package googlemaps

// directionsResponse represents the Google Directions API response.
type directionsResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Routes       []directionsRoute `json:"routes"`
}

// directionsRoute is a single route alternative.
type directionsRoute struct {
	Legs             []directionsLeg  `json:"legs"`
	OverviewPolyline overviewPolyline `json:"overview_polyline"`
	WaypointOrder    []int            `json:"waypoint_order,omitempty"`
	Summary          string           `json:"summary,omitempty"`
}

// directionsLeg is one segment between consecutive stopovers.
type directionsLeg struct {
	StartAddress  string     `json:"start_address"`
	EndAddress    string     `json:"end_address"`
	Distance      textValue  `json:"distance"`
	Duration      textValue  `json:"duration"`
	StartLocation coordinate `json:"start_location"`
	EndLocation   coordinate `json:"end_location"`
}

// textValue is Google's paired human-readable and numeric representation.
type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type overviewPolyline struct {
	Points string `json:"points"`
}

// Directions API status codes used for error mapping.
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusNotFound       = "NOT_FOUND"
	statusOverQueryLimit = "OVER_QUERY_LIMIT"
	statusOverDailyLimit = "OVER_DAILY_LIMIT"
	statusRequestDenied  = "REQUEST_DENIED"
	statusInvalidRequest = "INVALID_REQUEST"
	statusMaxWaypoints   = "MAX_WAYPOINTS_EXCEEDED"
	statusUnknownError   = "UNKNOWN_ERROR"
)
