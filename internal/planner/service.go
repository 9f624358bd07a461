package planner

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/yvonnejhao/Travel-Planner/pkg/polyline"
)

// ServiceConfig holds configuration for the planner service.
type ServiceConfig struct {
	// Provider is the external directions provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service turns an ordered waypoint list into a routed itinerary by
// delegating leg computation to a directions provider and aggregating
// the result into per-itinerary totals.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new planner service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// GenerateRoute routes the given waypoints in order using the requested
// travel mode. With optimize set the provider may reorder intermediate
// stops; the returned waypoint snapshot then follows the provider's leg
// order rather than the requested order.
//
// Fewer than two waypoints fails locally with ErrInsufficientWaypoints;
// the provider is never called. A provider failure is returned as a
// *ProviderError carrying the provider's status, with no partial totals.
func (s *Service) GenerateRoute(ctx context.Context, waypoints []Waypoint, mode TravelMode, optimize bool) (*RouteResult, error) {
	if len(waypoints) < 2 {
		return nil, ErrInsufficientWaypoints
	}

	if mode == "" {
		mode = TravelModeDriving
	}
	if _, err := ParseTravelMode(string(mode)); err != nil {
		return nil, err
	}

	stops := make([]Stop, 0, len(waypoints)-2)
	for _, w := range waypoints[1 : len(waypoints)-1] {
		stops = append(stops, Stop{Location: w.Position, Stopover: true})
	}

	req := DirectionsRequest{
		Origin:      waypoints[0].Position,
		Destination: waypoints[len(waypoints)-1].Position,
		Waypoints:   stops,
		Optimize:    optimize,
		Mode:        mode,
	}

	s.logger.Debug().
		Int("waypoint_count", len(waypoints)).
		Str("mode", string(mode)).
		Bool("optimize", optimize).
		Str("provider", s.provider.Name()).
		Msg("requesting directions")

	resp, err := s.provider.Directions(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).
			Int("waypoint_count", len(waypoints)).
			Str("mode", string(mode)).
			Msg("route computation failed")
		return nil, err
	}

	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, &ProviderError{
			Provider: resp.Provider,
			Status:   "ZERO_RESULTS",
			Message:  "provider returned no usable route",
			Err:      ErrNoRouteFound,
		}
	}

	route := resp.Routes[0]
	result := s.aggregate(route)
	result.Provider = resp.Provider

	if optimize {
		result.Waypoints = reorderWaypoints(waypoints, route.Legs)
	} else {
		result.Waypoints = append([]Waypoint(nil), waypoints...)
	}

	s.logger.Debug().
		Int("leg_count", len(result.Legs)).
		Int("total_distance_m", result.TotalDistanceMeters).
		Int("total_duration_s", result.TotalDurationSeconds).
		Msg("route aggregated")

	return result, nil
}

// aggregate reduces the legs of a route into ordered leg records and
// summary totals. Leg order is preserved exactly as returned.
func (s *Service) aggregate(route Route) *RouteResult {
	legs := make([]RouteLeg, 0, len(route.Legs))
	totalDistance := 0
	totalDuration := 0

	for _, leg := range route.Legs {
		legs = append(legs, RouteLeg{
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
			DistanceText:    leg.DistanceText,
			DurationText:    leg.DurationText,
			DistanceMeters:  leg.DistanceMeters,
			DurationSeconds: leg.DurationSeconds,
			StartLocation:   leg.StartLocation,
			EndLocation:     leg.EndLocation,
		})
		totalDistance += leg.DistanceMeters
		totalDuration += leg.DurationSeconds
	}

	return &RouteResult{
		Legs:                 legs,
		TotalDistanceMeters:  totalDistance,
		TotalDurationSeconds: totalDuration,
		TotalDistance:        FormatDistance(totalDistance),
		TotalDuration:        FormatDuration(totalDuration),
		Geometry:             decodeGeometry(route.OverviewPolyline),
	}
}

// FormatDistance renders a metre total as kilometres to two decimal places.
func FormatDistance(meters int) string {
	return fmt.Sprintf("%.2f km", float64(meters)/1000)
}

// FormatDuration renders a second total as whole minutes, rounding half up.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d mins", int(math.Floor(float64(seconds)/60+0.5)))
}

// reorderWaypoints re-derives the waypoint order from the returned legs'
// endpoints. The provider does not echo the reordered waypoint set when
// optimization is enabled, so each leg start is matched to the nearest
// unconsumed waypoint; the final leg's end resolves the last stop.
func reorderWaypoints(waypoints []Waypoint, legs []Leg) []Waypoint {
	used := make([]bool, len(waypoints))
	ordered := make([]Waypoint, 0, len(waypoints))

	for _, leg := range legs {
		if i := nearestWaypoint(waypoints, used, leg.StartLocation); i >= 0 {
			used[i] = true
			ordered = append(ordered, waypoints[i])
		}
	}
	if len(legs) > 0 {
		if i := nearestWaypoint(waypoints, used, legs[len(legs)-1].EndLocation); i >= 0 {
			used[i] = true
			ordered = append(ordered, waypoints[i])
		}
	}

	// Fall back to the requested order for anything left unmatched.
	for i, w := range waypoints {
		if !used[i] {
			ordered = append(ordered, w)
		}
	}

	return ordered
}

// nearestWaypoint returns the index of the closest unconsumed waypoint to
// the given location, or -1 when every waypoint has been consumed.
func nearestWaypoint(waypoints []Waypoint, used []bool, loc LatLng) int {
	best := -1
	bestDist := math.MaxFloat64

	for i, w := range waypoints {
		if used[i] {
			continue
		}
		d := polyline.Distance(
			polyline.Point{Lat: loc.Lat, Lng: loc.Lng},
			polyline.Point{Lat: w.Position.Lat, Lng: w.Position.Lng},
		)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}

func decodeGeometry(encoded string) []LatLng {
	points := polyline.Decode(encoded)
	if len(points) == 0 {
		return nil
	}

	geometry := make([]LatLng, 0, len(points))
	for _, p := range points {
		geometry = append(geometry, LatLng{Lat: p.Lat, Lng: p.Lng})
	}
	return geometry
}
