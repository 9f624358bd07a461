package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yvonnejhao/Travel-Planner/internal/api/models"
	"github.com/yvonnejhao/Travel-Planner/internal/api/response"
	"github.com/yvonnejhao/Travel-Planner/internal/planner"
)

// RouteHandler handles route computation endpoints.
type RouteHandler struct {
	service *planner.Service
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service *planner.Service) *RouteHandler {
	return &RouteHandler{service: service}
}

// ComputeRoute handles POST /v1/routes:compute - route an ordered waypoint list.
func (h *RouteHandler) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	var input models.RouteComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	mode, err := planner.ParseTravelMode(input.TravelMode)
	if err != nil {
		response.BadRequest(w, r, "unsupported travel mode: "+input.TravelMode, []models.FieldError{
			{Field: "travelMode", Message: "must be one of DRIVING, WALKING, BICYCLING, TRANSIT"},
		})
		return
	}

	waypoints := make([]planner.Waypoint, 0, len(input.Waypoints))
	for _, wp := range input.Waypoints {
		waypoints = append(waypoints, planner.Waypoint{
			Name:     wp.Name,
			Position: planner.LatLng{Lat: wp.Position.Lat, Lng: wp.Position.Lng},
		})
	}

	result, err := h.service.GenerateRoute(r.Context(), waypoints, mode, input.Optimize)
	if err != nil {
		h.writeRouteError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toRouteResponse(result))
}

// writeRouteError maps route generation failures to HTTP responses.
// Provider failures surface the provider status so callers can tell a
// failed computation apart from an empty route.
func (h *RouteHandler) writeRouteError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, planner.ErrInsufficientWaypoints) {
		response.BadRequest(w, r, "at least two waypoints are required", []models.FieldError{
			{Field: "waypoints", Message: "must contain at least two waypoints"},
		})
		return
	}
	if errors.Is(err, planner.ErrUnsupportedTravelMode) {
		response.BadRequest(w, r, "unsupported travel mode", nil)
		return
	}

	var provErr *planner.ProviderError
	if errors.As(err, &provErr) {
		response.BadGateway(w, r, "route computation failed with provider status "+provErr.Status)
		return
	}

	response.InternalError(w, r, "route computation failed")
}

// toRouteResponse converts a route result to the API response shape.
func toRouteResponse(result *planner.RouteResult) models.RouteComputeResponse {
	waypoints := make([]models.Waypoint, 0, len(result.Waypoints))
	for _, wp := range result.Waypoints {
		waypoints = append(waypoints, models.Waypoint{
			Name:     wp.Name,
			Position: models.Point{Lat: wp.Position.Lat, Lng: wp.Position.Lng},
		})
	}

	legs := make([]models.RouteLeg, 0, len(result.Legs))
	for _, leg := range result.Legs {
		legs = append(legs, models.RouteLeg{
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
			Distance:        leg.DistanceText,
			Duration:        leg.DurationText,
			DistanceMeters:  leg.DistanceMeters,
			DurationSeconds: leg.DurationSeconds,
			StartLocation:   models.Point{Lat: leg.StartLocation.Lat, Lng: leg.StartLocation.Lng},
			EndLocation:     models.Point{Lat: leg.EndLocation.Lat, Lng: leg.EndLocation.Lng},
		})
	}

	var geometry []models.Point
	for _, p := range result.Geometry {
		geometry = append(geometry, models.Point{Lat: p.Lat, Lng: p.Lng})
	}

	return models.RouteComputeResponse{
		Waypoints:     waypoints,
		Legs:          legs,
		TotalDistance: result.TotalDistance,
		TotalDuration: result.TotalDuration,
		Geometry:      geometry,
		Provider:      result.Provider,
	}
}
