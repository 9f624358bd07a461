package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvonnejhao/Travel-Planner/internal/api"
	"github.com/yvonnejhao/Travel-Planner/internal/api/models"
	"github.com/yvonnejhao/Travel-Planner/internal/planner"
	"github.com/yvonnejhao/Travel-Planner/internal/trip"
)

// stubProvider returns a fixed two-leg route for any request.
type stubProvider struct {
	err error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Directions(_ context.Context, req planner.DirectionsRequest) (*planner.DirectionsResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &planner.DirectionsResponse{
		Provider: "stub",
		Routes: []planner.Route{
			{
				Legs: []planner.Leg{
					{
						StartAddress:    "A",
						EndAddress:      "B",
						DistanceMeters:  13500,
						DurationSeconds: 1080,
						StartLocation:   req.Origin,
						EndLocation:     req.Destination,
					},
					{
						StartAddress:    "B",
						EndAddress:      "C",
						DistanceMeters:  6800,
						DurationSeconds: 660,
						StartLocation:   req.Destination,
						EndLocation:     req.Destination,
					},
				},
			},
		},
	}, nil
}

func newTestRouter(provider planner.Provider) http.Handler {
	logger := zerolog.New(io.Discard)
	return api.NewRouter(api.RouterConfig{
		Version:     "test",
		BuildTime:   "2024-01-01T00:00:00Z",
		Logger:      logger,
		TripService: trip.NewService(trip.NewInMemoryRepository()),
		PlannerService: planner.NewService(planner.ServiceConfig{
			Provider: provider,
			Logger:   logger,
		}),
	})
}

func tripBody() []byte {
	body, _ := json.Marshal(models.TripCreateRequest{
		User: "yvonne",
		Locations: []models.TripLocation{
			{Name: "San Francisco", Position: models.Point{Lat: 37.7749, Lng: -122.4194}},
			{Name: "Sausalito", Position: models.Point{Lat: 37.8591, Lng: -122.4853}},
		},
	})
	return body
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var health models.Health
	err := json.Unmarshal(w.Body.Bytes(), &health)
	require.NoError(t, err)

	assert.Equal(t, models.HealthStatusOK, health.Status)
}

func TestRouter_ReadinessCheck(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/ready", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CreateAndListTrips(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodPost, "/v1/trips", bytes.NewReader(tripBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("Location"))

	var created models.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "yvonne", created.User)
	assert.NotEmpty(t, created.ID)

	req = httptest.NewRequest(http.MethodGet, "/v1/trips", http.NoBody)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var trips []models.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trips))
	require.Len(t, trips, 1)
	assert.Equal(t, created.ID, trips[0].ID)
}

func TestRouter_ListTrips_Filtered(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodPost, "/v1/trips", bytes.NewReader(tripBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name    string
		query   string
		wantLen int
	}{
		{name: "matching user", query: "?user=yvonne", wantLen: 1},
		{name: "other user", query: "?user=marco", wantLen: 0},
		{name: "matching location", query: "?location=Sausalito", wantLen: 1},
		{name: "unknown location", query: "?location=Utrecht", wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/trips"+tt.query, http.NoBody)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var trips []models.Trip
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trips))
			assert.Len(t, trips, tt.wantLen)
		})
	}
}

func TestRouter_CreateTrip_ValidationError(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	body, _ := json.Marshal(models.TripCreateRequest{User: "yvonne"})
	req := httptest.NewRequest(http.MethodPost, "/v1/trips", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.NotEmpty(t, problem.Errors)
}

func TestRouter_CountTrips(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/trips", bytes.NewReader(tripBody()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/trips/count", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var count models.TripCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &count))
	assert.Equal(t, 2, count.TotalTrips)
}

func TestRouter_DeleteTrip(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodPost, "/v1/trips", bytes.NewReader(tripBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req = httptest.NewRequest(http.MethodDelete, "/v1/trips/"+created.ID, http.NoBody)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again returns 404.
	req = httptest.NewRequest(http.MethodDelete, "/v1/trips/"+created.ID, http.NoBody)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_DeleteTrip_NotFound(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodDelete, "/v1/trips/trp_missing", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
}

func TestRouter_ComputeRoute(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	body, _ := json.Marshal(models.RouteComputeRequest{
		Waypoints: []models.Waypoint{
			{Name: "A", Position: models.Point{Lat: 37.7749, Lng: -122.4194}},
			{Name: "B", Position: models.Point{Lat: 37.8591, Lng: -122.4853}},
			{Name: "C", Position: models.Point{Lat: 37.9061, Lng: -122.5450}},
		},
		TravelMode: "driving",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/routes:compute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result models.RouteComputeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Len(t, result.Legs, 2)
	assert.Equal(t, "20.30 km", result.TotalDistance)
	assert.Equal(t, "29 mins", result.TotalDuration)
	assert.Equal(t, "stub", result.Provider)
}

func TestRouter_ComputeRoute_InsufficientWaypoints(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	body, _ := json.Marshal(models.RouteComputeRequest{
		Waypoints: []models.Waypoint{
			{Name: "A", Position: models.Point{Lat: 37.7749, Lng: -122.4194}},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/routes:compute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_ComputeRoute_ProviderFailure(t *testing.T) {
	provider := &stubProvider{err: &planner.ProviderError{
		Provider: "stub",
		Status:   "OVER_QUERY_LIMIT",
		Message:  "quota exceeded",
		Err:      planner.ErrRateLimitExceeded,
	}}
	router := newTestRouter(provider)

	body, _ := json.Marshal(models.RouteComputeRequest{
		Waypoints: []models.Waypoint{
			{Name: "A", Position: models.Point{Lat: 37.7749, Lng: -122.4194}},
			{Name: "B", Position: models.Point{Lat: 37.8591, Lng: -122.4853}},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/routes:compute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var problem models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Contains(t, problem.Detail, "OVER_QUERY_LIMIT")
}

func TestRouter_ComputeRoute_UnsupportedMode(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	body, _ := json.Marshal(models.RouteComputeRequest{
		Waypoints: []models.Waypoint{
			{Name: "A", Position: models.Point{Lat: 37.7749, Lng: -122.4194}},
			{Name: "B", Position: models.Point{Lat: 37.8591, Lng: -122.4853}},
		},
		TravelMode: "TELEPORT",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/routes:compute", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/nope", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
