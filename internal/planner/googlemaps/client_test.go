package googlemaps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yvonnejhao/Travel-Planner/internal/planner"
)

func TestClient_Directions_Success(t *testing.T) {
	respBody, err := os.ReadFile("testdata/directions_response.json")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/maps/api/directions/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		q := r.URL.Query()
		if got := q.Get("origin"); got != "37.7749295,-122.4194155" {
			t.Errorf("unexpected origin %q", got)
		}
		if got := q.Get("destination"); got != "37.9060902,-122.5449763" {
			t.Errorf("unexpected destination %q", got)
		}
		if got := q.Get("waypoints"); got != "37.8590937,-122.4852507" {
			t.Errorf("unexpected waypoints %q", got)
		}
		if got := q.Get("mode"); got != "driving" {
			t.Errorf("unexpected mode %q", got)
		}
		if got := q.Get("key"); got != "mock123" {
			t.Errorf("unexpected key %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(respBody)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "mock123",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	resp, err := client.Directions(context.Background(), planner.DirectionsRequest{
		Origin:      planner.LatLng{Lat: 37.7749295, Lng: -122.4194155},
		Destination: planner.LatLng{Lat: 37.9060902, Lng: -122.5449763},
		Waypoints: []planner.Stop{
			{Location: planner.LatLng{Lat: 37.8590937, Lng: -122.4852507}, Stopover: true},
		},
		Mode: planner.TravelModeDriving,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Provider != ProviderName {
		t.Errorf("expected provider %s, got %s", ProviderName, resp.Provider)
	}
	if len(resp.Routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(resp.Routes))
	}

	route := resp.Routes[0]
	if len(route.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(route.Legs))
	}
	if route.OverviewPolyline == "" {
		t.Error("expected non-empty overview polyline")
	}

	leg := route.Legs[0]
	if leg.StartAddress != "San Francisco, CA, USA" {
		t.Errorf("unexpected start address %q", leg.StartAddress)
	}
	if leg.DistanceMeters != 13500 {
		t.Errorf("expected distance 13500, got %d", leg.DistanceMeters)
	}
	if leg.DurationSeconds != 1080 {
		t.Errorf("expected duration 1080, got %d", leg.DurationSeconds)
	}
	if leg.EndLocation.Lat != 37.8590937 {
		t.Errorf("unexpected end location lat %f", leg.EndLocation.Lat)
	}
}

func TestClient_Directions_OptimizePrefix(t *testing.T) {
	respBody, err := os.ReadFile("testdata/directions_response.json")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("waypoints"); got != "optimize:true|37.8590937,-122.4852507" {
			t.Errorf("unexpected waypoints %q", got)
		}
		w.WriteHeader(http.StatusOK)
		w.Write(respBody)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "mock123",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err = client.Directions(context.Background(), planner.DirectionsRequest{
		Origin:      planner.LatLng{Lat: 37.7749295, Lng: -122.4194155},
		Destination: planner.LatLng{Lat: 37.9060902, Lng: -122.5449763},
		Waypoints: []planner.Stop{
			{Location: planner.LatLng{Lat: 37.8590937, Lng: -122.4852507}, Stopover: true},
		},
		Mode:     planner.TravelModeDriving,
		Optimize: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Directions_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ZERO_RESULTS","routes":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "mock123",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.Directions(context.Background(), planner.DirectionsRequest{
		Origin:      planner.LatLng{Lat: 52.3676, Lng: 4.9041},
		Destination: planner.LatLng{Lat: 40.7128, Lng: -74.006},
		Mode:        planner.TravelModeDriving,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var provErr *planner.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if provErr.Status != "ZERO_RESULTS" {
		t.Errorf("expected status ZERO_RESULTS, got %s", provErr.Status)
	}
	if !errors.Is(provErr, planner.ErrNoRouteFound) {
		t.Errorf("expected ErrNoRouteFound, got %v", provErr.Err)
	}
}

func TestClient_Directions_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"OVER_QUERY_LIMIT","error_message":"You have exceeded your daily request quota","routes":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "mock123",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.Directions(context.Background(), planner.DirectionsRequest{
		Origin:      planner.LatLng{Lat: 52.3676, Lng: 4.9041},
		Destination: planner.LatLng{Lat: 52.0907, Lng: 5.1214},
		Mode:        planner.TravelModeDriving,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var provErr *planner.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if !errors.Is(provErr, planner.ErrRateLimitExceeded) {
		t.Errorf("expected ErrRateLimitExceeded, got %v", provErr.Err)
	}
	if provErr.Message != "You have exceeded your daily request quota" {
		t.Errorf("unexpected message %q", provErr.Message)
	}
}

func TestClient_Directions_RequestDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid","routes":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "bad-key",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.Directions(context.Background(), planner.DirectionsRequest{
		Origin:      planner.LatLng{Lat: 52.3676, Lng: 4.9041},
		Destination: planner.LatLng{Lat: 52.0907, Lng: 5.1214},
		Mode:        planner.TravelModeDriving,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var provErr *planner.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if !errors.Is(provErr, planner.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", provErr.Err)
	}
}

func TestClient_Directions_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`Internal Server Error`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		APIKey:     "mock123",
		BaseURL:    server.URL,
		HTTPClient: &mockHTTPClient{client: server.Client()},
		Logger:     zerolog.Nop(),
	})

	_, err := client.Directions(context.Background(), planner.DirectionsRequest{
		Origin:      planner.LatLng{Lat: 52.3676, Lng: 4.9041},
		Destination: planner.LatLng{Lat: 52.0907, Lng: 5.1214},
		Mode:        planner.TravelModeDriving,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var provErr *planner.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if !errors.Is(provErr, planner.ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", provErr.Err)
	}
}

func TestClient_Directions_NetworkError(t *testing.T) {
	client := NewClient(ClientConfig{
		APIKey:     "mock123",
		HTTPClient: &mockFailingClient{},
		Logger:     zerolog.Nop(),
	})

	_, err := client.Directions(context.Background(), planner.DirectionsRequest{
		Origin:      planner.LatLng{Lat: 52.3676, Lng: 4.9041},
		Destination: planner.LatLng{Lat: 52.0907, Lng: 5.1214},
		Mode:        planner.TravelModeDriving,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, planner.ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestClient_Directions_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name        string
		origin      planner.LatLng
		destination planner.LatLng
	}{
		{
			name:        "origin latitude out of range",
			origin:      planner.LatLng{Lat: 91.0, Lng: 4.9},
			destination: planner.LatLng{Lat: 52.0, Lng: 5.1},
		},
		{
			name:        "origin longitude out of range",
			origin:      planner.LatLng{Lat: 52.0, Lng: -181.0},
			destination: planner.LatLng{Lat: 52.0, Lng: 5.1},
		},
		{
			name:        "destination latitude out of range",
			origin:      planner.LatLng{Lat: 52.0, Lng: 4.9},
			destination: planner.LatLng{Lat: -90.1, Lng: 5.1},
		},
	}

	client := NewClient(ClientConfig{
		APIKey: "mock123",
		Logger: zerolog.Nop(),
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Directions(context.Background(), planner.DirectionsRequest{
				Origin:      tt.origin,
				Destination: tt.destination,
				Mode:        planner.TravelModeDriving,
			})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, planner.ErrInvalidRequest) {
				t.Errorf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestClient_Name(t *testing.T) {
	client := NewClient(ClientConfig{APIKey: "test", Logger: zerolog.Nop()})
	if client.Name() != ProviderName {
		t.Errorf("expected %s, got %s", ProviderName, client.Name())
	}
}

func TestFormatWaypoints(t *testing.T) {
	stops := []planner.Stop{
		{Location: planner.LatLng{Lat: 1, Lng: 2}, Stopover: true},
		{Location: planner.LatLng{Lat: 3, Lng: 4}, Stopover: false},
	}

	if got := formatWaypoints(stops, false); got != "1,2|via:3,4" {
		t.Errorf("formatWaypoints() = %q", got)
	}
	if got := formatWaypoints(stops, true); got != "optimize:true|1,2|via:3,4" {
		t.Errorf("formatWaypoints() with optimize = %q", got)
	}
}

// mockHTTPClient wraps http.Client to implement HTTPDoer interface.
type mockHTTPClient struct {
	client *http.Client
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.client.Do(req)
}

// mockFailingClient simulates network errors.
type mockFailingClient struct{}

func (m *mockFailingClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("network error")
}
