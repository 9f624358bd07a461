// Package googlemaps provides a client for the Google Maps Directions API.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yvonnejhao/Travel-Planner/internal/planner"
	"github.com/yvonnejhao/Travel-Planner/internal/provider/resilience"
)

const (
	// ProviderName identifies this directions provider.
	ProviderName = "googlemaps"

	// DefaultBaseURL is the Google Maps API base URL.
	DefaultBaseURL = "https://maps.googleapis.com"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 10 * time.Second
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Google Maps directions client.
type ClientConfig struct {
	// APIKey is the Google Maps API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to the Google Maps API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient HTTPDoer

	// Timeout is the request timeout (optional, defaults to 10s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a Google Maps Directions API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new Google Maps directions client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = timeout
		client := resilience.NewClient(clientCfg)
		if cfg.Registry != nil {
			cfg.Registry.Register(ProviderName, client)
		}
		httpClient = client
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Directions routes from origin to destination through the ordered
// stopovers, optionally letting the provider reorder them.
func (c *Client) Directions(ctx context.Context, req planner.DirectionsRequest) (*planner.DirectionsResponse, error) {
	if err := validateCoordinates(req.Origin); err != nil {
		return nil, &planner.ProviderError{
			Provider: ProviderName,
			Status:   statusInvalidRequest,
			Message:  "invalid origin coordinates",
			Err:      planner.ErrInvalidRequest,
		}
	}
	if err := validateCoordinates(req.Destination); err != nil {
		return nil, &planner.ProviderError{
			Provider: ProviderName,
			Status:   statusInvalidRequest,
			Message:  "invalid destination coordinates",
			Err:      planner.ErrInvalidRequest,
		}
	}

	endpoint := fmt.Sprintf("%s/maps/api/directions/json", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	q := url.Values{}
	q.Set("origin", formatLatLng(req.Origin))
	q.Set("destination", formatLatLng(req.Destination))
	if len(req.Waypoints) > 0 {
		q.Set("waypoints", formatWaypoints(req.Waypoints, req.Optimize))
	}
	q.Set("mode", strings.ToLower(string(req.Mode)))
	q.Set("key", c.apiKey)
	httpReq.URL.RawQuery = q.Encode()

	c.logger.Debug().
		Str("mode", string(req.Mode)).
		Int("stopover_count", len(req.Waypoints)).
		Bool("optimize", req.Optimize).
		Msg("requesting directions from Google Maps")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &planner.ProviderError{
			Provider: ProviderName,
			Status:   "UNREACHABLE",
			Message:  "failed to reach directions provider",
			Err:      planner.ErrProviderUnavailable,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &planner.ProviderError{
			Provider: ProviderName,
			Status:   fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message:  fmt.Sprintf("directions provider returned status %d", resp.StatusCode),
			Err:      planner.ErrProviderUnavailable,
		}
	}

	var gmResp directionsResponse
	if err := json.Unmarshal(respBody, &gmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if gmResp.Status != statusOK {
		return nil, c.statusError(&gmResp)
	}

	result := toDirectionsResponse(&gmResp)

	c.logger.Debug().
		Int("route_count", len(result.Routes)).
		Msg("received directions from Google Maps")

	return result, nil
}

// statusError maps a non-OK Directions API status to a domain error.
func (c *Client) statusError(resp *directionsResponse) error {
	message := resp.ErrorMessage
	if message == "" {
		message = "directions request failed with status " + resp.Status
	}

	provErr := &planner.ProviderError{
		Provider: ProviderName,
		Status:   resp.Status,
		Message:  message,
	}

	switch resp.Status {
	case statusZeroResults, statusNotFound:
		provErr.Err = planner.ErrNoRouteFound
	case statusOverQueryLimit, statusOverDailyLimit:
		provErr.Err = planner.ErrRateLimitExceeded
	case statusInvalidRequest, statusMaxWaypoints, statusRequestDenied:
		provErr.Err = planner.ErrInvalidRequest
	case statusUnknownError:
		provErr.Err = planner.ErrProviderUnavailable
	default:
		provErr.Err = planner.ErrProviderUnavailable
	}

	return provErr
}

// toDirectionsResponse converts the wire response to the domain model.
func toDirectionsResponse(resp *directionsResponse) *planner.DirectionsResponse {
	routes := make([]planner.Route, 0, len(resp.Routes))

	for i := range resp.Routes {
		gmRoute := &resp.Routes[i]
		route := planner.Route{
			OverviewPolyline: gmRoute.OverviewPolyline.Points,
			Legs:             make([]planner.Leg, 0, len(gmRoute.Legs)),
		}

		for _, leg := range gmRoute.Legs {
			route.Legs = append(route.Legs, planner.Leg{
				StartAddress:    leg.StartAddress,
				EndAddress:      leg.EndAddress,
				DistanceText:    leg.Distance.Text,
				DurationText:    leg.Duration.Text,
				DistanceMeters:  leg.Distance.Value,
				DurationSeconds: leg.Duration.Value,
				StartLocation:   planner.LatLng{Lat: leg.StartLocation.Lat, Lng: leg.StartLocation.Lng},
				EndLocation:     planner.LatLng{Lat: leg.EndLocation.Lat, Lng: leg.EndLocation.Lng},
			})
		}

		routes = append(routes, route)
	}

	return &planner.DirectionsResponse{
		Routes:   routes,
		Provider: ProviderName,
	}
}

// formatLatLng renders a coordinate as the "lat,lng" pair Google expects.
func formatLatLng(p planner.LatLng) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// formatWaypoints renders the stopover list, prefixed with the optimize
// directive when the provider may reorder stops. Non-stopover entries are
// passed as via points.
func formatWaypoints(stops []planner.Stop, optimize bool) string {
	parts := make([]string, 0, len(stops)+1)
	if optimize {
		parts = append(parts, "optimize:true")
	}
	for _, s := range stops {
		point := formatLatLng(s.Location)
		if !s.Stopover {
			point = "via:" + point
		}
		parts = append(parts, point)
	}
	return strings.Join(parts, "|")
}

// validateCoordinates checks if coordinates are within valid ranges.
func validateCoordinates(p planner.LatLng) error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", p.Lat)
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", p.Lng)
	}
	return nil
}
