// Package googlemaps provides a client for the Google Maps Geocoding API.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/yvonnejhao/Travel-Planner/internal/geocoding"
	"github.com/yvonnejhao/Travel-Planner/internal/provider/resilience"
)

const (
	// ProviderName identifies this geocoding provider.
	ProviderName = "googlemaps-geocoding"

	// DefaultBaseURL is the Google Maps API base URL.
	DefaultBaseURL = "https://maps.googleapis.com"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 10 * time.Second
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the geocoding client.
type ClientConfig struct {
	// APIKey is the Google Maps API key (required).
	APIKey string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	HTTPClient HTTPDoer

	// Timeout is the request timeout (optional, defaults to 10s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a Google Maps Geocoding API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// NewClient creates a new geocoding client.
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

// geocodeResponse represents the Geocoding API response.
type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text address via the Geocoding API.
// The first (best) result is returned.
func (c *Client) Geocode(ctx context.Context, address string) (*geocoding.Location, error) {
	endpoint := fmt.Sprintf("%s/maps/api/geocode/json", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	c.logger.Debug().
		Str("address", address).
		Msg("geocoding address")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &geocoding.Error{
			Provider: ProviderName,
			Status:   "UNREACHABLE",
			Message:  "failed to reach geocoding provider",
			Err:      geocoding.ErrProviderUnavailable,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &geocoding.Error{
			Provider: ProviderName,
			Status:   fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message:  fmt.Sprintf("geocoding provider returned status %d", resp.StatusCode),
			Err:      geocoding.ErrProviderUnavailable,
		}
	}

	var gmResp geocodeResponse
	if err := json.Unmarshal(respBody, &gmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	switch gmResp.Status {
	case "OK":
		// fall through to result extraction
	case "ZERO_RESULTS":
		return nil, &geocoding.Error{
			Provider: ProviderName,
			Status:   gmResp.Status,
			Message:  "no results for " + address,
			Err:      geocoding.ErrNoResults,
		}
	default:
		message := gmResp.ErrorMessage
		if message == "" {
			message = "geocoding failed with status " + gmResp.Status
		}
		return nil, &geocoding.Error{
			Provider: ProviderName,
			Status:   gmResp.Status,
			Message:  message,
			Err:      geocoding.ErrProviderUnavailable,
		}
	}

	if len(gmResp.Results) == 0 {
		return nil, &geocoding.Error{
			Provider: ProviderName,
			Status:   gmResp.Status,
			Message:  "no results for " + address,
			Err:      geocoding.ErrNoResults,
		}
	}

	best := gmResp.Results[0]
	return &geocoding.Location{
		FormattedAddress: best.FormattedAddress,
		Lat:              best.Geometry.Location.Lat,
		Lng:              best.Geometry.Location.Lng,
	}, nil
}
