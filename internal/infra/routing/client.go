// Package routing talks to the live traffic-aware routing provider and
// carries the static zone fallback used when the provider cannot.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"driftwell/internal/domain/booking"
	"driftwell/internal/pkg/config"
)

var (
	ErrProviderUnavailable = errors.New("routing provider unavailable")
	ErrProviderStatus      = errors.New("routing provider returned non-OK status")
)

const metersPerMile = 1609.344

// RouteLeg is a single origin-to-destination estimate, already
// converted to the units the fee calculator works in.
type RouteLeg struct {
	DistanceMiles float64
	TravelMinutes int
}

// Client calls the routing provider over HTTP. The dispatch origin is
// injected at construction so tests and future depots can vary it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	originLat  float64
	originLng  float64
}

func NewClient(routingCfg config.RoutingConfig, dispatchCfg config.DispatchConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: routingCfg.Timeout},
		baseURL:    routingCfg.BaseURL,
		apiKey:     routingCfg.APIKey,
		originLat:  dispatchCfg.Latitude,
		originLng:  dispatchCfg.Longitude,
	}
}

type routeResponse struct {
	Status                   string  `json:"status"`
	DistanceMeters           float64 `json:"distance_meters"`
	DurationSeconds          float64 `json:"duration_seconds"`
	DurationInTrafficSeconds float64 `json:"duration_in_traffic_seconds"`
}

// Route asks the provider for the traffic-aware leg from the dispatch
// point to the destination, departing at departAt. Any failure is
// returned to the caller; the estimator decides whether to degrade.
func (c *Client) Route(ctx context.Context, dest booking.Address, departAt time.Time) (RouteLeg, error) {
	if c.baseURL == "" {
		return RouteLeg{}, ErrProviderUnavailable
	}

	q := url.Values{}
	q.Set("origin", fmt.Sprintf("%f,%f", c.originLat, c.originLng))
	if coord := dest.Coordinate(); coord != nil {
		q.Set("destination", fmt.Sprintf("%f,%f", coord.Lat, coord.Lng))
	} else {
		q.Set("destination", dest.String())
	}
	q.Set("departure_time", fmt.Sprintf("%d", departAt.Unix()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/route?"+q.Encode(), nil)
	if err != nil {
		return RouteLeg{}, fmt.Errorf("failed to build routing request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RouteLeg{}, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RouteLeg{}, fmt.Errorf("%w: http %d", ErrProviderStatus, resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return RouteLeg{}, fmt.Errorf("failed to decode routing response: %w", err)
	}
	if body.Status != "OK" {
		return RouteLeg{}, fmt.Errorf("%w: %s", ErrProviderStatus, body.Status)
	}

	// Prefer the congestion-aware duration when the provider has one.
	seconds := body.DurationInTrafficSeconds
	if seconds <= 0 {
		seconds = body.DurationSeconds
	}

	return RouteLeg{
		DistanceMiles: roundToTenth(body.DistanceMeters / metersPerMile),
		TravelMinutes: int(math.Ceil(seconds / 60)),
	}, nil
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
