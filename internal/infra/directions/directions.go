// Package directions implements external route providers (Google Routes, Mapbox Directions).
package directions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"marketnav/config"
	"marketnav/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twpayne/go-polyline"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

var (
	ErrMissingCredentials = errors.New("provider credentials are not configured")
	ErrNoRoute            = errors.New("provider returned no route")
)

// StatusError is a non-2xx answer from a provider
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// HTTPDoer is satisfied by *http.Client
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

const maxErrorBody = 512

func readStatusError(provider string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	return &StatusError{
		Provider:   provider,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}

// decodePolyline turns an encoded polyline into [lon, lat] pairs
func decodePolyline(encoded string) ([][2]float64, error) {
	if encoded == "" {
		return nil, nil
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "decode polyline")
	}

	points := make([][2]float64, 0, len(coords))
	for _, c := range coords {
		points = append(points, [2]float64{c[1], c[0]})
	}

	return points, nil
}

// limitedProvider throttles calls to the wrapped provider
type limitedProvider struct {
	next    service.RouteProvider
	limiter *rate.Limiter
}

func (p *limitedProvider) Name() string {
	return p.next.Name()
}

func (p *limitedProvider) Directions(ctx context.Context, req service.DirectionsRequest) (*service.ExternalRoute, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrapf(err, "%s rate limit", p.next.Name())
	}

	return p.next.Directions(ctx, req)
}

// WithRateLimit wraps a provider with a token bucket. A non-positive rate disables throttling.
func WithRateLimit(provider service.RouteProvider, perSecond float64, burst int) service.RouteProvider {
	if perSecond <= 0 {
		return provider
	}
	if burst <= 0 {
		burst = 1
	}

	return &limitedProvider{
		next:    provider,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// NewRouteProviders builds every configured provider sharing one timeout-bounded client.
// Providers without credentials are still registered and fail with ErrMissingCredentials.
func NewRouteProviders(cfg *config.Config, logger *slog.Logger) []service.RouteProvider {
	routesCfg := cfg.ExternalRoutes
	client := &http.Client{Timeout: routesCfg.Timeout}

	google := NewGoogleProvider(client, routesCfg.Google.APIKey, routesCfg.Google.BaseURL)
	mapbox := NewMapboxProvider(client, routesCfg.Mapbox.AccessToken, routesCfg.Mapbox.BaseURL)

	logger.Info("External route providers registered",
		slog.Bool("google_configured", routesCfg.Google.APIKey != ""),
		slog.Bool("mapbox_configured", routesCfg.Mapbox.AccessToken != ""),
		slog.Duration("timeout", routesCfg.Timeout),
		slog.Float64("rate_limit_per_second", routesCfg.RateLimitPerSecond),
	)

	return []service.RouteProvider{
		WithRateLimit(google, routesCfg.RateLimitPerSecond, routesCfg.Burst),
		WithRateLimit(mapbox, routesCfg.RateLimitPerSecond, routesCfg.Burst),
	}
}

// Module provides the external route providers
var Module = fx.Options(
	fx.Provide(NewRouteProviders),
)
