package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"marketnav/internal/domain/constants"
	"marketnav/internal/domain/entity"
	"marketnav/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultGoogleBaseURL = "https://routes.googleapis.com"
	googleFieldMask      = "routes.duration,routes.distanceMeters,routes.polyline.encodedPolyline"
)

// googleProvider calls the Google Routes API v2 computeRoutes endpoint
type googleProvider struct {
	client  HTTPDoer
	apiKey  string
	baseURL string
}

// NewGoogleProvider creates a Google Routes provider. An empty base URL uses the public endpoint.
func NewGoogleProvider(client HTTPDoer, apiKey, baseURL string) service.RouteProvider {
	if baseURL == "" {
		baseURL = defaultGoogleBaseURL
	}

	return &googleProvider{
		client:  client,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (p *googleProvider) Name() string {
	return constants.RouteProviderGoogle
}

type googleLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type googleWaypoint struct {
	Location struct {
		LatLng googleLatLng `json:"latLng"`
	} `json:"location"`
}

type googleRoutesRequest struct {
	Origin      googleWaypoint `json:"origin"`
	Destination googleWaypoint `json:"destination"`
	TravelMode  string         `json:"travelMode"`
}

type googleRoutesResponse struct {
	Routes []struct {
		Duration       string  `json:"duration"`
		DistanceMeters float64 `json:"distanceMeters"`
		Polyline       struct {
			EncodedPolyline string `json:"encodedPolyline"`
		} `json:"polyline"`
	} `json:"routes"`
}

func googleTravelMode(mode entity.NavigationMode) string {
	if mode == entity.NavigationModeDriving {
		return "DRIVE"
	}

	return "WALK"
}

func (p *googleProvider) Directions(ctx context.Context, req service.DirectionsRequest) (*service.ExternalRoute, error) {
	if p.apiKey == "" {
		return nil, errors.Wrap(ErrMissingCredentials, p.Name())
	}

	body := googleRoutesRequest{TravelMode: googleTravelMode(req.Mode)}
	body.Origin.Location.LatLng = googleLatLng{Latitude: req.StartLatitude, Longitude: req.StartLongitude}
	body.Destination.Location.LatLng = googleLatLng{Latitude: req.EndLatitude, Longitude: req.EndLongitude}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/directions/v2:computeRoutes", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Goog-Api-Key", p.apiKey)
	httpReq.Header.Set("X-Goog-FieldMask", googleFieldMask)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "google routes request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, readStatusError(p.Name(), resp)
	}

	var decoded googleRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode google routes response")
	}
	if len(decoded.Routes) == 0 {
		return nil, errors.Wrap(ErrNoRoute, p.Name())
	}

	route := decoded.Routes[0]
	seconds, err := parseGoogleDuration(route.Duration)
	if err != nil {
		return nil, err
	}

	coords, err := decodePolyline(route.Polyline.EncodedPolyline)
	if err != nil {
		return nil, err
	}

	return &service.ExternalRoute{
		Provider:        p.Name(),
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: seconds,
		Coordinates:     coords,
		EncodedPolyline: route.Polyline.EncodedPolyline,
	}, nil
}

// parseGoogleDuration parses protobuf durations such as "450s" or "12.5s"
func parseGoogleDuration(raw string) (int, error) {
	trimmed := strings.TrimSuffix(raw, "s")
	if trimmed == "" {
		return 0, errors.Errorf("invalid duration %q", raw)
	}

	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid duration %q", raw)
	}

	return int(seconds), nil
}
