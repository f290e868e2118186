package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"marketnav/internal/domain/constants"
	"marketnav/internal/domain/entity"
	"marketnav/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultMapboxBaseURL = "https://api.mapbox.com"

// mapboxProvider calls the Mapbox Directions API v5
type mapboxProvider struct {
	client      HTTPDoer
	accessToken string
	baseURL     string
}

// NewMapboxProvider creates a Mapbox Directions provider. An empty base URL uses the public endpoint.
func NewMapboxProvider(client HTTPDoer, accessToken, baseURL string) service.RouteProvider {
	if baseURL == "" {
		baseURL = defaultMapboxBaseURL
	}

	return &mapboxProvider{
		client:      client,
		accessToken: accessToken,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

func (p *mapboxProvider) Name() string {
	return constants.RouteProviderMapbox
}

type mapboxResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
	} `json:"routes"`
}

func mapboxProfile(mode entity.NavigationMode) string {
	if mode == entity.NavigationModeDriving {
		return "driving"
	}

	return "walking"
}

func (p *mapboxProvider) Directions(ctx context.Context, req service.DirectionsRequest) (*service.ExternalRoute, error) {
	if p.accessToken == "" {
		return nil, errors.Wrap(ErrMissingCredentials, p.Name())
	}

	coordinates := fmt.Sprintf("%f,%f;%f,%f", req.StartLongitude, req.StartLatitude, req.EndLongitude, req.EndLatitude)
	query := url.Values{}
	query.Set("access_token", p.accessToken)
	query.Set("geometries", "polyline")
	query.Set("overview", "full")

	endpoint := p.baseURL + "/directions/v5/mapbox/" + mapboxProfile(req.Mode) + "/" + coordinates + "?" + query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		// the url carries the access token; keep it out of logs
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}

		return nil, errors.Wrap(err, "mapbox directions request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, readStatusError(p.Name(), resp)
	}

	var decoded mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode mapbox response")
	}
	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return nil, errors.Wrapf(ErrNoRoute, "%s: %s %s", p.Name(), decoded.Code, decoded.Message)
	}

	route := decoded.Routes[0]
	coords, err := decodePolyline(route.Geometry)
	if err != nil {
		return nil, err
	}

	return &service.ExternalRoute{
		Provider:        p.Name(),
		DistanceMeters:  route.Distance,
		DurationSeconds: int(route.Duration),
		Coordinates:     coords,
		EncodedPolyline: route.Geometry,
	}, nil
}
