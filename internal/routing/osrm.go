package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrNoRoute is returned when the routing service has no path between
// the requested points.
var ErrNoRoute = errors.New("could not find a route")

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Route is a computed foot route between two points.
type Route struct {
	// Distance in meters.
	Distance float64 `json:"distance"`
	// Duration in seconds.
	Duration float64 `json:"duration"`
	// Polyline in latitude/longitude order, ready for map display.
	Polyline []LatLng `json:"polyline"`
}

// APIError represents a routing service error response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("routing service error (%d): %s", e.Status, e.Message)
}

// Client calls an OSRM-compatible routing service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a routing client against an OSRM base URL, e.g.
// https://router.project-osrm.org.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// osrmResponse mirrors the subset of the OSRM route response we use.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			// GeoJSON positions, longitude first.
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// coord formats a coordinate without losing precision.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FootRoute fetches a walking route from start to end.
func (c *Client) FootRoute(ctx context.Context, start, end LatLng) (*Route, error) {
	url := fmt.Sprintf("%s/route/v1/foot/%s,%s;%s,%s?overview=full&geometries=geojson",
		c.baseURL, coord(start.Lng), coord(start.Lat), coord(end.Lng), coord(end.Lat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var body osrmResponse
	if err := c.do(req, &body); err != nil {
		return nil, err
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, ErrNoRoute
	}

	best := body.Routes[0]
	route := &Route{
		Distance: best.Distance,
		Duration: best.Duration,
		Polyline: make([]LatLng, 0, len(best.Geometry.Coordinates)),
	}
	for _, pos := range best.Geometry.Coordinates {
		if len(pos) < 2 {
			continue
		}
		route.Polyline = append(route.Polyline, LatLng{Lat: pos[1], Lng: pos[0]})
	}
	return route, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.Message
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}
	return nil
}

// KmText formats the route distance the way the map UI shows it.
func (r *Route) KmText() string {
	return fmt.Sprintf("%.2f km", r.Distance/1000)
}

// WalkMinutes is the duration rounded up to whole minutes.
func (r *Route) WalkMinutes() int {
	return int(math.Ceil(r.Duration / 60))
}
