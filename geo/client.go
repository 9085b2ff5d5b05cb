// Package geo wraps the public Nominatim geocoding service and ranks results
// by distance from a caller-supplied reference point.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	userAgent      = "FTA-Action-Sports/1.0"

	// SuggestionLimit caps how many candidates Nominatim is asked for.
	SuggestionLimit = 5
	// viewboxPad is the bias box half-width in degrees around the reference
	// point. The box is a hint only (bounded=0).
	viewboxPad = 0.25
)

// Point is a lat/lng pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Suggestion is one geocoding candidate.
type Suggestion struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"display_name"`
}

// Geocoder resolves free-text place queries to coordinates.
type Geocoder interface {
	Search(ctx context.Context, query string, near *Point) ([]Suggestion, error)
	Closest(ctx context.Context, query string, near *Point) (*Suggestion, error)
}

// Client talks to a Nominatim-compatible endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client against baseURL (the public OSM instance when
// empty). Callers degrade a failed lookup to "no results"; the transport
// timeout is the only guard against a hung geocoder.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// nominatimResult mirrors the wire format: coordinates come back as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search returns up to SuggestionLimit candidates for query, closest-first
// when near is given. An empty query returns nil without calling out.
func (c *Client) Search(ctx context.Context, query string, near *Point) ([]Suggestion, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", trimmed)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(SuggestionLimit))
	if near != nil {
		viewbox := fmt.Sprintf("%g,%g,%g,%g",
			near.Lng-viewboxPad, near.Lat-viewboxPad, near.Lng+viewboxPad, near.Lat+viewboxPad)
		params.Set("viewbox", viewbox)
		params.Set("bounded", "0")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("nominatim decode failed: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			continue
		}
		suggestions = append(suggestions, Suggestion{Lat: lat, Lng: lng, DisplayName: r.DisplayName})
	}

	if near != nil {
		// Stable: equidistant results keep Nominatim's relevance order.
		sort.SliceStable(suggestions, func(i, j int) bool {
			return DistanceKm(near.Lat, near.Lng, suggestions[i].Lat, suggestions[i].Lng) <
				DistanceKm(near.Lat, near.Lng, suggestions[j].Lat, suggestions[j].Lng)
		})
	}

	return suggestions, nil
}

// Closest returns the single best suggestion, or nil when there are none.
func (c *Client) Closest(ctx context.Context, query string, near *Point) (*Suggestion, error) {
	suggestions, err := c.Search(ctx, query, near)
	if err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		return nil, nil
	}
	return &suggestions[0], nil
}

const earthRadiusKm = 6371

// DistanceKm is the great-circle (haversine) distance between two points.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
