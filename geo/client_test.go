package geo

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyQuerySkipsRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	got, err := client.Search(context.Background(), "   ", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, called, "empty query must not hit the geocoder")
}

func TestSearchRequestShape(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	near := &Point{Lat: 34.0522, Lng: -118.2437}

	_, err := client.Search(context.Background(), "  venice beach ", near)
	require.NoError(t, err)
	require.NotNil(t, captured)

	q := captured.URL.Query()
	assert.Equal(t, "venice beach", q.Get("q"))
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "5", q.Get("limit"))
	assert.Equal(t, "0", q.Get("bounded"))
	assert.Equal(t, "-118.4937,33.8022,-117.9937,34.3022", q.Get("viewbox"))
	assert.Equal(t, "FTA-Action-Sports/1.0", captured.Header.Get("User-Agent"))
	assert.Equal(t, "en", captured.Header.Get("Accept-Language"))
}

func TestSearchNoViewboxWithoutReference(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	_, err := client.Search(context.Background(), "barcelona", nil)
	require.NoError(t, err)
	assert.Empty(t, captured.URL.Query().Get("viewbox"))
	assert.Empty(t, captured.URL.Query().Get("bounded"))
}

func TestSearchSortsByDistance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"lat": "40.7128", "lon": "-74.0060", "display_name": "New York"},
			{"lat": "34.0522", "lon": "-118.2437", "display_name": "Los Angeles"},
			{"lat": "36.1699", "lon": "-115.1398", "display_name": "Las Vegas"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	near := &Point{Lat: 34.0522, Lng: -118.2437}

	got, err := client.Search(context.Background(), "downtown", near)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Los Angeles", got[0].DisplayName)
	assert.Equal(t, "Las Vegas", got[1].DisplayName)
	assert.Equal(t, "New York", got[2].DisplayName)
}

func TestSearchKeepsRelevanceOrderWithoutReference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"lat": "40.7128", "lon": "-74.0060", "display_name": "First"},
			{"lat": "34.0522", "lon": "-118.2437", "display_name": "Second"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	got, err := client.Search(context.Background(), "main street", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].DisplayName)
	assert.Equal(t, "Second", got[1].DisplayName)
}

func TestSearchEquidistantResultsKeepRelevanceOrder(t *testing.T) {
	// "West" and "East" sit exactly one degree of longitude either side of the
	// reference point, so their distances tie and the upstream order decides.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"lat": "5.0", "lon": "0.0", "display_name": "Farther"},
			{"lat": "0.0", "lon": "-1.0", "display_name": "West"},
			{"lat": "0.0", "lon": "1.0", "display_name": "East"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	near := &Point{Lat: 0, Lng: 0}

	got, err := client.Search(context.Background(), "equator", near)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "West", got[0].DisplayName)
	assert.Equal(t, "East", got[1].DisplayName)
	assert.Equal(t, "Farther", got[2].DisplayName)
}

func TestSearchSkipsUnparsableCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"lat": "not-a-number", "lon": "-74.0060", "display_name": "Broken"},
			{"lat": "34.0522", "lon": "-118.2437", "display_name": "Good"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	got, err := client.Search(context.Background(), "somewhere", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Good", got[0].DisplayName)
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	got, err := client.Search(context.Background(), "anywhere", nil)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestClosest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"lat": "40.7128", "lon": "-74.0060", "display_name": "Far"},
			{"lat": "34.0522", "lon": "-118.2437", "display_name": "Near"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	near := &Point{Lat: 34.0, Lng: -118.0}

	got, err := client.Closest(context.Background(), "spot", near)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Near", got.DisplayName)
}

func TestClosestNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	got, err := client.Closest(context.Background(), "nowhere at all", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDistanceKm(t *testing.T) {
	// LA to NYC is roughly 3936 km great-circle.
	d := DistanceKm(34.0522, -118.2437, 40.7128, -74.0060)
	assert.InDelta(t, 3936, d, 50)

	assert.Equal(t, 0.0, DistanceKm(34.0522, -118.2437, 34.0522, -118.2437))

	// Symmetric.
	d2 := DistanceKm(40.7128, -74.0060, 34.0522, -118.2437)
	assert.True(t, math.Abs(d-d2) < 1e-9)
}
