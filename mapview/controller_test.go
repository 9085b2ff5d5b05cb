package mapview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fta-sports/api-go/geo"
	"github.com/fta-sports/api-go/models"
	"github.com/fta-sports/api-go/types"
)

type fakeSpotService struct {
	mu        sync.Mutex
	spots     []types.SpotWithStats
	listErr   error
	createErr error
	checkIns  []uuid.UUID
	fetches   int
}

func (f *fakeSpotService) SpotsWithStats(ctx context.Context) ([]types.SpotWithStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]types.SpotWithStats, len(f.spots))
	copy(out, f.spots)
	return out, nil
}

func (f *fakeSpotService) CreateSpot(ctx context.Context, input SpotInput) (*models.Spot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	spot := models.Spot{ID: uuid.New(), Name: input.Name, Sport: input.Sport, Type: input.Type, Lat: input.Lat, Lng: input.Lng}
	f.spots = append(f.spots, types.SpotWithStats{Spot: spot})
	return &spot, nil
}

func (f *fakeSpotService) CheckIn(ctx context.Context, spotID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkIns = append(f.checkIns, spotID)
	return nil
}

type fakeGeocoder struct {
	mu          sync.Mutex
	suggestions []geo.Suggestion
	err         error
	delay       time.Duration
	queries     []string
}

func (f *fakeGeocoder) Search(ctx context.Context, query string, near *geo.Point) ([]geo.Suggestion, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.suggestions, nil
}

func (f *fakeGeocoder) Closest(ctx context.Context, query string, near *geo.Point) (*geo.Suggestion, error) {
	suggestions, err := f.Search(ctx, query, near)
	if err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		return nil, nil
	}
	return &suggestions[0], nil
}

func (f *fakeGeocoder) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.queries))
	copy(out, f.queries)
	return out
}

type fakeLocator struct {
	pos geo.Point
	err error
}

func (f *fakeLocator) CurrentPosition(ctx context.Context) (geo.Point, error) {
	return f.pos, f.err
}

func spotWithStats(name string) types.SpotWithStats {
	return types.SpotWithStats{Spot: models.Spot{ID: uuid.New(), Name: name, Sport: "Skateboard", Type: "street"}}
}

func newTestController(svc *fakeSpotService, g *fakeGeocoder, l *fakeLocator) *Controller {
	c := NewController(svc, g, l)
	c.Debounce = 5 * time.Millisecond
	return c
}

func TestMountLoadsSpotsAndLocation(t *testing.T) {
	svc := &fakeSpotService{spots: []types.SpotWithStats{spotWithStats("Venice")}}
	loc := &fakeLocator{pos: geo.Point{Lat: 51.5074, Lng: -0.1278}}
	c := newTestController(svc, &fakeGeocoder{}, loc)

	require.NoError(t, c.Mount(context.Background()))

	assert.Len(t, c.Spots(), 1)
	center, zoom := c.Viewport()
	assert.Equal(t, loc.pos, center)
	assert.Equal(t, DefaultZoom, zoom)
	require.NotNil(t, c.UserLocation())
	assert.Empty(t, c.LocationError())
}

func TestMountLocationDeniedKeepsDefaultViewport(t *testing.T) {
	svc := &fakeSpotService{}
	loc := &fakeLocator{err: errors.New("permission denied")}
	c := newTestController(svc, &fakeGeocoder{}, loc)

	require.NoError(t, c.Mount(context.Background()))

	center, zoom := c.Viewport()
	assert.Equal(t, DefaultCenter, center)
	assert.Equal(t, DefaultZoom, zoom)
	assert.Nil(t, c.UserLocation())
	assert.Equal(t, "Location unavailable", c.LocationError())
}

func TestMountPropagatesListError(t *testing.T) {
	svc := &fakeSpotService{listErr: errors.New("db down")}
	c := newTestController(svc, &fakeGeocoder{}, &fakeLocator{})

	assert.Error(t, c.Mount(context.Background()))
}

func TestSelectSpotAndCloseCard(t *testing.T) {
	spot := spotWithStats("El Toro")
	svc := &fakeSpotService{spots: []types.SpotWithStats{spot}}
	c := newTestController(svc, &fakeGeocoder{}, &fakeLocator{})
	require.NoError(t, c.Mount(context.Background()))

	assert.False(t, c.SelectSpot(uuid.New()))
	assert.Nil(t, c.Selected())

	assert.True(t, c.SelectSpot(spot.ID))
	require.NotNil(t, c.Selected())
	assert.Equal(t, "El Toro", c.Selected().Name)

	c.CloseCard()
	assert.Nil(t, c.Selected())
}

func TestCheckInRefreshesStats(t *testing.T) {
	spot := spotWithStats("Stoner")
	svc := &fakeSpotService{spots: []types.SpotWithStats{spot}}
	c := newTestController(svc, &fakeGeocoder{}, &fakeLocator{})
	require.NoError(t, c.Mount(context.Background()))
	require.True(t, c.SelectSpot(spot.ID))

	// Simulate the backend recomputing stats on the next fetch.
	svc.mu.Lock()
	svc.spots[0].ActiveNow = 3
	svc.mu.Unlock()

	require.NoError(t, c.CheckIn(context.Background()))

	assert.Equal(t, []uuid.UUID{spot.ID}, svc.checkIns)
	require.NotNil(t, c.Selected())
	assert.Equal(t, 3, c.Selected().ActiveNow)
}

func TestCheckInWithoutSelectionIsNoop(t *testing.T) {
	svc := &fakeSpotService{}
	c := newTestController(svc, &fakeGeocoder{}, &fakeLocator{})

	require.NoError(t, c.CheckIn(context.Background()))
	assert.Empty(t, svc.checkIns)
}

func TestRefreshDropsStaleSelection(t *testing.T) {
	spot := spotWithStats("Soon Gone")
	svc := &fakeSpotService{spots: []types.SpotWithStats{spot}}
	c := newTestController(svc, &fakeGeocoder{}, &fakeLocator{})
	require.NoError(t, c.Mount(context.Background()))
	require.True(t, c.SelectSpot(spot.ID))

	svc.mu.Lock()
	svc.spots = nil
	svc.mu.Unlock()

	require.NoError(t, c.CheckIn(context.Background()))
	assert.Nil(t, c.Selected())
}

func TestSearchQueryDebounce(t *testing.T) {
	g := &fakeGeocoder{suggestions: []geo.Suggestion{{Lat: 1, Lng: 2, DisplayName: "Somewhere"}}}
	c := newTestController(&fakeSpotService{}, g, &fakeLocator{})
	ctx := context.Background()

	// Rapid typing: only the settled query should reach the geocoder.
	c.SetSearchQuery(ctx, "ve")
	c.SetSearchQuery(ctx, "ven")
	c.SetSearchQuery(ctx, "venice")

	assert.Eventually(t, func() bool {
		return len(c.Suggestions()) == 1
	}, time.Second, time.Millisecond)

	assert.Equal(t, []string{"venice"}, g.recorded())
}

func TestShortQueryClearsSuggestions(t *testing.T) {
	g := &fakeGeocoder{suggestions: []geo.Suggestion{{DisplayName: "Stale"}}}
	c := newTestController(&fakeSpotService{}, g, &fakeLocator{})
	ctx := context.Background()

	c.SetSearchQuery(ctx, "venice")
	assert.Eventually(t, func() bool {
		return len(c.Suggestions()) == 1
	}, time.Second, time.Millisecond)

	c.SetSearchQuery(ctx, "v")
	assert.Empty(t, c.Suggestions())

	// The pending timer was stopped: no second lookup fires.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, []string{"venice"}, g.recorded())
}

func TestStaleSuggestionResponseDiscarded(t *testing.T) {
	g := &fakeGeocoder{
		suggestions: []geo.Suggestion{{DisplayName: "Old"}},
		delay:       30 * time.Millisecond,
	}
	c := newTestController(&fakeSpotService{}, g, &fakeLocator{})
	ctx := context.Background()

	c.SetSearchQuery(ctx, "first")
	// Let the slow lookup start, then type again before it lands.
	time.Sleep(10 * time.Millisecond)
	c.SetSearchQuery(ctx, "s")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, c.Suggestions(), "response for superseded input must be dropped")
}

func TestLookupErrorYieldsEmptySuggestions(t *testing.T) {
	g := &fakeGeocoder{err: errors.New("rate limited")}
	c := newTestController(&fakeSpotService{}, g, &fakeLocator{})
	ctx := context.Background()

	c.SetSearchQuery(ctx, "venice")
	time.Sleep(30 * time.Millisecond)

	assert.Empty(t, c.Suggestions())
	assert.Empty(t, c.SearchError())
}

func TestSubmitSearchRecenters(t *testing.T) {
	g := &fakeGeocoder{suggestions: []geo.Suggestion{{Lat: 48.8566, Lng: 2.3522, DisplayName: "Paris"}}}
	c := newTestController(&fakeSpotService{}, g, &fakeLocator{})
	ctx := context.Background()

	c.SetSearchQuery(ctx, "paris")
	c.SubmitSearch(ctx)

	center, zoom := c.Viewport()
	assert.Equal(t, geo.Point{Lat: 48.8566, Lng: 2.3522}, center)
	assert.Equal(t, SearchZoom, zoom)
	assert.Empty(t, c.Suggestions())
	require.NotNil(t, c.SearchCenter())
}

func TestSubmitSearchKeepsHigherZoom(t *testing.T) {
	g := &fakeGeocoder{suggestions: []geo.Suggestion{{Lat: 1, Lng: 1, DisplayName: "Spot"}}}
	c := newTestController(&fakeSpotService{}, g, &fakeLocator{})
	ctx := context.Background()

	// Zoom in past the search floor first.
	c.SetSearchQuery(ctx, "close spot")
	c.SubmitSearch(ctx)
	c.mu.Lock()
	c.zoom = 17
	c.mu.Unlock()

	c.SetSearchQuery(ctx, "close spot")
	c.SubmitSearch(ctx)
	_, zoom := c.Viewport()
	assert.Equal(t, 17, zoom)
}

func TestSubmitSearchNotFound(t *testing.T) {
	c := newTestController(&fakeSpotService{}, &fakeGeocoder{}, &fakeLocator{})
	ctx := context.Background()

	c.SetSearchQuery(ctx, "nowhere at all")
	c.SubmitSearch(ctx)

	assert.Equal(t, "Address not found", c.SearchError())
	center, _ := c.Viewport()
	assert.Equal(t, DefaultCenter, center)
}

func TestSubmitSearchFailure(t *testing.T) {
	g := &fakeGeocoder{err: errors.New("boom")}
	c := newTestController(&fakeSpotService{}, g, &fakeLocator{})
	ctx := context.Background()

	c.SetSearchQuery(ctx, "anywhere")
	c.SubmitSearch(ctx)

	assert.Equal(t, "Search failed", c.SearchError())
}

func TestSelectSuggestion(t *testing.T) {
	c := newTestController(&fakeSpotService{}, &fakeGeocoder{}, &fakeLocator{})

	c.SelectSuggestion(geo.Suggestion{Lat: 41.3874, Lng: 2.1686, DisplayName: "Barcelona, Spain"})

	center, zoom := c.Viewport()
	assert.Equal(t, geo.Point{Lat: 41.3874, Lng: 2.1686}, center)
	assert.Equal(t, SearchZoom, zoom)
	assert.Empty(t, c.Suggestions())
}

func TestAddSpotAnchorsCoordinates(t *testing.T) {
	svc := &fakeSpotService{}
	c := newTestController(svc, &fakeGeocoder{}, &fakeLocator{})
	require.NoError(t, c.Mount(context.Background()))

	c.OpenAddSpotForm(33.99, -118.47)
	require.NotNil(t, c.AddSpotAnchor())

	// Input coordinates are ignored in favor of the anchor.
	err := c.SubmitAddSpot(context.Background(), SpotInput{Name: "New Rail", Sport: "Skateboard", Type: "street", Lat: 0, Lng: 0})
	require.NoError(t, err)

	require.Len(t, svc.spots, 1)
	assert.Equal(t, 33.99, svc.spots[0].Lat)
	assert.Equal(t, -118.47, svc.spots[0].Lng)
	assert.Nil(t, c.AddSpotAnchor())
	assert.Len(t, c.Spots(), 1)
}

func TestAddSpotFailureKeepsFormOpen(t *testing.T) {
	svc := &fakeSpotService{createErr: errors.New("Name, lat, and lng are required.")}
	c := newTestController(svc, &fakeGeocoder{}, &fakeLocator{})

	c.OpenAddSpotForm(10, 20)
	err := c.SubmitAddSpot(context.Background(), SpotInput{})
	assert.Error(t, err)

	assert.NotNil(t, c.AddSpotAnchor())
	assert.Equal(t, "Name, lat, and lng are required.", c.FormError())

	c.CancelAddSpot()
	assert.Nil(t, c.AddSpotAnchor())
	assert.Empty(t, c.FormError())
}

func TestSubmitAddSpotWithoutAnchorIsNoop(t *testing.T) {
	svc := &fakeSpotService{}
	c := newTestController(svc, &fakeGeocoder{}, &fakeLocator{})

	require.NoError(t, c.SubmitAddSpot(context.Background(), SpotInput{Name: "Orphan"}))
	assert.Empty(t, svc.spots)
}
