// Package mapview holds the client-side state for the spot map screen:
// viewport, device location, search, spot selection and the add-spot form.
// It drives the spot service and the geocoder; rendering is up to the caller.
package mapview

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fta-sports/api-go/geo"
	"github.com/fta-sports/api-go/models"
	"github.com/fta-sports/api-go/types"
)

// Default viewport: Los Angeles.
var DefaultCenter = geo.Point{Lat: 34.0522, Lng: -118.2437}

const (
	DefaultZoom = 10
	// SearchZoom is the minimum zoom applied when re-centering on a result.
	SearchZoom = 14
	// DebounceDelay is how long search input must settle before a lookup.
	DebounceDelay = 400 * time.Millisecond
	// minQueryLen gates suggestion lookups; shorter input clears the list.
	minQueryLen = 2
)

// SpotInput is the add-spot form payload.
type SpotInput struct {
	Name        string
	Sport       string
	Type        string
	Lat         float64
	Lng         float64
	Description string
}

// SpotService is the aggregator-side collaborator.
type SpotService interface {
	SpotsWithStats(ctx context.Context) ([]types.SpotWithStats, error)
	CreateSpot(ctx context.Context, input SpotInput) (*models.Spot, error)
	CheckIn(ctx context.Context, spotID uuid.UUID) error
}

// Locator reports the device position.
type Locator interface {
	CurrentPosition(ctx context.Context) (geo.Point, error)
}

// Controller is safe for concurrent use; the debounce timer fires its lookup
// on a separate goroutine.
type Controller struct {
	svc      SpotService
	geocoder geo.Geocoder
	locator  Locator

	// Debounce defaults to DebounceDelay; tests shorten it.
	Debounce time.Duration

	mu            sync.Mutex
	spots         []types.SpotWithStats
	selectedID    *uuid.UUID
	userLocation  *geo.Point
	locationErr   string
	center        geo.Point
	zoom          int
	searchQuery   string
	suggestions   []geo.Suggestion
	searchCenter  *geo.Point
	searchErr     string
	addSpotAt     *geo.Point
	formErr       string
	debounceTimer *time.Timer
	searchSeq     uint64
}

func NewController(svc SpotService, geocoder geo.Geocoder, locator Locator) *Controller {
	return &Controller{
		svc:      svc,
		geocoder: geocoder,
		locator:  locator,
		Debounce: DebounceDelay,
		center:   DefaultCenter,
		zoom:     DefaultZoom,
	}
}

// Mount loads the spot list and then asks for the device location. A failed
// locate is non-fatal: the error flag is set and the default viewport kept.
func (c *Controller) Mount(ctx context.Context) error {
	if err := c.refresh(ctx); err != nil {
		return err
	}
	c.Locate(ctx)
	return nil
}

// Locate re-requests the device position and re-centers on success.
func (c *Controller) Locate(ctx context.Context) {
	pos, err := c.locator.CurrentPosition(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.locationErr = "Location unavailable"
		return
	}
	c.locationErr = ""
	c.userLocation = &pos
	c.center = pos
}

// refresh re-fetches the full stats-enriched spot list and re-applies the
// current selection from the fresh data.
func (c *Controller) refresh(ctx context.Context) error {
	spots, err := c.svc.SpotsWithStats(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spots = spots
	if c.selectedID != nil {
		found := false
		for _, s := range spots {
			if s.ID == *c.selectedID {
				found = true
				break
			}
		}
		if !found {
			c.selectedID = nil
		}
	}
	return nil
}

// SelectSpot opens the stats card for a marker. Returns false for unknown ids.
func (c *Controller) SelectSpot(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.spots {
		if s.ID == id {
			c.selectedID = &id
			return true
		}
	}
	return false
}

// CloseCard returns to the idle state.
func (c *Controller) CloseCard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedID = nil
}

// CheckIn records a check-in at the selected spot, then does a full stats
// refresh so the card shows updated numbers.
func (c *Controller) CheckIn(ctx context.Context) error {
	c.mu.Lock()
	if c.selectedID == nil {
		c.mu.Unlock()
		return nil
	}
	spotID := *c.selectedID
	c.mu.Unlock()

	if err := c.svc.CheckIn(ctx, spotID); err != nil {
		return err
	}
	return c.refresh(ctx)
}

// SetSearchQuery records typed input and schedules a debounced suggestion
// lookup. Responses landing after newer input are discarded (last write wins).
func (c *Controller) SetSearchQuery(ctx context.Context, query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchQuery = query
	c.searchErr = ""
	c.searchSeq++
	seq := c.searchSeq

	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
	}

	if len(strings.TrimSpace(query)) < minQueryLen {
		c.suggestions = nil
		return
	}

	c.debounceTimer = time.AfterFunc(c.Debounce, func() {
		c.lookupSuggestions(ctx, query, seq)
	})
}

func (c *Controller) lookupSuggestions(ctx context.Context, query string, seq uint64) {
	near := c.referencePoint()
	suggestions, err := c.geocoder.Search(ctx, query, &near)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.searchSeq {
		return
	}
	if err != nil {
		c.suggestions = nil
		return
	}
	c.suggestions = suggestions
}

// SubmitSearch resolves the query to its single closest match and re-centers
// the viewport there.
func (c *Controller) SubmitSearch(ctx context.Context) {
	c.mu.Lock()
	query := strings.TrimSpace(c.searchQuery)
	c.suggestions = nil
	c.searchErr = ""
	c.mu.Unlock()
	if query == "" {
		return
	}

	near := c.referencePoint()
	result, err := c.geocoder.Closest(ctx, query, &near)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.searchErr = "Search failed"
		return
	}
	if result == nil {
		c.searchErr = "Address not found"
		return
	}
	c.applySearchCenter(geo.Point{Lat: result.Lat, Lng: result.Lng})
}

// SelectSuggestion accepts one entry from the suggestion list.
func (c *Controller) SelectSuggestion(s geo.Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchQuery = s.DisplayName
	c.suggestions = nil
	c.searchErr = ""
	c.applySearchCenter(geo.Point{Lat: s.Lat, Lng: s.Lng})
}

// applySearchCenter must be called with the lock held.
func (c *Controller) applySearchCenter(p geo.Point) {
	c.searchCenter = &p
	c.center = p
	if c.zoom < SearchZoom {
		c.zoom = SearchZoom
	}
}

// referencePoint is the bias point for geocoding: the device location, else
// the last search result, else the default center.
func (c *Controller) referencePoint() geo.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.userLocation != nil {
		return *c.userLocation
	}
	if c.searchCenter != nil {
		return *c.searchCenter
	}
	return DefaultCenter
}

// OpenAddSpotForm anchors the add-spot form at a map coordinate (right-click).
func (c *Controller) OpenAddSpotForm(lat, lng float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addSpotAt = &geo.Point{Lat: lat, Lng: lng}
	c.formErr = ""
}

func (c *Controller) CancelAddSpot() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addSpotAt = nil
	c.formErr = ""
}

// SubmitAddSpot creates the spot. On failure the form stays open with the
// error inline; on success it closes and the spot list refreshes.
func (c *Controller) SubmitAddSpot(ctx context.Context, input SpotInput) error {
	c.mu.Lock()
	anchor := c.addSpotAt
	c.mu.Unlock()
	if anchor == nil {
		return nil
	}
	input.Lat = anchor.Lat
	input.Lng = anchor.Lng

	if _, err := c.svc.CreateSpot(ctx, input); err != nil {
		c.mu.Lock()
		c.formErr = err.Error()
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.addSpotAt = nil
	c.formErr = ""
	c.mu.Unlock()
	return c.refresh(ctx)
}

// State accessors.

func (c *Controller) Spots() []types.SpotWithStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.SpotWithStats, len(c.spots))
	copy(out, c.spots)
	return out
}

// Selected returns the stats card currently shown, nil when idle.
func (c *Controller) Selected() *types.SpotWithStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == nil {
		return nil
	}
	for i := range c.spots {
		if c.spots[i].ID == *c.selectedID {
			s := c.spots[i]
			return &s
		}
	}
	return nil
}

func (c *Controller) Viewport() (geo.Point, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.center, c.zoom
}

func (c *Controller) UserLocation() *geo.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userLocation
}

func (c *Controller) LocationError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locationErr
}

func (c *Controller) Suggestions() []geo.Suggestion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suggestions
}

func (c *Controller) SearchCenter() *geo.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchCenter
}

func (c *Controller) SearchError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchErr
}

// AddSpotAnchor returns the coordinate the add-spot form is anchored at, nil
// when the form is closed.
func (c *Controller) AddSpotAnchor() *geo.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addSpotAt
}

func (c *Controller) FormError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formErr
}
