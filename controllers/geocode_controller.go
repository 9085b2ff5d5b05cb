package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fta-sports/api-go/geo"
)

type GeocodeController struct {
	Geocoder geo.Geocoder
}

func NewGeocodeController(geocoder geo.Geocoder) *GeocodeController {
	return &GeocodeController{Geocoder: geocoder}
}

// Search godoc
// @Summary Resolve a free-text place query to coordinates
// @Description Proxies Nominatim; suggestions ranked closest-first when lat/lng are given. A failed upstream lookup degrades to an empty list.
// @Tags geocode
// @Produce json
// @Param q query string true "Free-text place query"
// @Param lat query number false "Reference latitude"
// @Param lng query number false "Reference longitude"
// @Success 200 {object} map[string]interface{}
// @Router /geocode [get]
func (gc *GeocodeController) Search(c *gin.Context) {
	query := c.Query("q")

	var near *geo.Point
	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			near = &geo.Point{Lat: lat, Lng: lng}
		}
	}

	suggestions, err := gc.Geocoder.Search(c.Request.Context(), query, near)
	if err != nil {
		// Geocoder failure is "no results", not an error to the caller.
		log.Printf("geocode lookup failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"suggestions": []geo.Suggestion{}})
		return
	}
	if suggestions == nil {
		suggestions = []geo.Suggestion{}
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
