package controllers

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fta-sports/api-go/models"
	"github.com/fta-sports/api-go/stats"
	"github.com/fta-sports/api-go/types"
	"github.com/fta-sports/api-go/utils"
)

type SpotController struct {
	DB *gorm.DB
}

func NewSpotController(db *gorm.DB) *SpotController {
	return &SpotController{DB: db}
}

// CreateSpotRequest carries the raw add-spot form. Coordinates come in as
// strings so a non-numeric value is a validation error, not a zero.
type CreateSpotRequest struct {
	Name        string `json:"name"`
	Sport       string `json:"sport"`
	Type        string `json:"type"`
	Lat         string `json:"lat"`
	Lng         string `json:"lng"`
	Description string `json:"description"`
}

// ListSpots godoc
// @Summary Get all spots enriched with activity stats
// @Description Returns every spot with active-now count, weekly average, heating-up flag and recent visitors, ordered by name
// @Tags spots
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /spots [get]
func (sc *SpotController) ListSpots(c *gin.Context) {
	now := time.Now()

	var spotList []models.Spot
	if err := sc.DB.Order("name").Find(&spotList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var checkIns []models.CheckIn
	if err := sc.DB.
		Where("created_at >= ?", now.Add(-stats.TrendWindow)).
		Order("created_at").
		Find(&checkIns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	profiles, err := sc.loadProfiles(checkIns)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"spots": stats.Compute(now, spotList, checkIns, profiles)})
}

// loadProfiles fetches display fields for the distinct users in the window.
func (sc *SpotController) loadProfiles(checkIns []models.CheckIn) (map[uuid.UUID]stats.ProfileInfo, error) {
	seen := make(map[uuid.UUID]bool)
	userIDs := []uuid.UUID{}
	for _, ci := range checkIns {
		if !seen[ci.UserID] {
			seen[ci.UserID] = true
			userIDs = append(userIDs, ci.UserID)
		}
	}

	lookup := make(map[uuid.UUID]stats.ProfileInfo, len(userIDs))
	if len(userIDs) == 0 {
		return lookup, nil
	}

	var profiles []models.Profile
	if err := sc.DB.Where("id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		lookup[p.ID] = stats.ProfileInfo{DisplayName: p.DisplayName, AvatarURL: p.AvatarURL}
	}
	return lookup, nil
}

// CreateSpot godoc
// @Summary Create a new spot
// @Description Validates name and coordinates, normalizes sport/style into the fixed option tables
// @Tags spots
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /spots [post]
func (sc *SpotController) CreateSpot(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	lat, latErr := strconv.ParseFloat(req.Lat, 64)
	lng, lngErr := strconv.ParseFloat(req.Lng, 64)
	if name == "" || latErr != nil || lngErr != nil ||
		math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, lat, and lng are required."})
		return
	}

	// Unknown sports and styles normalize to defaults instead of failing.
	sport := types.NormalizeSport(req.Sport)
	spotType := types.NormalizeSpotType(sport, req.Type)

	var description *string
	if desc := strings.TrimSpace(req.Description); desc != "" {
		description = &desc
	}

	spot := models.Spot{
		Name:        name,
		Sport:       sport,
		Type:        spotType,
		Lat:         lat,
		Lng:         lng,
		Description: description,
	}

	if err := sc.DB.Create(&spot).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": spot})
}

// CheckIn godoc
// @Summary Check in at a spot
// @Description Appends one check-in event; repeat check-ins are allowed
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} map[string]interface{}
// @Router /spots/{id}/check-in [post]
func (sc *SpotController) CheckIn(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid spot id"})
		return
	}

	var spot models.Spot
	if err := sc.DB.First(&spot, "id = ?", spotID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
		return
	}

	checkIn := models.CheckIn{
		UserID: user.UserID,
		SpotID: spot.ID,
	}

	if err := sc.DB.Create(&checkIn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
