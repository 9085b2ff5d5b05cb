package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fta-sports/api-go/models"
	"github.com/fta-sports/api-go/stats"
	"github.com/fta-sports/api-go/types"
	"github.com/fta-sports/api-go/utils"
)

type ScoutController struct {
	DB *gorm.DB
}

func NewScoutController(db *gorm.DB) *ScoutController {
	return &ScoutController{DB: db}
}

// requireBrand loads the caller's profile and rejects non-brand accounts.
func (sc *ScoutController) requireBrand(c *gin.Context) *models.Profile {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil
	}

	var profile models.Profile
	if err := sc.DB.First(&profile, "id = ?", user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return nil
	}

	if profile.AccountType != models.AccountTypeBrand {
		c.JSON(http.StatusForbidden, gin.H{"error": "Scouting requires a brand account"})
		return nil
	}

	return &profile
}

// GetScoutFeed godoc
// @Summary Get the brand-side scouting feed
// @Description Athlete cards with dap counts, their latest clip and watchlist state. Brand accounts only.
// @Tags scout
// @Produce json
// @Param sport query string false "Filter by sport name"
// @Success 200 {object} map[string]interface{}
// @Router /scout [get]
func (sc *ScoutController) GetScoutFeed(c *gin.Context) {
	brand := sc.requireBrand(c)
	if brand == nil {
		return
	}

	db := sc.DB.Model(&models.Profile{}).Where("account_type = ?", models.AccountTypeAthlete)
	if sport := c.Query("sport"); sport != "" {
		db = db.Where("sport_name = ?", sport)
	}

	var athletes []models.Profile
	if err := db.Order("created_at DESC").Limit(100).Find(&athletes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cards := make([]types.ScoutAthlete, 0, len(athletes))
	for _, a := range athletes {
		card := types.ScoutAthlete{
			ID:          a.ID,
			DisplayName: a.DisplayName,
			Username:    a.Username,
			AvatarURL:   a.AvatarURL,
			SportName:   a.SportName,
			HomeTown:    a.HomeTown,
			Stance:      a.Stance,
			FootForward: a.FootForward,
		}

		if err := sc.DB.Model(&models.ProfileDap{}).Where("athlete_id = ?", a.ID).Count(&card.AthleteDapsCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var clip models.Clip
		if err := sc.DB.Where("profile_id = ?", a.ID).Order("created_at DESC").First(&clip).Error; err == nil {
			card.LatestClip = &types.LatestClip{
				ID:           clip.ID,
				VideoURL:     clip.VideoURL,
				ThumbnailURL: clip.ThumbnailURL,
			}
		}

		var watched int64
		if err := sc.DB.Model(&models.Watchlist{}).
			Where("brand_id = ? AND athlete_id = ?", brand.ID, a.ID).
			Count(&watched).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		card.OnWatchlist = watched > 0

		cards = append(cards, card)
	}

	c.JSON(http.StatusOK, gin.H{"athletes": cards})
}

// GetTrending godoc
// @Summary Get trending athletes
// @Description Athletes ranked by daps received on their clips in the last 7 days
// @Tags scout
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /scout/trending [get]
func (sc *ScoutController) GetTrending(c *gin.Context) {
	if brand := sc.requireBrand(c); brand == nil {
		return
	}

	cutoff := time.Now().Add(-stats.TrendWindow)

	var trending []types.TrendingAthlete
	result := sc.DB.Model(&models.Profile{}).
		Select("profiles.id, profiles.display_name, profiles.username, profiles.sport_name, COUNT(daps.id) as clip_daps7d").
		Joins("JOIN clips ON clips.profile_id = profiles.id").
		Joins("JOIN daps ON daps.clip_id = clips.id AND daps.created_at >= ?", cutoff).
		Where("profiles.account_type = ?", models.AccountTypeAthlete).
		Group("profiles.id, profiles.display_name, profiles.username, profiles.sport_name").
		Order("clip_daps7d DESC").
		Limit(20).
		Scan(&trending)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"athletes": trending})
}

// ToggleWatchlist godoc
// @Summary Toggle an athlete on the brand's watchlist
// @Tags scout
// @Produce json
// @Param athleteId path string true "Athlete profile ID"
// @Success 200 {object} map[string]interface{}
// @Router /scout/watchlist/{athleteId} [post]
func (sc *ScoutController) ToggleWatchlist(c *gin.Context) {
	brand := sc.requireBrand(c)
	if brand == nil {
		return
	}

	athleteID, err := uuid.Parse(c.Param("athleteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid athlete id"})
		return
	}

	var athlete models.Profile
	if err := sc.DB.First(&athlete, "id = ? AND account_type = ?", athleteID, models.AccountTypeAthlete).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Athlete not found"})
		return
	}

	var watching bool
	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Watchlist
		result := tx.Where("brand_id = ? AND athlete_id = ?", brand.ID, athleteID).First(&existing)
		if result.Error == nil {
			return tx.Delete(&existing).Error
		}
		if result.Error != gorm.ErrRecordNotFound {
			return result.Error
		}
		watching = true
		return tx.Create(&models.Watchlist{BrandID: brand.ID, AthleteID: athleteID}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"on_watchlist": watching})
}
