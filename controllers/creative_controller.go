package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fta-sports/api-go/models"
	"github.com/fta-sports/api-go/types"
	"github.com/fta-sports/api-go/utils"
)

type CreativeController struct {
	DB *gorm.DB
}

func NewCreativeController(db *gorm.DB) *CreativeController {
	return &CreativeController{DB: db}
}

// GetDirectory godoc
// @Summary Browse the filmer directory
// @Description Creative accounts filtered by location substring and specialty, newest first, with vouch counts
// @Tags creatives
// @Produce json
// @Param location query string false "Location substring filter"
// @Param specialty query string false "Specialty filter: Video, Photo, Drone"
// @Success 200 {object} map[string]interface{}
// @Router /creatives [get]
func (cc *CreativeController) GetDirectory(c *gin.Context) {
	db := cc.DB.Model(&models.Profile{}).Where("account_type = ?", models.AccountTypeCreative)

	if location := strings.TrimSpace(c.Query("location")); location != "" {
		db = db.Where("LOWER(home_town) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	var creatives []models.Profile
	if err := db.Order("created_at DESC").Limit(100).Find(&creatives).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Specialty filtering happens after the fetch: the specialties live in a
	// text[] column and the set of creatives is small.
	specialty := c.Query("specialty")

	cards := make([]types.CreativeCard, 0, len(creatives))
	for _, p := range creatives {
		if specialty != "" && !types.ContainsValue(p.Specialties, specialty) {
			continue
		}

		card := types.CreativeCard{
			ID:            p.ID,
			DisplayName:   p.DisplayName,
			Username:      p.Username,
			AvatarURL:     p.AvatarURL,
			HomeTown:      p.HomeTown,
			EquipmentList: p.EquipmentList,
			Specialties:   p.Specialties,
			DayRate:       p.DayRate,
		}
		if err := cc.DB.Model(&models.CreativeVouch{}).
			Where("creative_id = ?", p.ID).
			Count(&card.VouchesCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		cards = append(cards, card)
	}

	c.JSON(http.StatusOK, gin.H{"creatives": cards})
}

// Vouch godoc
// @Summary Toggle a vouch for a creative
// @Description Adds a vouch if the caller has not vouched for the filmer, removes it otherwise
// @Tags creatives
// @Produce json
// @Param id path string true "Creative profile ID"
// @Success 200 {object} map[string]interface{}
// @Router /creatives/{id}/vouch [post]
func (cc *CreativeController) Vouch(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	creativeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creative id"})
		return
	}

	if creativeID == user.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot vouch for yourself"})
		return
	}

	var creative models.Profile
	if err := cc.DB.First(&creative, "id = ? AND account_type = ?", creativeID, models.AccountTypeCreative).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Creative not found"})
		return
	}

	var vouched bool
	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.CreativeVouch
		result := tx.Where("voter_id = ? AND creative_id = ?", user.UserID, creativeID).First(&existing)
		if result.Error == nil {
			return tx.Delete(&existing).Error
		}
		if result.Error != gorm.ErrRecordNotFound {
			return result.Error
		}
		vouched = true
		return tx.Create(&models.CreativeVouch{VoterID: user.UserID, CreativeID: creativeID}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var count int64
	if err := cc.DB.Model(&models.CreativeVouch{}).Where("creative_id = ?", creativeID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vouched": vouched, "vouches_count": count})
}
