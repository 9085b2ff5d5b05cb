package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fta-sports/api-go/models"
	"github.com/fta-sports/api-go/utils"
)

type DapController struct {
	DB *gorm.DB
}

func NewDapController(db *gorm.DB) *DapController {
	return &DapController{DB: db}
}

// DapClip godoc
// @Summary Toggle a dap on a clip
// @Description Adds a dap if the caller has not dapped the clip, removes it otherwise
// @Tags daps
// @Produce json
// @Param id path string true "Clip ID"
// @Success 200 {object} map[string]interface{}
// @Router /clips/{id}/dap [post]
func (dc *DapController) DapClip(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	clipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid clip id"})
		return
	}

	var clip models.Clip
	if err := dc.DB.First(&clip, "id = ?", clipID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Clip not found"})
		return
	}

	var dapped bool
	err = dc.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Dap
		result := tx.Where("user_id = ? AND clip_id = ?", user.UserID, clipID).First(&existing)
		if result.Error == nil {
			return tx.Delete(&existing).Error
		}
		if result.Error != gorm.ErrRecordNotFound {
			return result.Error
		}
		dapped = true
		return tx.Create(&models.Dap{UserID: user.UserID, ClipID: clipID}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var count int64
	if err := dc.DB.Model(&models.Dap{}).Where("clip_id = ?", clipID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dapped": dapped, "daps_count": count})
}

// DapAthlete godoc
// @Summary Toggle a dap on an athlete's profile
// @Tags daps
// @Produce json
// @Param id path string true "Athlete profile ID"
// @Success 200 {object} map[string]interface{}
// @Router /athletes/{id}/dap [post]
func (dc *DapController) DapAthlete(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	athleteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid athlete id"})
		return
	}

	if athleteID == user.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot dap yourself"})
		return
	}

	var athlete models.Profile
	if err := dc.DB.First(&athlete, "id = ?", athleteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Athlete not found"})
		return
	}

	var dapped bool
	err = dc.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.ProfileDap
		result := tx.Where("voter_id = ? AND athlete_id = ?", user.UserID, athleteID).First(&existing)
		if result.Error == nil {
			return tx.Delete(&existing).Error
		}
		if result.Error != gorm.ErrRecordNotFound {
			return result.Error
		}
		dapped = true
		return tx.Create(&models.ProfileDap{VoterID: user.UserID, AthleteID: athleteID}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var count int64
	if err := dc.DB.Model(&models.ProfileDap{}).Where("athlete_id = ?", athleteID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dapped": dapped, "daps_count": count})
}
