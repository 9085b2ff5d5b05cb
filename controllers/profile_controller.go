package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/fta-sports/api-go/models"
	"github.com/fta-sports/api-go/types"
	"github.com/fta-sports/api-go/utils"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

type UpdateProfileRequest struct {
	DisplayName    *string  `json:"display_name"`
	Username       *string  `json:"username"`
	Bio            *string  `json:"bio"`
	HomeTown       *string  `json:"home_town"`
	AvatarURL      *string  `json:"avatar_url"`
	SportName      *string  `json:"sport_name"`
	Stance         *string  `json:"stance"`
	SnowStyles     []string `json:"snow_styles"`
	SkateStyles    []string `json:"skate_styles"`
	FootForward    *string  `json:"foot_forward"`
	Disciplines    []string `json:"disciplines"`
	BannerURL      *string  `json:"banner_url"`
	EmailPublic    *string  `json:"email_public"`
	Twitter        *string  `json:"twitter"`
	Youtube        *string  `json:"youtube"`
	ScoutingStatus *string  `json:"scouting_status"`

	EquipmentList    []string `json:"equipment_list"`
	Specialties      []string `json:"specialties"`
	DayRate          *float64 `json:"day_rate"`
	YoutubePortfolio *string  `json:"youtube_portfolio"`
	VimeoPortfolio   *string  `json:"vimeo_portfolio"`
	BehancePortfolio *string  `json:"behance_portfolio"`
}

// GetProfile godoc
// @Summary Get the signed-in user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var profile models.Profile
	if err := pc.DB.First(&profile, "id = ?", user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// UpdateProfile godoc
// @Summary Update the signed-in user's profile
// @Description Sport-specific fields are validated against the option tables; fields that do not apply to the chosen sport are cleared.
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /profile [put]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var profile models.Profile
	if err := pc.DB.First(&profile, "id = ?", user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DisplayName != nil {
		profile.DisplayName = req.DisplayName
	}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username cannot be empty"})
			return
		}
		profile.Username = &username
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.HomeTown != nil {
		profile.HomeTown = req.HomeTown
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}

	if req.SportName != nil {
		if !types.IsValidSport(*req.SportName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sport"})
			return
		}
		profile.SportName = req.SportName
		category := types.SportCategory(*req.SportName)
		profile.SportCategory = &category
	}

	if err := pc.applySportFields(&profile, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.applyBrandFields(&profile, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.applyCreativeFields(&profile, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// applySportFields enforces the per-sport field rules: stance for board
// sports, snow styles for Skiing/Snowboard, skate styles for Skateboard,
// foot forward for bikes, disciplines for Moto. Fields that no longer apply
// are cleared when the sport changes.
func (pc *ProfileController) applySportFields(profile *models.Profile, req *UpdateProfileRequest) error {
	sport := ""
	if profile.SportName != nil {
		sport = *profile.SportName
	}

	if req.Stance != nil {
		if !types.SportUsesStance(sport) {
			return errors.New("Stance does not apply to this sport")
		}
		if !types.ContainsValue(types.StanceValues, *req.Stance) {
			return errors.New("Invalid stance")
		}
		profile.Stance = req.Stance
	}
	if req.SnowStyles != nil {
		if !types.SportUsesSnowStyle(sport) {
			return errors.New("Snow styles do not apply to this sport")
		}
		for _, s := range req.SnowStyles {
			if !types.ContainsValue(types.SnowStyleValues, s) {
				return errors.New("Invalid snow style: " + s)
			}
		}
		profile.SnowStyles = pq.StringArray(req.SnowStyles)
	}
	if req.SkateStyles != nil {
		if !types.SportUsesSkateStyle(sport) {
			return errors.New("Skate styles do not apply to this sport")
		}
		for _, s := range req.SkateStyles {
			if !types.ContainsValue(types.SkateStyleValues, s) {
				return errors.New("Invalid skate style: " + s)
			}
		}
		profile.SkateStyles = pq.StringArray(req.SkateStyles)
	}
	if req.FootForward != nil {
		if !types.SportUsesFootForward(sport) {
			return errors.New("Foot forward does not apply to this sport")
		}
		if !types.ContainsValue(types.FootForwardValues, *req.FootForward) {
			return errors.New("Invalid foot forward")
		}
		profile.FootForward = req.FootForward
	}
	if req.Disciplines != nil {
		if !types.SportUsesDiscipline(sport) {
			return errors.New("Disciplines do not apply to this sport")
		}
		for _, d := range req.Disciplines {
			if !types.ContainsValue(types.DisciplineValues, d) {
				return errors.New("Invalid discipline: " + d)
			}
		}
		profile.Disciplines = pq.StringArray(req.Disciplines)
	}

	// Clear fields the new sport does not use.
	if !types.SportUsesStance(sport) {
		profile.Stance = nil
	}
	if !types.SportUsesSnowStyle(sport) {
		profile.SnowStyles = nil
	}
	if !types.SportUsesSkateStyle(sport) {
		profile.SkateStyles = nil
	}
	if !types.SportUsesFootForward(sport) {
		profile.FootForward = nil
	}
	if !types.SportUsesDiscipline(sport) {
		profile.Disciplines = nil
	}

	return nil
}

// applyBrandFields restricts brand-only fields to brand accounts.
func (pc *ProfileController) applyBrandFields(profile *models.Profile, req *UpdateProfileRequest) error {
	brandFieldSet := req.BannerURL != nil || req.EmailPublic != nil || req.Twitter != nil ||
		req.Youtube != nil || req.ScoutingStatus != nil
	if !brandFieldSet {
		return nil
	}
	if profile.AccountType != models.AccountTypeBrand {
		return errors.New("Brand fields require a brand account")
	}

	if req.BannerURL != nil {
		profile.BannerURL = req.BannerURL
	}
	if req.EmailPublic != nil {
		profile.EmailPublic = req.EmailPublic
	}
	if req.Twitter != nil {
		profile.Twitter = req.Twitter
	}
	if req.Youtube != nil {
		profile.Youtube = req.Youtube
	}
	if req.ScoutingStatus != nil {
		if !types.ContainsValue(types.ScoutingStatusValues, *req.ScoutingStatus) {
			return errors.New("Invalid scouting status")
		}
		profile.ScoutingStatus = req.ScoutingStatus
	}
	return nil
}

// applyCreativeFields restricts filmer fields to creative accounts.
func (pc *ProfileController) applyCreativeFields(profile *models.Profile, req *UpdateProfileRequest) error {
	creativeFieldSet := req.EquipmentList != nil || req.Specialties != nil || req.DayRate != nil ||
		req.YoutubePortfolio != nil || req.VimeoPortfolio != nil || req.BehancePortfolio != nil
	if !creativeFieldSet {
		return nil
	}
	if profile.AccountType != models.AccountTypeCreative {
		return errors.New("Creative fields require a creative account")
	}

	if req.EquipmentList != nil {
		for _, e := range req.EquipmentList {
			if !types.ContainsValue(types.CreativeEquipmentOptions, e) {
				return errors.New("Invalid equipment: " + e)
			}
		}
		profile.EquipmentList = pq.StringArray(req.EquipmentList)
	}
	if req.Specialties != nil {
		for _, s := range req.Specialties {
			if !types.ContainsValue(types.CreativeSpecialtyValues, s) {
				return errors.New("Invalid specialty: " + s)
			}
		}
		profile.Specialties = pq.StringArray(req.Specialties)
	}
	if req.DayRate != nil {
		if *req.DayRate < 0 {
			return errors.New("Day rate cannot be negative")
		}
		profile.DayRate = req.DayRate
	}
	if req.YoutubePortfolio != nil {
		profile.YoutubePortfolio = req.YoutubePortfolio
	}
	if req.VimeoPortfolio != nil {
		profile.VimeoPortfolio = req.VimeoPortfolio
	}
	if req.BehancePortfolio != nil {
		profile.BehancePortfolio = req.BehancePortfolio
	}
	return nil
}
