package controllers

import (
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fta-sports/api-go/models"
	"github.com/fta-sports/api-go/utils"
)

type ClipController struct {
	DB *gorm.DB
}

func NewClipController(db *gorm.DB) *ClipController {
	return &ClipController{DB: db}
}

type CreateClipRequest struct {
	VideoURL     string  `json:"video_url" binding:"required"`
	ThumbnailURL *string `json:"thumbnail_url"`
	TrickName    *string `json:"trick_name"`
	Location     *string `json:"location"`
	SpotName     *string `json:"spot_name"`
}

type DiscoveryQuery struct {
	SortBy   string `form:"sortBy" binding:"omitempty,oneof=newest most_dapped"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"pageSize,default=20" binding:"min=1,max=50"`
}

// CreateClip godoc
// @Summary Add a clip to the signed-in athlete's catalog
// @Tags clips
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /clips [post]
func (cc *ClipController) CreateClip(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateClipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.VideoURL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video URL is required"})
		return
	}

	clip := models.Clip{
		ProfileID:    user.UserID,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		TrickName:    req.TrickName,
		Location:     req.Location,
		SpotName:     req.SpotName,
	}

	if err := cc.DB.Create(&clip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": clip})
}

// GetDiscoveryFeed godoc
// @Summary Get the discovery feed of clips
// @Description Clips with athlete name, dap count and whether the caller has dapped, sorted newest or most dapped
// @Tags clips
// @Produce json
// @Param sortBy query string false "Sort by: newest, most_dapped"
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 20, max: 50)"
// @Success 200 {object} map[string]interface{}
// @Router /discovery [get]
func (cc *ClipController) GetDiscoveryFeed(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var query DiscoveryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var total int64
	if err := cc.DB.Model(&models.Clip{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	db := cc.DB.Model(&models.Clip{})
	switch query.SortBy {
	case "most_dapped":
		db = db.Order("(SELECT COUNT(*) FROM daps WHERE daps.clip_id = clips.id) DESC, clips.created_at DESC")
	default: // "newest" or empty
		db = db.Order("clips.created_at DESC")
	}

	offset := (query.Page - 1) * query.PageSize

	var clips []struct {
		models.Clip
		DisplayName   *string `json:"display_name"`
		Username      *string `json:"username"`
		DapsCount     int64   `json:"daps_count"`
		UserHasDapped bool    `json:"user_has_dapped"`
	}

	result := db.
		Select("clips.*, profiles.display_name, profiles.username, "+
			"(SELECT COUNT(*) FROM daps WHERE daps.clip_id = clips.id) as daps_count, "+
			"EXISTS(SELECT 1 FROM daps WHERE daps.clip_id = clips.id AND daps.user_id = ?) as user_has_dapped",
			user.UserID).
		Joins("JOIN profiles ON profiles.id = clips.profile_id").
		Offset(offset).
		Limit(query.PageSize).
		Find(&clips)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    clips,
		Pagination: &PaginationMeta{
			CurrentPage: query.Page,
			PageSize:    query.PageSize,
			TotalItems:  total,
			TotalPages:  int(math.Ceil(float64(total) / float64(query.PageSize))),
		},
	})
}
