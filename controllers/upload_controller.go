package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fta-sports/api-go/config"
	"github.com/fta-sports/api-go/utils"
)

// Clip media lives in Cloudflare R2. The API never proxies bytes; it hands
// the client a presigned PUT and records the public URL once the upload is
// confirmed.
type UploadController struct {
	DB       *gorm.DB
	R2Client *s3.Client
	R2Config *config.R2Config
}

type PresignedURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type PresignedURLResponse struct {
	UploadURL    string `json:"uploadUrl"`
	FileURL      string `json:"fileUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Key          string `json:"key"`
	ExpiresIn    int    `json:"expiresIn"`
}

type UploadCompleteRequest struct {
	Key string `json:"key" binding:"required"`
}

var validClipContentTypes = []string{
	"video/mp4", "video/quicktime", "video/webm",
}

// 100MB cap keeps raw phone footage out of the bucket.
const maxClipSize = 100 * 1024 * 1024

func NewUploadController(db *gorm.DB) *UploadController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		DB:       db,
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

// GetClipUploadURL godoc
// @Summary Get a presigned URL for a clip video upload
// @Tags upload
// @Accept json
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /upload/clip [post]
func (uc *UploadController) GetClipUploadURL(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !uc.isValidClipType(req.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video content type"})
		return
	}

	if req.FileSize > maxClipSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	key := uc.generateClipKey(user.UserID, req.FileName)

	presignedURL, err := uc.createPresignedURL(c.Request.Context(), key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: PresignedURLResponse{
			UploadURL:    presignedURL,
			FileURL:      fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			ThumbnailURL: fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, uc.thumbnailKey(key)),
			Key:          key,
			ExpiresIn:    3600,
		},
		Message: "Presigned URL generated successfully",
	})
}

// ConfirmClipUpload godoc
// @Summary Confirm a clip video landed in storage
// @Tags upload
// @Accept json
// @Produce json
// @Success 200 {object} StandardResponse
// @Router /upload/clip/confirm [post]
func (uc *UploadController) ConfirmClipUpload(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req UploadCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !uc.ownsKey(req.Key, user.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	info, err := uc.headObject(c.Request.Context(), req.Key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found in storage"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"key":          req.Key,
			"fileUrl":      fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, req.Key),
			"thumbnailUrl": fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, uc.thumbnailKey(req.Key)),
			"fileSize":     info.ContentLength,
			"uploadedAt":   time.Now(),
		},
		Message: "Upload confirmed successfully",
	})
}

// DeleteClipFile godoc
// @Summary Delete a clip video from storage
// @Tags upload
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} StandardResponse
// @Router /upload/clip/{key} [delete]
func (uc *UploadController) DeleteClipFile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File key is required"})
		return
	}

	if !uc.ownsKey(key, user.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}
	if _, err := uc.R2Client.DeleteObject(c.Request.Context(), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Message: "File deleted successfully",
	})
}

func (uc *UploadController) isValidClipType(contentType string) bool {
	for _, valid := range validClipContentTypes {
		if contentType == valid {
			return true
		}
	}
	return false
}

// Key format: clips/{profileID}/{timestamp}_{uuid}.{ext}
func (uc *UploadController) generateClipKey(profileID uuid.UUID, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("clips/%s/%d_%s%s", profileID, time.Now().Unix(), uuid.New(), ext)
}

func (uc *UploadController) thumbnailKey(originalKey string) string {
	ext := filepath.Ext(originalKey)
	return strings.TrimSuffix(originalKey, ext) + "_thumbnail.jpg"
}

func (uc *UploadController) createPresignedURL(ctx context.Context, key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (uc *UploadController) headObject(ctx context.Context, key string) (*s3.HeadObjectOutput, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}
	return uc.R2Client.HeadObject(ctx, input)
}

func (uc *UploadController) ownsKey(key string, profileID uuid.UUID) bool {
	parts := strings.Split(key, "/")
	if len(parts) < 3 || parts[0] != "clips" {
		return false
	}
	return parts[1] == profileID.String()
}
