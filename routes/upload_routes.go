package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fta-sports/api-go/controllers"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := r.Group("/upload")
	{
		upload.POST("/clip", uploadController.GetClipUploadURL)
		upload.POST("/clip/confirm", uploadController.ConfirmClipUpload)
		upload.DELETE("/clip/:key", uploadController.DeleteClipFile)
	}
}
