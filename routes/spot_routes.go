package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fta-sports/api-go/controllers"
)

func SetupSpotRoutes(r *gin.RouterGroup, spotController *controllers.SpotController) {
	spots := r.Group("/spots")
	{
		spots.POST("", spotController.CreateSpot)
		spots.POST("/:id/check-in", spotController.CheckIn)
	}
}
