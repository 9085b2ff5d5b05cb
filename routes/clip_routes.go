package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fta-sports/api-go/controllers"
)

func SetupClipRoutes(r *gin.RouterGroup, clipController *controllers.ClipController, dapController *controllers.DapController) {
	clips := r.Group("/clips")
	{
		clips.POST("", clipController.CreateClip)
		clips.POST("/:id/dap", dapController.DapClip)
	}

	r.GET("/discovery", clipController.GetDiscoveryFeed)
	r.POST("/athletes/:id/dap", dapController.DapAthlete)
}
