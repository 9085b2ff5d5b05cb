package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fta-sports/api-go/controllers"
)

func SetupScoutRoutes(r *gin.RouterGroup, scoutController *controllers.ScoutController) {
	scout := r.Group("/scout")
	{
		scout.GET("", scoutController.GetScoutFeed)
		scout.GET("/trending", scoutController.GetTrending)
		scout.POST("/watchlist/:athleteId", scoutController.ToggleWatchlist)
	}
}
