package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fta-sports/api-go/controllers"
	"github.com/fta-sports/api-go/geo"
	"github.com/fta-sports/api-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, geocoder geo.Geocoder) {
	// Initialize controllers
	spotController := controllers.NewSpotController(db)
	geocodeController := controllers.NewGeocodeController(geocoder)
	profileController := controllers.NewProfileController(db)
	clipController := controllers.NewClipController(db)
	dapController := controllers.NewDapController(db)
	scoutController := controllers.NewScoutController(db)
	uploadController := controllers.NewUploadController(db)
	creativeController := controllers.NewCreativeController(db)

	// Public routes: the map and address search work before sign-in
	public := r.Group("/api")
	{
		public.GET("/spots", spotController.ListSpots)
		public.GET("/geocode", geocodeController.Search)
		public.GET("/creatives", creativeController.GetDirectory)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", profileController.GetProfile)
		protected.PUT("/profile", profileController.UpdateProfile)

		SetupSpotRoutes(protected, spotController)
		SetupClipRoutes(protected, clipController, dapController)
		SetupScoutRoutes(protected, scoutController)
		SetupUploadRoutes(protected, uploadController)
		protected.POST("/creatives/:id/vouch", creativeController.Vouch)
	}
}
