package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fta-sports/api-go/config"
	"github.com/fta-sports/api-go/geo"
	"github.com/fta-sports/api-go/routes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	db := config.InitDB()

	// Geocoding goes through Nominatim; NOMINATIM_URL overrides the public
	// instance for self-hosted deployments.
	geocoder := geo.NewClient(os.Getenv("NOMINATIM_URL"), nil)

	// Create a new Gin router
	r := gin.Default()

	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, db, geocoder)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
