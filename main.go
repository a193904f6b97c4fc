package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nanthakishoreraja/smsystems/pos"
	"github.com/nanthakishoreraja/smsystems/routes"
	"github.com/nanthakishoreraja/smsystems/store"
)

func main() {
	log.Println("✅ Starting POS...")

	// Load environment variables
	_ = godotenv.Load()

	// All state lives in one local file; no database server exists.
	dbPath := os.Getenv("POS_DB_PATH")
	if dbPath == "" {
		dbPath = "pos.db"
	}
	st, err := store.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("❌ Failed to open store at %s: %v", dbPath, err)
	}

	// One session owns all till state for the life of the process.
	session := pos.Load(st)
	session.SeedIfEmpty()

	// Gin setup
	r := gin.Default()

	// CORS settings: the cashier and customer screens are static pages
	// served from anywhere on the shop network.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, session)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 POS running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
