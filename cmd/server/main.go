package main

import (
	"context"
	"log"
	"os"

	"github.com/TEJ42000/ALLMS-sub002/internal/database"
	"github.com/TEJ42000/ALLMS-sub002/internal/handlers"
	"github.com/TEJ42000/ALLMS-sub002/internal/middleware"
	"github.com/TEJ42000/ALLMS-sub002/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	// Initialize the configured database (DB_TYPE: postgres or firestore)
	db, err := database.InitDatabase(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	var materialStore store.Store
	if db.Type == database.Firestore {
		materialStore = store.NewFirestoreStore(db.FirestoreClient)
	} else {
		materialStore = store.NewPostgresStore(db.PostgresClient)
	}

	// Auth runs against Firestore regardless of the materials backend;
	// user records live there in every deployment.
	authClient := db.FirestoreClient
	if authClient == nil {
		authClient, err = database.InitFirestore(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to Firestore for auth: %v", err)
		}
		defer authClient.Close()
	}

	authHandler := handlers.NewAuthHandler(authClient)
	materialsHandler := handlers.NewMaterialsHandler(materialStore)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(config))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Semi-protected routes (requires valid token)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.AuthMiddleware())
		{
			authProtected.GET("/validate", authHandler.ValidateToken)
		}

		// Course browsing (authenticated users)
		courses := v1.Group("/courses")
		courses.Use(middleware.AuthMiddleware())
		{
			courses.GET("", materialsHandler.ListCourses)
			courses.GET("/:id/materials", materialsHandler.ListMaterials)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		{
			admin.GET("/verify-materials", materialsHandler.VerifyMaterials)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
