package main

import (
	"log"
	"net/http"

	"institute-cms/config"
	"institute-cms/handlers"
	"institute-cms/middleware"
	"institute-cms/models"
	"institute-cms/repositories"
	"institute-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	registry := repositories.NewContentRegistry(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	contentService := services.NewContentService(registry, tagRepo)
	workflowService := services.NewWorkflowService(registry, tagRepo)
	tagService := services.NewTagService(tagRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	contentHandler := handlers.NewContentHandler(contentService, workflowService)
	tagHandler := handlers.NewTagHandler(tagService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Content (news, program, event, page, faq)
			content := protected.Group("/content/:type")
			{
				content.POST("", contentHandler.Create)
				content.GET("", contentHandler.List)
				content.GET("/:id", contentHandler.Get)
				content.PUT("/:id", contentHandler.Update)
				content.DELETE("/:id", contentHandler.Delete)

				// Publication transitions, editors and admins only
				transitions := content.Group("/:id")
				transitions.Use(middleware.RequireRole(models.RoleEditor, models.RoleAdmin))
				{
					transitions.PATCH("/review", contentHandler.SubmitForReview)
					transitions.PATCH("/publish", contentHandler.Publish)
					transitions.PATCH("/unpublish", contentHandler.Unpublish)
					transitions.PATCH("/archive", contentHandler.Archive)
					transitions.PATCH("/restore", contentHandler.Restore)
				}
			}

			// Tags
			tags := protected.Group("/tags")
			{
				tags.POST("", tagHandler.CreateTag)
				tags.GET("", tagHandler.GetTags)
				tags.GET("/:id", tagHandler.GetTag)
			}
		}

		// Public content routes (published only)
		public := v1.Group("/public")
		{
			public.GET("/content/:type", contentHandler.PublicList)
			public.GET("/content/:type/:slug", contentHandler.PublicGet)
		}
	}

	// Start server
	port := config.GetEnv("PORT", "8080")

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
