// @title           Brand Studio Backend API
// @version         1.0.0
// @description     Backend API for the brand design studio. Handles onboarding sessions, project management, brand asset uploads, AI brand analysis and the four specialist design chat agents.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"brandstudio-backend/docs"
	"brandstudio-backend/internal/analysis"
	"brandstudio-backend/internal/cache"
	"brandstudio-backend/internal/chat"
	"brandstudio-backend/internal/config"
	"brandstudio-backend/internal/database"
	"brandstudio-backend/internal/handlers"
	"brandstudio-backend/internal/llm"
	"brandstudio-backend/internal/middleware"
	"brandstudio-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Database connection string
	dbURL := cfg.DatabaseURL
	if dbURL == "" {
		log.Println("Warning: DATABASE_URL not set. Migrations will be skipped.")
		log.Println("Please set DATABASE_URL environment variable with your Supabase PostgreSQL connection string")
	}

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)

	// Initialize Supabase clients (optional: without credentials the server
	// runs in demo mode with auth and storage disabled)
	var supabaseClient *supabase.Client
	var storageClient *supabase.StorageClient
	var realtimeClient *supabase.RealtimeClient
	if cfg.HasSupabase() {
		supabaseClient, err = supabase.NewClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Supabase client: %v", err)
		}

		storageClient, err = supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize storage client: %v", err)
		}

		realtimeClient = supabase.NewRealtimeClient(supabaseClient.Supabase)
	} else {
		log.Println("Warning: Supabase credentials not set. Auth passthrough and storage uploads are disabled.")
	}

	// Create database client for direct queries
	var dbClient *supabase.DatabaseClient
	if dbURL != "" {
		var err error
		dbClient, err = supabase.NewDatabaseClient(dbURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
			log.Println("Database operations will be limited. Please configure DATABASE_URL properly.")
		} else {
			defer dbClient.Close()

			// Run migrations
			migrator, err := database.NewMigrator(dbURL)
			if err != nil {
				log.Printf("Warning: Failed to initialize migrator: %v", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(); err != nil {
					log.Printf("Warning: Migration failed: %v", err)
				} else {
					log.Println("Migrations completed successfully")
				}
			}
		}
	}

	// Optional Redis chat history cache
	var historyCache *cache.HistoryCache
	if cfg.Redis.Addr != "" {
		redisClient := redisv9.NewClient(&redisv9.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		historyCache = cache.NewHistoryCache(redisClient, time.Duration(cfg.Redis.HistoryTTLSeconds)*time.Second)
		log.Printf("Chat history cache enabled (redis %s)", cfg.Redis.Addr)
	}

	// Initialize services (dbClient might be nil, handlers handle this)
	var analysisRunner handlers.AnalysisRunner
	var chatService *chat.Service
	if dbClient != nil {
		analysisRunner = analysis.NewPipeline(dbClient, llmClient, realtimeClient)
		var chatUploader chat.ImageUploader
		if storageClient != nil {
			chatUploader = storageClient
		}
		chatService = chat.NewService(dbClient, chatUploader, llmClient, historyCache)
	}

	// An absent client must stay a nil interface value here or the
	// handlers' degraded checks never fire.
	var sessionStore handlers.SessionStore
	var assetStore handlers.AssetStore
	var assetStorage handlers.AssetStorage
	if dbClient != nil {
		sessionStore = dbClient
		assetStore = dbClient
	}
	if storageClient != nil {
		assetStorage = storageClient
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(supabaseClient)
	sessionsHandler := handlers.NewSessionsHandler(sessionStore)
	projectsHandler := handlers.NewProjectsHandler(dbClient)
	assetsHandler := handlers.NewAssetsHandler(assetStore, assetStorage, realtimeClient)
	analysisHandler := handlers.NewAnalysisHandler(analysisRunner)
	chatHandler := handlers.NewChatHandler(chatService)

	// Setup router
	router := gin.Default()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Auth passthrough (no auth: these mint the tokens)
	router.POST("/auth/signup", authHandler.SignUp)
	router.POST("/auth/signin", authHandler.SignIn)
	router.POST("/auth/recover", authHandler.Recover)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Session routes
	api.POST("/sessions", sessionsHandler.Create)
	api.GET("/sessions/:session_id", sessionsHandler.Get)
	api.PATCH("/sessions/:session_id", sessionsHandler.Update)

	// Project routes
	api.POST("/projects", projectsHandler.Create)
	api.GET("/projects", projectsHandler.List)
	api.GET("/projects/:project_id", projectsHandler.Get)
	api.PATCH("/projects/:project_id", projectsHandler.Update)
	api.DELETE("/projects/:project_id", projectsHandler.Delete)

	// Asset routes
	api.POST("/sessions/:session_id/assets", assetsHandler.Upload)
	api.GET("/sessions/:session_id/assets", assetsHandler.List)
	api.DELETE("/assets/:asset_id", assetsHandler.Delete)

	// Brand analysis
	api.POST("/sessions/:session_id/analysis", analysisHandler.Run)

	// Chat agents
	api.GET("/chat/:agent/messages", chatHandler.GetMessages)
	api.POST("/chat/:agent/messages", chatHandler.SendMessage)
	api.POST("/chat/:agent/images", chatHandler.SendImage)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
