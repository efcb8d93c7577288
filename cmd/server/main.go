package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"core/internal/config"
	"core/internal/handler"
	"core/internal/repository"
	"core/internal/rules"
	"core/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("E-Waste Disposal Advisor")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load disposal rules; a missing or malformed rules file refuses to start
	ruleStore, err := rules.Load(cfg.Advisor.RulesPath)
	if err != nil {
		log.Fatalf("Failed to load disposal rules: %v", err)
	}
	log.Printf("✅ Loaded %d disposal rules from %s", ruleStore.Len(), cfg.Advisor.RulesPath)

	// Initialize classifier client; missing class indices are fatal too
	classifier, err := service.NewClassifier(&cfg.Classifier)
	if err != nil {
		log.Fatalf("Failed to initialize classifier: %v", err)
	}
	log.Printf("✅ Classifier client initialized (%d classes)", classifier.Classes())

	// Initialize optional activity-log database
	var repo *repository.PostgresRepository
	if cfg.PostgreSQL.Enabled {
		repo, err = repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer repo.Close()
		log.Println("✅ Connected to PostgreSQL activity log")
	} else {
		log.Println("⚠️  No database configured - analysis/chat logging is disabled")
	}

	// Initialize services
	resolver := service.NewResolver(ruleStore, cfg.Advisor.ConfidenceThreshold)
	dialogue := service.NewDialogueEngine(ruleStore)
	advisor := service.NewAdvisorService(classifier, resolver, dialogue, ruleStore, repo, cfg.Classifier.ImageSize)

	log.Printf("✅ Services initialized (confidence threshold: %.2f)", cfg.Advisor.ConfidenceThreshold)

	// Initialize handlers
	analyzeHandler := handler.NewAnalyzeHandler(advisor)
	chatHandler := handler.NewChatHandler(advisor)
	rulesHandler := handler.NewRulesHandler(advisor)
	feedbackHandler := handler.NewFeedbackHandler(advisor)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "ewaste-disposal-advisor",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Image analysis endpoint
		apiV1.POST("/analyze", analyzeHandler.Analyze)

		// Chat endpoint
		apiV1.POST("/chat", chatHandler.Chat)

		// Disposal rules listing
		apiV1.GET("/rules", rulesHandler.List)

		// Feedback endpoint
		apiV1.POST("/feedback", feedbackHandler.Submit)
	}

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API Documentation: http://localhost:%d/api/v1", cfg.Server.Port)
	log.Printf("🌐 Web UI: http://localhost:%d", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
