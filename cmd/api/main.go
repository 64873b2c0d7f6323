package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"hirewise/resume-analyzer/internal/analysis"
	"hirewise/resume-analyzer/internal/config"
	"hirewise/resume-analyzer/internal/handlers"
	"hirewise/resume-analyzer/internal/repositories"
	"hirewise/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	resumeRepo := repositories.NewResumeRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI. A missing key is not fatal: scoring degrades
	// to deterministic signals plus a fallback AI assessment.
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey != "" {
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set. AI-powered analysis disabled.")
	}

	// Initialize the assessment boundary and scorers
	prompts := services.NewPromptBuilder(
		cfg.Assessment.ATSResumeLimit,
		cfg.Assessment.MatchResumeLimit,
		cfg.Assessment.MatchJDLimit,
	)
	assessor := services.NewAIAssessor(geminiService, prompts)
	atsScorer := analysis.NewATSScorer(assessor)
	jdMatcher := analysis.NewJDMatcher(assessor)
	log.Println("✅ Scorers initialized")

	// Initialize the resume vector index (optional)
	var vectorStore services.VectorStore
	var indexer services.Indexer
	if cfg.Qdrant.URL != "" && geminiService != nil {
		vectorStore, err = services.NewQdrantVectorStore(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}

		if err := vectorStore.InitCollection(); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}
		log.Println("✅ Qdrant initialized successfully")

		indexer = services.NewIndexer(geminiService, vectorStore, cfg.Indexer.Concurrency)
		indexer.Start(context.Background())
		log.Println("✅ Resume indexer started")
	} else {
		log.Println("⚠️  Qdrant not configured. Semantic resume search disabled.")
	}

	// Initialize handlers
	atsHandler := handlers.NewATSHandler(
		atsScorer,
		pdfParser,
		storageService,
		resumeRepo,
		analysisRepo,
		indexer,
		cfg.Storage.MaxFileSize,
	)
	matchHandler := handlers.NewMatchHandler(
		jdMatcher,
		pdfParser,
		storageService,
		resumeRepo,
		analysisRepo,
		indexer,
		cfg.Storage.MaxFileSize,
	)
	resumeHandler := handlers.NewResumeHandler(resumeRepo, geminiService, vectorStore)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HireWise Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/ats/analyze", atsHandler.HandleAnalyze)
	api.Post("/match/analyze", matchHandler.HandleAnalyze)
	api.Get("/resumes/:user_id", resumeHandler.HandleList)
	api.Post("/resumes/search", resumeHandler.HandleSearch)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "HireWise Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/ats/analyze",
				"POST /api/v1/match/analyze",
				"GET /api/v1/resumes/:user_id",
				"POST /api/v1/resumes/search",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if indexer != nil {
			indexer.Stop()
		}
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
