package main

import (
	"context"
	"errors"
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

	"rashedaq/cv-tailor/internal/config"
	"rashedaq/cv-tailor/internal/handlers"
	"rashedaq/cv-tailor/internal/repositories"
	"rashedaq/cv-tailor/internal/services"
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
	docRepo := repositories.NewDocumentRepository(db)
	genRepo := repositories.NewGenerationRepository(db)
	draftRepo := repositories.NewDraftRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.ExportPath)
	if err := storageService.EnsureDirs(); err != nil {
		log.Fatalf("❌ Failed to create storage directories: %v", err)
	}

	textExtractor := services.NewTextExtractorService()
	exporterService := services.NewExporterService()
	draftService := services.NewDraftService(draftRepo, cfg.Draft.SaveInterval)

	// Without a credential the pipeline runs fully offline.
	var generator services.Generator
	if cfg.Gemini.APIKey != "" {
		generator, err = services.NewGeminiService(cfg.Gemini)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set, running in offline mock mode")
	}

	tailorService := services.NewTailorService(generator, cfg.Gemini)
	log.Println("✅ Tailor service initialized")

	// Initialize worker
	processorService := services.NewProcessorService(genRepo, tailorService, cfg.Worker.RetryMaxAttempts)
	worker := services.NewWorker(genRepo, processorService, cfg.Worker.Concurrency)
	log.Println("✅ Worker initialized successfully")

	ctx := context.Background()
	worker.Start(ctx)

	// Initialize handlers
	generateHandler := handlers.NewGenerateHandler(tailorService)
	uploadHandler := handlers.NewUploadHandler(docRepo, storageService, textExtractor, cfg.Storage.MaxFileSize)
	generationHandler := handlers.NewGenerationHandler(genRepo, docRepo, worker)
	exportHandler := handlers.NewExportHandler(exporterService, storageService)
	draftHandler := handlers.NewDraftHandler(draftService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CV Tailor API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
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
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-Key",
	}))

	// Routes
	app.Post("/api/generate-cv", generateHandler.HandleGenerateCV)
	app.Get("/api/health", generateHandler.HandleHealth)

	api := app.Group("/api/v1")
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/generations", generationHandler.HandleCreateGeneration)
	api.Get("/generations/:id", generationHandler.HandleGetGeneration)
	api.Post("/export/html", exportHandler.HandleExportHTML)
	api.Post("/export/pdf", exportHandler.HandleExportPDF)
	api.Put("/drafts/:session", draftHandler.HandleSaveDraft)
	api.Get("/drafts/:session", draftHandler.HandleGetDraft)
	api.Delete("/drafts/:session", draftHandler.HandleDeleteDraft)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV Tailor API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/generate-cv",
				"GET /api/health",
				"POST /api/v1/upload",
				"POST /api/v1/generations",
				"GET /api/v1/generations/:id",
				"POST /api/v1/export/html",
				"POST /api/v1/export/pdf",
				"PUT /api/v1/drafts/:session",
				"GET /api/v1/drafts/:session",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		draftService.Stop()
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

	var fiberErr *fiber.Error
	var genFailed *services.GenerationFailedError

	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.Is(err, services.ErrValidation):
		code = fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnsupportedFileType):
		code = fiber.StatusBadRequest
	case errors.Is(err, services.ErrGenerationInFlight):
		code = fiber.StatusConflict
	case errors.Is(err, services.ErrGenerationTimeout):
		code = fiber.StatusGatewayTimeout
	case errors.Is(err, services.ErrMalformedResponse),
		errors.Is(err, services.ErrEmptyGeneration),
		errors.Is(err, services.ErrTransport):
		code = fiber.StatusBadGateway
	case errors.As(err, &genFailed):
		code = fiber.StatusBadGateway
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
