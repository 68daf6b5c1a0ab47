package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"mindworx/profile-builder/internal/config"
	"mindworx/profile-builder/internal/handlers"
	"mindworx/profile-builder/internal/repositories"
	"mindworx/profile-builder/internal/services"
)

func main() {
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	candidateRepo := repositories.NewCandidateRepository(db)
	log.Println("✅ Repositories initialized successfully")

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewExtractorService(
		services.NewPDFParserService(),
		services.NewDocumentParserService(),
		services.NewOCRService(),
	)
	log.Println("✅ Services initialized successfully")

	// The generation strategy is fixed here for the process lifetime.
	var gemini services.GeminiService
	var textModel services.TextGenerator
	if cfg.Gemini.Enabled() {
		gemini, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.EmbedModel)
		if err != nil {
			log.Printf("⚠️  Error initializing Gemini: %v. Using rule-based generation.\n", err)
		} else {
			textModel = gemini
			log.Println("✅ Gemini AI initialized successfully")
		}
	} else {
		log.Println("⚠️  Gemini API key not found. Using rule-based generation.")
	}
	generator := services.NewProfileGenerator(textModel)

	profileIndex := initProfileIndex(cfg, gemini)

	var sessionStorage fiber.Storage
	if cfg.Session.RedisURL != "" {
		rdb, err := services.NewRedisClient(context.Background(), cfg.Session.RedisURL)
		if err != nil {
			log.Fatalf("❌ Failed to connect to Redis: %v", err)
		}
		sessionStorage = services.NewRedisSessionStorage(rdb)
		log.Println("✅ Redis session storage initialized")
	}

	app := handlers.NewApp(handlers.AppConfig{
		BodyLimit:      int(cfg.Storage.MaxUploadSize),
		SecretKey:      cfg.Session.SecretKey,
		SessionStorage: sessionStorage,
		CandidateRepo:  candidateRepo,
		StorageService: storageService,
		Extractor:      extractor,
		Generator:      generator,
		Index:          profileIndex,
	})
	log.Println("✅ Handlers initialized")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Profile Builder starting on %s\n", addr)
	log.Printf("🤖 Gemini AI: %s\n", enabledLabel(generator.AIEnabled()))

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initProfileIndex falls back to a disabled index when Qdrant or embeddings
// are unavailable; the index is never required to serve profiles.
func initProfileIndex(cfg *config.Config, gemini services.GeminiService) services.ProfileIndex {
	if cfg.Qdrant.URL == "" || gemini == nil {
		log.Println("⚠️  Profile index disabled")
		return services.NewNoopProfileIndex()
	}

	index, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, gemini)
	if err != nil {
		log.Printf("⚠️  Failed to initialize Qdrant: %v\n", err)
		return services.NewNoopProfileIndex()
	}

	if err := index.InitCollection(context.Background()); err != nil {
		log.Printf("⚠️  Failed to initialize Qdrant collection: %v\n", err)
		return services.NewNoopProfileIndex()
	}

	log.Println("✅ Qdrant initialized successfully")
	return index
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "Enabled"
	}
	return "Disabled"
}
