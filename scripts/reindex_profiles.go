package main

import (
	"context"
	"log"
	"os"
	"strings"

	"mindworx/profile-builder/internal/config"
	"mindworx/profile-builder/internal/repositories"
	"mindworx/profile-builder/internal/services"
)

func main() {
	log.Println("🚀 Starting profile reindex...")

	cfg := config.Load()

	if cfg.Qdrant.URL == "" {
		log.Fatal("❌ QDRANT_URL is not configured")
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.EmbedModel)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	index, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, geminiService)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	ctx := context.Background()

	if err := index.InitCollection(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	candidates, err := repositories.NewCandidateRepository(db).FindAll(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to load candidates: %v", err)
	}

	successCount := 0
	failCount := 0

	for i, candidate := range candidates {
		if err := index.IndexProfile(ctx, candidate.ID.String(), candidate.Profile()); err != nil {
			log.Printf("   ❌ Failed to index %s: %v", candidate.ID, err)
			failCount++
			continue
		}
		successCount++

		if (i+1)%10 == 0 || i == len(candidates)-1 {
			log.Printf("   📊 Progress: %d/%d profiles", i+1, len(candidates))
		}
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Reindex Summary:")
	log.Printf("   ✅ Indexed: %d profiles", successCount)
	log.Printf("   ❌ Failed: %d profiles", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
