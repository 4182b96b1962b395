package main

import (
	"fmt"
	"log"
	"os"

	"github.com/proteinnavi/backend/config"
	"github.com/proteinnavi/backend/internal/catalog"
	httpDelivery "github.com/proteinnavi/backend/internal/delivery/http"
	"github.com/proteinnavi/backend/internal/domain"
	"github.com/proteinnavi/backend/internal/infrastructure/cache"
	"github.com/proteinnavi/backend/internal/infrastructure/rakuten"
	"github.com/proteinnavi/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ProteinNavi Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s (TTL: %s)", cfg.Cache.Type, cfg.Cache.TTL)

	var cacheRepo domain.CacheRepository
	if cfg.Cache.Type == "file" {
		fileCache, err := cache.NewFileCache(cfg.Cache.Dir)
		if err != nil {
			log.Fatalf("Failed to initialize file cache: %v", err)
		}
		cacheRepo = fileCache
	} else {
		cacheRepo = cache.NewMemoryCache()
	}

	rakutenClient := rakuten.NewClient(
		cfg.Rakuten.AppID,
		cfg.Rakuten.BaseURL,
		cfg.Rakuten.MinPrice,
		cfg.Rakuten.MaxPrice,
	)

	if cfg.Server.Environment == "development" {
		rakutenClient.SetDebug(true)
		log.Printf("Rakuten client debug mode enabled")
	}

	diagnosisService := usecase.NewDiagnosisService(catalog.Proteins(), usecase.DiagnosisConfig{
		TopN:     cfg.Diagnosis.TopN,
		MaxScore: cfg.Diagnosis.MaxScore,
	})

	productService := usecase.NewProductService(cacheRepo, rakutenClient, usecase.ProductServiceConfig{
		CacheTTL: cfg.Cache.TTL,
		Keywords: cfg.Rakuten.Keywords,
	})

	log.Printf("Diagnosis: catalog=%d products, top_n=%d, max_score=%d",
		len(catalog.Proteins()), cfg.Diagnosis.TopN, cfg.Diagnosis.MaxScore)
	log.Printf("Rakuten API configured: %s (keywords: %v)", cfg.Rakuten.BaseURL, cfg.Rakuten.Keywords)

	handler := httpDelivery.NewHandler(diagnosisService, productService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
