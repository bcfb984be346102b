package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/hemangjain17/TruthLens-backend/internal/analyzer"
	"github.com/hemangjain17/TruthLens-backend/internal/config"
	"github.com/hemangjain17/TruthLens-backend/internal/db"
	"github.com/hemangjain17/TruthLens-backend/internal/gelf"
	"github.com/hemangjain17/TruthLens-backend/internal/handler"
	"github.com/hemangjain17/TruthLens-backend/internal/repository"
	"github.com/hemangjain17/TruthLens-backend/internal/router"
	"github.com/hemangjain17/TruthLens-backend/internal/service"
	"github.com/hemangjain17/TruthLens-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// Connect to MongoDB; without the store there is nothing to serve.
	client, err := db.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB, cfg.MongoCollection)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Close(context.Background())
	log.Printf("Connected to MongoDB (db: %s, collection: %s)", cfg.MongoDB, cfg.MongoCollection)

	videos, err := storage.NewVideoStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload dir: %v", err)
	}
	log.Printf("Video uploads stored in %s", videos.Dir())

	subRepo := repository.NewSubmissionRepo(client.Collection())
	intakeSvc := service.NewIntakeService(subRepo, videos)
	mediaH := handler.NewMediaHandler(intakeSvc, int64(cfg.MaxUploadMB)<<20)

	var analyzerH *handler.AnalyzerHandler
	if cfg.AnalyzerEnabled {
		analyzerH = handler.NewAnalyzerHandler(analyzer.NewArticleScraper())
		log.Printf("Article analyzer: enabled")
	}

	r := router.New(mediaH, analyzerH)

	// Index creation runs in background so a slow build on a large
	// collection doesn't delay startup.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := subRepo.EnsureIndexes(ctx); err != nil {
			log.Printf("Warning: submission index creation failed: %v", err)
		}
	}()

	log.Printf("TruthLens server starting on %s", cfg.HTTPAddr)
	if err := newHTTPServer(cfg.HTTPAddr, r).ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// newHTTPServer leaves ReadTimeout unset: video uploads may stream for
// longer than any sensible fixed deadline.
func newHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
