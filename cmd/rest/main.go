package main

import (
	"context"
	"log"

	"abcresearch-be/internal/bootstrap"
	"abcresearch-be/internal/config"
	"abcresearch-be/internal/server"
	"abcresearch-be/internal/tracer"
	"abcresearch-be/pkg/database"
)

func main() {
	// 0. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies (container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background extraction worker
	go func() {
		log.Println("Background: Starting Extraction Worker...")
		if err := container.ExtractionService.Consume(context.Background()); err != nil {
			log.Printf("Background Extraction Worker Error: %v", err)
		}
	}()

	// 5. Initialize server
	srv := server.New(cfg, container)

	// 6. Run server
	log.Fatal(srv.Run())
}
