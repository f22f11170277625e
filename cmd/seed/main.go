package main

// Seed the occupation catalog, military crosswalk, and training resources:
//   go run ./cmd/seed

import (
	"context"
	"log"
	"os"

	"vetpath-backend/internal/catalog"
	"vetpath-backend/internal/shared/config"
	"vetpath-backend/internal/shared/storage/db"
	"vetpath-backend/internal/training"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL is required for seeding")
		os.Exit(1)
	}

	opts := db.OptionsFromEnv(db.DefaultSeedOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	catalogRepo := &catalog.PGRepo{DB: sqlDB}
	occupations := catalog.SeedOccupations()
	for _, record := range occupations {
		if err := catalogRepo.InsertOccupation(ctx, record); err != nil {
			log.Printf("failed to insert occupation %s: %v", record.OccupationCode, err)
			os.Exit(1)
		}
	}
	log.Printf("seeded %d occupations", len(occupations))

	crosswalk := catalog.SeedCrosswalk()
	for _, entry := range crosswalk {
		if err := catalogRepo.InsertCrosswalk(ctx, entry); err != nil {
			log.Printf("failed to insert crosswalk %s/%s: %v", entry.Branch, entry.MOSCode, err)
			os.Exit(1)
		}
	}
	log.Printf("seeded %d crosswalk entries", len(crosswalk))

	trainingRepo := &training.PGRepo{DB: sqlDB}
	resources := training.SeedResources()
	for _, res := range resources {
		if err := trainingRepo.Insert(ctx, res); err != nil {
			log.Printf("failed to insert training resource %q: %v", res.SkillName, err)
			os.Exit(1)
		}
	}
	log.Printf("seeded %d training resources", len(resources))
}
