// Imports individuals from a JSON file into PostgreSQL and invalidates
// cached chart renders so the next request redraws from fresh data.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/service/cache"
	"github.com/kapu/pedigree-chart-go/internal/service/database"
	"go.uber.org/zap"
)

// CLI flags
var (
	input     = flag.String("input", "individuals.json", "JSON file with an array of individuals")
	dryRun    = flag.Bool("dry-run", false, "Validate without writing to the database")
	verbose   = flag.Bool("verbose", false, "Verbose output")
	dbHost    = flag.String("db-host", "localhost", "PostgreSQL host")
	dbPort    = flag.Int("db-port", 5432, "PostgreSQL port")
	dbUser    = flag.String("db-user", "postgres", "PostgreSQL user")
	dbPass    = flag.String("db-pass", "", "PostgreSQL password")
	dbName    = flag.String("db-name", "pedigree", "PostgreSQL database")
	redisHost = flag.String("redis-host", "", "Redis host for cache invalidation (empty skips)")
	redisPort = flag.Int("redis-port", 6379, "Redis port")
)

func main() {
	flag.Parse()

	log.Println("==================")
	log.Println("Individuals Import")
	log.Println("==================")

	if *dryRun {
		log.Println("[DRY RUN MODE] No database changes will be made")
	}

	individuals, err := loadIndividuals(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}
	log.Printf("✓ Loaded %d individuals", len(individuals))

	if err := validateIndividuals(individuals); err != nil {
		log.Fatalf("Validation failed: %v", err)
	}
	log.Println("✓ Validation passed")

	if *dryRun {
		log.Println("✓ Dry-run completed successfully")
		return
	}

	logger := zap.NewNop()

	db, err := database.NewPostgresService(database.PostgresConfig{
		Host:     *dbHost,
		Port:     *dbPort,
		User:     *dbUser,
		Password: *dbPass,
		Database: *dbName,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	for _, ind := range individuals {
		if err := db.UpsertIndividual(ctx, ind); err != nil {
			log.Fatalf("Failed to upsert %s: %v", ind.Identifier, err)
		}
		if *verbose {
			log.Printf("  → Upserted: %s", ind.Identifier)
		}
	}
	log.Printf("✓ Imported %d individuals", len(individuals))

	if *redisHost != "" {
		invalidateRenders(logger)
	}
}

func loadIndividuals(path string) ([]*domain.Individual, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Either a bare array or an {"individuals": [...]} document.
	var individuals []*domain.Individual
	if err := json.Unmarshal(data, &individuals); err == nil {
		return individuals, nil
	}

	var doc struct {
		Individuals []*domain.Individual `json:"individuals"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Individuals, nil
}

func validateIndividuals(individuals []*domain.Individual) error {
	seen := make(map[string]bool, len(individuals))
	for i, ind := range individuals {
		if ind == nil || ind.Identifier == "" {
			return fmt.Errorf("individual %d: missing identifier", i)
		}
		if seen[ind.Identifier] {
			return fmt.Errorf("duplicate identifier: %s", ind.Identifier)
		}
		seen[ind.Identifier] = true
	}

	dangling := 0
	for _, ind := range individuals {
		if ind.FatherIdentifier != "" && !seen[ind.FatherIdentifier] {
			dangling++
		}
		if ind.MotherIdentifier != "" && !seen[ind.MotherIdentifier] {
			dangling++
		}
	}
	if dangling > 0 {
		log.Printf("! %d parent references point outside this file (charts will stop there)", dangling)
	}
	return nil
}

func invalidateRenders(logger *zap.Logger) {
	cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
		Host: *redisHost,
		Port: *redisPort,
	}, logger)
	if err != nil {
		log.Printf("! Cache invalidation skipped: %v", err)
		return
	}
	defer cacheSvc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	deleted, err := cacheSvc.InvalidateRenders(ctx)
	if err != nil {
		log.Printf("! Cache invalidation failed: %v", err)
		return
	}
	log.Printf("✓ Invalidated %d cached renders", deleted)
}
