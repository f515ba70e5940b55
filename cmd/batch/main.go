package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"match-normalizer/internal/db"
	"match-normalizer/internal/ddragon"
	"match-normalizer/internal/pipeline"
	"match-normalizer/internal/storage"
	"match-normalizer/internal/transmute"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			fmt.Printf("Loaded .env from: %s\n", path)
			break
		}
	}

	inputDir := flag.String("input-dir", "", "Directory of raw match JSON files")
	outputDir := flag.String("output-dir", "", "Directory for canonical game JSONL output")
	useDB := flag.Bool("store", false, "Also store canonical games in Postgres (DATABASE_URL)")
	workers := flag.Int("workers", pipeline.DefaultWorkerCount, "Number of normalization workers")
	addNames := flag.Bool("names", false, "Attach human-readable names from Data Dragon")
	flag.Parse()

	if *inputDir == "" || (*outputDir == "" && !*useDB) {
		fmt.Println("Usage:")
		fmt.Println("  batch --input-dir=./raw --output-dir=./canonical [--store] [--workers=8] [--names]")
		fmt.Println()
		fmt.Println("Reads every *.json raw match file under input-dir, normalizes them in")
		fmt.Println("parallel, and writes canonical games to rotating JSONL files and/or Postgres.")
		os.Exit(1)
	}

	paths, err := collectRawFiles(*inputDir)
	if err != nil {
		log.Fatalf("Failed to scan %s: %v", *inputDir, err)
	}
	if len(paths) == 0 {
		log.Fatalf("No raw match files found under %s", *inputDir)
	}
	fmt.Printf("Found %d raw match files\n", len(paths))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n[Shutdown] Gracefully shutting down...")
		cancel()
	}()

	opts := transmute.Options{AddNames: *addNames}
	if *addNames {
		directory := ddragon.NewDirectory()
		if err := directory.Load(); err != nil {
			log.Printf("Data Dragon load failed, continuing without names: %v", err)
		} else {
			opts.Names = directory
		}
	}

	var rotator *storage.GameRotator
	if *outputDir != "" {
		rotator, err = storage.NewGameRotator(*outputDir)
		if err != nil {
			log.Fatalf("Failed to create rotator: %v", err)
		}
		defer func() {
			if err := rotator.Close(); err != nil {
				log.Printf("Error closing rotator: %v", err)
			}
		}()
	}

	var database *db.DB
	if *useDB {
		database, err = db.New(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
	}

	runner := pipeline.NewRunner(rotator, database, pipeline.Config{
		WorkerCount: *workers,
		Options:     opts,
	})

	if err := runner.Run(ctx, paths); err != nil {
		log.Fatalf("Pipeline aborted: %v", err)
	}
}

// collectRawFiles lists every .json file under dir, sorted for reproducible runs
func collectRawFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
