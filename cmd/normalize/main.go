package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"match-normalizer/internal/ddragon"
	"match-normalizer/internal/riot"
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

	matchFile := flag.String("match", "", "Path to a raw match JSON file")
	timelineFile := flag.String("timeline", "", "Path to a raw timeline JSON file (optional)")
	gameID := flag.Int64("game-id", 0, "Game id to fetch from the Riot API instead of reading files")
	platform := flag.String("platform", "na1", "Riot platform for API fetches (na1, euw1, kr, ...)")
	addNames := flag.Bool("names", false, "Attach human-readable names from Data Dragon")
	outFile := flag.String("out", "", "Output file (default stdout)")
	flag.Parse()

	if *matchFile == "" && *gameID == 0 {
		fmt.Println("Usage:")
		fmt.Println("  normalize --match=match.json [--timeline=timeline.json] [--names] [--out=game.json]")
		fmt.Println("  normalize --game-id=1234567890 --platform=na1 [--names] [--out=game.json]")
		fmt.Println()
		fmt.Println("Fetching requires RIOT_API_KEY in the environment or .env")
		os.Exit(1)
	}

	ctx := context.Background()

	match, timeline, err := loadRawRecord(ctx, *matchFile, *timelineFile, *gameID, *platform)
	if err != nil {
		log.Fatalf("Failed to load raw match: %v", err)
	}

	opts := transmute.Options{AddNames: *addNames}
	if *addNames {
		directory := ddragon.NewDirectory()
		if err := directory.Load(); err != nil {
			// Names are cosmetic; a failed load just means they stay absent
			log.Printf("Data Dragon load failed, continuing without names: %v", err)
		} else {
			opts.Names = directory
		}
	}

	var g interface{}
	if timeline != nil {
		g, err = transmute.MatchToGameWithTimeline(match, timeline, opts)
	} else {
		g, err = transmute.MatchToGame(match, opts)
	}
	if err != nil {
		log.Fatalf("Normalization failed: %v", err)
	}

	output, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode game: %v", err)
	}

	if *outFile == "" {
		fmt.Println(string(output))
		return
	}
	if err := os.WriteFile(*outFile, output, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outFile, err)
	}
	fmt.Printf("Wrote canonical game to %s\n", *outFile)
}

// loadRawRecord reads the raw match and optional timeline from files, or
// fetches both from the Riot API when a game id is given
func loadRawRecord(ctx context.Context, matchFile, timelineFile string, gameID int64, platform string) (*riot.Match, *riot.Timeline, error) {
	if matchFile != "" {
		var match riot.Match
		if err := readJSON(matchFile, &match); err != nil {
			return nil, nil, err
		}

		var timeline *riot.Timeline
		if timelineFile != "" {
			timeline = &riot.Timeline{}
			if err := readJSON(timelineFile, timeline); err != nil {
				return nil, nil, err
			}
		}
		return &match, timeline, nil
	}

	client, err := riot.NewClient(platform)
	if err != nil {
		return nil, nil, err
	}

	fmt.Printf("Fetching match %d from %s...\n", gameID, platform)
	match, err := client.GetMatch(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	timeline, err := client.GetTimeline(ctx, gameID)
	if err != nil {
		// Timelines expire earlier than matches; degrade to match-only output
		log.Printf("Timeline fetch failed, continuing without events: %v", err)
		return match, nil, nil
	}
	return match, timeline, nil
}

func readJSON(path string, result interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
