// Package pipeline normalizes batches of raw match records using a worker
// pool. Every match is an independent task: workers share nothing but the
// job channel, so no ordering or locking discipline is needed between them.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"match-normalizer/internal/db"
	"match-normalizer/internal/game"
	"match-normalizer/internal/riot"
	"match-normalizer/internal/storage"
	"match-normalizer/internal/transmute"

	"github.com/bits-and-blooms/bloom/v3"
)

const (
	DefaultWorkerCount = 8
	jobChannelBuffer   = 100
)

// RawRecord is one raw match file: the match record plus its optional
// timeline feed.
type RawRecord struct {
	Match    *riot.Match    `json:"match"`
	Timeline *riot.Timeline `json:"timeline,omitempty"`
}

// result is one normalized match handed to the sink processor
type result struct {
	path string
	game *game.Game
	err  error
}

// Config holds configuration for a Runner
type Config struct {
	WorkerCount int
	Options     transmute.Options
}

// Runner reads raw match files, normalizes them in parallel, and hands the
// canonical games to its sinks (JSONL rotator and/or Postgres).
type Runner struct {
	rotator  *storage.GameRotator // may be nil
	database *db.DB               // may be nil

	workerCount int
	options     transmute.Options

	// Deduplication (bloom filter for memory efficiency)
	seenGames *bloom.BloomFilter
	seenMu    sync.Mutex

	jobs    chan string
	results chan result

	// Stats (atomic for thread safety)
	normalized int64
	skipped    int64
	failed     int64
	startTime  time.Time

	wg sync.WaitGroup
}

// NewRunner creates a runner writing to the given sinks; either may be nil
func NewRunner(rotator *storage.GameRotator, database *db.DB, cfg Config) *Runner {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultWorkerCount
	}

	return &Runner{
		rotator:     rotator,
		database:    database,
		workerCount: cfg.WorkerCount,
		options:     cfg.Options,
		seenGames:   bloom.NewWithEstimates(500000, 0.001),
		jobs:        make(chan string, jobChannelBuffer),
		results:     make(chan result, jobChannelBuffer),
	}
}

// Run normalizes all given raw match files and blocks until done
func (r *Runner) Run(ctx context.Context, paths []string) error {
	r.startTime = time.Now()

	for i := 0; i < r.workerCount; i++ {
		r.wg.Add(1)
		go r.worker(ctx)
	}

	var sinkWg sync.WaitGroup
	sinkWg.Add(1)
	go func() {
		defer sinkWg.Done()
		r.processResults(ctx)
	}()

	// Dispatch all paths, stopping early on cancellation
	for _, path := range paths {
		select {
		case r.jobs <- path:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}

	close(r.jobs)
	r.wg.Wait()
	close(r.results)
	sinkWg.Wait()

	r.printSummary()
	return ctx.Err()
}

// worker normalizes raw match files until the job channel closes
func (r *Runner) worker(ctx context.Context) {
	defer r.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-r.jobs:
			if !ok {
				return
			}

			g, err := r.normalizeFile(path)
			if g == nil && err == nil {
				// Duplicate, already counted
				continue
			}

			select {
			case r.results <- result{path: path, game: g, err: err}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// normalizeFile reads one raw record and transforms it. A nil, nil return
// means the game was a duplicate of one already processed.
func (r *Runner) normalizeFile(path string) (*game.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var record RawRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if record.Match == nil {
		// Plain match file without the wrapper
		var match riot.Match
		if err := json.Unmarshal(data, &match); err != nil || match.GameID == 0 {
			return nil, fmt.Errorf("%s holds no match record", path)
		}
		record.Match = &match
	}

	if r.isDuplicate(record.Match) {
		atomic.AddInt64(&r.skipped, 1)
		return nil, nil
	}

	if record.Timeline != nil {
		return transmute.MatchToGameWithTimeline(record.Match, record.Timeline, r.options)
	}
	return transmute.MatchToGame(record.Match, r.options)
}

// isDuplicate checks and marks the match in the bloom filter
func (r *Runner) isDuplicate(match *riot.Match) bool {
	key := fmt.Sprintf("%s_%d", match.PlatformID, match.GameID)

	r.seenMu.Lock()
	defer r.seenMu.Unlock()

	if r.seenGames.TestString(key) {
		return true
	}
	r.seenGames.AddString(key)
	return false
}

// processResults owns the sinks: it writes canonical games and tallies
// failures. Malformed matches are skipped so the rest of the batch survives.
func (r *Runner) processResults(ctx context.Context) {
	for res := range r.results {
		if res.err != nil {
			atomic.AddInt64(&r.failed, 1)
			log.Printf("[Pipeline] %s: %v", res.path, res.err)
			continue
		}

		if err := r.store(ctx, res.game); err != nil {
			atomic.AddInt64(&r.failed, 1)
			log.Printf("[Pipeline] failed to store game from %s: %v", res.path, err)
			continue
		}

		atomic.AddInt64(&r.normalized, 1)
	}
}

func (r *Runner) store(ctx context.Context, g *game.Game) error {
	if r.rotator != nil {
		if err := r.rotator.WriteGame(g); err != nil {
			return err
		}
	}
	if r.database != nil {
		if err := r.database.InsertGame(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns the counters accumulated so far
func (r *Runner) Stats() (normalized, skipped, failed int64) {
	return atomic.LoadInt64(&r.normalized), atomic.LoadInt64(&r.skipped), atomic.LoadInt64(&r.failed)
}

func (r *Runner) printSummary() {
	normalized, skipped, failed := r.Stats()
	elapsed := time.Since(r.startTime).Round(time.Millisecond)

	fmt.Println("\n========================================")
	fmt.Println("NORMALIZATION COMPLETE")
	fmt.Println("========================================")
	fmt.Printf("Normalized: %d\n", normalized)
	fmt.Printf("Duplicates: %d\n", skipped)
	fmt.Printf("Failed:     %d\n", failed)
	fmt.Printf("Elapsed:    %s\n", elapsed)
}

// IsFatal reports whether a normalization error is one of the transform's
// fatal kinds rather than an I/O problem
func IsFatal(err error) bool {
	return errors.Is(err, transmute.ErrMalformedSourceData) ||
		errors.Is(err, transmute.ErrUnknownEventType) ||
		errors.Is(err, transmute.ErrIncompleteGame)
}
