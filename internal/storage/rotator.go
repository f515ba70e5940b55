// Package storage writes canonical games to rotating JSONL files.
// Files move hot -> warm -> cold: active writes happen in hot, closed files
// wait in warm, and compressed archives live in cold.
package storage

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"match-normalizer/internal/game"
)

const (
	// Rotation triggers
	MaxGamesPerFile = 500
	MaxFileAge      = 1 * time.Hour
)

// GameRotator handles writing canonical games to rotating JSONL files
type GameRotator struct {
	mu sync.Mutex

	hotDir  string
	warmDir string
	coldDir string

	currentFile   *os.File
	currentWriter *bufio.Writer
	currentPath   string
	gameCount     int
	fileOpenedAt  time.Time
}

// NewGameRotator creates a rotator rooted at the given base directory
func NewGameRotator(baseDir string) (*GameRotator, error) {
	hotDir := filepath.Join(baseDir, "hot")
	warmDir := filepath.Join(baseDir, "warm")
	coldDir := filepath.Join(baseDir, "cold")

	for _, dir := range []string{hotDir, warmDir, coldDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	r := &GameRotator{
		hotDir:  hotDir,
		warmDir: warmDir,
		coldDir: coldDir,
	}

	if err := r.rotate(); err != nil {
		return nil, err
	}

	return r, nil
}

// WriteGame appends one canonical game as a JSON line and rotates the file
// when it reaches its game or age limit
func (r *GameRotator) WriteGame(g *game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	if _, err := r.currentWriter.Write(data); err != nil {
		return fmt.Errorf("failed to write game: %w", err)
	}
	if _, err := r.currentWriter.WriteString("\n"); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	r.gameCount++
	if err := r.currentWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}

	if r.shouldRotate() {
		return r.rotate()
	}
	return nil
}

// shouldRotate checks if we need to rotate to a new file
func (r *GameRotator) shouldRotate() bool {
	if r.currentFile == nil {
		return true
	}
	if r.gameCount >= MaxGamesPerFile {
		return true
	}
	if time.Since(r.fileOpenedAt) >= MaxFileAge {
		return true
	}
	return false
}

// rotate closes the current file, moves it to warm storage, and opens a new one
func (r *GameRotator) rotate() error {
	if r.currentFile != nil {
		if err := r.currentWriter.Flush(); err != nil {
			return fmt.Errorf("failed to flush before rotation: %w", err)
		}
		if err := r.currentFile.Close(); err != nil {
			return fmt.Errorf("failed to close file: %w", err)
		}

		warmPath := filepath.Join(r.warmDir, filepath.Base(r.currentPath))
		if err := os.Rename(r.currentPath, warmPath); err != nil {
			return fmt.Errorf("failed to move to warm storage: %w", err)
		}
		fmt.Printf("[Rotator] Moved %s to warm storage (%d games)\n", filepath.Base(r.currentPath), r.gameCount)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("games_%s.jsonl", timestamp)
	r.currentPath = filepath.Join(r.hotDir, filename)

	file, err := os.Create(r.currentPath)
	if err != nil {
		return fmt.Errorf("failed to create new file: %w", err)
	}

	r.currentFile = file
	r.currentWriter = bufio.NewWriterSize(file, 64*1024) // 64KB buffer
	r.gameCount = 0
	r.fileOpenedAt = time.Now()

	return nil
}

// Close flushes and closes the current file
func (r *GameRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}

	if err := r.currentWriter.Flush(); err != nil {
		return err
	}
	if err := r.currentFile.Close(); err != nil {
		return err
	}

	// Keep the file only if it has data
	if r.gameCount > 0 {
		warmPath := filepath.Join(r.warmDir, filepath.Base(r.currentPath))
		if err := os.Rename(r.currentPath, warmPath); err != nil {
			return err
		}
		fmt.Printf("[Rotator] Closed and moved %s to warm (%d games)\n", filepath.Base(r.currentPath), r.gameCount)
	} else {
		os.Remove(r.currentPath)
	}

	r.currentFile = nil
	return nil
}

// Stats returns current rotator statistics
func (r *GameRotator) Stats() (gamesInCurrentFile int, currentFileName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gameCount, filepath.Base(r.currentPath)
}

// CompressToCold compresses a warm file into cold storage and removes the
// warm original
func CompressToCold(warmPath, coldDir string) error {
	src, err := os.Open(warmPath)
	if err != nil {
		return err
	}
	defer src.Close()

	coldPath := filepath.Join(coldDir, filepath.Base(warmPath)+".gz")
	dst, err := os.Create(coldPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	gw := gzip.NewWriter(dst)
	if _, err := io.Copy(gw, src); err != nil {
		return err
	}
	if err := gw.Close(); err != nil {
		return err
	}

	return os.Remove(warmPath)
}
