package storage

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"match-normalizer/internal/game"
)

func testGame(id int64) *game.Game {
	return &game.Game{
		Sources: game.Sources{
			RiotLolAPI: &game.RiotGameIdentifier{GameID: id, PlatformID: "EUW1"},
		},
		Duration: 1800,
		Start:    "2021-02-08T18:52:34Z",
		Patch:    "11.3",
		Winner:   game.SideBlue,
		Teams: map[game.Side]*game.Team{
			game.SideBlue: {},
			game.SideRed:  {},
		},
	}
}

func warmFiles(t *testing.T, baseDir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(baseDir, "warm"))
	if err != nil {
		t.Fatalf("failed to read warm dir: %v", err)
	}
	return entries
}

func TestWriteGameAndClose(t *testing.T) {
	baseDir := t.TempDir()
	rotator, err := NewGameRotator(baseDir)
	if err != nil {
		t.Fatalf("NewGameRotator failed: %v", err)
	}

	for i := int64(1); i <= 3; i++ {
		if err := rotator.WriteGame(testGame(i)); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}

	count, name := rotator.Stats()
	if count != 3 {
		t.Errorf("games in current file = %d, want 3", count)
	}
	if name == "" {
		t.Error("current file should have a name")
	}

	if err := rotator.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	entries := warmFiles(t, baseDir)
	if len(entries) != 1 {
		t.Fatalf("expected 1 warm file, got %d", len(entries))
	}

	// Each line is one complete canonical game
	file, err := os.Open(filepath.Join(baseDir, "warm", entries[0].Name()))
	if err != nil {
		t.Fatalf("failed to open warm file: %v", err)
	}
	defer file.Close()

	var ids []int64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var g game.Game
		if err := json.Unmarshal(scanner.Bytes(), &g); err != nil {
			t.Fatalf("line is not a valid game: %v", err)
		}
		ids = append(ids, g.Sources.RiotLolAPI.GameID)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Errorf("warm file game ids = %v, want [1 2 3]", ids)
	}
}

func TestRotateAtGameLimit(t *testing.T) {
	baseDir := t.TempDir()
	rotator, err := NewGameRotator(baseDir)
	if err != nil {
		t.Fatalf("NewGameRotator failed: %v", err)
	}
	defer rotator.Close()

	for i := 0; i < MaxGamesPerFile; i++ {
		if err := rotator.WriteGame(testGame(int64(i))); err != nil {
			t.Fatalf("WriteGame failed at %d: %v", i, err)
		}
	}

	// Hitting the limit moves the full file to warm and opens a fresh one
	entries := warmFiles(t, baseDir)
	if len(entries) != 1 {
		t.Fatalf("expected 1 warm file after rotation, got %d", len(entries))
	}
	if count, _ := rotator.Stats(); count != 0 {
		t.Errorf("fresh file should hold 0 games, got %d", count)
	}
}

func TestCloseRemovesEmptyFile(t *testing.T) {
	baseDir := t.TempDir()
	rotator, err := NewGameRotator(baseDir)
	if err != nil {
		t.Fatalf("NewGameRotator failed: %v", err)
	}

	if err := rotator.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if entries := warmFiles(t, baseDir); len(entries) != 0 {
		t.Errorf("empty file should not reach warm storage, found %d files", len(entries))
	}
	hot, err := os.ReadDir(filepath.Join(baseDir, "hot"))
	if err != nil {
		t.Fatalf("failed to read hot dir: %v", err)
	}
	if len(hot) != 0 {
		t.Errorf("empty file should be removed from hot storage, found %d files", len(hot))
	}
}

func TestCompressToCold(t *testing.T) {
	baseDir := t.TempDir()
	warmDir := filepath.Join(baseDir, "warm")
	coldDir := filepath.Join(baseDir, "cold")
	for _, dir := range []string{warmDir, coldDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	content := `{"winner":"BLUE"}` + "\n"
	warmPath := filepath.Join(warmDir, "games_test.jsonl")
	if err := os.WriteFile(warmPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write warm file: %v", err)
	}

	if err := CompressToCold(warmPath, coldDir); err != nil {
		t.Fatalf("CompressToCold failed: %v", err)
	}

	if _, err := os.Stat(warmPath); !os.IsNotExist(err) {
		t.Error("warm original should be removed after compression")
	}

	coldPath := filepath.Join(coldDir, "games_test.jsonl.gz")
	file, err := os.Open(coldPath)
	if err != nil {
		t.Fatalf("cold archive missing: %v", err)
	}
	defer file.Close()

	gr, err := gzip.NewReader(file)
	if err != nil {
		t.Fatalf("cold archive is not gzip: %v", err)
	}
	decompressed, err := io.ReadAll(gr)
	if err != nil {
		t.Fatalf("failed to decompress: %v", err)
	}
	if string(decompressed) != content {
		t.Errorf("decompressed content = %q, want %q", decompressed, content)
	}
}
