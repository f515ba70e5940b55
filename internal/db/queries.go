package db

import (
	"context"
	"encoding/json"
	"fmt"

	"match-normalizer/internal/game"
)

// InsertGame stores a canonical game as JSONB, keyed by its Riot identifier.
// Already-stored games are left untouched.
func (db *DB) InsertGame(ctx context.Context, g *game.Game) error {
	if g.Sources.RiotLolAPI == nil {
		return fmt.Errorf("game has no riotLolApi source identifier")
	}

	payload, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		INSERT INTO games (game_id, platform_id, patch, winner, duration, start_time, game)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (game_id, platform_id) DO NOTHING
	`, g.Sources.RiotLolAPI.GameID, g.Sources.RiotLolAPI.PlatformID,
		g.Patch, string(g.Winner), g.Duration, g.Start, payload)
	return err
}

// GameExists checks if a game is already stored
func (db *DB) GameExists(ctx context.Context, gameID int64, platformID string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM games WHERE game_id = $1 AND platform_id = $2)
	`, gameID, platformID).Scan(&exists)
	return exists, err
}

// GetGame loads a stored canonical game
func (db *DB) GetGame(ctx context.Context, gameID int64, platformID string) (*game.Game, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx, `
		SELECT game FROM games WHERE game_id = $1 AND platform_id = $2
	`, gameID, platformID).Scan(&payload)
	if err != nil {
		return nil, err
	}

	var g game.Game
	if err := json.Unmarshal(payload, &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}
	return &g, nil
}

// GetGameCount returns the total number of stored games
func (db *DB) GetGameCount(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM games`).Scan(&count)
	return count, err
}
