package ddragon

import (
	"fmt"
	"strconv"
	"sync"
)

// championData is the Data Dragon champion document entry
type championData struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ChampionRegistry holds the champion ID to name mapping
type ChampionRegistry struct {
	mu        sync.RWMutex
	champions map[int]string
	loaded    bool
}

// NewChampionRegistry creates an empty champion registry
func NewChampionRegistry() *ChampionRegistry {
	return &ChampionRegistry{champions: make(map[int]string)}
}

// Load fetches champion data from Data Dragon
func (r *ChampionRegistry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	client := newHTTPClient()
	version, err := latestVersion(client)
	if err != nil {
		return err
	}

	var doc struct {
		Data map[string]championData `json:"data"`
	}
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", baseURL, version)
	if err := fetchJSON(client, url, &doc); err != nil {
		return fmt.Errorf("failed to load champions: %w", err)
	}

	for _, champ := range doc.Data {
		key, err := strconv.Atoi(champ.Key)
		if err != nil {
			continue
		}
		r.champions[key] = champ.Name
	}

	r.loaded = true
	fmt.Printf("Loaded %d champions from Data Dragon (v%s)\n", len(r.champions), version)
	return nil
}

// Name returns the champion name for a given ID
func (r *ChampionRegistry) Name(id int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.champions[id]
	return name, ok
}

// IsLoaded returns whether the registry has been loaded
func (r *ChampionRegistry) IsLoaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}
