package ddragon

import (
	"fmt"
	"strconv"
	"sync"
)

// spellData is the Data Dragon summoner spell document entry
type spellData struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// SummonerSpellRegistry holds the summoner spell ID to name mapping
type SummonerSpellRegistry struct {
	mu     sync.RWMutex
	spells map[int]string
	loaded bool
}

// NewSummonerSpellRegistry creates an empty summoner spell registry
func NewSummonerSpellRegistry() *SummonerSpellRegistry {
	return &SummonerSpellRegistry{spells: make(map[int]string)}
}

// Load fetches summoner spell data from Data Dragon
func (r *SummonerSpellRegistry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	client := newHTTPClient()
	version, err := latestVersion(client)
	if err != nil {
		return err
	}

	var doc struct {
		Data map[string]spellData `json:"data"`
	}
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/summoner.json", baseURL, version)
	if err := fetchJSON(client, url, &doc); err != nil {
		return fmt.Errorf("failed to load summoner spells: %w", err)
	}

	for _, spell := range doc.Data {
		key, err := strconv.Atoi(spell.Key)
		if err != nil {
			continue
		}
		r.spells[key] = spell.Name
	}

	r.loaded = true
	fmt.Printf("Loaded %d summoner spells from Data Dragon (v%s)\n", len(r.spells), version)
	return nil
}

// Name returns the summoner spell name for a given ID
func (r *SummonerSpellRegistry) Name(id int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.spells[id]
	return name, ok
}

// IsLoaded returns whether the registry has been loaded
func (r *SummonerSpellRegistry) IsLoaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}
