package ddragon

import (
	"fmt"
	"sync"
)

// runeTreeData is one tree of the runesReforged document
type runeTreeData struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Slots []struct {
		Runes []struct {
			ID   int    `json:"id"`
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"runes"`
	} `json:"slots"`
}

// RuneRegistry holds rune perk and tree ID to name mappings
type RuneRegistry struct {
	mu     sync.RWMutex
	runes  map[int]string // perk ID -> name
	trees  map[int]string // tree ID -> name
	loaded bool
}

// NewRuneRegistry creates an empty rune registry
func NewRuneRegistry() *RuneRegistry {
	return &RuneRegistry{
		runes: make(map[int]string),
		trees: make(map[int]string),
	}
}

// Load fetches rune data from Data Dragon
func (r *RuneRegistry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	client := newHTTPClient()
	version, err := latestVersion(client)
	if err != nil {
		return err
	}

	var trees []runeTreeData
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/runesReforged.json", baseURL, version)
	if err := fetchJSON(client, url, &trees); err != nil {
		return fmt.Errorf("failed to load runes: %w", err)
	}

	for _, tree := range trees {
		r.trees[tree.ID] = tree.Name
		for _, slot := range tree.Slots {
			for _, perk := range slot.Runes {
				r.runes[perk.ID] = perk.Name
			}
		}
	}

	// Stat shard names aren't in the runesReforged document
	r.runes[5008] = "Adaptive Force"
	r.runes[5005] = "Attack Speed"
	r.runes[5007] = "Ability Haste"
	r.runes[5002] = "Armor"
	r.runes[5003] = "Magic Resist"
	r.runes[5001] = "Health Scaling"
	r.runes[5011] = "Health"

	r.loaded = true
	fmt.Printf("Loaded %d runes from Data Dragon (v%s)\n", len(r.runes), version)
	return nil
}

// RuneName returns the perk name for a given rune ID
func (r *RuneRegistry) RuneName(id int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.runes[id]
	return name, ok
}

// TreeName returns the tree name for a given rune tree ID
func (r *RuneRegistry) TreeName(id int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.trees[id]
	return name, ok
}

// IsLoaded returns whether the registry has been loaded
func (r *RuneRegistry) IsLoaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}
