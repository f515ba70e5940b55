package ddragon

import (
	"fmt"
	"strconv"
	"sync"
)

// itemData is the Data Dragon item document entry
type itemData struct {
	Name string `json:"name"`
}

// ItemRegistry holds the item ID to name mapping
type ItemRegistry struct {
	mu     sync.RWMutex
	items  map[int]string
	loaded bool
}

// NewItemRegistry creates an empty item registry
func NewItemRegistry() *ItemRegistry {
	return &ItemRegistry{items: make(map[int]string)}
}

// Load fetches item data from Data Dragon
func (r *ItemRegistry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	client := newHTTPClient()
	version, err := latestVersion(client)
	if err != nil {
		return err
	}

	var doc struct {
		Data map[string]itemData `json:"data"`
	}
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/item.json", baseURL, version)
	if err := fetchJSON(client, url, &doc); err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}

	for idStr, item := range doc.Data {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		r.items[id] = item.Name
	}

	r.loaded = true
	fmt.Printf("Loaded %d items from Data Dragon (v%s)\n", len(r.items), version)
	return nil
}

// Name returns the item name for a given ID
func (r *ItemRegistry) Name(id int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.items[id]
	return name, ok
}

// IsLoaded returns whether the registry has been loaded
func (r *ItemRegistry) IsLoaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}
