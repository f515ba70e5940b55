// Package ddragon resolves numeric Riot ids to human-readable names using
// Data Dragon static data. Names are cosmetic: every lookup is total and a
// missing mapping yields an absent name, never an error.
package ddragon

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const baseURL = "https://ddragon.leagueoflegends.com"

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// latestVersion fetches the newest available Data Dragon version
func latestVersion(client *http.Client) (string, error) {
	resp, err := client.Get(baseURL + "/api/versions.json")
	if err != nil {
		return "", fmt.Errorf("failed to fetch versions: %w", err)
	}
	defer resp.Body.Close()

	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", fmt.Errorf("failed to parse versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("no versions available")
	}
	return versions[0], nil
}

// fetchJSON gets a Data Dragon document into result
func fetchJSON(client *http.Client, url string, result interface{}) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

// Directory bundles all registries behind one loader and satisfies the
// transmute.NameSource interface.
type Directory struct {
	Champions *ChampionRegistry
	Items     *ItemRegistry
	Spells    *SummonerSpellRegistry
	Runes     *RuneRegistry
}

// NewDirectory creates an empty directory; call Load before using it
func NewDirectory() *Directory {
	return &Directory{
		Champions: NewChampionRegistry(),
		Items:     NewItemRegistry(),
		Spells:    NewSummonerSpellRegistry(),
		Runes:     NewRuneRegistry(),
	}
}

// Load fetches all static data from Data Dragon
func (d *Directory) Load() error {
	if err := d.Champions.Load(); err != nil {
		return err
	}
	if err := d.Items.Load(); err != nil {
		return err
	}
	if err := d.Spells.Load(); err != nil {
		return err
	}
	return d.Runes.Load()
}

// Champion returns the champion name for an id
func (d *Directory) Champion(id int) (string, bool) { return d.Champions.Name(id) }

// Item returns the item name for an id
func (d *Directory) Item(id int) (string, bool) { return d.Items.Name(id) }

// SummonerSpell returns the summoner spell name for an id
func (d *Directory) SummonerSpell(id int) (string, bool) { return d.Spells.Name(id) }

// Rune returns the rune perk name for an id
func (d *Directory) Rune(id int) (string, bool) { return d.Runes.RuneName(id) }

// RuneTree returns the rune tree name for an id
func (d *Directory) RuneTree(id int) (string, bool) { return d.Runes.TreeName(id) }
