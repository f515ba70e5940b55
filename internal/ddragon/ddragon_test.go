package ddragon

import (
	"testing"

	"match-normalizer/internal/transmute"
)

var _ transmute.NameSource = (*Directory)(nil)

func TestUnloadedDirectory_AllLookupsMiss(t *testing.T) {
	d := NewDirectory()

	if _, ok := d.Champion(10); ok {
		t.Error("unloaded champion lookup should miss")
	}
	if _, ok := d.Item(1055); ok {
		t.Error("unloaded item lookup should miss")
	}
	if _, ok := d.SummonerSpell(4); ok {
		t.Error("unloaded summoner spell lookup should miss")
	}
	if _, ok := d.Rune(8005); ok {
		t.Error("unloaded rune lookup should miss")
	}
	if _, ok := d.RuneTree(8000); ok {
		t.Error("unloaded rune tree lookup should miss")
	}
}

func TestRegistriesStartUnloaded(t *testing.T) {
	d := NewDirectory()

	if d.Champions.IsLoaded() || d.Items.IsLoaded() || d.Spells.IsLoaded() || d.Runes.IsLoaded() {
		t.Error("fresh registries should report unloaded")
	}
}

func TestLoadAgainstDataDragon(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Data Dragon network test in short mode")
	}

	d := NewDirectory()
	if err := d.Load(); err != nil {
		t.Skipf("Data Dragon unavailable: %v", err)
	}

	if name, ok := d.Champion(103); !ok || name != "Ahri" {
		t.Errorf("Champion(103) = %q, %v, want Ahri", name, ok)
	}
	if name, ok := d.SummonerSpell(4); !ok || name != "Flash" {
		t.Errorf("SummonerSpell(4) = %q, %v, want Flash", name, ok)
	}
	if name, ok := d.RuneTree(8000); !ok || name != "Precision" {
		t.Errorf("RuneTree(8000) = %q, %v, want Precision", name, ok)
	}
	if name, ok := d.Rune(5008); !ok || name != "Adaptive Force" {
		t.Errorf("Rune(5008) = %q, %v, want Adaptive Force", name, ok)
	}
}
