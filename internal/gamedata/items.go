package gamedata

import (
	"fmt"

	"github.com/samdwyer/dungeongen/internal/world"
)

// NamesFile represents the structure of names.json.
type NamesFile struct {
	Prefixes map[world.Rarity][]string `json:"prefixes"`
	Nouns    map[world.Slot][]string   `json:"nouns"`
	Suffixes []string                  `json:"suffixes"`
}

// Validate checks that every rarity and slot has names to draw from.
func (f *NamesFile) Validate() error {
	for _, r := range world.Rarities {
		if len(f.Prefixes[r]) == 0 {
			return fmt.Errorf("no prefixes for rarity %q", r)
		}
	}
	for _, s := range world.Slots {
		if len(f.Nouns[s]) == 0 {
			return fmt.Errorf("no nouns for slot %q", s)
		}
	}
	if len(f.Suffixes) == 0 {
		return fmt.Errorf("no suffixes")
	}
	return nil
}

// StatRange is the unscaled roll range of one equipment stat.
type StatRange struct {
	Stat world.Stat `json:"stat"`
	Min  float64    `json:"min"`
	Max  float64    `json:"max"`
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Slots map[world.Slot][]StatRange `json:"slots"`
}

// Validate checks that every slot rolls at least one stat.
func (f *ItemsFile) Validate() error {
	for _, s := range world.Slots {
		if len(f.Slots[s]) == 0 {
			return fmt.Errorf("no stat ranges for slot %q", s)
		}
		for _, r := range f.Slots[s] {
			if r.Max < r.Min {
				return fmt.Errorf("slot %q stat %q: max below min", s, r.Stat)
			}
		}
	}
	return nil
}
