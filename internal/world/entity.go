package world

import "github.com/google/uuid"

// Tier is an enemy's strength class.
type Tier string

const (
	TierNormal Tier = "normal"
	TierElite  Tier = "elite"
	TierBoss   Tier = "boss"
)

// TierStats are the fixed per-tier combat constants.
type TierStats struct {
	Health     int
	Damage     int
	Experience int
}

// StatsFor returns the constants for a tier.
func StatsFor(t Tier) TierStats {
	switch t {
	case TierElite:
		return TierStats{Health: 200, Damage: 15, Experience: 100}
	case TierBoss:
		return TierStats{Health: 1000, Damage: 50, Experience: 500}
	default:
		return TierStats{Health: 100, Damage: 10, Experience: 50}
	}
}

// Behavior describes how the enemy runtime should drive an enemy.
type Behavior struct {
	Kind           string  `json:"kind"`
	DetectionRange float64 `json:"detectionRange"`
	AttackRange    float64 `json:"attackRange"`
	Speed          float64 `json:"speed"`
	AttackRate     float64 `json:"attackRate"`
}

// Enemy is a hostile placed in a room.
type Enemy struct {
	ID         uuid.UUID `json:"id"`
	RoomID     string    `json:"roomId"`
	Archetype  string    `json:"archetype"`
	Tier       Tier      `json:"tier"`
	Health     int       `json:"health"`
	MaxHealth  int       `json:"maxHealth"`
	Position   Point     `json:"position"` // Room-local tile coordinates
	Damage     int       `json:"damage"`
	Experience int       `json:"experience"`
	Behavior   Behavior  `json:"behavior"`
}

// Rarity classifies treasure.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists rarities from lowest to highest.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

// Multiplier returns the stat scaling applied to equipment of this rarity.
func (r Rarity) Multiplier() float64 {
	switch r {
	case RarityRare:
		return 1.5
	case RarityEpic:
		return 2
	case RarityLegendary:
		return 3
	default:
		return 1
	}
}

// AtLeast reports whether r ranks at or above other.
func (r Rarity) AtLeast(other Rarity) bool {
	return r.rank() >= other.rank()
}

func (r Rarity) rank() int {
	for i, v := range Rarities {
		if v == r {
			return i
		}
	}
	return -1
}

// RarityTable holds relative weights per rarity.
type RarityTable struct {
	Common    float64 `json:"common"`
	Rare      float64 `json:"rare"`
	Epic      float64 `json:"epic"`
	Legendary float64 `json:"legendary"`
}

// DefaultRarityTable is used when no reward table is configured.
var DefaultRarityTable = RarityTable{Common: 0.6, Rare: 0.25, Epic: 0.12, Legendary: 0.03}

// Weight returns the weight of one rarity.
func (t RarityTable) Weight(r Rarity) float64 {
	switch r {
	case RarityCommon:
		return t.Common
	case RarityRare:
		return t.Rare
	case RarityEpic:
		return t.Epic
	case RarityLegendary:
		return t.Legendary
	default:
		return 0
	}
}

// Total returns the sum of the positive weights.
func (t RarityTable) Total() float64 {
	total := 0.0
	for _, r := range Rarities {
		if w := t.Weight(r); w > 0 {
			total += w
		}
	}
	return total
}

// Slot is an equipment slot.
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// Slots lists the slots in selection order.
var Slots = []Slot{SlotWeapon, SlotArmor, SlotAccessory}

// Stat names an equipment stat delta.
type Stat string

const (
	StatDamage      Stat = "damage"
	StatAttackSpeed Stat = "attackSpeed"
	StatDefense     Stat = "defense"
	StatHealth      Stat = "health"
	StatCritChance  Stat = "critChance"
	StatMoveSpeed   Stat = "moveSpeed"
)

// StatOrder lists every stat in a fixed order for stable iteration.
var StatOrder = []Stat{StatDamage, StatAttackSpeed, StatDefense, StatHealth, StatCritChance, StatMoveSpeed}

// Equipment is a synthesized item.
type Equipment struct {
	ID     uuid.UUID        `json:"id"`
	Name   string           `json:"name"`
	Slot   Slot             `json:"slot"`
	Rarity Rarity           `json:"rarity"`
	Stats  map[Stat]float64 `json:"stats"`
}

// TreasureKind tells equipment drops from resource drops.
type TreasureKind string

const (
	TreasureEquipment TreasureKind = "equipment"
	TreasureResource  TreasureKind = "resource"
)

// Treasure is a reward placed in a room.
type Treasure struct {
	ID        uuid.UUID    `json:"id"`
	RoomID    string       `json:"roomId"`
	Kind      TreasureKind `json:"kind"`
	Rarity    Rarity       `json:"rarity"`
	Position  Point        `json:"position"`
	Equipment *Equipment   `json:"equipment,omitempty"`
	Resource  string       `json:"resource,omitempty"`
}
