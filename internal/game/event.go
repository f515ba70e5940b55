package game

// Position on the map. Values range from -120 to 14870, measured from the
// bottom left corner.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Event is the base shape shared by all event kinds.
//
// In the Riot API only champion kills and monster kills carry a position.
type Event struct {
	// Timestamp in seconds from the game start, with possible ms precision
	Timestamp float64   `json:"timestamp"`
	Position  *Position `json:"position,omitempty"`
}

// Kill is a single champion kill.
type Kill struct {
	Event
	// KillerID is nil for executions (kills without a champion source)
	KillerID   *int  `json:"killerId,omitempty"`
	AssistsIDs []int `json:"assistsIds"`
	VictimID   int   `json:"victimId"`
}

// MonsterType is an epic monster tracked at team granularity
type MonsterType string

const (
	MonsterDragon     MonsterType = "DRAGON"
	MonsterBaron      MonsterType = "BARON"
	MonsterRiftHerald MonsterType = "RIFT_HERALD"
)

// DragonSubType distinguishes elemental and elder dragons
type DragonSubType string

const (
	DragonCloud    DragonSubType = "CLOUD"
	DragonInfernal DragonSubType = "INFERNAL"
	DragonMountain DragonSubType = "MOUNTAIN"
	DragonOcean    DragonSubType = "OCEAN"
	DragonElder    DragonSubType = "ELDER"
)

// MonsterKill is an epic monster take for a team.
type MonsterKill struct {
	Event
	KillerID int           `json:"killerId"`
	Type     MonsterType   `json:"type"`
	SubType  DragonSubType `json:"subType,omitempty"`
}

// BuildingType is a destructible structure kind
type BuildingType string

const (
	BuildingTurret    BuildingType = "TURRET"
	BuildingInhibitor BuildingType = "INHIBITOR"
)

// Lane is one of the three lanes buildings sit in
type Lane string

const (
	LaneTop Lane = "TOP"
	LaneMid Lane = "MID"
	LaneBot Lane = "BOT"
)

// TowerLocation is the position of a turret within its lane
type TowerLocation string

const (
	TowerOuter     TowerLocation = "OUTER"
	TowerInner     TowerLocation = "INNER"
	TowerInhibitor TowerLocation = "INHIBITOR"
	TowerNexus     TowerLocation = "NEXUS"
)

// BuildingKill is a building destruction credited to a team.
// Side is the side the building belonged to, not the killing team.
type BuildingKill struct {
	Event
	// KillerID is nil when minions dealt the last hit
	KillerID      *int          `json:"killerId,omitempty"`
	Type          BuildingType  `json:"type"`
	Lane          Lane          `json:"lane"`
	Side          Side          `json:"side"`
	TowerLocation TowerLocation `json:"towerLocation,omitempty"`
}

// ItemEventType covers buying, selling, destroying, and undoing items
type ItemEventType string

const (
	ItemPurchased ItemEventType = "PURCHASED"
	ItemSold      ItemEventType = "SOLD"
	ItemUndo      ItemEventType = "UNDO"
	ItemDestroyed ItemEventType = "DESTROYED"
)

// ItemEvent is an item transaction for a player.
type ItemEvent struct {
	Event
	Type ItemEventType `json:"type"`
	// ID is the item ID, the resulting item in case of an UNDO
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
	// UndoID is the item that was undone in an UNDO event
	UndoID int `json:"undoId,omitempty"`
}

// WardEventType covers placing and killing wards
type WardEventType string

const (
	WardPlaced WardEventType = "PLACED"
	WardKilled WardEventType = "KILLED"
)

// WardType is the kind of ward involved in a ward event
type WardType string

const (
	WardYellowTrinket        WardType = "YELLOW_TRINKET"
	WardControl              WardType = "CONTROL_WARD"
	WardSight                WardType = "SIGHT_WARD"
	WardYellowTrinketUpgrade WardType = "YELLOW_TRINKET_UPGRADE"
	WardBlueTrinket          WardType = "BLUE_TRINKET"
	WardTeemoMushroom        WardType = "TEEMO_MUSHROOM"
	WardVision               WardType = "VISION_WARD"
	WardUndefined            WardType = "UNDEFINED"
)

// WardEvent is a ward placement or kill by a player.
type WardEvent struct {
	Event
	Type     WardEventType `json:"type"`
	WardType WardType      `json:"wardType"`
}

// SkillLevelUpType distinguishes normal level ups from evolutions
type SkillLevelUpType string

const (
	SkillLevelUpNormal SkillLevelUpType = "NORMAL"
	SkillLevelUpEvolve SkillLevelUpType = "EVOLVE"
)

// SkillLevelUpEvent is a skill point spent by a player. Slot is 1-4.
type SkillLevelUpEvent struct {
	Event
	Type SkillLevelUpType `json:"type"`
	Slot int              `json:"slot"`
}
