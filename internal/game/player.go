package game

// Role values are the five standard positions. This field should be curated
// when present; an inferred role is only used internally to join opponents.
type Role string

const (
	RoleTop Role = "TOP"
	RoleJgl Role = "JGL"
	RoleMid Role = "MID"
	RoleBot Role = "BOT"
	RoleSup Role = "SUP"
)

// RiotPlayerIdentifier identifies a player in the Riot LoL API
type RiotPlayerIdentifier struct {
	AccountID  string `json:"accountId"`
	PlatformID string `json:"platformId"`
}

// PlayerIdentifiers holds per-source identity records for a player.
// Any source present in Game.Sources should have an entry here when the
// identity could be resolved.
type PlayerIdentifiers struct {
	RiotLolAPI *RiotPlayerIdentifier `json:"riotLolApi,omitempty"`
}

// Rune is a single rune used by a player.
// Slots 0-5 are primary and secondary tree perks, 6-8 the stat perks.
type Rune struct {
	Slot int    `json:"slot"`
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
	// Stats are the end-of-game statistics Riot provides for the rune,
	// up to 3 for tree perks and none for stat perks
	Stats []int `json:"stats"`
}

// Item is a single item a player held at the end of the game.
// Slot goes from 0 to 6, with 6 being the trinket slot. Empty slots are
// omitted from the list, so it cannot be indexed by slot.
type Item struct {
	Slot int    `json:"slot"`
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// SummonerSpell is one of the two spells chosen by a player. Slot is 0 or 1.
type SummonerSpell struct {
	Slot int    `json:"slot"`
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// PlayerEndOfGameStats is the end-of-game stat block for a player.
type PlayerEndOfGameStats struct {
	Items []Item `json:"items"`

	FirstBlood           bool `json:"firstBlood"`
	FirstBloodAssist     bool `json:"firstBloodAssist"`
	FirstTower           bool `json:"firstTower"`
	FirstTowerAssist     bool `json:"firstTowerAssist"`
	FirstInhibitor       bool `json:"firstInhibitor"`
	FirstInhibitorAssist bool `json:"firstInhibitorAssist"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	Gold  int `json:"gold"`
	CS    int `json:"cs"`
	Level int `json:"level"`

	WardsPlaced       int `json:"wardsPlaced"`
	WardsKilled       int `json:"wardsKilled"`
	VisionWardsBought int `json:"visionWardsBought"`
	VisionScore       int `json:"visionScore"`

	KillingSprees       int `json:"killingSprees"`
	LargestKillingSpree int `json:"largestKillingSpree"`
	DoubleKills         int `json:"doubleKills"`
	TripleKills         int `json:"tripleKills"`
	QuadraKills         int `json:"quadraKills"`
	PentaKills          int `json:"pentaKills"`

	TowerKills                 int `json:"towerKills"`
	InhibitorKills             int `json:"inhibitorKills"`
	MonsterKills               int `json:"monsterKills"`
	MonsterKillsInAlliedJungle int `json:"monsterKillsInAlliedJungle"`
	MonsterKillsInEnemyJungle  int `json:"monsterKillsInEnemyJungle"`

	// Damage totals include minions and monsters; true damage is the total
	// minus physical and magic
	TotalDamageDealt               int `json:"totalDamageDealt"`
	PhysicalDamageDealt            int `json:"physicalDamageDealt"`
	MagicDamageDealt               int `json:"magicDamageDealt"`
	TotalDamageDealtToChampions    int `json:"totalDamageDealtToChampions"`
	PhysicalDamageDealtToChampions int `json:"physicalDamageDealtToChampions"`
	MagicDamageDealtToChampions    int `json:"magicDamageDealtToChampions"`
	DamageDealtToObjectives        int `json:"damageDealtToObjectives"`
	DamageDealtToTurrets           int `json:"damageDealtToTurrets"`

	LongestTimeSpentLiving int `json:"longestTimeSpentLiving"`
	LargestCriticalStrike  int `json:"largestCriticalStrike"`
	GoldSpent              int `json:"goldSpent"`
	TotalHeal              int `json:"totalHeal"`
	TotalUnitsHealed       int `json:"totalUnitsHealed"`
	DamageSelfMitigated    int `json:"damageSelfMitigated"`
	TotalTimeCCDealt       int `json:"totalTimeCCDealt"`
	TimeCCingOthers        int `json:"timeCCingOthers"`
}

// Snapshot is player-specific information at a given timestamp.
//
// Diff fields compare against the opponent sharing the same role in the same
// frame and are nil when the opponent is ambiguous or missing.
type Snapshot struct {
	// Timestamp in seconds from the game start, with possible ms precision
	Timestamp float64 `json:"timestamp"`

	CurrentGold   int  `json:"currentGold"`
	TotalGold     int  `json:"totalGold"`
	TotalGoldDiff *int `json:"totalGoldDiff,omitempty"`

	XP     int  `json:"xp"`
	XPDiff *int `json:"xpDiff,omitempty"`

	Level int `json:"level"`

	// CS counts both minions and monsters
	CS     int  `json:"cs"`
	CSDiff *int `json:"csDiff,omitempty"`

	MonstersKilled     int  `json:"monstersKilled"`
	MonstersKilledDiff *int `json:"monstersKilledDiff,omitempty"`

	// Position is nil for the last snapshot of the game
	Position *Position `json:"position,omitempty"`
}

// Player is a single player in a game, owned by exactly one team.
type Player struct {
	// ID is the in-source participant id, used to resolve kill participants
	ID int `json:"id"`

	InGameName    string `json:"inGameName"`
	ProfileIconID int    `json:"profileIconId"`

	// Role should be curated when set
	Role Role `json:"role,omitempty"`

	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName,omitempty"`

	UniqueIdentifiers PlayerIdentifiers `json:"uniqueIdentifiers"`

	PrimaryRuneTreeID     int    `json:"primaryRuneTreeId"`
	PrimaryRuneTreeName   string `json:"primaryRuneTreeName,omitempty"`
	SecondaryRuneTreeID   int    `json:"secondaryRuneTreeId"`
	SecondaryRuneTreeName string `json:"secondaryRuneTreeName,omitempty"`

	// Runes always has 9 entries: slots 0-5 tree perks, 6-8 stat perks
	Runes []Rune `json:"runes"`
	// SummonerSpells always has 2 entries
	SummonerSpells []SummonerSpell `json:"summonerSpells"`

	EndOfGameStats PlayerEndOfGameStats `json:"endOfGameStats"`

	// Snapshots are not sorted or indexed in any particular way
	Snapshots []Snapshot `json:"snapshots"`

	// Per-player event lists, each ordered by timestamp
	ItemsEvents         []ItemEvent         `json:"itemsEvents"`
	WardsEvents         []WardEvent         `json:"wardsEvents"`
	SkillsLevelUpEvents []SkillLevelUpEvent `json:"skillsLevelUpEvents"`
}
