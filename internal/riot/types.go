package riot

// Match represents the response from /lol/match/v4/matches/{matchId}
type Match struct {
	GameID       int64  `json:"gameId"`
	PlatformID   string `json:"platformId"`
	GameCreation int64  `json:"gameCreation"` // Unix ms
	GameDuration int    `json:"gameDuration"` // Seconds
	GameVersion  string `json:"gameVersion"`
	QueueID      int    `json:"queueId"`

	Teams                 []TeamStats           `json:"teams"`
	Participants          []Participant         `json:"participants"`
	ParticipantIdentities []ParticipantIdentity `json:"participantIdentities"`
}

// TeamStats is the per-team block of a match. TeamID is 100 (blue) or 200 (red).
type TeamStats struct {
	TeamID int    `json:"teamId"`
	Win    string `json:"win"` // "Win" or "Fail"

	FirstBlood      bool `json:"firstBlood"`
	FirstTower      bool `json:"firstTower"`
	FirstInhibitor  bool `json:"firstInhibitor"`
	FirstBaron      bool `json:"firstBaron"`
	FirstDragon     bool `json:"firstDragon"`
	FirstRiftHerald bool `json:"firstRiftHerald"`

	TowerKills      int `json:"towerKills"`
	InhibitorKills  int `json:"inhibitorKills"`
	BaronKills      int `json:"baronKills"`
	DragonKills     int `json:"dragonKills"`
	RiftHeraldKills int `json:"riftHeraldKills"`

	Bans []TeamBan `json:"bans"`
}

// TeamBan is a banned champion with its turn in the draft
type TeamBan struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

// Participant is one player's match record, joined to identity via ParticipantID
type Participant struct {
	ParticipantID int                 `json:"participantId"`
	TeamID        int                 `json:"teamId"`
	ChampionID    int                 `json:"championId"`
	Spell1ID      int                 `json:"spell1Id"`
	Spell2ID      int                 `json:"spell2Id"`
	Stats         ParticipantStats    `json:"stats"`
	Timeline      ParticipantTimeline `json:"timeline"`
}

// ParticipantTimeline carries Riot's lane/role classification for a participant
type ParticipantTimeline struct {
	Lane string `json:"lane"` // TOP, JUNGLE, MIDDLE, BOTTOM, NONE
	Role string `json:"role"` // SOLO, DUO, DUO_CARRY, DUO_SUPPORT, NONE
}

// ParticipantStats is the end-of-game stat block for a participant
type ParticipantStats struct {
	Win bool `json:"win"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"` // Trinket

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	KillingSprees       int `json:"killingSprees"`
	LargestKillingSpree int `json:"largestKillingSpree"`
	DoubleKills         int `json:"doubleKills"`
	TripleKills         int `json:"tripleKills"`
	QuadraKills         int `json:"quadraKills"`
	PentaKills          int `json:"pentaKills"`

	TotalDamageDealt               int `json:"totalDamageDealt"`
	MagicDamageDealt               int `json:"magicDamageDealt"`
	PhysicalDamageDealt            int `json:"physicalDamageDealt"`
	TotalDamageDealtToChampions    int `json:"totalDamageDealtToChampions"`
	MagicDamageDealtToChampions    int `json:"magicDamageDealtToChampions"`
	PhysicalDamageDealtToChampions int `json:"physicalDamageDealtToChampions"`
	DamageDealtToObjectives        int `json:"damageDealtToObjectives"`
	DamageDealtToTurrets           int `json:"damageDealtToTurrets"`

	LongestTimeSpentLiving int `json:"longestTimeSpentLiving"`
	LargestCriticalStrike  int `json:"largestCriticalStrike"`

	GoldEarned int `json:"goldEarned"`
	GoldSpent  int `json:"goldSpent"`

	TurretKills                     int `json:"turretKills"`
	InhibitorKills                  int `json:"inhibitorKills"`
	TotalMinionsKilled              int `json:"totalMinionsKilled"`
	NeutralMinionsKilled            int `json:"neutralMinionsKilled"`
	NeutralMinionsKilledTeamJungle  int `json:"neutralMinionsKilledTeamJungle"`
	NeutralMinionsKilledEnemyJungle int `json:"neutralMinionsKilledEnemyJungle"`

	TotalHeal           int `json:"totalHeal"`
	TotalUnitsHealed    int `json:"totalUnitsHealed"`
	DamageSelfMitigated int `json:"damageSelfMitigated"`

	VisionScore              int `json:"visionScore"`
	WardsPlaced              int `json:"wardsPlaced"`
	WardsKilled              int `json:"wardsKilled"`
	VisionWardsBoughtInGame  int `json:"visionWardsBoughtInGame"`

	TotalTimeCrowdControlDealt int `json:"totalTimeCrowdControlDealt"`
	TimeCCingOthers            int `json:"timeCCingOthers"`

	ChampLevel int `json:"champLevel"`

	FirstBloodKill       bool `json:"firstBloodKill"`
	FirstBloodAssist     bool `json:"firstBloodAssist"`
	FirstTowerKill       bool `json:"firstTowerKill"`
	FirstTowerAssist     bool `json:"firstTowerAssist"`
	FirstInhibitorKill   bool `json:"firstInhibitorKill"`
	FirstInhibitorAssist bool `json:"firstInhibitorAssist"`

	// Runes: perk0-5 are the tree perks with up to 3 stat vars each,
	// statPerk0-2 the stat shard perks
	Perk0     int `json:"perk0"`
	Perk0Var1 int `json:"perk0Var1"`
	Perk0Var2 int `json:"perk0Var2"`
	Perk0Var3 int `json:"perk0Var3"`
	Perk1     int `json:"perk1"`
	Perk1Var1 int `json:"perk1Var1"`
	Perk1Var2 int `json:"perk1Var2"`
	Perk1Var3 int `json:"perk1Var3"`
	Perk2     int `json:"perk2"`
	Perk2Var1 int `json:"perk2Var1"`
	Perk2Var2 int `json:"perk2Var2"`
	Perk2Var3 int `json:"perk2Var3"`
	Perk3     int `json:"perk3"`
	Perk3Var1 int `json:"perk3Var1"`
	Perk3Var2 int `json:"perk3Var2"`
	Perk3Var3 int `json:"perk3Var3"`
	Perk4     int `json:"perk4"`
	Perk4Var1 int `json:"perk4Var1"`
	Perk4Var2 int `json:"perk4Var2"`
	Perk4Var3 int `json:"perk4Var3"`
	Perk5     int `json:"perk5"`
	Perk5Var1 int `json:"perk5Var1"`
	Perk5Var2 int `json:"perk5Var2"`
	Perk5Var3 int `json:"perk5Var3"`

	PerkPrimaryStyle int `json:"perkPrimaryStyle"`
	PerkSubStyle     int `json:"perkSubStyle"`

	StatPerk0 int `json:"statPerk0"`
	StatPerk1 int `json:"statPerk1"`
	StatPerk2 int `json:"statPerk2"`
}

// ParticipantIdentity links a participant id to the player's account.
// The Player block can be missing or partial for anonymized matches.
type ParticipantIdentity struct {
	ParticipantID int                `json:"participantId"`
	Player        *PlayerIdentity    `json:"player,omitempty"`
}

// PlayerIdentity is the out-of-band identity record for a participant
type PlayerIdentity struct {
	AccountID   string `json:"accountId"`
	PlatformID  string `json:"platformId"`
	SummonerID  string `json:"summonerId"`
	SummonerName string `json:"summonerName"`
	ProfileIcon int    `json:"profileIcon"`
}

// Timeline represents the response from /lol/match/v4/timelines/by-match/{matchId}
type Timeline struct {
	FrameInterval int     `json:"frameInterval"` // ms between frames
	Frames        []Frame `json:"frames"`
}

// Frame is one timeline tick: a state snapshot per participant plus the
// events that happened since the previous frame
type Frame struct {
	Timestamp         int64                       `json:"timestamp"` // ms from game start
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Events            []TimelineEvent             `json:"events"`
}

// ParticipantFrame is one participant's state at a frame tick
type ParticipantFrame struct {
	ParticipantID       int            `json:"participantId"`
	Position            *FramePosition `json:"position,omitempty"`
	CurrentGold         int            `json:"currentGold"`
	TotalGold           int            `json:"totalGold"`
	Level               int            `json:"level"`
	XP                  int            `json:"xp"`
	MinionsKilled       int            `json:"minionsKilled"`
	JungleMinionsKilled int            `json:"jungleMinionsKilled"`
}

// FramePosition is a raw map position
type FramePosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TimelineEvent is a single raw timeline event. Fields are populated
// depending on Type.
type TimelineEvent struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"` // ms from game start
	Position  *FramePosition `json:"position,omitempty"`

	// CHAMPION_KILL
	KillerID                int   `json:"killerId,omitempty"`
	VictimID                int   `json:"victimId,omitempty"`
	AssistingParticipantIDs []int `json:"assistingParticipantIds,omitempty"`

	// ELITE_MONSTER_KILL
	MonsterType    string `json:"monsterType,omitempty"`
	MonsterSubType string `json:"monsterSubType,omitempty"`

	// BUILDING_KILL; TeamID is the team the building belonged to
	TeamID       int    `json:"teamId,omitempty"`
	BuildingType string `json:"buildingType,omitempty"`
	LaneType     string `json:"laneType,omitempty"`
	TowerType    string `json:"towerType,omitempty"`

	// ITEM_* events
	ParticipantID int `json:"participantId,omitempty"`
	ItemID        int `json:"itemId,omitempty"`
	AfterID       int `json:"afterId,omitempty"`
	BeforeID      int `json:"beforeId,omitempty"`

	// WARD_PLACED / WARD_KILL
	WardType  string `json:"wardType,omitempty"`
	CreatorID int    `json:"creatorId,omitempty"`

	// SKILL_LEVEL_UP
	SkillSlot   int    `json:"skillSlot,omitempty"`
	LevelUpType string `json:"levelUpType,omitempty"`
}
