package game

// RiotTeamIdentifier identifies a team in a data source.
// The Riot match API does not expose stable team identities for solo queue,
// so this is populated only for sources that have them.
type RiotTeamIdentifier struct {
	TeamID string `json:"teamId,omitempty"`
}

// TeamIdentifiers holds per-source identity records for a team.
// Any source present in Game.Sources may have an entry here.
type TeamIdentifiers struct {
	RiotLolAPI *RiotTeamIdentifier `json:"riotLolApi,omitempty"`
}

// TeamEndOfGameStats are end-of-game stats pertaining to the whole team.
//
// Structure kills are team-level as buildings can be killed by minions.
// Epic monster kills are team-level as attributing them to individual
// players makes little sense.
type TeamEndOfGameStats struct {
	TowerKills      int `json:"towerKills"`
	InhibitorKills  int `json:"inhibitorKills"`
	RiftHeraldKills int `json:"riftHeraldKills"`
	DragonKills     int `json:"dragonKills"`
	BaronKills      int `json:"baronKills"`

	// First objective flags, true if this team took the first one in the game
	FirstTower      bool `json:"firstTower"`
	FirstInhibitor  bool `json:"firstInhibitor"`
	FirstRiftHerald bool `json:"firstRiftHerald"`
	FirstDragon     bool `json:"firstDragon"`
	FirstBaron      bool `json:"firstBaron"`
}

// Team is one of the two teams taking part in a game.
// The Game.Teams key referring to this object is what defines its side.
type Team struct {
	// Players are a plain list as no natural key emerges
	Players []*Player `json:"players"`

	// Banned champion IDs in pick/ban order, with an optional parallel name list
	Bans      []int    `json:"bans,omitempty"`
	BansNames []string `json:"bansNames,omitempty"`

	EndOfGameStats TeamEndOfGameStats `json:"endOfGameStats"`

	// Kills are attached to the team opposing the victim, ordered by timestamp
	Kills []Kill `json:"kills"`
	// MonstersKills are epic monster takes, ordered by timestamp
	MonstersKills []MonsterKill `json:"monstersKills"`
	// BuildingsKills are buildings destroyed by this team, ordered by timestamp
	BuildingsKills []BuildingKill `json:"buildingsKills"`

	// Name is the actual team name (T1, Fnatic, ...), when known
	Name string `json:"name,omitempty"`

	UniqueIdentifiers TeamIdentifiers `json:"uniqueIdentifiers"`
}
