package game

// Side identifies one of the two halves of a game
type Side string

const (
	SideBlue Side = "BLUE"
	SideRed  Side = "RED"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideBlue {
		return SideRed
	}
	return SideBlue
}

// RiotGameIdentifier identifies a game in the Riot LoL API
type RiotGameIdentifier struct {
	GameID     int64  `json:"gameId"`
	PlatformID string `json:"platformId"`
}

// Sources holds all information necessary to identify the game in each data source.
// One optional record per known source; absent means the game was not seen there.
type Sources struct {
	RiotLolAPI *RiotGameIdentifier `json:"riotLolApi,omitempty"`
}

// PickBan is a single pick or ban in the draft.
// The IsBan and Team fields are kept explicit to survive format changes.
type PickBan struct {
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName,omitempty"`
	IsBan        bool   `json:"isBan"`
	Team         Side   `json:"team"`
}

// Game is the canonical, source-agnostic representation of a single game.
// It is constructed once by the transmute package and never mutated.
type Game struct {
	Sources Sources `json:"sources"`

	// Duration in seconds
	Duration int `json:"duration"`
	// Start is the match start expressed as an ISO 8601 date with second precision
	Start string `json:"start"`
	// Patch following XX.YY nomenclature
	Patch string `json:"patch"`
	// GameVersion is the full XX.YY.ZZ.AA version, distinguishing micro patches
	GameVersion string `json:"gameVersion"`

	Winner Side `json:"winner"`

	// Teams maps side to team data; exactly BLUE and RED are present
	Teams map[Side]*Team `json:"teams"`

	// Optional tournament metadata
	Tournament   string `json:"tournament,omitempty"`
	GameInSeries int    `json:"gameInSeries,omitempty"`
	VOD          string `json:"vod,omitempty"`

	// Ordered picks and bans, when known
	PicksBans []PickBan `json:"picksBans,omitempty"`
}
