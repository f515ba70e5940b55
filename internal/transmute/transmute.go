// Package transmute turns raw Riot match records into the canonical,
// source-agnostic game representation. The transform is a pure single pass
// over one already-fetched record: no I/O, no shared state, safe to run for
// many matches in parallel.
package transmute

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"match-normalizer/internal/game"
	"match-normalizer/internal/riot"
)

// Options controls optional parts of the transform.
type Options struct {
	// AddNames attaches human-readable names next to numeric ids using Names.
	// Lookups that miss leave the name fields empty; this never fails.
	AddNames bool
	Names    NameSource

	// Roles are curated role assignments keyed by participant id. They
	// override inferred roles both on the output players and as the join key
	// for differential snapshot metrics.
	Roles map[int]game.Role

	// Tournament metadata, attached verbatim when set
	Tournament   string
	GameInSeries int
	VOD          string
	PicksBans    []game.PickBan

	// TeamNames maps side to the actual team name (esports games)
	TeamNames map[game.Side]string
}

// MatchToGame builds a canonical game from a match record alone. Event lists
// and snapshots stay empty; use MatchToGameWithTimeline when the timeline
// feed is available.
func MatchToGame(match *riot.Match, opts Options) (*game.Game, error) {
	return assemble(match, nil, opts)
}

// MatchToGameWithTimeline builds a canonical game from a match record and its
// timeline feed, reconstructing per-team and per-player event streams and
// role-relative snapshots.
func MatchToGameWithTimeline(match *riot.Match, timeline *riot.Timeline, opts Options) (*game.Game, error) {
	if timeline == nil {
		return nil, fmt.Errorf("%w: timeline is nil", ErrIncompleteGame)
	}
	return assemble(match, timeline, opts)
}

func assemble(match *riot.Match, timeline *riot.Timeline, opts Options) (*game.Game, error) {
	if match == nil {
		return nil, fmt.Errorf("%w: match is nil", ErrIncompleteGame)
	}

	winner, err := resolveWinner(match.Teams)
	if err != nil {
		return nil, err
	}

	patch, err := patchFromVersion(match.GameVersion)
	if err != nil {
		return nil, err
	}

	var names NameSource
	if opts.AddNames {
		names = opts.Names
	}

	roles := inferRoles(match, opts.Roles)

	teams := make(map[game.Side]*game.Team, 2)
	players := make(map[int]*game.Player, len(match.Participants))

	for _, teamStats := range match.Teams {
		side, err := teamSide(teamStats.TeamID)
		if err != nil {
			return nil, err
		}
		if _, dup := teams[side]; dup {
			return nil, fmt.Errorf("%w: duplicate %s team frame", ErrMalformedSourceData, side)
		}

		team := buildTeam(teamStats, names)
		team.Name = opts.TeamNames[side]

		for _, participant := range match.Participants {
			if participant.TeamID != teamStats.TeamID {
				continue
			}
			player := buildPlayer(participant, lookupIdentity(match, participant.ParticipantID), names)
			if role, ok := opts.Roles[participant.ParticipantID]; ok {
				player.Role = role
			}
			players[participant.ParticipantID] = player
			team.Players = append(team.Players, player)
		}

		teams[side] = team
	}

	if len(teams) != 2 {
		return nil, fmt.Errorf("%w: expected 2 teams, got %d", ErrIncompleteGame, len(teams))
	}
	for side, team := range teams {
		if len(team.Players) == 0 {
			return nil, fmt.Errorf("%w: %s team has no players", ErrIncompleteGame, side)
		}
	}

	if timeline != nil {
		if err := reconstructEvents(match, timeline, teams, players, names); err != nil {
			return nil, err
		}
		buildSnapshots(timeline, players, roleOpponents(match, roles))
	}

	return &game.Game{
		Sources: game.Sources{
			RiotLolAPI: &game.RiotGameIdentifier{
				GameID:     match.GameID,
				PlatformID: match.PlatformID,
			},
		},
		Duration:     match.GameDuration,
		Start:        time.UnixMilli(match.GameCreation).UTC().Format(time.RFC3339),
		Patch:        patch,
		GameVersion:  match.GameVersion,
		Winner:       winner,
		Teams:        teams,
		Tournament:   opts.Tournament,
		GameInSeries: opts.GameInSeries,
		VOD:          opts.VOD,
		PicksBans:    opts.PicksBans,
	}, nil
}

// buildTeam maps a raw team frame onto a canonical team. Bans keep the
// pick/ban order given by the draft turns.
func buildTeam(t riot.TeamStats, names NameSource) *game.Team {
	team := &game.Team{
		Players: []*game.Player{},
		EndOfGameStats: game.TeamEndOfGameStats{
			TowerKills:      t.TowerKills,
			InhibitorKills:  t.InhibitorKills,
			RiftHeraldKills: t.RiftHeraldKills,
			DragonKills:     t.DragonKills,
			BaronKills:      t.BaronKills,
			FirstTower:      t.FirstTower,
			FirstInhibitor:  t.FirstInhibitor,
			FirstRiftHerald: t.FirstRiftHerald,
			FirstDragon:     t.FirstDragon,
			FirstBaron:      t.FirstBaron,
		},
		Kills:          []game.Kill{},
		MonstersKills:  []game.MonsterKill{},
		BuildingsKills: []game.BuildingKill{},
	}

	if len(t.Bans) > 0 {
		bans := append([]riot.TeamBan{}, t.Bans...)
		sort.SliceStable(bans, func(i, j int) bool { return bans[i].PickTurn < bans[j].PickTurn })
		for _, ban := range bans {
			team.Bans = append(team.Bans, ban.ChampionID)
		}
		if names != nil {
			for _, ban := range bans {
				team.BansNames = append(team.BansNames, nameOrEmpty(names.Champion, ban.ChampionID))
			}
		}
	}

	return team
}

// patchFromVersion truncates a full game version to its XX.YY patch.
// Both leading components must be numeric; a malformed version string fails
// loudly instead of producing a wrong patch silently.
func patchFromVersion(version string) (string, error) {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: game version %q", ErrMalformedSourceData, version)
	}
	for _, part := range parts[:2] {
		if _, err := strconv.Atoi(part); err != nil {
			return "", fmt.Errorf("%w: game version %q", ErrMalformedSourceData, version)
		}
	}
	return parts[0] + "." + parts[1], nil
}
