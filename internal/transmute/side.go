package transmute

import (
	"fmt"

	"match-normalizer/internal/game"
	"match-normalizer/internal/riot"
)

// Riot team ids: 100 is always the blue side, 200 the red side
const (
	blueTeamID = 100
	redTeamID  = 200
)

// teamSide maps a raw Riot team id to a side
func teamSide(teamID int) (game.Side, error) {
	switch teamID {
	case blueTeamID:
		return game.SideBlue, nil
	case redTeamID:
		return game.SideRed, nil
	default:
		return "", fmt.Errorf("%w: unrecognized team id %d", ErrMalformedSourceData, teamID)
	}
}

// participantSide resolves the side a participant id belongs to
func participantSide(match *riot.Match, participantID int) (game.Side, error) {
	for _, p := range match.Participants {
		if p.ParticipantID == participantID {
			return teamSide(p.TeamID)
		}
	}
	return "", fmt.Errorf("%w: no participant with id %d", ErrMalformedSourceData, participantID)
}

// resolveWinner determines the winning side from the two team frames.
//
// The win flag and the team id vary independently across data pulls, so the
// winner is derived from their agreement on a single frame: if the first
// frame's team id is the blue id exactly when its win flag is set, blue won.
// A naive "side of the team with win set" breaks when the flags contradict.
func resolveWinner(teams []riot.TeamStats) (game.Side, error) {
	if len(teams) != 2 {
		return "", fmt.Errorf("%w: expected 2 team frames, got %d", ErrIncompleteGame, len(teams))
	}

	wins := 0
	for _, t := range teams {
		if _, err := teamSide(t.TeamID); err != nil {
			return "", err
		}
		if t.Win == "Win" {
			wins++
		}
	}
	if wins != 1 {
		return "", fmt.Errorf("%w: %d teams report a win", ErrMalformedSourceData, wins)
	}

	if (teams[0].TeamID == blueTeamID) == (teams[0].Win == "Win") {
		return game.SideBlue, nil
	}
	return game.SideRed, nil
}
