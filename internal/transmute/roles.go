package transmute

import (
	"match-normalizer/internal/game"
	"match-normalizer/internal/riot"
)

// inferRole maps Riot's lane/role classification onto the five standard
// positions. Returns "" when the signals do not identify a position.
func inferRole(t riot.ParticipantTimeline) game.Role {
	switch t.Lane {
	case "TOP":
		return game.RoleTop
	case "JUNGLE":
		return game.RoleJgl
	case "MIDDLE", "MID":
		return game.RoleMid
	case "BOTTOM", "BOT":
		switch t.Role {
		case "DUO_CARRY":
			return game.RoleBot
		case "DUO_SUPPORT":
			return game.RoleSup
		}
	}
	return ""
}

// inferRoles assigns each participant a role, one per team. Curated roles
// (keyed by participant id) always override the inferred ones.
//
// When two players on the same team end up with the same role, neither
// assignment can be trusted; both are dropped from the map so that
// differential metrics for the pair are omitted rather than computed against
// the wrong opponent.
func inferRoles(match *riot.Match, curated map[int]game.Role) map[int]game.Role {
	roles := make(map[int]game.Role)
	for _, p := range match.Participants {
		role := inferRole(p.Timeline)
		if r, ok := curated[p.ParticipantID]; ok {
			role = r
		}
		if role != "" {
			roles[p.ParticipantID] = role
		}
	}

	// Detect duplicate roles within a team
	type teamRole struct {
		teamID int
		role   game.Role
	}
	seen := make(map[teamRole]int) // first participant holding the slot
	dropped := make(map[int]bool)
	for _, p := range match.Participants {
		role, ok := roles[p.ParticipantID]
		if !ok {
			continue
		}
		key := teamRole{p.TeamID, role}
		if first, ok := seen[key]; ok {
			dropped[first] = true
			dropped[p.ParticipantID] = true
		} else {
			seen[key] = p.ParticipantID
		}
	}
	for id := range dropped {
		delete(roles, id)
	}

	return roles
}

// roleOpponents pairs each participant with the opposing player sharing its
// role. Participants without a role, or whose role has no unambiguous
// counterpart on the other team, are absent from the map.
func roleOpponents(match *riot.Match, roles map[int]game.Role) map[int]int {
	opponents := make(map[int]int)
	for _, a := range match.Participants {
		roleA, ok := roles[a.ParticipantID]
		if !ok {
			continue
		}
		for _, b := range match.Participants {
			if b.TeamID == a.TeamID {
				continue
			}
			if roleB, ok := roles[b.ParticipantID]; ok && roleB == roleA {
				opponents[a.ParticipantID] = b.ParticipantID
				break
			}
		}
	}
	return opponents
}
