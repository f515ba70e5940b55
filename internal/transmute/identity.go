package transmute

import (
	"match-normalizer/internal/game"
	"match-normalizer/internal/riot"
)

// lookupIdentity finds the out-of-band identity record for a participant id.
// Returns nil when no record matches; that only degrades cross-source
// linking, it is never fatal.
func lookupIdentity(match *riot.Match, participantID int) *riot.PlayerIdentity {
	for _, pi := range match.ParticipantIdentities {
		if pi.ParticipantID == participantID {
			return pi.Player
		}
	}
	return nil
}

// playerIdentifiers builds the per-source identifier record for a player.
// A missing identity or an identity without a stable account id leaves the
// riotLolApi entry absent.
func playerIdentifiers(identity *riot.PlayerIdentity) game.PlayerIdentifiers {
	if identity == nil || identity.AccountID == "" {
		return game.PlayerIdentifiers{}
	}
	return game.PlayerIdentifiers{
		RiotLolAPI: &game.RiotPlayerIdentifier{
			AccountID:  identity.AccountID,
			PlatformID: identity.PlatformID,
		},
	}
}
