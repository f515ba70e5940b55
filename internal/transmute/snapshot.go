package transmute

import (
	"sort"

	"match-normalizer/internal/game"
	"match-normalizer/internal/riot"
)

// buildSnapshots turns the periodic participant frames into per-player
// snapshots. Diff fields compare against the same-role opponent in the same
// frame and stay nil when that opponent is ambiguous or missing. The terminal
// frame reflects the game end and carries no position.
func buildSnapshots(timeline *riot.Timeline, players map[int]*game.Player, opponents map[int]int) {
	for i, frame := range timeline.Frames {
		lastFrame := i == len(timeline.Frames)-1

		// Map iteration order is random; keep output deterministic
		frames := make([]riot.ParticipantFrame, 0, len(frame.ParticipantFrames))
		for _, pf := range frame.ParticipantFrames {
			frames = append(frames, pf)
		}
		sort.Slice(frames, func(a, b int) bool { return frames[a].ParticipantID < frames[b].ParticipantID })

		for _, pf := range frames {
			player, ok := players[pf.ParticipantID]
			if !ok {
				continue
			}

			snapshot := game.Snapshot{
				Timestamp:      eventSeconds(frame.Timestamp),
				CurrentGold:    pf.CurrentGold,
				TotalGold:      pf.TotalGold,
				XP:             pf.XP,
				Level:          pf.Level,
				CS:             pf.MinionsKilled + pf.JungleMinionsKilled,
				MonstersKilled: pf.JungleMinionsKilled,
			}
			if !lastFrame {
				snapshot.Position = convertPosition(pf.Position)
			}

			if opponentID, ok := opponents[pf.ParticipantID]; ok {
				if of, ok := findParticipantFrame(frame, opponentID); ok {
					snapshot.TotalGoldDiff = intPtr(pf.TotalGold - of.TotalGold)
					snapshot.XPDiff = intPtr(pf.XP - of.XP)
					snapshot.CSDiff = intPtr(pf.MinionsKilled + pf.JungleMinionsKilled - of.MinionsKilled - of.JungleMinionsKilled)
					snapshot.MonstersKilledDiff = intPtr(pf.JungleMinionsKilled - of.JungleMinionsKilled)
				}
			}

			player.Snapshots = append(player.Snapshots, snapshot)
		}
	}
}

// findParticipantFrame locates a participant's frame within a timeline tick.
// The raw map is keyed by the participant id as a string, but the key is not
// trusted; the embedded id is what identifies the frame.
func findParticipantFrame(frame riot.Frame, participantID int) (riot.ParticipantFrame, bool) {
	for _, pf := range frame.ParticipantFrames {
		if pf.ParticipantID == participantID {
			return pf, true
		}
	}
	return riot.ParticipantFrame{}, false
}

func intPtr(v int) *int {
	return &v
}
