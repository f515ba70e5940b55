package transmute

import (
	"testing"

	"match-normalizer/internal/riot"
)

func TestSnapshots_CountAndAbsolutes(t *testing.T) {
	g := transmuteFixture(t)

	player := findPlayer(t, g, 2)
	if len(player.Snapshots) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(player.Snapshots))
	}

	// Second frame, jungler: 60s tick
	s := player.Snapshots[1]
	if s.Timestamp != 60 {
		t.Errorf("timestamp = %v, want 60", s.Timestamp)
	}
	if s.TotalGold != 1700 {
		t.Errorf("totalGold = %d, want 1700", s.TotalGold)
	}
	// cs = minions + jungle minions, monstersKilled = jungle minions only
	if s.CS != 14+4 {
		t.Errorf("cs = %d, want 18", s.CS)
	}
	if s.MonstersKilled != 4 {
		t.Errorf("monstersKilled = %d, want 4", s.MonstersKilled)
	}
}

func TestSnapshots_RoleRelativeDiffs(t *testing.T) {
	g := transmuteFixture(t)

	// Jungler 2 vs jungler 7 in the second frame
	s := findPlayer(t, g, 2).Snapshots[1]
	if s.TotalGoldDiff == nil {
		t.Fatal("totalGoldDiff should be present")
	}
	// totalGold = 1500 + id*100
	if *s.TotalGoldDiff != -500 {
		t.Errorf("totalGoldDiff = %d, want -500", *s.TotalGoldDiff)
	}
	if s.XPDiff == nil || *s.XPDiff != -250 {
		t.Errorf("xpDiff = %v, want -250", s.XPDiff)
	}
	if s.MonstersKilledDiff == nil || *s.MonstersKilledDiff != 0 {
		t.Errorf("monstersKilledDiff = %v, want 0", s.MonstersKilledDiff)
	}

	// Diffs are antisymmetric
	opp := findPlayer(t, g, 7).Snapshots[1]
	if opp.TotalGoldDiff == nil || *opp.TotalGoldDiff != 500 {
		t.Errorf("opponent totalGoldDiff = %v, want 500", opp.TotalGoldDiff)
	}
}

func TestSnapshots_AmbiguousRoleOmitsDiffs(t *testing.T) {
	match := testMatch()
	// Two blue mid laners: both drop out of the role map
	match.Participants[0].Timeline = riot.ParticipantTimeline{Lane: "MIDDLE", Role: "SOLO"}

	g, err := MatchToGameWithTimeline(match, testTimeline(), Options{})
	if err != nil {
		t.Fatalf("MatchToGameWithTimeline failed: %v", err)
	}

	for _, id := range []int{1, 3, 8} {
		for i, s := range findPlayer(t, g, id).Snapshots {
			if s.TotalGoldDiff != nil || s.XPDiff != nil || s.CSDiff != nil || s.MonstersKilledDiff != nil {
				t.Errorf("participant %d snapshot %d should carry no diffs", id, i)
			}
		}
	}

	// Unambiguous lanes still get diffs
	if findPlayer(t, g, 4).Snapshots[1].TotalGoldDiff == nil {
		t.Error("participant 4 should still have diffs")
	}
}

func TestSnapshots_TerminalFrameOmitsPosition(t *testing.T) {
	g := transmuteFixture(t)

	player := findPlayer(t, g, 5)
	last := len(player.Snapshots) - 1
	for i, s := range player.Snapshots {
		if i == last {
			if s.Position != nil {
				t.Error("terminal snapshot should omit position")
			}
		} else if s.Position == nil {
			t.Errorf("snapshot %d should carry a position", i)
		}
	}
}

func TestSnapshots_MatchOnlyTransformHasNone(t *testing.T) {
	g, err := MatchToGame(testMatch(), Options{})
	if err != nil {
		t.Fatalf("MatchToGame failed: %v", err)
	}
	for _, team := range g.Teams {
		for _, player := range team.Players {
			if len(player.Snapshots) != 0 {
				t.Errorf("player %d should have no snapshots without a timeline", player.ID)
			}
		}
	}
}
