package transmute

import (
	"testing"

	"match-normalizer/internal/game"
	"match-normalizer/internal/riot"
)

func TestInferRole(t *testing.T) {
	tests := []struct {
		name string
		lane string
		role string
		want game.Role
	}{
		{"top laner", "TOP", "SOLO", game.RoleTop},
		{"jungler", "JUNGLE", "NONE", game.RoleJgl},
		{"mid laner", "MIDDLE", "SOLO", game.RoleMid},
		{"bot carry", "BOTTOM", "DUO_CARRY", game.RoleBot},
		{"support", "BOTTOM", "DUO_SUPPORT", game.RoleSup},
		{"ambiguous bot duo", "BOTTOM", "DUO", ""},
		{"no lane signal", "NONE", "NONE", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inferRole(riot.ParticipantTimeline{Lane: tt.lane, Role: tt.role})
			if got != tt.want {
				t.Errorf("inferRole(%s, %s) = %q, want %q", tt.lane, tt.role, got, tt.want)
			}
		})
	}
}

func TestInferRoles_FullComposition(t *testing.T) {
	match := testMatch()
	roles := inferRoles(match, nil)

	want := map[int]game.Role{
		1: game.RoleTop, 2: game.RoleJgl, 3: game.RoleMid, 4: game.RoleBot, 5: game.RoleSup,
		6: game.RoleTop, 7: game.RoleJgl, 8: game.RoleMid, 9: game.RoleBot, 10: game.RoleSup,
	}
	if len(roles) != len(want) {
		t.Fatalf("expected %d role assignments, got %d", len(want), len(roles))
	}
	for id, role := range want {
		if roles[id] != role {
			t.Errorf("participant %d role = %q, want %q", id, roles[id], role)
		}
	}
}

func TestInferRoles_DuplicatesDropped(t *testing.T) {
	match := testMatch()
	// Make participants 1 and 3 both look like mid laners
	match.Participants[0].Timeline = riot.ParticipantTimeline{Lane: "MIDDLE", Role: "SOLO"}

	roles := inferRoles(match, nil)

	if _, ok := roles[1]; ok {
		t.Error("participant 1 should have been dropped (duplicate MID)")
	}
	if _, ok := roles[3]; ok {
		t.Error("participant 3 should have been dropped (duplicate MID)")
	}
	// The other team is unaffected
	if roles[8] != game.RoleMid {
		t.Errorf("participant 8 role = %q, want MID", roles[8])
	}
}

func TestInferRoles_CuratedOverride(t *testing.T) {
	match := testMatch()
	curated := map[int]game.Role{1: game.RoleJgl, 2: game.RoleTop}

	roles := inferRoles(match, curated)

	if roles[1] != game.RoleJgl {
		t.Errorf("participant 1 role = %q, want curated JGL", roles[1])
	}
	if roles[2] != game.RoleTop {
		t.Errorf("participant 2 role = %q, want curated TOP", roles[2])
	}
}

func TestRoleOpponents(t *testing.T) {
	match := testMatch()
	roles := inferRoles(match, nil)
	opponents := roleOpponents(match, roles)

	want := map[int]int{1: 6, 2: 7, 3: 8, 4: 9, 5: 10, 6: 1, 7: 2, 8: 3, 9: 4, 10: 5}
	for id, opp := range want {
		if opponents[id] != opp {
			t.Errorf("opponent of %d = %d, want %d", id, opponents[id], opp)
		}
	}
}

func TestRoleOpponents_AmbiguousPairOmitted(t *testing.T) {
	match := testMatch()
	// Duplicate mid role on the blue team
	match.Participants[0].Timeline = riot.ParticipantTimeline{Lane: "MIDDLE", Role: "SOLO"}

	roles := inferRoles(match, nil)
	opponents := roleOpponents(match, roles)

	if _, ok := opponents[1]; ok {
		t.Error("participant 1 should have no opponent")
	}
	if _, ok := opponents[3]; ok {
		t.Error("participant 3 should have no opponent")
	}
	// Red mid has no counterpart left either
	if _, ok := opponents[8]; ok {
		t.Error("participant 8 should have no opponent")
	}
	// Other lanes still pair up
	if opponents[4] != 9 {
		t.Errorf("opponent of 4 = %d, want 9", opponents[4])
	}
}
