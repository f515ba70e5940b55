package transmute

import (
	"errors"
	"testing"

	"match-normalizer/internal/game"
	"match-normalizer/internal/riot"
)

func TestResolveWinner(t *testing.T) {
	tests := []struct {
		name  string
		teams []riot.TeamStats
		want  game.Side
	}{
		{
			"blue first and winning",
			[]riot.TeamStats{{TeamID: 100, Win: "Win"}, {TeamID: 200, Win: "Fail"}},
			game.SideBlue,
		},
		{
			"blue first and losing",
			[]riot.TeamStats{{TeamID: 100, Win: "Fail"}, {TeamID: 200, Win: "Win"}},
			game.SideRed,
		},
		{
			"red first and winning",
			[]riot.TeamStats{{TeamID: 200, Win: "Win"}, {TeamID: 100, Win: "Fail"}},
			game.SideRed,
		},
		{
			"red first and losing",
			[]riot.TeamStats{{TeamID: 200, Win: "Fail"}, {TeamID: 100, Win: "Win"}},
			game.SideBlue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveWinner(tt.teams)
			if err != nil {
				t.Fatalf("resolveWinner failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveWinner = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveWinner_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		teams []riot.TeamStats
		want  error
	}{
		{
			"unrecognized team id",
			[]riot.TeamStats{{TeamID: 300, Win: "Win"}, {TeamID: 200, Win: "Fail"}},
			ErrMalformedSourceData,
		},
		{
			"both teams report a win",
			[]riot.TeamStats{{TeamID: 100, Win: "Win"}, {TeamID: 200, Win: "Win"}},
			ErrMalformedSourceData,
		},
		{
			"neither team reports a win",
			[]riot.TeamStats{{TeamID: 100, Win: "Fail"}, {TeamID: 200, Win: "Fail"}},
			ErrMalformedSourceData,
		},
		{
			"single team frame",
			[]riot.TeamStats{{TeamID: 100, Win: "Win"}},
			ErrIncompleteGame,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveWinner(tt.teams)
			if !errors.Is(err, tt.want) {
				t.Errorf("resolveWinner error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTeamSide(t *testing.T) {
	if side, err := teamSide(100); err != nil || side != game.SideBlue {
		t.Errorf("teamSide(100) = %v, %v, want BLUE", side, err)
	}
	if side, err := teamSide(200); err != nil || side != game.SideRed {
		t.Errorf("teamSide(200) = %v, %v, want RED", side, err)
	}
	if _, err := teamSide(0); !errors.Is(err, ErrMalformedSourceData) {
		t.Errorf("teamSide(0) error = %v, want ErrMalformedSourceData", err)
	}
}
