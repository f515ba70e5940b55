package transmute

import (
	"fmt"

	"match-normalizer/internal/riot"
)

// testLanes mirrors a standard 5-role composition, in participant order
var testLanes = []struct {
	lane string
	role string
}{
	{"TOP", "SOLO"},
	{"JUNGLE", "NONE"},
	{"MIDDLE", "SOLO"},
	{"BOTTOM", "DUO_CARRY"},
	{"BOTTOM", "DUO_SUPPORT"},
}

// testMatch builds a full 5v5 match record: participants 1-5 on the blue
// team (winners), 6-10 on the red team.
func testMatch() *riot.Match {
	match := &riot.Match{
		GameID:       4676184826,
		PlatformID:   "EUW1",
		GameCreation: 1612810354000, // 2021-02-08T18:52:34Z
		GameDuration: 1956,
		GameVersion:  "11.3.357.1565",
		QueueID:      420,
		Teams: []riot.TeamStats{
			{
				TeamID: 100, Win: "Win",
				FirstTower: true, FirstDragon: true,
				TowerKills: 9, InhibitorKills: 2, DragonKills: 3, BaronKills: 1, RiftHeraldKills: 1,
				FirstBaron: true, FirstRiftHerald: true, FirstInhibitor: true,
				Bans: []riot.TeamBan{
					{ChampionID: 238, PickTurn: 1},
					{ChampionID: 555, PickTurn: 3},
					{ChampionID: 120, PickTurn: 5},
				},
			},
			{
				TeamID: 200, Win: "Fail",
				TowerKills: 3, DragonKills: 1,
				Bans: []riot.TeamBan{
					{ChampionID: 64, PickTurn: 2},
					{ChampionID: 517, PickTurn: 4},
					{ChampionID: 350, PickTurn: 6},
				},
			},
		},
	}

	for i := 1; i <= 10; i++ {
		teamID := 100
		if i > 5 {
			teamID = 200
		}
		slot := testLanes[(i-1)%5]

		match.Participants = append(match.Participants, riot.Participant{
			ParticipantID: i,
			TeamID:        teamID,
			ChampionID:    i * 10,
			Spell1ID:      4,
			Spell2ID:      14,
			Timeline:      riot.ParticipantTimeline{Lane: slot.lane, Role: slot.role},
			Stats: riot.ParticipantStats{
				Win:   teamID == 100,
				Item0: 3078, Item1: 3047, Item6: 3340,
				Kills: i, Deaths: 11 - i, Assists: i * 2,
				GoldEarned: 10000 + i*500, GoldSpent: 9000 + i*500,
				TotalMinionsKilled: 150 + i, NeutralMinionsKilled: 20 + i,
				NeutralMinionsKilledTeamJungle: 15, NeutralMinionsKilledEnemyJungle: 5,
				ChampLevel:  15,
				VisionScore: 30 + i, WardsPlaced: 10, WardsKilled: 3, VisionWardsBoughtInGame: 4,
				Perk0: 8005, Perk0Var1: 1000, Perk0Var2: 500, Perk0Var3: 0,
				Perk1: 9111, Perk1Var1: 200,
				Perk2: 9104, Perk3: 8014,
				Perk4: 8304, Perk5: 8345,
				PerkPrimaryStyle: 8000, PerkSubStyle: 8300,
				StatPerk0:        5008, StatPerk1: 5008, StatPerk2: 5002,
			},
		})

		match.ParticipantIdentities = append(match.ParticipantIdentities, riot.ParticipantIdentity{
			ParticipantID: i,
			Player: &riot.PlayerIdentity{
				AccountID:    fmt.Sprintf("account-%d", i),
				PlatformID:   "EUW1",
				SummonerName: fmt.Sprintf("Player%d", i),
				ProfileIcon:  500 + i,
			},
		})
	}

	return match
}

// testTimeline builds a small timeline: two full frames plus a terminal one,
// with one event of every supported kind.
func testTimeline() *riot.Timeline {
	frameAt := func(ms int64, gold int) map[string]riot.ParticipantFrame {
		frames := make(map[string]riot.ParticipantFrame, 10)
		for i := 1; i <= 10; i++ {
			frames[fmt.Sprintf("%d", i)] = riot.ParticipantFrame{
				ParticipantID: i,
				Position:      &riot.FramePosition{X: 1000 * i, Y: 500 * i},
				CurrentGold:   gold + i*10,
				TotalGold:     gold + i*100,
				Level:         1 + int(ms/60000),
				XP:            int(ms/100) + i*50,
				MinionsKilled: int(ms/30000) * 7,
				JungleMinionsKilled: func() int {
					if i == 2 || i == 7 { // junglers
						return int(ms / 15000)
					}
					return 0
				}(),
			}
		}
		return frames
	}

	return &riot.Timeline{
		FrameInterval: 60000,
		Frames: []riot.Frame{
			{
				Timestamp:         0,
				ParticipantFrames: frameAt(0, 500),
			},
			{
				Timestamp:         60000,
				ParticipantFrames: frameAt(60000, 1500),
				Events: []riot.TimelineEvent{
					{
						Type: "ITEM_PURCHASED", Timestamp: 15000,
						ParticipantID: 1, ItemID: 1055,
					},
					{
						Type: "ITEM_UNDO", Timestamp: 16000,
						ParticipantID: 1, AfterID: 1054, BeforeID: 1055,
					},
					{
						Type: "WARD_PLACED", Timestamp: 20000,
						CreatorID: 5, WardType: "YELLOW_TRINKET",
					},
					{
						Type: "SKILL_LEVEL_UP", Timestamp: 2000,
						ParticipantID: 3, SkillSlot: 1, LevelUpType: "NORMAL",
					},
					{
						Type: "CHAMPION_KILL", Timestamp: 45000,
						KillerID: 3, VictimID: 8, AssistingParticipantIDs: []int{2, 4},
						Position: &riot.FramePosition{X: 7000, Y: 7000},
					},
				},
			},
			{
				Timestamp:         120000,
				ParticipantFrames: frameAt(120000, 3000),
				Events: []riot.TimelineEvent{
					{
						Type: "ELITE_MONSTER_KILL", Timestamp: 95000,
						KillerID: 2, MonsterType: "DRAGON", MonsterSubType: "AIR_DRAGON",
						Position: &riot.FramePosition{X: 9866, Y: 4414},
					},
					{
						Type: "BUILDING_KILL", Timestamp: 110000,
						KillerID: 4, TeamID: 200,
						BuildingType: "TOWER_BUILDING", LaneType: "BOT_LANE", TowerType: "OUTER_TURRET",
					},
					{
						Type: "WARD_KILL", Timestamp: 100000,
						KillerID: 4, WardType: "CONTROL_WARD",
					},
					{
						Type: "ITEM_SOLD", Timestamp: 105000,
						ParticipantID: 6, ItemID: 1083,
					},
					{
						Type: "ITEM_DESTROYED", Timestamp: 106000,
						ParticipantID: 6, ItemID: 2003,
					},
					{
						Type: "CHAMPION_KILL", Timestamp: 118000,
						KillerID: 0, VictimID: 1, // execution
						Position: &riot.FramePosition{X: 400, Y: 400},
					},
				},
			},
		},
	}
}
