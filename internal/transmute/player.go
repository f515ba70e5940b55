package transmute

import (
	"match-normalizer/internal/game"
	"match-normalizer/internal/riot"
)

// buildPlayer constructs a canonical player from a participant record and its
// out-of-band identity. Event lists and snapshots are attached later from the
// timeline, when one is supplied.
func buildPlayer(p riot.Participant, identity *riot.PlayerIdentity, names NameSource) *game.Player {
	player := &game.Player{
		ID:                p.ParticipantID,
		ChampionID:        p.ChampionID,
		UniqueIdentifiers: playerIdentifiers(identity),

		PrimaryRuneTreeID:   p.Stats.PerkPrimaryStyle,
		SecondaryRuneTreeID: p.Stats.PerkSubStyle,

		Runes:          buildRunes(p.Stats),
		SummonerSpells: buildSummonerSpells(p),
		EndOfGameStats: buildPlayerStats(p.Stats),

		Snapshots:           []game.Snapshot{},
		ItemsEvents:         []game.ItemEvent{},
		WardsEvents:         []game.WardEvent{},
		SkillsLevelUpEvents: []game.SkillLevelUpEvent{},
	}

	if identity != nil {
		player.InGameName = identity.SummonerName
		player.ProfileIconID = identity.ProfileIcon
	}

	if names != nil {
		player.ChampionName = nameOrEmpty(names.Champion, p.ChampionID)
		player.PrimaryRuneTreeName = nameOrEmpty(names.RuneTree, p.Stats.PerkPrimaryStyle)
		player.SecondaryRuneTreeName = nameOrEmpty(names.RuneTree, p.Stats.PerkSubStyle)
		for i := range player.Runes {
			player.Runes[i].Name = nameOrEmpty(names.Rune, player.Runes[i].ID)
		}
		for i := range player.SummonerSpells {
			player.SummonerSpells[i].Name = nameOrEmpty(names.SummonerSpell, player.SummonerSpells[i].ID)
		}
		for i := range player.EndOfGameStats.Items {
			player.EndOfGameStats.Items[i].Name = nameOrEmpty(names.Item, player.EndOfGameStats.Items[i].ID)
		}
	}

	return player
}

// buildRunes flattens the perk fields into the 9-slot rune list: slots 0-5
// are the tree perks with their stat vars, slots 6-8 the stat shards with no
// stats.
func buildRunes(s riot.ParticipantStats) []game.Rune {
	runes := []game.Rune{
		{Slot: 0, ID: s.Perk0, Stats: []int{s.Perk0Var1, s.Perk0Var2, s.Perk0Var3}},
		{Slot: 1, ID: s.Perk1, Stats: []int{s.Perk1Var1, s.Perk1Var2, s.Perk1Var3}},
		{Slot: 2, ID: s.Perk2, Stats: []int{s.Perk2Var1, s.Perk2Var2, s.Perk2Var3}},
		{Slot: 3, ID: s.Perk3, Stats: []int{s.Perk3Var1, s.Perk3Var2, s.Perk3Var3}},
		{Slot: 4, ID: s.Perk4, Stats: []int{s.Perk4Var1, s.Perk4Var2, s.Perk4Var3}},
		{Slot: 5, ID: s.Perk5, Stats: []int{s.Perk5Var1, s.Perk5Var2, s.Perk5Var3}},
		{Slot: 6, ID: s.StatPerk0, Stats: []int{}},
		{Slot: 7, ID: s.StatPerk1, Stats: []int{}},
		{Slot: 8, ID: s.StatPerk2, Stats: []int{}},
	}
	return runes
}

// buildSummonerSpells maps the two spell id fields onto slots 0 and 1
func buildSummonerSpells(p riot.Participant) []game.SummonerSpell {
	return []game.SummonerSpell{
		{Slot: 0, ID: p.Spell1ID},
		{Slot: 1, ID: p.Spell2ID},
	}
}

// buildItems collects the end-of-game item slots. Empty slots (id 0) are
// omitted, so the list cannot be indexed by slot.
func buildItems(s riot.ParticipantStats) []game.Item {
	ids := []int{s.Item0, s.Item1, s.Item2, s.Item3, s.Item4, s.Item5, s.Item6}
	items := []game.Item{}
	for slot, id := range ids {
		if id == 0 {
			continue
		}
		items = append(items, game.Item{Slot: slot, ID: id})
	}
	return items
}

// buildPlayerStats maps the raw stat block onto the canonical one.
// CS counts both lane minions and neutral monsters.
func buildPlayerStats(s riot.ParticipantStats) game.PlayerEndOfGameStats {
	return game.PlayerEndOfGameStats{
		Items: buildItems(s),

		FirstBlood:           s.FirstBloodKill,
		FirstBloodAssist:     s.FirstBloodAssist,
		FirstTower:           s.FirstTowerKill,
		FirstTowerAssist:     s.FirstTowerAssist,
		FirstInhibitor:       s.FirstInhibitorKill,
		FirstInhibitorAssist: s.FirstInhibitorAssist,

		Kills:   s.Kills,
		Deaths:  s.Deaths,
		Assists: s.Assists,

		Gold:  s.GoldEarned,
		CS:    s.TotalMinionsKilled + s.NeutralMinionsKilled,
		Level: s.ChampLevel,

		WardsPlaced:       s.WardsPlaced,
		WardsKilled:       s.WardsKilled,
		VisionWardsBought: s.VisionWardsBoughtInGame,
		VisionScore:       s.VisionScore,

		KillingSprees:       s.KillingSprees,
		LargestKillingSpree: s.LargestKillingSpree,
		DoubleKills:         s.DoubleKills,
		TripleKills:         s.TripleKills,
		QuadraKills:         s.QuadraKills,
		PentaKills:          s.PentaKills,

		TowerKills:                 s.TurretKills,
		InhibitorKills:             s.InhibitorKills,
		MonsterKills:               s.NeutralMinionsKilled,
		MonsterKillsInAlliedJungle: s.NeutralMinionsKilledTeamJungle,
		MonsterKillsInEnemyJungle:  s.NeutralMinionsKilledEnemyJungle,

		TotalDamageDealt:               s.TotalDamageDealt,
		PhysicalDamageDealt:            s.PhysicalDamageDealt,
		MagicDamageDealt:               s.MagicDamageDealt,
		TotalDamageDealtToChampions:    s.TotalDamageDealtToChampions,
		PhysicalDamageDealtToChampions: s.PhysicalDamageDealtToChampions,
		MagicDamageDealtToChampions:    s.MagicDamageDealtToChampions,
		DamageDealtToObjectives:        s.DamageDealtToObjectives,
		DamageDealtToTurrets:           s.DamageDealtToTurrets,

		LongestTimeSpentLiving: s.LongestTimeSpentLiving,
		LargestCriticalStrike:  s.LargestCriticalStrike,
		GoldSpent:              s.GoldSpent,
		TotalHeal:              s.TotalHeal,
		TotalUnitsHealed:       s.TotalUnitsHealed,
		DamageSelfMitigated:    s.DamageSelfMitigated,
		TotalTimeCCDealt:       s.TotalTimeCrowdControlDealt,
		TimeCCingOthers:        s.TimeCCingOthers,
	}
}
