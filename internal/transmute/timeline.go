package transmute

import (
	"fmt"
	"sort"

	"match-normalizer/internal/game"
	"match-normalizer/internal/riot"
)

// Raw -> canonical enum tables. Unknown values abort the transform.
var (
	monsterTypes = map[string]game.MonsterType{
		"DRAGON":       game.MonsterDragon,
		"BARON_NASHOR": game.MonsterBaron,
		"RIFTHERALD":   game.MonsterRiftHerald,
	}

	dragonSubTypes = map[string]game.DragonSubType{
		"AIR_DRAGON":   game.DragonCloud,
		"FIRE_DRAGON":  game.DragonInfernal,
		"EARTH_DRAGON": game.DragonMountain,
		"WATER_DRAGON": game.DragonOcean,
		"ELDER_DRAGON": game.DragonElder,
	}

	buildingTypes = map[string]game.BuildingType{
		"TOWER_BUILDING":     game.BuildingTurret,
		"INHIBITOR_BUILDING": game.BuildingInhibitor,
	}

	lanes = map[string]game.Lane{
		"TOP_LANE": game.LaneTop,
		"MID_LANE": game.LaneMid,
		"BOT_LANE": game.LaneBot,
	}

	towerLocations = map[string]game.TowerLocation{
		"OUTER_TURRET": game.TowerOuter,
		"INNER_TURRET": game.TowerInner,
		"BASE_TURRET":  game.TowerInhibitor,
		"NEXUS_TURRET": game.TowerNexus,
	}

	itemEventTypes = map[string]game.ItemEventType{
		"ITEM_PURCHASED": game.ItemPurchased,
		"ITEM_SOLD":      game.ItemSold,
		"ITEM_UNDO":      game.ItemUndo,
		"ITEM_DESTROYED": game.ItemDestroyed,
	}

	wardTypes = map[string]game.WardType{
		"YELLOW_TRINKET":         game.WardYellowTrinket,
		"CONTROL_WARD":           game.WardControl,
		"SIGHT_WARD":             game.WardSight,
		"YELLOW_TRINKET_UPGRADE": game.WardYellowTrinketUpgrade,
		"BLUE_TRINKET":           game.WardBlueTrinket,
		"TEEMO_MUSHROOM":         game.WardTeemoMushroom,
		"VISION_WARD":            game.WardVision,
		"UNDEFINED":              game.WardUndefined,
	}

	skillLevelUpTypes = map[string]game.SkillLevelUpType{
		"NORMAL": game.SkillLevelUpNormal,
		"EVOLVE": game.SkillLevelUpEvolve,
	}
)

// eventSeconds converts a raw ms timestamp to seconds from game start
func eventSeconds(ms int64) float64 {
	return float64(ms) / 1000
}

// convertPosition copies a raw position onto the canonical type
func convertPosition(p *riot.FramePosition) *game.Position {
	if p == nil {
		return nil
	}
	return &game.Position{X: p.X, Y: p.Y}
}

// reconstructEvents walks the raw timeline and distributes typed events onto
// the right team or player. Emitted lists end up ordered by timestamp; frames
// arrive in order but a stable sort guarantees it regardless.
func reconstructEvents(match *riot.Match, timeline *riot.Timeline, teams map[game.Side]*game.Team, players map[int]*game.Player, names NameSource) error {
	for _, frame := range timeline.Frames {
		for _, ev := range frame.Events {
			if err := dispatchEvent(match, ev, teams, players, names); err != nil {
				return err
			}
		}
	}

	for _, team := range teams {
		sortByTimestamp(team.Kills, func(k game.Kill) float64 { return k.Timestamp })
		sortByTimestamp(team.MonstersKills, func(m game.MonsterKill) float64 { return m.Timestamp })
		sortByTimestamp(team.BuildingsKills, func(b game.BuildingKill) float64 { return b.Timestamp })
	}
	for _, p := range players {
		sortByTimestamp(p.ItemsEvents, func(e game.ItemEvent) float64 { return e.Timestamp })
		sortByTimestamp(p.WardsEvents, func(e game.WardEvent) float64 { return e.Timestamp })
		sortByTimestamp(p.SkillsLevelUpEvents, func(e game.SkillLevelUpEvent) float64 { return e.Timestamp })
	}

	return nil
}

// sortByTimestamp sorts events ascending, keeping input order on ties
func sortByTimestamp[T any](events []T, timestamp func(T) float64) {
	sort.SliceStable(events, func(i, j int) bool {
		return timestamp(events[i]) < timestamp(events[j])
	})
}

func dispatchEvent(match *riot.Match, ev riot.TimelineEvent, teams map[game.Side]*game.Team, players map[int]*game.Player, names NameSource) error {
	switch ev.Type {
	case "CHAMPION_KILL":
		return addKill(match, ev, teams)
	case "ELITE_MONSTER_KILL":
		return addMonsterKill(match, ev, teams)
	case "BUILDING_KILL":
		return addBuildingKill(ev, teams)
	case "ITEM_PURCHASED", "ITEM_SOLD", "ITEM_UNDO", "ITEM_DESTROYED":
		return addItemEvent(ev, players, names)
	case "WARD_PLACED", "WARD_KILL":
		return addWardEvent(ev, players)
	case "SKILL_LEVEL_UP":
		return addSkillLevelUp(ev, players)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, ev.Type)
	}
}

// addKill attaches a kill to the team opposing the victim. A killer id of 0
// marks an execution (no champion source) and is kept as an absent killer.
func addKill(match *riot.Match, ev riot.TimelineEvent, teams map[game.Side]*game.Team) error {
	victimSide, err := participantSide(match, ev.VictimID)
	if err != nil {
		return err
	}

	kill := game.Kill{
		Event: game.Event{
			Timestamp: eventSeconds(ev.Timestamp),
			Position:  convertPosition(ev.Position),
		},
		AssistsIDs: append([]int{}, ev.AssistingParticipantIDs...),
		VictimID:   ev.VictimID,
	}
	if ev.KillerID != 0 {
		killerID := ev.KillerID
		kill.KillerID = &killerID
	}

	team := teams[victimSide.Opponent()]
	team.Kills = append(team.Kills, kill)
	return nil
}

// addMonsterKill attaches an epic monster take to the killer's team
func addMonsterKill(match *riot.Match, ev riot.TimelineEvent, teams map[game.Side]*game.Team) error {
	side, err := participantSide(match, ev.KillerID)
	if err != nil {
		return err
	}

	monsterType, ok := monsterTypes[ev.MonsterType]
	if !ok {
		return fmt.Errorf("%w: monster type %q", ErrUnknownEventType, ev.MonsterType)
	}

	kill := game.MonsterKill{
		Event: game.Event{
			Timestamp: eventSeconds(ev.Timestamp),
			Position:  convertPosition(ev.Position),
		},
		KillerID: ev.KillerID,
		Type:     monsterType,
	}
	if monsterType == game.MonsterDragon && ev.MonsterSubType != "" {
		subType, ok := dragonSubTypes[ev.MonsterSubType]
		if !ok {
			return fmt.Errorf("%w: dragon sub type %q", ErrUnknownEventType, ev.MonsterSubType)
		}
		kill.SubType = subType
	}

	team := teams[side]
	team.MonstersKills = append(team.MonstersKills, kill)
	return nil
}

// addBuildingKill attaches a building destruction to the team that destroyed
// it. The raw event's team id is the team the building belonged to, so the
// event goes to the opposite side while Side records the owner.
func addBuildingKill(ev riot.TimelineEvent, teams map[game.Side]*game.Team) error {
	ownerSide, err := teamSide(ev.TeamID)
	if err != nil {
		return err
	}

	buildingType, ok := buildingTypes[ev.BuildingType]
	if !ok {
		return fmt.Errorf("%w: building type %q", ErrUnknownEventType, ev.BuildingType)
	}
	lane, ok := lanes[ev.LaneType]
	if !ok {
		return fmt.Errorf("%w: lane type %q", ErrUnknownEventType, ev.LaneType)
	}

	kill := game.BuildingKill{
		Event: game.Event{Timestamp: eventSeconds(ev.Timestamp)},
		Type:  buildingType,
		Lane:  lane,
		Side:  ownerSide,
	}
	if ev.KillerID != 0 {
		killerID := ev.KillerID
		kill.KillerID = &killerID
	}
	if buildingType == game.BuildingTurret {
		location, ok := towerLocations[ev.TowerType]
		if !ok {
			return fmt.Errorf("%w: tower type %q", ErrUnknownEventType, ev.TowerType)
		}
		kill.TowerLocation = location
	}

	team := teams[ownerSide.Opponent()]
	team.BuildingsKills = append(team.BuildingsKills, kill)
	return nil
}

// addItemEvent attaches an item transaction to its player. For an UNDO the
// id is the item resulting from the undo and UndoID the item undone.
func addItemEvent(ev riot.TimelineEvent, players map[int]*game.Player, names NameSource) error {
	player, ok := players[ev.ParticipantID]
	if !ok {
		return fmt.Errorf("%w: item event for unknown participant %d", ErrMalformedSourceData, ev.ParticipantID)
	}

	eventType := itemEventTypes[ev.Type] // dispatchEvent already filtered the type

	item := game.ItemEvent{
		Event: game.Event{Timestamp: eventSeconds(ev.Timestamp)},
		Type:  eventType,
		ID:    ev.ItemID,
	}
	if eventType == game.ItemUndo {
		item.ID = ev.AfterID
		item.UndoID = ev.BeforeID
	}
	if names != nil {
		item.Name = nameOrEmpty(names.Item, item.ID)
	}

	player.ItemsEvents = append(player.ItemsEvents, item)
	return nil
}

// addWardEvent attaches a ward placement or kill to its player. Placements
// are scoped to the creator, kills to the killer.
func addWardEvent(ev riot.TimelineEvent, players map[int]*game.Player) error {
	var eventType game.WardEventType
	var participantID int
	switch ev.Type {
	case "WARD_PLACED":
		eventType = game.WardPlaced
		participantID = ev.CreatorID
	case "WARD_KILL":
		eventType = game.WardKilled
		participantID = ev.KillerID
	}

	wardType, ok := wardTypes[ev.WardType]
	if !ok {
		return fmt.Errorf("%w: ward type %q", ErrUnknownEventType, ev.WardType)
	}

	// Wards placed by non-champion sources (id 0) have no player to attach to
	player, ok := players[participantID]
	if !ok {
		if participantID == 0 {
			return nil
		}
		return fmt.Errorf("%w: ward event for unknown participant %d", ErrMalformedSourceData, participantID)
	}

	player.WardsEvents = append(player.WardsEvents, game.WardEvent{
		Event:    game.Event{Timestamp: eventSeconds(ev.Timestamp)},
		Type:     eventType,
		WardType: wardType,
	})
	return nil
}

// addSkillLevelUp attaches a skill point spend to its player. Slot is 1-4.
func addSkillLevelUp(ev riot.TimelineEvent, players map[int]*game.Player) error {
	player, ok := players[ev.ParticipantID]
	if !ok {
		return fmt.Errorf("%w: skill event for unknown participant %d", ErrMalformedSourceData, ev.ParticipantID)
	}

	levelUpType, ok := skillLevelUpTypes[ev.LevelUpType]
	if !ok {
		return fmt.Errorf("%w: level up type %q", ErrUnknownEventType, ev.LevelUpType)
	}

	player.SkillsLevelUpEvents = append(player.SkillsLevelUpEvents, game.SkillLevelUpEvent{
		Event: game.Event{Timestamp: eventSeconds(ev.Timestamp)},
		Type:  levelUpType,
		Slot:  ev.SkillSlot,
	})
	return nil
}
