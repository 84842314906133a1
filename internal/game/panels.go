package game

import (
	"fmt"
	"strconv"

	"koozle/internal/core"
)

// Panel group names used by Panels.
const (
	PanelRoom      = "Room"
	PanelCharacter = "Character"
	PanelInventory = "Inventory"
	PanelEncounter = "Encounter"
)

// Panels builds the status panels shown next to the grid.
func (s *Session) Panels() core.ParameterSnapshot {
	st := s.state
	room := st.CurrentRoom()
	stats := st.Stats()

	roomGroup := core.ParameterGroup{
		Name: PanelRoom,
		Params: []core.Parameter{
			text("room.id", "Room", room.ID),
			text("room.phase", "Phase", string(room.Phase)),
			intParam("room.steps", "Steps", room.StepCount),
			intParam("room.changes", "Changes left", room.ChangesLeft),
			text("room.rule", "Rule", room.Rule().String()),
		},
	}
	switch st.Phase {
	case GameDead:
		roomGroup.Summary = "You died."
	case GameVictory:
		roomGroup.Summary = "Victory!"
	default:
		roomGroup.Summary = phaseHint(room.Phase)
	}

	charGroup := core.ParameterGroup{
		Name: PanelCharacter,
		Params: []core.Parameter{
			intParam("char.level", "Level", stats.Level),
			text("char.hp", "HP", fmt.Sprintf("%d/%d", stats.HP, stats.MaxHP)),
			text("char.xp", "XP", fmt.Sprintf("%d/%d", stats.XP, stats.XPToNext)),
			{Key: "char.xpmult", Label: "XP mult", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(st.Inventory.XPMultiplier(), 'f', 2, 64)},
		},
	}

	invGroup := core.ParameterGroup{Name: PanelInventory}
	for _, e := range st.Inventory {
		invGroup.Params = append(invGroup.Params, core.Parameter{
			Key:         "inv." + e.Item.ID,
			Label:       e.Item.Name,
			Type:        core.ParamTypeInt,
			Value:       strconv.Itoa(e.Count),
			Description: e.Item.Description,
		})
	}
	if len(invGroup.Params) == 0 {
		invGroup.Summary = "empty"
	}

	encGroup := core.ParameterGroup{Name: PanelEncounter}
	if enc := st.LastEncounter; enc != nil {
		encGroup.Params = append(encGroup.Params,
			intParam("enc.damage", "Damage", enc.Damage),
			intParam("enc.xp", "XP", enc.XP),
		)
		for _, mc := range enc.Tally() {
			encGroup.Params = append(encGroup.Params, intParam("enc.mob."+mc.Mob.ID, mc.Mob.Name, mc.Count))
		}
		if st.LastDrop != nil {
			encGroup.Summary = "Found " + st.LastDrop.Name
		}
	} else {
		encGroup.Summary = "no encounter yet"
	}

	return core.ParameterSnapshot{Groups: []core.ParameterGroup{roomGroup, charGroup, invGroup, encGroup}}
}

func phaseHint(p Phase) string {
	switch p {
	case PhaseEdit:
		return "Toggle cells, then start life."
	case PhaseAlive:
		return "Life is running."
	default:
		return "Room complete. Move on."
	}
}

func text(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}
