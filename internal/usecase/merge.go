package usecase

import (
	"fmt"

	"tourdesk/internal/domain/entities"
)

// MergeSchedule rebuilds every day's time slots from scratch: the operator
// template text for that day and slot (synthesized as zero-price
// operator-origin items) followed by the persisted agent-origin items linked
// to the day.
//
// Because slots are always rebuilt in full instead of appended to, repeated
// merges are idempotent. Operator items filtered out in removed are a
// session-local hide with no backing delete; the template stays untouched.
//
// Agent items are joined to days by their persisted day id when it is one of
// dayRecordIDs, falling back to the sequence position recorded at creation
// for items added before the first save. Templates are joined to days by
// (day number, city id), never by slice position.
func MergeSchedule(days []entities.CanonicalDay, templates []entities.DayTemplate, agentItems []entities.ScheduleItem, dayRecordIDs []string, removed []string) []entities.CanonicalDay {
	type tplKey struct {
		dayNumber int
		cityID    string
	}
	tpl := make(map[tplKey]entities.DayTemplate, len(templates))
	for _, t := range templates {
		tpl[tplKey{t.DayNumber, t.CityID}] = t
	}

	dayPos := make(map[string]int, len(dayRecordIDs))
	for i, id := range dayRecordIDs {
		dayPos[id] = i
	}

	removedSet := make(map[string]struct{}, len(removed))
	for _, id := range removed {
		removedSet[id] = struct{}{}
	}

	agentByPos := make(map[int][]entities.ScheduleItem)
	for _, it := range agentItems {
		pos := it.DayIndex
		if it.DayID != "" {
			if p, ok := dayPos[it.DayID]; ok {
				pos = p
			}
		}
		agentByPos[pos] = append(agentByPos[pos], it)
	}

	merged := make([]entities.CanonicalDay, len(days))
	copy(merged, days)
	for i := range merged {
		t := tpl[tplKey{merged[i].DayNumber, merged[i].CityID}]
		for _, slot := range entities.SlotNames {
			*merged[i].Slot(slot) = buildSlot(merged[i].DayNumber, slot, t.Slot(slot), agentByPos[i], removedSet)
		}
	}
	return merged
}

func buildSlot(dayNumber int, slot entities.SlotName, t entities.SlotTemplate, agent []entities.ScheduleItem, removed map[string]struct{}) entities.TimeSlot {
	out := entities.TimeSlot{}
	for idx, title := range t.Activities {
		it := operatorItem(dayNumber, slot, entities.ItemKindActivity, idx, title)
		if _, hidden := removed[it.ID]; !hidden {
			out.Activities = append(out.Activities, it)
		}
	}
	for idx, title := range t.Transfers {
		it := operatorItem(dayNumber, slot, entities.ItemKindTransfer, idx, title)
		if _, hidden := removed[it.ID]; !hidden {
			out.Transfers = append(out.Transfers, it)
		}
	}
	for _, it := range agent {
		if it.Slot != slot {
			continue
		}
		switch it.Kind {
		case entities.ItemKindTransfer:
			out.Transfers = append(out.Transfers, it)
		default:
			out.Activities = append(out.Activities, it)
		}
	}
	return out
}

// operatorItem synthesizes a template-derived item. IDs are deterministic so
// a session-local removal keeps hiding the same entry across merges.
func operatorItem(dayNumber int, slot entities.SlotName, kind entities.ItemKind, idx int, title string) entities.ScheduleItem {
	id := fmt.Sprintf("tpl:%d:%s:%s:%d", dayNumber, slot, kind, idx)
	return entities.ScheduleItem{
		ID:          id,
		Origin:      entities.OriginOperatorTemplate,
		Kind:        kind,
		Slot:        slot,
		TemplateRef: id,
		Title:       title,
	}
}
