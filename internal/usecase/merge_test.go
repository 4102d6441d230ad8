package usecase

import (
	"reflect"
	"testing"

	"tourdesk/internal/domain/entities"
)

func mergeFixture() ([]entities.CanonicalDay, []entities.DayTemplate, []entities.ScheduleItem) {
	days := BuildDayPlan([]entities.CityStop{
		{ID: "c1", Name: "Lisbon", Nights: 1, Order: 1},
		{ID: "c2", Name: "Porto", Nights: 1, Order: 2},
	}, nil)

	templates := []entities.DayTemplate{
		{
			DayNumber: 1,
			CityID:    "c1",
			Morning:   entities.SlotTemplate{Activities: []string{"City walking tour"}},
			Evening:   entities.SlotTemplate{Transfers: []string{"Hotel pickup"}},
		},
		{
			DayNumber: 2,
			CityID:    "c2",
			Afternoon: entities.SlotTemplate{Activities: []string{"River cruise"}},
		},
	}

	agent := []entities.ScheduleItem{
		{ID: "a1", Origin: entities.OriginAgentAdded, Kind: entities.ItemKindActivity, Slot: entities.SlotMorning, DayIndex: 0, Title: "Fado dinner", Price: 60},
		{ID: "a2", Origin: entities.OriginAgentAdded, Kind: entities.ItemKindTransfer, Slot: entities.SlotAfternoon, DayID: "day-2", Title: "Private car", Price: 35},
	}
	return days, templates, agent
}

func TestMergeSchedule(t *testing.T) {
	t.Run("operator items precede agent items", func(t *testing.T) {
		days, templates, agent := mergeFixture()
		merged := MergeSchedule(days, templates, agent, []string{"day-1", "day-2"}, nil)

		morning := merged[0].Morning
		if len(morning.Activities) != 2 {
			t.Fatalf("expected 2 morning activities, got %d", len(morning.Activities))
		}
		if morning.Activities[0].Origin != entities.OriginOperatorTemplate || morning.Activities[0].Title != "City walking tour" {
			t.Fatalf("expected operator item first, got %+v", morning.Activities[0])
		}
		if morning.Activities[0].Price != 0 {
			t.Fatalf("operator items must be zero-price")
		}
		if morning.Activities[1].ID != "a1" {
			t.Fatalf("expected agent item after operator items, got %+v", morning.Activities[1])
		}
	})

	t.Run("agent items join by day foreign key", func(t *testing.T) {
		days, templates, agent := mergeFixture()
		merged := MergeSchedule(days, templates, agent, []string{"day-1", "day-2"}, nil)

		afternoon := merged[1].Afternoon
		if len(afternoon.Transfers) != 1 || afternoon.Transfers[0].ID != "a2" {
			t.Fatalf("expected a2 linked to second day, got %+v", afternoon.Transfers)
		}
	})

	t.Run("repeated merges are idempotent", func(t *testing.T) {
		days, templates, agent := mergeFixture()
		once := MergeSchedule(days, templates, agent, []string{"day-1", "day-2"}, nil)
		twice := MergeSchedule(once, templates, agent, []string{"day-1", "day-2"}, nil)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("second merge changed slot contents")
		}
	})

	t.Run("operator removal is a local filter", func(t *testing.T) {
		days, templates, agent := mergeFixture()
		first := MergeSchedule(days, templates, agent, nil, nil)
		hidden := first[0].Morning.Activities[0].ID

		merged := MergeSchedule(days, templates, agent, nil, []string{hidden})
		if len(merged[0].Morning.Activities) != 1 || merged[0].Morning.Activities[0].ID != "a1" {
			t.Fatalf("expected operator item hidden, got %+v", merged[0].Morning.Activities)
		}

		// Removal never leaks into the template: merging without the filter
		// brings the item back.
		restored := MergeSchedule(days, templates, agent, nil, nil)
		if len(restored[0].Morning.Activities) != 2 {
			t.Fatalf("expected operator item restored, got %+v", restored[0].Morning.Activities)
		}
	})

	t.Run("agent items never silently dropped", func(t *testing.T) {
		days, templates, agent := mergeFixture()
		// Unknown day id falls back to the recorded sequence position.
		agent[1].DayID = "unknown"
		agent[1].DayIndex = 1
		merged := MergeSchedule(days, templates, agent, []string{"day-1", "day-2"}, nil)
		if len(merged[1].Afternoon.Transfers) != 1 {
			t.Fatalf("agent item with stale day id was dropped")
		}
	})
}
