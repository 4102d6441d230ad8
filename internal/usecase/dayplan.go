package usecase

import (
	"fmt"
	"sort"

	"tourdesk/internal/domain/entities"
)

// BuildDayPlan expands an ordered city list into the canonical day sequence.
//
// The plan always has sum(nights)+1 days: the first city opens with an
// arrival day, every city boundary is a single shared transit day (departure
// of the previous stop and arrival of the next), and one departure day
// closes the trip after the last city's final night.
//
// When a previous plan is given, slot content entered for the same
// (city, day number) pair is carried over verbatim, so regenerating after a
// city-list change does not discard agent-entered schedule content. The
// function is pure: same inputs, same plan.
func BuildDayPlan(cities []entities.CityStop, previous []entities.CanonicalDay) []entities.CanonicalDay {
	if len(cities) == 0 {
		return []entities.CanonicalDay{}
	}

	ordered := make([]entities.CityStop, len(cities))
	copy(ordered, cities)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	total := 1
	for _, c := range ordered {
		total += c.Nights
	}

	days := make([]entities.CanonicalDay, 0, total)
	dayNumber := 1
	for i, city := range ordered {
		for night := 1; night <= city.Nights; night++ {
			d := entities.CanonicalDay{
				DayNumber: dayNumber,
				CityID:    city.ID,
				CityName:  city.Name,
				Night:     night,
			}
			switch {
			case night == 1 && i == 0:
				d.DayType = entities.DayTypeArrival
				d.Title = fmt.Sprintf("Arrival – %s", city.Name)
			case night == 1:
				d.DayType = entities.DayTypeTransit
				d.Title = fmt.Sprintf("Departure %s / Arrival %s", ordered[i-1].Name, city.Name)
			default:
				d.DayType = entities.DayTypeMidStay
				d.Title = fmt.Sprintf("Day %d – %s (Night %d)", dayNumber, city.Name, night)
			}
			days = append(days, d)
			dayNumber++
		}
	}

	last := ordered[len(ordered)-1]
	days = append(days, entities.CanonicalDay{
		DayNumber: dayNumber,
		CityID:    last.ID,
		CityName:  last.Name,
		DayType:   entities.DayTypeDeparture,
		Title:     fmt.Sprintf("Departure – %s", last.Name),
	})

	if len(previous) > 0 {
		carryOverSlots(days, previous)
	}
	return days
}

// carryOverSlots copies slot content from a previous plan into the new one,
// matching days by city identity and day number.
func carryOverSlots(days, previous []entities.CanonicalDay) {
	type key struct {
		cityID    string
		dayNumber int
	}
	prior := make(map[key]entities.CanonicalDay, len(previous))
	for _, d := range previous {
		prior[key{d.CityID, d.DayNumber}] = d
	}
	for i := range days {
		if p, ok := prior[key{days[i].CityID, days[i].DayNumber}]; ok {
			days[i].Morning = p.Morning
			days[i].Afternoon = p.Afternoon
			days[i].Evening = p.Evening
		}
	}
}
