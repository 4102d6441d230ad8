package usecase

import "tourdesk/internal/domain/entities"

// SelectHotels resolves one hotel per city.
//
// An agent override recorded in the existing selections always wins and is
// never replaced by recomputation, as long as the hotel is still offered for
// that city. Otherwise the cheapest option for the party and stay length is
// chosen, first occurrence winning ties. Cities without options contribute
// zero and get no selection.
//
// The returned selections follow city order; the second return value is the
// summed hotel cost of the trip.
func SelectHotels(cities []entities.CityStop, options []entities.HotelOption, adults, children int, existing []entities.HotelSelection) ([]entities.HotelSelection, float64) {
	byCity := make(map[string][]entities.HotelOption, len(cities))
	for _, o := range options {
		byCity[o.CityID] = append(byCity[o.CityID], o)
	}

	overrides := make(map[string]string, len(existing))
	for _, s := range existing {
		if s.Override {
			overrides[s.CityID] = s.HotelID
		}
	}

	selections := make([]entities.HotelSelection, 0, len(cities))
	var total float64
	for _, city := range cities {
		opts := byCity[city.ID]
		if len(opts) == 0 {
			continue
		}

		if hotelID, ok := overrides[city.ID]; ok {
			if opt, found := findHotel(opts, hotelID); found {
				selections = append(selections, entities.HotelSelection{CityID: city.ID, HotelID: hotelID, Override: true})
				total += opt.StayCost(adults, children, city.Nights)
				continue
			}
			// Overridden hotel no longer offered; fall back to the default.
		}

		best := opts[0]
		bestCost := best.StayCost(adults, children, city.Nights)
		for _, opt := range opts[1:] {
			if cost := opt.StayCost(adults, children, city.Nights); cost < bestCost {
				best, bestCost = opt, cost
			}
		}
		selections = append(selections, entities.HotelSelection{CityID: city.ID, HotelID: best.ID})
		total += bestCost
	}
	return selections, total
}

func findHotel(opts []entities.HotelOption, id string) (entities.HotelOption, bool) {
	for _, o := range opts {
		if o.ID == id {
			return o, true
		}
	}
	return entities.HotelOption{}, false
}
