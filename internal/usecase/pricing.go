package usecase

import "tourdesk/internal/domain/entities"

// PricingResult is the outcome of resolving a pricing table for an itinerary
// item. Selection is nil only when the table is empty, in which case the
// item is flagged incomplete instead of failing.
type PricingResult struct {
	Selection *entities.RowSelection
	BasePrice float64

	// Incomplete is set when the package carries no pricing rows at all.
	Incomplete bool

	// InsufficientCapacity marks a private-mode selection whose vehicle
	// cannot seat the whole party (explicit undersized pick, or the
	// last-row fallback when no row qualifies).
	InsufficientCapacity bool

	// IneligibleRowIDs lists private rows that must never be auto-selected
	// for the requested party, so the caller can surface them disabled.
	IneligibleRowIDs []string
}

// ResolveSharedPricing picks one shared ("SIC") pricing row for the
// requested party.
//
// Selection order: prior selection if its row still exists, exact
// (adults, children) match, first row covering both counts in table order,
// last row as the highest-capacity fallback. Fallback picks are tagged
// SelectionAuto and written back by the caller so reloads are stable.
func ResolveSharedPricing(rows []entities.PricingRow, adults, children, quantity int, prior *entities.RowSelection) PricingResult {
	if len(rows) == 0 {
		return PricingResult{Incomplete: true}
	}
	if quantity < 1 {
		quantity = 1
	}

	if prior != nil {
		for _, r := range rows {
			if r.ID == prior.RowID {
				sel := *prior
				return PricingResult{Selection: &sel, BasePrice: r.TotalPrice * float64(quantity)}
			}
		}
	}

	pick := func(r entities.PricingRow) PricingResult {
		return PricingResult{
			Selection: &entities.RowSelection{RowID: r.ID, Source: entities.SelectionAuto},
			BasePrice: r.TotalPrice * float64(quantity),
		}
	}

	for _, r := range rows {
		if r.Adults == adults && r.Children == children {
			return pick(r)
		}
	}
	for _, r := range rows {
		if r.Adults >= adults && r.Children >= children {
			return pick(r)
		}
	}
	return pick(rows[len(rows)-1])
}

// ResolvePrivatePricing picks one private pricing row for the requested
// party. Rows whose vehicle capacity is below the total traveler count are
// never auto-selected; when no row qualifies the last row is used and the
// result is marked insufficient-capacity.
func ResolvePrivatePricing(rows []entities.PrivatePricingRow, adults, children, quantity int, prior *entities.RowSelection) PricingResult {
	if len(rows) == 0 {
		return PricingResult{Incomplete: true}
	}
	if quantity < 1 {
		quantity = 1
	}
	travelers := adults + children

	var ineligible []string
	for _, r := range rows {
		if r.VehicleCapacity < travelers {
			ineligible = append(ineligible, r.ID)
		}
	}

	pick := func(r entities.PrivatePricingRow, sel entities.RowSelection) PricingResult {
		return PricingResult{
			Selection:            &sel,
			BasePrice:            r.TotalPrice * float64(quantity),
			InsufficientCapacity: r.VehicleCapacity < travelers,
			IneligibleRowIDs:     ineligible,
		}
	}

	if prior != nil {
		for _, r := range rows {
			if r.ID == prior.RowID {
				return pick(r, *prior)
			}
		}
	}

	auto := func(r entities.PrivatePricingRow) PricingResult {
		return pick(r, entities.RowSelection{RowID: r.ID, Source: entities.SelectionAuto})
	}

	for _, r := range rows {
		if r.Adults == adults && r.Children == children && r.VehicleCapacity >= travelers {
			return auto(r)
		}
	}
	for _, r := range rows {
		if r.VehicleCapacity >= travelers {
			return auto(r)
		}
	}
	return auto(rows[len(rows)-1])
}
