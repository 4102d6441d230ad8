package entities

// CityStop is one leg of a published travel package.
//
// The ordered list of stops defines the trip sequence. Stops are authored by
// the tour operator and are read-only from the itinerary engine's point of
// view.

type CityStop struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Nights  int    `json:"nights"`
	Order   int    `json:"order"`
}

// PricingRow is one row of the shared ("SIC") pricing table: a total price
// for an exact (adults, children) combination.

type PricingRow struct {
	ID         string  `json:"id"`
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	TotalPrice float64 `json:"total_price"`
}

// PrivatePricingRow is one row of the private pricing table. A row is only
// eligible when its vehicle capacity covers the whole travelling party.

type PrivatePricingRow struct {
	ID              string  `json:"id"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	VehicleCapacity int     `json:"vehicle_capacity"`
	CarType         string  `json:"car_type"`
	TotalPrice      float64 `json:"total_price"`
}

// HotelOption is a per-city hotel choice with nightly per-person rates.

type HotelOption struct {
	ID         string  `json:"id"`
	CityID     string  `json:"city_id"`
	Name       string  `json:"name"`
	AdultPrice float64 `json:"adult_price"`
	ChildPrice float64 `json:"child_price"`
}

// StayCost returns the total cost of the stay for the given party size.
func (h HotelOption) StayCost(adults, children, nights int) float64 {
	return (h.AdultPrice*float64(adults) + h.ChildPrice*float64(children)) * float64(nights)
}

// SlotTemplate is the operator-authored schedule text for one time slot of a
// templated day. Entries are plain titles; they become zero-price
// operator-origin schedule items on every load.
type SlotTemplate struct {
	Activities []string `json:"activities"`
	Transfers  []string `json:"transfers"`
}

// DayTemplate is the operator-authored per-day schedule of a package,
// keyed by day number and city.
type DayTemplate struct {
	DayNumber int          `json:"day_number"`
	CityID    string       `json:"city_id"`
	Morning   SlotTemplate `json:"morning"`
	Afternoon SlotTemplate `json:"afternoon"`
	Evening   SlotTemplate `json:"evening"`
}

// Slot returns the template text for the named slot.
func (d DayTemplate) Slot(name SlotName) SlotTemplate {
	switch name {
	case SlotMorning:
		return d.Morning
	case SlotAfternoon:
		return d.Afternoon
	default:
		return d.Evening
	}
}

// ItemPricingRule is the optional pricing sub-rule a package attaches to
// agent-addable schedule items: either a flat price, or a traveler-weighted
// adult/child rate, with an optional surcharge applied to transfers.
type ItemPricingRule struct {
	FlatPrice         float64 `json:"flat_price"`
	AdultRate         float64 `json:"adult_rate"`
	ChildRate         float64 `json:"child_rate"`
	TransferSurcharge float64 `json:"transfer_surcharge"`
}

// Price resolves the rule for a party and item kind. A flat price wins over
// the weighted rates.
func (r ItemPricingRule) Price(adults, children int, kind ItemKind) float64 {
	price := r.FlatPrice
	if price == 0 {
		price = r.AdultRate*float64(adults) + r.ChildRate*float64(children)
	}
	if kind == ItemKindTransfer {
		price += r.TransferSurcharge
	}
	return price
}
