package entities

import "time"

// PricingMode selects how the base price of an itinerary item is resolved.

type PricingMode string

const (
	PricingModeShared  PricingMode = "shared"
	PricingModePrivate PricingMode = "private"
)

// SelectionSource records whether a pricing row was picked by the agent or
// inferred by the resolver's fallback chain. Auto picks are written back so
// recomputation is stable, but downstream logic can still tell intent from
// inference.

type SelectionSource string

const (
	SelectionExplicit SelectionSource = "explicit"
	SelectionAuto     SelectionSource = "auto"
)

// RowSelection is a tagged pricing-row reference.
type RowSelection struct {
	RowID  string          `json:"row_id"`
	Source SelectionSource `json:"source"`
}

// HotelSelection binds a city to its chosen hotel. Override marks an agent
// choice, which recomputation must never replace with the cheapest option.
type HotelSelection struct {
	CityID   string `json:"city_id"`
	HotelID  string `json:"hotel_id"`
	Override bool   `json:"override"`
}

// PricingBreakdown is fully derived: recomputed from current inputs on every
// relevant change, never independently mutated.
type PricingBreakdown struct {
	BasePrice       float64 `json:"base_price"`
	HotelPrice      float64 `json:"hotel_price"`
	ActivitiesPrice float64 `json:"activities_price"`
	TransfersPrice  float64 `json:"transfers_price"`
	Total           float64 `json:"total"`
}

// ItineraryConfiguration is the persisted configuration of one itinerary
// item: the agent's traveler counts, pricing mode, selections and the ids of
// the day records the last save produced for this item.
type ItineraryConfiguration struct {
	PackageID    string           `json:"package_id"`
	PricingMode  PricingMode      `json:"pricing_mode"`
	Adults       int              `json:"adults"`
	Children     int              `json:"children"`
	Quantity     int              `json:"quantity"`
	SelectedRow  *RowSelection    `json:"selected_row,omitempty"`
	Hotels       []HotelSelection `json:"hotels"`
	DayRecordIDs []string         `json:"day_record_ids"`
	Breakdown    PricingBreakdown `json:"breakdown"`
	Incomplete   bool             `json:"incomplete"`
}

// HotelFor returns the selection for a city, if any.
func (c ItineraryConfiguration) HotelFor(cityID string) (HotelSelection, bool) {
	for _, h := range c.Hotels {
		if h.CityID == cityID {
			return h, true
		}
	}
	return HotelSelection{}, false
}

// ItineraryItem is a package placed on a customer's itinerary together with
// its configuration.
//
// Storage model (DynamoDB):
//   - PK: id
//   - attribute itinerary_id links back to the owning itinerary

type ItineraryItem struct {
	ID            string                 `json:"id"`
	ItineraryID   string                 `json:"itinerary_id"`
	Configuration ItineraryConfiguration `json:"configuration"`
	UnitPrice     float64                `json:"unit_price"`
	Quantity      int                    `json:"quantity"`
	UpdatedAt     time.Time              `json:"updated_at"`
}
