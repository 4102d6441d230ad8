package entities

// DayType classifies a canonical day within the generated plan.
//
// A transit day is shared between two cities: it is the departure day of the
// previous stop and the arrival day of the next one.

type DayType string

const (
	DayTypeArrival   DayType = "arrival"
	DayTypeTransit   DayType = "transit"
	DayTypeMidStay   DayType = "mid_stay"
	DayTypeDeparture DayType = "departure"
)

// SlotName names one of the three time slots of a day.

type SlotName string

const (
	SlotMorning   SlotName = "morning"
	SlotAfternoon SlotName = "afternoon"
	SlotEvening   SlotName = "evening"
)

// SlotNames lists the slots in display order.
var SlotNames = []SlotName{SlotMorning, SlotAfternoon, SlotEvening}

// ItemOrigin distinguishes operator-authored template items (synthesized on
// every load, never persisted as deletable records) from agent-added items
// (persisted, priced, deletable).

type ItemOrigin string

const (
	OriginOperatorTemplate ItemOrigin = "operator_template"
	OriginAgentAdded       ItemOrigin = "agent_added"
)

// ItemKind separates activities from transfers within a slot.

type ItemKind string

const (
	ItemKindActivity ItemKind = "activity"
	ItemKindTransfer ItemKind = "transfer"
)

// ScheduleItem is a single schedule entry in a day's time slot.
//
// Storage model (DynamoDB, agent-origin only):
//   - PK: id
//   - GSI1 (itinerary_id-index): itinerary_id
//
// Operator-origin items never reach storage; their IDs are synthesized per
// load and DayIndex ties an agent item to its sequence position in the plan
// until reconciliation resolves the real DayID.

type ScheduleItem struct {
	ID          string     `json:"id"`
	ItineraryID string     `json:"itinerary_id,omitempty"`
	DayID       string     `json:"day_id,omitempty"`
	DayIndex    int        `json:"day_index"`
	Origin      ItemOrigin `json:"origin"`
	Kind        ItemKind   `json:"kind"`
	Slot        SlotName   `json:"time_slot"`
	TemplateRef string     `json:"template_ref,omitempty"`
	Title       string     `json:"title"`
	Price       float64    `json:"price"`
}

// TimeSlot holds the merged schedule content of one slot.
type TimeSlot struct {
	Activities []ScheduleItem `json:"activities"`
	Transfers  []ScheduleItem `json:"transfers"`
}

// CanonicalDay is one day of the generated plan. It is transient: recomputed
// from the package template and configuration on every load, never the
// persistence source of truth.
type CanonicalDay struct {
	DayNumber int      `json:"day_number"`
	CityID    string   `json:"city_id"`
	CityName  string   `json:"city_name"`
	DayType   DayType  `json:"day_type"`
	Night     int      `json:"night"`
	Title     string   `json:"title"`
	Morning   TimeSlot `json:"morning"`
	Afternoon TimeSlot `json:"afternoon"`
	Evening   TimeSlot `json:"evening"`
}

// Slot returns a pointer to the named slot so callers can merge in place.
func (d *CanonicalDay) Slot(name SlotName) *TimeSlot {
	switch name {
	case SlotMorning:
		return &d.Morning
	case SlotAfternoon:
		return &d.Afternoon
	default:
		return &d.Evening
	}
}

// ItineraryDayRecord is the persisted counterpart of a canonical day.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (itinerary_id-index): itinerary_id
//
// Records are keyed logically by (itinerary_id, day_number) and are only
// created or updated by the day reconciliation mapper.

type ItineraryDayRecord struct {
	ID           string  `json:"id"`
	ItineraryID  string  `json:"itinerary_id"`
	DayNumber    int     `json:"day_number"`
	CityName     string  `json:"city_name"`
	SlotsSummary *string `json:"slots_summary,omitempty"`
}
