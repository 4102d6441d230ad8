package response

import (
	"tourdesk/internal/domain/entities"
	"tourdesk/internal/usecase"
)

type TimeSlotResponse struct {
	Activities []ScheduleItemResponse `json:"activities"`
	Transfers  []ScheduleItemResponse `json:"transfers"`
}

type DayResponse struct {
	DayNumber int              `json:"day_number"`
	CityID    string           `json:"city_id"`
	CityName  string           `json:"city_name"`
	DayType   string           `json:"day_type"`
	Night     int              `json:"night"`
	Title     string           `json:"title"`
	Morning   TimeSlotResponse `json:"morning"`
	Afternoon TimeSlotResponse `json:"afternoon"`
	Evening   TimeSlotResponse `json:"evening"`
}

type RowSelectionResponse struct {
	RowID  string `json:"row_id"`
	Source string `json:"source"`
}

type HotelSelectionResponse struct {
	CityID   string `json:"city_id"`
	HotelID  string `json:"hotel_id"`
	Override bool   `json:"override"`
}

type BreakdownResponse struct {
	BasePrice       float64 `json:"base_price"`
	HotelPrice      float64 `json:"hotel_price"`
	ActivitiesPrice float64 `json:"activities_price"`
	TransfersPrice  float64 `json:"transfers_price"`
	Total           float64 `json:"total"`
}

// ConfigurationResponse is the computed session returned by the
// configuration endpoints: the generated day plan with merged slots, the
// resolved pricing and hotel selections, and the eligibility hints the
// agent-facing UI needs to disable rows.
type ConfigurationResponse struct {
	ItineraryID          string                   `json:"itinerary_id"`
	ItemID               string                   `json:"item_id"`
	PackageID            string                   `json:"package_id"`
	PricingMode          string                   `json:"pricing_mode"`
	Adults               int                      `json:"adults"`
	Children             int                      `json:"children"`
	Quantity             int                      `json:"quantity"`
	SelectedRow          *RowSelectionResponse    `json:"selected_row,omitempty"`
	Hotels               []HotelSelectionResponse `json:"hotels"`
	Days                 []DayResponse            `json:"days"`
	Breakdown            BreakdownResponse        `json:"breakdown"`
	Incomplete           bool                     `json:"incomplete"`
	InsufficientCapacity bool                     `json:"insufficient_capacity"`
	IneligibleRowIDs     []string                 `json:"ineligible_row_ids,omitempty"`
}

// SaveResultResponse pairs the recomputed session with the per-operation
// persistence report of the save that produced it.
type SaveResultResponse struct {
	Configuration ConfigurationResponse `json:"configuration"`
	SaveReport    usecase.SaveReport    `json:"save_report"`
}

func FromConfigSession(s usecase.ConfigSession) ConfigurationResponse {
	resp := ConfigurationResponse{
		ItineraryID:          s.ItineraryID,
		ItemID:               s.ItemID,
		PackageID:            s.Config.PackageID,
		PricingMode:          string(s.Config.PricingMode),
		Adults:               s.Config.Adults,
		Children:             s.Config.Children,
		Quantity:             s.Config.Quantity,
		Hotels:               make([]HotelSelectionResponse, 0, len(s.Config.Hotels)),
		Days:                 make([]DayResponse, 0, len(s.Days)),
		Breakdown:            BreakdownResponse(s.Config.Breakdown),
		Incomplete:           s.Config.Incomplete,
		InsufficientCapacity: s.Pricing.InsufficientCapacity,
		IneligibleRowIDs:     s.Pricing.IneligibleRowIDs,
	}
	if s.Config.SelectedRow != nil {
		resp.SelectedRow = &RowSelectionResponse{
			RowID:  s.Config.SelectedRow.RowID,
			Source: string(s.Config.SelectedRow.Source),
		}
	}
	for _, h := range s.Config.Hotels {
		resp.Hotels = append(resp.Hotels, HotelSelectionResponse(h))
	}
	for _, d := range s.Days {
		resp.Days = append(resp.Days, fromCanonicalDay(d))
	}
	return resp
}

func FromConfigSave(s usecase.ConfigSession, report usecase.SaveReport) SaveResultResponse {
	return SaveResultResponse{
		Configuration: FromConfigSession(s),
		SaveReport:    report,
	}
}

func fromCanonicalDay(d entities.CanonicalDay) DayResponse {
	return DayResponse{
		DayNumber: d.DayNumber,
		CityID:    d.CityID,
		CityName:  d.CityName,
		DayType:   string(d.DayType),
		Night:     d.Night,
		Title:     d.Title,
		Morning:   fromTimeSlot(d.Morning),
		Afternoon: fromTimeSlot(d.Afternoon),
		Evening:   fromTimeSlot(d.Evening),
	}
}

func fromTimeSlot(s entities.TimeSlot) TimeSlotResponse {
	out := TimeSlotResponse{
		Activities: make([]ScheduleItemResponse, 0, len(s.Activities)),
		Transfers:  make([]ScheduleItemResponse, 0, len(s.Transfers)),
	}
	for _, it := range s.Activities {
		out.Activities = append(out.Activities, FromScheduleItem(it))
	}
	for _, it := range s.Transfers {
		out.Transfers = append(out.Transfers, FromScheduleItem(it))
	}
	return out
}
