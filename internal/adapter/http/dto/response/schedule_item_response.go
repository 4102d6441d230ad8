package response

import "tourdesk/internal/domain/entities"

type ScheduleItemResponse struct {
	ID          string  `json:"id"`
	ItineraryID string  `json:"itinerary_id,omitempty"`
	DayID       string  `json:"day_id,omitempty"`
	DayIndex    int     `json:"day_index"`
	Origin      string  `json:"origin"`
	Kind        string  `json:"kind"`
	TimeSlot    string  `json:"time_slot"`
	TemplateRef string  `json:"template_ref,omitempty"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
}

func FromScheduleItem(it entities.ScheduleItem) ScheduleItemResponse {
	return ScheduleItemResponse{
		ID:          it.ID,
		ItineraryID: it.ItineraryID,
		DayID:       it.DayID,
		DayIndex:    it.DayIndex,
		Origin:      string(it.Origin),
		Kind:        string(it.Kind),
		TimeSlot:    string(it.Slot),
		TemplateRef: it.TemplateRef,
		Title:       it.Title,
		Price:       it.Price,
	}
}
