package request

import "strings"

// ScheduleItemRequest adds one agent item to a day's time slot.
type ScheduleItemRequest struct {
	PackageID   string `json:"package_id"`
	DayIndex    int    `json:"day_index"`
	TimeSlot    string `json:"time_slot" binding:"required"`
	Kind        string `json:"kind" binding:"required"`
	Title       string `json:"title" binding:"required"`
	TemplateRef string `json:"template_ref"`
}

func (r ScheduleItemRequest) ResolveTimeSlot() string {
	return strings.ToLower(strings.TrimSpace(r.TimeSlot))
}

func (r ScheduleItemRequest) ResolveKind() string {
	return strings.ToLower(strings.TrimSpace(r.Kind))
}
