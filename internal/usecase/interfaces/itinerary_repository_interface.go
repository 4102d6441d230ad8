package interfaces

import (
	"context"

	"tourdesk/internal/domain/entities"
)

// IItineraryRepository abstracts the persisted itinerary store.
//
// The engine must be able to:
//   - load and save an itinerary item's configuration
//   - list, create and update the itinerary's day records
//   - list, create, relink and delete agent-origin schedule items
//   - write back the itinerary total after a save
//
// UpdateDay and CreateDay take the optional slots summary separately because
// some deployments of the store do not carry that field; callers degrade by
// retrying once without it.

type IItineraryRepository interface {
	GetItem(ctx context.Context, itemID string) (entities.ItineraryItem, error)
	SaveItem(ctx context.Context, item entities.ItineraryItem) (entities.ItineraryItem, error)

	ListDays(ctx context.Context, itineraryID string) ([]entities.ItineraryDayRecord, error)
	CreateDay(ctx context.Context, d entities.ItineraryDayRecord) (entities.ItineraryDayRecord, error)
	UpdateDay(ctx context.Context, dayID, cityName string, slotsSummary *string) (entities.ItineraryDayRecord, error)

	ListScheduleItems(ctx context.Context, itineraryID string) ([]entities.ScheduleItem, error)
	CreateScheduleItem(ctx context.Context, it entities.ScheduleItem) (entities.ScheduleItem, error)
	RelinkScheduleItem(ctx context.Context, itemID, dayID string) error
	DeleteScheduleItem(ctx context.Context, itemID string) error

	GetItineraryTotal(ctx context.Context, itineraryID string) (float64, error)
	UpdateItineraryTotal(ctx context.Context, itineraryID string, totalPrice float64) error
}
