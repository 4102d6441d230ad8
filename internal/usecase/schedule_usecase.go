package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"tourdesk/internal/domain/entities"
	"tourdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidScheduleItemID    = errors.New("invalid schedule item id")
	ErrInvalidScheduleItemTitle = errors.New("invalid schedule item title")
	ErrInvalidTimeSlot          = errors.New("invalid time slot")
	ErrInvalidItemKind          = errors.New("invalid item kind")
	ErrInvalidDayIndex          = errors.New("invalid day index")
	ErrOperatorItemImmutable    = errors.New("operator template items cannot be deleted")
)

// AddScheduleItemInput describes an agent-added schedule entry targeted at
// one (day, slot, kind).
type AddScheduleItemInput struct {
	DayIndex    int
	Slot        entities.SlotName
	Kind        entities.ItemKind
	Title       string
	TemplateRef string
}

// IScheduleUseCase exposes the agent-side schedule mutations. Operator
// template items are out of its reach: hiding one is a session-local filter
// applied during the merge, with no backing record to delete.

type IScheduleUseCase interface {
	AddItem(ctx context.Context, itineraryID string, cfg entities.ItineraryConfiguration, in AddScheduleItemInput) (entities.ScheduleItem, error)
	RemoveItem(ctx context.Context, scheduleItemID string) error
}

type ScheduleUseCase struct {
	repo     interfaces.IItineraryRepository
	packages interfaces.IPackageTemplateRepository
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(repo interfaces.IItineraryRepository, packages interfaces.IPackageTemplateRepository) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo, packages: packages}
}

// AddItem prices the entry by the package's optional item pricing rule and
// persists it immediately. The day id stays empty when the targeted day has
// not been persisted yet; reconciliation resolves it on the next save.
func (u *ScheduleUseCase) AddItem(ctx context.Context, itineraryID string, cfg entities.ItineraryConfiguration, in AddScheduleItemInput) (entities.ScheduleItem, error) {
	itineraryID = strings.TrimSpace(itineraryID)
	if itineraryID == "" {
		return entities.ScheduleItem{}, ErrInvalidItineraryID
	}
	if strings.TrimSpace(in.Title) == "" {
		return entities.ScheduleItem{}, ErrInvalidScheduleItemTitle
	}
	if in.Slot != entities.SlotMorning && in.Slot != entities.SlotAfternoon && in.Slot != entities.SlotEvening {
		return entities.ScheduleItem{}, ErrInvalidTimeSlot
	}
	if in.Kind != entities.ItemKindActivity && in.Kind != entities.ItemKindTransfer {
		return entities.ScheduleItem{}, ErrInvalidItemKind
	}
	if in.DayIndex < 0 {
		return entities.ScheduleItem{}, ErrInvalidDayIndex
	}

	rule, err := u.packages.GetItemPricingRule(ctx, cfg.PackageID)
	if err != nil {
		return entities.ScheduleItem{}, err
	}

	item := entities.ScheduleItem{
		ID:          uuid.NewString(),
		ItineraryID: itineraryID,
		DayIndex:    in.DayIndex,
		Origin:      entities.OriginAgentAdded,
		Kind:        in.Kind,
		Slot:        in.Slot,
		TemplateRef: strings.TrimSpace(in.TemplateRef),
		Title:       strings.TrimSpace(in.Title),
		Price:       rule.Price(cfg.Adults, cfg.Children, in.Kind),
	}
	if in.DayIndex < len(cfg.DayRecordIDs) {
		item.DayID = cfg.DayRecordIDs[in.DayIndex]
	}

	created, err := u.repo.CreateScheduleItem(ctx, item)
	if err != nil {
		log.Printf("[schedule][usecase] create failed itinerary_id=%s title=%q err=%v", itineraryID, item.Title, err)
		return entities.ScheduleItem{}, err
	}
	log.Printf("[schedule][usecase] item created itinerary_id=%s item_id=%s slot=%s kind=%s price=%.2f", itineraryID, created.ID, created.Slot, created.Kind, created.Price)
	return created, nil
}

// RemoveItem deletes a persisted agent item. Synthesized operator ids are
// rejected; they have no backing record.
func (u *ScheduleUseCase) RemoveItem(ctx context.Context, scheduleItemID string) error {
	scheduleItemID = strings.TrimSpace(scheduleItemID)
	if scheduleItemID == "" {
		return ErrInvalidScheduleItemID
	}
	if strings.HasPrefix(scheduleItemID, "tpl:") {
		return ErrOperatorItemImmutable
	}
	if err := u.repo.DeleteScheduleItem(ctx, scheduleItemID); err != nil {
		log.Printf("[schedule][usecase] delete failed item_id=%s err=%v", scheduleItemID, err)
		return err
	}
	log.Printf("[schedule][usecase] item deleted item_id=%s", scheduleItemID)
	return nil
}
