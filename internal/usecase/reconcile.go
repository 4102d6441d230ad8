package usecase

import (
	"context"
	"log"
	"strings"

	"tourdesk/internal/domain/entities"
	"tourdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SaveOperation is one persistence attempt made during a save. Error is
// empty on success; failures are reported per operation instead of being
// collapsed into a single rollback, because there is no cross-item
// transaction.
type SaveOperation struct {
	Op       string `json:"op"`
	TargetID string `json:"target_id"`
	Error    string `json:"error,omitempty"`
}

// ReconcileDays maps the canonical day sequence onto the itinerary's
// persisted day records without duplicating them.
//
// Records created by other previously-saved items are left untouched; the
// sequence starts right after the highest day number among them. Each
// canonical day is matched to an existing record at its exact day number and
// updated in place, or a new record is created. Running the mapper twice
// with no intervening changes therefore creates nothing on the second run.
//
// The optional slots summary degrades gracefully: a failed write is retried
// once without it before the operation is reported failed.
func ReconcileDays(ctx context.Context, repo interfaces.IItineraryRepository, itineraryID string, days []entities.CanonicalDay, ownDayIDs []string) ([]string, []SaveOperation, error) {
	existing, err := repo.ListDays(ctx, itineraryID)
	if err != nil {
		return nil, []SaveOperation{{Op: "list_days", TargetID: itineraryID, Error: err.Error()}}, err
	}

	own := make(map[string]struct{}, len(ownDayIDs))
	for _, id := range ownDayIDs {
		own[id] = struct{}{}
	}

	start := 1
	byNumber := make(map[int]entities.ItineraryDayRecord, len(existing))
	for _, rec := range existing {
		byNumber[rec.DayNumber] = rec
		if _, ours := own[rec.ID]; ours {
			continue
		}
		if rec.DayNumber >= start {
			start = rec.DayNumber + 1
		}
	}

	var ops []SaveOperation
	ids := make([]string, 0, len(days))
	for i, day := range days {
		target := start + i
		summary := slotsSummary(day)

		if rec, ok := byNumber[target]; ok {
			_, err := updateDayWithRetry(ctx, repo, rec.ID, day.CityName, summary)
			op := SaveOperation{Op: "update_day", TargetID: rec.ID}
			if err != nil {
				op.Error = err.Error()
				ops = append(ops, op)
				return ids, ops, err
			}
			ops = append(ops, op)
			ids = append(ids, rec.ID)
			continue
		}

		created, err := createDayWithRetry(ctx, repo, entities.ItineraryDayRecord{
			ID:           uuid.NewString(),
			ItineraryID:  itineraryID,
			DayNumber:    target,
			CityName:     day.CityName,
			SlotsSummary: summary,
		})
		op := SaveOperation{Op: "create_day", TargetID: created.ID}
		if err != nil {
			op.Error = err.Error()
			ops = append(ops, op)
			return ids, ops, err
		}
		ops = append(ops, op)
		ids = append(ids, created.ID)
	}
	return ids, ops, nil
}

// RelinkScheduleItems points every agent item's day foreign key at the
// record occupying the same sequence position. Day upserts must have
// completed first, since the resolved ids are the relink targets.
func RelinkScheduleItems(ctx context.Context, repo interfaces.IItineraryRepository, items []entities.ScheduleItem, dayIDs []string) []SaveOperation {
	var ops []SaveOperation
	for _, it := range items {
		if it.Origin != entities.OriginAgentAdded {
			continue
		}
		if it.DayIndex < 0 || it.DayIndex >= len(dayIDs) {
			continue
		}
		want := dayIDs[it.DayIndex]
		if it.DayID == want {
			continue
		}
		op := SaveOperation{Op: "relink_item", TargetID: it.ID}
		if err := repo.RelinkScheduleItem(ctx, it.ID, want); err != nil {
			log.Printf("[reconcile][usecase] relink failed item_id=%s day_id=%s err=%v", it.ID, want, err)
			op.Error = err.Error()
		}
		ops = append(ops, op)
	}
	return ops
}

func updateDayWithRetry(ctx context.Context, repo interfaces.IItineraryRepository, dayID, cityName string, summary *string) (entities.ItineraryDayRecord, error) {
	rec, err := repo.UpdateDay(ctx, dayID, cityName, summary)
	if err != nil && summary != nil {
		log.Printf("[reconcile][usecase] update with summary failed day_id=%s err=%v; retrying without summary", dayID, err)
		rec, err = repo.UpdateDay(ctx, dayID, cityName, nil)
	}
	return rec, err
}

func createDayWithRetry(ctx context.Context, repo interfaces.IItineraryRepository, d entities.ItineraryDayRecord) (entities.ItineraryDayRecord, error) {
	rec, err := repo.CreateDay(ctx, d)
	if err != nil && d.SlotsSummary != nil {
		log.Printf("[reconcile][usecase] create with summary failed day_number=%d err=%v; retrying without summary", d.DayNumber, err)
		stripped := d
		stripped.SlotsSummary = nil
		rec, err = repo.CreateDay(ctx, stripped)
	}
	if err != nil {
		return entities.ItineraryDayRecord{ID: d.ID}, err
	}
	return rec, nil
}

// slotsSummary flattens a day's merged slots into the optional one-line
// summary stored on the day record. Empty days produce nil so deployments
// without the field never see it.
func slotsSummary(d entities.CanonicalDay) *string {
	var parts []string
	for _, slot := range entities.SlotNames {
		s := d.Slot(slot)
		var titles []string
		for _, it := range s.Activities {
			titles = append(titles, it.Title)
		}
		for _, it := range s.Transfers {
			titles = append(titles, it.Title)
		}
		if len(titles) > 0 {
			parts = append(parts, string(slot)+": "+strings.Join(titles, ", "))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	out := strings.Join(parts, "; ")
	return &out
}
