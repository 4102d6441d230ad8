package usecase

import (
	"context"
	"errors"
	"testing"

	"tourdesk/internal/domain/entities"
	mock_interfaces "tourdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func reconcileDaysFixture() []entities.CanonicalDay {
	return MergeSchedule(
		BuildDayPlan([]entities.CityStop{{ID: "c1", Name: "Lisbon", Nights: 1, Order: 1}}, nil),
		[]entities.DayTemplate{{DayNumber: 1, CityID: "c1", Morning: entities.SlotTemplate{Activities: []string{"Walking tour"}}}},
		nil, nil, nil,
	)
}

func TestReconcileDays(t *testing.T) {
	t.Run("fresh itinerary creates every day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItineraryRepository(ctrl)

		repo.EXPECT().ListDays(gomock.Any(), "it-1").Return(nil, nil)
		var wantNumber int
		repo.EXPECT().CreateDay(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, d entities.ItineraryDayRecord) (entities.ItineraryDayRecord, error) {
				wantNumber++
				if d.DayNumber != wantNumber {
					t.Fatalf("expected day number %d, got %d", wantNumber, d.DayNumber)
				}
				if d.ItineraryID != "it-1" || d.ID == "" {
					t.Fatalf("unexpected record: %+v", d)
				}
				return d, nil
			},
		)

		ids, ops, err := ReconcileDays(context.Background(), repo, "it-1", reconcileDaysFixture(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 2 || len(ops) != 2 {
			t.Fatalf("expected 2 ids and 2 ops, got %d/%d", len(ids), len(ops))
		}
	})

	t.Run("starts after other items' day numbers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItineraryRepository(ctrl)

		existing := []entities.ItineraryDayRecord{
			{ID: "o1", ItineraryID: "it-1", DayNumber: 1, CityName: "Rome"},
			{ID: "o2", ItineraryID: "it-1", DayNumber: 2, CityName: "Rome"},
		}
		repo.EXPECT().ListDays(gomock.Any(), "it-1").Return(existing, nil)
		numbers := []int{}
		repo.EXPECT().CreateDay(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, d entities.ItineraryDayRecord) (entities.ItineraryDayRecord, error) {
				numbers = append(numbers, d.DayNumber)
				return d, nil
			},
		)

		_, _, err := ReconcileDays(context.Background(), repo, "it-1", reconcileDaysFixture(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if numbers[0] != 3 || numbers[1] != 4 {
			t.Fatalf("expected day numbers 3,4 after other item's days, got %v", numbers)
		}
	})

	t.Run("second run creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItineraryRepository(ctrl)

		existing := []entities.ItineraryDayRecord{
			{ID: "d1", ItineraryID: "it-1", DayNumber: 1, CityName: "Lisbon"},
			{ID: "d2", ItineraryID: "it-1", DayNumber: 2, CityName: "Lisbon"},
		}
		repo.EXPECT().ListDays(gomock.Any(), "it-1").Return(existing, nil)
		repo.EXPECT().UpdateDay(gomock.Any(), "d1", "Lisbon", gomock.Any()).Return(existing[0], nil)
		repo.EXPECT().UpdateDay(gomock.Any(), "d2", "Lisbon", gomock.Any()).Return(existing[1], nil)

		ids, _, err := ReconcileDays(context.Background(), repo, "it-1", reconcileDaysFixture(), []string{"d1", "d2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 2 || ids[0] != "d1" || ids[1] != "d2" {
			t.Fatalf("expected existing ids reused, got %v", ids)
		}
	})

	t.Run("summary rejection retried without it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItineraryRepository(ctrl)

		existing := []entities.ItineraryDayRecord{{ID: "d1", ItineraryID: "it-1", DayNumber: 1}}
		days := reconcileDaysFixture()[:1] // day 1 has template content, so a summary is sent

		repo.EXPECT().ListDays(gomock.Any(), "it-1").Return(existing, nil)
		gomock.InOrder(
			repo.EXPECT().UpdateDay(gomock.Any(), "d1", "Lisbon", gomock.Not(gomock.Nil())).Return(entities.ItineraryDayRecord{}, errors.New("unknown field")),
			repo.EXPECT().UpdateDay(gomock.Any(), "d1", "Lisbon", gomock.Nil()).Return(existing[0], nil),
		)

		_, ops, err := ReconcileDays(context.Background(), repo, "it-1", days, []string{"d1"})
		if err != nil {
			t.Fatalf("expected degraded success, got %v", err)
		}
		if ops[0].Error != "" {
			t.Fatalf("expected clean op after retry, got %+v", ops[0])
		}
	})

	t.Run("second failure is hard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItineraryRepository(ctrl)

		existing := []entities.ItineraryDayRecord{{ID: "d1", ItineraryID: "it-1", DayNumber: 1}}
		repo.EXPECT().ListDays(gomock.Any(), "it-1").Return(existing, nil)
		repo.EXPECT().UpdateDay(gomock.Any(), "d1", "Lisbon", gomock.Any()).Times(2).Return(entities.ItineraryDayRecord{}, errors.New("store down"))

		_, ops, err := ReconcileDays(context.Background(), repo, "it-1", reconcileDaysFixture()[:1], []string{"d1"})
		if err == nil {
			t.Fatalf("expected hard failure")
		}
		if ops[0].Error == "" {
			t.Fatalf("expected failing op recorded, got %+v", ops[0])
		}
	})
}

func TestRelinkScheduleItems(t *testing.T) {
	t.Run("relinks by sequence position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItineraryRepository(ctrl)

		items := []entities.ScheduleItem{
			{ID: "a1", Origin: entities.OriginAgentAdded, DayIndex: 0, DayID: ""},
			{ID: "a2", Origin: entities.OriginAgentAdded, DayIndex: 1, DayID: "d2"}, // already correct
			{ID: "op", Origin: entities.OriginOperatorTemplate, DayIndex: 0},
		}
		repo.EXPECT().RelinkScheduleItem(gomock.Any(), "a1", "d1").Return(nil)

		ops := RelinkScheduleItems(context.Background(), repo, items, []string{"d1", "d2"})
		if len(ops) != 1 || ops[0].TargetID != "a1" || ops[0].Error != "" {
			t.Fatalf("unexpected ops: %+v", ops)
		}
	})

	t.Run("failure recorded per item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItineraryRepository(ctrl)

		items := []entities.ScheduleItem{{ID: "a1", Origin: entities.OriginAgentAdded, DayIndex: 0}}
		repo.EXPECT().RelinkScheduleItem(gomock.Any(), "a1", "d1").Return(errors.New("db"))

		ops := RelinkScheduleItems(context.Background(), repo, items, []string{"d1"})
		if len(ops) != 1 || ops[0].Error != "db" {
			t.Fatalf("unexpected ops: %+v", ops)
		}
	})

	t.Run("out of range positions skipped", func(t *testing.T) {
		items := []entities.ScheduleItem{{ID: "a1", Origin: entities.OriginAgentAdded, DayIndex: 7}}
		ops := RelinkScheduleItems(context.Background(), nil, items, []string{"d1"})
		if len(ops) != 0 {
			t.Fatalf("expected no ops, got %+v", ops)
		}
	})
}
