package usecase

import (
	"context"
	"errors"
	"testing"

	"tourdesk/internal/domain/entities"
	mock_interfaces "tourdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func expectTemplateReads(packages *mock_interfaces.MockIPackageTemplateRepository) {
	packages.EXPECT().ListCities(gomock.Any(), "pkg-1").Return([]entities.CityStop{
		{ID: "c1", Name: "Lisbon", Nights: 1, Order: 1},
	}, nil)
	packages.EXPECT().ListSharedPricingRows(gomock.Any(), "pkg-1").Return([]entities.PricingRow{
		{ID: "r1", Adults: 2, Children: 0, TotalPrice: 180},
	}, nil)
	packages.EXPECT().ListPrivatePricingRows(gomock.Any(), "pkg-1").Return(nil, nil)
	packages.EXPECT().ListHotelOptions(gomock.Any(), []string{"c1"}).Return([]entities.HotelOption{
		{ID: "h1", CityID: "c1", AdultPrice: 40, ChildPrice: 0},
	}, nil)
	packages.EXPECT().ListDayTemplates(gomock.Any(), "pkg-1").Return([]entities.DayTemplate{
		{DayNumber: 1, CityID: "c1", Morning: entities.SlotTemplate{Activities: []string{"Walking tour"}}},
	}, nil)
}

func TestItineraryConfigUseCase_LoadSession(t *testing.T) {
	t.Run("invalid itinerary id", func(t *testing.T) {
		uc := NewItineraryConfigUseCase(nil, nil)
		_, err := uc.LoadSession(context.Background(), "  ", "item-1", "pkg-1")
		if !errors.Is(err, ErrInvalidItineraryID) {
			t.Fatalf("expected ErrInvalidItineraryID, got %v", err)
		}
	})

	t.Run("invalid item id", func(t *testing.T) {
		uc := NewItineraryConfigUseCase(nil, nil)
		_, err := uc.LoadSession(context.Background(), "it-1", " ", "pkg-1")
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("missing package id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itineraries := mock_interfaces.NewMockIItineraryRepository(ctrl)
		uc := NewItineraryConfigUseCase(nil, itineraries)

		itineraries.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.ItineraryItem{}, nil)

		_, err := uc.LoadSession(context.Background(), "it-1", "item-1", "")
		if !errors.Is(err, ErrInvalidPackageID) {
			t.Fatalf("expected ErrInvalidPackageID, got %v", err)
		}
	})

	t.Run("fresh item computes plan and breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		packages := mock_interfaces.NewMockIPackageTemplateRepository(ctrl)
		itineraries := mock_interfaces.NewMockIItineraryRepository(ctrl)
		uc := NewItineraryConfigUseCase(packages, itineraries)

		itineraries.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.ItineraryItem{}, nil)
		expectTemplateReads(packages)
		itineraries.EXPECT().ListScheduleItems(gomock.Any(), "it-1").Return([]entities.ScheduleItem{
			{ID: "a1", Origin: entities.OriginAgentAdded, Kind: entities.ItemKindActivity, Slot: entities.SlotMorning, DayIndex: 0, Title: "Fado dinner", Price: 60},
		}, nil)

		s, err := uc.LoadSession(context.Background(), "it-1", "item-1", "pkg-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Days) != 2 {
			t.Fatalf("expected 2 days, got %d", len(s.Days))
		}
		// Fresh config defaults to shared mode, quantity 1, zero travelers;
		// the resolver falls back to the only row.
		if s.Config.SelectedRow == nil || s.Config.SelectedRow.RowID != "r1" || s.Config.SelectedRow.Source != entities.SelectionAuto {
			t.Fatalf("expected auto r1 written back, got %+v", s.Config.SelectedRow)
		}
		b := s.Config.Breakdown
		if b.Total != b.BasePrice+b.HotelPrice+b.ActivitiesPrice+b.TransfersPrice {
			t.Fatalf("breakdown does not sum: %+v", b)
		}
		if b.ActivitiesPrice != 60 {
			t.Fatalf("expected agent activity in breakdown, got %+v", b)
		}
		if s.Config.Incomplete {
			t.Fatalf("expected complete configuration")
		}
	})

	t.Run("no pricing rows flags incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		packages := mock_interfaces.NewMockIPackageTemplateRepository(ctrl)
		itineraries := mock_interfaces.NewMockIItineraryRepository(ctrl)
		uc := NewItineraryConfigUseCase(packages, itineraries)

		itineraries.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.ItineraryItem{}, nil)
		packages.EXPECT().ListCities(gomock.Any(), "pkg-1").Return([]entities.CityStop{{ID: "c1", Name: "Lisbon", Nights: 1, Order: 1}}, nil)
		packages.EXPECT().ListSharedPricingRows(gomock.Any(), "pkg-1").Return(nil, nil)
		packages.EXPECT().ListPrivatePricingRows(gomock.Any(), "pkg-1").Return(nil, nil)
		packages.EXPECT().ListHotelOptions(gomock.Any(), []string{"c1"}).Return([]entities.HotelOption{{ID: "h1", CityID: "c1", AdultPrice: 40}}, nil)
		packages.EXPECT().ListDayTemplates(gomock.Any(), "pkg-1").Return(nil, nil)
		itineraries.EXPECT().ListScheduleItems(gomock.Any(), "it-1").Return(nil, nil)

		s, err := uc.LoadSession(context.Background(), "it-1", "item-1", "pkg-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.Config.Incomplete {
			t.Fatalf("expected incomplete configuration")
		}
		if s.Config.Breakdown.BasePrice != 0 {
			t.Fatalf("expected zero base price, got %v", s.Config.Breakdown.BasePrice)
		}
	})
}

func TestItineraryConfigUseCase_Configure(t *testing.T) {
	input := RecomputeInput{Adults: 2, Children: 0, Quantity: 1, PricingMode: entities.PricingModeShared}

	t.Run("saves days, relinks items and writes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		packages := mock_interfaces.NewMockIPackageTemplateRepository(ctrl)
		itineraries := mock_interfaces.NewMockIItineraryRepository(ctrl)
		uc := NewItineraryConfigUseCase(packages, itineraries)

		itineraries.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.ItineraryItem{}, nil)
		expectTemplateReads(packages)
		itineraries.EXPECT().ListScheduleItems(gomock.Any(), "it-1").Return([]entities.ScheduleItem{
			{ID: "a1", Origin: entities.OriginAgentAdded, Kind: entities.ItemKindActivity, Slot: entities.SlotMorning, DayIndex: 0, Title: "Fado dinner", Price: 60},
		}, nil)

		itineraries.EXPECT().ListDays(gomock.Any(), "it-1").Return(nil, nil)
		var createdIDs []string
		itineraries.EXPECT().CreateDay(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, d entities.ItineraryDayRecord) (entities.ItineraryDayRecord, error) {
				createdIDs = append(createdIDs, d.ID)
				return d, nil
			},
		)
		itineraries.EXPECT().RelinkScheduleItem(gomock.Any(), "a1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, dayID string) error {
				if dayID != createdIDs[0] {
					t.Fatalf("expected relink to first day, got %s", dayID)
				}
				return nil
			},
		)
		itineraries.EXPECT().SaveItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.ItineraryItem) (entities.ItineraryItem, error) {
				if len(item.Configuration.DayRecordIDs) != 2 {
					t.Fatalf("expected day record ids persisted, got %+v", item.Configuration.DayRecordIDs)
				}
				// base 180 (exact match) + hotel 80 + activity 60
				if item.UnitPrice != 320 {
					t.Fatalf("expected unit price 320, got %v", item.UnitPrice)
				}
				return item, nil
			},
		)
		itineraries.EXPECT().UpdateItineraryTotal(gomock.Any(), "it-1", 320.0).Return(nil)

		s, report, err := uc.Configure(context.Background(), "it-1", "item-1", "pkg-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Failed {
			t.Fatalf("unexpected failed report: %+v", report)
		}
		if s.Config.SelectedRow == nil || s.Config.SelectedRow.RowID != "r1" {
			t.Fatalf("expected r1 selected, got %+v", s.Config.SelectedRow)
		}
		// list_days is not reported; create x2 + relink + save_item + update_total
		if len(report.Operations) != 5 {
			t.Fatalf("expected 5 operations, got %+v", report.Operations)
		}
	})

	t.Run("total update failure surfaces in report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		packages := mock_interfaces.NewMockIPackageTemplateRepository(ctrl)
		itineraries := mock_interfaces.NewMockIItineraryRepository(ctrl)
		uc := NewItineraryConfigUseCase(packages, itineraries)

		itineraries.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.ItineraryItem{}, nil)
		expectTemplateReads(packages)
		itineraries.EXPECT().ListScheduleItems(gomock.Any(), "it-1").Return(nil, nil)
		itineraries.EXPECT().ListDays(gomock.Any(), "it-1").Return(nil, nil)
		itineraries.EXPECT().CreateDay(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, d entities.ItineraryDayRecord) (entities.ItineraryDayRecord, error) { return d, nil },
		)
		itineraries.EXPECT().SaveItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.ItineraryItem) (entities.ItineraryItem, error) { return item, nil },
		)
		itineraries.EXPECT().UpdateItineraryTotal(gomock.Any(), "it-1", gomock.Any()).Return(errors.New("store down"))

		_, report, err := uc.Configure(context.Background(), "it-1", "item-1", "pkg-1", input)
		if err != nil {
			t.Fatalf("persistence failures must be reported, not returned: %v", err)
		}
		if !report.Failed {
			t.Fatalf("expected failed report")
		}
		var found bool
		for _, op := range report.Operations {
			if op.Op == "update_total" && op.Error == "store down" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected failing update_total op, got %+v", report.Operations)
		}
	})

	t.Run("mode switch drops prior selection", func(t *testing.T) {
		s := ConfigSession{Config: entities.ItineraryConfiguration{
			PricingMode: entities.PricingModeShared,
			SelectedRow: &entities.RowSelection{RowID: "r1", Source: entities.SelectionExplicit},
		}}
		out := ApplyInput(s, RecomputeInput{Quantity: 1, PricingMode: entities.PricingModePrivate})
		if out.Config.SelectedRow != nil {
			t.Fatalf("expected selection cleared on mode switch, got %+v", out.Config.SelectedRow)
		}
	})

	t.Run("hotel override marked and merged", func(t *testing.T) {
		s := ConfigSession{Config: entities.ItineraryConfiguration{
			Hotels: []entities.HotelSelection{{CityID: "c1", HotelID: "h1"}},
		}}
		out := ApplyInput(s, RecomputeInput{Quantity: 1, HotelOverrides: []entities.HotelSelection{{CityID: "c1", HotelID: "h2"}}})
		if len(out.Config.Hotels) != 1 || out.Config.Hotels[0].HotelID != "h2" || !out.Config.Hotels[0].Override {
			t.Fatalf("unexpected hotels: %+v", out.Config.Hotels)
		}
	})
}
