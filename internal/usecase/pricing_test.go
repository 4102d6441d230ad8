package usecase

import (
	"testing"

	"tourdesk/internal/domain/entities"
)

func sharedRows() []entities.PricingRow {
	return []entities.PricingRow{
		{ID: "r1", Adults: 1, Children: 0, TotalPrice: 100},
		{ID: "r2", Adults: 2, Children: 0, TotalPrice: 180},
		{ID: "r3", Adults: 4, Children: 0, TotalPrice: 300},
	}
}

func TestResolveSharedPricing(t *testing.T) {
	t.Run("empty table flags incomplete", func(t *testing.T) {
		res := ResolveSharedPricing(nil, 2, 0, 1, nil)
		if !res.Incomplete || res.BasePrice != 0 || res.Selection != nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("exact match", func(t *testing.T) {
		res := ResolveSharedPricing(sharedRows(), 2, 0, 1, nil)
		if res.Selection == nil || res.Selection.RowID != "r2" {
			t.Fatalf("expected r2, got %+v", res.Selection)
		}
		if res.BasePrice != 180 {
			t.Fatalf("expected 180, got %v", res.BasePrice)
		}
		if res.Selection.Source != entities.SelectionAuto {
			t.Fatalf("expected auto selection, got %s", res.Selection.Source)
		}
	})

	t.Run("capacity superset beats last-row fallback", func(t *testing.T) {
		res := ResolveSharedPricing(sharedRows(), 3, 0, 1, nil)
		if res.Selection == nil || res.Selection.RowID != "r3" {
			t.Fatalf("expected r3 (first row with adults>=3), got %+v", res.Selection)
		}
		if res.BasePrice != 300 {
			t.Fatalf("expected 300, got %v", res.BasePrice)
		}
	})

	t.Run("last row fallback", func(t *testing.T) {
		res := ResolveSharedPricing(sharedRows(), 9, 0, 1, nil)
		if res.Selection == nil || res.Selection.RowID != "r3" {
			t.Fatalf("expected last row, got %+v", res.Selection)
		}
	})

	t.Run("prior selection honored while it exists", func(t *testing.T) {
		prior := &entities.RowSelection{RowID: "r1", Source: entities.SelectionExplicit}
		res := ResolveSharedPricing(sharedRows(), 2, 0, 1, prior)
		if res.Selection == nil || res.Selection.RowID != "r1" || res.Selection.Source != entities.SelectionExplicit {
			t.Fatalf("expected explicit r1 kept, got %+v", res.Selection)
		}
		if res.BasePrice != 100 {
			t.Fatalf("expected 100, got %v", res.BasePrice)
		}
	})

	t.Run("stale prior ignored", func(t *testing.T) {
		prior := &entities.RowSelection{RowID: "gone", Source: entities.SelectionExplicit}
		res := ResolveSharedPricing(sharedRows(), 2, 0, 1, prior)
		if res.Selection == nil || res.Selection.RowID != "r2" {
			t.Fatalf("expected r2, got %+v", res.Selection)
		}
	})

	t.Run("quantity multiplies base price", func(t *testing.T) {
		res := ResolveSharedPricing(sharedRows(), 2, 0, 3, nil)
		if res.BasePrice != 540 {
			t.Fatalf("expected 540, got %v", res.BasePrice)
		}
	})

	t.Run("auto selection is stable on reload", func(t *testing.T) {
		first := ResolveSharedPricing(sharedRows(), 3, 0, 1, nil)
		second := ResolveSharedPricing(sharedRows(), 3, 0, 1, first.Selection)
		if second.Selection.RowID != first.Selection.RowID {
			t.Fatalf("reload changed selection: %s -> %s", first.Selection.RowID, second.Selection.RowID)
		}
	})
}

func privateRows() []entities.PrivatePricingRow {
	return []entities.PrivatePricingRow{
		{ID: "p1", Adults: 2, Children: 0, VehicleCapacity: 4, CarType: "sedan", TotalPrice: 200},
		{ID: "p2", Adults: 4, Children: 0, VehicleCapacity: 6, CarType: "van", TotalPrice: 300},
	}
}

func TestResolvePrivatePricing(t *testing.T) {
	t.Run("empty table flags incomplete", func(t *testing.T) {
		res := ResolvePrivatePricing(nil, 2, 0, 1, nil)
		if !res.Incomplete || res.Selection != nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("capacity covers whole party", func(t *testing.T) {
		res := ResolvePrivatePricing(privateRows(), 5, 1, 1, nil)
		if res.Selection == nil || res.Selection.RowID != "p2" {
			t.Fatalf("expected p2 (cap 6), got %+v", res.Selection)
		}
		if res.BasePrice != 300 || res.InsufficientCapacity {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("undersized row never auto-selected", func(t *testing.T) {
		res := ResolvePrivatePricing(privateRows(), 5, 0, 1, nil)
		if res.Selection == nil || res.Selection.RowID != "p2" {
			t.Fatalf("expected p2, got %+v", res.Selection)
		}
		if len(res.IneligibleRowIDs) != 1 || res.IneligibleRowIDs[0] != "p1" {
			t.Fatalf("expected p1 ineligible, got %v", res.IneligibleRowIDs)
		}
	})

	t.Run("no qualifying row falls back to last and is flagged", func(t *testing.T) {
		res := ResolvePrivatePricing(privateRows(), 7, 0, 1, nil)
		if res.Selection == nil || res.Selection.RowID != "p2" {
			t.Fatalf("expected last-row fallback, got %+v", res.Selection)
		}
		if res.BasePrice != 300 {
			t.Fatalf("expected 300, got %v", res.BasePrice)
		}
		if !res.InsufficientCapacity {
			t.Fatalf("expected insufficient-capacity flag")
		}
	})

	t.Run("exact match requires sufficient capacity", func(t *testing.T) {
		rows := []entities.PrivatePricingRow{
			{ID: "p1", Adults: 2, Children: 2, VehicleCapacity: 3, TotalPrice: 150},
			{ID: "p2", Adults: 2, Children: 2, VehicleCapacity: 4, TotalPrice: 250},
		}
		res := ResolvePrivatePricing(rows, 2, 2, 1, nil)
		if res.Selection == nil || res.Selection.RowID != "p2" {
			t.Fatalf("expected p2, got %+v", res.Selection)
		}
	})

	t.Run("explicit undersized prior kept but flagged", func(t *testing.T) {
		prior := &entities.RowSelection{RowID: "p1", Source: entities.SelectionExplicit}
		res := ResolvePrivatePricing(privateRows(), 5, 0, 1, prior)
		if res.Selection == nil || res.Selection.RowID != "p1" {
			t.Fatalf("expected prior kept, got %+v", res.Selection)
		}
		if !res.InsufficientCapacity {
			t.Fatalf("expected insufficient-capacity flag for undersized prior")
		}
	})
}
