package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tourdesk/internal/domain/entities"
	"tourdesk/internal/usecase/interfaces"
)

var (
	ErrInvalidItineraryID = errors.New("invalid itinerary id")
	ErrInvalidItemID      = errors.New("invalid itinerary item id")
	ErrInvalidPackageID   = errors.New("invalid package id")
)

// ConfigSession is the whole state of one itinerary-item configuration
// session: the read-only template data, the agent's persisted items, the
// generated plan and the resolved pricing. It is passed by value through the
// component functions, each returning an updated session instead of mutating
// shared state.
type ConfigSession struct {
	ItineraryID string
	ItemID      string
	Config      entities.ItineraryConfiguration

	Cities       []entities.CityStop
	SharedRows   []entities.PricingRow
	PrivateRows  []entities.PrivatePricingRow
	HotelOptions []entities.HotelOption
	Templates    []entities.DayTemplate

	AgentItems         []entities.ScheduleItem
	RemovedOperatorIDs []string

	Days    []entities.CanonicalDay
	Pricing PricingResult
}

// RecomputeInput carries the agent's submitted configuration changes.
// SelectedRowID, when set, is an explicit pick; an empty value keeps the
// prior (possibly auto) selection.
type RecomputeInput struct {
	Adults             int
	Children           int
	Quantity           int
	PricingMode        entities.PricingMode
	SelectedRowID      string
	HotelOverrides     []entities.HotelSelection
	RemovedOperatorIDs []string
}

// SaveReport lists every persistence operation a save attempted. A failed
// operation does not roll back the ones before it.
type SaveReport struct {
	Operations []SaveOperation `json:"operations"`
	Failed     bool            `json:"failed"`
}

func (r *SaveReport) add(ops ...SaveOperation) {
	for _, op := range ops {
		if op.Error != "" {
			r.Failed = true
		}
		r.Operations = append(r.Operations, op)
	}
}

// IItineraryConfigUseCase exposes the itinerary configuration engine:
// loading the computed session and applying+saving a configuration change.

type IItineraryConfigUseCase interface {
	LoadSession(ctx context.Context, itineraryID, itemID, packageID string) (ConfigSession, error)
	Configure(ctx context.Context, itineraryID, itemID, packageID string, in RecomputeInput) (ConfigSession, SaveReport, error)
}

type ItineraryConfigUseCase struct {
	packages    interfaces.IPackageTemplateRepository
	itineraries interfaces.IItineraryRepository
}

var _ IItineraryConfigUseCase = (*ItineraryConfigUseCase)(nil)

func NewItineraryConfigUseCase(packages interfaces.IPackageTemplateRepository, itineraries interfaces.IItineraryRepository) *ItineraryConfigUseCase {
	return &ItineraryConfigUseCase{packages: packages, itineraries: itineraries}
}

// LoadSession assembles the session from the package template and the
// persisted itinerary state, then recomputes the plan and pricing. Template
// gaps (no cities, no rows, a city without hotels) degrade to
// zero-contribution and flag the configuration incomplete instead of
// failing.
func (u *ItineraryConfigUseCase) LoadSession(ctx context.Context, itineraryID, itemID, packageID string) (ConfigSession, error) {
	itineraryID = strings.TrimSpace(itineraryID)
	itemID = strings.TrimSpace(itemID)
	packageID = strings.TrimSpace(packageID)
	if itineraryID == "" {
		return ConfigSession{}, ErrInvalidItineraryID
	}
	if itemID == "" {
		return ConfigSession{}, ErrInvalidItemID
	}

	item, err := u.itineraries.GetItem(ctx, itemID)
	if err != nil {
		return ConfigSession{}, err
	}
	cfg := item.Configuration
	if item.ID == "" {
		// First configuration of this item.
		cfg = entities.ItineraryConfiguration{PackageID: packageID, PricingMode: entities.PricingModeShared, Quantity: 1}
	}
	if cfg.PackageID == "" {
		cfg.PackageID = packageID
	}
	if cfg.PackageID == "" {
		return ConfigSession{}, ErrInvalidPackageID
	}

	s := ConfigSession{ItineraryID: itineraryID, ItemID: itemID, Config: cfg}

	if s.Cities, err = u.packages.ListCities(ctx, cfg.PackageID); err != nil {
		return ConfigSession{}, err
	}
	if s.SharedRows, err = u.packages.ListSharedPricingRows(ctx, cfg.PackageID); err != nil {
		return ConfigSession{}, err
	}
	if s.PrivateRows, err = u.packages.ListPrivatePricingRows(ctx, cfg.PackageID); err != nil {
		return ConfigSession{}, err
	}
	cityIDs := make([]string, 0, len(s.Cities))
	for _, c := range s.Cities {
		cityIDs = append(cityIDs, c.ID)
	}
	if s.HotelOptions, err = u.packages.ListHotelOptions(ctx, cityIDs); err != nil {
		return ConfigSession{}, err
	}
	if s.Templates, err = u.packages.ListDayTemplates(ctx, cfg.PackageID); err != nil {
		return ConfigSession{}, err
	}

	items, err := u.itineraries.ListScheduleItems(ctx, itineraryID)
	if err != nil {
		return ConfigSession{}, err
	}
	s.AgentItems = normalizeDayIndexes(items, cfg.DayRecordIDs)

	return recompute(s), nil
}

// Configure applies the submitted input on a freshly loaded session,
// recomputes, and saves: item configuration, reconciled day records, item
// relinks and the itinerary total. Persistence failures surface in the
// report per operation attempted; nothing is rolled back.
func (u *ItineraryConfigUseCase) Configure(ctx context.Context, itineraryID, itemID, packageID string, in RecomputeInput) (ConfigSession, SaveReport, error) {
	s, err := u.LoadSession(ctx, itineraryID, itemID, packageID)
	if err != nil {
		return ConfigSession{}, SaveReport{}, err
	}

	s = ApplyInput(s, in)
	s = recompute(s)

	var report SaveReport

	ids, ops, reconcileErr := ReconcileDays(ctx, u.itineraries, s.ItineraryID, s.Days, s.Config.DayRecordIDs)
	report.add(ops...)
	if reconcileErr == nil {
		s.Config.DayRecordIDs = ids
		report.add(RelinkScheduleItems(ctx, u.itineraries, s.AgentItems, ids)...)
	} else {
		log.Printf("[config][usecase] day reconciliation failed itinerary_id=%s err=%v; relink skipped", s.ItineraryID, reconcileErr)
	}

	item := entities.ItineraryItem{
		ID:            s.ItemID,
		ItineraryID:   s.ItineraryID,
		Configuration: s.Config,
		UnitPrice:     s.Config.Breakdown.Total,
		Quantity:      s.Config.Quantity,
		UpdatedAt:     time.Now().UTC(),
	}
	saveOp := SaveOperation{Op: "save_item", TargetID: s.ItemID}
	if _, err := u.itineraries.SaveItem(ctx, item); err != nil {
		log.Printf("[config][usecase] item save failed item_id=%s err=%v", s.ItemID, err)
		saveOp.Error = err.Error()
	}
	report.add(saveOp)

	totalOp := SaveOperation{Op: "update_total", TargetID: s.ItineraryID}
	if err := u.itineraries.UpdateItineraryTotal(ctx, s.ItineraryID, s.Config.Breakdown.Total); err != nil {
		log.Printf("[config][usecase] total update failed itinerary_id=%s err=%v", s.ItineraryID, err)
		totalOp.Error = err.Error()
	}
	report.add(totalOp)

	log.Printf("[config][usecase] save finished itinerary_id=%s item_id=%s total=%.2f failed=%t", s.ItineraryID, s.ItemID, s.Config.Breakdown.Total, report.Failed)
	return s, report, nil
}

// ApplyInput folds the agent's submitted changes into the session
// configuration without recomputing anything.
func ApplyInput(s ConfigSession, in RecomputeInput) ConfigSession {
	cfg := s.Config
	cfg.Adults = in.Adults
	cfg.Children = in.Children
	cfg.Quantity = in.Quantity
	if cfg.Quantity < 1 {
		cfg.Quantity = 1
	}
	if in.PricingMode != "" {
		if in.PricingMode != cfg.PricingMode {
			// Mode switch invalidates the prior row selection.
			cfg.SelectedRow = nil
		}
		cfg.PricingMode = in.PricingMode
	}
	if id := strings.TrimSpace(in.SelectedRowID); id != "" {
		cfg.SelectedRow = &entities.RowSelection{RowID: id, Source: entities.SelectionExplicit}
	}
	for _, h := range in.HotelOverrides {
		h.Override = true
		replaced := false
		for i := range cfg.Hotels {
			if cfg.Hotels[i].CityID == h.CityID {
				cfg.Hotels[i] = h
				replaced = true
				break
			}
		}
		if !replaced {
			cfg.Hotels = append(cfg.Hotels, h)
		}
	}
	s.Config = cfg
	s.RemovedOperatorIDs = in.RemovedOperatorIDs
	return s
}

// recompute derives the plan and every price from the current inputs. The
// breakdown is rebuilt from zero on each call; there is no accumulator to
// drift.
func recompute(s ConfigSession) ConfigSession {
	cfg := s.Config
	if cfg.Quantity < 1 {
		cfg.Quantity = 1
	}

	days := BuildDayPlan(s.Cities, s.Days)
	days = MergeSchedule(days, s.Templates, s.AgentItems, cfg.DayRecordIDs, s.RemovedOperatorIDs)

	var pricing PricingResult
	if cfg.PricingMode == entities.PricingModePrivate {
		pricing = ResolvePrivatePricing(s.PrivateRows, cfg.Adults, cfg.Children, cfg.Quantity, cfg.SelectedRow)
	} else {
		pricing = ResolveSharedPricing(s.SharedRows, cfg.Adults, cfg.Children, cfg.Quantity, cfg.SelectedRow)
	}
	cfg.SelectedRow = pricing.Selection

	hotels, hotelPrice := SelectHotels(s.Cities, s.HotelOptions, cfg.Adults, cfg.Children, cfg.Hotels)
	cfg.Hotels = hotels

	var activities, transfers float64
	for i := range days {
		for _, slot := range entities.SlotNames {
			ts := days[i].Slot(slot)
			for _, it := range ts.Activities {
				activities += it.Price
			}
			for _, it := range ts.Transfers {
				transfers += it.Price
			}
		}
	}

	cfg.Breakdown = entities.PricingBreakdown{
		BasePrice:       pricing.BasePrice,
		HotelPrice:      hotelPrice,
		ActivitiesPrice: activities,
		TransfersPrice:  transfers,
		Total:           pricing.BasePrice + hotelPrice + activities + transfers,
	}
	cfg.Incomplete = pricing.Incomplete || len(s.Cities) == 0 || cityWithoutHotels(s.Cities, s.HotelOptions)

	s.Config = cfg
	s.Days = days
	s.Pricing = pricing
	return s
}

func cityWithoutHotels(cities []entities.CityStop, options []entities.HotelOption) bool {
	counts := make(map[string]int, len(cities))
	for _, o := range options {
		counts[o.CityID]++
	}
	for _, c := range cities {
		if counts[c.ID] == 0 {
			return true
		}
	}
	return false
}

// normalizeDayIndexes rewrites each persisted item's sequence position from
// its day foreign key, so later joins never rely on list positions from two
// independently fetched lists.
func normalizeDayIndexes(items []entities.ScheduleItem, dayRecordIDs []string) []entities.ScheduleItem {
	pos := make(map[string]int, len(dayRecordIDs))
	for i, id := range dayRecordIDs {
		pos[id] = i
	}
	out := make([]entities.ScheduleItem, 0, len(items))
	for _, it := range items {
		if it.DayID != "" {
			if p, ok := pos[it.DayID]; ok {
				it.DayIndex = p
			}
		}
		out = append(out, it)
	}
	return out
}
