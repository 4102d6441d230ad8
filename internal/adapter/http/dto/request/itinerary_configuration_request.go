package request

import "strings"

type HotelOverrideRequest struct {
	CityID  string `json:"city_id" binding:"required"`
	HotelID string `json:"hotel_id" binding:"required"`
}

// ItineraryConfigurationRequest is the agent-submitted configuration change.
// Zero traveler counts are valid (the resolver falls back); quantity below 1
// is normalized by the use case.
type ItineraryConfigurationRequest struct {
	PackageID              string                 `json:"package_id"`
	Adults                 int                    `json:"adults"`
	Children               int                    `json:"children"`
	Quantity               int                    `json:"quantity"`
	PricingMode            string                 `json:"pricing_mode"`
	SelectedRowID          string                 `json:"selected_row_id"`
	HotelOverrides         []HotelOverrideRequest `json:"hotel_overrides"`
	RemovedOperatorItemIDs []string               `json:"removed_operator_item_ids"`
}

func (r ItineraryConfigurationRequest) ResolvePackageID() string {
	return strings.TrimSpace(r.PackageID)
}

func (r ItineraryConfigurationRequest) ResolvePricingMode() string {
	return strings.ToLower(strings.TrimSpace(r.PricingMode))
}
