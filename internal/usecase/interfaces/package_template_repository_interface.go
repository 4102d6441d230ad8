package interfaces

import (
	"context"

	"tourdesk/internal/domain/entities"
)

// IPackageTemplateRepository abstracts read-only access to published travel
// package templates.
//
// Templates (cities, pricing tables, hotel options, day schedules) are owned
// by the package-authoring surface; this engine only reads them.

type IPackageTemplateRepository interface {
	ListCities(ctx context.Context, packageID string) ([]entities.CityStop, error)
	ListSharedPricingRows(ctx context.Context, packageID string) ([]entities.PricingRow, error)
	ListPrivatePricingRows(ctx context.Context, packageID string) ([]entities.PrivatePricingRow, error)
	ListHotelOptions(ctx context.Context, cityIDs []string) ([]entities.HotelOption, error)
	ListDayTemplates(ctx context.Context, packageID string) ([]entities.DayTemplate, error)
	GetItemPricingRule(ctx context.Context, packageID string) (entities.ItemPricingRule, error)
}
