package repository

import (
	"context"

	"tourdesk/internal/domain/entities"
	"tourdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPackagesTableName     = "packages"
	defaultHotelOptionsTableName = "hotel_options"
	hotelOptionsCityIDIndex      = "city_id-index"
)

type packageCityItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Country string `dynamodbav:"country"`
	Nights  int    `dynamodbav:"nights"`
	Order   int    `dynamodbav:"order"`
}

type packagePricingRowItem struct {
	ID         string  `dynamodbav:"id"`
	Adults     int     `dynamodbav:"adults"`
	Children   int     `dynamodbav:"children"`
	TotalPrice float64 `dynamodbav:"total_price"`
}

type packagePrivateRowItem struct {
	ID              string  `dynamodbav:"id"`
	Adults          int     `dynamodbav:"adults"`
	Children        int     `dynamodbav:"children"`
	VehicleCapacity int     `dynamodbav:"vehicle_capacity"`
	CarType         string  `dynamodbav:"car_type"`
	TotalPrice      float64 `dynamodbav:"total_price"`
}

type packageSlotItem struct {
	Activities []string `dynamodbav:"activities"`
	Transfers  []string `dynamodbav:"transfers"`
}

type packageDayTemplateItem struct {
	DayNumber int             `dynamodbav:"day_number"`
	CityID    string          `dynamodbav:"city_id"`
	Morning   packageSlotItem `dynamodbav:"morning"`
	Afternoon packageSlotItem `dynamodbav:"afternoon"`
	Evening   packageSlotItem `dynamodbav:"evening"`
}

type packageItemRuleItem struct {
	FlatPrice         float64 `dynamodbav:"flat_price"`
	AdultRate         float64 `dynamodbav:"adult_rate"`
	ChildRate         float64 `dynamodbav:"child_rate"`
	TransferSurcharge float64 `dynamodbav:"transfer_surcharge"`
}

type packageItem struct {
	ID           string                   `dynamodbav:"id"`
	Cities       []packageCityItem        `dynamodbav:"cities"`
	SharedRows   []packagePricingRowItem  `dynamodbav:"shared_rows"`
	PrivateRows  []packagePrivateRowItem  `dynamodbav:"private_rows"`
	DayTemplates []packageDayTemplateItem `dynamodbav:"day_templates"`
	ItemRule     *packageItemRuleItem     `dynamodbav:"item_pricing_rule,omitempty"`
}

type hotelOptionItem struct {
	ID         string  `dynamodbav:"id"`
	CityID     string  `dynamodbav:"city_id"`
	Name       string  `dynamodbav:"name"`
	AdultPrice float64 `dynamodbav:"adult_price"`
	ChildPrice float64 `dynamodbav:"child_price"`
}

// PackageTemplateDynamoRepository reads published package templates from
// DynamoDB.
//
// Table requirements:
//   - packages: PK id (string); the whole template document lives on one item
//   - hotel_options: PK id (string), GSI city_id-index (PK: city_id)
//
// Templates are authored elsewhere and only read here, so a missing package
// resolves to empty lists rather than an error; the engine flags the
// configuration incomplete.

type PackageTemplateDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	hotelsTable string
}

var _ interfaces.IPackageTemplateRepository = (*PackageTemplateDynamoRepository)(nil)

func NewPackageTemplateDynamoRepository(ddb *dynamodb.Client) *PackageTemplateDynamoRepository {
	return &PackageTemplateDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
		hotelsTable: getenvDefault("HOTEL_OPTIONS_TABLE", defaultHotelOptionsTableName),
	}
}

func (r *PackageTemplateDynamoRepository) load(ctx context.Context, packageID string) (packageItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: packageID},
		},
	})
	if err != nil {
		return packageItem{}, err
	}
	if len(out.Item) == 0 {
		return packageItem{}, nil
	}

	var it packageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return packageItem{}, err
	}
	return it, nil
}

func (r *PackageTemplateDynamoRepository) ListCities(ctx context.Context, packageID string) ([]entities.CityStop, error) {
	it, err := r.load(ctx, packageID)
	if err != nil {
		return nil, err
	}
	cities := make([]entities.CityStop, 0, len(it.Cities))
	for _, c := range it.Cities {
		cities = append(cities, entities.CityStop{
			ID:      c.ID,
			Name:    c.Name,
			Country: c.Country,
			Nights:  c.Nights,
			Order:   c.Order,
		})
	}
	return cities, nil
}

func (r *PackageTemplateDynamoRepository) ListSharedPricingRows(ctx context.Context, packageID string) ([]entities.PricingRow, error) {
	it, err := r.load(ctx, packageID)
	if err != nil {
		return nil, err
	}
	rows := make([]entities.PricingRow, 0, len(it.SharedRows))
	for _, row := range it.SharedRows {
		rows = append(rows, entities.PricingRow{
			ID:         row.ID,
			Adults:     row.Adults,
			Children:   row.Children,
			TotalPrice: row.TotalPrice,
		})
	}
	return rows, nil
}

func (r *PackageTemplateDynamoRepository) ListPrivatePricingRows(ctx context.Context, packageID string) ([]entities.PrivatePricingRow, error) {
	it, err := r.load(ctx, packageID)
	if err != nil {
		return nil, err
	}
	rows := make([]entities.PrivatePricingRow, 0, len(it.PrivateRows))
	for _, row := range it.PrivateRows {
		rows = append(rows, entities.PrivatePricingRow{
			ID:              row.ID,
			Adults:          row.Adults,
			Children:        row.Children,
			VehicleCapacity: row.VehicleCapacity,
			CarType:         row.CarType,
			TotalPrice:      row.TotalPrice,
		})
	}
	return rows, nil
}

func (r *PackageTemplateDynamoRepository) ListHotelOptions(ctx context.Context, cityIDs []string) ([]entities.HotelOption, error) {
	var options []entities.HotelOption
	for _, cityID := range cityIDs {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.hotelsTable),
			IndexName:              aws.String(hotelOptionsCityIDIndex),
			KeyConditionExpression: aws.String("city_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: cityID},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it hotelOptionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			options = append(options, entities.HotelOption{
				ID:         it.ID,
				CityID:     it.CityID,
				Name:       it.Name,
				AdultPrice: it.AdultPrice,
				ChildPrice: it.ChildPrice,
			})
		}
	}
	return options, nil
}

func (r *PackageTemplateDynamoRepository) ListDayTemplates(ctx context.Context, packageID string) ([]entities.DayTemplate, error) {
	it, err := r.load(ctx, packageID)
	if err != nil {
		return nil, err
	}
	templates := make([]entities.DayTemplate, 0, len(it.DayTemplates))
	for _, d := range it.DayTemplates {
		templates = append(templates, entities.DayTemplate{
			DayNumber: d.DayNumber,
			CityID:    d.CityID,
			Morning:   entities.SlotTemplate{Activities: d.Morning.Activities, Transfers: d.Morning.Transfers},
			Afternoon: entities.SlotTemplate{Activities: d.Afternoon.Activities, Transfers: d.Afternoon.Transfers},
			Evening:   entities.SlotTemplate{Activities: d.Evening.Activities, Transfers: d.Evening.Transfers},
		})
	}
	return templates, nil
}

func (r *PackageTemplateDynamoRepository) GetItemPricingRule(ctx context.Context, packageID string) (entities.ItemPricingRule, error) {
	it, err := r.load(ctx, packageID)
	if err != nil {
		return entities.ItemPricingRule{}, err
	}
	if it.ItemRule == nil {
		return entities.ItemPricingRule{}, nil
	}
	return entities.ItemPricingRule{
		FlatPrice:         it.ItemRule.FlatPrice,
		AdultRate:         it.ItemRule.AdultRate,
		ChildRate:         it.ItemRule.ChildRate,
		TransferSurcharge: it.ItemRule.TransferSurcharge,
	}, nil
}
