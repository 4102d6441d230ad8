package repository

import (
	"context"
	"encoding/json"
	"time"

	"tourdesk/internal/domain/entities"
	"tourdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultItineraryItemsTableName = "itinerary_items"
	defaultItineraryDaysTableName  = "itinerary_days"
	defaultScheduleItemsTableName  = "itinerary_schedule_items"
	defaultItinerariesTableName    = "itineraries"
	itineraryIDIndex               = "itinerary_id-index"
)

type itineraryItemItem struct {
	ID            string `dynamodbav:"id"`
	ItineraryID   string `dynamodbav:"itinerary_id"`
	Configuration string `dynamodbav:"configuration"`
	UnitPrice     string `dynamodbav:"unit_price"`
	Quantity      int    `dynamodbav:"quantity"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type itineraryDayItem struct {
	ID           string  `dynamodbav:"id"`
	ItineraryID  string  `dynamodbav:"itinerary_id"`
	DayNumber    int     `dynamodbav:"day_number"`
	CityName     string  `dynamodbav:"city_name"`
	SlotsSummary *string `dynamodbav:"slots_summary,omitempty"`
}

type scheduleItemItem struct {
	ID          string  `dynamodbav:"id"`
	ItineraryID string  `dynamodbav:"itinerary_id"`
	DayID       string  `dynamodbav:"day_id,omitempty"`
	DayIndex    int     `dynamodbav:"day_index"`
	Origin      string  `dynamodbav:"origin"`
	Kind        string  `dynamodbav:"kind"`
	Slot        string  `dynamodbav:"time_slot"`
	TemplateRef string  `dynamodbav:"template_ref,omitempty"`
	Title       string  `dynamodbav:"title"`
	Price       float64 `dynamodbav:"price"`
}

// ItineraryDynamoRepository persists itinerary state in DynamoDB.
//
// Table requirements:
//   - itinerary_items: PK id (string)
//   - itinerary_days: PK id (string), GSI itinerary_id-index (PK: itinerary_id)
//   - itinerary_schedule_items: PK id (string), GSI itinerary_id-index (PK: itinerary_id)
//   - itineraries: PK id (string)
//
// The item configuration is stored as one JSON document: it is always read
// and written whole, so there is nothing to update field by field.

type ItineraryDynamoRepository struct {
	ddb            *dynamodb.Client
	itemsTable     string
	daysTable      string
	scheduleTable  string
	itinerariesTbl string
}

var _ interfaces.IItineraryRepository = (*ItineraryDynamoRepository)(nil)

func NewItineraryDynamoRepository(ddb *dynamodb.Client) *ItineraryDynamoRepository {
	return &ItineraryDynamoRepository{
		ddb:            ddb,
		itemsTable:     getenvDefault("ITINERARY_ITEMS_TABLE", defaultItineraryItemsTableName),
		daysTable:      getenvDefault("ITINERARY_DAYS_TABLE", defaultItineraryDaysTableName),
		scheduleTable:  getenvDefault("SCHEDULE_ITEMS_TABLE", defaultScheduleItemsTableName),
		itinerariesTbl: getenvDefault("ITINERARIES_TABLE", defaultItinerariesTableName),
	}
}

func (r *ItineraryDynamoRepository) GetItem(ctx context.Context, itemID string) (entities.ItineraryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.itemsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ItineraryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.ItineraryItem{}, nil
	}

	var it itineraryItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ItineraryItem{}, err
	}
	return fromItineraryItemItem(it)
}

func (r *ItineraryDynamoRepository) SaveItem(ctx context.Context, item entities.ItineraryItem) (entities.ItineraryItem, error) {
	it, err := toItineraryItemItem(item)
	if err != nil {
		return entities.ItineraryItem{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ItineraryItem{}, err
	}

	// Saves are upserts: the first save creates the item record.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.itemsTable),
		Item:      av,
	})
	if err != nil {
		return entities.ItineraryItem{}, err
	}
	return item, nil
}

func (r *ItineraryDynamoRepository) ListDays(ctx context.Context, itineraryID string) ([]entities.ItineraryDayRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.daysTable),
		IndexName:              aws.String(itineraryIDIndex),
		KeyConditionExpression: aws.String("itinerary_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: itineraryID},
		},
	})
	if err != nil {
		return nil, err
	}

	days := make([]entities.ItineraryDayRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it itineraryDayItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		days = append(days, fromItineraryDayItem(it))
	}
	return days, nil
}

func (r *ItineraryDynamoRepository) CreateDay(ctx context.Context, d entities.ItineraryDayRecord) (entities.ItineraryDayRecord, error) {
	av, err := attributevalue.MarshalMap(itineraryDayItem{
		ID:           d.ID,
		ItineraryID:  d.ItineraryID,
		DayNumber:    d.DayNumber,
		CityName:     d.CityName,
		SlotsSummary: d.SlotsSummary,
	})
	if err != nil {
		return entities.ItineraryDayRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.daysTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ItineraryDayRecord{}, err
	}
	return d, nil
}

func (r *ItineraryDynamoRepository) UpdateDay(ctx context.Context, dayID, cityName string, slotsSummary *string) (entities.ItineraryDayRecord, error) {
	expr := "SET #city_name = :city_name"
	vals := map[string]types.AttributeValue{
		":city_name": &types.AttributeValueMemberS{Value: cityName},
	}
	names := map[string]string{
		"#city_name": "city_name",
	}
	if slotsSummary != nil {
		expr += ", #slots_summary = :slots_summary"
		vals[":slots_summary"] = &types.AttributeValueMemberS{Value: *slotsSummary}
		names["#slots_summary"] = "slots_summary"
	} else {
		expr += " REMOVE #slots_summary"
		names["#slots_summary"] = "slots_summary"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.daysTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: dayID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ItineraryDayRecord{}, err
	}

	var it itineraryDayItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ItineraryDayRecord{}, err
	}
	return fromItineraryDayItem(it), nil
}

func (r *ItineraryDynamoRepository) ListScheduleItems(ctx context.Context, itineraryID string) ([]entities.ScheduleItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.scheduleTable),
		IndexName:              aws.String(itineraryIDIndex),
		KeyConditionExpression: aws.String("itinerary_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: itineraryID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ScheduleItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it scheduleItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromScheduleItemItem(it))
	}
	return items, nil
}

func (r *ItineraryDynamoRepository) CreateScheduleItem(ctx context.Context, item entities.ScheduleItem) (entities.ScheduleItem, error) {
	av, err := attributevalue.MarshalMap(toScheduleItemItem(item))
	if err != nil {
		return entities.ScheduleItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.scheduleTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ScheduleItem{}, err
	}
	return item, nil
}

func (r *ItineraryDynamoRepository) RelinkScheduleItem(ctx context.Context, itemID, dayID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.scheduleTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #day_id = :day_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":day_id": &types.AttributeValueMemberS{Value: dayID},
		},
		ExpressionAttributeNames: map[string]string{
			"#day_id": "day_id",
			"#id":     "id",
		},
	})
	return err
}

func (r *ItineraryDynamoRepository) DeleteScheduleItem(ctx context.Context, itemID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.scheduleTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
	})
	return err
}

func (r *ItineraryDynamoRepository) GetItineraryTotal(ctx context.Context, itineraryID string) (float64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.itinerariesTbl),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itineraryID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	var it struct {
		TotalPrice float64 `dynamodbav:"total_price"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	return it.TotalPrice, nil
}

func (r *ItineraryDynamoRepository) UpdateItineraryTotal(ctx context.Context, itineraryID string, totalPrice float64) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.itinerariesTbl),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itineraryID},
		},
		UpdateExpression: aws.String("SET #total_price = :total_price, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":total_price": &types.AttributeValueMemberN{Value: floatToString(totalPrice)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#total_price": "total_price",
			"#updated_at":  "updated_at",
		},
	})
	return err
}

func toItineraryItemItem(item entities.ItineraryItem) (itineraryItemItem, error) {
	cfg, err := json.Marshal(item.Configuration)
	if err != nil {
		return itineraryItemItem{}, err
	}
	return itineraryItemItem{
		ID:            item.ID,
		ItineraryID:   item.ItineraryID,
		Configuration: string(cfg),
		UnitPrice:     floatToString(item.UnitPrice),
		Quantity:      item.Quantity,
		UpdatedAt:     item.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromItineraryItemItem(it itineraryItemItem) (entities.ItineraryItem, error) {
	var cfg entities.ItineraryConfiguration
	if it.Configuration != "" {
		if err := json.Unmarshal([]byte(it.Configuration), &cfg); err != nil {
			return entities.ItineraryItem{}, err
		}
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	unitPrice, _ := parseFloat(it.UnitPrice)
	return entities.ItineraryItem{
		ID:            it.ID,
		ItineraryID:   it.ItineraryID,
		Configuration: cfg,
		UnitPrice:     unitPrice,
		Quantity:      it.Quantity,
		UpdatedAt:     updatedAt,
	}, nil
}

func fromItineraryDayItem(it itineraryDayItem) entities.ItineraryDayRecord {
	return entities.ItineraryDayRecord{
		ID:           it.ID,
		ItineraryID:  it.ItineraryID,
		DayNumber:    it.DayNumber,
		CityName:     it.CityName,
		SlotsSummary: it.SlotsSummary,
	}
}

func toScheduleItemItem(item entities.ScheduleItem) scheduleItemItem {
	return scheduleItemItem{
		ID:          item.ID,
		ItineraryID: item.ItineraryID,
		DayID:       item.DayID,
		DayIndex:    item.DayIndex,
		Origin:      string(item.Origin),
		Kind:        string(item.Kind),
		Slot:        string(item.Slot),
		TemplateRef: item.TemplateRef,
		Title:       item.Title,
		Price:       item.Price,
	}
}

func fromScheduleItemItem(it scheduleItemItem) entities.ScheduleItem {
	return entities.ScheduleItem{
		ID:          it.ID,
		ItineraryID: it.ItineraryID,
		DayID:       it.DayID,
		DayIndex:    it.DayIndex,
		Origin:      entities.ItemOrigin(it.Origin),
		Kind:        entities.ItemKind(it.Kind),
		Slot:        entities.SlotName(it.Slot),
		TemplateRef: it.TemplateRef,
		Title:       it.Title,
		Price:       it.Price,
	}
}
