package interfaces

import (
	"context"

	"tourdesk/internal/domain/entities"
)

// IDepositRepository abstracts DynamoDB persistence for DepositPayment.

type IDepositRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByItineraryID(ctx context.Context, itineraryID string) ([]entities.DepositPayment, error)
}
