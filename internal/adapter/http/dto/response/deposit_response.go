package response

import (
	"time"

	"tourdesk/internal/domain/entities"
)

type DepositResponse struct {
	DepositID   string    `json:"deposit_id"`
	ID          string    `json:"id"`
	ItineraryID string    `json:"itinerary_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDeposit(p entities.DepositPayment) DepositResponse {
	return DepositResponse{
		DepositID:          p.ID,
		ID:                 p.ID,
		ItineraryID:        p.ItineraryID,
		Amount:             p.Amount,
		PaymentDate:        p.Date,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
