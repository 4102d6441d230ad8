package entities

import (
	"encoding/json"
	"time"
)

// DepositStatus represents the deposit processing outcome.

type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusDenied   DepositStatus = "denied"
)

// DepositPayment is a customer deposit collected against a configured
// itinerary.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (itinerary_id-index): itinerary_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type DepositPayment struct {
	ID          string        `json:"id"`
	ItineraryID string        `json:"itinerary_id"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
	Status      DepositStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
