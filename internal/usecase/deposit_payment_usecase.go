package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"tourdesk/internal/domain/entities"
	"tourdesk/internal/usecase/interfaces"
)

var (
	ErrDepositNotFound            = errors.New("deposit not found")
	ErrInvalidDepositItineraryID  = errors.New("invalid itinerary_id")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrItineraryNotPriced         = errors.New("itinerary has no saved total")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IDepositPaymentUseCase collects a customer deposit against a configured
// itinerary. The itinerary must carry a non-zero saved total; the total is
// the source of truth for the charged amount, whatever the caller put in the
// provider payload.

type IDepositPaymentUseCase interface {
	CreateForItinerary(ctx context.Context, itineraryID string, providerPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByItineraryID(ctx context.Context, itineraryID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo        interfaces.IDepositRepository
	itineraries interfaces.IItineraryRepository
	gateway     interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositRepository, itineraries interfaces.IItineraryRepository, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, itineraries: itineraries, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateForItinerary(ctx context.Context, itineraryID string, providerPayload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[deposit][usecase] create start raw_itinerary_id=%q payload_len=%d", itineraryID, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()
	itineraryID = strings.TrimSpace(itineraryID)
	if itineraryID == "" {
		return entities.DepositPayment{}, ErrInvalidDepositItineraryID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[deposit][usecase] invalid payload itinerary_id=%s", itineraryID)
			return entities.DepositPayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}

	total, err := u.itineraries.GetItineraryTotal(ctx, itineraryID)
	if err != nil {
		log.Printf("[deposit][usecase] total lookup failed itinerary_id=%s err=%v", itineraryID, err)
		return entities.DepositPayment{}, err
	}
	if total <= 0 {
		log.Printf("[deposit][usecase] itinerary not priced itinerary_id=%s total=%.2f", itineraryID, total)
		return entities.DepositPayment{}, ErrItineraryNotPriced
	}

	// The provider reconciles events through external_reference; the charged
	// amount always comes from the saved itinerary total.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = itineraryID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Itinerary deposit %s", itineraryID)
		}
		reqMap["transaction_amount"] = total
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	var (
		providerPaymentID string
		providerResp      json.RawMessage
	)
	if mockMode {
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{
			"id":                 providerPaymentID,
			"status":             "approved",
			"status_detail":      "accredited",
			"date_created":       now,
			"date_approved":      now,
			"external_reference": itineraryID,
			"transaction_amount": total,
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.DepositPayment{}, mErr
		}
		providerResp = b
		log.Printf("[deposit][usecase] mock mode enabled; skipping payment gateway itinerary_id=%s", itineraryID)
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, providerPayload)
		if err != nil {
			log.Printf("[deposit][usecase] gateway failed itinerary_id=%s err=%v", itineraryID, err)
			if isGatewayUnauthorized(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.DepositPayment{}, err
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed itinerary_id=%s err=%v", itineraryID, err)
	}

	p := entities.DepositPayment{
		ID:                 providerPaymentID,
		ItineraryID:        itineraryID,
		Amount:             total,
		Date:               time.Now().UTC(),
		Status:             entities.DepositStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[deposit][usecase] repository create failed itinerary_id=%s deposit_id=%s err=%v", itineraryID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[deposit][usecase] create success itinerary_id=%s deposit_id=%s amount=%.2f", itineraryID, created.ID, created.Amount)
	return created, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid deposit id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByItineraryID(ctx context.Context, itineraryID string) ([]entities.DepositPayment, error) {
	itineraryID = strings.TrimSpace(itineraryID)
	if itineraryID == "" {
		return nil, ErrInvalidDepositItineraryID
	}
	return u.repo.ListByItineraryID(ctx, itineraryID)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
