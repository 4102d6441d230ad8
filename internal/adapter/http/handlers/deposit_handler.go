package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "tourdesk/internal/adapter/http/dto/response"
	"tourdesk/internal/usecase"
	"tourdesk/pkg"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles HTTP requests for itinerary deposits.

type DepositHandler struct {
	usecase usecase.IDepositPaymentUseCase
}

func NewDepositHandler(uc usecase.IDepositPaymentUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

// CreateDeposit collects a deposit against the itinerary's saved total.
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	itineraryID := c.Param("itinerary_id")
	log.Printf("[deposit][handler] create start itinerary_id=%s", itineraryID)
	mockMode := isPaymentGatewayMockEnabled()

	providerPayload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[deposit][handler] payload invalid in mock mode; fallback to empty payload itinerary_id=%s err=%v", itineraryID, err)
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][handler] invalid payload itinerary_id=%s err=%v", itineraryID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateForItinerary(c.Request.Context(), itineraryID, providerPayload)
	if err != nil {
		log.Printf("[deposit][handler] create failed itinerary_id=%s err=%v", itineraryID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] create success itinerary_id=%s deposit_id=%s amount=%.2f", itineraryID, created.ID, created.Amount)

	c.JSON(http.StatusOK, response.FromDeposit(created))
}

// GetLatestDeposit returns the most recent deposit for an itinerary.
func (h *DepositHandler) GetLatestDeposit(c *gin.Context) {
	itineraryID := c.Param("itinerary_id")
	log.Printf("[deposit][handler] get-latest start itinerary_id=%s", itineraryID)

	deposits, err := h.usecase.ListByItineraryID(c.Request.Context(), itineraryID)
	if err != nil {
		log.Printf("[deposit][handler] get-latest failed itinerary_id=%s err=%v", itineraryID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(deposits) == 0 {
		log.Printf("[deposit][handler] get-latest not-found itinerary_id=%s", itineraryID)
		appErr := pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := deposits[0]
	for _, p := range deposits[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[deposit][handler] get-latest success itinerary_id=%s deposit_id=%s status=%s", itineraryID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromDeposit(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositItineraryID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrItineraryNotPriced):
		return pkg.NewDomainErrorSimple("ITINERARY_NOT_PRICED", "Itinerary has no saved total", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
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
