package handlers

import (
	"errors"
	"log"
	"net/http"

	request "tourdesk/internal/adapter/http/dto/request"
	response "tourdesk/internal/adapter/http/dto/response"
	"tourdesk/internal/domain/entities"
	"tourdesk/internal/usecase"
	"tourdesk/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConfigurationPayload = pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", "Invalid configuration payload", http.StatusBadRequest)

// ConfigurationHandler handles HTTP requests for itinerary item
// configuration sessions.

type ConfigurationHandler struct {
	usecase usecase.IItineraryConfigUseCase
}

func NewConfigurationHandler(uc usecase.IItineraryConfigUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{usecase: uc}
}

// GetConfiguration loads the computed session: the generated day plan with
// merged slots, resolved pricing and hotel selections.
func (h *ConfigurationHandler) GetConfiguration(c *gin.Context) {
	itineraryID := c.Param("itinerary_id")
	itemID := c.Param("item_id")
	packageID := c.Query("package_id")
	log.Printf("[config][handler] load start itinerary_id=%s item_id=%s", itineraryID, itemID)

	s, err := h.usecase.LoadSession(c.Request.Context(), itineraryID, itemID, packageID)
	if err != nil {
		log.Printf("[config][handler] load failed itinerary_id=%s item_id=%s err=%v", itineraryID, itemID, err)
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConfigSession(s))
}

// PutConfiguration recomputes with the submitted input and saves: item
// configuration, reconciled day records, relinked items and the itinerary
// total. The save report is returned alongside the new session; a partially
// failed save still answers 200 with the failed operations listed.
func (h *ConfigurationHandler) PutConfiguration(c *gin.Context) {
	itineraryID := c.Param("itinerary_id")
	itemID := c.Param("item_id")

	var payload request.ItineraryConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	in := usecase.RecomputeInput{
		Adults:             payload.Adults,
		Children:           payload.Children,
		Quantity:           payload.Quantity,
		PricingMode:        entities.PricingMode(payload.ResolvePricingMode()),
		SelectedRowID:      payload.SelectedRowID,
		RemovedOperatorIDs: payload.RemovedOperatorItemIDs,
	}
	if in.PricingMode != "" && in.PricingMode != entities.PricingModeShared && in.PricingMode != entities.PricingModePrivate {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}
	for _, o := range payload.HotelOverrides {
		in.HotelOverrides = append(in.HotelOverrides, entities.HotelSelection{CityID: o.CityID, HotelID: o.HotelID})
	}

	log.Printf("[config][handler] save start itinerary_id=%s item_id=%s adults=%d children=%d quantity=%d mode=%s", itineraryID, itemID, in.Adults, in.Children, in.Quantity, in.PricingMode)
	s, report, err := h.usecase.Configure(c.Request.Context(), itineraryID, itemID, payload.ResolvePackageID(), in)
	if err != nil {
		log.Printf("[config][handler] save failed itinerary_id=%s item_id=%s err=%v", itineraryID, itemID, err)
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[config][handler] save success itinerary_id=%s item_id=%s total=%.2f failed_ops=%t", itineraryID, itemID, s.Config.Breakdown.Total, report.Failed)

	c.JSON(http.StatusOK, response.FromConfigSave(s, report))
}

func mapConfigurationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItineraryID), errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidPackageID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
