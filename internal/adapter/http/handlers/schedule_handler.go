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

var errInvalidScheduleItemPayload = pkg.NewDomainErrorSimple("INVALID_SCHEDULE_ITEM_INPUT", "Invalid schedule item payload", http.StatusBadRequest)

// ScheduleHandler handles HTTP requests for agent-added schedule items.
//
// Adding needs the item's current configuration (traveler counts drive the
// rule-based price), so the handler loads the session before delegating.

type ScheduleHandler struct {
	schedule usecase.IScheduleUseCase
	config   usecase.IItineraryConfigUseCase
}

func NewScheduleHandler(schedule usecase.IScheduleUseCase, config usecase.IItineraryConfigUseCase) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule, config: config}
}

// AddScheduleItem persists one agent item into a day's time slot.
func (h *ScheduleHandler) AddScheduleItem(c *gin.Context) {
	itineraryID := c.Param("itinerary_id")
	itemID := c.Param("item_id")

	var payload request.ScheduleItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScheduleItemPayload.HTTPStatus, errInvalidScheduleItemPayload.ToHTTPError())
		return
	}
	log.Printf("[schedule][handler] add start itinerary_id=%s item_id=%s slot=%s kind=%s", itineraryID, itemID, payload.ResolveTimeSlot(), payload.ResolveKind())

	s, err := h.config.LoadSession(c.Request.Context(), itineraryID, itemID, payload.PackageID)
	if err != nil {
		log.Printf("[schedule][handler] session load failed itinerary_id=%s item_id=%s err=%v", itineraryID, itemID, err)
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.schedule.AddItem(c.Request.Context(), itineraryID, s.Config, usecase.AddScheduleItemInput{
		DayIndex:    payload.DayIndex,
		Slot:        entities.SlotName(payload.ResolveTimeSlot()),
		Kind:        entities.ItemKind(payload.ResolveKind()),
		Title:       payload.Title,
		TemplateRef: payload.TemplateRef,
	})
	if err != nil {
		log.Printf("[schedule][handler] add failed itinerary_id=%s item_id=%s err=%v", itineraryID, itemID, err)
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[schedule][handler] add success itinerary_id=%s schedule_item_id=%s price=%.2f", itineraryID, created.ID, created.Price)

	c.JSON(http.StatusCreated, response.FromScheduleItem(created))
}

// DeleteScheduleItem removes a persisted agent item. Operator template
// entries answer 409: they have no backing record to delete.
func (h *ScheduleHandler) DeleteScheduleItem(c *gin.Context) {
	scheduleItemID := c.Param("schedule_item_id")
	log.Printf("[schedule][handler] delete start schedule_item_id=%s", scheduleItemID)

	if err := h.schedule.RemoveItem(c.Request.Context(), scheduleItemID); err != nil {
		log.Printf("[schedule][handler] delete failed schedule_item_id=%s err=%v", scheduleItemID, err)
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[schedule][handler] delete success schedule_item_id=%s", scheduleItemID)

	c.Status(http.StatusNoContent)
}

func mapScheduleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItineraryID),
		errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidPackageID),
		errors.Is(err, usecase.ErrInvalidScheduleItemID),
		errors.Is(err, usecase.ErrInvalidScheduleItemTitle),
		errors.Is(err, usecase.ErrInvalidTimeSlot),
		errors.Is(err, usecase.ErrInvalidItemKind),
		errors.Is(err, usecase.ErrInvalidDayIndex):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOperatorItemImmutable):
		return pkg.NewDomainErrorSimple("OPERATOR_ITEM_IMMUTABLE", "Operator template items cannot be deleted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
