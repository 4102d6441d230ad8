package routes

import (
	"tourdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathItineraries   = "/itineraries"
	PathScheduleItems = "/schedule-items"
	PathDeposits      = "/deposits"
)

func addItineraryRoutes(rg *gin.RouterGroup, configHandler *handlers.ConfigurationHandler, scheduleHandler *handlers.ScheduleHandler, depositHandler *handlers.DepositHandler) {
	itineraries := rg.Group(PathItineraries)
	{
		itineraries.GET("/:itinerary_id/items/:item_id/configuration", configHandler.GetConfiguration)
		itineraries.PUT("/:itinerary_id/items/:item_id/configuration", configHandler.PutConfiguration)
		itineraries.POST("/:itinerary_id/items/:item_id/schedule-items", scheduleHandler.AddScheduleItem)
	}

	scheduleItems := rg.Group(PathScheduleItems)
	{
		scheduleItems.DELETE("/:schedule_item_id", scheduleHandler.DeleteScheduleItem)
	}

	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("/:itinerary_id", depositHandler.CreateDeposit)
		deposits.GET("/:itinerary_id", depositHandler.GetLatestDeposit)
	}
}
