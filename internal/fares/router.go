package fares

import (
	"yelloride/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupFareRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes - the booking flow polls these while the user picks locations
	router.GET("/regions", controller.GetRegions)
	router.GET("/route", controller.FindRoute)

	routes := router.Group("/routes")
	{
		routes.GET("/:region/departures", controller.GetDepartures) // GET /api/v1/routes/:region/departures
		routes.GET("/:region/arrivals", controller.GetArrivals)     // GET /api/v1/routes/:region/arrivals?departure=
	}

	// Admin routes - fare table management
	adminFares := router.Group("/admin/fares")
	adminFares.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminFares.GET("", controller.ListFares)
		adminFares.POST("", controller.CreateFare)
		adminFares.PUT("/:id", controller.UpdateFare)
		adminFares.DELETE("/:id", controller.DeleteFare)
	}
}
