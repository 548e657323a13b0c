package bookings

import (
	"yelloride/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes - submission flow
	bookings := router.Group("/bookings")
	{
		bookings.POST("", controller.Submit)
		bookings.POST("/quote", controller.Quote)
		bookings.GET("/:number", controller.Get) // lookup by booking number
	}

	// Admin routes - operations on the booking ledger
	adminBookings := router.Group("/admin/bookings")
	adminBookings.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminBookings.GET("", controller.List)
		adminBookings.POST("/:id/cancel", controller.Cancel)
		adminBookings.POST("/:id/complete", controller.Complete)
	}
}
