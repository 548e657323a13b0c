package bookings

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yelloride/internal/fares"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Quote handles POST /api/v1/bookings/quote
func (c *Controller) Quote(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	breakdown, err := c.service.QuotePrice(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate price"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": ToQuoteResponse(breakdown)})
}

// Submit handles POST /api/v1/bookings
func (c *Controller) Submit(ctx *gin.Context) {
	var req BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	booking, err := c.service.SubmitBooking(ctx.Request.Context(), req)
	if err != nil {
		var validation *ValidationError
		if errors.As(err, &validation) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "Validation failed",
				"details": gin.H{
					"field":   validation.Field,
					"message": validation.Message,
				},
			})
			return
		}

		var noRoute *fares.RouteNotFoundError
		if errors.As(err, &noRoute) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No fare for the selected route"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed",
		"data":    booking.ToResponse(),
	})
}

// Get handles GET /api/v1/bookings/:number
func (c *Controller) Get(ctx *gin.Context) {
	number := ctx.Param("number")

	booking, err := c.service.GetBooking(ctx.Request.Context(), number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load booking"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": booking.ToResponse()})
}

// List handles GET /api/v1/admin/bookings
func (c *Controller) List(ctx *gin.Context) {
	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	bookings, totalCount, err := c.service.ListBookings(ctx.Request.Context(), query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"bookings": responses,
			"pagination": gin.H{
				"page":        page,
				"limit":       limit,
				"total_count": totalCount,
				"total_pages": CalculateTotalPages(totalCount, limit),
			},
		},
	})
}

// Cancel handles POST /api/v1/admin/bookings/:id/cancel
func (c *Controller) Cancel(ctx *gin.Context) {
	c.updateStatus(ctx, c.service.CancelBooking, "Booking cancelled")
}

// Complete handles POST /api/v1/admin/bookings/:id/complete
func (c *Controller) Complete(ctx *gin.Context) {
	c.updateStatus(ctx, c.service.CompleteBooking, "Booking completed")
}

func (c *Controller) updateStatus(ctx *gin.Context, op func(ctx context.Context, id uuid.UUID) error, message string) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	if err := op(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		ctx.JSON(http.StatusConflict, gin.H{
			"error":   "Status change rejected",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": message})
}
