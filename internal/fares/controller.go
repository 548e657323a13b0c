package fares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetRegions handles GET /api/v1/regions
func (c *Controller) GetRegions(ctx *gin.Context) {
	regions, err := c.service.GetRegions(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load regions"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": regions})
}

// GetDepartures handles GET /api/v1/routes/:region/departures
func (c *Controller) GetDepartures(ctx *gin.Context) {
	region := ctx.Param("region")

	departures, err := c.service.GetDepartures(ctx.Request.Context(), region)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load departures"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": departures})
}

// GetArrivals handles GET /api/v1/routes/:region/arrivals?departure=...
func (c *Controller) GetArrivals(ctx *gin.Context) {
	region := ctx.Param("region")
	departure := ctx.Query("departure")
	if departure == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Departure is required"})
		return
	}

	arrivals, err := c.service.GetArrivals(ctx.Request.Context(), region, departure)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load arrivals"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": arrivals})
}

// FindRoute handles GET /api/v1/route?region=...&departure=...&arrival=...
func (c *Controller) FindRoute(ctx *gin.Context) {
	region := ctx.Query("region")
	departure := ctx.Query("departure")
	arrival := ctx.Query("arrival")

	if region == "" || departure == "" || arrival == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Region, departure and arrival are required"})
		return
	}

	fare, err := c.service.FindRoute(ctx.Request.Context(), region, departure, arrival)
	if err != nil {
		var notFound *RouteNotFoundError
		if errors.As(err, &notFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No fare for this route"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up route"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": fare.ToResponse()})
}

// ListFares handles GET /api/v1/admin/fares?region=...
func (c *Controller) ListFares(ctx *gin.Context) {
	fares, err := c.service.ListFares(ctx.Request.Context(), ctx.Query("region"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fares"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"fares": fares,
			"count": len(fares),
		},
	})
}

// CreateFare handles POST /api/v1/admin/fares
func (c *Controller) CreateFare(ctx *gin.Context) {
	var req FareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	fare := &RouteFare{}
	req.apply(fare)

	if err := c.service.CreateFare(ctx.Request.Context(), fare); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to create fare",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Fare created successfully",
		"data":    fare,
	})
}

// UpdateFare handles PUT /api/v1/admin/fares/:id
func (c *Controller) UpdateFare(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fare ID"})
		return
	}

	var req FareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	fare, err := c.service.GetFare(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Fare not found"})
		return
	}

	req.apply(fare)

	if err := c.service.UpdateFare(ctx.Request.Context(), fare); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to update fare",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Fare updated successfully",
		"data":    fare,
	})
}

// DeleteFare handles DELETE /api/v1/admin/fares/:id
func (c *Controller) DeleteFare(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fare ID"})
		return
	}

	if err := c.service.DeleteFare(ctx.Request.Context(), id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fare"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Fare deleted successfully"})
}
