package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coachbooking/internal/domain/models"
	"coachbooking/internal/services"
)

// tripResult is one search hit decorated with the numbers the trip list
// shows next to it.
type tripResult struct {
	Trip           models.Trip `json:"trip"`
	EffectivePrice int64       `json:"effectivePrice"`
	RemainingSeats int         `json:"remainingSeats"`
}

// GET /api/provinces
func (h *Handler) GetProvinces(c *gin.Context) {
	provinces, err := h.Provinces.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, provinces)
}

// GET /api/trips/search
//
// Query: sourceId, sourceName, destId, destName, from, to plus the
// optional filters timeStart, timeEnd, priceMin, priceMax.
func (h *Handler) SearchTrips(c *gin.Context) {
	source := provinceFromQuery(c, "sourceId", "sourceName")
	dest := provinceFromQuery(c, "destId", "destName")
	from := c.Query("from")
	to := c.Query("to")

	trips, occupancy, err := h.Search.Search(c.Request.Context(), source, dest, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	filter := filterFromQuery(c)
	filtered := filter.Apply(trips)

	results := make([]tripResult, 0, len(filtered))
	for _, t := range filtered {
		results = append(results, tripResult{
			Trip:           t,
			EffectivePrice: t.EffectivePrice(),
			RemainingSeats: h.Search.RemainingSeats(t, occupancy),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"trips": results,
		"total": len(results),
	})
}

// GET /api/trips/filters returns the canonical filter options so the UI
// does not hardcode them.
func (h *Handler) GetTripFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timeBoxes": services.TimeBoxes,
		"price": gin.H{
			"min":         services.MinPrice,
			"max":         services.MaxPrice,
			"step":        services.PriceStep,
			"minDistance": services.MinPriceDistance,
		},
	})
}

func provinceFromQuery(c *gin.Context, idKey, nameKey string) *models.Province {
	raw := c.Query(idKey)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &models.Province{ID: id, Name: c.Query(nameKey)}
}

func filterFromQuery(c *gin.Context) services.TripFilter {
	filter := services.NewTripFilter()
	if start, end := c.Query("timeStart"), c.Query("timeEnd"); start != "" && end != "" {
		filter.TimeBox = &services.TimeBox{StartTime: start, EndTime: end}
	}
	if v, err := strconv.ParseInt(c.Query("priceMin"), 10, 64); err == nil {
		filter.MovePriceThumb(0, v)
	}
	if v, err := strconv.ParseInt(c.Query("priceMax"), 10, 64); err == nil {
		filter.MovePriceThumb(1, v)
	}
	return filter
}
