package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"github.com/samirrathod1410/playarena-gameon-hub/models"
	"github.com/samirrathod1410/playarena-gameon-hub/monitoring"
	"github.com/samirrathod1410/playarena-gameon-hub/services"
)

type CatalogHandler struct {
	catalog      services.CatalogSource
	reviews      services.ReviewSource
	availability services.AvailabilitySource
}

func NewCatalogHandler(catalog services.CatalogSource, reviews services.ReviewSource, availability services.AvailabilitySource) *CatalogHandler {
	return &CatalogHandler{
		catalog:      catalog,
		reviews:      reviews,
		availability: availability,
	}
}

// ListGrounds - Browse the catalog with optional sport/area/price/text filters
func (h *CatalogHandler) ListGrounds(e *core.RequestEvent) error {
	query := e.Request.URL.Query()

	filter := services.CatalogFilter{
		Sport: query.Get("sport"),
		Area:  query.Get("area"),
		Query: query.Get("q"),
	}
	if raw := query.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return apis.NewBadRequestError("Invalid max_price", err)
		}
		filter.MaxPrice = maxPrice
	}

	grounds, err := h.catalog.Grounds(e.Request.Context(), filter)
	if err != nil {
		return apis.NewBadRequestError("Failed to list grounds", err)
	}

	return e.JSON(http.StatusOK, grounds)
}

// GetGround - Single ground detail
func (h *CatalogHandler) GetGround(e *core.RequestEvent) error {
	ground, err := h.catalog.GroundByID(e.Request.Context(), e.Request.PathValue("groundId"))
	if err != nil {
		return apis.NewNotFoundError("Ground not found", err)
	}
	return e.JSON(http.StatusOK, ground)
}

// GetSlots - Bookable windows for a ground on a date, with availability and
// the price each free slot would cost
func (h *CatalogHandler) GetSlots(e *core.RequestEvent) error {
	ctx := e.Request.Context()

	ground, err := h.catalog.GroundByID(ctx, e.Request.PathValue("groundId"))
	if err != nil {
		return apis.NewNotFoundError("Ground not found", err)
	}

	dateStr := e.Request.URL.Query().Get("date")
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return apis.NewBadRequestError("date must be YYYY-MM-DD", err)
	}

	slots, err := services.GenerateSlots(ground.OpenTime, ground.CloseTime, ground.SlotDuration)
	if err != nil {
		return apis.NewBadRequestError("Failed to generate slots", err)
	}

	booked, err := h.availability.BookedStarts(ctx, ground.ID, dateStr)
	if err != nil {
		return apis.NewBadRequestError("Failed to check availability", err)
	}

	availability := services.MarkAvailability(slots, booked)
	for i := range availability {
		price, err := services.CalculatePrice(ground.BasePrice, availability[i].Start, date)
		if err != nil {
			return apis.NewBadRequestError("Failed to price slot", err)
		}
		availability[i].Price = price
	}

	monitoring.TrackSlotQuery()

	return e.JSON(http.StatusOK, map[string]any{
		"ground_id": ground.ID,
		"date":      dateStr,
		"slots":     availability,
	})
}

// GetReviews - Customer reviews for a ground
func (h *CatalogHandler) GetReviews(e *core.RequestEvent) error {
	reviews, err := h.reviews.ReviewsForGround(e.Request.Context(), e.Request.PathValue("groundId"))
	if err != nil {
		return apis.NewBadRequestError("Failed to list reviews", err)
	}
	return e.JSON(http.StatusOK, reviews)
}

// CompareGrounds - Side-by-side view of up to four grounds
func (h *CatalogHandler) CompareGrounds(e *core.RequestEvent) error {
	ids := strings.Split(e.Request.URL.Query().Get("ids"), ",")
	if len(ids) < 2 || len(ids) > 4 {
		return apis.NewBadRequestError("Provide between 2 and 4 ground ids", nil)
	}

	grounds := make([]models.Ground, 0, len(ids))
	for _, id := range ids {
		ground, err := h.catalog.GroundByID(e.Request.Context(), strings.TrimSpace(id))
		if err != nil {
			return apis.NewNotFoundError("Ground not found: "+id, err)
		}
		grounds = append(grounds, *ground)
	}

	return e.JSON(http.StatusOK, grounds)
}
