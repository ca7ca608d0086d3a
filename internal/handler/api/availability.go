package api

import (
	"errors"
	"net/http"
	"time"

	resdto "driftwell/internal/handler/dto/response"
	"driftwell/internal/handler/httperr"
	"driftwell/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

var errMissingDate = errors.New("missing date query parameter")

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
	}
}

// @Summary List available slots
// @Description List slots for a date that still have spare capacity
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingDate, "date query parameter is required", nil)
		return
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	slots, err := h.availability.GetAvailableSlots(c.Request.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Availability could not be loaded, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.SlotResponse, len(slots))
	for i, slot := range slots {
		response[i] = resdto.FromSlotView(slot)
	}

	c.JSON(http.StatusOK, response)
}
