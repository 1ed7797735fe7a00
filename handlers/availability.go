package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"seabreeze/models"
	"seabreeze/services/availability"
	"seabreeze/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the read-side availability engine.
type AvailabilityHandler struct {
	Engine   *availability.Engine
	Sessions *availability.SessionCaches
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(engine *availability.Engine, sessions *availability.SessionCaches) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Sessions: sessions}
}

// GetAvailability answers a booking-form window query.
// GET /api/availability?resourceClass=room&checkIn=...&checkOut=...&excludeReservationId=...
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	class := models.ResourceClass(c.Query("resourceClass"))
	if !class.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid resource class", c.Query("resourceClass"))
		return
	}

	req := availability.AvailabilityRequest{
		ResourceClass:        class,
		CheckIn:              c.Query("checkIn"),
		CheckOut:             c.Query("checkOut"),
		ExcludeReservationID: c.Query("excludeReservationId"),
	}

	resp, err := h.Engine.GetAvailability(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, availability.ErrLedgerUnavailable) {
			utils.JSONError(c, http.StatusServiceUnavailable, "reservation ledger unavailable", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCalendarMonth answers a calendar-page month query, memoized per
// session. Without a session id the request gets a throwaway cache so one
// anonymous user can never see another's entries.
// GET /api/availability/calendar?resourceClass=room&year=2025&month=6&sessionID=...
func (h *AvailabilityHandler) GetCalendarMonth(c *gin.Context) {
	class := models.ResourceClass(c.Query("resourceClass"))
	if !class.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid resource class", c.Query("resourceClass"))
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid year", c.Query("year"))
		return
	}
	monthNum, err := strconv.Atoi(c.Query("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid month", c.Query("month"))
		return
	}

	cache := availability.NewCache()
	if sessionID := c.Query("sessionID"); sessionID != "" {
		cache = h.Sessions.GetOrCreate(sessionID)
	}

	days, err := h.Engine.GetCalendarMonth(
		c.Request.Context(),
		cache,
		class,
		year,
		time.Month(monthNum),
		c.Query("excludeReservationId"),
	)
	if err != nil {
		if errors.Is(err, availability.ErrLedgerUnavailable) {
			utils.JSONError(c, http.StatusServiceUnavailable, "reservation ledger unavailable", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute calendar", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"dateAvailability": days})
}
