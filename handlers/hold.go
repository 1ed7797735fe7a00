package handlers

import (
	"errors"
	"net/http"

	"seabreeze/services/reservation"
	"seabreeze/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HoldHandler exposes booking-hold sessions: drafts parked in redis while
// the guest completes the booking form.
type HoldHandler struct {
	Service reservation.ReservationService
}

// NewHoldHandler constructs a HoldHandler.
func NewHoldHandler(svc reservation.ReservationService) *HoldHandler {
	return &HoldHandler{Service: svc}
}

// StartHold parks a validated draft and returns its hold id.
func (h *HoldHandler) StartHold(c *gin.Context) {
	var input reservation.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	holdID, err := h.Service.StartHold(c.Request.Context(), input)
	if err != nil {
		var validationErr *reservation.ValidationError
		if errors.As(err, &validationErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid booking", validationErr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking hold", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"holdID": holdID})
}

// GetHold returns a parked draft.
func (h *HoldHandler) GetHold(c *gin.Context) {
	input, err := h.Service.GetHold(c.Request.Context(), c.Param("holdID"))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			utils.JSONError(c, http.StatusNotFound, "booking hold not found or expired", c.Param("holdID"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking hold", err.Error())
		return
	}
	c.JSON(http.StatusOK, input)
}

// ConfirmHold converts the draft into a reservation; conflicts found at
// write time surface as 409 just like a direct submission.
func (h *HoldHandler) ConfirmHold(c *gin.Context) {
	res, err := h.Service.ConfirmHold(c.Request.Context(), c.Param("holdID"))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			utils.JSONError(c, http.StatusNotFound, "booking hold not found or expired", c.Param("holdID"))
			return
		}
		var conflictErr *reservation.ConflictError
		if errors.As(err, &conflictErr) {
			c.JSON(http.StatusConflict, gin.H{
				"message":    "requested resources are no longer available",
				"collisions": conflictErr.Collisions,
			})
			return
		}
		var validationErr *reservation.ValidationError
		if errors.As(err, &validationErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid booking", validationErr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking hold", err.Error())
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ReleaseHold discards a parked draft.
func (h *HoldHandler) ReleaseHold(c *gin.Context) {
	if err := h.Service.ReleaseHold(c.Request.Context(), c.Param("holdID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to release booking hold", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"holdID": c.Param("holdID"), "released": true})
}
