package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"seabreeze/services/reservation"
	"seabreeze/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationHandler exposes the booking write path and the staff
// dashboard reads.
type ReservationHandler struct {
	Service reservation.ReservationService
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// CreateReservation submits a candidate booking. A conflict with existing
// occupancy is rejected with 409 and the colliding instance/date pairs.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var input reservation.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	res, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateReservation re-edits a booking. The conflict check excludes the
// reservation's own line items.
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	var input reservation.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	res, err := h.Service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetReservation returns one reservation with its line items.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	res, items, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": res, "items": items})
}

// ListReservations lists reservations for the staff dashboard.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	out, err := h.Service.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": out})
}

// UpdateReservationStatus applies a lifecycle transition.
func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status payload", err.Error())
		return
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": input.Status})
}

// CancelReservation soft-deletes by setting the cancelled status.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "cancelled"})
}

// writeError maps service errors onto HTTP statuses.
func (h *ReservationHandler) writeError(c *gin.Context, err error) {
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

	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.JSONError(c, http.StatusNotFound, "reservation not found", err.Error())
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "booking request failed", err.Error())
}
