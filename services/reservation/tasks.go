package reservation

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypeReservationComplete marks a confirmed reservation completed once
// its checkout day has passed.
const TypeReservationComplete = "reservation:complete"

// CompletionPayload is the task body for TypeReservationComplete.
type CompletionPayload struct {
	ReservationID string `json:"reservationId"`
	CheckOut      string `json:"checkOut"`
}

// NewCompletionTask builds the auto-completion task for a reservation.
func NewCompletionTask(reservationID, checkOut string) (*asynq.Task, error) {
	payload, err := json.Marshal(CompletionPayload{ReservationID: reservationID, CheckOut: checkOut})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion payload: %w", err)
	}
	return asynq.NewTask(TypeReservationComplete, payload), nil
}
