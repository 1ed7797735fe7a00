package reservation

import (
	"context"
	"time"

	reservationRepo "seabreeze/database/repository/reservation"
	"seabreeze/models"
	"seabreeze/services/availability"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// LineItemInput is one requested resource instance in a booking.
type LineItemInput struct {
	ResourceClass models.ResourceClass `json:"resourceClass"`
	InstanceName  string               `json:"instanceName"`
	UsageDate     string               `json:"usageDate,omitempty"`
}

// ReservationInput is a candidate booking submission.
type ReservationInput struct {
	GuestName  string          `json:"guestName"`
	GuestEmail string          `json:"guestEmail"`
	CheckIn    string          `json:"checkIn"`
	CheckOut   string          `json:"checkOut"`
	Status     string          `json:"status,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Items      []LineItemInput `json:"items"`
}

// ReservationService owns the booking write path. Every create and
// re-edit re-runs the conflict resolver against a fresh ledger read in
// the same request; the read-side availability engine is advisory only.
type ReservationService interface {
	Create(ctx context.Context, input ReservationInput) (*models.Reservation, error)
	Update(ctx context.Context, id string, input ReservationInput) (*models.Reservation, error)
	Get(ctx context.Context, id string) (*models.Reservation, []models.ReservationLineItem, error)
	List(ctx context.Context, status string, limit, offset int64) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Cancel(ctx context.Context, id string) error

	StartHold(ctx context.Context, input ReservationInput) (string, error)
	GetHold(ctx context.Context, holdID string) (*ReservationInput, error)
	ConfirmHold(ctx context.Context, holdID string) (*models.Reservation, error)
	ReleaseHold(ctx context.Context, holdID string) error
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Repo     reservationRepo.ReservationRepository
	Engine   *availability.Engine
	Sessions *availability.SessionCaches
	Holds    *redis.Client
	Tasks    *asynq.Client
	HoldTTL  time.Duration
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}
