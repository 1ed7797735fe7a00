package models

import "time"

// Reservation lifecycle statuses. Only pending and confirmed reservations
// count toward occupancy; cancellation is a status write, never a delete.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Reservation represents a guest booking over a check-in/check-out window.
// Dates are local calendar dates in "YYYY-MM-DD" form, never timestamps.
type Reservation struct {
	ID         string    `bson:"id" json:"id"`
	GuestName  string    `bson:"guest_name" json:"guestName"`
	GuestEmail string    `bson:"guest_email" json:"guestEmail"`
	CheckIn    string    `bson:"check_in" json:"checkIn"`
	CheckOut   string    `bson:"check_out" json:"checkOut"`
	Status     string    `bson:"status" json:"status"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// Occupies reports whether the reservation counts toward occupancy.
func (r Reservation) Occupies() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// ReservationLineItem binds one resource instance to a reservation.
// For cottage and function hall items UsageDate, when set, is the single
// day the instance is occupied and overrides the parent range. Room items
// always span the parent [check_in, check_out) window.
type ReservationLineItem struct {
	ID            string        `bson:"id" json:"id"`
	ReservationID string        `bson:"reservation_id" json:"reservationId"`
	ResourceClass ResourceClass `bson:"resource_class" json:"resourceClass"`
	InstanceName  string        `bson:"instance_name" json:"instanceName"`
	UsageDate     string        `bson:"usage_date,omitempty" json:"usageDate,omitempty"`
}

// OccupancyRecord pairs a reservation's status and date window with one of
// its line items. It is the row shape the conflict resolver consumes.
type OccupancyRecord struct {
	ReservationID string        `bson:"reservation_id" json:"reservationId"`
	Status        string        `bson:"status" json:"status"`
	CheckIn       string        `bson:"check_in" json:"checkIn"`
	CheckOut      string        `bson:"check_out" json:"checkOut"`
	ResourceClass ResourceClass `bson:"resource_class" json:"resourceClass"`
	InstanceName  string        `bson:"instance_name" json:"instanceName"`
	UsageDate     string        `bson:"usage_date,omitempty" json:"usageDate,omitempty"`
}
