package availability

import (
	"context"

	"seabreeze/models"
)

// LedgerReader is the read-only query surface the engine needs from the
// reservation ledger. Satisfied by the reservation repository.
type LedgerReader interface {
	FetchOccupancyRecords(ctx context.Context, class models.ResourceClass, from, to, excludeReservationID string) ([]models.OccupancyRecord, error)
}

// HallLister loads the dynamically managed function hall titles.
// Satisfied by the resource repository.
type HallLister interface {
	ListFunctionHallTitles(ctx context.Context) ([]string, error)
}

// AvailabilityRequest describes one availability query from the booking
// UI. Dates are YMD strings; ExcludeReservationID is set during re-edit
// so a reservation's own line items never conflict with itself.
type AvailabilityRequest struct {
	ResourceClass        models.ResourceClass
	CheckIn              string
	CheckOut             string
	ExcludeReservationID string
}
