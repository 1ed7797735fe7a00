package models

// Availability status labels used for calendar rendering.
const (
	StatusLabelAvailableAll  = "available-all"
	StatusLabelBookedAll     = "booked-all"
	StatusLabelAvailable     = "available"
	StatusLabelBookedPartial = "booked-partial"
	StatusLabelPast          = "past"
)

// DayAvailability is the derived per-day view of one resource class:
// which named instances are occupied, which are free, and the display
// status for the calendar cell.
type DayAvailability struct {
	Date          string        `json:"date"`
	ResourceClass ResourceClass `json:"resourceClass"`
	Occupied      []string      `json:"occupied"`
	Free          []string      `json:"free"`
	OccupiedCount int           `json:"occupiedCount"`
	FreeCount     int           `json:"freeCount"`
	Status        string        `json:"status"`
}

// RangeAvailability summarizes a multi-day window: instances free on every
// day of the window versus instances occupied on at least one day.
type RangeAvailability struct {
	FreeEntireRange []string `json:"free"`
	OccupiedAnyDay  []string `json:"occupied"`
}

// AvailabilityResponse is the wire shape returned to the booking UI.
type AvailabilityResponse struct {
	Available        bool                       `json:"available"`
	DateAvailability map[string]DayAvailability `json:"dateAvailability"`
	RangeAvailable   RangeAvailability          `json:"rangeAvailable"`
}
