package availability

import (
	"fmt"
	"sort"

	"seabreeze/models"
	"seabreeze/utils"

	"go.uber.org/zap"
)

// ComputeDateAvailability expands the requested window day by day and
// classifies each date for the given class against its inventory. The
// window is [startYMD, endYMD) with exclusive checkout, except that a
// same-day request yields that single date. An inverted or unparsable
// window yields an empty map; callers treat that as nothing to display.
// Dates strictly before today are labelled past, display-only.
func ComputeDateAvailability(
	class models.ResourceClass,
	inventory []string,
	records []models.OccupancyRecord,
	startYMD, endYMD, excludeReservationID, today string,
) map[string]models.DayAvailability {
	start, err := NormalizeYMD(startYMD)
	if err != nil {
		return map[string]models.DayAvailability{}
	}
	end, err := NormalizeYMD(endYMD)
	if err != nil {
		return map[string]models.DayAvailability{}
	}

	dates := DateRange(start, end, start == end)
	out := make(map[string]models.DayAvailability, len(dates))
	for _, date := range dates {
		occupied := OccupiedInstances(records, date, excludeReservationID)
		free := subtract(inventory, occupied)
		flagUnknownInstances(class, inventory, occupied, date)

		status := statusLabel(class, len(inventory), len(free))
		if date < today {
			status = models.StatusLabelPast
		}

		out[date] = models.DayAvailability{
			Date:          date,
			ResourceClass: class,
			Occupied:      occupied,
			Free:          free,
			OccupiedCount: len(occupied),
			FreeCount:     len(free),
			Status:        status,
		}
	}
	return out
}

// ComputeRangeAvailability reduces a day map to range-level availability:
// an instance is free for the entire range only when no day occupies it.
// Used when a booking must hold the same instance across every night.
func ComputeRangeAvailability(dayMap map[string]models.DayAvailability, inventory []string) models.RangeAvailability {
	occupiedAny := make(map[string]bool)
	for _, day := range dayMap {
		for _, name := range day.Occupied {
			occupiedAny[name] = true
		}
	}

	free := make([]string, 0, len(inventory))
	for _, name := range inventory {
		if !occupiedAny[name] {
			free = append(free, name)
		}
	}

	occupied := make([]string, 0, len(occupiedAny))
	for name := range occupiedAny {
		occupied = append(occupied, name)
	}
	sort.Strings(occupied)

	return models.RangeAvailability{
		FreeEntireRange: free,
		OccupiedAnyDay:  occupied,
	}
}

// statusLabel applies the calendar decision table. Rooms report remaining
// counts; cottages and halls report a coarser partial/full split.
func statusLabel(class models.ResourceClass, inventorySize, freeCount int) string {
	switch {
	case freeCount >= inventorySize:
		if class == models.ResourceRoom {
			return models.StatusLabelAvailableAll
		}
		return models.StatusLabelAvailable
	case freeCount == 0:
		return models.StatusLabelBookedAll
	default:
		if class == models.ResourceRoom {
			return fmt.Sprintf("available-%d", freeCount)
		}
		return models.StatusLabelBookedPartial
	}
}

// subtract returns members of inventory not present in occupied,
// preserving inventory order.
func subtract(inventory, occupied []string) []string {
	taken := make(map[string]bool, len(occupied))
	for _, name := range occupied {
		taken[name] = true
	}
	free := make([]string, 0, len(inventory))
	for _, name := range inventory {
		if !taken[name] {
			free = append(free, name)
		}
	}
	return free
}

// flagUnknownInstances logs occupancy rows naming instances outside the
// fixed inventory. They stay in the occupied list and never reach the
// free list, so a broken name can never be offered to a guest.
func flagUnknownInstances(class models.ResourceClass, inventory, occupied []string, date string) {
	known := make(map[string]bool, len(inventory))
	for _, name := range inventory {
		known[name] = true
	}
	for _, name := range occupied {
		if !known[name] {
			utils.GetLogger().Warn("occupancy references unknown instance",
				zap.String("class", string(class)),
				zap.String("instance", name),
				zap.String("date", date))
		}
	}
}
