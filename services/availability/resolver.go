package availability

import (
	"sort"

	"seabreeze/models"
	"seabreeze/utils"

	"go.uber.org/zap"
)

// OccupiedInstances classifies which named instances are occupied on the
// given date. Records are reservation/line-item pairs already filtered to
// pending/confirmed status and the target class; the exclusion id is
// re-checked here as well so a stale record set can never surface a
// self-conflict during re-edit. The result is deduplicated and sorted.
func OccupiedInstances(records []models.OccupancyRecord, date, excludeReservationID string) []string {
	logger := utils.GetLogger()

	seen := make(map[string]bool)
	var occupied []string
	for _, rec := range records {
		if excludeReservationID != "" && rec.ReservationID == excludeReservationID {
			continue
		}
		if !occupiesOn(rec, date, logger) {
			continue
		}
		if seen[rec.InstanceName] {
			logger.Warn("duplicate line item for instance on date",
				zap.String("instance", rec.InstanceName),
				zap.String("date", date),
				zap.String("reservationID", rec.ReservationID))
			continue
		}
		seen[rec.InstanceName] = true
		occupied = append(occupied, rec.InstanceName)
	}
	sort.Strings(occupied)
	return occupied
}

// occupiesOn applies the per-class occupancy rules for one record. A
// record with a missing or unparsable date occupies nothing; one bad row
// must not blank out the whole calendar.
func occupiesOn(rec models.OccupancyRecord, date string, logger *zap.Logger) bool {
	// An explicit usage date is authoritative: exact-day match only.
	if rec.UsageDate != "" {
		usage, err := NormalizeYMD(rec.UsageDate)
		if err != nil {
			logger.Warn("skipping occupancy record with bad usage date",
				zap.String("reservationID", rec.ReservationID),
				zap.String("usageDate", rec.UsageDate))
			return false
		}
		return usage == date
	}

	checkIn, err := NormalizeYMD(rec.CheckIn)
	if err != nil {
		logger.Warn("skipping occupancy record with bad check-in",
			zap.String("reservationID", rec.ReservationID),
			zap.String("checkIn", rec.CheckIn))
		return false
	}

	if rec.ResourceClass == models.ResourceRoom {
		checkOut, err := NormalizeYMD(rec.CheckOut)
		if err != nil {
			logger.Warn("skipping occupancy record with bad check-out",
				zap.String("reservationID", rec.ReservationID),
				zap.String("checkOut", rec.CheckOut))
			return false
		}
		// Single-day hold: the one date counts.
		if checkIn == checkOut {
			return date == checkIn
		}
		// Standard hotel semantics: checkout day itself is free.
		return date >= checkIn && date < checkOut
	}

	// Legacy cottage/hall rows without a usage date occupy their check-in
	// day only; these resources are never multi-day.
	return date == checkIn
}
