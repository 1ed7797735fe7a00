package availability

import (
	"context"
	"fmt"
	"time"

	"seabreeze/models"
	"seabreeze/utils"

	"go.uber.org/zap"
)

// Engine computes availability views over the reservation ledger. All
// dependencies are explicit; the engine holds no request state of its
// own, so one instance serves concurrent requests.
type Engine struct {
	Ledger LedgerReader
	Halls  HallLister
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) today() string {
	return e.now().Format(ymdLayout)
}

// Inventory returns the named instances of a class. Rooms and cottages
// are fixed; function hall titles come from the resource collection.
func (e *Engine) Inventory(ctx context.Context, class models.ResourceClass) ([]string, error) {
	switch class {
	case models.ResourceRoom:
		return models.RoomInventory, nil
	case models.ResourceCottage:
		return models.CottageInventory, nil
	case models.ResourceFunctionHall:
		titles, err := e.Halls.ListFunctionHallTitles(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load function hall inventory: %w", err)
		}
		return titles, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownResourceClass, class)
}

// GetAvailability answers one booking-form query: the per-day map for the
// requested window plus the range-level summary. All days are computed
// from the single ledger snapshot fetched here, so no day within one
// response reflects a partial update. Malformed date inputs yield an
// empty map, not an error.
func (e *Engine) GetAvailability(ctx context.Context, req AvailabilityRequest) (*models.AvailabilityResponse, error) {
	inventory, err := e.Inventory(ctx, req.ResourceClass)
	if err != nil {
		return nil, err
	}

	checkIn, errIn := NormalizeYMD(req.CheckIn)
	checkOut, errOut := NormalizeYMD(req.CheckOut)
	if errIn != nil || errOut != nil {
		utils.GetLogger().Warn("availability request with malformed dates",
			zap.String("checkIn", req.CheckIn), zap.String("checkOut", req.CheckOut))
		return &models.AvailabilityResponse{
			DateAvailability: map[string]models.DayAvailability{},
			RangeAvailable:   models.RangeAvailability{OccupiedAnyDay: []string{}, FreeEntireRange: []string{}},
		}, nil
	}

	// Fetch one snapshot covering the whole window. The window sent to
	// the ledger is widened by a day so single-day requests still match
	// the exclusive overlap filter.
	fetchEnd := checkOut
	if checkIn >= checkOut {
		fetchEnd = nextDay(checkIn)
	}
	records, err := e.Ledger.FetchOccupancyRecords(ctx, req.ResourceClass, checkIn, fetchEnd, req.ExcludeReservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	dayMap := ComputeDateAvailability(req.ResourceClass, inventory, records, checkIn, checkOut, req.ExcludeReservationID, e.today())
	rangeAvail := ComputeRangeAvailability(dayMap, inventory)

	return &models.AvailabilityResponse{
		Available:        len(dayMap) > 0 && len(rangeAvail.FreeEntireRange) > 0,
		DateAvailability: dayMap,
		RangeAvailable:   rangeAvail,
	}, nil
}

// GetCalendarMonth returns the per-day availability for a whole calendar
// month, memoized in the session cache. A cache miss costs exactly one
// batched ledger query for the month; a failed read returns an error and
// leaves the month unmarked so the next navigation retries.
func (e *Engine) GetCalendarMonth(
	ctx context.Context,
	cache *Cache,
	class models.ResourceClass,
	year int,
	month time.Month,
	excludeReservationID string,
) (map[string]models.DayAvailability, error) {
	inventory, err := e.Inventory(ctx, class)
	if err != nil {
		return nil, err
	}

	cache.SetClass(class)

	first, next := MonthBounds(year, month)
	if cache.MonthLoaded(class, year, month, excludeReservationID) {
		out := make(map[string]models.DayAvailability)
		for _, date := range DateRange(first, next, false) {
			if day, ok := cache.GetDay(class, date, excludeReservationID); ok {
				out[date] = day
			}
		}
		return out, nil
	}

	records, err := e.Ledger.FetchOccupancyRecords(ctx, class, first, next, excludeReservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	days := ComputeDateAvailability(class, inventory, records, first, next, excludeReservationID, e.today())
	cache.StoreMonth(class, year, month, excludeReservationID, days)
	return days, nil
}

func nextDay(ymd string) string {
	t, err := time.ParseInLocation(ymdLayout, ymd, time.Local)
	if err != nil {
		return ymd
	}
	return t.AddDate(0, 0, 1).Format(ymdLayout)
}
