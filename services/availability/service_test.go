package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"seabreeze/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger returns a canned record set and counts fetches.
type fakeLedger struct {
	records []models.OccupancyRecord
	err     error
	calls   int
}

func (f *fakeLedger) FetchOccupancyRecords(_ context.Context, class models.ResourceClass, from, to, excludeReservationID string) ([]models.OccupancyRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.OccupancyRecord
	for _, rec := range f.records {
		if rec.ResourceClass != class {
			continue
		}
		if excludeReservationID != "" && rec.ReservationID == excludeReservationID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type fakeHalls struct {
	titles []string
	err    error
}

func (f *fakeHalls) ListFunctionHallTitles(context.Context) ([]string, error) {
	return f.titles, f.err
}

func fixedNow(ymd string) func() time.Time {
	t, _ := time.ParseInLocation("2006-01-02", ymd, time.Local)
	return func() time.Time { return t }
}

func newTestEngine(ledger *fakeLedger, today string) *Engine {
	return &Engine{
		Ledger: ledger,
		Halls:  &fakeHalls{titles: []string{"Grand Hall", "Garden Pavilion"}},
		Now:    fixedNow(today),
	}
}

func TestGetAvailabilityPartialRoomBooking(t *testing.T) {
	ledger := &fakeLedger{records: []models.OccupancyRecord{
		roomRecord("r1", "Room 02", "2025-06-10", "2025-06-12"),
	}}
	engine := newTestEngine(ledger, "2025-06-01")

	resp, err := engine.GetAvailability(context.Background(), AvailabilityRequest{
		ResourceClass: models.ResourceRoom,
		CheckIn:       "2025-06-10",
		CheckOut:      "2025-06-13",
	})
	require.NoError(t, err)

	require.Contains(t, resp.DateAvailability, "2025-06-10")
	assert.Equal(t, "available-3", resp.DateAvailability["2025-06-10"].Status)
	assert.Equal(t, []string{"Room 02"}, resp.DateAvailability["2025-06-10"].Occupied)

	// Checkout day of the existing booking is free again.
	require.Contains(t, resp.DateAvailability, "2025-06-12")
	assert.Equal(t, models.StatusLabelAvailableAll, resp.DateAvailability["2025-06-12"].Status)

	assert.True(t, resp.Available)
	assert.NotContains(t, resp.RangeAvailable.FreeEntireRange, "Room 02")
}

func TestGetAvailabilitySelfExclusion(t *testing.T) {
	ledger := &fakeLedger{records: []models.OccupancyRecord{
		roomRecord("editing", "Room 01", "2025-06-10", "2025-06-12"),
	}}
	engine := newTestEngine(ledger, "2025-06-01")

	resp, err := engine.GetAvailability(context.Background(), AvailabilityRequest{
		ResourceClass:        models.ResourceRoom,
		CheckIn:              "2025-06-10",
		CheckOut:             "2025-06-12",
		ExcludeReservationID: "editing",
	})
	require.NoError(t, err)

	for date, day := range resp.DateAvailability {
		assert.NotContains(t, day.Occupied, "Room 01",
			"own line items must not conflict on %s during re-edit", date)
	}
	assert.Contains(t, resp.RangeAvailable.FreeEntireRange, "Room 01")
}

func TestGetAvailabilityMalformedDatesYieldEmptyResult(t *testing.T) {
	ledger := &fakeLedger{}
	engine := newTestEngine(ledger, "2025-06-01")

	resp, err := engine.GetAvailability(context.Background(), AvailabilityRequest{
		ResourceClass: models.ResourceRoom,
		CheckIn:       "garbage",
		CheckOut:      "2025-06-13",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.DateAvailability)
	assert.False(t, resp.Available)
	assert.Zero(t, ledger.calls, "malformed input must not reach the ledger")
}

func TestGetAvailabilityLedgerFailure(t *testing.T) {
	ledger := &fakeLedger{err: errors.New("connection refused")}
	engine := newTestEngine(ledger, "2025-06-01")

	_, err := engine.GetAvailability(context.Background(), AvailabilityRequest{
		ResourceClass: models.ResourceRoom,
		CheckIn:       "2025-06-10",
		CheckOut:      "2025-06-13",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
}

func TestGetAvailabilityFunctionHallInventory(t *testing.T) {
	ledger := &fakeLedger{}
	engine := newTestEngine(ledger, "2025-06-01")

	resp, err := engine.GetAvailability(context.Background(), AvailabilityRequest{
		ResourceClass: models.ResourceFunctionHall,
		CheckIn:       "2025-06-10",
		CheckOut:      "2025-06-10",
	})
	require.NoError(t, err)
	require.Contains(t, resp.DateAvailability, "2025-06-10")
	assert.ElementsMatch(t, []string{"Grand Hall", "Garden Pavilion"},
		resp.DateAvailability["2025-06-10"].Free)
}

func TestGetCalendarMonthFullMonthNoBookings(t *testing.T) {
	ledger := &fakeLedger{}
	engine := newTestEngine(ledger, "2025-06-15")

	days, err := engine.GetCalendarMonth(context.Background(), NewCache(),
		models.ResourceRoom, 2025, time.June, "")
	require.NoError(t, err)
	require.Len(t, days, 30)

	for date, day := range days {
		if date < "2025-06-15" {
			assert.Equal(t, models.StatusLabelPast, day.Status, "date %s", date)
			continue
		}
		assert.Equal(t, models.StatusLabelAvailableAll, day.Status, "date %s", date)
		assert.Equal(t, 4, day.FreeCount, "date %s", date)
	}
}

func TestGetCalendarMonthBatchesOneQueryPerMonth(t *testing.T) {
	ledger := &fakeLedger{}
	engine := newTestEngine(ledger, "2025-06-01")
	cache := NewCache()

	first, err := engine.GetCalendarMonth(context.Background(), cache,
		models.ResourceRoom, 2025, time.June, "")
	require.NoError(t, err)
	assert.Equal(t, 1, ledger.calls)

	// Paging back to the same month serves the cache verbatim.
	second, err := engine.GetCalendarMonth(context.Background(), cache,
		models.ResourceRoom, 2025, time.June, "")
	require.NoError(t, err)
	assert.Equal(t, 1, ledger.calls, "a fully loaded month must not re-query the ledger")
	assert.Equal(t, first, second)

	// A new month costs exactly one more query.
	_, err = engine.GetCalendarMonth(context.Background(), cache,
		models.ResourceRoom, 2025, time.July, "")
	require.NoError(t, err)
	assert.Equal(t, 2, ledger.calls)
}

func TestGetCalendarMonthClassSwitchInvalidates(t *testing.T) {
	ledger := &fakeLedger{}
	engine := newTestEngine(ledger, "2025-06-01")
	cache := NewCache()

	_, err := engine.GetCalendarMonth(context.Background(), cache,
		models.ResourceRoom, 2025, time.June, "")
	require.NoError(t, err)

	_, err = engine.GetCalendarMonth(context.Background(), cache,
		models.ResourceCottage, 2025, time.June, "")
	require.NoError(t, err)

	// Back to rooms for the same month: the earlier entries were dropped
	// on the class switch, so the ledger is read again.
	_, err = engine.GetCalendarMonth(context.Background(), cache,
		models.ResourceRoom, 2025, time.June, "")
	require.NoError(t, err)
	assert.Equal(t, 3, ledger.calls)
}

func TestGetCalendarMonthFailedFetchNotMarkedLoaded(t *testing.T) {
	ledger := &fakeLedger{err: errors.New("timeout")}
	engine := newTestEngine(ledger, "2025-06-01")
	cache := NewCache()

	_, err := engine.GetCalendarMonth(context.Background(), cache,
		models.ResourceRoom, 2025, time.June, "")
	require.ErrorIs(t, err, ErrLedgerUnavailable)
	assert.False(t, cache.MonthLoaded(models.ResourceRoom, 2025, time.June, ""),
		"a failed read must never mark the month loaded")

	// Once the ledger recovers the month loads normally.
	ledger.err = nil
	days, err := engine.GetCalendarMonth(context.Background(), cache,
		models.ResourceRoom, 2025, time.June, "")
	require.NoError(t, err)
	assert.Len(t, days, 30)
}
