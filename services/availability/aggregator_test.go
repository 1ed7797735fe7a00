package availability

import (
	"testing"

	"seabreeze/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToday = "2025-06-01"

func TestComputeDateAvailabilityPartitionInvariant(t *testing.T) {
	records := []models.OccupancyRecord{
		roomRecord("r1", "Room 02", "2025-06-10", "2025-06-12"),
		roomRecord("r2", "Room 04", "2025-06-11", "2025-06-13"),
	}

	dayMap := ComputeDateAvailability(models.ResourceRoom, models.RoomInventory, records,
		"2025-06-10", "2025-06-14", "", testToday)

	require.Len(t, dayMap, 4)
	for date, day := range dayMap {
		taken := make(map[string]bool)
		for _, name := range day.Occupied {
			taken[name] = true
		}
		for _, name := range day.Free {
			assert.False(t, taken[name], "instance %s both occupied and free on %s", name, date)
		}
		assert.Equal(t, len(models.RoomInventory), len(day.Occupied)+len(day.Free),
			"partition must cover the full inventory on %s", date)
		assert.Equal(t, len(day.Occupied), day.OccupiedCount)
		assert.Equal(t, len(day.Free), day.FreeCount)
	}
}

func TestComputeDateAvailabilityStatusLabels(t *testing.T) {
	tests := []struct {
		name       string
		class      models.ResourceClass
		inventory  []string
		records    []models.OccupancyRecord
		date       string
		wantStatus string
	}{
		{
			name:       "room all free",
			class:      models.ResourceRoom,
			inventory:  models.RoomInventory,
			date:       "2025-06-10",
			wantStatus: models.StatusLabelAvailableAll,
		},
		{
			name:      "room partially booked reports remaining count",
			class:     models.ResourceRoom,
			inventory: models.RoomInventory,
			records: []models.OccupancyRecord{
				roomRecord("r1", "Room 02", "2025-06-10", "2025-06-12"),
			},
			date:       "2025-06-10",
			wantStatus: "available-3",
		},
		{
			name:      "room fully booked",
			class:     models.ResourceRoom,
			inventory: models.RoomInventory,
			records: []models.OccupancyRecord{
				roomRecord("r1", "Room 01", "2025-06-10", "2025-06-12"),
				roomRecord("r2", "Room 02", "2025-06-10", "2025-06-12"),
				roomRecord("r3", "Room 03", "2025-06-10", "2025-06-12"),
				roomRecord("r4", "Room 04", "2025-06-10", "2025-06-12"),
			},
			date:       "2025-06-10",
			wantStatus: models.StatusLabelBookedAll,
		},
		{
			name:       "cottage all free",
			class:      models.ResourceCottage,
			inventory:  models.CottageInventory,
			date:       "2025-06-10",
			wantStatus: models.StatusLabelAvailable,
		},
		{
			name:      "cottage partially booked",
			class:     models.ResourceCottage,
			inventory: models.CottageInventory,
			records: []models.OccupancyRecord{
				cottageRecord("r1", "Open Cottage", "2025-06-10", "2025-06-10", "2025-06-10"),
			},
			date:       "2025-06-10",
			wantStatus: models.StatusLabelBookedPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dayMap := ComputeDateAvailability(tt.class, tt.inventory, tt.records,
				tt.date, tt.date, "", testToday)
			require.Contains(t, dayMap, tt.date)
			assert.Equal(t, tt.wantStatus, dayMap[tt.date].Status)
		})
	}
}

func TestComputeDateAvailabilityPastOverride(t *testing.T) {
	dayMap := ComputeDateAvailability(models.ResourceRoom, models.RoomInventory, nil,
		"2025-05-30", "2025-06-02", "", testToday)

	require.Len(t, dayMap, 3)
	assert.Equal(t, models.StatusLabelPast, dayMap["2025-05-30"].Status)
	assert.Equal(t, models.StatusLabelPast, dayMap["2025-05-31"].Status)
	assert.Equal(t, models.StatusLabelAvailableAll, dayMap["2025-06-01"].Status,
		"today itself is not past")
}

func TestComputeDateAvailabilityCottageFullyBookedDay(t *testing.T) {
	records := []models.OccupancyRecord{
		cottageRecord("r1", "Standard Cottage", "2025-08-01", "2025-08-01", "2025-08-01"),
		cottageRecord("r2", "Open Cottage", "2025-08-01", "2025-08-01", "2025-08-01"),
		cottageRecord("r3", "Family Cottage", "2025-08-01", "2025-08-01", "2025-08-01"),
	}

	dayMap := ComputeDateAvailability(models.ResourceCottage, models.CottageInventory, records,
		"2025-08-01", "2025-08-01", "", testToday)

	require.Contains(t, dayMap, "2025-08-01")
	day := dayMap["2025-08-01"]
	assert.Equal(t, models.StatusLabelBookedAll, day.Status)
	assert.Zero(t, day.FreeCount)
}

func TestComputeDateAvailabilityInvertedRange(t *testing.T) {
	dayMap := ComputeDateAvailability(models.ResourceRoom, models.RoomInventory, nil,
		"2025-06-10", "2025-06-01", "", testToday)
	assert.Empty(t, dayMap, "inverted multi-day range must yield an empty map, not an error")
}

func TestComputeDateAvailabilityMalformedDates(t *testing.T) {
	dayMap := ComputeDateAvailability(models.ResourceRoom, models.RoomInventory, nil,
		"garbage", "2025-06-03", "", testToday)
	assert.Empty(t, dayMap)
}

func TestComputeDateAvailabilityIdempotent(t *testing.T) {
	records := []models.OccupancyRecord{
		roomRecord("r1", "Room 02", "2025-06-10", "2025-06-12"),
	}

	first := ComputeDateAvailability(models.ResourceRoom, models.RoomInventory, records,
		"2025-06-09", "2025-06-13", "", testToday)
	second := ComputeDateAvailability(models.ResourceRoom, models.RoomInventory, records,
		"2025-06-09", "2025-06-13", "", testToday)
	assert.Equal(t, first, second)
}

func TestComputeDateAvailabilityUnknownInstance(t *testing.T) {
	records := []models.OccupancyRecord{
		roomRecord("r1", "Penthouse", "2025-06-10", "2025-06-12"),
	}

	dayMap := ComputeDateAvailability(models.ResourceRoom, models.RoomInventory, records,
		"2025-06-10", "2025-06-11", "", testToday)

	day := dayMap["2025-06-10"]
	assert.Contains(t, day.Occupied, "Penthouse", "broken names stay visible as occupied")
	assert.NotContains(t, day.Free, "Penthouse", "broken names must never be offered as free")
	assert.Len(t, day.Free, len(models.RoomInventory))
}

func TestComputeRangeAvailabilityConjunction(t *testing.T) {
	// Room 01 free on day one but occupied on day two must not be offered
	// for the whole range.
	records := []models.OccupancyRecord{
		roomRecord("r1", "Room 01", "2025-06-11", "2025-06-13"),
	}

	dayMap := ComputeDateAvailability(models.ResourceRoom, models.RoomInventory, records,
		"2025-06-10", "2025-06-12", "", testToday)
	rangeAvail := ComputeRangeAvailability(dayMap, models.RoomInventory)

	assert.NotContains(t, rangeAvail.FreeEntireRange, "Room 01")
	assert.Contains(t, rangeAvail.OccupiedAnyDay, "Room 01")
	assert.ElementsMatch(t, []string{"Room 02", "Room 03", "Room 04"}, rangeAvail.FreeEntireRange)
}

func TestComputeRangeAvailabilityInvariant(t *testing.T) {
	records := []models.OccupancyRecord{
		roomRecord("r1", "Room 02", "2025-06-10", "2025-06-12"),
		roomRecord("r2", "Room 03", "2025-06-11", "2025-06-12"),
	}

	dayMap := ComputeDateAvailability(models.ResourceRoom, models.RoomInventory, records,
		"2025-06-10", "2025-06-12", "", testToday)
	rangeAvail := ComputeRangeAvailability(dayMap, models.RoomInventory)

	occupiedAny := make(map[string]bool)
	for _, name := range rangeAvail.OccupiedAnyDay {
		occupiedAny[name] = true
	}
	for _, name := range rangeAvail.FreeEntireRange {
		assert.False(t, occupiedAny[name],
			"free-for-entire-range must be disjoint from occupied-any-day")
	}
}
