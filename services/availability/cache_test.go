package availability

import (
	"testing"
	"time"

	"seabreeze/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func juneDays(class models.ResourceClass) map[string]models.DayAvailability {
	days := make(map[string]models.DayAvailability)
	for _, date := range DateRange("2025-06-01", "2025-07-01", false) {
		days[date] = models.DayAvailability{
			Date:          date,
			ResourceClass: class,
			Free:          models.RoomInventory,
			FreeCount:     len(models.RoomInventory),
			Status:        models.StatusLabelAvailableAll,
		}
	}
	return days
}

func TestCacheStoreAndLookup(t *testing.T) {
	cache := NewCache()
	cache.SetClass(models.ResourceRoom)

	assert.False(t, cache.MonthLoaded(models.ResourceRoom, 2025, time.June, ""))

	cache.StoreMonth(models.ResourceRoom, 2025, time.June, "", juneDays(models.ResourceRoom))

	assert.True(t, cache.MonthLoaded(models.ResourceRoom, 2025, time.June, ""))
	day, ok := cache.GetDay(models.ResourceRoom, "2025-06-15", "")
	require.True(t, ok)
	assert.Equal(t, "2025-06-15", day.Date)

	// A different month and a different exclusion key both miss.
	assert.False(t, cache.MonthLoaded(models.ResourceRoom, 2025, time.July, ""))
	assert.False(t, cache.MonthLoaded(models.ResourceRoom, 2025, time.June, "some-reservation"))
}

func TestCacheClassSwitchInvalidatesEverything(t *testing.T) {
	cache := NewCache()
	cache.SetClass(models.ResourceRoom)
	cache.StoreMonth(models.ResourceRoom, 2025, time.June, "", juneDays(models.ResourceRoom))
	require.True(t, cache.MonthLoaded(models.ResourceRoom, 2025, time.June, ""))

	// Browse cottages, then come back to rooms: the rooms entries must be
	// gone, not coincidentally reused.
	cache.SetClass(models.ResourceCottage)
	cache.SetClass(models.ResourceRoom)

	assert.False(t, cache.MonthLoaded(models.ResourceRoom, 2025, time.June, ""))
	_, ok := cache.GetDay(models.ResourceRoom, "2025-06-15", "")
	assert.False(t, ok)
}

func TestCacheSameClassKeepsEntries(t *testing.T) {
	cache := NewCache()
	cache.SetClass(models.ResourceRoom)
	cache.StoreMonth(models.ResourceRoom, 2025, time.June, "", juneDays(models.ResourceRoom))

	cache.SetClass(models.ResourceRoom)
	assert.True(t, cache.MonthLoaded(models.ResourceRoom, 2025, time.June, ""))
}

func TestCacheInvalidateAll(t *testing.T) {
	cache := NewCache()
	cache.SetClass(models.ResourceRoom)
	cache.StoreMonth(models.ResourceRoom, 2025, time.June, "", juneDays(models.ResourceRoom))

	cache.InvalidateAll()
	assert.False(t, cache.MonthLoaded(models.ResourceRoom, 2025, time.June, ""))
}

func TestSessionCaches(t *testing.T) {
	sessions := NewSessionCaches()

	a := sessions.GetOrCreate("guest-a")
	b := sessions.GetOrCreate("guest-b")
	assert.NotSame(t, a, b, "each session owns its cache")
	assert.Same(t, a, sessions.GetOrCreate("guest-a"))

	a.SetClass(models.ResourceRoom)
	a.StoreMonth(models.ResourceRoom, 2025, time.June, "", juneDays(models.ResourceRoom))

	// A booking submission invalidates every session's calendar.
	sessions.InvalidateAll()
	fresh := sessions.GetOrCreate("guest-a")
	assert.False(t, fresh.MonthLoaded(models.ResourceRoom, 2025, time.June, ""))
}
