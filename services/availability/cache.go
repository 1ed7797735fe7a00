package availability

import (
	"fmt"
	"sync"
	"time"

	"seabreeze/models"
)

// Cache memoizes per-day availability for one calendar session so paging
// back and forth across months stays at one ledger query per month. It is
// owned by a single logical session; there are no fan-out writers. It is
// correct without a TTL only because the ledger stays the sole source of
// truth and the cache is rebuilt per session.
type Cache struct {
	mu     sync.Mutex
	class  models.ResourceClass
	days   map[string]models.DayAvailability
	months map[string]bool
}

// NewCache returns an empty session cache.
func NewCache() *Cache {
	return &Cache{
		days:   make(map[string]models.DayAvailability),
		months: make(map[string]bool),
	}
}

// SetClass records the class the session is browsing. Switching classes
// drops the entire cache, not just entries of the old class: a cross-class
// key collision must never serve one class's occupancy under another's
// request.
func (c *Cache) SetClass(class models.ResourceClass) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.class == class {
		return
	}
	c.class = class
	c.days = make(map[string]models.DayAvailability)
	c.months = make(map[string]bool)
}

// InvalidateAll drops every cached entry, e.g. after a booking submission
// that could affect any cached month.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.days = make(map[string]models.DayAvailability)
	c.months = make(map[string]bool)
}

// MonthLoaded reports whether the month was fully loaded for the key.
func (c *Cache) MonthLoaded(class models.ResourceClass, year int, month time.Month, excludeReservationID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.months[monthKey(class, year, month, excludeReservationID)]
}

// StoreMonth caches a fully computed month and marks it loaded. Callers
// must only invoke this after a successful ledger read; a failed or
// partial fetch must never mark the month loaded.
func (c *Cache) StoreMonth(class models.ResourceClass, year int, month time.Month, excludeReservationID string, days map[string]models.DayAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for date, day := range days {
		c.days[dayKey(class, date, excludeReservationID)] = day
	}
	c.months[monthKey(class, year, month, excludeReservationID)] = true
}

// GetDay returns the cached availability for a single date.
func (c *Cache) GetDay(class models.ResourceClass, date, excludeReservationID string) (models.DayAvailability, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	day, ok := c.days[dayKey(class, date, excludeReservationID)]
	return day, ok
}

func dayKey(class models.ResourceClass, date, excludeReservationID string) string {
	return fmt.Sprintf("%s|%s|%s", class, date, excludeReservationID)
}

func monthKey(class models.ResourceClass, year int, month time.Month, excludeReservationID string) string {
	return fmt.Sprintf("%s|%04d-%02d|%s", class, year, int(month), excludeReservationID)
}

// SessionCaches hands out one Cache per calendar session token.
type SessionCaches struct {
	mu       sync.Mutex
	sessions map[string]*Cache
}

// NewSessionCaches returns an empty session registry.
func NewSessionCaches() *SessionCaches {
	return &SessionCaches{sessions: make(map[string]*Cache)}
}

// GetOrCreate returns the cache for the session, creating it on first use.
func (s *SessionCaches) GetOrCreate(sessionID string) *Cache {
	s.mu.Lock()
	defer s.mu.Unlock()
	cache, ok := s.sessions[sessionID]
	if !ok {
		cache = NewCache()
		s.sessions[sessionID] = cache
	}
	return cache
}

// Drop removes a session's cache.
func (s *SessionCaches) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// InvalidateAll drops every session cache, used after any local mutation
// that could affect cached months.
func (s *SessionCaches) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*Cache)
}
