package reservation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"seabreeze/models"
	"seabreeze/services/availability"
	"seabreeze/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const ymdLayout = "2006-01-02"

// Legal lifecycle transitions. Cancelled and completed are terminal.
var allowedTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
}

func (s *DefaultReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create validates and persists a new booking. The conflict resolver runs
// against a fresh ledger read inside this same request; concurrent
// availability views are advisory, this check is the authority.
func (s *DefaultReservationService) Create(ctx context.Context, input ReservationInput) (*models.Reservation, error) {
	res, items, err := s.buildReservation(input, uuid.New().String())
	if err != nil {
		return nil, err
	}

	if err := s.checkConflicts(ctx, res, items, ""); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, res, items); err != nil {
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}

	s.afterWrite(res)
	return res, nil
}

// Update re-edits an existing reservation. The conflict check excludes
// the reservation's own line items: they are hypothetically uncommitted
// during its own edit flow.
func (s *DefaultReservationService) Update(ctx context.Context, id string, input ReservationInput) (*models.Reservation, error) {
	existing, _, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reservation %s not found: %w", id, err)
	}

	res, items, err := s.buildReservation(input, id)
	if err != nil {
		return nil, err
	}
	res.CreatedAt = existing.CreatedAt
	if input.Status == "" {
		res.Status = existing.Status
	}

	if err := s.checkConflicts(ctx, res, items, id); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, res, items); err != nil {
		return nil, fmt.Errorf("failed to update reservation %s: %w", id, err)
	}

	s.afterWrite(res)
	return res, nil
}

// Get returns a reservation and its line items.
func (s *DefaultReservationService) Get(ctx context.Context, id string) (*models.Reservation, []models.ReservationLineItem, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns reservations for the staff dashboard.
func (s *DefaultReservationService) List(ctx context.Context, status string, limit, offset int64) ([]models.Reservation, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.Repo.List(ctx, status, limit, offset)
}

// UpdateStatus applies a lifecycle transition.
func (s *DefaultReservationService) UpdateStatus(ctx context.Context, id, status string) error {
	existing, _, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("reservation %s not found: %w", id, err)
	}
	if !transitionAllowed(existing.Status, status) {
		return newValidationError("illegal status transition %s -> %s", existing.Status, status)
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	if status == models.StatusConfirmed {
		s.enqueueCompletion(id, existing.CheckOut)
	}
	if s.Sessions != nil {
		s.Sessions.InvalidateAll()
	}
	return nil
}

// Cancel soft-deletes by status; reservation documents are never removed.
func (s *DefaultReservationService) Cancel(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, models.StatusCancelled)
}

// buildReservation validates input and materializes the reservation plus
// its line items. Every new cottage/hall item gets a usage date stamped;
// the legacy no-usage-date path exists only for historical rows.
func (s *DefaultReservationService) buildReservation(input ReservationInput, id string) (*models.Reservation, []models.ReservationLineItem, error) {
	checkIn, err := availability.NormalizeYMD(input.CheckIn)
	if err != nil {
		return nil, nil, newValidationError("invalid check-in date %q", input.CheckIn)
	}
	checkOut, err := availability.NormalizeYMD(input.CheckOut)
	if err != nil {
		return nil, nil, newValidationError("invalid check-out date %q", input.CheckOut)
	}
	if checkOut < checkIn {
		return nil, nil, newValidationError("check-out %s precedes check-in %s", checkOut, checkIn)
	}
	if input.GuestName == "" {
		return nil, nil, newValidationError("guest name is required")
	}
	if len(input.Items) == 0 {
		return nil, nil, newValidationError("at least one resource must be selected")
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if status != models.StatusPending && status != models.StatusConfirmed {
		return nil, nil, newValidationError("a booking may only be submitted as pending or confirmed, got %q", status)
	}

	now := s.now()
	res := &models.Reservation{
		ID:         id,
		GuestName:  input.GuestName,
		GuestEmail: input.GuestEmail,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     status,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	items := make([]models.ReservationLineItem, 0, len(input.Items))
	for _, in := range input.Items {
		if !in.ResourceClass.Valid() {
			return nil, nil, newValidationError("unknown resource class %q", in.ResourceClass)
		}
		if in.InstanceName == "" {
			return nil, nil, newValidationError("resource instance name is required")
		}
		item := models.ReservationLineItem{
			ID:            uuid.New().String(),
			ReservationID: id,
			ResourceClass: in.ResourceClass,
			InstanceName:  in.InstanceName,
		}
		if in.ResourceClass != models.ResourceRoom {
			usage := in.UsageDate
			if usage == "" {
				usage = checkIn
			}
			normalized, err := availability.NormalizeYMD(usage)
			if err != nil {
				return nil, nil, newValidationError("invalid usage date %q for %s", in.UsageDate, in.InstanceName)
			}
			if normalized < checkIn || normalized > checkOut {
				return nil, nil, newValidationError("usage date %s for %s is outside the stay window", normalized, in.InstanceName)
			}
			item.UsageDate = normalized
		}
		items = append(items, item)
	}

	return res, items, nil
}

// checkConflicts re-runs the conflict resolver over a fresh ledger
// snapshot for every date each requested item must hold.
func (s *DefaultReservationService) checkConflicts(ctx context.Context, res *models.Reservation, items []models.ReservationLineItem, excludeReservationID string) error {
	type classWindow struct {
		items []models.ReservationLineItem
		dates map[string][]string // item ID -> dates that item must hold
		from  string
		to    string
	}
	windows := make(map[models.ResourceClass]*classWindow)

	for _, item := range items {
		var required []string
		if item.ResourceClass == models.ResourceRoom {
			required = availability.DateRange(res.CheckIn, res.CheckOut, res.CheckIn == res.CheckOut)
		} else {
			required = []string{item.UsageDate}
		}
		if len(required) == 0 {
			continue
		}

		w, ok := windows[item.ResourceClass]
		if !ok {
			w = &classWindow{dates: make(map[string][]string), from: required[0], to: required[len(required)-1]}
			windows[item.ResourceClass] = w
		}
		if required[0] < w.from {
			w.from = required[0]
		}
		if last := required[len(required)-1]; last > w.to {
			w.to = last
		}
		w.items = append(w.items, item)
		w.dates[item.ID] = required
	}

	var collisions []Collision
	for class, w := range windows {
		records, err := s.Repo.FetchOccupancyRecords(ctx, class, w.from, nextDay(w.to), excludeReservationID)
		if err != nil {
			return fmt.Errorf("conflict check failed, ledger unavailable: %w", err)
		}
		for _, item := range w.items {
			for _, date := range w.dates[item.ID] {
				occupied := availability.OccupiedInstances(records, date, excludeReservationID)
				for _, name := range occupied {
					if name == item.InstanceName {
						collisions = append(collisions, Collision{InstanceName: name, Date: date})
					}
				}
			}
		}
	}

	if len(collisions) > 0 {
		sort.Slice(collisions, func(i, j int) bool {
			if collisions[i].Date != collisions[j].Date {
				return collisions[i].Date < collisions[j].Date
			}
			return collisions[i].InstanceName < collisions[j].InstanceName
		})
		return &ConflictError{Collisions: collisions}
	}
	return nil
}

// afterWrite invalidates calendar caches and schedules auto-completion.
func (s *DefaultReservationService) afterWrite(res *models.Reservation) {
	if s.Sessions != nil {
		s.Sessions.InvalidateAll()
	}
	if res.Status == models.StatusConfirmed {
		s.enqueueCompletion(res.ID, res.CheckOut)
	}
}

func (s *DefaultReservationService) enqueueCompletion(id, checkOut string) {
	if s.Tasks == nil {
		return
	}
	task, err := NewCompletionTask(id, checkOut)
	if err != nil {
		utils.GetLogger().Error("failed to build completion task",
			zap.String("reservationID", id), zap.Error(err))
		return
	}
	processAt, err := time.ParseInLocation(ymdLayout, checkOut, time.Local)
	if err != nil {
		utils.GetLogger().Error("failed to parse checkout for completion task",
			zap.String("reservationID", id), zap.String("checkOut", checkOut), zap.Error(err))
		return
	}
	// Run at noon on checkout day, after the guest has left.
	processAt = processAt.Add(12 * time.Hour)
	if _, err := s.Tasks.Enqueue(task, asynq.ProcessAt(processAt)); err != nil {
		utils.GetLogger().Error("failed to enqueue completion task",
			zap.String("reservationID", id), zap.Error(err))
	}
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func nextDay(ymd string) string {
	t, err := time.ParseInLocation(ymdLayout, ymd, time.Local)
	if err != nil {
		return ymd
	}
	return t.AddDate(0, 0, 1).Format(ymdLayout)
}
