package reservation

import (
	"context"
	"encoding/json"
	"fmt"

	"seabreeze/models"
	"seabreeze/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const holdKeyPrefix = "hold:"

// StartHold parks a booking draft in redis while the guest finishes the
// form. Holds do not reserve inventory; the conflict check still runs at
// confirmation, so an expired or raced hold degrades to a 409, not a
// double booking.
func (s *DefaultReservationService) StartHold(ctx context.Context, input ReservationInput) (string, error) {
	if s.Holds == nil {
		return "", fmt.Errorf("booking holds are not configured")
	}
	if _, _, err := s.buildReservation(input, uuid.New().String()); err != nil {
		return "", err
	}

	holdID := uuid.New().String()
	data, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to marshal booking hold: %w", err)
	}
	if err := s.Holds.Set(ctx, holdKeyPrefix+holdID, data, s.HoldTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store booking hold: %w", err)
	}
	return holdID, nil
}

// GetHold returns a parked draft, or redis.Nil if it expired.
func (s *DefaultReservationService) GetHold(ctx context.Context, holdID string) (*ReservationInput, error) {
	if s.Holds == nil {
		return nil, fmt.Errorf("booking holds are not configured")
	}
	data, err := s.Holds.Get(ctx, holdKeyPrefix+holdID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load booking hold: %w", err)
	}
	var input ReservationInput
	if err := json.Unmarshal([]byte(data), &input); err != nil {
		return nil, fmt.Errorf("failed to parse booking hold: %w", err)
	}
	return &input, nil
}

// ConfirmHold turns a parked draft into a real reservation, running the
// full write-time conflict check, then releases the hold.
func (s *DefaultReservationService) ConfirmHold(ctx context.Context, holdID string) (*models.Reservation, error) {
	input, err := s.GetHold(ctx, holdID)
	if err != nil {
		return nil, err
	}
	res, err := s.Create(ctx, *input)
	if err != nil {
		return nil, err
	}
	if err := s.ReleaseHold(ctx, holdID); err != nil {
		utils.GetLogger().Warn("failed to release confirmed hold",
			zap.String("holdID", holdID), zap.Error(err))
	}
	return res, nil
}

// ReleaseHold discards a parked draft.
func (s *DefaultReservationService) ReleaseHold(ctx context.Context, holdID string) error {
	if s.Holds == nil {
		return fmt.Errorf("booking holds are not configured")
	}
	return s.Holds.Del(ctx, holdKeyPrefix+holdID).Err()
}
