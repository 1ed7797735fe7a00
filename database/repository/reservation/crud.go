package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"seabreeze/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

// Create inserts the reservation document and its line items.
func (repo *mongoReservationRepo) Create(ctx context.Context, res *models.Reservation, items []models.ReservationLineItem) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := repo.resColl.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	if len(items) > 0 {
		docs := make([]interface{}, 0, len(items))
		for _, item := range items {
			docs = append(docs, item)
		}
		if _, err := repo.itemColl.InsertMany(ctx, docs); err != nil {
			// Best-effort rollback so a half-written booking never occupies inventory.
			_, _ = repo.resColl.DeleteOne(ctx, bson.M{"id": res.ID})
			return fmt.Errorf("failed to insert reservation line items: %w", err)
		}
	}
	return nil
}

// Update replaces the reservation document and rewrites its line items.
func (repo *mongoReservationRepo) Update(ctx context.Context, res *models.Reservation, items []models.ReservationLineItem) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := repo.resColl.ReplaceOne(ctx, bson.M{"id": res.ID}, res)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", res.ID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	if _, err := repo.itemColl.DeleteMany(ctx, bson.M{"reservation_id": res.ID}); err != nil {
		return fmt.Errorf("failed to clear line items for reservation %s: %w", res.ID, err)
	}
	if len(items) > 0 {
		docs := make([]interface{}, 0, len(items))
		for _, item := range items {
			docs = append(docs, item)
		}
		if _, err := repo.itemColl.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to rewrite line items for reservation %s: %w", res.ID, err)
		}
	}
	return nil
}

// GetByID returns the reservation and its line items.
func (repo *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, []models.ReservationLineItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var res models.Reservation
	if err := repo.resColl.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}

	cursor, err := repo.itemColl.Find(ctx, bson.M{"reservation_id": id})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch line items for reservation %s: %w", id, err)
	}
	defer cursor.Close(ctx)

	var items []models.ReservationLineItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, nil, fmt.Errorf("failed to decode line items for reservation %s: %w", id, err)
	}
	return &res, items, nil
}

// List returns reservations for the staff dashboard, newest first.
// An empty status returns all lifecycle states.
func (repo *mongoReservationRepo) List(ctx context.Context, status string, limit, offset int64) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := repo.resColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return out, nil
}

// UpdateStatus sets the lifecycle status of a reservation.
func (repo *mongoReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := repo.resColl.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status for reservation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CompleteIfDeparted marks a confirmed reservation completed once its
// checkout day has passed. Returns false when the guard did not match,
// e.g. the reservation was cancelled in the meantime.
func (repo *mongoReservationRepo) CompleteIfDeparted(ctx context.Context, id, today string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"id":        id,
		"status":    models.StatusConfirmed,
		"check_out": bson.M{"$lte": today},
	}
	update := bson.M{"$set": bson.M{"status": models.StatusCompleted, "updated_at": time.Now()}}
	result, err := repo.resColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to complete reservation %s: %w", id, err)
	}
	return result.ModifiedCount > 0, nil
}
