package reservationRepo

import (
	"context"
	"fmt"

	"seabreeze/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FetchOccupancyRecords joins line items of the class with their parent
// reservations and filters server-side to rows whose dates can touch
// [from, to). YMD strings compare lexicographically, so the overlap test
// runs directly on the stored date fields. The exclusion id is applied
// here, at the query boundary, as the single canonical filter.
func (repo *mongoReservationRepo) FetchOccupancyRecords(ctx context.Context, class models.ResourceClass, from, to, excludeReservationID string) ([]models.OccupancyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	resMatch := bson.M{
		"reservation.status": bson.M{"$in": bson.A{models.StatusPending, models.StatusConfirmed}},
		"$or": bson.A{
			// Multi-day [check_in, check_out) overlapping the window.
			bson.M{
				"reservation.check_in":  bson.M{"$lt": to},
				"reservation.check_out": bson.M{"$gt": from},
			},
			// Single-day holds and legacy rows occupy their check-in day.
			bson.M{
				"reservation.check_in": bson.M{"$gte": from, "$lt": to},
			},
			// Explicit usage dates inside the window.
			bson.M{
				"usage_date": bson.M{"$gte": from, "$lt": to},
			},
		},
	}
	if excludeReservationID != "" {
		resMatch["reservation.id"] = bson.M{"$ne": excludeReservationID}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"resource_class": class}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "reservations",
			"localField":   "reservation_id",
			"foreignField": "id",
			"as":           "reservation",
		}}},
		{{Key: "$unwind", Value: "$reservation"}},
		{{Key: "$match", Value: resMatch}},
		{{Key: "$project", Value: bson.M{
			"reservation_id": 1,
			"resource_class": 1,
			"instance_name":  1,
			"usage_date":     1,
			"status":         "$reservation.status",
			"check_in":       "$reservation.check_in",
			"check_out":      "$reservation.check_out",
		}}},
	}

	cursor, err := repo.itemColl.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("occupancy aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.OccupancyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding occupancy records: %w", err)
	}
	return records, nil
}
