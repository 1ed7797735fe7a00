package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the occupancy queries rely on.
func (repo *mongoReservationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "check_in", Value: 1}},
		},
	}
	if _, err := repo.resColl.Indexes().CreateMany(ctx, resIndexes); err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}

	itemIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "reservation_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "resource_class", Value: 1}, {Key: "usage_date", Value: 1}},
		},
	}
	if _, err := repo.itemColl.Indexes().CreateMany(ctx, itemIndexes); err != nil {
		return fmt.Errorf("failed to create line item indexes: %w", err)
	}
	return nil
}
