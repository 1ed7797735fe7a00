package resourceRepo

import (
	"context"
	"fmt"
	"time"

	"seabreeze/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListFunctionHallTitles returns the hall titles, deduplicated while
// preserving collection order.
func (repo *mongoResourceRepo) ListFunctionHallTitles(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"class": models.ResourceFunctionHall}
	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list function halls: %w", err)
	}
	defer cursor.Close(ctx)

	var resources []models.Resource
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, fmt.Errorf("failed to decode function halls: %w", err)
	}

	seen := make(map[string]bool, len(resources))
	titles := make([]string, 0, len(resources))
	for _, r := range resources {
		if r.Title == "" || seen[r.Title] {
			continue
		}
		seen[r.Title] = true
		titles = append(titles, r.Title)
	}
	return titles, nil
}
