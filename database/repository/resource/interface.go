package resourceRepo

import (
	"context"

	"seabreeze/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// ResourceRepository exposes the dynamically managed part of the
// inventory. Rooms and cottages are fixed; function halls live in the
// resource collection and staff can add or retire them.
type ResourceRepository interface {
	ListFunctionHallTitles(ctx context.Context) ([]string, error)
}

type mongoResourceRepo struct {
	coll *mongo.Collection
}

// NewMongoResourceRepo constructs a Mongo-backed ResourceRepository.
func NewMongoResourceRepo(dbName string) ResourceRepository {
	db := database.MongoClient.Database(dbName)
	return &mongoResourceRepo{
		coll: db.Collection("resources"),
	}
}
