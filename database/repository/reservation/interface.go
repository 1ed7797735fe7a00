package reservationRepo

import (
	"context"

	"seabreeze/database"
	"seabreeze/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository is the read/write surface over the reservation
// ledger. The availability engine only consumes FetchOccupancyRecords;
// everything else serves the booking write path and the staff dashboards.
type ReservationRepository interface {
	Create(ctx context.Context, res *models.Reservation, items []models.ReservationLineItem) error
	Update(ctx context.Context, res *models.Reservation, items []models.ReservationLineItem) error
	GetByID(ctx context.Context, id string) (*models.Reservation, []models.ReservationLineItem, error)
	List(ctx context.Context, status string, limit, offset int64) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CompleteIfDeparted(ctx context.Context, id, today string) (bool, error)

	// FetchOccupancyRecords returns reservation/line-item pairs for the
	// class whose dates can touch [from, to). Only pending and confirmed
	// reservations are returned, and excludeReservationID is filtered out
	// at the query boundary.
	FetchOccupancyRecords(ctx context.Context, class models.ResourceClass, from, to, excludeReservationID string) ([]models.OccupancyRecord, error)

	EnsureIndexes() error
}

type mongoReservationRepo struct {
	resColl  *mongo.Collection
	itemColl *mongo.Collection
}

// NewMongoReservationRepo constructs a Mongo-backed ReservationRepository.
func NewMongoReservationRepo(dbName string) ReservationRepository {
	db := database.MongoClient.Database(dbName)
	return &mongoReservationRepo{
		resColl:  db.Collection("reservations"),
		itemColl: db.Collection("reservation_items"),
	}
}
