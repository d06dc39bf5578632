package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"weddingplanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the data-access contract for orders and bookings.
// The two collections live together because every dashboard metric that
// touches one touches the other.
type BookingRepository interface {
	InsertOrder(ctx context.Context, order models.Order) (*models.InsertResult, error)
	CountOrders(ctx context.Context) (int64, error)
	CountOrdersByEmail(ctx context.Context, email string) (int64, error)

	InsertBooking(ctx context.Context, booking models.Booking) (*models.InsertResult, error)
	GetAllBookings(ctx context.Context) ([]models.Booking, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.UpdateResult, error)
	DeleteBooking(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	orders   *mongo.Collection
	bookings *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the orders and
// bookings collections.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &MongoBookingRepo{
		orders:   db.Collection("orders"),
		bookings: db.Collection("bookings"),
	}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoBookingRepo) InsertOrder(ctx context.Context, order models.Order) (*models.InsertResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.orders.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *MongoBookingRepo) CountOrders(ctx context.Context) (int64, error) {
	return r.countOrders(ctx, bson.M{})
}

func (r *MongoBookingRepo) CountOrdersByEmail(ctx context.Context, email string) (int64, error) {
	return r.countOrders(ctx, bson.M{"userEmail": email})
}

func (r *MongoBookingRepo) countOrders(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.orders.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return n, nil
}

func (r *MongoBookingRepo) InsertBooking(ctx context.Context, booking models.Booking) (*models.InsertResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.bookings.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *MongoBookingRepo) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	return r.findBookings(ctx, bson.M{})
}

func (r *MongoBookingRepo) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.findBookings(ctx, bson.M{"userEmail": email})
}

func (r *MongoBookingRepo) findBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.bookings.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.UpdateResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.bookings.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id.Hex(), err)
	}
	return &models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *MongoBookingRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.bookings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking %s: %w", id.Hex(), err)
	}
	return &models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
