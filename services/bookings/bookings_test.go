package bookings

import (
	"context"
	"testing"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockBookingRepository struct {
	insertOrderFunc   func(ctx context.Context, order models.Order) (*models.InsertResult, error)
	insertBookingFunc func(ctx context.Context, booking models.Booking) (*models.InsertResult, error)
	updateStatusFunc  func(ctx context.Context, id primitive.ObjectID, status string) (*models.UpdateResult, error)
	calls             int
}

func (m *mockBookingRepository) InsertOrder(ctx context.Context, order models.Order) (*models.InsertResult, error) {
	m.calls++
	if m.insertOrderFunc != nil {
		return m.insertOrderFunc(ctx, order)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockBookingRepository) CountOrders(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockBookingRepository) CountOrdersByEmail(ctx context.Context, email string) (int64, error) {
	return 0, nil
}

func (m *mockBookingRepository) InsertBooking(ctx context.Context, booking models.Booking) (*models.InsertResult, error) {
	m.calls++
	if m.insertBookingFunc != nil {
		return m.insertBookingFunc(ctx, booking)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockBookingRepository) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	m.calls++
	return nil, nil
}

func (m *mockBookingRepository) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	m.calls++
	return nil, nil
}

func (m *mockBookingRepository) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.UpdateResult, error) {
	m.calls++
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockBookingRepository) DeleteBooking(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	m.calls++
	return &models.DeleteResult{DeletedCount: 1}, nil
}

func TestCreateBooking_DefaultsToPending(t *testing.T) {
	var got models.Booking
	repo := &mockBookingRepository{
		insertBookingFunc: func(ctx context.Context, booking models.Booking) (*models.InsertResult, error) {
			got = booking
			return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
		},
	}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CreateBooking(context.Background(), models.Booking{UserEmail: "bride@example.com"})

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateBooking_KeepsExplicitStatus(t *testing.T) {
	var got models.Booking
	repo := &mockBookingRepository{
		insertBookingFunc: func(ctx context.Context, booking models.Booking) (*models.InsertResult, error) {
			got = booking
			return &models.InsertResult{Acknowledged: true}, nil
		},
	}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CreateBooking(context.Background(), models.Booking{UserEmail: "bride@example.com", Status: "Confirmed"})

	require.NoError(t, err)
	assert.Equal(t, "Confirmed", got.Status)
}

func TestCreateOrder_RequiresEmailAndStampsTime(t *testing.T) {
	var got models.Order
	repo := &mockBookingRepository{
		insertOrderFunc: func(ctx context.Context, order models.Order) (*models.InsertResult, error) {
			got = order
			return &models.InsertResult{Acknowledged: true}, nil
		},
	}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CreateOrder(context.Background(), models.Order{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.CreateOrder(context.Background(), models.Order{UserEmail: "bride@example.com"})
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUpdateStatus_InvalidIDShortCircuits(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.UpdateStatus(context.Background(), "not-an-id", "Confirmed")

	assert.ErrorIs(t, err, utils.ErrInvalidID)
	assert.Zero(t, repo.calls)
}

func TestUpdateStatus_RequiresStatus(t *testing.T) {
	svc := &DefaultBookingService{Repo: &mockBookingRepository{}}

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), "")

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
