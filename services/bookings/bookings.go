package bookings

import (
	"context"
	"fmt"
	"time"

	bookingRepo "weddingplanner/database/repository/bookings"
	"weddingplanner/models"
	"weddingplanner/utils"
)

// BookingService defines business logic for orders and bookings.
type BookingService interface {
	CreateOrder(ctx context.Context, order models.Order) (*models.InsertResult, error)
	CreateBooking(ctx context.Context, booking models.Booking) (*models.InsertResult, error)
	MyBookings(ctx context.Context, email string) ([]models.Booking, error)
	AllBookings(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

func (s *DefaultBookingService) CreateOrder(ctx context.Context, order models.Order) (*models.InsertResult, error) {
	if order.UserEmail == "" {
		return nil, fmt.Errorf("%w: userEmail is required", utils.ErrInvalidInput)
	}
	order.CreatedAt = time.Now()
	return s.Repo.InsertOrder(ctx, order)
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, booking models.Booking) (*models.InsertResult, error) {
	if booking.UserEmail == "" {
		return nil, fmt.Errorf("%w: userEmail is required", utils.ErrInvalidInput)
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	booking.CreatedAt = time.Now()
	return s.Repo.InsertBooking(ctx, booking)
}

func (s *DefaultBookingService) MyBookings(ctx context.Context, email string) ([]models.Booking, error) {
	return s.Repo.GetBookingsByEmail(ctx, email)
}

func (s *DefaultBookingService) AllBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetAllBookings(ctx)
}

func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id string, status string) (*models.UpdateResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", utils.ErrInvalidInput)
	}
	return s.Repo.UpdateBookingStatus(ctx, oid, status)
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.DeleteBooking(ctx, oid)
}
