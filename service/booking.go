package service

import (
	"context"
	"fmt"

	"github.com/aston-csic/csic-go/cache"
	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
)

type BookingAPI interface {
	CreateBooking(ctx context.Context, eventID string) (string, error)
	CancelBooking(ctx context.Context, bookingID string) error
	MarkAttendance(ctx context.Context, bookingID string, req request.MarkAttendanceRequest) error
	MyBookings(ctx context.Context) ([]domain.EventBooking, error)
}

type BookingService struct {
	api     BookingAPI
	queries *cache.Store
}

func NewBookingService(api BookingAPI, queries *cache.Store) *BookingService {
	return &BookingService{
		api:     api,
		queries: queries,
	}
}

// CreateBooking books the current user onto an event. The event's available
// spots change with it, so the event list and detail go stale too.
func (s *BookingService) CreateBooking(ctx context.Context, eventID string) (string, error) {
	req := request.CreateBookingRequest{EventID: eventID}
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := s.api.CreateBooking(ctx, eventID)
	if err != nil {
		return "", fmt.Errorf("s.api.CreateBooking -> %w", err)
	}

	s.queries.Apply(cache.MutationCreateBooking, eventID)

	return id, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, bookingID, eventID string) error {
	if err := s.api.CancelBooking(ctx, bookingID); err != nil {
		return fmt.Errorf("s.api.CancelBooking -> %w", err)
	}

	s.queries.Apply(cache.MutationCancelBooking, eventID)

	return nil
}

// MarkAttendance records Attended or NoShow on a booking; admin only on the
// server side.
func (s *BookingService) MarkAttendance(ctx context.Context, bookingID, eventID string, status domain.BookingStatus) error {
	req := request.MarkAttendanceRequest{Status: status}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.api.MarkAttendance(ctx, bookingID, req); err != nil {
		return fmt.Errorf("s.api.MarkAttendance -> %w", err)
	}

	s.queries.Apply(cache.MutationMarkAttendance, eventID)

	return nil
}

func (s *BookingService) MyBookings(ctx context.Context) ([]domain.EventBooking, error) {
	if bookings, ok := cache.GetAs[[]domain.EventBooking](s.queries, cache.KeyMyBookings); ok {
		return bookings, nil
	}

	bookings, err := s.api.MyBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.MyBookings -> %w", err)
	}

	s.queries.Set(cache.KeyMyBookings, bookings)

	return bookings, nil
}
