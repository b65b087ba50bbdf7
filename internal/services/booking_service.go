package services

import (
	"context"
	"errors"

	"rakb/api/internal/models"
	"rakb/api/internal/store"
)

// ErrDatesUnavailable is returned when the requested date range intersects
// an existing booking for the same listing.
var ErrDatesUnavailable = errors.New("dates not available")

// IBookingService defines booking creation with overlap checking.
type IBookingService interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
}

// bookingService implements IBookingService.
type bookingService struct {
	store store.Store
}

// NewBookingService creates a new BookingService.
func NewBookingService(st store.Store) IBookingService {
	return &bookingService{store: st}
}

// overlapFilter matches existing bookings for the same listing whose range
// intersects the candidate's: existing.start <= cand.end AND
// existing.end >= cand.start. Dates are ISO strings, so lexicographic
// comparison is chronological.
func overlapFilter(b *models.Booking) store.Filter {
	return store.Where().
		Eq("listing_id", b.ListingID).
		Lte("start_date", b.EndDate).
		Gte("end_date", b.StartDate)
}

// Create checks for a date-range overlap and inserts the booking. The check
// and the insert are two separate store operations with no enclosing
// transaction, so concurrent creates for the same listing can both pass
// the check.
func (s *bookingService) Create(ctx context.Context, booking *models.Booking) (string, error) {
	existing, err := s.store.Find(ctx, models.BookingCollection, overlapFilter(booking), 1)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return "", ErrDatesUnavailable
	}

	return s.store.Create(ctx, models.BookingCollection, booking)
}
