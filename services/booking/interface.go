package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	bookingRepo "tourbase/database/repository/booking"
	"tourbase/models"
	"tourbase/services/notification"
	"tourbase/services/tour"
)

// PaxInput is one requested line of a booking quote.
type PaxInput struct {
	OptionID string `json:"optionId"`
	Pax      int    `json:"pax"`
}

// BookingSessionService drives the three-phase booking flow: initiate a
// session, update it with a departure and pax selection, then confirm.
type BookingSessionService interface {
	InitiateSession(ctx context.Context, userID, tourID string) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, sessionID string, departureIndex int, pax []PaxInput) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Tours        tour.TourService
	Repo         bookingRepo.BookingRepository
	Notification notification.NotificationService
	Payments     PaymentHandler
	SessionCache *redis.Client
	ReminderQ    *asynq.Client
	Now          func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
