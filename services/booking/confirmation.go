package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tourbase/models"
	"tourbase/services/tasks"
	"tourbase/utils"
)

const reminderLeadTime = 48 * time.Hour

// ConfirmBooking charges the quoted total, persists the booking, notifies the
// user and schedules a departure reminder. The session is consumed on success.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SelectedDeparture == nil || session.Quote == nil {
		return nil, NewInvalidSelectionError("select a departure and travellers before confirming")
	}

	description := fmt.Sprintf("%s departing %s", session.TourTitle, session.SelectedDeparture.DateRange.From)
	paymentID, err := s.Payments.Charge(ctx, session.Quote.TotalPrice, "usd", description)
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	booking := &models.Booking{
		TourID:          session.TourID,
		TourTitle:       session.TourTitle,
		UserID:          session.UserID,
		Departure:       *session.SelectedDeparture,
		Lines:           session.Quote.Lines,
		TotalPax:        session.Quote.TotalPax,
		TotalPrice:      session.Quote.TotalPrice,
		Status:          models.BookingStatusConfirmed,
		PaymentIntentID: paymentID,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	// Post-payment side effects are best effort; the booking stands either way.
	s.notifyConfirmed(ctx, booking)
	s.scheduleReminder(booking)

	if err := s.CancelSession(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to drop confirmed session", zap.String("sessionId", sessionID), zap.Error(err))
	}
	return booking, nil
}

func (s *DefaultBookingSessionService) notifyConfirmed(ctx context.Context, b *models.Booking) {
	if s.Notification == nil {
		return
	}
	body := fmt.Sprintf("Your booking for %s on %s is confirmed.", b.TourTitle, b.Departure.DateRange.From)
	err := s.Notification.SendUserPush(ctx, b.UserID, "Booking confirmed", body, map[string]string{
		"bookingId": b.ID,
		"type":      "booking_confirmed",
	})
	if err != nil {
		utils.GetLogger().Warn("booking confirmation push failed", zap.String("bookingId", b.ID), zap.Error(err))
	}
}

// scheduleReminder enqueues an asynq reminder 48h before the departure start.
// Malformed start dates or near-term departures simply skip the reminder.
func (s *DefaultBookingSessionService) scheduleReminder(b *models.Booking) {
	if s.ReminderQ == nil {
		return
	}
	start, err := time.Parse("2006-01-02", b.Departure.DateRange.From)
	if err != nil {
		return
	}
	fireAt := start.Add(-reminderLeadTime)
	if !fireAt.After(s.now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID: b.ID,
		UserID:    b.UserID,
		TourTitle: b.TourTitle,
		StartDate: b.Departure.DateRange.From,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Warn("failed to build reminder task", zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	if _, err := s.ReminderQ.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder task", zap.String("bookingId", b.ID), zap.Error(err))
	}
}
