package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tourbase/models"
	"tourbase/services/pricing"
	"tourbase/services/tour"
	"tourbase/utils"
)

const (
	sessionKeyPrefix = "bookingSession:"
	sessionTTL       = 30 * time.Minute
)

// InitiateSession loads the tour, expands its departures and caches a fresh
// session for the storefront to walk through.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, userID, tourID string) (*models.BookingSession, error) {
	page, err := s.Tours.ListDepartures(ctx, tourID, tour.DepartureQuery{PerPage: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to load departures: %w", err)
	}
	t, err := s.Tours.GetTour(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tour: %w", err)
	}
	if t.Enquiry {
		return nil, NewInvalidSelectionError("this tour accepts enquiries only, not online bookings")
	}

	departures := make([]models.Departure, 0, len(page.Items))
	for _, item := range page.Items {
		departures = append(departures, item.Departure)
	}

	session := &models.BookingSession{
		SessionID:  uuid.New().String(),
		UserID:     userID,
		TourID:     tourID,
		TourTitle:  t.Title,
		Departures: departures,
		CreatedAt:  s.now(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession records the departure and pax selection and recomputes the quote.
func (s *DefaultBookingSessionService) UpdateSession(ctx context.Context, sessionID string, departureIndex int, pax []PaxInput) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if departureIndex < 0 || departureIndex >= len(session.Departures) {
		return nil, NewInvalidSelectionError("departure selection out of range")
	}
	dep := session.Departures[departureIndex]
	session.SelectedDeparture = &dep

	t, err := s.Tours.GetTour(ctx, session.TourID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tour: %w", err)
	}

	quote, err := s.buildQuote(t, dep, pax)
	if err != nil {
		return nil, err
	}
	session.Quote = quote

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// buildQuote prices each pax line against the tour's pricing tables. A line
// whose option id resolves to nothing is rejected here, unlike display
// pricing which falls back silently.
func (s *DefaultBookingSessionService) buildQuote(t *models.Tour, dep models.Departure, pax []PaxInput) (*models.Quote, error) {
	now := s.now()
	quote := &models.Quote{
		Price: pricing.CalculateDeparturePrice(dep, t.Price, t.SalePrice, t.SaleEnabled, t.PricingOptions, t.PricingGroups, now),
	}

	if len(pax) == 0 {
		return nil, NewInvalidSelectionError("at least one traveller is required")
	}
	for _, line := range pax {
		if line.Pax <= 0 {
			return nil, NewInvalidSelectionError("traveller count must be positive")
		}
		opt := pricing.ResolvePricingOption([]string{line.OptionID}, t.PricingOptions, t.PricingGroups)
		if opt == nil {
			// No tiered pricing on this tour: fall back to the headline price.
			if line.OptionID != "" {
				return nil, NewInvalidSelectionError("unknown pricing option " + line.OptionID)
			}
			quote.Lines = append(quote.Lines, models.PaxSelection{
				OptionName: "Standard",
				Pax:        line.Pax,
				UnitPrice:  quote.Price.DisplayPrice,
			})
			quote.TotalPax += line.Pax
			quote.TotalPrice += float64(line.Pax) * quote.Price.DisplayPrice
			continue
		}
		if opt.MinPax > 0 && line.Pax < opt.MinPax {
			return nil, NewInvalidSelectionError(fmt.Sprintf("%s requires at least %d travellers", opt.Name, opt.MinPax))
		}
		if opt.MaxPax > 0 && line.Pax > opt.MaxPax {
			return nil, NewInvalidSelectionError(fmt.Sprintf("%s allows at most %d travellers", opt.Name, opt.MaxPax))
		}
		unit := pricing.CalculateOptionPrice(*opt, now).DisplayPrice
		quote.Lines = append(quote.Lines, models.PaxSelection{
			OptionID:   opt.ID,
			OptionName: opt.Name,
			Pax:        line.Pax,
			UnitPrice:  unit,
		})
		quote.TotalPax += line.Pax
		quote.TotalPrice += float64(line.Pax) * unit
	}

	if dep.Capacity > 0 && quote.TotalPax > dep.Capacity {
		return nil, NewInvalidSelectionError(fmt.Sprintf("departure capacity is %d travellers", dep.Capacity))
	}
	return quote, nil
}

// CancelSession drops the cached session.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.SessionCache.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

func (s *DefaultBookingSessionService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.SessionCache.Set(ctx, sessionKeyPrefix+session.SessionID, data, sessionTTL).Err(); err != nil {
		utils.GetLogger().Error("failed to cache booking session", zap.Error(err))
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.SessionCache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, NewSessionNotFoundError(sessionID)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}
