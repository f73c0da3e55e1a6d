package tour

import (
	"context"

	"tourbase/models"
	"tourbase/services/pricing"
	"tourbase/services/schedule"
)

const defaultDeparturePerPage = 10

// ListDepartures expands the tour's schedule into concrete departures, prices
// each one, and applies the month filter and page slicing the storefront asks
// for. An empty page means no departures are available, never an error.
func (s *DefaultTourService) ListDepartures(ctx context.Context, tourID string, q DepartureQuery) (*DeparturePage, error) {
	t, err := s.GetTour(ctx, tourID)
	if err != nil {
		return nil, err
	}

	departures := schedule.GenerateDepartureInstances(t.Dates)
	departures = filterByMonth(departures, q.Month)

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultDeparturePerPage
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	total := len(departures)
	pick := slicePage(departures, page, perPage)

	now := s.now()
	items := make([]models.DepartureView, 0, len(pick))
	for _, dep := range pick {
		items = append(items, models.DepartureView{
			Departure: dep,
			Price:     pricing.CalculateDeparturePrice(dep, t.Price, t.SalePrice, t.SaleEnabled, t.PricingOptions, t.PricingGroups, now),
		})
	}

	return &DeparturePage{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

// filterByMonth keeps departures whose start date falls in month ("YYYY-MM").
// Malformed start dates never match.
func filterByMonth(deps []models.Departure, month string) []models.Departure {
	if month == "" {
		return deps
	}
	out := make([]models.Departure, 0, len(deps))
	for _, dep := range deps {
		if len(dep.DateRange.From) >= len(month) && dep.DateRange.From[:len(month)] == month {
			out = append(out, dep)
		}
	}
	return out
}

// slicePage returns the 1-based page of size perPage, clamped to bounds.
func slicePage(deps []models.Departure, page, perPage int) []models.Departure {
	start := (page - 1) * perPage
	if start >= len(deps) {
		return nil
	}
	end := start + perPage
	if end > len(deps) {
		end = len(deps)
	}
	return deps[start:end]
}
