package tour

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	tourRepo "tourbase/database/repository/tour"
	"tourbase/models"
)

// fakeTourRepo serves a fixed set of tours from memory.
type fakeTourRepo struct {
	tours map[string]*models.Tour
}

func (f *fakeTourRepo) Create(ctx context.Context, t *models.Tour) error {
	f.tours[t.ID] = t
	return nil
}

func (f *fakeTourRepo) GetByID(ctx context.Context, id string) (*models.Tour, error) {
	t, ok := f.tours[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return t, nil
}

func (f *fakeTourRepo) List(ctx context.Context, q tourRepo.TourQuery) ([]models.Tour, int64, error) {
	var out []models.Tour
	for _, t := range f.tours {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTourRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Tour, error) {
	return f.tours[id], nil
}

func (f *fakeTourRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeTourRepo) UpdateReviewStats(ctx context.Context, id string, avg float64, count int) error {
	return nil
}

func newTestService(tours ...*models.Tour) *DefaultTourService {
	repo := &fakeTourRepo{tours: map[string]*models.Tour{}}
	for _, t := range tours {
		repo.tours[t.ID] = t
	}
	return &DefaultTourService{
		Repo: repo,
		Now:  func() time.Time { return time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC) },
	}
}

func weeklyTour() *models.Tour {
	return &models.Tour{
		ID:    "everest-base",
		Title: "Everest Base Camp Trek",
		Price: 1200,
		Dates: models.TourDates{
			ScheduleType:      models.ScheduleFixed,
			SingleDateRange:   &models.DateRange{From: "2025-01-01", To: "2025-01-05"},
			IsRecurring:       true,
			RecurrencePattern: models.RecurWeekly,
			RecurrenceEndDate: "2025-03-31",
			Days:              5,
		},
	}
}

func TestListDeparturesMonthFilter(t *testing.T) {
	svc := newTestService(weeklyTour())

	page, err := svc.ListDepartures(context.Background(), "everest-base", DepartureQuery{Month: "2025-02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Weekly from 2025-01-01: February starts are 02-05, 02-12, 02-19, 02-26.
	if page.Total != 4 {
		t.Fatalf("expected 4 February departures, got %d", page.Total)
	}
	for _, item := range page.Items {
		if item.Departure.DateRange.From[:7] != "2025-02" {
			t.Errorf("departure %s leaked through the month filter", item.Departure.DateRange.From)
		}
		if item.Price.DisplayPrice != 1200 {
			t.Errorf("expected base price 1200, got %v", item.Price.DisplayPrice)
		}
	}
}

func TestListDeparturesPaging(t *testing.T) {
	svc := newTestService(weeklyTour())

	first, err := svc.ListDepartures(context.Background(), "everest-base", DepartureQuery{Page: 1, PerPage: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Weekly 2025-01-01 through 2025-03-31 is 13 instances.
	if first.Total != 13 {
		t.Fatalf("expected 13 departures, got %d", first.Total)
	}
	if len(first.Items) != 5 {
		t.Fatalf("expected page of 5, got %d", len(first.Items))
	}

	last, err := svc.ListDepartures(context.Background(), "everest-base", DepartureQuery{Page: 3, PerPage: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(last.Items) != 3 {
		t.Fatalf("expected 3 items on the last page, got %d", len(last.Items))
	}

	beyond, err := svc.ListDepartures(context.Background(), "everest-base", DepartureQuery{Page: 9, PerPage: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(beyond.Items) != 0 || beyond.Total != 13 {
		t.Fatalf("expected empty page beyond the end, got %d items", len(beyond.Items))
	}
}

func TestListDeparturesNoSchedule(t *testing.T) {
	bare := &models.Tour{ID: "bare", Title: "Unscheduled", Price: 100,
		Dates: models.TourDates{ScheduleType: models.ScheduleFixed}}
	svc := newTestService(bare)

	page, err := svc.ListDepartures(context.Background(), "bare", DepartureQuery{})
	if err != nil {
		t.Fatalf("missing schedule should not error: %v", err)
	}
	if page.Total != 0 || len(page.Items) != 0 {
		t.Fatalf("expected no departures, got %+v", page)
	}
}

func TestTourCardPriceUsesSale(t *testing.T) {
	sale := weeklyTour()
	sale.SalePrice = 999
	sale.SaleEnabled = true
	svc := newTestService(sale)

	res, err := svc.TourCardPrice(context.Background(), "everest-base")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.HasDiscount || res.DisplayPrice != 999 || res.OriginalPrice != 1200 {
		t.Fatalf("unexpected card price %+v", res)
	}
}

func TestFilterByMonthSkipsMalformedDates(t *testing.T) {
	deps := []models.Departure{
		{DateRange: models.DateRange{From: "2025-02-01"}},
		{DateRange: models.DateRange{From: "bad"}},
		{DateRange: models.DateRange{From: ""}},
	}
	got := filterByMonth(deps, "2025-02")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
}
