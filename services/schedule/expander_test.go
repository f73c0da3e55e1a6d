package schedule

import (
	"reflect"
	"testing"
	"time"

	"tourbase/models"
)

func fixedWeekly() models.TourDates {
	return models.TourDates{
		ScheduleType:      models.ScheduleFixed,
		SingleDateRange:   &models.DateRange{From: "2025-01-01", To: "2025-01-05"},
		IsRecurring:       true,
		RecurrencePattern: models.RecurWeekly,
		RecurrenceEndDate: "2025-01-22",
		Days:              5,
	}
}

func TestFixedWeeklyExpansion(t *testing.T) {
	got := GenerateDepartureInstances(fixedWeekly())
	wantStarts := []string{"2025-01-01", "2025-01-08", "2025-01-15", "2025-01-22"}
	if len(got) != len(wantStarts) {
		t.Fatalf("expected %d instances, got %d", len(wantStarts), len(got))
	}
	for i, dep := range got {
		if dep.DateRange.From != wantStarts[i] {
			t.Errorf("instance %d: expected start %s, got %s", i, wantStarts[i], dep.DateRange.From)
		}
		if dep.IsRecurring {
			t.Errorf("instance %d: still marked recurring", i)
		}
		if dep.Label != FixedScheduleLabel {
			t.Errorf("instance %d: expected label %q, got %q", i, FixedScheduleLabel, dep.Label)
		}
		from, _ := time.Parse("2006-01-02", dep.DateRange.From)
		to, _ := time.Parse("2006-01-02", dep.DateRange.To)
		if days := int(to.Sub(from).Hours()/24) + 1; days != 5 {
			t.Errorf("instance %d: expected span of 5 days, got %d", i, days)
		}
	}
}

func TestExpansionIsIdempotent(t *testing.T) {
	td := fixedWeekly()
	first := GenerateDepartureInstances(td)
	second := GenerateDepartureInstances(td)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two expansions of the same input differ")
	}
}

func TestWeeklyInstancesAreSevenDaysApart(t *testing.T) {
	got := GenerateDepartureInstances(fixedWeekly())
	for i := 1; i < len(got); i++ {
		prev, _ := time.Parse("2006-01-02", got[i-1].DateRange.From)
		cur, _ := time.Parse("2006-01-02", got[i].DateRange.From)
		if gap := cur.Sub(prev); gap != 7*24*time.Hour {
			t.Errorf("gap between instance %d and %d is %v, want 168h", i-1, i, gap)
		}
	}
}

func TestRecurrenceCap(t *testing.T) {
	td := models.TourDates{
		ScheduleType:      models.ScheduleFixed,
		SingleDateRange:   &models.DateRange{From: "2025-01-01", To: "2025-01-01"},
		IsRecurring:       true,
		RecurrencePattern: models.RecurDaily,
		RecurrenceEndDate: "2035-01-01",
		Days:              1,
	}
	got := GenerateDepartureInstances(td)
	if len(got) != 100 {
		t.Fatalf("expected expansion capped at 100 instances, got %d", len(got))
	}
}

func TestUnknownPatternStopsAfterFirstInstance(t *testing.T) {
	td := fixedWeekly()
	td.RecurrencePattern = "fortnightly-ish"
	got := GenerateDepartureInstances(td)
	if len(got) != 1 {
		t.Fatalf("expected a single instance for unknown pattern, got %d", len(got))
	}
	if got[0].DateRange.From != "2025-01-01" {
		t.Errorf("unexpected start %s", got[0].DateRange.From)
	}
}

func TestEndDateBeforeStartYieldsNothing(t *testing.T) {
	td := fixedWeekly()
	td.RecurrenceEndDate = "2024-12-01"
	if got := GenerateDepartureInstances(td); len(got) != 0 {
		t.Fatalf("expected no instances, got %d", len(got))
	}
}

func TestUnparseableTemplateDatesReturnTemplate(t *testing.T) {
	template := models.Departure{
		Label:             "Spring run",
		DateRange:         models.DateRange{From: "not-a-date", To: "2025-05-01"},
		IsRecurring:       true,
		RecurrencePattern: models.RecurWeekly,
		RecurrenceEndDate: "2025-06-01",
	}
	got := ExpandRecurring(template, 3)
	if len(got) != 1 {
		t.Fatalf("expected template passthrough, got %d instances", len(got))
	}
	if !reflect.DeepEqual(got[0], template) {
		t.Errorf("template was mutated: %+v", got[0])
	}
}

func TestMultipleSchedule(t *testing.T) {
	td := models.TourDates{
		ScheduleType: models.ScheduleMultiple,
		Days:         3,
		Departures: []models.Departure{
			{
				Label:     "Easter departure",
				DateRange: models.DateRange{From: "2025-04-18", To: "2025-04-20"},
			},
			{
				Label:             "Summer series",
				DateRange:         models.DateRange{From: "2025-06-01", To: "2025-06-03"},
				IsRecurring:       true,
				RecurrencePattern: models.RecurBiweekly,
				RecurrenceEndDate: "2025-06-29",
			},
			{
				Label:     "Broken entry",
				DateRange: models.DateRange{From: "2025-07-01"},
			},
		},
	}
	got := GenerateDepartureInstances(td)
	// 1 verbatim + 3 biweekly (06-01, 06-15, 06-29); the incomplete entry is dropped.
	if len(got) != 4 {
		t.Fatalf("expected 4 instances, got %d", len(got))
	}
	if got[0].Label != "Easter departure" || got[0].IsRecurring {
		t.Errorf("verbatim departure mangled: %+v", got[0])
	}
	wantStarts := []string{"2025-06-01", "2025-06-15", "2025-06-29"}
	for i, want := range wantStarts {
		if got[i+1].DateRange.From != want {
			t.Errorf("series instance %d: expected start %s, got %s", i, want, got[i+1].DateRange.From)
		}
	}
}

func TestFlexibleSchedule(t *testing.T) {
	td := models.TourDates{
		ScheduleType:           models.ScheduleFlexible,
		DefaultDateRange:       &models.DateRange{From: "2025-03-01", To: "2025-03-10"},
		SelectedPricingOptions: []string{"adult"},
	}
	got := GenerateDepartureInstances(td)
	if len(got) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(got))
	}
	if got[0].Label != FlexibleScheduleLabel {
		t.Errorf("expected label %q, got %q", FlexibleScheduleLabel, got[0].Label)
	}
	if len(got[0].SelectedPricingOptions) != 1 || got[0].SelectedPricingOptions[0] != "adult" {
		t.Errorf("pricing options not carried through: %v", got[0].SelectedPricingOptions)
	}
}

func TestMissingRangesYieldNothing(t *testing.T) {
	cases := []models.TourDates{
		{ScheduleType: models.ScheduleFixed},
		{ScheduleType: models.ScheduleFlexible},
		{ScheduleType: models.ScheduleFixed, SingleDateRange: &models.DateRange{From: "2025-01-01"}},
		{ScheduleType: "unknown"},
	}
	for i, td := range cases {
		if got := GenerateDepartureInstances(td); len(got) != 0 {
			t.Errorf("case %d: expected no instances, got %d", i, len(got))
		}
	}
}

func TestMonthlyAdvance(t *testing.T) {
	td := models.TourDates{
		ScheduleType:      models.ScheduleFixed,
		SingleDateRange:   &models.DateRange{From: "2025-01-15", To: "2025-01-17"},
		IsRecurring:       true,
		RecurrencePattern: models.RecurMonthly,
		RecurrenceEndDate: "2025-04-30",
		Days:              3,
	}
	got := GenerateDepartureInstances(td)
	wantStarts := []string{"2025-01-15", "2025-02-15", "2025-03-15", "2025-04-15"}
	if len(got) != len(wantStarts) {
		t.Fatalf("expected %d instances, got %d", len(wantStarts), len(got))
	}
	for i, want := range wantStarts {
		if got[i].DateRange.From != want {
			t.Errorf("instance %d: expected %s, got %s", i, want, got[i].DateRange.From)
		}
	}
}
