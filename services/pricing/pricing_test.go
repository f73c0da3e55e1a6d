package pricing

import (
	"testing"
	"time"

	"tourbase/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestTourLevelSale(t *testing.T) {
	dep := models.Departure{}
	got := CalculateDeparturePrice(dep, 100, 80, true, nil, nil, testNow)
	want := models.PriceResult{OriginalPrice: 100, DisplayPrice: 80, HasDiscount: true, DiscountPercentage: 20}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSaleDisabledUsesBasePrice(t *testing.T) {
	got := CalculateDeparturePrice(models.Departure{}, 100, 80, false, nil, nil, testNow)
	if got.DisplayPrice != 100 || got.HasDiscount {
		t.Fatalf("expected plain base price, got %+v", got)
	}
}

func TestOptionOverridesSale(t *testing.T) {
	dep := models.Departure{SelectedPricingOptions: []string{"adult"}}
	opts := []models.PricingOption{{ID: "adult", Name: "Adult", Price: 120}}
	got := CalculateDeparturePrice(dep, 100, 80, true, opts, nil, testNow)
	if got.OriginalPrice != 120 || got.DisplayPrice != 120 || got.HasDiscount {
		t.Fatalf("expected option price to override sale, got %+v", got)
	}
}

func TestFixedPriceDiscountIsAbsolute(t *testing.T) {
	dep := models.Departure{SelectedPricingOptions: []string{"adult"}}
	opts := []models.PricingOption{{
		ID:              "adult",
		Price:           50,
		DiscountEnabled: true,
		Discount: &models.Discount{
			PercentageOrPrice: false,
			DiscountPrice:     35,
			DiscountDateRange: &models.DateRange{From: "2000-01-01", To: "2099-01-01"},
		},
	}}
	got := CalculateDeparturePrice(dep, 100, 0, false, opts, nil, testNow)
	want := models.PriceResult{OriginalPrice: 50, DisplayPrice: 35, HasDiscount: true, DiscountPercentage: 30}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPercentageDiscount(t *testing.T) {
	dep := models.Departure{SelectedPricingOptions: []string{"child"}}
	opts := []models.PricingOption{{
		ID:              "child",
		Price:           200,
		DiscountEnabled: true,
		Discount: &models.Discount{
			PercentageOrPrice:  true,
			DiscountPercentage: 25,
		},
	}}
	got := CalculateDeparturePrice(dep, 100, 0, false, opts, nil, testNow)
	if got.DisplayPrice != 150 || got.DiscountPercentage != 25 {
		t.Fatalf("expected 25%% off 200, got %+v", got)
	}
}

func TestFutureDiscountWindowNotActive(t *testing.T) {
	dep := models.Departure{SelectedPricingOptions: []string{"adult"}}
	opts := []models.PricingOption{{
		ID:              "adult",
		Price:           100,
		DiscountEnabled: true,
		Discount: &models.Discount{
			PercentageOrPrice:  true,
			DiscountPercentage: 20,
			DiscountDateRange:  &models.DateRange{From: "2099-01-01", To: "2099-12-31"},
		},
	}}
	got := CalculateDeparturePrice(dep, 100, 0, false, opts, nil, testNow)
	if got.HasDiscount {
		t.Fatalf("discount applied before its window opened: %+v", got)
	}
}

func TestExpiredDiscountWindowNotActive(t *testing.T) {
	opt := models.PricingOption{
		ID:              "adult",
		Price:           100,
		DiscountEnabled: true,
		Discount: &models.Discount{
			PercentageOrPrice:  true,
			DiscountPercentage: 20,
			DiscountDateRange:  &models.DateRange{From: "2020-01-01", To: "2020-12-31"},
		},
	}
	got := CalculateOptionPrice(opt, testNow)
	if got.HasDiscount {
		t.Fatalf("expired discount applied: %+v", got)
	}
}

func TestOpenEndedDiscountWindow(t *testing.T) {
	opt := models.PricingOption{
		ID:              "adult",
		Price:           100,
		DiscountEnabled: true,
		Discount: &models.Discount{
			PercentageOrPrice:  true,
			DiscountPercentage: 10,
			DiscountDateRange:  &models.DateRange{From: "2020-01-01"},
		},
	}
	got := CalculateOptionPrice(opt, testNow)
	if !got.HasDiscount || got.DisplayPrice != 90 {
		t.Fatalf("open-ended window should be active: %+v", got)
	}
}

func TestWindowEndDateIsInclusive(t *testing.T) {
	opt := models.PricingOption{
		ID:              "adult",
		Price:           100,
		DiscountEnabled: true,
		Discount: &models.Discount{
			PercentageOrPrice:  true,
			DiscountPercentage: 10,
			DiscountDateRange:  &models.DateRange{From: "2025-06-01", To: "2025-06-15"},
		},
	}
	got := CalculateOptionPrice(opt, testNow) // noon on the end date
	if !got.HasDiscount {
		t.Fatalf("window should stay open through its end date: %+v", got)
	}
}

func TestDanglingOptionIDFallsBackToSale(t *testing.T) {
	dep := models.Departure{SelectedPricingOptions: []string{"ghost"}}
	opts := []models.PricingOption{{ID: "adult", Price: 120}}
	got := CalculateDeparturePrice(dep, 100, 80, true, opts, nil, testNow)
	want := models.PriceResult{OriginalPrice: 100, DisplayPrice: 80, HasDiscount: true, DiscountPercentage: 20}
	if got != want {
		t.Fatalf("expected fallback to sale price, got %+v", got)
	}
}

func TestGroupLookupAfterFlatMiss(t *testing.T) {
	dep := models.Departure{SelectedPricingOptions: []string{"senior"}}
	opts := []models.PricingOption{{ID: "adult", Price: 120}}
	groups := []models.PricingGroup{
		{Label: "Off-peak", Options: []models.PricingOption{{ID: "student", Price: 60}}},
		{Label: "Peak", Options: []models.PricingOption{{ID: "senior", Price: 90}}},
	}
	got := CalculateDeparturePrice(dep, 100, 0, false, opts, groups, testNow)
	if got.OriginalPrice != 90 || got.DisplayPrice != 90 {
		t.Fatalf("expected group option match, got %+v", got)
	}
}

func TestFlatArrayTakesPrecedenceOverGroups(t *testing.T) {
	dep := models.Departure{SelectedPricingOptions: []string{"adult"}}
	opts := []models.PricingOption{{ID: "adult", Price: 120}}
	groups := []models.PricingGroup{{Label: "Peak", Options: []models.PricingOption{{ID: "adult", Price: 999}}}}
	got := CalculateDeparturePrice(dep, 100, 0, false, opts, groups, testNow)
	if got.DisplayPrice != 120 {
		t.Fatalf("expected flat option to win, got %+v", got)
	}
}

func TestZeroBasePriceNoDivisionByZero(t *testing.T) {
	got := CalculateDeparturePrice(models.Departure{}, 0, 0, false, nil, nil, testNow)
	want := models.PriceResult{}
	if got != want {
		t.Fatalf("expected all-zero result, got %+v", got)
	}
}

func TestDisplayNeverExceedsOriginal(t *testing.T) {
	deps := []models.Departure{
		{},
		{SelectedPricingOptions: []string{"adult"}},
		{SelectedPricingOptions: []string{"ghost"}},
	}
	opts := []models.PricingOption{{
		ID:              "adult",
		Price:           75,
		DiscountEnabled: true,
		Discount:        &models.Discount{PercentageOrPrice: true, DiscountPercentage: 50},
	}}
	for i, dep := range deps {
		got := CalculateDeparturePrice(dep, 100, 90, true, opts, nil, testNow)
		if got.DisplayPrice > got.OriginalPrice {
			t.Errorf("case %d: display %v exceeds original %v", i, got.DisplayPrice, got.OriginalPrice)
		}
	}
}

func TestDiscountDisabledFlagRespected(t *testing.T) {
	opt := models.PricingOption{
		ID:       "adult",
		Price:    100,
		Discount: &models.Discount{PercentageOrPrice: true, DiscountPercentage: 50},
	}
	got := CalculateOptionPrice(opt, testNow)
	if got.HasDiscount {
		t.Fatalf("discount applied despite DiscountEnabled=false: %+v", got)
	}
}
