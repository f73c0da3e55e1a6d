package pricing

import (
	"math"
	"time"

	"tourbase/models"
)

const dateLayout = "2006-01-02"

// CalculateDeparturePrice resolves the effective price for a departure through
// the three-tier override chain: tour base price, tour-level sale price, then
// the departure's first matching pricing option with its own time-boxed
// discount. The caller supplies now so discount windows are evaluated
// deterministically.
func CalculateDeparturePrice(
	dep models.Departure,
	basePrice, salePrice float64,
	saleEnabled bool,
	options []models.PricingOption,
	groups []models.PricingGroup,
	now time.Time,
) models.PriceResult {
	originalPrice := basePrice
	displayPrice := basePrice
	if saleEnabled && salePrice > 0 {
		displayPrice = salePrice
	}

	// A matched pricing option replaces the sale/base baseline entirely, so
	// discount badges compare against the option's own price.
	if opt := ResolvePricingOption(dep.SelectedPricingOptions, options, groups); opt != nil {
		originalPrice = opt.Price
		displayPrice = opt.Price
		if d := activeDiscount(opt, now); d != nil {
			displayPrice = applyDiscount(originalPrice, d)
		}
	}

	return buildResult(originalPrice, displayPrice)
}

// CalculateOptionPrice computes the display price for a single pricing option
// outside any departure context (option tables, tour-card badges).
func CalculateOptionPrice(opt models.PricingOption, now time.Time) models.PriceResult {
	displayPrice := opt.Price
	if d := activeDiscount(&opt, now); d != nil {
		displayPrice = applyDiscount(opt.Price, d)
	}
	return buildResult(opt.Price, displayPrice)
}

// ResolvePricingOption returns the first option whose id appears in selected,
// searching the flat options slice before the groups. It returns nil when
// selected is empty or no id resolves; callers fall back to the tour-level
// price in that case.
func ResolvePricingOption(selected []string, options []models.PricingOption, groups []models.PricingGroup) *models.PricingOption {
	if len(selected) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		wanted[id] = struct{}{}
	}
	for i := range options {
		if _, ok := wanted[options[i].ID]; ok {
			return &options[i]
		}
	}
	for g := range groups {
		opts := groups[g].Options
		for i := range opts {
			if _, ok := wanted[opts[i].ID]; ok {
				return &opts[i]
			}
		}
	}
	return nil
}

// activeDiscount returns the option's discount if it is enabled and now falls
// inside its date window, else nil.
func activeDiscount(opt *models.PricingOption, now time.Time) *models.Discount {
	if !opt.DiscountEnabled || opt.Discount == nil {
		return nil
	}
	if !discountWindowOpen(opt.Discount.DiscountDateRange, now) {
		return nil
	}
	return opt.Discount
}

// discountWindowOpen reports whether now falls within the discount window.
// A missing bound is open-ended on that side; an unparseable bound is treated
// as absent.
func discountWindowOpen(r *models.DateRange, now time.Time) bool {
	if r == nil {
		return true
	}
	if r.From != "" {
		if from, err := time.Parse(dateLayout, r.From); err == nil && now.Before(from) {
			return false
		}
	}
	if r.To != "" {
		// The end date is inclusive: the window stays open through that day.
		if to, err := time.Parse(dateLayout, r.To); err == nil && !now.Before(to.AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}

// applyDiscount computes the discounted display price. Percentage discounts
// are a delta off original; fixed-price discounts are the absolute final
// price, not a delta.
func applyDiscount(original float64, d *models.Discount) float64 {
	if d.PercentageOrPrice {
		return original - original*d.DiscountPercentage/100
	}
	return d.DiscountPrice
}

// buildResult derives HasDiscount and the rounded discount percentage,
// guarding the zero-original case so no division by zero occurs.
func buildResult(original, display float64) models.PriceResult {
	res := models.PriceResult{
		OriginalPrice: original,
		DisplayPrice:  display,
	}
	if display < original {
		res.HasDiscount = true
		if original > 0 {
			res.DiscountPercentage = int(math.Round((original - display) / original * 100))
		}
	}
	return res
}
