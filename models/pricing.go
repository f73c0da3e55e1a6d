package models

// Discount is an optional time-boxed price reduction attached to a pricing
// option. When PercentageOrPrice is true the discount is a percentage off the
// option price; when false, DiscountPrice is the absolute final price.
type Discount struct {
	PercentageOrPrice  bool       `bson:"percentageOrPrice" json:"percentageOrPrice"`
	DiscountPercentage float64    `bson:"discountPercentage,omitempty" json:"discountPercentage,omitempty"`
	DiscountPrice      float64    `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	DiscountDateRange  *DateRange `bson:"discountDateRange,omitempty" json:"discountDateRange,omitempty"`
}

// PricingOption is a named price tier (e.g. "Adult", "Child").
type PricingOption struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Price           float64   `bson:"price" json:"price"`
	Category        string    `bson:"category,omitempty" json:"category,omitempty"`
	MinPax          int       `bson:"minPax,omitempty" json:"minPax,omitempty"`
	MaxPax          int       `bson:"maxPax,omitempty" json:"maxPax,omitempty"`
	DiscountEnabled bool      `bson:"discountEnabled,omitempty" json:"discountEnabled,omitempty"`
	Discount        *Discount `bson:"discount,omitempty" json:"discount,omitempty"`
}

// PricingGroup collects pricing options under a label (e.g. "Peak Season").
type PricingGroup struct {
	Label   string          `bson:"label" json:"label"`
	Options []PricingOption `bson:"options" json:"options"`
}

// PriceResult is the computed display price for a departure or option.
// It is never persisted; it is recomputed on every request.
type PriceResult struct {
	OriginalPrice      float64 `json:"originalPrice"`
	DisplayPrice       float64 `json:"displayPrice"`
	HasDiscount        bool    `json:"hasDiscount"`
	DiscountPercentage int     `json:"discountPercentage"`
}
