package models

// Departure is a bookable occurrence of a tour. A departure with
// IsRecurring=true is a recurrence template; expansion produces concrete
// instances with IsRecurring=false.
type Departure struct {
	ID                     string    `bson:"id,omitempty" json:"id,omitempty"`
	Label                  string    `bson:"label,omitempty" json:"label,omitempty"`
	DateRange              DateRange `bson:"dateRange" json:"dateRange"`
	IsRecurring            bool      `bson:"isRecurring,omitempty" json:"isRecurring,omitempty"`
	RecurrencePattern      string    `bson:"recurrencePattern,omitempty" json:"recurrencePattern,omitempty"`
	RecurrenceEndDate      string    `bson:"recurrenceEndDate,omitempty" json:"recurrenceEndDate,omitempty"`
	SelectedPricingOptions []string  `bson:"selectedPricingOptions,omitempty" json:"selectedPricingOptions,omitempty"`
	Capacity               int       `bson:"capacity,omitempty" json:"capacity,omitempty"`
}

// DepartureView is a departure decorated with its computed price, as returned
// to the storefront.
type DepartureView struct {
	Departure Departure   `json:"departure"`
	Price     PriceResult `json:"price"`
}
