package models

import "time"

// Schedule types supported by TourDates.
const (
	ScheduleFlexible = "flexible"
	ScheduleFixed    = "fixed"
	ScheduleMultiple = "multiple"
)

// Recurrence patterns supported by departure expansion.
const (
	RecurDaily     = "daily"
	RecurWeekly    = "weekly"
	RecurBiweekly  = "biweekly"
	RecurMonthly   = "monthly"
	RecurQuarterly = "quarterly"
	RecurYearly    = "yearly"
)

// TourDates describes how a tour is scheduled. Exactly one of the scheduling
// shapes is populated depending on ScheduleType.
type TourDates struct {
	ScheduleType           string      `bson:"scheduleType" json:"scheduleType"`
	SingleDateRange        *DateRange  `bson:"singleDateRange,omitempty" json:"singleDateRange,omitempty"`
	DefaultDateRange       *DateRange  `bson:"defaultDateRange,omitempty" json:"defaultDateRange,omitempty"`
	Departures             []Departure `bson:"departures,omitempty" json:"departures,omitempty"`
	IsRecurring            bool        `bson:"isRecurring,omitempty" json:"isRecurring,omitempty"`
	RecurrencePattern      string      `bson:"recurrencePattern,omitempty" json:"recurrencePattern,omitempty"`
	RecurrenceEndDate      string      `bson:"recurrenceEndDate,omitempty" json:"recurrenceEndDate,omitempty"`
	Days                   int         `bson:"days,omitempty" json:"days,omitempty"`                                     // duration of one occurrence in days
	SelectedPricingOptions []string    `bson:"selectedPricingOptions,omitempty" json:"selectedPricingOptions,omitempty"` // ids into the pricing tables
}

// ItineraryItem is one day/stop of a tour itinerary.
type ItineraryItem struct {
	Day         int    `bson:"day" json:"day"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
}

// FAQ is a tour frequently-asked question.
type FAQ struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

// Tour is the sellable product: listing copy, media, pricing tables and schedule.
type Tour struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Code        string   `bson:"code,omitempty" json:"code,omitempty"`
	Excerpt     string   `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Destination string   `bson:"destination,omitempty" json:"destination,omitempty"`
	Category    string   `bson:"category,omitempty" json:"category,omitempty"`
	CoverImage  string   `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	GalleryIDs  []string `bson:"galleryIds,omitempty" json:"galleryIds,omitempty"` // media asset ids
	Enquiry     bool     `bson:"enquiry,omitempty" json:"enquiry,omitempty"`       // enquiry-only tours hide the booking form
	Published   bool     `bson:"published" json:"published"`

	// Pricing: base price, optional tour-level sale, and tiered options.
	Price          float64         `bson:"price" json:"price"`
	SalePrice      float64         `bson:"salePrice,omitempty" json:"salePrice,omitempty"`
	SaleEnabled    bool            `bson:"saleEnabled,omitempty" json:"saleEnabled,omitempty"`
	PricingOptions []PricingOption `bson:"pricingOptions,omitempty" json:"pricingOptions,omitempty"`
	PricingGroups  []PricingGroup  `bson:"pricingGroups,omitempty" json:"pricingGroups,omitempty"`

	Dates     TourDates       `bson:"dates" json:"dates"`
	Itinerary []ItineraryItem `bson:"itinerary,omitempty" json:"itinerary,omitempty"`
	FAQs      []FAQ           `bson:"faqs,omitempty" json:"faqs,omitempty"`

	// Denormalized review stats, maintained by the review service.
	AverageRating float64 `bson:"averageRating,omitempty" json:"averageRating,omitempty"`
	ReviewCount   int     `bson:"reviewCount,omitempty" json:"reviewCount,omitempty"`

	AuthorID  string    `bson:"authorId,omitempty" json:"authorId,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
