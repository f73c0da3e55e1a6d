package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// PaxSelection is one pricing-option line of a booking: how many travellers
// at which tier.
type PaxSelection struct {
	OptionID   string  `bson:"optionId" json:"optionId"`
	OptionName string  `bson:"optionName" json:"optionName"`
	Pax        int     `bson:"pax" json:"pax"`
	UnitPrice  float64 `bson:"unitPrice" json:"unitPrice"` // display price per traveller at quote time
}

// Quote is the priced breakdown of a booking session before confirmation.
type Quote struct {
	Lines      []PaxSelection `json:"lines"`
	TotalPax   int            `json:"totalPax"`
	TotalPrice float64        `json:"totalPrice"`
	Price      PriceResult    `json:"price"` // headline per-person price for the selected departure
}

// Booking is a confirmed booking record.
type Booking struct {
	ID              string         `bson:"id" json:"id"`
	TourID          string         `bson:"tourId" json:"tourId"`
	TourTitle       string         `bson:"tourTitle" json:"tourTitle"`
	UserID          string         `bson:"userId" json:"userId"`
	Departure       Departure      `bson:"departure" json:"departure"`
	Lines           []PaxSelection `bson:"lines" json:"lines"`
	TotalPax        int            `bson:"totalPax" json:"totalPax"`
	TotalPrice      float64        `bson:"totalPrice" json:"totalPrice"`
	Status          string         `bson:"status" json:"status"`
	PaymentIntentID string         `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
}

// BookingSession is the transient state of an in-progress booking, cached in
// Redis between the initiate, update and confirm phases.
type BookingSession struct {
	SessionID         string      `json:"sessionId"`
	UserID            string      `json:"userId"`
	TourID            string      `json:"tourId"`
	TourTitle         string      `json:"tourTitle"`
	Departures        []Departure `json:"departures"`
	SelectedDeparture *Departure  `json:"selectedDeparture,omitempty"`
	Quote             *Quote      `json:"quote,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// ReminderPayload is the asynq task payload for departure reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	TourTitle string `json:"tourTitle"`
	StartDate string `json:"startDate"`
}
