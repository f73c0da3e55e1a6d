package models

import "time"

// Review statuses.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Review is a customer review of a tour. New reviews start out pending and
// only appear on the storefront once approved.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	TourID    string    `bson:"tourId" json:"tourId"`
	UserID    string    `bson:"userId" json:"userId"`
	UserName  string    `bson:"userName,omitempty" json:"userName,omitempty"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
