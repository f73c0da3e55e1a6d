package models

// DateRange represents an inclusive start/end date pair.
// Dates are ISO "YYYY-MM-DD" strings as delivered by the API and stored in Mongo.
type DateRange struct {
	From string `bson:"from,omitempty" json:"from,omitempty"`
	To   string `bson:"to,omitempty" json:"to,omitempty"`
}

// IsComplete reports whether both bounds are present.
func (r DateRange) IsComplete() bool {
	return r.From != "" && r.To != ""
}
