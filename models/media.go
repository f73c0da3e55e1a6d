package models

import "time"

// Media kinds stored by the gallery.
const (
	MediaKindImage = "image"
	MediaKindVideo = "video"
	MediaKindPDF   = "pdf"
)

// MediaAsset is a gallery item: an image, video or PDF uploaded by an admin.
// The binary lives in Cloudinary; this is the metadata record.
type MediaAsset struct {
	ID          string    `bson:"id" json:"id"`
	Kind        string    `bson:"kind" json:"kind"`
	Title       string    `bson:"title,omitempty" json:"title,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	PublicID    string    `bson:"publicId" json:"publicId"` // Cloudinary public id
	URL         string    `bson:"url" json:"url"`
	Bytes       int64     `bson:"bytes,omitempty" json:"bytes,omitempty"`
	UploadedBy  string    `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MediaPage is one page of gallery listing results.
type MediaPage struct {
	Items   []MediaAsset `json:"items"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	PerPage int          `json:"perPage"`
}
