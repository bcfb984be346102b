package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one intake request stored verbatim. Optional fields are
// pointers or nil slices so absent form fields persist as BSON null
// rather than empty values. Documents are insert-only: nothing in the
// system updates or deletes them.
type Submission struct {
	OID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID             string             `bson:"-" json:"_id,omitempty"`
	Name           *string            `bson:"name" json:"name"`
	Email          *string            `bson:"email" json:"email"`
	TextInput      *string            `bson:"textInput" json:"textInput"`
	BlogLinks      []string           `bson:"blogLinks" json:"blogLinks"`
	VideoLinks     []string           `bson:"videoLinks" json:"videoLinks"`
	UploadedVideos []UploadedVideo    `bson:"uploadedVideos" json:"uploadedVideos"`
	InputInsights  string             `bson:"inputInsights" json:"inputInsights"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// UploadedVideo records one accepted video file part. Filename is the
// client's original name; Path is where the bytes live on disk.
type UploadedVideo struct {
	Filename string `bson:"filename" json:"filename"`
	Path     string `bson:"path" json:"path"`
	Size     int64  `bson:"size" json:"size"`
}
