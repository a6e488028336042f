package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseStep is one step in an exercise's technique sequence.
// Image may be a local asset path, an s3:// key, or an absolute URL.
type ExerciseStep struct {
	Caption string `bson:"caption" json:"caption"`
	Image   string `bson:"image,omitempty" json:"image,omitempty"`
}

// Exercise describes one entry of the report's exercise library. The same
// shape is used for caller-supplied report payloads and for entries stored
// in the library collection (where ID and timestamps are set).
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID     primitive.ObjectID `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Equipment   string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Difficulty  string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"` // e.g., "Novice", "Medium", "Advanced"
	Reps        string             `bson:"reps,omitempty" json:"reps,omitempty"`
	Tempo       string             `bson:"tempo,omitempty" json:"tempo,omitempty"`
	Rest        string             `bson:"rest,omitempty" json:"rest,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Muscles     []string           `bson:"muscles,omitempty" json:"muscles,omitempty"`
	MainImage   string             `bson:"mainImage,omitempty" json:"mainImage,omitempty"`
	DemoVideo   string             `bson:"demoVideo,omitempty" json:"demoVideo,omitempty"` // rendered as a QR code in the report
	Steps       []ExerciseStep     `bson:"steps,omitempty" json:"steps,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ResolvedStep is an ExerciseStep with its image turned into something the
// renderer can use directly (data URI or remote URL). A nil image means the
// asset could not be resolved and is omitted.
type ResolvedStep struct {
	Caption string
	Image   *string
}

// ResolvedExercise is an Exercise with all media resolved for embedding.
type ResolvedExercise struct {
	Exercise
	MainImageData *string
	DemoQR        *string
	ResolvedSteps []ResolvedStep
}
