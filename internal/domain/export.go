package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SheetView selects who a rendered workout sheet is laid out for.
type SheetView string

const (
	ViewCoach   SheetView = "coach"
	ViewSwimmer SheetView = "swimmer"
)

// Export stores metadata about a rendered workout sheet. The sheet itself lives in S3.
type Export struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID   primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	CoachID     primitive.ObjectID `bson:"coachId" json:"coachId"`
	View        SheetView          `bson:"view" json:"view"`
	S3ObjectKey string             `bson:"s3ObjectKey" json:"-"` // internal use
	ContentType string             `bson:"contentType" json:"contentType"`
	Size        int64              `bson:"size" json:"size"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
