package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a stored shorthand document together with the summary fields
// derived from its interpretation. The shorthand Source is the source of truth;
// everything else is recomputed whenever Source changes.
type Workout struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CoachID primitive.ObjectID `bson:"coachId" json:"coachId"`
	Title   string             `bson:"title" json:"title"`
	Source  string             `bson:"source" json:"source"`

	PoolLengthMeters       *int     `bson:"poolLengthMeters,omitempty" json:"poolLengthMeters,omitempty"`
	PlannedDurationMinutes *int     `bson:"plannedDurationMinutes,omitempty" json:"plannedDurationMinutes,omitempty"`
	Focus                  string   `bson:"focus,omitempty" json:"focus,omitempty"`
	Profile                string   `bson:"profile,omitempty" json:"profile,omitempty"`
	TotalDistanceMeters    int      `bson:"totalDistanceMeters" json:"totalDistanceMeters"`
	EstimatedMinutes       *float64 `bson:"estimatedMinutes,omitempty" json:"estimatedMinutes,omitempty"`
	ErrorCount             int      `bson:"errorCount" json:"errorCount"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
