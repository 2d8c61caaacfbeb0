package models

import (
	"math"
	"time"
)

// ActivityTypes lists the activity kinds produced by the seeder. The API
// accepts any non-empty type.
var ActivityTypes = []string{"Running", "Cycling", "Swimming", "Weightlifting", "Yoga", "Boxing", "CrossFit"}

type Activity struct {
	ID             string    `gorm:"primaryKey;type:varchar(64)" bson:"_id,omitempty" json:"id" example:"665f1c2e9b1e8a3f4c2d1b07"`
	UserID         string    `gorm:"index" bson:"user_id" json:"user_id" validate:"required" example:"665f1c2e9b1e8a3f4c2d1a01"`
	UserName       string    `gorm:"-" bson:"-" json:"user_name" example:"Tony Stark"`
	ActivityType   string    `gorm:"index" bson:"activity_type" json:"activity_type" validate:"required" example:"Running"`
	Duration       int       `bson:"duration" json:"duration" validate:"gte=0" example:"45"`
	Distance       float64   `bson:"distance" json:"distance" validate:"gte=0" example:"7.5"`
	CaloriesBurned int       `bson:"calories_burned" json:"calories_burned" validate:"gte=0" example:"450"`
	PointsEarned   int       `bson:"points_earned" json:"points_earned" validate:"gte=0" example:"165"`
	Date           time.Time `bson:"date" json:"date" example:"2024-01-01T07:30:00Z"`
	Notes          string    `bson:"notes" json:"notes" example:"Morning run"`
}

func (Activity) TableName() string { return "activities" }

func (a *Activity) GetID() string   { return a.ID }
func (a *Activity) SetID(id string) { a.ID = id }

func (a *Activity) ApplyDefaults(now time.Time) {
	if a.Date.IsZero() {
		a.Date = now
	}
}

func (a *Activity) Fields() map[string]any {
	return map[string]any{
		"user_id":         a.UserID,
		"activity_type":   a.ActivityType,
		"duration":        a.Duration,
		"distance":        a.Distance,
		"calories_burned": a.CaloriesBurned,
		"points_earned":   a.PointsEarned,
		"date":            a.Date,
		"notes":           a.Notes,
	}
}

// IsDistanceActivity reports whether the activity type records a distance.
func IsDistanceActivity(activityType string) bool {
	switch activityType {
	case "Running", "Cycling", "Swimming":
		return true
	}
	return false
}

// PointsFor is the scoring rule used when generating activities:
// two points per minute plus ten per kilometre, rounded down.
func PointsFor(duration int, distance float64) int {
	return duration*2 + int(math.Floor(distance*10))
}
