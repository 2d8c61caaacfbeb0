package models

import "time"

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Workout struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" bson:"_id,omitempty" json:"id" example:"665f1c2e9b1e8a3f4c2d1d01"`
	Name        string    `gorm:"not null" bson:"name" json:"name" validate:"required" example:"Hero Strength Training"`
	Description string    `bson:"description" json:"description" example:"Build strength like a superhero"`
	Duration    int       `bson:"duration" json:"duration" validate:"gte=0" example:"60"`
	Difficulty  string    `gorm:"index" bson:"difficulty" json:"difficulty" validate:"required,oneof=beginner intermediate advanced" example:"intermediate"`
	Category    string    `gorm:"index" bson:"category" json:"category" validate:"required" example:"strength"`
	Exercises   Exercises `gorm:"type:text" bson:"exercises" json:"exercises" validate:"dive"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at" example:"2024-01-01T00:00:00Z"`
}

func (Workout) TableName() string { return "workouts" }

func (w *Workout) GetID() string   { return w.ID }
func (w *Workout) SetID(id string) { w.ID = id }

func (w *Workout) ApplyDefaults(now time.Time) {
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	if w.Exercises == nil {
		w.Exercises = Exercises{}
	}
}

func (w *Workout) Fields() map[string]any {
	return map[string]any{
		"name":        w.Name,
		"description": w.Description,
		"duration":    w.Duration,
		"difficulty":  w.Difficulty,
		"category":    w.Category,
		"exercises":   w.Exercises,
		"created_at":  w.CreatedAt,
	}
}
