package models

import "time"

type Team struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" bson:"_id,omitempty" json:"id" example:"team_marvel"`
	Name        string    `gorm:"not null" bson:"name" json:"name" validate:"required" example:"Team Marvel"`
	Description string    `bson:"description" json:"description" example:"Earth's Mightiest Heroes"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at" example:"2024-01-01T00:00:00Z"`
	MemberCount int       `bson:"member_count" json:"member_count" validate:"gte=0" example:"5"`
}

func (Team) TableName() string { return "teams" }

func (t *Team) GetID() string   { return t.ID }
func (t *Team) SetID(id string) { t.ID = id }

func (t *Team) ApplyDefaults(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
}

func (t *Team) Fields() map[string]any {
	return map[string]any{
		"name":         t.Name,
		"description":  t.Description,
		"created_at":   t.CreatedAt,
		"member_count": t.MemberCount,
	}
}
