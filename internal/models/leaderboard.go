package models

import "time"

// Leaderboard is a denormalized ranking entry. Rank 0 marks an entry that
// has not been ranked yet.
type Leaderboard struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" bson:"_id,omitempty" json:"id" example:"665f1c2e9b1e8a3f4c2d1c03"`
	UserID          string    `gorm:"index" bson:"user_id" json:"user_id" validate:"required" example:"665f1c2e9b1e8a3f4c2d1a01"`
	UserName        string    `bson:"user_name" json:"user_name" example:"Tony Stark"`
	TeamID          string    `gorm:"index" bson:"team_id" json:"team_id" example:"team_marvel"`
	TotalPoints     int       `bson:"total_points" json:"total_points" validate:"gte=0" example:"2500"`
	ActivitiesCount int       `bson:"activities_count" json:"activities_count" validate:"gte=0" example:"7"`
	Rank            int       `gorm:"index" bson:"rank" json:"rank" validate:"gte=0" example:"2"`
	LastUpdated     time.Time `bson:"last_updated" json:"last_updated" example:"2024-01-01T00:00:00Z"`
}

func (Leaderboard) TableName() string { return "leaderboard" }

func (l *Leaderboard) GetID() string   { return l.ID }
func (l *Leaderboard) SetID(id string) { l.ID = id }

func (l *Leaderboard) ApplyDefaults(now time.Time) {
	if l.LastUpdated.IsZero() {
		l.LastUpdated = now
	}
}

func (l *Leaderboard) Fields() map[string]any {
	return map[string]any{
		"user_id":          l.UserID,
		"user_name":        l.UserName,
		"team_id":          l.TeamID,
		"total_points":     l.TotalPoints,
		"activities_count": l.ActivitiesCount,
		"rank":             l.Rank,
		"last_updated":     l.LastUpdated,
	}
}
