package models

import (
	"encoding/json"
	"time"
)

const (
	RoleLeader = "leader"
	RoleMember = "member"
)

type User struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" bson:"_id,omitempty" json:"id" example:"665f1c2e9b1e8a3f4c2d1a01"`
	Name        string    `gorm:"not null" bson:"name" json:"name" validate:"required" example:"Tony Stark"`
	Email       string    `gorm:"uniqueIndex;not null" bson:"email" json:"email" validate:"required,email" example:"ironman@marvel.com"`
	Password    string    `bson:"password" json:"password" validate:"required"`
	TeamID      string    `gorm:"index" bson:"team_id" json:"team_id" example:"team_marvel"`
	Role        string    `bson:"role" json:"role" validate:"oneof=leader member" example:"leader"`
	TotalPoints int       `bson:"total_points" json:"total_points" validate:"gte=0" example:"2500"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at" example:"2024-01-01T00:00:00Z"`
}

func (User) TableName() string { return "users" }

func (u *User) GetID() string   { return u.ID }
func (u *User) SetID(id string) { u.ID = id }

func (u *User) ApplyDefaults(now time.Time) {
	if u.Role == "" {
		u.Role = RoleMember
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
}

func (u *User) Fields() map[string]any {
	return map[string]any{
		"name":         u.Name,
		"email":        u.Email,
		"password":     u.Password,
		"team_id":      u.TeamID,
		"role":         u.Role,
		"total_points": u.TotalPoints,
		"created_at":   u.CreatedAt,
	}
}

// MarshalJSON leaves the password out of every response.
func (u User) MarshalJSON() ([]byte, error) {
	type user User
	return json.Marshal(struct {
		user
		Password string `json:"password,omitempty"`
	}{user: user(u)})
}
