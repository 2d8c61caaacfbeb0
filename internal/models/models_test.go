package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMarshalJSONOmitsPassword(t *testing.T) {
	user := User{ID: "u1", Name: "Tony Stark", Email: "ironman@marvel.com", Password: "secret"}

	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "password")
	assert.NotContains(t, string(encoded), "secret")
	assert.Contains(t, string(encoded), `"email":"ironman@marvel.com"`)

	encoded, err = json.Marshal([]User{user})
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "secret")
}

func TestUserApplyDefaults(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	user := User{Name: "Clark Kent"}
	user.ApplyDefaults(now)

	assert.Equal(t, RoleMember, user.Role)
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, 0, user.TotalPoints)
}

func TestPointsFor(t *testing.T) {
	assert.Equal(t, 90, PointsFor(45, 0))
	assert.Equal(t, 165, PointsFor(45, 7.5))
	assert.Equal(t, 60+129, PointsFor(30, 12.99))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		record   any
		expected map[string]string
	}{
		{
			name:   "valid user",
			record: &User{Name: "Tony Stark", Email: "ironman@marvel.com", Password: "x", Role: RoleLeader},
		},
		{
			name:   "user missing fields",
			record: &User{Role: RoleMember},
			expected: map[string]string{
				"name":     "required",
				"email":    "required",
				"password": "required",
			},
		},
		{
			name:   "user bad email and role",
			record: &User{Name: "X", Email: "not-an-email", Password: "x", Role: "captain"},
			expected: map[string]string{
				"email": "must be a valid email",
				"role":  "must be one of leader, member",
			},
		},
		{
			name:     "negative points",
			record:   &Team{Name: "Team Marvel", MemberCount: -1},
			expected: map[string]string{"member_count": "must be >= 0"},
		},
		{
			name:     "activity without user",
			record:   &Activity{ActivityType: "Running"},
			expected: map[string]string{"user_id": "required"},
		},
		{
			name: "workout with unknown difficulty and nameless exercise",
			record: &Workout{
				Name:       "Speed Force Cardio",
				Category:   "cardio",
				Difficulty: "legendary",
				Exercises:  Exercises{{Sets: 3}},
			},
			expected: map[string]string{
				"difficulty":        "must be one of beginner, intermediate, advanced",
				"exercises[0].name": "required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.record)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
			assert.Equal(t, tt.expected, verr.Fields)
		})
	}
}

func TestFromDecodeError(t *testing.T) {
	var user User
	err := json.Unmarshal([]byte(`{"total_points": "lots"}`), &user)
	require.Error(t, err)

	verr, ok := FromDecodeError(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields["total_points"], "invalid type: expected int")

	_, ok = FromDecodeError(errors.New("unexpected EOF"))
	assert.False(t, ok)
}

func TestPatchFields(t *testing.T) {
	user := &User{Name: "Bruce Wayne", Email: "batman@dc.com", TotalPoints: 2450}
	payload := map[string]json.RawMessage{
		"name":      json.RawMessage(`"Bruce Wayne"`),
		"id":        json.RawMessage(`"other"`),
		"nickname":  json.RawMessage(`"Batman"`),
		"user_name": json.RawMessage(`"ignored"`),
	}

	assert.Equal(t, map[string]any{"name": "Bruce Wayne"}, PatchFields(user, payload))
}
