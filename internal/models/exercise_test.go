package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestExercisesUnmarshalJSON(t *testing.T) {
	reps := 15
	pushUps := Exercise{Name: "Push-ups", Sets: 3, Reps: &reps}

	tests := []struct {
		name     string
		input    string
		expected Exercises
	}{
		{
			name:     "array",
			input:    `{"exercises": [{"name": "Push-ups", "sets": 3, "reps": 15}]}`,
			expected: Exercises{pushUps},
		},
		{
			name:     "json encoded string",
			input:    `{"exercises": "[{\"name\": \"Push-ups\", \"sets\": 3, \"reps\": 15}]"}`,
			expected: Exercises{pushUps},
		},
		{
			name:     "null",
			input:    `{"exercises": null}`,
			expected: Exercises{},
		},
		{
			name:     "unparseable string",
			input:    `{"exercises": "not json"}`,
			expected: Exercises{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Workout
			require.NoError(t, json.Unmarshal([]byte(tt.input), &w))
			assert.Equal(t, tt.expected, w.Exercises)
		})
	}
}

func TestExercisesUnmarshalJSONRejectsMistypedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"mistyped element", `{"exercises": [{"name": "Push-ups", "sets": 3}, {"name": "Squats", "sets": "3"}]}`},
		{"element not an object", `{"exercises": [42]}`},
		{"object instead of list", `{"exercises": {"name": "Push-ups"}}`},
		{"number", `{"exercises": 42}`},
		{"bool", `{"exercises": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Workout
			err := json.Unmarshal([]byte(tt.input), &w)
			require.Error(t, err)

			verr, ok := FromDecodeError(err)
			require.True(t, ok)
			assert.Contains(t, verr.Fields, "exercises")
		})
	}
}

func TestExercisesMarshalJSONNeverNull(t *testing.T) {
	encoded, err := json.Marshal(Workout{Name: "Empty"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, []any{}, decoded["exercises"])
}

func TestExercisesUnmarshalBSON(t *testing.T) {
	type holder struct {
		Exercises Exercises `bson:"exercises"`
	}

	tests := []struct {
		name     string
		doc      bson.M
		expected Exercises
	}{
		{
			name:     "array",
			doc:      bson.M{"exercises": bson.A{bson.M{"name": "Plank", "sets": 3, "duration": "60 seconds"}}},
			expected: Exercises{{Name: "Plank", Sets: 3, Duration: "60 seconds"}},
		},
		{
			name:     "json encoded string",
			doc:      bson.M{"exercises": `[{"name": "Plank", "sets": 3, "duration": "60 seconds"}]`},
			expected: Exercises{{Name: "Plank", Sets: 3, Duration: "60 seconds"}},
		},
		{
			name:     "garbage string",
			doc:      bson.M{"exercises": "[{"},
			expected: Exercises{},
		},
		{
			name:     "wrong type",
			doc:      bson.M{"exercises": int32(7)},
			expected: Exercises{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(tt.doc)
			require.NoError(t, err)

			var h holder
			require.NoError(t, bson.Unmarshal(raw, &h))
			assert.Equal(t, tt.expected, h.Exercises)
		})
	}
}

func TestExercisesBSONRoundTrip(t *testing.T) {
	reps := 8
	in := Workout{Name: "Asgardian Power Workout", Exercises: Exercises{{Name: "Deadlifts", Sets: 4, Reps: &reps}}}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	var out Workout
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, in.Exercises, out.Exercises)
}

func TestExercisesScan(t *testing.T) {
	var e Exercises
	require.NoError(t, e.Scan([]byte(`[{"name": "Yoga Flow", "sets": 1}]`)))
	assert.Equal(t, Exercises{{Name: "Yoga Flow", Sets: 1}}, e)

	require.NoError(t, e.Scan("oops"))
	assert.Equal(t, Exercises{}, e)

	require.NoError(t, e.Scan(nil))
	assert.Equal(t, Exercises{}, e)

	value, err := Exercises(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}
