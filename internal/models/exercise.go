package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Exercise is embedded in a Workout and has no identity of its own.
type Exercise struct {
	Name     string `bson:"name" json:"name" validate:"required" example:"Push-ups"`
	Sets     int    `bson:"sets" json:"sets" validate:"gte=0" example:"3"`
	Reps     *int   `bson:"reps,omitempty" json:"reps,omitempty" validate:"omitempty,gte=0" example:"15"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty" example:"60 seconds"`
	Distance string `bson:"distance,omitempty" json:"distance,omitempty" example:"50 meters"`
}

// Exercises is the ordered exercise list of a workout. Stored documents
// carry it as an array, as a JSON-encoded string, or not at all; the BSON
// and SQL decoders fold those shapes into a list and treat anything they
// cannot parse as empty.
type Exercises []Exercise

func parseExercisesText(text []byte) Exercises {
	text = bytes.TrimSpace(text)
	if len(text) == 0 {
		return Exercises{}
	}
	var list []Exercise
	if err := json.Unmarshal(text, &list); err != nil {
		return Exercises{}
	}
	if list == nil {
		return Exercises{}
	}
	return Exercises(list)
}

func (e Exercises) normalized() []Exercise {
	if e == nil {
		return []Exercise{}
	}
	return []Exercise(e)
}

func (e Exercises) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.normalized())
}

// UnmarshalJSON accepts a list, null, or a JSON-encoded string holding a
// list. The string form is read leniently since older clients sent it; any
// other shape, or a list with a mistyped element, is a type error on the
// exercises field.
func (e *Exercises) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*e = Exercises{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return exercisesTypeError(data)
		}
		*e = parseExercisesText([]byte(encoded))
		return nil
	}

	var list []Exercise
	if err := json.Unmarshal(data, &list); err != nil {
		return exercisesTypeError(data)
	}
	if list == nil {
		list = []Exercise{}
	}
	*e = Exercises(list)
	return nil
}

func exercisesTypeError(data []byte) error {
	got := "invalid value"
	if len(data) > 0 {
		switch data[0] {
		case '[':
			got = "array with a mistyped exercise"
		case '{':
			got = "object"
		case 't', 'f':
			got = "bool"
		default:
			got = "number"
		}
	}
	return &json.UnmarshalTypeError{
		Value: got,
		Type:  reflect.TypeOf(Exercises{}),
		Field: "exercises",
	}
}

func (e Exercises) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(e.normalized())
}

func (e *Exercises) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Array:
		var list []Exercise
		if err := raw.Unmarshal(&list); err != nil || list == nil {
			*e = Exercises{}
			return nil
		}
		*e = Exercises(list)
	case bsontype.String:
		text, _ := raw.StringValueOK()
		*e = parseExercisesText([]byte(text))
	default:
		*e = Exercises{}
	}
	return nil
}

// Value stores the list as JSON text in SQL backends.
func (e Exercises) Value() (driver.Value, error) {
	encoded, err := json.Marshal(e.normalized())
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

func (e *Exercises) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		*e = parseExercisesText(v)
	case string:
		*e = parseExercisesText([]byte(v))
	default:
		*e = Exercises{}
	}
	return nil
}
