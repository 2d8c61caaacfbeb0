package models

import (
	"encoding/json"
	"time"
)

// Document is implemented by every record type persisted by the store.
// Fields returns the mutable fields keyed by their storage name, which is
// also the JSON name.
type Document interface {
	TableName() string
	GetID() string
	SetID(id string)
	Fields() map[string]any
	ApplyDefaults(now time.Time)
}

// DocumentPtr constrains generic code to pointers of record types.
type DocumentPtr[T any] interface {
	*T
	Document
}

// PatchFields picks the storage fields named by the keys of a partial
// payload. Keys that are not mutable fields (id, computed values, unknown
// names) are dropped.
func PatchFields(doc Document, payload map[string]json.RawMessage) map[string]any {
	all := doc.Fields()
	fields := make(map[string]any, len(payload))
	for key := range payload {
		if value, ok := all[key]; ok {
			fields[key] = value
		}
	}
	return fields
}
