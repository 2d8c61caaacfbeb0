package repository

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrConflict       = errors.New("unique constraint violated")
	ErrAmbiguousMatch = errors.New("identifier matches more than one record")
)

// Query selects records by field equality. Field names are storage names.
type Query struct {
	Filter     map[string]any
	SortBy     string
	Descending bool
	Limit      int
}

func Where(field string, value any) Query {
	return Query{Filter: map[string]any{field: value}}
}

func (q Query) OrderBy(field string, descending bool) Query {
	q.SortBy = field
	q.Descending = descending
	return q
}

func (q Query) Take(limit int) Query {
	q.Limit = limit
	return q
}

// Store is the record store contract shared by every backend. One Store
// serves one record type.
type Store[T any] interface {
	Find(ctx context.Context, q Query) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record *T) error
	CreateMany(ctx context.Context, records []*T) error
	Update(ctx context.Context, id string, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter map[string]any) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// isReference reports whether a field holds the id of another record.
func isReference(field string) bool {
	return field == "_id" || strings.HasSuffix(field, "_id")
}

func withoutID(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		if key == "id" || key == "_id" {
			continue
		}
		out[key] = value
	}
	return out
}
