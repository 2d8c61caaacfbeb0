package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"octofit/internal/models"

	"github.com/google/uuid"
)

// MemoryStore keeps records in process memory. It backs the "memory" store
// driver and the HTTP tests.
type MemoryStore[T any, PT models.DocumentPtr[T]] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
	unique  []string
}

// NewMemoryStore builds a store that rejects duplicate values in the given
// fields.
func NewMemoryStore[T any, PT models.DocumentPtr[T]](unique ...string) *MemoryStore[T, PT] {
	return &MemoryStore[T, PT]{
		records: make(map[string]T),
		unique:  unique,
	}
}

func (s *MemoryStore[T, PT]) Find(ctx context.Context, q Query) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range s.order {
		record := s.records[id]
		if matches(PT(&record).Fields(), q.Filter) {
			out = append(out, record)
		}
	}

	if q.SortBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			a := PT(&out[i]).Fields()[q.SortBy]
			b := PT(&out[j]).Fields()[q.SortBy]
			if q.Descending {
				return less(b, a)
			}
			return less(a, b)
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *MemoryStore[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &record, nil
}

func (s *MemoryStore[T, PT]) Create(ctx context.Context, record *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(record)
}

func (s *MemoryStore[T, PT]) CreateMany(ctx context.Context, records []*T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		if err := s.insert(record); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore[T, PT]) insert(record *T) error {
	doc := PT(record)
	if doc.GetID() == "" {
		doc.SetID(uuid.NewString())
	}
	if _, exists := s.records[doc.GetID()]; exists {
		return fmt.Errorf("%w: id %s already exists", ErrConflict, doc.GetID())
	}
	if err := s.checkUnique(doc.GetID(), doc.Fields()); err != nil {
		return err
	}
	s.records[doc.GetID()] = *record
	s.order = append(s.order, doc.GetID())
	return nil
}

func (s *MemoryStore[T, PT]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	encoded, err := json.Marshal(withoutID(fields))
	if err != nil {
		return nil, fmt.Errorf("encode update: %w", err)
	}
	if err := json.Unmarshal(encoded, PT(&record)); err != nil {
		return nil, fmt.Errorf("apply update: %w", err)
	}
	PT(&record).SetID(id)

	if err := s.checkUnique(id, PT(&record).Fields()); err != nil {
		return nil, err
	}
	s.records[id] = record
	return &record, nil
}

func (s *MemoryStore[T, PT]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore[T, PT]) Count(ctx context.Context, filter map[string]any) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, record := range s.records {
		if matches(PT(&record).Fields(), filter) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore[T, PT]) DeleteAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.records))
	s.records = make(map[string]T)
	s.order = nil
	return n, nil
}

func (s *MemoryStore[T, PT]) checkUnique(id string, fields map[string]any) error {
	for _, key := range s.unique {
		value := fields[key]
		for otherID, other := range s.records {
			if otherID == id {
				continue
			}
			if reflect.DeepEqual(PT(&other).Fields()[key], value) {
				return fmt.Errorf("%w: %s %v already exists", ErrConflict, key, value)
			}
		}
	}
	return nil
}

func matches(fields, filter map[string]any) bool {
	for key, want := range filter {
		if !reflect.DeepEqual(fields[key], want) {
			return false
		}
	}
	return true
}

func less(a, b any) bool {
	switch av := a.(type) {
	case int:
		bv, _ := b.(int)
		return av < bv
	case float64:
		bv, _ := b.(float64)
		return av < bv
	case string:
		bv, _ := b.(string)
		return av < bv
	case time.Time:
		bv, _ := b.(time.Time)
		return av.Before(bv)
	}
	return false
}
