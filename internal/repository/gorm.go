package repository

import (
	"context"
	"errors"
	"fmt"

	"octofit/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps one record type in one SQL table. The database must be
// opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
type GormStore[T any, PT models.DocumentPtr[T]] struct {
	db *gorm.DB
}

func NewGormStore[T any, PT models.DocumentPtr[T]](db *gorm.DB) *GormStore[T, PT] {
	return &GormStore[T, PT]{db: db}
}

func gormError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w: %v", op, ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *GormStore[T, PT]) table() string {
	var zero T
	return PT(&zero).TableName()
}

func (s *GormStore[T, PT]) Find(ctx context.Context, q Query) ([]T, error) {
	tx := s.db.WithContext(ctx).Model(new(T))
	if len(q.Filter) > 0 {
		tx = tx.Where(map[string]any(q.Filter))
	}
	if q.SortBy != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortBy}, Desc: q.Descending})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	out := make([]T, 0)
	if err := tx.Find(&out).Error; err != nil {
		return nil, gormError("find "+s.table(), err)
	}
	return out, nil
}

func (s *GormStore[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	var found []T
	if err := s.db.WithContext(ctx).Where("id = ?", id).Limit(2).Find(&found).Error; err != nil {
		return nil, gormError("get "+s.table(), err)
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, s.table(), id)
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("%w: %s %s", ErrAmbiguousMatch, s.table(), id)
	}
}

func (s *GormStore[T, PT]) Create(ctx context.Context, record *T) error {
	if PT(record).GetID() == "" {
		PT(record).SetID(uuid.NewString())
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return gormError("insert "+s.table(), err)
	}
	return nil
}

func (s *GormStore[T, PT]) CreateMany(ctx context.Context, records []*T) error {
	if len(records) == 0 {
		return nil
	}
	for _, record := range records {
		if PT(record).GetID() == "" {
			PT(record).SetID(uuid.NewString())
		}
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(records, 100).Error
	})
	if err != nil {
		return gormError("insert "+s.table(), err)
	}
	return nil
}

func (s *GormStore[T, PT]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	set := withoutID(fields)
	if len(set) > 0 {
		err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(set).Error
		if err != nil {
			return nil, gormError("update "+s.table(), err)
		}
	}
	return s.Get(ctx, id)
}

func (s *GormStore[T, PT]) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return gormError("delete "+s.table(), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s %s", ErrNotFound, s.table(), id)
	}
	return nil
}

func (s *GormStore[T, PT]) Count(ctx context.Context, filter map[string]any) (int64, error) {
	var n int64
	tx := s.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		tx = tx.Where(map[string]any(filter))
	}
	if err := tx.Count(&n).Error; err != nil {
		return 0, gormError("count "+s.table(), err)
	}
	return n, nil
}

func (s *GormStore[T, PT]) DeleteAll(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T))
	if res.Error != nil {
		return 0, gormError("clear "+s.table(), res.Error)
	}
	return res.RowsAffected, nil
}
