package repository

import (
	"context"

	"octofit/internal/models"
)

type ActivityRepository interface {
	Store[models.Activity]
	FindAll(ctx context.Context) ([]models.Activity, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Activity, error)
	FindByType(ctx context.Context, activityType string) ([]models.Activity, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
}

type activityRepository struct {
	Store[models.Activity]
}

func NewActivityRepository(store Store[models.Activity]) ActivityRepository {
	return &activityRepository{store}
}

func (r *activityRepository) FindAll(ctx context.Context) ([]models.Activity, error) {
	return r.Find(ctx, Query{})
}

func (r *activityRepository) FindByUserID(ctx context.Context, userID string) ([]models.Activity, error) {
	return r.Find(ctx, Where("user_id", userID))
}

// FindByType matches the activity type exactly, case included.
func (r *activityRepository) FindByType(ctx context.Context, activityType string) ([]models.Activity, error) {
	return r.Find(ctx, Where("activity_type", activityType))
}

func (r *activityRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	return r.Count(ctx, map[string]any{"user_id": userID})
}
