package repository

import (
	"context"

	"octofit/internal/models"
)

type WorkoutRepository interface {
	Store[models.Workout]
	FindAll(ctx context.Context) ([]models.Workout, error)
	FindByDifficulty(ctx context.Context, difficulty string) ([]models.Workout, error)
	FindByCategory(ctx context.Context, category string) ([]models.Workout, error)
}

type workoutRepository struct {
	Store[models.Workout]
}

func NewWorkoutRepository(store Store[models.Workout]) WorkoutRepository {
	return &workoutRepository{store}
}

func (r *workoutRepository) FindAll(ctx context.Context) ([]models.Workout, error) {
	return r.Find(ctx, Query{})
}

func (r *workoutRepository) FindByDifficulty(ctx context.Context, difficulty string) ([]models.Workout, error) {
	return r.Find(ctx, Where("difficulty", difficulty))
}

func (r *workoutRepository) FindByCategory(ctx context.Context, category string) ([]models.Workout, error) {
	return r.Find(ctx, Where("category", category))
}
