package repository

import (
	"context"

	"octofit/internal/models"
)

type UserRepository interface {
	Store[models.User]
	FindAll(ctx context.Context) ([]models.User, error)
	FindByTeamID(ctx context.Context, teamID string) ([]models.User, error)
	CountByTeamID(ctx context.Context, teamID string) (int64, error)
}

type userRepository struct {
	Store[models.User]
}

func NewUserRepository(store Store[models.User]) UserRepository {
	return &userRepository{store}
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.Find(ctx, Query{})
}

func (r *userRepository) FindByTeamID(ctx context.Context, teamID string) ([]models.User, error) {
	return r.Find(ctx, Where("team_id", teamID))
}

func (r *userRepository) CountByTeamID(ctx context.Context, teamID string) (int64, error) {
	return r.Count(ctx, map[string]any{"team_id": teamID})
}
