package repository

import (
	"context"

	"octofit/internal/models"
)

type TeamRepository interface {
	Store[models.Team]
	FindAll(ctx context.Context) ([]models.Team, error)
}

type teamRepository struct {
	Store[models.Team]
}

func NewTeamRepository(store Store[models.Team]) TeamRepository {
	return &teamRepository{store}
}

func (r *teamRepository) FindAll(ctx context.Context) ([]models.Team, error) {
	return r.Find(ctx, Query{})
}
