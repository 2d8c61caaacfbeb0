package mocks

import (
	"context"

	"octofit/internal/models"
	"octofit/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of repository.Store for any record type.
type MockStore[T any] struct {
	mock.Mock
}

func (m *MockStore[T]) Find(ctx context.Context, q repository.Query) ([]T, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockStore[T]) Get(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockStore[T]) Create(ctx context.Context, record *T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStore[T]) CreateMany(ctx context.Context, records []*T) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockStore[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockStore[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore[T]) Count(ctx context.Context, filter map[string]any) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore[T]) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// NewMockRepositories wires typed repositories over fresh mocks.
func NewMockRepositories() (*repository.Repositories, *MockSet) {
	set := &MockSet{
		Teams:       new(MockStore[models.Team]),
		Users:       new(MockStore[models.User]),
		Activities:  new(MockStore[models.Activity]),
		Leaderboard: new(MockStore[models.Leaderboard]),
		Workouts:    new(MockStore[models.Workout]),
	}
	return &repository.Repositories{
		Teams:       repository.NewTeamRepository(set.Teams),
		Users:       repository.NewUserRepository(set.Users),
		Activities:  repository.NewActivityRepository(set.Activities),
		Leaderboard: repository.NewLeaderboardRepository(set.Leaderboard),
		Workouts:    repository.NewWorkoutRepository(set.Workouts),
	}, set
}

type MockSet struct {
	Teams       *MockStore[models.Team]
	Users       *MockStore[models.User]
	Activities  *MockStore[models.Activity]
	Leaderboard *MockStore[models.Leaderboard]
	Workouts    *MockStore[models.Workout]
}
