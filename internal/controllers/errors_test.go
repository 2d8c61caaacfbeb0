package controllers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"octofit/internal/controllers"
	"octofit/internal/mocks"
	"octofit/internal/models"
	"octofit/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStoreFailuresMapToErrorKinds(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           any
		setupMock      func(*mocks.MockSet)
		expectedStatus int
		expectedKind   string
		expectedMsg    string
	}{
		{
			name:   "list failure",
			method: http.MethodGet,
			path:   "/teams/",
			setupMock: func(m *mocks.MockSet) {
				m.Teams.On("Find", mock.Anything, repository.Query{}).Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   controllers.KindInternal,
			expectedMsg:    "Failed to list team",
		},
		{
			name:   "ambiguous id",
			method: http.MethodGet,
			path:   "/users/665f1c2e9b1e8a3f4c2d1a01/",
			setupMock: func(m *mocks.MockSet) {
				m.Users.On("Get", mock.Anything, "665f1c2e9b1e8a3f4c2d1a01").
					Return(nil, fmt.Errorf("%w: users 665f1c2e9b1e8a3f4c2d1a01", repository.ErrAmbiguousMatch))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   controllers.KindAmbiguousMatch,
			expectedMsg:    "Identifier matches more than one user",
		},
		{
			name:   "create failure",
			method: http.MethodPost,
			path:   "/workouts/",
			body:   map[string]any{"name": "Hero Strength Training", "category": "strength", "difficulty": "intermediate"},
			setupMock: func(m *mocks.MockSet) {
				m.Workouts.On("Create", mock.Anything, mock.AnythingOfType("*models.Workout")).Return(errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   controllers.KindInternal,
			expectedMsg:    "Failed to create workout",
		},
		{
			name:   "top failure",
			method: http.MethodGet,
			path:   "/leaderboard/top/?limit=3",
			setupMock: func(m *mocks.MockSet) {
				m.Leaderboard.On("Find", mock.Anything, repository.Query{}).
					Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   controllers.KindInternal,
			expectedMsg:    "Failed to list leaderboard entry",
		},
		{
			name:   "delete missing",
			method: http.MethodDelete,
			path:   "/activities/a1/",
			setupMock: func(m *mocks.MockSet) {
				m.Activities.On("Delete", mock.Anything, "a1").Return(fmt.Errorf("delete activities: %w", repository.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedKind:   controllers.KindNotFound,
			expectedMsg:    "Activity not found",
		},
		{
			name:   "update conflict",
			method: http.MethodPatch,
			path:   "/users/u1/",
			body:   map[string]any{"email": "taken@dc.com"},
			setupMock: func(m *mocks.MockSet) {
				m.Users.On("Get", mock.Anything, "u1").Return(&models.User{
					ID: "u1", Name: "Barry Allen", Email: "flash@dc.com", Role: models.RoleMember,
					Password: "$2a$10$CwTycUXWue0Thq9StjUM0uJ8.4nQ5e1Q3j6A0Wn6u5Kf8r1V0sLxK",
				}, nil)
				m.Users.On("Update", mock.Anything, "u1", map[string]any{"email": "taken@dc.com"}).
					Return(nil, fmt.Errorf("update users: %w", repository.ErrConflict))
			},
			expectedStatus: http.StatusConflict,
			expectedKind:   controllers.KindConflict,
			expectedMsg:    "User already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, set := mocks.NewMockRepositories()
			tt.setupMock(set)
			router := setupTestRouter(repos, stubPinger{})

			w := doRequest(router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			body := decode[map[string]any](t, w)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.expectedKind, body["kind"])
			assert.Equal(t, tt.expectedMsg, body["message"])
			assert.NotEmpty(t, body["error"])
		})
	}
}
