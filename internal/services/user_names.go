package services

import (
	"context"
	"errors"
	"log"

	"octofit/internal/models"
	"octofit/internal/observability"
	"octofit/internal/repository"
)

// UnknownUserName is shown when an activity's user cannot be resolved.
const UnknownUserName = "Unknown User"

// NameCache is an optional cache in front of the users store.
type NameCache interface {
	GetUserName(ctx context.Context, userID string) (string, bool, error)
	SetUserName(ctx context.Context, userID, name string) error
	DeleteUserName(ctx context.Context, userID string) error
}

// UserNameResolver fills Activity.UserName. Resolution is best effort: a
// missing user or a failed lookup yields UnknownUserName and a log line,
// never an error for the request.
type UserNameResolver struct {
	users repository.UserRepository
	cache NameCache
}

func NewUserNameResolver(users repository.UserRepository, cache NameCache) *UserNameResolver {
	return &UserNameResolver{users: users, cache: cache}
}

// Decorate sets UserName on every activity, looking each user up once.
func (r *UserNameResolver) Decorate(ctx context.Context, activities []models.Activity) {
	names := make(map[string]string)
	for i := range activities {
		userID := activities[i].UserID
		name, ok := names[userID]
		if !ok {
			name = r.resolve(ctx, userID)
			names[userID] = name
		}
		activities[i].UserName = name
	}
}

// Forget drops a cached name after the user changed or was deleted.
func (r *UserNameResolver) Forget(ctx context.Context, userID string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeleteUserName(ctx, userID); err != nil {
		log.Printf("Failed to evict cached name for user %s: %v", userID, err)
	}
}

func (r *UserNameResolver) resolve(ctx context.Context, userID string) string {
	if userID == "" {
		observability.RecordNameFallback()
		return UnknownUserName
	}

	if r.cache != nil {
		name, found, err := r.cache.GetUserName(ctx, userID)
		if err != nil {
			log.Printf("User name cache lookup failed for %s: %v", userID, err)
		} else if found {
			return name
		}
	}

	user, err := r.users.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("User name lookup failed for %s, using placeholder: %v", userID, err)
		}
		observability.RecordNameFallback()
		return UnknownUserName
	}

	if r.cache != nil {
		if err := r.cache.SetUserName(ctx, user.ID, user.Name); err != nil {
			log.Printf("Failed to cache name for user %s: %v", user.ID, err)
		}
	}
	return user.Name
}
