package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/saeid-a/CoachAIBack/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore keeps the latest profile submitted for each user id.
// Put always overwrites; there is no merge and no delete.
type ProfileStore interface {
	Put(ctx context.Context, profile models.Profile) error
	Get(ctx context.Context, userID string) (*models.Profile, error)
	List(ctx context.Context) (map[string]models.Profile, error)
}

type MemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]models.Profile
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{profiles: make(map[string]models.Profile)}
}

func (r *MemoryProfileRepository) Put(_ context.Context, profile models.Profile) error {
	stored := profile.Clone()

	r.mu.Lock()
	r.profiles[profile.UserID] = stored
	r.mu.Unlock()
	return nil
}

func (r *MemoryProfileRepository) Get(_ context.Context, userID string) (*models.Profile, error) {
	r.mu.RLock()
	profile, ok := r.profiles[userID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrProfileNotFound
	}

	out := profile.Clone()
	return &out, nil
}

func (r *MemoryProfileRepository) List(_ context.Context) (map[string]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.Profile, len(r.profiles))
	for id, profile := range r.profiles {
		out[id] = profile.Clone()
	}
	return out, nil
}
