package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/saeid-a/CoachAIBack/internal/models"
)

const defaultRedisKeyPrefix = "coach:"

// RedisProfileRepository keeps every profile in a single hash, one field per user id.
type RedisProfileRepository struct {
	client redis.Cmdable
	key    string
}

func NewRedisProfileRepository(client redis.Cmdable, keyPrefix string) *RedisProfileRepository {
	if keyPrefix == "" {
		keyPrefix = defaultRedisKeyPrefix
	}
	return &RedisProfileRepository{
		client: client,
		key:    keyPrefix + "profiles",
	}
}

func (r *RedisProfileRepository) Put(ctx context.Context, profile models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return r.client.HSet(ctx, r.key, profile.UserID, data).Err()
}

func (r *RedisProfileRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	data, err := r.client.HGet(ctx, r.key, userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("decode profile %q: %w", userID, err)
	}
	return &profile, nil
}

func (r *RedisProfileRepository) List(ctx context.Context) (map[string]models.Profile, error) {
	entries, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}

	profiles := make(map[string]models.Profile, len(entries))
	for userID, data := range entries {
		var profile models.Profile
		if err := json.Unmarshal([]byte(data), &profile); err != nil {
			return nil, fmt.Errorf("decode profile %q: %w", userID, err)
		}
		profiles[userID] = profile
	}
	return profiles, nil
}
