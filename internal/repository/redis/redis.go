package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRepository is the Redis-backed session store: one key per user plus a
// reverse lookup from token to user id for fast middleware validation.
type TokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{
		client: client,
	}
}

func userKey(userID string) string {
	return fmt.Sprintf("session:user:%s", userID)
}

func lookupKey(token string) string {
	return fmt.Sprintf("session:lookup:%s", token)
}

func (r *TokenRepository) StoreToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, userKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in Redis: %w", err)
	}

	if err := r.client.Set(ctx, lookupKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session lookup: %w", err)
	}

	return nil
}

// ValidateToken checks the reverse lookup and returns the owning user id.
func (r *TokenRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, lookupKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.New("session not found or expired")
		}
		return "", fmt.Errorf("failed to validate session: %w", err)
	}

	return userID, nil
}

func (r *TokenRepository) DeleteToken(ctx context.Context, userID, token string) error {
	if err := r.client.Del(ctx, userKey(userID), lookupKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
