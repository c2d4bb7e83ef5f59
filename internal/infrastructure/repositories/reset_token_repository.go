package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/ytstudio/domain"
)

// ResetTokenRepositoryImpl implements domain.ResetTokenRepository using
// Redis. Tokens expire via TTL; there is nothing to purge.
type ResetTokenRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewResetTokenRepository creates a new reset token repository
func NewResetTokenRepository(client *redis.Client, ttl time.Duration) domain.ResetTokenRepository {
	return &ResetTokenRepositoryImpl{
		client: client,
		prefix: "pwreset:",
		ttl:    ttl,
	}
}

// Store implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) Store(ctx context.Context, token string, userID uint) error {
	key := r.prefix + token
	return r.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), r.ttl).Err()
}

// Lookup implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) Lookup(ctx context.Context, token string) (uint, error) {
	key := r.prefix + token
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrResetTokenNotFound
		}
		return 0, err
	}

	userID, err := strconv.ParseUint(data, 10, 32)
	if err != nil {
		return 0, domain.ErrResetTokenNotFound
	}
	return uint(userID), nil
}

// Delete implements domain.ResetTokenRepository
func (r *ResetTokenRepositoryImpl) Delete(ctx context.Context, token string) error {
	key := r.prefix + token
	return r.client.Del(ctx, key).Err()
}
