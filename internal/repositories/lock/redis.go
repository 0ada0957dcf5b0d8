package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/common/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix = "lock:"
	defaultTTL    = 30 * time.Second
)

// releaseScript deletes the key only when it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Config holds configuration for the Redis locker
type Config struct {
	RedisClient   *redis.Client
	UUIDGenerator uuid.UUID
}

// redisLocker implements the Locker interface with SET NX PX
type redisLocker struct {
	client *redis.Client
	ids    uuid.UUID
}

// NewRedis creates a new Redis-backed locker
func NewRedis(cfg *Config) (*redisLocker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	return &redisLocker{
		client: cfg.RedisClient,
		ids:    ids,
	}, nil
}

// Acquire takes the lock for a key or fails with ErrLockHeld
func (l *redisLocker) Acquire(ctx context.Context, input *AcquireInput) (*AcquireOutput, error) {
	if input == nil || input.Key == "" {
		return nil, ErrEmptyKey
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	token := l.ids.NewUUID()
	ok, err := l.client.SetNX(ctx, lockKeyPrefix+input.Key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", input.Key, err)
	}
	if !ok {
		return nil, ErrLockHeld
	}

	return &AcquireOutput{Key: input.Key, Token: token}, nil
}

// Release drops the lock if the token still owns it
func (l *redisLocker) Release(ctx context.Context, input *ReleaseInput) error {
	if input == nil || input.Key == "" {
		return ErrEmptyKey
	}

	if err := releaseScript.Run(ctx, l.client, []string{lockKeyPrefix + input.Key}, input.Token).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", input.Key, err)
	}
	return nil
}
