package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// Key prefixes for Redis
	mentorKeyPrefix   = "directory:mentor:"
	administratorsKey = "directory:administrators"
)

// CacheConfig holds configuration for the Redis directory cache
type CacheConfig struct {
	RedisClient *redis.Client
	Backend     Repository
	TTL         time.Duration
	Logger      *zap.Logger
}

// redisCache is a read-through cache for mentors and administrators.
// Student lists change with enrolment and always go to the backend.
type redisCache struct {
	client  *redis.Client
	backend Repository
	ttl     time.Duration
	log     *zap.Logger
}

// NewRedisCache wraps a directory with a Redis read-through cache
func NewRedisCache(cfg *CacheConfig) (*redisCache, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}
	if cfg.Backend == nil {
		return nil, ErrNilBackend
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &redisCache{
		client:  cfg.RedisClient,
		backend: cfg.Backend,
		ttl:     ttl,
		log:     log,
	}, nil
}

// ListCohortStudents always reads from the backend
func (c *redisCache) ListCohortStudents(ctx context.Context, input *ListCohortStudentsInput) (*ListCohortStudentsOutput, error) {
	return c.backend.ListCohortStudents(ctx, input)
}

// GetMentor serves a mentor from cache, falling back to the backend
func (c *redisCache) GetMentor(ctx context.Context, input *GetMentorInput) (*models.Contact, error) {
	if input == nil || input.MentorID == 0 {
		return nil, errors.New("input and mentor ID cannot be empty")
	}

	key := fmt.Sprintf("%s%d", mentorKeyPrefix, input.MentorID)
	var cached models.Contact
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	mentor, err := c.backend.GetMentor(ctx, input)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, mentor)
	return mentor, nil
}

// ListAdministrators serves administrators from cache, falling back to the backend
func (c *redisCache) ListAdministrators(ctx context.Context) (*ListAdministratorsOutput, error) {
	var cached []*models.Contact
	if c.load(ctx, administratorsKey, &cached) {
		return &ListAdministratorsOutput{Administrators: cached}, nil
	}

	out, err := c.backend.ListAdministrators(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, administratorsKey, out.Administrators)
	return out, nil
}

// load reports whether key held a decodable value; cache errors count as a miss
func (c *redisCache) load(ctx context.Context, key string, dst interface{}) bool {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("directory cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		c.log.Warn("directory cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *redisCache) store(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("directory cache write failed", zap.String("key", key), zap.Error(err))
	}
}
