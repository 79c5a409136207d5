package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/session"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var _ session.Store = (*RedisStore)(nil)

// DefaultKeyPrefix namespaces session keys in Redis
const DefaultKeyPrefix = "session:"

// RedisStore keeps sessions in Redis with a sliding expiry
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
	logger    coreport.Logger
	newToken  func() string
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(client redis.UniversalClient, keyPrefix string, ttl time.Duration, logger coreport.Logger) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		logger:    logger,
		newToken:  uuid.NewString,
	}
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis: %v", errs.ErrDatabaseConnection, err)
	}
	return client, nil
}

func (s *RedisStore) key(token string) string {
	return s.keyPrefix + token
}

// Create stores a fresh token for the user
func (s *RedisStore) Create(ctx context.Context, userID uint64) (string, error) {
	token := s.newToken()
	if err := s.client.Set(ctx, s.key(token), userID, s.ttl).Err(); err != nil {
		s.logger.Error("Failed to create session", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return "", fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return token, nil
}

// Resolve returns the user bound to token and extends its expiry
func (s *RedisStore) Resolve(ctx context.Context, token string) (uint64, error) {
	if _, err := uuid.Parse(token); err != nil {
		return 0, errs.ErrSessionNotFound
	}

	val, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, errs.ErrSessionNotFound
	}
	if err != nil {
		s.logger.Error("Failed to resolve session", map[string]any{"error": err.Error()})
		return 0, fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil || userID == 0 {
		s.logger.Warn("Discarding corrupt session", map[string]any{"value": val})
		_ = s.client.Del(ctx, s.key(token)).Err()
		return 0, errs.ErrSessionNotFound
	}

	if s.ttl > 0 {
		if err := s.client.Expire(ctx, s.key(token), s.ttl).Err(); err != nil {
			s.logger.Warn("Failed to extend session", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}
	return userID, nil
}

// Destroy deletes the session; unknown tokens are ignored
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
	return nil
}
