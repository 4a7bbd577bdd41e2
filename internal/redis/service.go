package redis

import (
	"context"
	"time"

	"github.com/Arnobrizwan/intellinote-app/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// Service keeps the denylist of revoked token ids. A nil *Service is valid:
// revocation becomes a no-op and every token counts as live, so the service
// degrades to plain expiry-based sessions when Redis is not configured.
type Service struct {
	client *redis.Client
}

// NewService creates a new Redis service
func NewService(addr, password string, db int) *Service {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to connect to Redis")
		return nil
	}

	logger.Log.Info().Msg("Successfully connected to Redis")
	return &Service{client: client}
}

// RevokeToken denylists a token id until its natural expiry.
func (s *Service) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if s == nil || ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether a token id is on the denylist. Lookup errors are
// logged and treated as not revoked rather than failing the request.
func (s *Service) IsRevoked(ctx context.Context, jti string) bool {
	if s == nil || jti == "" {
		return false
	}

	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to check token revocation")
		return false
	}
	return n > 0
}
