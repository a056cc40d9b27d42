package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/clock"
	"github.com/railzwaylabs/vaultgate/internal/observability"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

// Repository is the persistence layer the service fronts.
type Repository interface {
	domain.TokenStore
	Deactivate(ctx context.Context, customerID snowflake.ID, publicHash string) error
	ListVisible(ctx context.Context, customerID snowflake.ID) ([]*domain.StoredToken, error)
}

// Service is the stored-token lookup the vault facade consumes. It layers a
// cache-aside redis cache over the repository; cache failures degrade to the
// repository, never to the caller. Negative lookups are not cached so a token
// created after a miss resolves immediately. Cached entries are re-checked
// against the clock on read: a token must never outlive its expiry just
// because it sits in the cache.
type Service struct {
	log     *zap.Logger
	repo    Repository
	cache   *redis.Client
	ttl     time.Duration
	clk     clock.Clock
	metrics *observability.TokenMetrics
}

var _ domain.TokenStore = (*Service)(nil)

func New(log *zap.Logger, repo Repository, cache *redis.Client, ttl time.Duration, clk clock.Clock, metrics *observability.TokenMetrics) *Service {
	return &Service{
		log:     log.Named("token.service"),
		repo:    repo,
		cache:   cache,
		ttl:     ttl,
		clk:     clk,
		metrics: metrics,
	}
}

func cacheKey(publicHash string, customerID snowflake.ID) string {
	return fmt.Sprintf("vault:token:%d:%s", customerID, publicHash)
}

// cacheEntry restores the gateway token, which StoredToken keeps out of its
// own JSON form.
type cacheEntry struct {
	domain.StoredToken
	GatewayToken string `json:"gateway_token"`
}

func (s *Service) GetByPublicHash(ctx context.Context, publicHash string, customerID snowflake.ID) (*domain.StoredToken, error) {
	if token := s.fromCache(ctx, publicHash, customerID); token != nil {
		s.metrics.ObserveLookup(observability.LookupCached)
		return token, nil
	}

	token, err := s.repo.GetByPublicHash(ctx, publicHash, customerID)
	if err != nil {
		s.metrics.ObserveLookup(observability.LookupError)
		return nil, err
	}
	if token == nil {
		s.metrics.ObserveLookup(observability.LookupMiss)
		return nil, nil
	}

	s.metrics.ObserveLookup(observability.LookupHit)
	s.toCache(ctx, token)
	return token, nil
}

// Deactivate soft-deletes the token and drops its cache entry so the next
// lookup sees the deactivation immediately.
func (s *Service) Deactivate(ctx context.Context, customerID snowflake.ID, publicHash string) error {
	if err := s.repo.Deactivate(ctx, customerID, publicHash); err != nil {
		return err
	}
	s.Invalidate(ctx, publicHash, customerID)
	return nil
}

// ListVisible reads through to the repository; listings are not cached.
func (s *Service) ListVisible(ctx context.Context, customerID snowflake.ID) ([]*domain.StoredToken, error) {
	return s.repo.ListVisible(ctx, customerID)
}

func (s *Service) fromCache(ctx context.Context, publicHash string, customerID snowflake.ID) *domain.StoredToken {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, cacheKey(publicHash, customerID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Debug("token cache read failed", zap.Error(err))
		}
		return nil
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		s.log.Warn("token cache entry corrupt", zap.Error(err))
		return nil
	}

	token := entry.StoredToken
	token.GatewayToken = entry.GatewayToken

	// The repository only ever serves active, unexpired tokens; cached copies
	// must hold to the same contract.
	if !token.IsActive || token.Expired(s.clk.Now(ctx)) {
		s.Invalidate(ctx, publicHash, customerID)
		return nil
	}
	return &token
}

func (s *Service) toCache(ctx context.Context, token *domain.StoredToken) {
	if s.cache == nil {
		return
	}

	// Never cache past the token's remaining lifetime.
	ttl := s.ttl
	if token.ExpiresAt != nil {
		remaining := token.ExpiresAt.Sub(s.clk.Now(ctx))
		if remaining <= 0 {
			return
		}
		if remaining < ttl {
			ttl = remaining
		}
	}

	raw, err := json.Marshal(cacheEntry{StoredToken: *token, GatewayToken: token.GatewayToken})
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(token.PublicHash, token.CustomerID), raw, ttl).Err(); err != nil {
		s.log.Debug("token cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cache entry for a token.
func (s *Service) Invalidate(ctx context.Context, publicHash string, customerID snowflake.ID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKey(publicHash, customerID)).Err(); err != nil {
		s.log.Debug("token cache invalidation failed", zap.Error(err))
	}
}
