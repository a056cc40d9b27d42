package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bwmarrin/snowflake"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/clock"
	"github.com/railzwaylabs/vaultgate/internal/token/service"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// stepClock is a mutable clock shared between the service and the store.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now(context.Context) time.Time { return c.now }

func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// countingStore records lookups and serves a fixed token set, filtering
// lifecycle the way the real repository does.
type countingStore struct {
	tokens map[string]*domain.StoredToken
	clk    clock.Clock
	calls  int
	err    error
}

func (s *countingStore) GetByPublicHash(ctx context.Context, publicHash string, _ snowflake.ID) (*domain.StoredToken, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	token, ok := s.tokens[publicHash]
	if !ok || !token.IsActive || token.Expired(s.clk.Now(ctx)) {
		return nil, nil
	}
	return token, nil
}

func (s *countingStore) Deactivate(_ context.Context, _ snowflake.ID, publicHash string) error {
	if token, ok := s.tokens[publicHash]; ok {
		token.IsActive = false
	}
	return nil
}

func (s *countingStore) ListVisible(_ context.Context, _ snowflake.ID) ([]*domain.StoredToken, error) {
	var tokens []*domain.StoredToken
	for _, tk := range s.tokens {
		tokens = append(tokens, tk)
	}
	return tokens, nil
}

func newStore(clk clock.Clock, tokens ...*domain.StoredToken) *countingStore {
	s := &countingStore{tokens: map[string]*domain.StoredToken{}, clk: clk}
	for _, tk := range tokens {
		s.tokens[tk.PublicHash] = tk
	}
	return s
}

func testToken() *domain.StoredToken {
	return &domain.StoredToken{
		ID:           snowflake.ParseInt64(100),
		CustomerID:   snowflake.ParseInt64(7),
		PublicHash:   "abc",
		GatewayToken: "tok_gw_123",
		Type:         "card",
		IsActive:     true,
		IsVisible:    true,
	}
}

func newCache(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestLookupCachesAfterFirstHit(t *testing.T) {
	clk := &stepClock{now: testNow}
	store := newStore(clk, testToken())
	svc := service.New(zap.NewNop(), store, newCache(t), time.Minute, clk, nil)
	ctx := context.Background()

	first, err := svc.GetByPublicHash(ctx, "abc", snowflake.ParseInt64(7))
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.GetByPublicHash(ctx, "abc", snowflake.ParseInt64(7))
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, 1, store.calls, "second lookup must come from the cache")
	assert.Equal(t, "tok_gw_123", second.GatewayToken, "cached entries keep the gateway token")
	assert.Equal(t, first.ID, second.ID)
}

func TestCachedTokenExpiresWithTheClock(t *testing.T) {
	clk := &stepClock{now: testNow}
	expires := testNow.Add(30 * time.Second)
	token := testToken()
	token.ExpiresAt = &expires

	store := newStore(clk, token)
	svc := service.New(zap.NewNop(), store, newCache(t), time.Hour, clk, nil)
	ctx := context.Background()
	customer := snowflake.ParseInt64(7)

	got, err := svc.GetByPublicHash(ctx, "abc", customer)
	require.NoError(t, err)
	require.NotNil(t, got)

	clk.Advance(10 * time.Minute)

	got, err = svc.GetByPublicHash(ctx, "abc", customer)
	require.NoError(t, err)
	assert.Nil(t, got, "an expired token must not resolve from the cache")
	assert.Equal(t, 2, store.calls, "the stale entry must fall back to the repository")
}

func TestCacheTTLNeverOutlivesTheToken(t *testing.T) {
	clk := &stepClock{now: testNow}
	expires := testNow.Add(30 * time.Second)
	token := testToken()
	token.ExpiresAt = &expires

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := newStore(clk, token)
	svc := service.New(zap.NewNop(), store, cache, time.Hour, clk, nil)

	_, err := svc.GetByPublicHash(context.Background(), "abc", snowflake.ParseInt64(7))
	require.NoError(t, err)

	ttl := mr.TTL("vault:token:7:abc")
	assert.True(t, ttl > 0 && ttl <= 30*time.Second, "cache TTL %v must be capped at the token's remaining lifetime", ttl)
}

func TestExpiredTokenIsNeverCached(t *testing.T) {
	clk := &stepClock{now: testNow}
	expires := testNow.Add(-time.Minute)
	token := testToken()
	token.ExpiresAt = &expires
	token.IsActive = true

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	// The lifecycle filter belongs to the repository; even a store that hands
	// out expired tokens must not get them cached.
	store := &countingStore{tokens: map[string]*domain.StoredToken{"abc": token}, clk: clock.Fixed(testNow.Add(-time.Hour))}
	svc := service.New(zap.NewNop(), store, cache, time.Hour, clk, nil)

	_, err := svc.GetByPublicHash(context.Background(), "abc", snowflake.ParseInt64(7))
	require.NoError(t, err)
	assert.False(t, mr.Exists("vault:token:7:abc"))
}

func TestDeactivateInvalidatesCache(t *testing.T) {
	clk := &stepClock{now: testNow}
	store := newStore(clk, testToken())
	svc := service.New(zap.NewNop(), store, newCache(t), time.Minute, clk, nil)
	ctx := context.Background()
	customer := snowflake.ParseInt64(7)

	got, err := svc.GetByPublicHash(ctx, "abc", customer)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NoError(t, svc.Deactivate(ctx, customer, "abc"))

	got, err = svc.GetByPublicHash(ctx, "abc", customer)
	require.NoError(t, err)
	assert.Nil(t, got, "a deactivated token must not resolve from the cache")
}

func TestNegativeLookupsAreNotCached(t *testing.T) {
	clk := &stepClock{now: testNow}
	store := newStore(clk)
	svc := service.New(zap.NewNop(), store, newCache(t), time.Minute, clk, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		token, err := svc.GetByPublicHash(ctx, "missing", snowflake.ParseInt64(7))
		require.NoError(t, err)
		assert.Nil(t, token)
	}

	assert.Equal(t, 2, store.calls)
}

func TestLookupWithoutCache(t *testing.T) {
	clk := &stepClock{now: testNow}
	store := newStore(clk, testToken())
	svc := service.New(zap.NewNop(), store, nil, time.Minute, clk, nil)

	token, err := svc.GetByPublicHash(context.Background(), "abc", snowflake.ParseInt64(7))
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, 1, store.calls)
}

func TestCacheFailureDegradesToRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	clk := &stepClock{now: testNow}
	store := newStore(clk, testToken())
	svc := service.New(zap.NewNop(), store, cache, time.Minute, clk, nil)

	token, err := svc.GetByPublicHash(context.Background(), "abc", snowflake.ParseInt64(7))
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "tok_gw_123", token.GatewayToken)
}

func TestRepositoryErrorPropagates(t *testing.T) {
	clk := &stepClock{now: testNow}
	store := &countingStore{clk: clk, err: assert.AnError}
	svc := service.New(zap.NewNop(), store, newCache(t), time.Minute, clk, nil)

	_, err := svc.GetByPublicHash(context.Background(), "abc", snowflake.ParseInt64(7))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestListVisibleReadsThrough(t *testing.T) {
	clk := &stepClock{now: testNow}
	store := newStore(clk, testToken())
	svc := service.New(zap.NewNop(), store, newCache(t), time.Minute, clk, nil)

	tokens, err := svc.ListVisible(context.Background(), snowflake.ParseInt64(7))
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "abc", tokens[0].PublicHash)
}

func TestCorruptCacheEntryFallsBack(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, mr.Set("vault:token:7:abc", "{not json"))

	clk := &stepClock{now: testNow}
	store := newStore(clk, testToken())
	svc := service.New(zap.NewNop(), store, cache, time.Minute, clk, nil)

	token, err := svc.GetByPublicHash(context.Background(), "abc", snowflake.ParseInt64(7))
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, 1, store.calls)
}
