package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/railzwaylabs/vaultgate/internal/clock"
	"github.com/railzwaylabs/vaultgate/internal/token/repository"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) *repository.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.StoredToken{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return repository.New(db, clock.Fixed(testNow), node)
}

func seedToken(t *testing.T, repo *repository.Repository, mutate func(*domain.StoredToken)) *domain.StoredToken {
	t.Helper()

	token := &domain.StoredToken{
		CustomerID:        snowflake.ParseInt64(7),
		PaymentMethodCode: "braintree",
		Type:              "card",
		GatewayToken:      "tok_gw_123",
		IsActive:          true,
		IsVisible:         true,
	}
	if mutate != nil {
		mutate(token)
	}
	require.NoError(t, repo.Save(context.Background(), token))
	return token
}

func TestSaveAssignsIdentity(t *testing.T) {
	repo := newRepo(t)
	token := seedToken(t, repo, nil)

	assert.NotZero(t, token.ID)
	assert.Len(t, token.PublicHash, 32)
	assert.Equal(t, testNow, token.CreatedAt)
}

func TestSaveRejectsIncompleteTokens(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Save(ctx, nil), repository.ErrInvalidToken)
	assert.ErrorIs(t, repo.Save(ctx, &domain.StoredToken{GatewayToken: "tok"}), repository.ErrInvalidToken)
	assert.ErrorIs(t, repo.Save(ctx, &domain.StoredToken{CustomerID: 7}), repository.ErrInvalidToken)
}

func TestGetByPublicHash(t *testing.T) {
	repo := newRepo(t)
	token := seedToken(t, repo, nil)

	got, err := repo.GetByPublicHash(context.Background(), token.PublicHash, token.CustomerID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, token.ID, got.ID)
	assert.Equal(t, "tok_gw_123", got.GatewayToken)
}

func TestGetByPublicHashAbsenceIsNil(t *testing.T) {
	repo := newRepo(t)
	token := seedToken(t, repo, nil)

	tests := []struct {
		name       string
		publicHash string
		customerID snowflake.ID
	}{
		{"unknown hash", "nope", token.CustomerID},
		{"wrong customer", token.PublicHash, snowflake.ParseInt64(99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByPublicHash(context.Background(), tt.publicHash, tt.customerID)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestGetByPublicHashFiltersLifecycle(t *testing.T) {
	repo := newRepo(t)
	expired := testNow.Add(-time.Hour)
	future := testNow.Add(24 * time.Hour)

	tests := []struct {
		name   string
		mutate func(*domain.StoredToken)
		found  bool
	}{
		{"inactive", func(tk *domain.StoredToken) { tk.IsActive = false }, false},
		{"invisible", func(tk *domain.StoredToken) { tk.IsVisible = false }, false},
		{"expired", func(tk *domain.StoredToken) { tk.ExpiresAt = &expired }, false},
		{"not yet expired", func(tk *domain.StoredToken) { tk.ExpiresAt = &future }, true},
		{"no expiry", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := seedToken(t, repo, tt.mutate)

			got, err := repo.GetByPublicHash(context.Background(), token.PublicHash, token.CustomerID)
			require.NoError(t, err)
			if tt.found {
				assert.NotNil(t, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestDeactivate(t *testing.T) {
	repo := newRepo(t)
	token := seedToken(t, repo, nil)
	ctx := context.Background()

	require.NoError(t, repo.Deactivate(ctx, token.CustomerID, token.PublicHash))

	got, err := repo.GetByPublicHash(ctx, token.PublicHash, token.CustomerID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListVisible(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	visible := seedToken(t, repo, nil)
	seedToken(t, repo, func(tk *domain.StoredToken) { tk.IsVisible = false })
	seedToken(t, repo, func(tk *domain.StoredToken) { tk.CustomerID = snowflake.ParseInt64(8) })

	tokens, err := repo.ListVisible(ctx, visible.CustomerID)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, visible.ID, tokens[0].ID)
}
