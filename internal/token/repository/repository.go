package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/railzwaylabs/vaultgate/internal/clock"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

var ErrInvalidToken = errors.New("token repository: invalid token")

// Repository persists stored tokens. Lookups only ever see active, visible,
// unexpired tokens; everything else behaves as absent.
type Repository struct {
	db    *gorm.DB
	clk   clock.Clock
	idGen *snowflake.Node
}

var _ domain.TokenStore = (*Repository)(nil)

func New(db *gorm.DB, clk clock.Clock, idGen *snowflake.Node) *Repository {
	return &Repository{db: db, clk: clk, idGen: idGen}
}

func (r *Repository) GetByPublicHash(ctx context.Context, publicHash string, customerID snowflake.ID) (*domain.StoredToken, error) {
	var token domain.StoredToken
	err := r.db.WithContext(ctx).
		Where("public_hash = ? AND customer_id = ?", publicHash, customerID).
		Where("is_active = ? AND is_visible = ?", true, true).
		Where("expires_at IS NULL OR expires_at > ?", r.clk.Now(ctx)).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// Save inserts or updates a stored token, assigning an ID and public hash on
// first insert.
func (r *Repository) Save(ctx context.Context, token *domain.StoredToken) error {
	if token == nil || token.CustomerID == 0 || token.GatewayToken == "" {
		return ErrInvalidToken
	}

	now := r.clk.Now(ctx)
	if token.ID == 0 {
		token.ID = r.idGen.Generate()
		token.CreatedAt = now
	}
	if token.PublicHash == "" {
		token.PublicHash = newPublicHash()
	}
	token.UpdatedAt = now

	return r.db.WithContext(ctx).Save(token).Error
}

// Deactivate soft-deletes a token: it stays on record but no longer resolves.
func (r *Repository) Deactivate(ctx context.Context, customerID snowflake.ID, publicHash string) error {
	return r.db.WithContext(ctx).
		Model(&domain.StoredToken{}).
		Where("customer_id = ? AND public_hash = ?", customerID, publicHash).
		Updates(map[string]any{"is_active": false, "updated_at": r.clk.Now(ctx)}).Error
}

// ListVisible returns the customer's tokens eligible for checkout display.
func (r *Repository) ListVisible(ctx context.Context, customerID snowflake.ID) ([]*domain.StoredToken, error) {
	var tokens []*domain.StoredToken
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND is_active = ? AND is_visible = ?", customerID, true, true).
		Where("expires_at IS NULL OR expires_at > ?", r.clk.Now(ctx)).
		Order("created_at DESC").
		Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// newPublicHash derives a fresh non-secret token identifier.
func newPublicHash() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
