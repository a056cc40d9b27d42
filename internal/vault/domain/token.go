package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// StoredToken is a persisted reference to a previously authorized payment
// credential. The public hash is stable and non-secret; the gateway token is
// the provider-side handle and never leaves the command layer.
type StoredToken struct {
	ID                snowflake.ID   `json:"id" gorm:"primaryKey"`
	CustomerID        snowflake.ID   `json:"customer_id" gorm:"not null;uniqueIndex:idx_vault_tokens_hash"`
	PublicHash        string         `json:"public_hash" gorm:"type:varchar(128);not null;uniqueIndex:idx_vault_tokens_hash"`
	PaymentMethodCode string         `json:"payment_method_code" gorm:"type:varchar(64);not null"`
	Type              string         `json:"type" gorm:"type:varchar(32);not null"`
	GatewayToken      string         `json:"-" gorm:"type:text;not null"`
	Details           datatypes.JSON `json:"details" gorm:"type:jsonb"`
	ExpiresAt         *time.Time     `json:"expires_at"`
	IsActive          bool           `json:"is_active" gorm:"not null;default:true"`
	IsVisible         bool           `json:"is_visible" gorm:"not null;default:true"`
	CreatedAt         time.Time      `json:"created_at" gorm:"not null"`
	UpdatedAt         time.Time      `json:"updated_at" gorm:"not null"`
}

func (StoredToken) TableName() string { return "vault_tokens" }

// Expired reports whether the token is past its expiry at the given instant.
// Tokens without an expiry never expire.
func (t *StoredToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !t.ExpiresAt.After(now)
}

// TokenStore looks up stored tokens by public hash and owning customer.
// Implementations return (nil, nil) when no matching token exists.
type TokenStore interface {
	GetByPublicHash(ctx context.Context, publicHash string, customerID snowflake.ID) (*StoredToken, error)
}
