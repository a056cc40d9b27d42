package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/railzwaylabs/vaultgate/internal/clock"
	"github.com/railzwaylabs/vaultgate/internal/config"
	"github.com/railzwaylabs/vaultgate/internal/providers/stub"
	tokenrepo "github.com/railzwaylabs/vaultgate/internal/token/repository"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
	"github.com/railzwaylabs/vaultgate/pkg/db"

	gatewayconfig "github.com/railzwaylabs/vaultgate/internal/gateway/config"
)

func openDatabase() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return db.Open(cfg)
}

func runMigrate() error {
	gdb, err := openDatabase()
	if err != nil {
		return err
	}
	return gdb.AutoMigrate(&domain.StoredToken{}, &gatewayconfig.MethodConfig{})
}

// runSeed installs a working demo setup: the vault pointing at a stub
// provider family, the operator gates enabled, and one stored card token for
// customer 1.
func runSeed() error {
	gdb, err := openDatabase()
	if err != nil {
		return err
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	rows := []gatewayconfig.MethodConfig{
		{MethodCode: domain.MethodCode, Field: domain.FieldProviderCode, Value: stub.ProviderCode},
		{MethodCode: stub.ProviderCode, Field: domain.FieldModel, Value: stub.Model},
		{MethodCode: stub.ProviderCode, Field: "code", Value: stub.ProviderCode},
		{MethodCode: stub.ProviderCode, Field: "title", Value: "Stub Pay (vaulted)"},
		{MethodCode: stub.ProviderCode, Field: "active", Value: "1"},
		{MethodCode: stub.ProviderCode, Field: "can_authorize", Value: "1"},
		{MethodCode: stub.ProviderCode, Field: "can_capture", Value: "1"},
		{MethodCode: stub.ProviderCode, Field: "can_use_checkout", Value: "1"},
		{MethodCode: stub.ProviderCode, Field: domain.FieldCanAuthorize, Value: "1"},
		{MethodCode: stub.ProviderCode, Field: domain.FieldCanCapture, Value: "1"},
		{MethodCode: stub.ProviderCode, Field: "payment_action", Value: "authorize"},
		{MethodCode: stub.ProviderCode, Field: "currencies", Value: "USD,EUR"},
	}
	for _, row := range rows {
		row.ID = node.Generate()
		if err := gdb.Where("method_code = ? AND store_id = ? AND field = ?", row.MethodCode, row.StoreID, row.Field).
			Assign(map[string]any{"value": row.Value}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	repo := tokenrepo.New(gdb, clock.System{}, node)
	expires := time.Now().UTC().AddDate(1, 0, 0)
	demo := &domain.StoredToken{
		CustomerID:        snowflake.ParseInt64(1),
		PaymentMethodCode: stub.ProviderCode,
		Type:              "card",
		GatewayToken:      "tok_demo_4242",
		ExpiresAt:         &expires,
		IsActive:          true,
		IsVisible:         true,
	}
	if err := repo.Save(context.Background(), demo); err != nil {
		return err
	}

	fmt.Printf("seeded token public_hash=%s customer_id=%d\n", demo.PublicHash, demo.CustomerID)
	return nil
}
