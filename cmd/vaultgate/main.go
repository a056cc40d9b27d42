package main

import (
	"fmt"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/railzwaylabs/vaultgate/internal/config"
	"github.com/railzwaylabs/vaultgate/internal/event"
	"github.com/railzwaylabs/vaultgate/internal/gateway"
	"github.com/railzwaylabs/vaultgate/internal/observability"
	"github.com/railzwaylabs/vaultgate/internal/providers"
	"github.com/railzwaylabs/vaultgate/internal/redis"
	"github.com/railzwaylabs/vaultgate/internal/server"
	"github.com/railzwaylabs/vaultgate/internal/token"
	"github.com/railzwaylabs/vaultgate/internal/vault"
	"github.com/railzwaylabs/vaultgate/pkg/db"

	"github.com/railzwaylabs/vaultgate/internal/clock"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vaultgate",
		Short: "Vault payment-method facade",
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the vault HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			fx.New(appOptions()).Run()
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed a demo provider configuration and stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func appOptions() fx.Option {
	return fx.Options(
		fx.Provide(config.Load),
		fx.Provide(db.Open),
		fx.Provide(redis.New),
		fx.Provide(newIDGenerator),
		fx.Provide(func() clock.Clock { return clock.System{} }),
		observability.Module,
		event.Module,
		gateway.Module,
		providers.Module,
		token.Module,
		vault.Module,
		server.Module,
	)
}

func newIDGenerator() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
