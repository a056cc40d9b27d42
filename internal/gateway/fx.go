package gateway

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/observability"
	"github.com/railzwaylabs/vaultgate/internal/providers/stub"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"

	gatewaycommand "github.com/railzwaylabs/vaultgate/internal/gateway/command"
	gatewayconfig "github.com/railzwaylabs/vaultgate/internal/gateway/config"
)

// Module wires the gateway config and command layers: the database-backed
// config source, the vault method's own config view, the value-handler pool
// and the command executor pool.
var Module = fx.Module("gateway",
	fx.Provide(func(src *gatewayconfig.GormSource) gatewayconfig.Source { return src }),
	fx.Provide(gatewayconfig.NewGormSource),
	fx.Provide(func(src gatewayconfig.Source) domain.ConfigFactory {
		return gatewayconfig.NewFactory(src)
	}),
	fx.Provide(fx.Annotate(
		func(src gatewayconfig.Source) domain.ConfigReader {
			return gatewayconfig.New(src, domain.MethodCode)
		},
		fx.ResultTags(`name:"vault_config"`),
	)),
	fx.Provide(fx.Annotate(
		func(cfg domain.ConfigReader) domain.ValueHandlerPool {
			return gatewayconfig.NewHandlerPool(gatewayconfig.NewValueHandler(cfg), nil)
		},
		fx.ParamTags(`name:"vault_config"`),
	)),
	fx.Provide(newCommandPool),
)

// newCommandPool registers one executor per integrated provider family. The
// set is static: which family the vault points at is a per-store config
// decision resolved at dispatch time, never at startup.
func newCommandPool(log *zap.Logger, metrics *observability.CommandMetrics) domain.CommandPool {
	pool := gatewaycommand.NewPool(nil)

	for _, family := range []struct {
		code     string
		commands map[string]gatewaycommand.Command
	}{
		{stub.ProviderCode, stub.NewCommands(log)},
	} {
		pool.Register(family.code, gatewaycommand.NewExecutor(log, family.code, family.commands, metrics))
	}

	return pool
}
