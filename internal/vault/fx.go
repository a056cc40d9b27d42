package vault

import (
	"go.uber.org/fx"

	"github.com/railzwaylabs/vaultgate/internal/vault/service"
)

var Module = fx.Module("vault",
	fx.Provide(service.NewFactory),
)
