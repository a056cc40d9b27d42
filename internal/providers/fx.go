package providers

import (
	"go.uber.org/fx"

	"github.com/railzwaylabs/vaultgate/internal/providers/stub"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

var Module = fx.Module("providers",
	fx.Provide(func() domain.ProviderRegistry {
		return NewRegistry().
			Register(stub.Model, stub.New)
	}),
)
