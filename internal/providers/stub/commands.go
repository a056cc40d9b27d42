package stub

import (
	"context"
	"errors"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	gatewaycommand "github.com/railzwaylabs/vaultgate/internal/gateway/command"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

var ErrNoVaultToken = errors.New("stub: no vault token attached to payment")

// NewCommands returns the named commands of the stub provider family. They
// simulate gateway calls: the stored token must already be attached to the
// payment's extension attributes, exactly as a real gateway command would
// require before charging a vaulted credential.
func NewCommands(log *zap.Logger) map[string]gatewaycommand.Command {
	log = log.Named("stub.gateway")

	run := func(operation string) gatewaycommand.Command {
		return gatewaycommand.CommandFunc(func(_ context.Context, payment domain.OrderPayment, args map[string]any) error {
			ext := payment.ExtensionAttributes()
			if ext == nil || ext.VaultToken() == nil {
				return ErrNoVaultToken
			}
			log.Info("gateway operation",
				zap.String("operation", operation),
				zap.String("public_hash", ext.VaultToken().PublicHash),
				zap.Int64("amount", cast.ToInt64(args[domain.ArgAmount])))
			return nil
		})
	}

	return map[string]gatewaycommand.Command{
		domain.CommandAuthorize: run("authorize"),
		domain.CommandSale:      run("sale"),
	}
}
