package domain

import "context"

// Command codes executed through the vault. Capture through the vault is
// always a direct sale, never a capture of a prior authorization.
const (
	CommandAuthorize = "vault_authorize"
	CommandSale      = "vault_sale"
)

// ArgAmount is the argument key carrying the transaction amount in minor
// units.
const ArgAmount = "amount"

// CommandExecutor runs named commands against a payment for one provider
// family. The actual gateway call happens behind this interface.
type CommandExecutor interface {
	ExecuteByCode(ctx context.Context, commandCode string, payment OrderPayment, args map[string]any) error
}

// CommandPool hands out the command executor bound to a provider code.
type CommandPool interface {
	Get(providerCode string) (CommandExecutor, error)
}
