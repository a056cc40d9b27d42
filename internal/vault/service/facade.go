package service

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

// FactoryParams collects the collaborators shared by every facade instance.
type FactoryParams struct {
	fx.In

	Log      *zap.Logger
	Config   domain.ConfigReader `name:"vault_config"`
	Factory  domain.ConfigFactory
	Registry domain.ProviderRegistry
	Handlers domain.ValueHandlerPool
	Events   domain.EventSink
	Commands domain.CommandPool
	Tokens   domain.TokenStore
}

// Factory builds request-scoped vault facades. The collaborators it holds are
// immutable and safe to share; all mutable state (bound store, resolved
// provider) lives on the facade it hands out, one per request context.
type Factory struct {
	log      *zap.Logger
	cfg      domain.ConfigReader
	factory  domain.ConfigFactory
	registry domain.ProviderRegistry
	handlers domain.ValueHandlerPool
	events   domain.EventSink
	commands domain.CommandPool
	tokens   domain.TokenStore
}

func NewFactory(p FactoryParams) *Factory {
	return &Factory{
		log:      p.Log.Named("vault.facade"),
		cfg:      p.Config,
		factory:  p.Factory,
		registry: p.Registry,
		handlers: p.Handlers,
		events:   p.Events,
		commands: p.Commands,
		tokens:   p.Tokens,
	}
}

// New returns a facade bound to the given store. Pass 0 to leave the store
// unbound.
func (f *Factory) New(storeID int64) *Facade {
	fc := &Facade{
		log:      f.log,
		cfg:      f.cfg,
		handlers: f.handlers,
		events:   f.events,
		commands: f.commands,
		tokens:   f.tokens,
		res:      newResolver(f.log, f.cfg, f.factory, f.registry),
	}
	fc.storeID = storeID
	return fc
}

// Facade is the vault payment method. It satisfies the same capability
// contract as any concrete method, delegating most queries to the provider
// that originally created the stored credential, pinning a fixed subset to
// false/unsupported, and implementing authorize/capture as token attachment
// plus named-command dispatch.
type Facade struct {
	log      *zap.Logger
	cfg      domain.ConfigReader
	handlers domain.ValueHandlerPool
	events   domain.EventSink
	commands domain.CommandPool
	tokens   domain.TokenStore
	res      *resolver

	storeID int64
	info    domain.PaymentInfo
}

var _ domain.Method = (*Facade)(nil)

func (f *Facade) provider() domain.Method { return f.res.provider(f.storeID) }

func (f *Facade) Code() string { return domain.MethodCode }
func (f *Facade) Title() string { return f.provider().Title() }

func (f *Facade) SetStore(storeID int64) { f.storeID = storeID }
func (f *Facade) Store() int64 { return f.storeID }

// effectiveStore is the store used for config-data resolution: the explicit
// argument when given, else the facade's bound store.
func (f *Facade) effectiveStore(storeID int64) int64 {
	if storeID != 0 {
		return storeID
	}
	return f.storeID
}

// boundOr is the store used for provider-code lookups: the bound store always
// wins over the argument. This mirrors the original behavior exactly, even
// though it silently discards the argument once a store is bound.
func (f *Facade) boundOr(storeID int64) int64 {
	if f.storeID != 0 {
		return f.storeID
	}
	return storeID
}

func (f *Facade) CanOrder() bool { return false }

// CanAuthorize is double-gated: the provider must report the capability and
// the store-level vault-authorize flag must be enabled.
func (f *Facade) CanAuthorize() bool {
	p := f.provider()
	return p.CanAuthorize() && truthy(p.ConfigData(domain.FieldCanAuthorize, 0))
}

// CanCapture is double-gated the same way as CanAuthorize.
func (f *Facade) CanCapture() bool {
	p := f.provider()
	return p.CanCapture() && truthy(p.ConfigData(domain.FieldCanCapture, 0))
}

func (f *Facade) CanCapturePartial() bool { return false }
func (f *Facade) CanCaptureOnce() bool { return f.provider().CanCaptureOnce() }
func (f *Facade) CanRefund() bool { return false }
func (f *Facade) CanRefundPartialPerInvoice() bool { return false }
func (f *Facade) CanVoid() bool { return false }
func (f *Facade) CanUseInternal() bool { return f.provider().CanUseInternal() }
func (f *Facade) CanUseCheckout() bool { return f.provider().CanUseCheckout() }
func (f *Facade) CanEdit() bool { return f.provider().CanEdit() }
func (f *Facade) CanFetchTransactionInfo() bool { return false }

func (f *Facade) CanReviewPayment() (bool, error) {
	return false, domain.ErrUnsupportedOperation
}

func (f *Facade) IsGateway() bool { return f.provider().IsGateway() }
func (f *Facade) IsOffline() bool { return f.provider().IsOffline() }
func (f *Facade) IsInitializeNeeded() bool { return f.provider().IsInitializeNeeded() }

func (f *Facade) IsActive(storeID int64) bool { return f.provider().IsActive(storeID) }

func (f *Facade) IsAvailable(ctx context.Context, cart domain.Cart) bool {
	return f.provider().IsAvailable(ctx, cart)
}

func (f *Facade) CanUseForCountry(country string) bool {
	return f.provider().CanUseForCountry(country)
}

func (f *Facade) CanUseForCurrency(currency string) bool {
	return f.provider().CanUseForCurrency(currency)
}

func (f *Facade) InfoBlockType() string { return f.provider().InfoBlockType() }
func (f *Facade) InfoInstance() domain.PaymentInfo { return f.provider().InfoInstance() }

func (f *Facade) SetInfoInstance(info domain.PaymentInfo) {
	f.info = info
	f.provider().SetInfoInstance(info)
}

func (f *Facade) Validate() error { return f.provider().Validate() }

// ConfigData resolves a configuration field through the value-handler pool.
func (f *Facade) ConfigData(field string, storeID int64) any {
	handler := f.handlers.Get(field)
	subject := domain.ValueSubject{Field: field}
	return handler.Handle(subject, f.effectiveStore(storeID))
}

func (f *Facade) ConfigPaymentAction() string { return f.provider().ConfigPaymentAction() }

// AssignData notifies vault observers (generic event first, then the
// provider-qualified variant) before delegating to the provider's own
// data-assignment logic.
func (f *Facade) AssignData(ctx context.Context, data domain.AssignedData) error {
	payload := map[string]any{
		domain.PayloadMethod:  f,
		domain.PayloadPayment: f.InfoInstance(),
		domain.PayloadData:    data,
	}

	f.events.Dispatch(ctx, domain.EventAssignData, payload)
	f.events.Dispatch(ctx, domain.EventAssignData+"_"+f.ProviderCode(0), payload)

	return f.provider().AssignData(ctx, data)
}

func (f *Facade) Initialize(context.Context, string, map[string]any) error {
	return domain.ErrUnsupportedOperation
}

func (f *Facade) Order(context.Context, domain.PaymentInfo, int64) error {
	return domain.ErrUnsupportedOperation
}

// Authorize runs token attachment and dispatches the vault authorize command
// against the resolved provider, stamping the payment with the provider code
// on success.
func (f *Facade) Authorize(ctx context.Context, payment domain.PaymentInfo, amount int64) error {
	orderPayment, ok := payment.(domain.OrderPayment)
	if !ok {
		return domain.ErrUnsupportedOperation
	}

	if err := f.attachTokenExtension(ctx, orderPayment); err != nil {
		return err
	}

	return f.dispatch(ctx, domain.CommandAuthorize, orderPayment, amount)
}

// Capture dispatches the vault sale command. Vault-mediated capture is only
// valid as a direct sale: a payment that already carries an authorization
// transaction must be captured through the provider, not through the vault.
func (f *Facade) Capture(ctx context.Context, payment domain.PaymentInfo, amount int64) error {
	orderPayment, ok := payment.(domain.OrderPayment)
	if !ok {
		return domain.ErrUnsupportedOperation
	}

	if orderPayment.HasAuthorizationTransaction() {
		return domain.ErrCaptureNotAllowed
	}

	if err := f.attachTokenExtension(ctx, orderPayment); err != nil {
		return err
	}

	return f.dispatch(ctx, domain.CommandSale, orderPayment, amount)
}

func (f *Facade) dispatch(ctx context.Context, commandCode string, payment domain.OrderPayment, amount int64) error {
	providerCode := f.provider().Code()

	executor, err := f.commands.Get(providerCode)
	if err != nil {
		return err
	}

	err = executor.ExecuteByCode(ctx, commandCode, payment, map[string]any{
		domain.ArgAmount: amount,
	})
	if err != nil {
		return err
	}

	payment.SetMethod(providerCode)
	return nil
}

// attachTokenExtension resolves the token metadata the caller placed on the
// payment and writes the matching stored token onto the payment's extension
// attributes. Nothing monetary has happened yet, so every failure here is a
// hard stop.
func (f *Facade) attachTokenExtension(ctx context.Context, payment domain.OrderPayment) error {
	meta, err := domain.TokenMetadataFromPayment(payment)
	if err != nil {
		return err
	}

	token, err := f.tokens.GetByPublicHash(ctx, meta.PublicHash, meta.CustomerID)
	if err != nil {
		return fmt.Errorf("vault: token lookup: %w", err)
	}
	if token == nil {
		return domain.ErrTokenNotFound
	}

	ext := domain.EnsureExtensionAttributes(payment)
	ext.SetVaultToken(token)
	return nil
}

func (f *Facade) Refund(context.Context, domain.PaymentInfo, int64) error {
	return domain.ErrUnsupportedOperation
}

func (f *Facade) Cancel(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}

func (f *Facade) Void(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}

func (f *Facade) AcceptPayment(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}

func (f *Facade) DenyPayment(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}

func (f *Facade) FetchTransactionInfo(context.Context, domain.PaymentInfo, string) (map[string]any, error) {
	return nil, domain.ErrUnsupportedOperation
}

// ProviderCode returns the configured provider code for the effective store.
// The bound store takes priority over the argument.
func (f *Facade) ProviderCode(storeID int64) string {
	return cast.ToString(f.cfg.Value(domain.FieldProviderCode, f.boundOr(storeID)))
}

// ActiveForPayment reports whether the vault currently stands in for the
// named payment method at the given store.
func (f *Facade) ActiveForPayment(paymentCode string, storeID int64) bool {
	return f.ProviderCode(f.boundOr(storeID)) == paymentCode && f.IsActive(f.boundOr(storeID))
}

// truthy interprets a configured flag value: booleans directly, everything
// else through string/number coercion ("1", "true", 1).
func truthy(v any) bool {
	if v == nil {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}
