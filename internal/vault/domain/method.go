package domain

import "context"

// MethodCode is the payment method code the vault facade registers under.
const MethodCode = "vault"

// Config fields consumed by the vault facade.
const (
	// FieldProviderCode names the concrete provider the vault stands in for.
	FieldProviderCode = "vault_payment"
	// FieldModel holds the model identifier used to instantiate the provider.
	FieldModel = "model"
	// FieldCanAuthorize and FieldCanCapture are the store-level gates that let
	// an operator disable vault-initiated authorize/capture independent of the
	// provider's own capabilities.
	FieldCanAuthorize = "can_authorize_vault"
	FieldCanCapture   = "can_capture_vault"
)

// Cart is the minimal quote view a method needs to answer availability.
type Cart interface {
	StoreID() int64
	GrandTotal() int64
	Currency() string
}

// AssignedData is the raw key/value payload bound to a payment method during
// checkout data assignment.
type AssignedData map[string]any

// Method is the capability contract every payment method satisfies, whether
// it talks to a gateway directly or stands in front of one the way the vault
// facade does. Callers treat vault-backed and direct methods interchangeably
// through this interface.
type Method interface {
	Code() string
	Title() string

	SetStore(storeID int64)
	Store() int64

	CanOrder() bool
	CanAuthorize() bool
	CanCapture() bool
	CanCapturePartial() bool
	CanCaptureOnce() bool
	CanRefund() bool
	CanRefundPartialPerInvoice() bool
	CanVoid() bool
	CanUseInternal() bool
	CanUseCheckout() bool
	CanEdit() bool
	CanFetchTransactionInfo() bool
	CanReviewPayment() (bool, error)

	IsGateway() bool
	IsOffline() bool
	IsInitializeNeeded() bool
	IsActive(storeID int64) bool
	IsAvailable(ctx context.Context, cart Cart) bool

	CanUseForCountry(country string) bool
	CanUseForCurrency(currency string) bool

	InfoBlockType() string
	InfoInstance() PaymentInfo
	SetInfoInstance(info PaymentInfo)
	Validate() error

	ConfigData(field string, storeID int64) any
	ConfigPaymentAction() string

	AssignData(ctx context.Context, data AssignedData) error
	Initialize(ctx context.Context, paymentAction string, state map[string]any) error

	Order(ctx context.Context, payment PaymentInfo, amount int64) error
	Authorize(ctx context.Context, payment PaymentInfo, amount int64) error
	Capture(ctx context.Context, payment PaymentInfo, amount int64) error
	Refund(ctx context.Context, payment PaymentInfo, amount int64) error
	Cancel(ctx context.Context, payment PaymentInfo) error
	Void(ctx context.Context, payment PaymentInfo) error
	AcceptPayment(ctx context.Context, payment PaymentInfo) error
	DenyPayment(ctx context.Context, payment PaymentInfo) error
	FetchTransactionInfo(ctx context.Context, payment PaymentInfo, transactionID string) (map[string]any, error)
}
