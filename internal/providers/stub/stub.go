package stub

import (
	"context"
	"strings"

	"github.com/spf13/cast"

	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

// Model is the identifier this provider registers under.
const Model = "stub"

// ProviderCode is the method code of the stub provider family. Command
// executors key on it, and the seeded configuration points the vault at it.
const ProviderCode = "stub_pay"

// Method is a configuration-driven payment method. It performs no gateway
// calls; every capability and eligibility answer comes from its config view.
// Deployments use it to exercise the vault wiring end to end, and tests use
// it as a realistic provider.
type Method struct {
	cfg     domain.ConfigReader
	storeID int64
	info    domain.PaymentInfo
}

var _ domain.Method = (*Method)(nil)

func New(cfg domain.ConfigReader) (domain.Method, error) {
	return &Method{cfg: cfg}, nil
}

func (m *Method) value(field string, storeID int64) any {
	return m.cfg.Value(field, storeID)
}

func (m *Method) flag(field string) bool {
	b, err := cast.ToBoolE(m.value(field, m.storeID))
	return err == nil && b
}

func (m *Method) Code() string { return cast.ToString(m.value("code", m.storeID)) }
func (m *Method) Title() string { return cast.ToString(m.value("title", m.storeID)) }

func (m *Method) SetStore(storeID int64) { m.storeID = storeID }
func (m *Method) Store() int64 { return m.storeID }

func (m *Method) CanOrder() bool { return m.flag("can_order") }
func (m *Method) CanAuthorize() bool { return m.flag("can_authorize") }
func (m *Method) CanCapture() bool { return m.flag("can_capture") }
func (m *Method) CanCapturePartial() bool { return m.flag("can_capture_partial") }
func (m *Method) CanCaptureOnce() bool { return m.flag("can_capture_once") }
func (m *Method) CanRefund() bool { return m.flag("can_refund") }
func (m *Method) CanRefundPartialPerInvoice() bool { return m.flag("can_refund_partial_per_invoice") }
func (m *Method) CanVoid() bool { return m.flag("can_void") }
func (m *Method) CanUseInternal() bool { return m.flag("can_use_internal") }
func (m *Method) CanUseCheckout() bool { return m.flag("can_use_checkout") }
func (m *Method) CanEdit() bool { return m.flag("can_edit") }
func (m *Method) CanFetchTransactionInfo() bool { return false }
func (m *Method) CanReviewPayment() (bool, error) { return false, nil }

func (m *Method) IsGateway() bool { return true }
func (m *Method) IsOffline() bool { return false }
func (m *Method) IsInitializeNeeded() bool { return false }

func (m *Method) IsActive(storeID int64) bool {
	b, err := cast.ToBoolE(m.value("active", storeID))
	return err == nil && b
}

func (m *Method) IsAvailable(_ context.Context, cart domain.Cart) bool {
	if !m.IsActive(m.storeID) {
		return false
	}
	if cart != nil && !m.CanUseForCurrency(cart.Currency()) {
		return false
	}
	return true
}

func (m *Method) inList(field, needle string) bool {
	raw := cast.ToString(m.value(field, m.storeID))
	if raw == "" {
		return true // unrestricted
	}
	for _, entry := range strings.Split(raw, ",") {
		if strings.EqualFold(strings.TrimSpace(entry), needle) {
			return true
		}
	}
	return false
}

func (m *Method) CanUseForCountry(country string) bool {
	return m.inList("countries", country)
}

func (m *Method) CanUseForCurrency(currency string) bool {
	return m.inList("currencies", currency)
}

func (m *Method) InfoBlockType() string { return cast.ToString(m.value("info_block_type", m.storeID)) }
func (m *Method) InfoInstance() domain.PaymentInfo { return m.info }
func (m *Method) SetInfoInstance(info domain.PaymentInfo) { m.info = info }
func (m *Method) Validate() error { return nil }

func (m *Method) ConfigData(field string, storeID int64) any {
	if storeID == 0 {
		storeID = m.storeID
	}
	return m.value(field, storeID)
}

func (m *Method) ConfigPaymentAction() string {
	return cast.ToString(m.value("payment_action", m.storeID))
}

func (m *Method) AssignData(context.Context, domain.AssignedData) error { return nil }

func (m *Method) Initialize(context.Context, string, map[string]any) error {
	return domain.ErrUnsupportedOperation
}

func (m *Method) Order(context.Context, domain.PaymentInfo, int64) error {
	return domain.ErrUnsupportedOperation
}

func (m *Method) Authorize(_ context.Context, payment domain.PaymentInfo, _ int64) error {
	payment.SetMethod(m.Code())
	return nil
}

func (m *Method) Capture(_ context.Context, payment domain.PaymentInfo, _ int64) error {
	payment.SetMethod(m.Code())
	return nil
}

func (m *Method) Refund(context.Context, domain.PaymentInfo, int64) error {
	return domain.ErrUnsupportedOperation
}

func (m *Method) Cancel(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}

func (m *Method) Void(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}

func (m *Method) AcceptPayment(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}

func (m *Method) DenyPayment(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}

func (m *Method) FetchTransactionInfo(context.Context, domain.PaymentInfo, string) (map[string]any, error) {
	return nil, domain.ErrUnsupportedOperation
}
