package service

import (
	"context"

	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

// NullProvider is the sentinel held while no real provider is resolved. Every
// capability reads false, every operation refuses.
type NullProvider struct {
	info domain.PaymentInfo
}

var _ domain.Method = (*NullProvider)(nil)

func NewNullProvider() *NullProvider { return &NullProvider{} }

func (n *NullProvider) Code() string { return "" }
func (n *NullProvider) Title() string { return "" }

func (n *NullProvider) SetStore(int64) {}
func (n *NullProvider) Store() int64 { return 0 }

func (n *NullProvider) CanOrder() bool { return false }
func (n *NullProvider) CanAuthorize() bool { return false }
func (n *NullProvider) CanCapture() bool { return false }
func (n *NullProvider) CanCapturePartial() bool { return false }
func (n *NullProvider) CanCaptureOnce() bool { return false }
func (n *NullProvider) CanRefund() bool { return false }
func (n *NullProvider) CanRefundPartialPerInvoice() bool { return false }
func (n *NullProvider) CanVoid() bool { return false }
func (n *NullProvider) CanUseInternal() bool { return false }
func (n *NullProvider) CanUseCheckout() bool { return false }
func (n *NullProvider) CanEdit() bool { return false }
func (n *NullProvider) CanFetchTransactionInfo() bool { return false }
func (n *NullProvider) CanReviewPayment() (bool, error) { return false, nil }

func (n *NullProvider) IsGateway() bool { return false }
func (n *NullProvider) IsOffline() bool { return false }
func (n *NullProvider) IsInitializeNeeded() bool { return false }
func (n *NullProvider) IsActive(int64) bool { return false }
func (n *NullProvider) IsAvailable(context.Context, domain.Cart) bool { return false }

func (n *NullProvider) CanUseForCountry(string) bool { return false }
func (n *NullProvider) CanUseForCurrency(string) bool { return false }

func (n *NullProvider) InfoBlockType() string { return "" }
func (n *NullProvider) InfoInstance() domain.PaymentInfo { return n.info }
func (n *NullProvider) SetInfoInstance(info domain.PaymentInfo) { n.info = info }
func (n *NullProvider) Validate() error { return nil }

func (n *NullProvider) ConfigData(string, int64) any { return nil }
func (n *NullProvider) ConfigPaymentAction() string { return "" }

func (n *NullProvider) AssignData(context.Context, domain.AssignedData) error { return nil }
func (n *NullProvider) Initialize(context.Context, string, map[string]any) error {
	return domain.ErrUnsupportedOperation
}

func (n *NullProvider) Order(context.Context, domain.PaymentInfo, int64) error {
	return domain.ErrUnsupportedOperation
}
func (n *NullProvider) Authorize(context.Context, domain.PaymentInfo, int64) error {
	return domain.ErrUnsupportedOperation
}
func (n *NullProvider) Capture(context.Context, domain.PaymentInfo, int64) error {
	return domain.ErrUnsupportedOperation
}
func (n *NullProvider) Refund(context.Context, domain.PaymentInfo, int64) error {
	return domain.ErrUnsupportedOperation
}
func (n *NullProvider) Cancel(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}
func (n *NullProvider) Void(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}
func (n *NullProvider) AcceptPayment(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}
func (n *NullProvider) DenyPayment(context.Context, domain.PaymentInfo) error {
	return domain.ErrUnsupportedOperation
}
func (n *NullProvider) FetchTransactionInfo(context.Context, domain.PaymentInfo, string) (map[string]any, error) {
	return nil, domain.ErrUnsupportedOperation
}
