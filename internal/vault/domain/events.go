package domain

import "context"

// EventAssignData is dispatched before the vault delegates data assignment to
// its provider; a provider-qualified variant ("<event>_<providerCode>")
// follows immediately after.
const EventAssignData = "payment_method_assign_data_vault"

// Payload keys for assign-data events.
const (
	PayloadMethod  = "method"
	PayloadPayment = "payment"
	PayloadData    = "data"
)

// EventSink receives vault notifications. Dispatch is fire-and-forget: the
// facade never observes a result and observer failures must not surface here.
type EventSink interface {
	Dispatch(ctx context.Context, event string, payload map[string]any)
}
