package domain

import "errors"

var (
	// ErrUnsupportedOperation is returned by every operation the vault
	// permanently refuses to delegate, and by authorize/capture when handed a
	// payment that is not an order payment.
	ErrUnsupportedOperation = errors.New("vault: operation not supported")

	// ErrTokenMetadataMissing means the caller invoked authorize/capture
	// without placing token metadata on the payment first.
	ErrTokenMetadataMissing = errors.New("vault: token metadata should be defined")

	// ErrTokenNotFound means no stored token matches the supplied public hash
	// and customer.
	ErrTokenNotFound = errors.New("vault: no token found")

	// ErrCaptureNotAllowed means capture was attempted on a payment that
	// already has an authorization transaction; that path must go through the
	// provider directly.
	ErrCaptureNotAllowed = errors.New("vault: capture can not be performed through vault")
)
