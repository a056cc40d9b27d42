package domain

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cast"
)

// TokenMetadataKey is the additional-information key callers must populate
// with token metadata before invoking authorize or capture through the vault.
const TokenMetadataKey = "token_metadata"

// Token metadata sub-keys.
const (
	MetaCustomerID = "customer_id"
	MetaPublicHash = "public_hash"
)

// PaymentInfo is the minimal contract of an in-flight payment.
type PaymentInfo interface {
	Method() string
	SetMethod(code string)
}

// OrderPayment is the order-payment variant of PaymentInfo. Only payments
// satisfying this contract can be authorized or captured through the vault:
// they carry the additional-information side channel, extension attributes
// and the prior-authorization marker.
type OrderPayment interface {
	PaymentInfo

	AdditionalInformation() map[string]any
	ExtensionAttributes() *PaymentExtension
	SetExtensionAttributes(ext *PaymentExtension)
	HasAuthorizationTransaction() bool
}

// PaymentExtension is the structured side record attached to an order payment
// for data outside its core schema. The vault writes the resolved stored
// token here so the command layer can reach the real credential.
type PaymentExtension struct {
	vaultToken *StoredToken
}

func (e *PaymentExtension) VaultToken() *StoredToken { return e.vaultToken }
func (e *PaymentExtension) SetVaultToken(t *StoredToken) { e.vaultToken = t }

// EnsureExtensionAttributes returns the payment's extension attributes,
// creating and writing back an empty record on first use so later reads see
// the same instance.
func EnsureExtensionAttributes(p OrderPayment) *PaymentExtension {
	ext := p.ExtensionAttributes()
	if ext == nil {
		ext = &PaymentExtension{}
		p.SetExtensionAttributes(ext)
	}
	return ext
}

// TokenMetadata identifies a stored token from a payment's side channel.
type TokenMetadata struct {
	CustomerID snowflake.ID `json:"customer_id"`
	PublicHash string       `json:"public_hash"`
}

// TokenMetadataFromPayment extracts token metadata from the payment's
// additional information. Absence of the key or its value is a caller bug
// and fails with ErrTokenMetadataMissing.
func TokenMetadataFromPayment(p OrderPayment) (TokenMetadata, error) {
	info := p.AdditionalInformation()
	raw, ok := info[TokenMetadataKey]
	if !ok || raw == nil {
		return TokenMetadata{}, ErrTokenMetadataMissing
	}
	return tokenMetadataFromValue(raw)
}

func tokenMetadataFromValue(raw any) (TokenMetadata, error) {
	switch v := raw.(type) {
	case TokenMetadata:
		return v, nil
	case *TokenMetadata:
		if v == nil {
			return TokenMetadata{}, ErrTokenMetadataMissing
		}
		return *v, nil
	case map[string]any:
		// JSON-decoded request bodies land here; customer_id may arrive as
		// float64 or string depending on the decoder.
		id, err := cast.ToInt64E(v[MetaCustomerID])
		if err != nil {
			return TokenMetadata{}, fmt.Errorf("%w: %s", ErrTokenMetadataMissing, MetaCustomerID)
		}
		hash := cast.ToString(v[MetaPublicHash])
		if hash == "" {
			return TokenMetadata{}, fmt.Errorf("%w: %s", ErrTokenMetadataMissing, MetaPublicHash)
		}
		return TokenMetadata{CustomerID: snowflake.ParseInt64(id), PublicHash: hash}, nil
	default:
		return TokenMetadata{}, ErrTokenMetadataMissing
	}
}

// Payment is the concrete order payment used by the HTTP surface and tests.
type Payment struct {
	method     string
	additional map[string]any
	ext        *PaymentExtension
	authorized bool
}

var _ OrderPayment = (*Payment)(nil)

func NewPayment(additional map[string]any) *Payment {
	if additional == nil {
		additional = map[string]any{}
	}
	return &Payment{additional: additional}
}

func (p *Payment) Method() string { return p.method }
func (p *Payment) SetMethod(code string) { p.method = code }
func (p *Payment) AdditionalInformation() map[string]any { return p.additional }
func (p *Payment) ExtensionAttributes() *PaymentExtension {
	return p.ext
}
func (p *Payment) SetExtensionAttributes(ext *PaymentExtension) { p.ext = ext }
func (p *Payment) HasAuthorizationTransaction() bool { return p.authorized }

// MarkAuthorized records that a separate authorization transaction already
// exists for this payment, which blocks vault-mediated capture.
func (p *Payment) MarkAuthorized() { p.authorized = true }
