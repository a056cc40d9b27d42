package stub_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/gateway/config"
	"github.com/railzwaylabs/vaultgate/internal/providers/stub"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

func newMethod(t *testing.T, src *config.StaticSource) domain.Method {
	t.Helper()
	m, err := stub.New(config.New(src, "stub_pay"))
	require.NoError(t, err)
	return m
}

func TestCapabilitiesFollowConfig(t *testing.T) {
	src := config.NewStaticSource().
		Set("stub_pay", 0, "code", "stub_pay").
		Set("stub_pay", 0, "title", "Stub Pay").
		Set("stub_pay", 0, "active", "1").
		Set("stub_pay", 0, "can_authorize", "1").
		Set("stub_pay", 0, "can_capture", "0")

	m := newMethod(t, src)

	assert.Equal(t, "stub_pay", m.Code())
	assert.Equal(t, "Stub Pay", m.Title())
	assert.True(t, m.IsActive(0))
	assert.True(t, m.CanAuthorize())
	assert.False(t, m.CanCapture())
	assert.False(t, m.CanOrder(), "unconfigured capabilities read false")
}

func TestCurrencyAndCountryLists(t *testing.T) {
	src := config.NewStaticSource().
		Set("stub_pay", 0, "currencies", "USD, EUR").
		Set("stub_pay", 0, "countries", "US")

	m := newMethod(t, src)

	assert.True(t, m.CanUseForCurrency("usd"), "list entries match case-insensitively")
	assert.True(t, m.CanUseForCurrency("EUR"))
	assert.False(t, m.CanUseForCurrency("GBP"))
	assert.True(t, m.CanUseForCountry("US"))
	assert.False(t, m.CanUseForCountry("DE"))

	unrestricted := newMethod(t, config.NewStaticSource())
	assert.True(t, unrestricted.CanUseForCurrency("GBP"), "empty list means unrestricted")
}

func TestAuthorizeStampsMethodCode(t *testing.T) {
	src := config.NewStaticSource().Set("stub_pay", 0, "code", "stub_pay")
	m := newMethod(t, src)

	payment := domain.NewPayment(nil)
	require.NoError(t, m.Authorize(context.Background(), payment, 100))
	assert.Equal(t, "stub_pay", payment.Method())
}

func TestCommandsRequireAttachedToken(t *testing.T) {
	commands := stub.NewCommands(zap.NewNop())
	ctx := context.Background()

	bare := domain.NewPayment(nil)
	err := commands[domain.CommandAuthorize].Execute(ctx, bare, map[string]any{domain.ArgAmount: int64(100)})
	assert.ErrorIs(t, err, stub.ErrNoVaultToken)

	attached := domain.NewPayment(nil)
	domain.EnsureExtensionAttributes(attached).SetVaultToken(&domain.StoredToken{PublicHash: "abc"})

	for _, code := range []string{domain.CommandAuthorize, domain.CommandSale} {
		assert.NoError(t, commands[code].Execute(ctx, attached, map[string]any{domain.ArgAmount: int64(100)}))
	}
}
