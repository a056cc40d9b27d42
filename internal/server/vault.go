package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
	vaultservice "github.com/railzwaylabs/vaultgate/internal/vault/service"
)

type vaultHandlers struct {
	log     *zap.Logger
	facades *vaultservice.Factory
}

type transactionRequest struct {
	StoreID               int64          `json:"store_id"`
	Amount                int64          `json:"amount" binding:"required,gt=0"`
	AdditionalInformation map[string]any `json:"additional_information"`
	HasAuthorization      bool           `json:"has_authorization"`
}

type transactionResponse struct {
	Method          string `json:"method"`
	ProviderCode    string `json:"provider_code"`
	TokenPublicHash string `json:"token_public_hash,omitempty"`
}

// Each request builds its own facade: resolution state is request-scoped and
// must never leak across store contexts.
func (h *vaultHandlers) facade(storeID int64) *vaultservice.Facade {
	return h.facades.New(storeID)
}

func (h *vaultHandlers) authorize(c *gin.Context) {
	h.transact(c, func(f *vaultservice.Facade, p domain.PaymentInfo, amount int64) error {
		return f.Authorize(c.Request.Context(), p, amount)
	})
}

func (h *vaultHandlers) capture(c *gin.Context) {
	h.transact(c, func(f *vaultservice.Facade, p domain.PaymentInfo, amount int64) error {
		return f.Capture(c.Request.Context(), p, amount)
	})
}

func (h *vaultHandlers) transact(c *gin.Context, run func(f *vaultservice.Facade, p domain.PaymentInfo, amount int64) error) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	payment := domain.NewPayment(req.AdditionalInformation)
	if req.HasAuthorization {
		payment.MarkAuthorized()
	}

	facade := h.facade(req.StoreID)
	if err := run(facade, payment, req.Amount); err != nil {
		respondDomainError(c, err)
		return
	}

	resp := transactionResponse{
		Method:       payment.Method(),
		ProviderCode: facade.ProviderCode(req.StoreID),
	}
	if ext := payment.ExtensionAttributes(); ext != nil && ext.VaultToken() != nil {
		resp.TokenPublicHash = ext.VaultToken().PublicHash
	}
	respondData(c, resp)
}

type methodResponse struct {
	Code           string `json:"code"`
	Title          string `json:"title"`
	ProviderCode   string `json:"provider_code"`
	Active         bool   `json:"active"`
	CanAuthorize   bool   `json:"can_authorize"`
	CanCapture     bool   `json:"can_capture"`
	CanRefund      bool   `json:"can_refund"`
	CanVoid        bool   `json:"can_void"`
	CanUseCheckout bool   `json:"can_use_checkout"`
	PaymentAction  string `json:"payment_action,omitempty"`
}

func (h *vaultHandlers) method(c *gin.Context) {
	storeID := parseStoreID(c)

	f := h.facade(storeID)
	respondData(c, methodResponse{
		Code:           f.Code(),
		Title:          f.Title(),
		ProviderCode:   f.ProviderCode(storeID),
		Active:         f.IsActive(storeID),
		CanAuthorize:   f.CanAuthorize(),
		CanCapture:     f.CanCapture(),
		CanRefund:      f.CanRefund(),
		CanVoid:        f.CanVoid(),
		CanUseCheckout: f.CanUseCheckout(),
		PaymentAction:  f.ConfigPaymentAction(),
	})
}
