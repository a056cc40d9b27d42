package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	tokenservice "github.com/railzwaylabs/vaultgate/internal/token/service"
)

var errCustomerRequired = errors.New("customer_id is required")

type tokenHandlers struct {
	log    *zap.Logger
	tokens *tokenservice.Service
}

func (h *tokenHandlers) list(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	tokens, err := h.tokens.ListVisible(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondData(c, tokens)
}

// deactivate soft-deletes a stored token and drops its cache entry, so it
// stops resolving on the very next authorize/capture.
func (h *tokenHandlers) deactivate(c *gin.Context) {
	customerID, err := parseCustomerID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	publicHash := c.Param("public_hash")

	if err := h.tokens.Deactivate(c.Request.Context(), customerID, publicHash); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	h.log.Info("token deactivated",
		zap.Int64("customer_id", customerID.Int64()),
		zap.String("public_hash", publicHash))
	c.Status(http.StatusNoContent)
}

func parseCustomerID(c *gin.Context) (snowflake.ID, error) {
	raw := c.Query("customer_id")
	if raw == "" {
		return 0, errCustomerRequired
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return snowflake.ParseInt64(id), nil
}
