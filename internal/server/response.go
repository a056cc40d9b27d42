package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondDomainError maps the vault error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a delegated gateway failure.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedOperation):
		respondError(c, http.StatusNotImplemented, err)
	case errors.Is(err, domain.ErrTokenMetadataMissing):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrTokenNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrCaptureNotAllowed):
		respondError(c, http.StatusConflict, err)
	default:
		respondError(c, http.StatusBadGateway, err)
	}
}
