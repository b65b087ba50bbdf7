package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rakb/api/internal/store"
)

// writeStoreError maps store-level failures onto the HTTP error taxonomy.
// An unconfigured store is a Configuration error; everything else is an
// opaque internal error.
func writeStoreError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)
	if errors.Is(err, store.ErrNotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database not configured"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": fallback})
}
