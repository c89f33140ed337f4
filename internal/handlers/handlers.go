package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/01moynul/kashish-pos/internal/ai"
	"github.com/01moynul/kashish-pos/internal/auth"
	"github.com/01moynul/kashish-pos/internal/catalog"
	"github.com/01moynul/kashish-pos/internal/checkout"
	"github.com/01moynul/kashish-pos/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Catalog   *catalog.Store
	Cart      *checkout.Cart
	Session   *session.Store
	Tokens    *auth.Tokens
	AIService ai.Enricher
	Log       zerolog.Logger
	Location  *time.Location // day boundaries for the dashboard
}

// respond writes a mutation result. A persistence failure still returns the
// committed value, flagged with "persisted": false.
func (h *Handlers) respond(c *gin.Context, status int, key string, value any, err error) {
	if err != nil && !errors.Is(err, catalog.ErrPersistence) && !errors.Is(err, session.ErrPersistence) {
		h.fail(c, err)
		return
	}
	body := gin.H{"persisted": err == nil}
	if key != "" {
		body[key] = value
	}
	if err != nil {
		h.Log.Warn().Err(err).Str("path", c.FullPath()).Msg("Change applied but not saved")
		body["warning"] = "Change applied but could not be saved to storage"
	}
	c.JSON(status, body)
}

// fail maps store errors to HTTP errors.
func (h *Handlers) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, catalog.ErrNotInRecycleBin):
		c.JSON(http.StatusConflict, gin.H{"error": "Product must be in the recycle bin before it can be deleted permanently"})
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	case errors.Is(err, checkout.ErrItemNotInCart):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
	default:
		h.Log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
