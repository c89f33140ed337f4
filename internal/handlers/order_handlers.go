package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSales is the handler for GET /v1/sales
// It returns the sales ledger, newest first.
func (h *Handlers) GetSales(c *gin.Context) {
	sales := h.Catalog.Sales()
	c.JSON(http.StatusOK, gin.H{"sales": sales, "count": len(sales)})
}
