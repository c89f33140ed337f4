package handlers

import (
	"net/http"

	"github.com/01moynul/kashish-pos/internal/catalog"
	"github.com/gin-gonic/gin"
)

//
// --- Recycle Bin (Owner) ---
//

// GetRecycleBin is the handler for GET /v1/recycle-bin
func (h *Handlers) GetRecycleBin(c *gin.Context) {
	products := catalog.RecycleBin(h.Catalog.Products())
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// RestoreProduct is the handler for POST /v1/recycle-bin/:id/restore
func (h *Handlers) RestoreProduct(c *gin.Context) {
	product, err := h.Catalog.RestoreProduct(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, "product", product, err)
}

// DestroyProduct is the handler for DELETE /v1/recycle-bin/:id
// It removes a product for good. The product must already be in the recycle bin.
func (h *Handlers) DestroyProduct(c *gin.Context) {
	err := h.Catalog.DeleteProduct(c.Request.Context(), c.Param("id"), true)
	h.respond(c, http.StatusOK, "message", "Product permanently deleted", err)
}
