package handlers

import (
	"net/http"
	"strings"

	"github.com/01moynul/kashish-pos/internal/catalog"
	"github.com/01moynul/kashish-pos/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// --- Inputs ---

// CreateProductInput is the product form. Name and sell price are the only
// required fields; the rest get shop defaults.
type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	BuyPrice    float64 `json:"buyPrice" binding:"gte=0"`
	SellPrice   float64 `json:"sellPrice" binding:"required,gt=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=ACTIVE DRAFT"`
}

const defaultCategory = "General"

// toProduct applies the form defaults.
func (in CreateProductInput) toProduct() models.Product {
	p := models.Product{
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		SKU:         strings.TrimSpace(in.SKU),
		Description: in.Description,
		BuyPrice:    in.BuyPrice,
		SellPrice:   in.SellPrice,
		Status:      in.Status,
	}
	if p.Category == "" {
		p.Category = defaultCategory
	}
	if p.SKU == "" {
		p.SKU = generateSKU(p.Name)
	}
	return p
}

// generateSKU builds "SKU-<NAME>-<rand>" from the product name.
func generateSKU(name string) string {
	base := strings.ToUpper(slug.Make(name))
	if len(base) > 12 {
		base = strings.Trim(base[:12], "-")
	}
	suffix := strings.ToUpper(uuid.New().String()[:4])
	if base == "" {
		return "SKU-" + suffix
	}
	return "SKU-" + base + "-" + suffix
}

//
// --- Inventory (Owner) ---
//

// GetProducts is the handler for GET /v1/products?q=
// It lists products that are not in the recycle bin.
func (h *Handlers) GetProducts(c *gin.Context) {
	products := catalog.Search(catalog.Active(h.Catalog.Products()), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetLowMarginProducts is the handler for GET /v1/products/low-margin
func (h *Handlers) GetLowMarginProducts(c *gin.Context) {
	products := catalog.LowMargin(catalog.Active(h.Catalog.Products()))
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetCategories is the handler for GET /v1/categories
// Categories come from the products outside the recycle bin.
func (h *Handlers) GetCategories(c *gin.Context) {
	categories := catalog.Categories(catalog.Active(h.Catalog.Products()))
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateProduct is the handler for POST /v1/products
func (h *Handlers) CreateProduct(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Save ---
	product, err := h.Catalog.AddProduct(c.Request.Context(), input.toProduct())
	h.respond(c, http.StatusCreated, "product", product, err)
}

// GetProduct is the handler for GET /v1/products/:id
// Products in the recycle bin are returned too, flagged with isDeleted.
func (h *Handlers) GetProduct(c *gin.Context) {
	product, ok := h.Catalog.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UpdateProduct is the handler for PATCH /v1/products/:id
// Only the fields present in the body change. Price changes are logged
// to the product's history by the store.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name cannot be empty"})
		return
	}

	product, err := h.Catalog.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	h.respond(c, http.StatusOK, "product", product, err)
}

// DeleteProduct is the handler for DELETE /v1/products/:id
// It moves the product to the recycle bin.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	err := h.Catalog.DeleteProduct(c.Request.Context(), c.Param("id"), false)
	h.respond(c, http.StatusOK, "message", "Product moved to recycle bin", err)
}

// GetPriceHistory is the handler for GET /v1/products/:id/history
func (h *Handlers) GetPriceHistory(c *gin.Context) {
	product, ok := h.Catalog.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"productId": product.ID,
		"name":      product.Name,
		"history":   product.History,
	})
}

//
// --- Public Price List ---
//

// PublicPrice is what anonymous visitors see. Buy prices stay private.
type PublicPrice struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	SellPrice   float64 `json:"sellPrice"`
}

// GetPublicPrices is the handler for GET /v1/public/prices?q=
func (h *Handlers) GetPublicPrices(c *gin.Context) {
	products := catalog.SearchByName(catalog.Sellable(h.Catalog.Products()), c.Query("q"))

	prices := make([]PublicPrice, 0, len(products))
	for _, p := range products {
		prices = append(prices, PublicPrice{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			SKU:         p.SKU,
			Description: p.Description,
			SellPrice:   p.SellPrice,
		})
	}
	c.JSON(http.StatusOK, gin.H{"prices": prices})
}
