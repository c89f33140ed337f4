package handlers

import (
	"net/http"

	"github.com/01moynul/kashish-pos/internal/catalog"
	"github.com/01moynul/kashish-pos/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- POS Handlers (Owner) ---
//

// GetPOSCatalog is the handler for GET /v1/pos/catalog?q=
// Only active, non-deleted products can be sold.
func (h *Handlers) GetPOSCatalog(c *gin.Context) {
	products := catalog.SearchPOS(catalog.Sellable(h.Catalog.Products()), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetCart is the handler for GET /v1/pos/cart
func (h *Handlers) GetCart(c *gin.Context) {
	items := h.Cart.Items()
	totalItems := 0
	for _, it := range items {
		totalItems += it.Quantity
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"total":      h.Cart.Total(),
		"totalItems": totalItems,
	})
}

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddToCart is the handler for POST /v1/pos/cart/items
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Logic check: Ensure the product is sellable
	product, ok := h.Catalog.Product(input.ProductID)
	if !ok || product.IsDeleted || product.Status != models.StatusActive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or not active"})
		return
	}

	item := h.Cart.Add(product)
	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "item": item})
}

// UpdateCartItemInput moves a line's quantity up or down by one.
type UpdateCartItemInput struct {
	Delta int `json:"delta" binding:"required,oneof=1 -1"`
}

// UpdateCartItem is the handler for PATCH /v1/pos/cart/items/:product_id
// Decrementing a single unit leaves it at one; removal is a separate call.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		item models.CartItem
		err  error
	)
	if input.Delta > 0 {
		item, err = h.Cart.Increment(c.Param("product_id"))
	} else {
		item, err = h.Cart.Decrement(c.Param("product_id"))
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item quantity updated", "item": item})
}

// DeleteCartItem is the handler for DELETE /v1/pos/cart/items/:product_id
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	if err := h.Cart.Remove(c.Param("product_id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
}

// CheckoutInput selects the payment method; cash when omitted.
type CheckoutInput struct {
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof=CASH CARD UPI"`
}

// Checkout is the handler for POST /v1/pos/checkout
func (h *Handlers) Checkout(c *gin.Context) {
	var input CheckoutInput
	// An empty body means a cash sale.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	sale, err := h.Cart.Checkout(c.Request.Context(), h.Catalog, input.PaymentMethod)
	h.respond(c, http.StatusCreated, "sale", sale, err)
}
