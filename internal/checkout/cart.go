// Package checkout holds the point-of-sale cart. The cart lives only in
// memory; a sale is recorded in the catalog ledger on checkout.
package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/01moynul/kashish-pos/internal/catalog"
	"github.com/01moynul/kashish-pos/internal/models"
)

var (
	ErrEmptyCart     = errors.New("checkout: cart is empty")
	ErrItemNotInCart = errors.New("checkout: item not in cart")
)

// Ledger is the part of the catalog store checkout needs.
type Ledger interface {
	Product(id string) (models.Product, bool)
	AddSale(ctx context.Context, sale models.Sale) (models.Sale, error)
}

// Cart is the in-progress order. Lines keep the order they were first added in.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
	now   func() time.Time
}

func NewCart() *Cart {
	return &Cart{now: time.Now}
}

// WithClock replaces time.Now for sale timestamps.
func (c *Cart) WithClock(now func() time.Time) *Cart {
	c.now = now
	return c
}

// Add puts one unit of p in the cart. A product already in the cart has its
// quantity increased; otherwise a new line captures the current name and sell price.
func (c *Cart) Add(p models.Product) models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity++
		return c.items[i]
	}
	item := models.CartItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		PriceAtSale: p.SellPrice,
	}
	c.items = append(c.items, item)
	return item
}

// Increment adds one unit to an existing line.
func (c *Cart) Increment(productID string) (models.CartItem, error) {
	return c.adjust(productID, 1)
}

// Decrement removes one unit. A line never drops below one unit this way;
// use Remove to take it out of the cart.
func (c *Cart) Decrement(productID string) (models.CartItem, error) {
	return c.adjust(productID, -1)
}

func (c *Cart) adjust(productID string, delta int) (models.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return models.CartItem{}, ErrItemNotInCart
	}
	if q := c.items[i].Quantity + delta; q > 0 {
		c.items[i].Quantity = q
	}
	return c.items[i], nil
}

// Remove drops a line from the cart.
func (c *Cart) Remove(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return ErrItemNotInCart
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartItem{}, c.items...)
}

// Total is the sum of line totals at captured prices.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return total(c.items)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Checkout turns the cart into a sale. Profit uses each product's buy price
// right now; a line whose product no longer exists adds no profit. The cart
// is cleared once the sale is in the ledger, even if the snapshot write
// failed (the returned error then wraps catalog.ErrPersistence).
func (c *Cart) Checkout(ctx context.Context, ledger Ledger, paymentMethod string) (models.Sale, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return models.Sale{}, ErrEmptyCart
	}
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}

	items := make([]models.SaleItem, len(c.items))
	var profit float64
	for i, line := range c.items {
		items[i] = models.SaleItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			PriceAtSale: line.PriceAtSale,
		}
		if p, ok := ledger.Product(line.ProductID); ok {
			profit += float64(line.Quantity) * (line.PriceAtSale - p.BuyPrice)
		}
	}

	now := c.now()
	sale, err := ledger.AddSale(ctx, models.Sale{
		ID:            catalog.NewSaleID(now),
		Timestamp:     now,
		Items:         items,
		Total:         total(c.items),
		Profit:        profit,
		PaymentMethod: paymentMethod,
	})
	if err != nil && !errors.Is(err, catalog.ErrPersistence) {
		return models.Sale{}, err
	}
	c.items = nil
	return sale, err
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func total(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}
