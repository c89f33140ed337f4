package models

import "time"

// Payment methods accepted at the till.
const (
	PaymentCash = "CASH"
	PaymentCard = "CARD"
	PaymentUPI  = "UPI"
)

// Sale is the model stored under the 'kh_sales' key. Sales are never edited once recorded.
type Sale struct {
	ID            string     `json:"id"`
	Timestamp     time.Time  `json:"timestamp"`
	Items         []SaleItem `json:"items"`
	Total         float64    `json:"total"`
	Profit        float64    `json:"profit"`
	PaymentMethod string     `json:"paymentMethod"`
}

// SaleItem is one line of a sale. Name and price are captured at checkout.
type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	PriceAtSale float64 `json:"priceAtSale"` // Sell price at the time of purchase
}

// LineTotal is quantity times the captured price.
func (i SaleItem) LineTotal() float64 {
	return float64(i.Quantity) * i.PriceAtSale
}

// Clone returns a copy that shares no slices with s.
func (s Sale) Clone() Sale {
	c := s
	c.Items = make([]SaleItem, len(s.Items))
	copy(c.Items, s.Items)
	return c
}
