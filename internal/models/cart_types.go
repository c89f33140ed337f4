package models

// CartItem is one line of the in-progress POS order. Carts are never persisted.
type CartItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	PriceAtSale float64 `json:"priceAtSale"`
}

// LineTotal is quantity times the captured price.
func (i CartItem) LineTotal() float64 {
	return float64(i.Quantity) * i.PriceAtSale
}
