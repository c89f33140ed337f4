package models

import (
	"time"
)

// Product statuses. Only ACTIVE products are offered at the POS and on the public price list.
const (
	StatusActive = "ACTIVE"
	StatusDraft  = "DRAFT"
)

// Product is the model stored under the 'kh_products' key.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	SKU         string `json:"sku"`
	Description string `json:"description"`

	// --- Pricing ---
	BuyPrice  float64 `json:"buyPrice"`
	SellPrice float64 `json:"sellPrice"`

	// --- Lifecycle ---
	Status      string    `json:"status"`
	IsDeleted   bool      `json:"isDeleted"`
	LastUpdated time.Time `json:"lastUpdated"`

	// History is newest first and only ever grows.
	History []PriceHistoryEntry `json:"history"`
}

// Margin is the per-unit profit at current prices.
func (p Product) Margin() float64 {
	return p.SellPrice - p.BuyPrice
}

// IsLowMargin reports whether the sell price is less than 10% above cost.
func (p Product) IsLowMargin() bool {
	return p.SellPrice < p.BuyPrice*1.1
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	c := p
	c.History = make([]PriceHistoryEntry, len(p.History))
	copy(c.History, p.History)
	return c
}

// ProductPatch carries a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	SKU         *string  `json:"sku"`
	Description *string  `json:"description"`
	BuyPrice    *float64 `json:"buyPrice" binding:"omitempty,gte=0"`
	SellPrice   *float64 `json:"sellPrice" binding:"omitempty,gte=0"`
	Status      *string  `json:"status" binding:"omitempty,oneof=ACTIVE DRAFT"`
}

// ApplyTo merges the patch into p. History and deletion state are not touched.
func (pp ProductPatch) ApplyTo(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.SKU != nil {
		p.SKU = *pp.SKU
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.BuyPrice != nil {
		p.BuyPrice = *pp.BuyPrice
	}
	if pp.SellPrice != nil {
		p.SellPrice = *pp.SellPrice
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
}
