package models

import "time"

// PriceHistoryEntry records one buy/sell price change. Entries are never edited.
type PriceHistoryEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	OldBuyPrice  float64   `json:"oldBuyPrice"`
	NewBuyPrice  float64   `json:"newBuyPrice"`
	OldSellPrice float64   `json:"oldSellPrice"`
	NewSellPrice float64   `json:"newSellPrice"`
	User         string    `json:"user"`
}
