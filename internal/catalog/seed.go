package catalog

import (
	"time"

	"github.com/01moynul/kashish-pos/internal/models"
)

// seedProducts is the demo catalog used when nothing has been persisted yet.
func seedProducts(now time.Time) []models.Product {
	return []models.Product{
		{
			ID: "1", Name: "Dewalt 20V Max Cordless Drill", Category: "Power Tools", SKU: "DCD771C2",
			BuyPrice: 70.00, SellPrice: 99.00, Description: "Compact drill driver kit",
			Status: models.StatusActive, History: []models.PriceHistoryEntry{}, LastUpdated: now,
		},
		{
			ID: "2", Name: "Stanley FatMax Tape Measure 25ft", Category: "Hand Tools", SKU: "STHT33989",
			BuyPrice: 10.50, SellPrice: 19.99, Description: "Durable tape measure",
			Status: models.StatusActive, History: []models.PriceHistoryEntry{}, LastUpdated: now,
		},
	}
}
