package catalog

import (
	"testing"
	"time"

	"github.com/01moynul/kashish-pos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "a", Name: "Cordless Drill", SKU: "DRL-1", Category: "Power Tools", BuyPrice: 70, SellPrice: 99, Status: models.StatusActive},
		{ID: "b", Name: "PVC Pipe", SKU: "PVC-20", Category: "Plumbing", BuyPrice: 10, SellPrice: 10.5, Status: models.StatusActive},
		{ID: "c", Name: "Wire Stripper", SKU: "WS-3", Category: "Electrical", BuyPrice: 4, SellPrice: 9, Status: models.StatusDraft},
		{ID: "d", Name: "Old Drill Bit", SKU: "BIT-9", Category: "Power Tools", BuyPrice: 2, SellPrice: 1, Status: models.StatusActive, IsDeleted: true},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestViews(t *testing.T) {
	products := sampleProducts()
	assert.Equal(t, []string{"a", "b", "c"}, ids(Active(products)))
	assert.Equal(t, []string{"a", "b"}, ids(Sellable(products)))
	assert.Equal(t, []string{"d"}, ids(RecycleBin(products)))
}

func TestSearch(t *testing.T) {
	products := Active(sampleProducts())

	assert.Equal(t, []string{"a"}, ids(Search(products, "drill")))
	assert.Equal(t, []string{"b"}, ids(Search(products, "pvc-")))
	assert.Equal(t, []string{"c"}, ids(Search(products, "ELECTRICAL")))
	assert.Equal(t, []string{"a", "b", "c"}, ids(Search(products, "  ")))

	// The till does not search categories.
	assert.Empty(t, SearchPOS(products, "plumbing"))
	assert.Equal(t, []string{"b"}, ids(SearchPOS(products, "pvc")))

	assert.Empty(t, SearchByName(products, "DRL"))
	assert.Equal(t, []string{"c"}, ids(SearchByName(products, "strip")))
}

func TestCategories(t *testing.T) {
	products := append(sampleProducts(), models.Product{ID: "e", Name: "Jigsaw", Category: "power tools"})

	got := Categories(products)
	require.Len(t, got, 3)
	assert.Equal(t, models.Category{Name: "Electrical", Slug: "electrical", Count: 1}, got[0])
	assert.Equal(t, models.Category{Name: "Plumbing", Slug: "plumbing", Count: 1}, got[1])
	assert.Equal(t, models.Category{Name: "Power Tools", Slug: "power-tools", Count: 3}, got[2])

	assert.Empty(t, Categories(nil))
}

func TestLowMargin(t *testing.T) {
	assert.Equal(t, []string{"b", "d"}, ids(LowMargin(sampleProducts())))
	assert.Empty(t, LowMargin([]models.Product{{ID: "x", BuyPrice: 10, SellPrice: 11.5}}))
}

func TestSummarize(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 12, 0, 0, 0, time.UTC) }
	var sales []models.Sale
	for d := 1; d <= 9; d++ {
		sales = append(sales, models.Sale{ID: "s", Timestamp: day(d), Total: float64(d)})
	}
	sales = append(sales, models.Sale{Timestamp: day(9), Total: 1})

	sum := Summarize(sampleProducts(), sales, time.UTC)
	assert.Equal(t, 46.0, sum.TotalRevenue)
	assert.Equal(t, 10, sum.TotalOrders)
	assert.Equal(t, 3, sum.ActiveProducts)
	assert.InDelta(t, 29+0.5+5, sum.TotalPotentialProfit, 1e-9)
	assert.Equal(t, 1, sum.LowMarginCount)

	require.Len(t, sum.RevenueByDay, 7)
	assert.Equal(t, "2025-03-03", sum.RevenueByDay[0].Date)
	assert.Equal(t, "2025-03-09", sum.RevenueByDay[6].Date)
	assert.Equal(t, 10.0, sum.RevenueByDay[6].Sales)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil, nil, nil)
	assert.Zero(t, sum.TotalRevenue)
	assert.NotNil(t, sum.RevenueByDay)
	assert.Empty(t, sum.LowMargin)
}

func TestSummarizeCapsLowMarginPreview(t *testing.T) {
	var products []models.Product
	for i := 0; i < 8; i++ {
		products = append(products, models.Product{ID: string(rune('a' + i)), BuyPrice: 10, SellPrice: 10})
	}
	sum := Summarize(products, nil, time.UTC)
	assert.Equal(t, 8, sum.LowMarginCount)
	assert.Len(t, sum.LowMargin, 5)
}
