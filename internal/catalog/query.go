package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/01moynul/kashish-pos/internal/models"
	"github.com/gosimple/slug"
)

// Active returns products that are not in the recycle bin (inventory view).
func Active(products []models.Product) []models.Product {
	return filter(products, func(p models.Product) bool { return !p.IsDeleted })
}

// Sellable returns active products with ACTIVE status (POS and public price list).
func Sellable(products []models.Product) []models.Product {
	return filter(products, func(p models.Product) bool {
		return !p.IsDeleted && p.Status == models.StatusActive
	})
}

// RecycleBin returns soft-deleted products.
func RecycleBin(products []models.Product) []models.Product {
	return filter(products, func(p models.Product) bool { return p.IsDeleted })
}

// Search matches term case-insensitively against name, SKU and category.
// An empty term matches everything.
func Search(products []models.Product, term string) []models.Product {
	return match(products, term, func(p models.Product) []string {
		return []string{p.Name, p.SKU, p.Category}
	})
}

// SearchPOS matches name and SKU, as the till search box does.
func SearchPOS(products []models.Product, term string) []models.Product {
	return match(products, term, func(p models.Product) []string {
		return []string{p.Name, p.SKU}
	})
}

// SearchByName matches the name only, as the public price list does.
func SearchByName(products []models.Product, term string) []models.Product {
	return match(products, term, func(p models.Product) []string {
		return []string{p.Name}
	})
}

// LowMargin returns products whose sell price is under cost plus 10%.
func LowMargin(products []models.Product) []models.Product {
	return filter(products, models.Product.IsLowMargin)
}

// Categories groups products by category name, sorted by name. Names that
// differ only in case are the same category; the first spelling seen wins.
func Categories(products []models.Product) []models.Category {
	index := map[string]int{}
	out := []models.Category{}
	for _, p := range products {
		key := strings.ToLower(strings.TrimSpace(p.Category))
		if key == "" {
			continue
		}
		if i, ok := index[key]; ok {
			out[i].Count++
			continue
		}
		index[key] = len(out)
		out = append(out, models.Category{Name: strings.TrimSpace(p.Category), Slug: slug.Make(p.Category), Count: 1})
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func filter(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func match(products []models.Product, term string, fields func(models.Product) []string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return filter(products, func(models.Product) bool { return true })
	}
	return filter(products, func(p models.Product) bool {
		for _, f := range fields(p) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	})
}

//
// --- Dashboard ---
//

// DailyRevenue is the sales total for one calendar day.
type DailyRevenue struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Sales float64 `json:"sales"`
}

// Summary holds the dashboard KPIs.
type Summary struct {
	TotalRevenue         float64          `json:"totalRevenue"`
	TotalOrders          int              `json:"totalOrders"`
	ActiveProducts       int              `json:"activeProducts"`
	TotalPotentialProfit float64          `json:"totalPotentialProfit"`
	LowMarginCount       int              `json:"lowMarginCount"`
	LowMargin            []models.Product `json:"lowMargin"` // first 5 only
	RevenueByDay         []DailyRevenue   `json:"revenueByDay"`
}

const (
	lowMarginPreview = 5
	revenueDays      = 7
)

// Summarize computes the dashboard over a catalog and ledger snapshot.
// Revenue is bucketed by day in loc and the last seven days with sales are kept.
func Summarize(products []models.Product, sales []models.Sale, loc *time.Location) Summary {
	if loc == nil {
		loc = time.UTC
	}
	active := Active(products)
	low := LowMargin(active)

	sum := Summary{
		TotalOrders:    len(sales),
		ActiveProducts: len(active),
		LowMarginCount: len(low),
		LowMargin:      low,
		RevenueByDay:   []DailyRevenue{},
	}
	if len(sum.LowMargin) > lowMarginPreview {
		sum.LowMargin = sum.LowMargin[:lowMarginPreview]
	}
	for _, p := range active {
		sum.TotalPotentialProfit += p.Margin()
	}

	byDay := map[string]float64{}
	for _, sale := range sales {
		sum.TotalRevenue += sale.Total
		byDay[sale.Timestamp.In(loc).Format(time.DateOnly)] += sale.Total
	}
	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)
	if len(days) > revenueDays {
		days = days[len(days)-revenueDays:]
	}
	for _, d := range days {
		sum.RevenueByDay = append(sum.RevenueByDay, DailyRevenue{Date: d, Sales: byDay[d]})
	}
	return sum
}
