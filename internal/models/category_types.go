package models

// Category is a product grouping derived from the catalog. Categories are
// free text on each product; there is no separate table.
type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"` // products in the category
}
