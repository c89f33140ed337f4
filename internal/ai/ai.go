// Package ai wraps the generative model used for product autofill and the
// weekly business brief. Nothing here touches store state.
package ai

import (
	"context"
	"errors"

	"github.com/01moynul/kashish-pos/internal/models"
)

// Fixed report texts shown instead of a generated brief.
const (
	ReportErrorText = "Error generating AI report. Please check API configuration."
	ReportEmptyText = "Unable to generate report."
)

var (
	ErrDisabled   = errors.New("ai: enrichment is not configured")
	ErrNoResponse = errors.New("ai: model returned no text")
)

// Suggestion is what image analysis proposes for a new product.
type Suggestion struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	SuggestedPrice float64 `json:"suggestedPrice"`
}

// Apply fills a product draft from the suggestion. Empty suggestion fields
// keep the draft's value; the suggested retail price becomes the sell price.
func (s Suggestion) Apply(draft *models.Product) {
	if s.Name != "" {
		draft.Name = s.Name
	}
	if s.Category != "" {
		draft.Category = s.Category
	}
	if s.Description != "" {
		draft.Description = s.Description
	}
	if s.SuggestedPrice > 0 {
		draft.SellPrice = s.SuggestedPrice
	}
}

// Enricher is any provider that can analyze product photos and write reports.
type Enricher interface {
	// AnalyzeImage proposes product details from a photo.
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) (Suggestion, error)
	// GenerateReport writes a Markdown brief. It never fails; errors come back
	// as ReportErrorText.
	GenerateReport(ctx context.Context, sales []models.Sale, products []models.Product) string
}

// Noop is the enricher used when no API key is configured.
type Noop struct{}

func (Noop) AnalyzeImage(context.Context, []byte, string) (Suggestion, error) {
	return Suggestion{}, ErrDisabled
}

func (Noop) GenerateReport(context.Context, []models.Sale, []models.Product) string {
	return ReportErrorText
}
