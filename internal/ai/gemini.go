package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/01moynul/kashish-pos/internal/models"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// How much history goes into a report prompt.
const (
	reportSales    = 20
	reportProducts = 10
)

// request is one model call.
type request struct {
	model  string
	schema *genai.Schema // non-nil asks for a JSON response
	parts  []genai.Part
}

// Gemini implements Enricher with Google's Gemini models.
type Gemini struct {
	client     *genai.Client
	imageModel string
	textModel  string
	shopName   string
	log        zerolog.Logger
	generate   func(ctx context.Context, req request) (string, error)
}

// NewGemini initializes the Gemini client.
func NewGemini(ctx context.Context, apiKey, imageModel, textModel, shopName string, log zerolog.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g := &Gemini{
		client:     client,
		imageModel: imageModel,
		textModel:  textModel,
		shopName:   shopName,
		log:        log,
	}
	g.generate = g.callModel
	return g, nil
}

// Close releases the client connection.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

var suggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":           {Type: genai.TypeString},
		"category":       {Type: genai.TypeString},
		"description":    {Type: genai.TypeString},
		"suggestedPrice": {Type: genai.TypeNumber},
	},
	Required: []string{"name", "category", "description", "suggestedPrice"},
}

const imagePrompt = `Identify the hardware shop item in this photo. Reply with JSON containing:
- name: a short, professional product name
- category: one of Power Tools, Hand Tools, Plumbing, Electrical, Fasteners, or another fitting shop category
- description: a technical catalog description of at most 20 words
- suggestedPrice: the estimated retail price in USD as a number`

// AnalyzeImage asks the image model for a product suggestion.
func (g *Gemini) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (Suggestion, error) {
	format := strings.TrimPrefix(mimeType, "image/")
	if format == "" {
		format = "jpeg"
	}

	text, err := g.generate(ctx, request{
		model:  g.imageModel,
		schema: suggestionSchema,
		parts:  []genai.Part{genai.ImageData(format, image), genai.Text(imagePrompt)},
	})
	if err != nil {
		g.log.Error().Err(err).Msg("Gemini image analysis failed")
		return Suggestion{}, fmt.Errorf("ai: analyze image: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return Suggestion{}, ErrNoResponse
	}

	var s Suggestion
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return Suggestion{}, fmt.Errorf("ai: decode suggestion: %w", err)
	}
	return s, nil
}

// GenerateReport writes the weekly brief from the newest sales and products.
func (g *Gemini) GenerateReport(ctx context.Context, sales []models.Sale, products []models.Product) string {
	prompt, err := g.reportPrompt(sales, products)
	if err != nil {
		g.log.Error().Err(err).Msg("Could not build report prompt")
		return ReportErrorText
	}

	text, err := g.generate(ctx, request{model: g.textModel, parts: []genai.Part{genai.Text(prompt)}})
	if err != nil {
		g.log.Error().Err(err).Msg("Gemini report failed")
		return ReportErrorText
	}
	if strings.TrimSpace(text) == "" {
		return ReportEmptyText
	}
	return text
}

func (g *Gemini) reportPrompt(sales []models.Sale, products []models.Product) (string, error) {
	if len(sales) > reportSales {
		sales = sales[:reportSales]
	}
	if len(products) > reportProducts {
		products = products[:reportProducts]
	}
	salesJSON, err := json.Marshal(sales)
	if err != nil {
		return "", err
	}
	productsJSON, err := json.Marshal(products)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are a senior business analyst for a hardware store called %q.

Recent sales (newest first):
%s

Recently updated catalog items:
%s

Write a "Weekly Strategic Brief" of at most 200 words covering:
1. What is selling well.
2. What needs restocking or repricing.
3. One marketing tip based on the trends.

Use Markdown headers.`, g.shopName, salesJSON, productsJSON), nil
}

// callModel performs the real API call.
func (g *Gemini) callModel(ctx context.Context, req request) (string, error) {
	model := g.client.GenerativeModel(req.model)
	if req.schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = req.schema
	}

	res, err := model.GenerateContent(ctx, req.parts...)
	if err != nil {
		return "", err
	}
	return responseText(res), nil
}

// responseText joins the text parts of the first candidate.
func responseText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
