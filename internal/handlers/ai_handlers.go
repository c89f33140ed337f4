package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/01moynul/kashish-pos/internal/ai"
	"github.com/01moynul/kashish-pos/internal/catalog"
	"github.com/01moynul/kashish-pos/internal/models"
	"github.com/gin-gonic/gin"
)

// maxImageBytes caps uploads sent to the image model.
const maxImageBytes = 8 << 20

// AnalyzeImage is the handler for POST /v1/ai/analyze-image
// It takes a multipart "image" plus optional draft form fields and returns
// the draft with the model's suggestion applied. Nothing is saved.
func (h *Handlers) AnalyzeImage(c *gin.Context) {
	// 1. Get the file from the request
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}
	if file.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image is too large"})
		return
	}

	// 2. Read it into memory
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read image"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read image"})
		return
	}
	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	// 3. Ask the model
	suggestion, err := h.AIService.AnalyzeImage(c.Request.Context(), data, mimeType)
	if errors.Is(err, ai.ErrDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI autofill is not configured"})
		return
	}
	if err != nil {
		h.Log.Warn().Err(err).Msg("Image analysis failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to analyze image."})
		return
	}

	// 4. Merge into whatever the user already typed
	draft := draftFromForm(c)
	suggestion.Apply(&draft)

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion, "draft": draft})
}

func draftFromForm(c *gin.Context) models.Product {
	draft := models.Product{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		SKU:         c.PostForm("sku"),
		Description: c.PostForm("description"),
		Status:      models.StatusActive,
	}
	if v, err := strconv.ParseFloat(c.PostForm("buyPrice"), 64); err == nil {
		draft.BuyPrice = v
	}
	if v, err := strconv.ParseFloat(c.PostForm("sellPrice"), 64); err == nil {
		draft.SellPrice = v
	}
	if c.PostForm("status") == models.StatusDraft {
		draft.Status = models.StatusDraft
	}
	return draft
}

// GenerateReport is the handler for POST /v1/ai/report
// The report text is always returned; failures come back as a fixed message.
func (h *Handlers) GenerateReport(c *gin.Context) {
	products := catalog.Active(h.Catalog.Products())
	report := h.AIService.GenerateReport(c.Request.Context(), h.Catalog.Sales(), products)
	c.JSON(http.StatusOK, gin.H{"report": report})
}
