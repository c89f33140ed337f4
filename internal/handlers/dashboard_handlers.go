package handlers

import (
	"net/http"

	"github.com/01moynul/kashish-pos/internal/catalog"
	"github.com/gin-gonic/gin"
)

// GetDashboard returns KPI data for the owner dashboard
// GET /v1/dashboard
func (h *Handlers) GetDashboard(c *gin.Context) {
	stats := catalog.Summarize(h.Catalog.Products(), h.Catalog.Sales(), h.Location)
	c.JSON(http.StatusOK, stats)
}
