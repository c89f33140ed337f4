package routes

import (
	"net/http"

	"github.com/01moynul/kashish-pos/internal/handlers"
	"github.com/01moynul/kashish-pos/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CORSMiddleware tells the browser that the configured frontend origin may call us.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Only the configured frontend origin
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)

		// 2. Allow standard security credentials
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		// 3. Allow the headers we actually use ("Authorization" for JWT tokens)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-Id")

		// 4. Allow the HTTP methods we use in our API
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// 5. Preflight requests get "204 No Content"
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every route. gatherer may be nil to skip /metrics.
func SetupRouter(h *handlers.Handlers, corsOrigin string, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(h.Log))

	// --- APPLY THE CORS GUARD ---
	router.Use(CORSMiddleware(corsOrigin))

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/login", h.Login)

		// --- Public Price List ---
		v1.GET("/public/prices", h.GetPublicPrices)

		// --- Theme (Public, survives logout) ---
		v1.GET("/theme", h.GetTheme)
		v1.POST("/theme/toggle", h.ToggleTheme)

		// --- Protected Routes (Login Required) ---
		owner := v1.Group("/")
		owner.Use(middleware.AuthMiddleware(h.Tokens, h.Session))
		{
			owner.POST("/logout", h.Logout)
			owner.GET("/me", h.Me)

			// --- Inventory ---
			owner.GET("/products", h.GetProducts)
			owner.POST("/products", h.CreateProduct)
			owner.GET("/products/low-margin", h.GetLowMarginProducts)
			owner.GET("/categories", h.GetCategories)
			owner.GET("/products/:id", h.GetProduct)
			owner.PATCH("/products/:id", h.UpdateProduct)
			owner.DELETE("/products/:id", h.DeleteProduct)
			owner.GET("/products/:id/history", h.GetPriceHistory)

			// --- Recycle Bin ---
			owner.GET("/recycle-bin", h.GetRecycleBin)
			owner.POST("/recycle-bin/:id/restore", h.RestoreProduct)
			owner.DELETE("/recycle-bin/:id", h.DestroyProduct)

			// --- POS ---
			owner.GET("/pos/catalog", h.GetPOSCatalog)
			owner.GET("/pos/cart", h.GetCart)
			owner.POST("/pos/cart/items", h.AddToCart)
			owner.PATCH("/pos/cart/items/:product_id", h.UpdateCartItem)
			owner.DELETE("/pos/cart/items/:product_id", h.DeleteCartItem)
			owner.POST("/pos/checkout", h.Checkout)

			// --- Sales & Dashboard ---
			owner.GET("/sales", h.GetSales)
			owner.GET("/dashboard", h.GetDashboard)

			// --- AI Routes ---
			owner.POST("/ai/analyze-image", h.AnalyzeImage)
			owner.POST("/ai/report", h.GenerateReport)
		}
	}

	return router
}
