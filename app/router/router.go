package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PGifts2025/Site2026-sub000/app/controller"
)

type Controllers struct {
	Product      *controller.ProductController
	Quote        *controller.QuoteController
	AdminProduct *controller.AdminProductController
	Asset        *controller.AssetController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes wires every endpoint onto a chi router
func SetupRoutes(controllers *Controllers, staticDir string) http.Handler {
	r := chi.NewRouter()

	// Ping endpoint
	r.Get("/ping", pingHandler)

	// Synced artwork files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Public catalog
	r.Get("/api/categories", controllers.Product.GetCategories)
	r.Get("/api/products", controllers.Product.GetProducts)
	r.Get("/api/products/{slug}", controllers.Product.GetProduct)
	r.Get("/api/products/{slug}/tiers", controllers.Product.GetPricingTiers)
	r.Get("/api/products/{slug}/image", controllers.Product.GetProductImage)

	// Quote calculation and persistence
	r.Post("/api/quote", controllers.Quote.CalculateQuote)
	r.Post("/api/quotes", controllers.Quote.SaveQuote)
	r.Get("/api/quotes/{reference}", controllers.Quote.GetQuote)
	r.Get("/api/quotes/{reference}/pdf", controllers.Quote.GetQuotePDF)
	r.Get("/api/quotes/{reference}/png", controllers.Quote.GetQuotePNG)
	r.Get("/api/customers/{email}/quotes", controllers.Quote.GetCustomerQuotes)

	// Product Manager
	r.Post("/admin/products", controllers.AdminProduct.CreateProduct)
	r.Put("/admin/products/{id}", controllers.AdminProduct.UpdateProduct)
	r.Delete("/admin/products/{id}", controllers.AdminProduct.DeactivateProduct)
	r.Put("/admin/products/{id}/tiers", controllers.AdminProduct.ReplacePricingTiers)
	r.Put("/admin/products/{id}/print-pricing", controllers.AdminProduct.ReplacePrintPricing)
	r.Put("/admin/products/{id}/colours", controllers.AdminProduct.ReplaceColours)

	// Artwork sync and quote sheet rendering
	r.Post("/admin/assets/sync", controllers.Asset.SyncArtwork)
	r.Get("/admin/quotes/render", controllers.Quote.RenderQuote)

	return r
}
