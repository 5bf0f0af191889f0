package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/PGifts2025/Site2026-sub000/pricing"
	"github.com/PGifts2025/Site2026-sub000/repository"
	"github.com/PGifts2025/Site2026-sub000/service"
)

// ProductController handles HTTP requests for the public catalog
type ProductController struct {
	repository repository.CatalogRepositoryInterface
	staticDir  string
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.CatalogRepositoryInterface, staticDir string) *ProductController {
	return &ProductController{
		repository: repo,
		staticDir:  staticDir,
	}
}

// validImageSizes is a map of valid image size values
var validImageSizes = map[string]bool{
	"thumb":  true,
	"medium": true,
	"full":   true,
}

// GetCategories handles GET /api/categories
func (c *ProductController) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.repository.ListCategories(r.Context())
	if err != nil {
		log.Printf("❌ GetCategories: Error fetching categories: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch categories: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(categories); err != nil {
		log.Printf("❌ GetCategories: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetProducts handles GET /api/products?category=slug
// Returns active products, optionally filtered by category slug
func (c *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	products, err := c.repository.ListProducts(r.Context(), category)
	if err != nil {
		log.Printf("❌ GetProducts: Error fetching products: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch products: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(products); err != nil {
		log.Printf("❌ GetProducts: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetProduct handles GET /api/products/{slug}
// Returns the full configurator payload: product, colours, tiers, print
// pricing rows and the position labels the product supports
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.Error(w, "slug parameter is required", http.StatusBadRequest)
		return
	}

	detail, err := c.repository.GetProductDetailBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %s", slug), http.StatusNotFound)
			return
		}
		log.Printf("❌ GetProduct: Error fetching product %s: %v", slug, err)
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}

	detail.PrintPositions = pricing.PrintPositions(detail.Product.MaxPrintPositions)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(detail); err != nil {
		log.Printf("❌ GetProduct: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetPricingTiers handles GET /api/products/{slug}/tiers
func (c *ProductController) GetPricingTiers(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.Error(w, "slug parameter is required", http.StatusBadRequest)
		return
	}

	product, err := c.repository.GetProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %s", slug), http.StatusNotFound)
			return
		}
		log.Printf("❌ GetPricingTiers: Error fetching product %s: %v", slug, err)
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}

	tiers, err := c.repository.GetPricingTiers(r.Context(), product.ID)
	if err != nil {
		log.Printf("❌ GetPricingTiers: Error fetching tiers for %s: %v", slug, err)
		http.Error(w, fmt.Sprintf("Failed to fetch pricing tiers: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tiers); err != nil {
		log.Printf("❌ GetPricingTiers: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetProductImage handles GET /api/products/{slug}/image?size=thumb|medium|full
// Serves the synced front artwork, resized and cached for thumb and medium
func (c *ProductController) GetProductImage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.Error(w, "slug parameter is required", http.StatusBadRequest)
		return
	}

	size := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("size")))
	if size == "" {
		size = "full"
	}
	if !validImageSizes[size] {
		log.Printf("❌ GetProductImage: Invalid size: %s", size)
		http.Error(w, "Invalid size. Valid sizes: thumb, medium, full", http.StatusBadRequest)
		return
	}

	product, err := c.repository.GetProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %s", slug), http.StatusNotFound)
			return
		}
		log.Printf("❌ GetProductImage: Error fetching product %s: %v", slug, err)
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}

	if product.ImagePath == "" {
		http.Error(w, fmt.Sprintf("Product %s has no image", slug), http.StatusNotFound)
		return
	}

	imagePath := filepath.Join(c.staticDir, filepath.FromSlash(product.ImagePath))

	// Full size serves the synced artwork file as-is
	if size == "full" {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		http.ServeFile(w, r, imagePath)
		return
	}

	imageData, err := c.optimizedImage(product.SKU, imagePath, size)
	if err != nil {
		log.Printf("❌ GetProductImage: Error optimizing image for %s: %v", slug, err)
		http.Error(w, fmt.Sprintf("Failed to load product image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(imageData)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(imageData); err != nil {
		log.Printf("❌ GetProductImage: Error writing image response: %v", err)
	}
}

// optimizedImage returns the cached resized image, generating it on a miss
func (c *ProductController) optimizedImage(sku, imagePath, size string) ([]byte, error) {
	cachePath := service.GetCachePath(sku, size)
	if service.CacheExists(cachePath) {
		return service.ReadFromCache(cachePath)
	}

	original, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	optimized, err := service.OptimizeImage(original, size)
	if err != nil {
		return nil, err
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  Failed to cache optimized image for %s: %v", sku, err)
	}

	return optimized, nil
}
