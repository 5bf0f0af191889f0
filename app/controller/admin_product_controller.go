package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/PGifts2025/Site2026-sub000/models"
	"github.com/PGifts2025/Site2026-sub000/repository"
	"github.com/PGifts2025/Site2026-sub000/utils"
)

// AdminProductController handles Product Manager HTTP requests
type AdminProductController struct {
	repository repository.CatalogRepositoryInterface
}

// NewAdminProductController creates a new AdminProductController
func NewAdminProductController(repo repository.CatalogRepositoryInterface) *AdminProductController {
	return &AdminProductController{
		repository: repo,
	}
}

// validPricingModels is a map of valid pricing model values
var validPricingModels = map[string]bool{
	models.PricingModelFlat:     true,
	models.PricingModelClothing: true,
	models.PricingModelCoverage: true,
}

// CreateProduct handles POST /admin/products
func (c *AdminProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		log.Printf("❌ CreateProduct: name is required")
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	req.SKU = strings.ToUpper(strings.TrimSpace(req.SKU))
	if req.SKU == "" {
		log.Printf("❌ CreateProduct: sku is required")
		http.Error(w, "sku is required", http.StatusBadRequest)
		return
	}

	req.PricingModel = strings.ToLower(strings.TrimSpace(req.PricingModel))
	if !validPricingModels[req.PricingModel] {
		log.Printf("❌ CreateProduct: Invalid pricingModel: %s", req.PricingModel)
		http.Error(w, "Invalid pricingModel. Valid models: flat, clothing, coverage", http.StatusBadRequest)
		return
	}

	// Slug defaults to a slugified product name
	if strings.TrimSpace(req.Slug) == "" {
		req.Slug = utils.Slugify(req.Name)
	} else {
		req.Slug = utils.Slugify(req.Slug)
	}

	if req.MinOrderQuantity <= 0 {
		req.MinOrderQuantity = 1
	}
	if req.MaxPrintPositions <= 0 {
		req.MaxPrintPositions = 1
	}

	product, err := c.repository.CreateProduct(r.Context(), &req)
	if err != nil {
		log.Printf("❌ CreateProduct: Error creating product: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create product: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ CreateProduct: Created %s (%s)", product.SKU, product.Slug)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(product); err != nil {
		log.Printf("❌ CreateProduct: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// UpdateProduct handles PUT /admin/products/{id}
// Only the fields present in the body are changed
func (c *AdminProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.PricingModel != nil {
		model := strings.ToLower(strings.TrimSpace(*req.PricingModel))
		if !validPricingModels[model] {
			log.Printf("❌ UpdateProduct: Invalid pricingModel: %s", *req.PricingModel)
			http.Error(w, "Invalid pricingModel. Valid models: flat, clothing, coverage", http.StatusBadRequest)
			return
		}
		req.PricingModel = &model
	}

	product, err := c.repository.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %d", id), http.StatusNotFound)
			return
		}
		log.Printf("❌ UpdateProduct: Error updating product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to update product: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(product); err != nil {
		log.Printf("❌ UpdateProduct: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// DeactivateProduct handles DELETE /admin/products/{id}
// Products are soft-deleted so saved quotes keep pointing at them
func (c *AdminProductController) DeactivateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := c.repository.DeactivateProduct(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %d", id), http.StatusNotFound)
			return
		}
		log.Printf("❌ DeactivateProduct: Error deactivating product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to deactivate product: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Product deactivated successfully",
		"id":      id,
	})
}

// ReplacePricingTiers handles PUT /admin/products/{id}/tiers
// Replaces the whole volume-discount table for a product
func (c *AdminProductController) ReplacePricingTiers(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var tiers []models.PricingTier
	if err := json.NewDecoder(r.Body).Decode(&tiers); err != nil {
		log.Printf("❌ ReplacePricingTiers: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := validateTiers(tiers); err != nil {
		log.Printf("❌ ReplacePricingTiers: Invalid tier table: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := c.repository.GetProductByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %d", id), http.StatusNotFound)
			return
		}
		log.Printf("❌ ReplacePricingTiers: Error fetching product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}

	if err := c.repository.ReplacePricingTiers(r.Context(), id, tiers); err != nil {
		log.Printf("❌ ReplacePricingTiers: Error replacing tiers for product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to replace pricing tiers: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"count":  len(tiers),
	})
}

// validateTiers checks a replacement tier table: ascending brackets that
// start at their predecessor's max + 1, with only the last left open-ended
func validateTiers(tiers []models.PricingTier) error {
	for i, tier := range tiers {
		if tier.MinQuantity < 1 {
			return fmt.Errorf("tier %d: minQuantity must be at least 1", i+1)
		}
		if tier.PricePerUnit.IsNegative() {
			return fmt.Errorf("tier %d: pricePerUnit cannot be negative", i+1)
		}
		if tier.MaxQuantity != nil && *tier.MaxQuantity < tier.MinQuantity {
			return fmt.Errorf("tier %d: maxQuantity cannot be below minQuantity", i+1)
		}
		if tier.MaxQuantity == nil && i != len(tiers)-1 {
			return fmt.Errorf("tier %d: only the last tier can omit maxQuantity", i+1)
		}
		if i > 0 {
			prev := tiers[i-1]
			if prev.MaxQuantity == nil {
				return fmt.Errorf("tier %d: previous tier is open-ended", i+1)
			}
			if tier.MinQuantity != *prev.MaxQuantity+1 {
				return fmt.Errorf("tier %d: minQuantity must be %d to continue the previous bracket", i+1, *prev.MaxQuantity+1)
			}
		}
	}
	return nil
}

// printPricingRowPayload accepts the legacy misspelled coverage price field
// still sent by older Product Manager exports
type printPricingRowPayload struct {
	models.PrintPricingRow
	LegacyCoveragePrice *decimal.Decimal `json:"coverageyPricePerUnit,omitempty"`
}

// ReplacePrintPricing handles PUT /admin/products/{id}/print-pricing
// Replaces every garment, print, coverage and extra-position row at once
func (c *AdminProductController) ReplacePrintPricing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var payload []printPricingRowPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Printf("❌ ReplacePrintPricing: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	rows := make([]models.PrintPricingRow, 0, len(payload))
	for _, p := range payload {
		row := p.PrintPricingRow
		if row.CoveragePricePerUnit == nil && p.LegacyCoveragePrice != nil {
			row.CoveragePricePerUnit = p.LegacyCoveragePrice
		}
		rows = append(rows, row)
	}

	if _, err := c.repository.GetProductByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %d", id), http.StatusNotFound)
			return
		}
		log.Printf("❌ ReplacePrintPricing: Error fetching product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}

	if err := c.repository.ReplacePrintPricing(r.Context(), id, rows); err != nil {
		log.Printf("❌ ReplacePrintPricing: Error replacing print pricing for product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to replace print pricing: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"count":  len(rows),
	})
}

// ReplaceColours handles PUT /admin/products/{id}/colours
func (c *AdminProductController) ReplaceColours(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var colours []models.Colour
	if err := json.NewDecoder(r.Body).Decode(&colours); err != nil {
		log.Printf("❌ ReplaceColours: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	for i, colour := range colours {
		if strings.TrimSpace(colour.ColourCode) == "" {
			log.Printf("❌ ReplaceColours: colour %d has no colourCode", i+1)
			http.Error(w, fmt.Sprintf("colour %d: colourCode is required", i+1), http.StatusBadRequest)
			return
		}
	}

	if _, err := c.repository.GetProductByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %d", id), http.StatusNotFound)
			return
		}
		log.Printf("❌ ReplaceColours: Error fetching product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch product: %v", err), http.StatusInternalServerError)
		return
	}

	if err := c.repository.ReplaceColours(r.Context(), id, colours); err != nil {
		log.Printf("❌ ReplaceColours: Error replacing colours for product %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to replace colours: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"count":  len(colours),
	})
}
