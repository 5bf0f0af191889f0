package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/PGifts2025/Site2026-sub000/models"
	"github.com/PGifts2025/Site2026-sub000/repository"
)

type fakeCatalogStore struct {
	repository.CatalogRepositoryInterface
	created    *models.CreateProductRequest
	tiers      []models.PricingTier
	printRows  []models.PrintPricingRow
	colours    []models.Colour
	productErr error
}

func (f *fakeCatalogStore) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	f.created = req
	return &models.Product{
		ID:                1,
		SKU:               req.SKU,
		Name:              req.Name,
		Slug:              req.Slug,
		PricingModel:      req.PricingModel,
		MinOrderQuantity:  req.MinOrderQuantity,
		MaxPrintPositions: req.MaxPrintPositions,
		IsActive:          true,
	}, nil
}

func (f *fakeCatalogStore) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	if f.productErr != nil {
		return nil, f.productErr
	}
	return &models.Product{ID: id, SKU: "TEE-01"}, nil
}

func (f *fakeCatalogStore) DeactivateProduct(ctx context.Context, id int) error {
	return f.productErr
}

func (f *fakeCatalogStore) ReplacePricingTiers(ctx context.Context, productID int, tiers []models.PricingTier) error {
	f.tiers = tiers
	return nil
}

func (f *fakeCatalogStore) ReplacePrintPricing(ctx context.Context, productID int, rows []models.PrintPricingRow) error {
	f.printRows = rows
	return nil
}

func (f *fakeCatalogStore) ReplaceColours(ctx context.Context, productID int, colours []models.Colour) error {
	f.colours = colours
	return nil
}

func adminRouter(c *AdminProductController) http.Handler {
	r := chi.NewRouter()
	r.Post("/admin/products", c.CreateProduct)
	r.Put("/admin/products/{id}", c.UpdateProduct)
	r.Delete("/admin/products/{id}", c.DeactivateProduct)
	r.Put("/admin/products/{id}/tiers", c.ReplacePricingTiers)
	r.Put("/admin/products/{id}/print-pricing", c.ReplacePrintPricing)
	r.Put("/admin/products/{id}/colours", c.ReplaceColours)
	return r
}

func TestCreateProductAppliesDefaults(t *testing.T) {
	store := &fakeCatalogStore{}
	router := adminRouter(NewAdminProductController(store))

	body := `{"name": "Classic Cotton Tee", "sku": "tee-01", "pricingModel": "clothing"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", w.Code, w.Body.String())
	}
	if store.created == nil {
		t.Fatal("repository never received the create request")
	}
	if store.created.SKU != "TEE-01" {
		t.Errorf("sku = %q, want uppercased TEE-01", store.created.SKU)
	}
	if store.created.Slug != "classic-cotton-tee" {
		t.Errorf("slug = %q, want slugified from the name", store.created.Slug)
	}
	if store.created.MinOrderQuantity != 1 || store.created.MaxPrintPositions != 1 {
		t.Errorf("defaults = min %d / positions %d, want 1 / 1",
			store.created.MinOrderQuantity, store.created.MaxPrintPositions)
	}
}

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"sku": "TEE-01", "pricingModel": "flat"}`},
		{"missing sku", `{"name": "Tee", "pricingModel": "flat"}`},
		{"unknown pricing model", `{"name": "Tee", "sku": "TEE-01", "pricingModel": "subscription"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeCatalogStore{}
			router := adminRouter(NewAdminProductController(store))

			req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if store.created != nil {
				t.Error("repository received an invalid create request")
			}
		})
	}
}

func TestDeactivateProductNotFound(t *testing.T) {
	store := &fakeCatalogStore{productErr: repository.ErrProductNotFound}
	router := adminRouter(NewAdminProductController(store))

	req := httptest.NewRequest(http.MethodDelete, "/admin/products/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestReplacePricingTiers(t *testing.T) {
	store := &fakeCatalogStore{}
	router := adminRouter(NewAdminProductController(store))

	body := `[
		{"minQuantity": 1, "maxQuantity": 49, "pricePerUnit": "10.00"},
		{"minQuantity": 50, "maxQuantity": 99, "pricePerUnit": "8.00"},
		{"minQuantity": 100, "maxQuantity": null, "pricePerUnit": "6.00"}
	]`
	req := httptest.NewRequest(http.MethodPut, "/admin/products/1/tiers", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if len(store.tiers) != 3 {
		t.Fatalf("repository received %d tiers, want 3", len(store.tiers))
	}
	if !store.tiers[1].PricePerUnit.Equal(dec(t, "8.00")) {
		t.Errorf("second tier price = %s, want 8.00", store.tiers[1].PricePerUnit)
	}
}

func TestReplacePricingTiersRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			"gap between brackets",
			`[
				{"minQuantity": 1, "maxQuantity": 49, "pricePerUnit": "10.00"},
				{"minQuantity": 60, "maxQuantity": null, "pricePerUnit": "8.00"}
			]`,
		},
		{
			"open-ended bracket in the middle",
			`[
				{"minQuantity": 1, "maxQuantity": null, "pricePerUnit": "10.00"},
				{"minQuantity": 50, "maxQuantity": null, "pricePerUnit": "8.00"}
			]`,
		},
		{
			"max below min",
			`[{"minQuantity": 50, "maxQuantity": 10, "pricePerUnit": "10.00"}]`,
		},
		{
			"zero minQuantity",
			`[{"minQuantity": 0, "maxQuantity": 49, "pricePerUnit": "10.00"}]`,
		},
		{
			"negative price",
			`[{"minQuantity": 1, "maxQuantity": null, "pricePerUnit": "-1.00"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeCatalogStore{}
			router := adminRouter(NewAdminProductController(store))

			req := httptest.NewRequest(http.MethodPut, "/admin/products/1/tiers", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if store.tiers != nil {
				t.Error("repository received a broken tier table")
			}
		})
	}
}

func TestReplacePrintPricingAcceptsLegacyCoverageField(t *testing.T) {
	store := &fakeCatalogStore{}
	router := adminRouter(NewAdminProductController(store))

	body := `[
		{"coverageType": "front_only", "coverageyPricePerUnit": "5.95"},
		{"coverageType": "full_wrap", "coveragePricePerUnit": "9.95"}
	]`
	req := httptest.NewRequest(http.MethodPut, "/admin/products/1/print-pricing", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if len(store.printRows) != 2 {
		t.Fatalf("repository received %d rows, want 2", len(store.printRows))
	}
	legacy := store.printRows[0]
	if legacy.CoveragePricePerUnit == nil || !legacy.CoveragePricePerUnit.Equal(dec(t, "5.95")) {
		t.Errorf("legacy-spelled coverage price was not mapped: %+v", legacy)
	}
	current := store.printRows[1]
	if current.CoveragePricePerUnit == nil || !current.CoveragePricePerUnit.Equal(dec(t, "9.95")) {
		t.Errorf("current-spelled coverage price was lost: %+v", current)
	}
}

func TestReplaceColoursRequiresCodes(t *testing.T) {
	store := &fakeCatalogStore{}
	router := adminRouter(NewAdminProductController(store))

	body := `[{"colourCode": "", "colourName": "White"}]`
	req := httptest.NewRequest(http.MethodPut, "/admin/products/1/colours", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if store.colours != nil {
		t.Error("repository received colours with a blank code")
	}
}

func TestReplaceColours(t *testing.T) {
	store := &fakeCatalogStore{}
	router := adminRouter(NewAdminProductController(store))

	body := `[
		{"colourCode": "WHT", "colourName": "White", "hexValue": "#FFFFFF"},
		{"colourCode": "BLK", "colourName": "Black", "hexValue": "#1A1A1A"}
	]`
	req := httptest.NewRequest(http.MethodPut, "/admin/products/1/colours", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if len(store.colours) != 2 {
		t.Fatalf("repository received %d colours, want 2", len(store.colours))
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp["status"] != "success" {
		t.Errorf("response = %v", resp)
	}
}
