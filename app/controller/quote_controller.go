package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/PGifts2025/Site2026-sub000/models"
	"github.com/PGifts2025/Site2026-sub000/repository"
	"github.com/PGifts2025/Site2026-sub000/service"
)

// QuoteController handles HTTP requests for quote calculation, saved quotes
// and quote sheet exports
type QuoteController struct {
	quoteService  service.QuoteServiceInterface
	exportService *service.ExportService
	repository    repository.QuoteRepositoryInterface
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(quoteService service.QuoteServiceInterface, exportService *service.ExportService, repo repository.QuoteRepositoryInterface) *QuoteController {
	return &QuoteController{
		quoteService:  quoteService,
		exportService: exportService,
		repository:    repo,
	}
}

// CalculateQuote handles POST /api/quote
// Prices a configuration without persisting anything
func (c *QuoteController) CalculateQuote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CalculateQuote: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.ProductSlug) == "" {
		log.Printf("❌ CalculateQuote: productSlug is required")
		http.Error(w, "productSlug is required", http.StatusBadRequest)
		return
	}

	if req.Quantity <= 0 && len(req.ColourRows) == 0 {
		log.Printf("❌ CalculateQuote: Invalid quantity: %d", req.Quantity)
		http.Error(w, "quantity must be greater than 0", http.StatusBadRequest)
		return
	}

	response, err := c.quoteService.CalculateQuote(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %s", req.ProductSlug), http.StatusNotFound)
			return
		}
		log.Printf("❌ CalculateQuote: Error calculating quote: %v", err)
		http.Error(w, fmt.Sprintf("Failed to calculate quote: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ CalculateQuote: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// SaveQuote handles POST /api/quotes
// Prices the configuration and persists it under a customer email
func (c *QuoteController) SaveQuote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SaveQuote: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.ProductSlug) == "" {
		log.Printf("❌ SaveQuote: productSlug is required")
		http.Error(w, "productSlug is required", http.StatusBadRequest)
		return
	}

	if req.Quantity <= 0 && len(req.ColourRows) == 0 {
		log.Printf("❌ SaveQuote: Invalid quantity: %d", req.Quantity)
		http.Error(w, "quantity must be greater than 0", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		log.Printf("❌ SaveQuote: customerEmail is required")
		http.Error(w, "customerEmail is required", http.StatusBadRequest)
		return
	}
	if !strings.Contains(email, "@") {
		log.Printf("❌ SaveQuote: Invalid customerEmail: %s", email)
		http.Error(w, "customerEmail is not a valid email address", http.StatusBadRequest)
		return
	}

	quote, err := c.quoteService.SaveQuote(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %s", req.ProductSlug), http.StatusNotFound)
			return
		}
		log.Printf("❌ SaveQuote: Error saving quote: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save quote: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(quote); err != nil {
		log.Printf("❌ SaveQuote: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetQuote handles GET /api/quotes/{reference}
func (c *QuoteController) GetQuote(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if reference == "" {
		http.Error(w, "reference parameter is required", http.StatusBadRequest)
		return
	}

	quote, err := c.repository.GetByReference(r.Context(), reference)
	if err != nil {
		if errors.Is(err, repository.ErrQuoteNotFound) {
			http.Error(w, fmt.Sprintf("Quote not found: %s", reference), http.StatusNotFound)
			return
		}
		log.Printf("❌ GetQuote: Error fetching quote %s: %v", reference, err)
		http.Error(w, fmt.Sprintf("Failed to fetch quote: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(quote); err != nil {
		log.Printf("❌ GetQuote: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetCustomerQuotes handles GET /api/customers/{email}/quotes
// Returns the customer's saved quotes, newest first
func (c *QuoteController) GetCustomerQuotes(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "email")))
	if email == "" {
		http.Error(w, "email parameter is required", http.StatusBadRequest)
		return
	}

	quotes, err := c.repository.ListByEmail(r.Context(), email)
	if err != nil {
		log.Printf("❌ GetCustomerQuotes: Error fetching quotes for %s: %v", email, err)
		http.Error(w, fmt.Sprintf("Failed to fetch quotes: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(quotes); err != nil {
		log.Printf("❌ GetCustomerQuotes: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// RenderQuote handles GET /admin/quotes/render?reference=Q-XXXXXXXX
// Returns the printable HTML quote sheet (used by chromedp for PDF/PNG)
func (c *QuoteController) RenderQuote(w http.ResponseWriter, r *http.Request) {
	reference := strings.TrimSpace(r.URL.Query().Get("reference"))
	if reference == "" {
		log.Printf("❌ RenderQuote: reference parameter is required")
		http.Error(w, "reference parameter is required", http.StatusBadRequest)
		return
	}

	htmlContent, err := c.exportService.RenderQuoteHTML(r.Context(), reference)
	if err != nil {
		if errors.Is(err, repository.ErrQuoteNotFound) {
			http.Error(w, fmt.Sprintf("Quote not found: %s", reference), http.StatusNotFound)
			return
		}
		log.Printf("❌ RenderQuote: Error rendering quote sheet: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render quote sheet: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(htmlContent)); err != nil {
		log.Printf("❌ RenderQuote: Error writing HTML response: %v", err)
	}
}

// GetQuotePDF handles GET /api/quotes/{reference}/pdf
func (c *QuoteController) GetQuotePDF(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if reference == "" {
		http.Error(w, "reference parameter is required", http.StatusBadRequest)
		return
	}

	pdfData, err := c.exportService.GeneratePDF(r.Context(), reference)
	if err != nil {
		if errors.Is(err, repository.ErrQuoteNotFound) {
			http.Error(w, fmt.Sprintf("Quote not found: %s", reference), http.StatusNotFound)
			return
		}
		log.Printf("❌ GetQuotePDF: Error generating PDF for %s: %v", reference, err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("quote_%s.pdf", reference)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfData); err != nil {
		log.Printf("❌ GetQuotePDF: Error writing PDF response: %v", err)
	}
}

// GetQuotePNG handles GET /api/quotes/{reference}/png
func (c *QuoteController) GetQuotePNG(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if reference == "" {
		http.Error(w, "reference parameter is required", http.StatusBadRequest)
		return
	}

	pngData, err := c.exportService.GeneratePNG(r.Context(), reference)
	if err != nil {
		if errors.Is(err, repository.ErrQuoteNotFound) {
			http.Error(w, fmt.Sprintf("Quote not found: %s", reference), http.StatusNotFound)
			return
		}
		log.Printf("❌ GetQuotePNG: Error generating PNG for %s: %v", reference, err)
		http.Error(w, fmt.Sprintf("Failed to generate PNG: %v", err), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("quote_%s.png", reference)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pngData)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pngData); err != nil {
		log.Printf("❌ GetQuotePNG: Error writing PNG response: %v", err)
	}
}
