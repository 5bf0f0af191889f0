package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PGifts2025/Site2026-sub000/models"
	"github.com/PGifts2025/Site2026-sub000/pricing"
	"github.com/PGifts2025/Site2026-sub000/repository"
	"github.com/PGifts2025/Site2026-sub000/utils"
)

// quoteCurrency is the only currency the storefront quotes in.
const quoteCurrency = "GBP"

// QuoteService prices configurator submissions and persists accepted
// quotes
type QuoteService struct {
	catalogRepo repository.CatalogRepositoryInterface
	quoteRepo   repository.QuoteRepositoryInterface
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(catalogRepo repository.CatalogRepositoryInterface, quoteRepo repository.QuoteRepositoryInterface) *QuoteService {
	return &QuoteService{
		catalogRepo: catalogRepo,
		quoteRepo:   quoteRepo,
	}
}

// Ensure QuoteService implements QuoteServiceInterface
var _ QuoteServiceInterface = (*QuoteService)(nil)

// CalculateQuote prices a configurator submission. The calculation never
// fails on pricing data: missing tiers or print-pricing rows degrade to
// documented fallbacks, so the only errors here are unknown products and
// database trouble.
func (s *QuoteService) CalculateQuote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error) {
	detail, err := s.catalogRepo.GetProductDetailBySlug(ctx, req.ProductSlug)
	if err != nil {
		return nil, err
	}

	product := detail.Product
	rows := pricing.BuildRowSet(detail.PrintPricing)
	pctx := pricing.PricingContext{
		Quantity:         req.Quantity,
		SelectedColour:   selectColour(detail.Colours, req.ColourID),
		ColourRows:       req.ColourRows,
		Positions:        req.Positions,
		CoverageType:     req.CoverageType,
		SecondPositionOn: req.SecondPosition,
	}

	unitPrice := pricing.ComputeEffectiveUnitPrice(product, pctx, detail.PricingTiers, rows).Round(2)
	quantity := pricing.EffectiveQuantity(product, pctx)
	totalPrice := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	response := &models.QuoteResponse{
		ProductID:          product.ID,
		ProductSlug:        product.Slug,
		PricingModel:       product.PricingModel,
		Quantity:           quantity,
		UnitPrice:          unitPrice,
		TotalPrice:         totalPrice,
		Currency:           quoteCurrency,
		FormattedUnitPrice: utils.FormatGBP(unitPrice),
		FormattedTotal:     utils.FormatGBP(totalPrice),
		BelowMinimumOrder:  product.MinOrderQuantity > 0 && quantity < product.MinOrderQuantity,
		MinOrderQuantity:   product.MinOrderQuantity,
	}
	if len(detail.PricingTiers) > 0 {
		tier := pricing.ResolveTier(detail.PricingTiers, quantity)
		response.Tier = &tier
	}

	log.Printf("💰 Quoted %s: qty=%d unit=%s total=%s model=%s", product.SKU, quantity, response.FormattedUnitPrice, response.FormattedTotal, product.PricingModel)
	return response, nil
}

// SaveQuote prices a submission and stores it with its colour lines and
// print positions under a fresh reference
func (s *QuoteService) SaveQuote(ctx context.Context, req models.QuoteRequest) (*models.QuoteDetail, error) {
	response, err := s.CalculateQuote(ctx, req)
	if err != nil {
		return nil, err
	}

	product, err := s.catalogRepo.GetProductBySlug(ctx, req.ProductSlug)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	quote := &models.QuoteDetail{
		Quote: models.Quote{
			ID:            id,
			Reference:     quoteReference(id),
			ProductID:     product.ID,
			ProductName:   product.Name,
			ProductSKU:    product.SKU,
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerEmail: strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
			PricingModel:  product.PricingModel,
			Quantity:      response.Quantity,
			UnitPrice:     response.UnitPrice,
			TotalPrice:    response.TotalPrice,
			Currency:      response.Currency,
			CoverageType:  req.CoverageType,
			BelowMinimum:  response.BelowMinimumOrder,
		},
		Lines:     linesFromColourRows(req.ColourRows),
		Positions: req.Positions,
	}

	if err := s.quoteRepo.Insert(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}

	log.Printf("✅ Quote %s saved for %s: %s total", quote.Reference, product.SKU, utils.FormatGBP(quote.TotalPrice))
	return quote, nil
}

// quoteReference derives the short customer-facing reference from a quote
// ID, e.g. "Q-3F2A9C41".
func quoteReference(id string) string {
	token := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(token) > 8 {
		token = token[:8]
	}
	return "Q-" + token
}

// selectColour finds the swatch picked in the configurator, or a zero
// Colour when none was picked.
func selectColour(colours []models.Colour, colourID int) models.Colour {
	for _, colour := range colours {
		if colour.ID == colourID {
			return colour
		}
	}
	return models.Colour{}
}

// linesFromColourRows converts submitted colour rows into persistable
// quote lines. Rows without units are dropped; unknown size keys are
// normalized where possible and ignored otherwise.
func linesFromColourRows(rows []models.ColourOrderRow) []models.QuoteLine {
	var lines []models.QuoteLine
	for _, row := range rows {
		if row.Subtotal() == 0 {
			continue
		}

		line := models.QuoteLine{
			ColourCode: row.ColourCode,
			ColourName: row.ColourName,
		}
		for size, qty := range row.Sizes {
			canonical, ok := utils.NormalizeSize(size)
			if !ok {
				log.Printf("⚠️  Dropping unknown size %q from quote line for %s", size, row.ColourName)
				continue
			}
			switch canonical {
			case utils.SizeS:
				line.SizeS += qty
			case utils.SizeM:
				line.SizeM += qty
			case utils.SizeL:
				line.SizeL += qty
			case utils.SizeXL:
				line.SizeXL += qty
			case utils.SizeXXL:
				line.SizeXXL += qty
			}
		}
		line.Subtotal = line.SizeS + line.SizeM + line.SizeL + line.SizeXL + line.SizeXXL
		if line.Subtotal == 0 {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
