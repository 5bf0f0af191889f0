package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/PGifts2025/Site2026-sub000/models"
	"github.com/PGifts2025/Site2026-sub000/repository"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return v
}

func decp(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	v := dec(t, s)
	return &v
}

func iptr(v int) *int { return &v }

type fakeCatalogRepo struct {
	repository.CatalogRepositoryInterface
	detail *models.ProductDetail
	err    error
}

func (f *fakeCatalogRepo) GetProductDetailBySlug(ctx context.Context, slug string) (*models.ProductDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *fakeCatalogRepo) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.detail.Product, nil
}

type fakeQuoteRepo struct {
	repository.QuoteRepositoryInterface
	saved     *models.QuoteDetail
	insertErr error
}

func (f *fakeQuoteRepo) Insert(ctx context.Context, quote *models.QuoteDetail) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	quote.CreatedAt = "2026-08-25T10:30:00Z"
	f.saved = quote
	return nil
}

func mugDetail(t *testing.T) *models.ProductDetail {
	t.Helper()
	return &models.ProductDetail{
		Product: models.Product{
			ID:                7,
			SKU:               "MUG-01",
			Name:              "Premium Ceramic Mug",
			Slug:              "premium-ceramic-mug",
			PricingModel:      models.PricingModelFlat,
			MinOrderQuantity:  25,
			MaxPrintPositions: 2,
		},
		Colours: []models.Colour{
			{ID: 1, ColourCode: "WHT", ColourName: "White"},
			{ID: 2, ColourCode: "BLK", ColourName: "Black"},
		},
		PricingTiers: []models.PricingTier{
			{MinQuantity: 1, MaxQuantity: iptr(49), PricePerUnit: dec(t, "10.00")},
			{MinQuantity: 50, MaxQuantity: iptr(99), PricePerUnit: dec(t, "8.00")},
			{MinQuantity: 100, PricePerUnit: dec(t, "6.00")},
		},
		PrintPricing: []models.PrintPricingRow{
			{ID: 1, ExtraPositionPrice: decp(t, "1.50")},
		},
	}
}

func teeDetail(t *testing.T) *models.ProductDetail {
	t.Helper()
	return &models.ProductDetail{
		Product: models.Product{
			ID:                3,
			SKU:               "TEE-01",
			Name:              "Classic Cotton Tee",
			Slug:              "classic-cotton-tee",
			PricingModel:      models.PricingModelClothing,
			MinOrderQuantity:  10,
			MaxPrintPositions: 4,
		},
		Colours: []models.Colour{
			{ID: 1, ColourCode: "WHT", ColourName: "White"},
			{ID: 2, ColourCode: "BLK", ColourName: "Black"},
		},
		PricingTiers: []models.PricingTier{
			{MinQuantity: 1, PricePerUnit: dec(t, "9.50")},
		},
		PrintPricing: []models.PrintPricingRow{
			{ID: 1, ColourVariant: "white", GarmentCost: decp(t, "3.80")},
			{ID: 2, ColourVariant: "coloured", GarmentCost: decp(t, "4.20")},
			{ID: 3, ColourVariant: "white", ColourCount: iptr(2), PrintCostPerPosition: decp(t, "1.60")},
			{ID: 4, ColourVariant: "coloured", ColourCount: iptr(2), PrintCostPerPosition: decp(t, "2.00")},
		},
	}
}

func TestCalculateQuoteFlatProduct(t *testing.T) {
	svc := NewQuoteService(&fakeCatalogRepo{detail: mugDetail(t)}, &fakeQuoteRepo{})

	resp, err := svc.CalculateQuote(context.Background(), models.QuoteRequest{
		ProductSlug: "premium-ceramic-mug",
		Quantity:    75,
	})
	if err != nil {
		t.Fatalf("CalculateQuote returned error: %v", err)
	}

	if !resp.UnitPrice.Equal(dec(t, "8.00")) {
		t.Errorf("unit price = %s, want 8.00", resp.UnitPrice)
	}
	if !resp.TotalPrice.Equal(dec(t, "600.00")) {
		t.Errorf("total = %s, want 600.00", resp.TotalPrice)
	}
	if resp.FormattedUnitPrice != "£8.00" || resp.FormattedTotal != "£600.00" {
		t.Errorf("formatted = %q / %q, want £8.00 / £600.00", resp.FormattedUnitPrice, resp.FormattedTotal)
	}
	if resp.Tier == nil || resp.Tier.MinQuantity != 50 {
		t.Errorf("tier = %+v, want the 50-99 bracket", resp.Tier)
	}
	if resp.BelowMinimumOrder {
		t.Error("75 units is not below a 25 minimum")
	}
}

func TestCalculateQuoteSecondPosition(t *testing.T) {
	svc := NewQuoteService(&fakeCatalogRepo{detail: mugDetail(t)}, &fakeQuoteRepo{})

	resp, err := svc.CalculateQuote(context.Background(), models.QuoteRequest{
		ProductSlug:    "premium-ceramic-mug",
		Quantity:       75,
		SecondPosition: true,
	})
	if err != nil {
		t.Fatalf("CalculateQuote returned error: %v", err)
	}

	if !resp.UnitPrice.Equal(dec(t, "9.50")) {
		t.Errorf("unit price = %s, want 8.00 + 1.50 surcharge", resp.UnitPrice)
	}
	if !resp.TotalPrice.Equal(dec(t, "712.50")) {
		t.Errorf("total = %s, want 712.50", resp.TotalPrice)
	}
}

func TestCalculateQuoteBelowMinimumFlag(t *testing.T) {
	svc := NewQuoteService(&fakeCatalogRepo{detail: mugDetail(t)}, &fakeQuoteRepo{})

	resp, err := svc.CalculateQuote(context.Background(), models.QuoteRequest{
		ProductSlug: "premium-ceramic-mug",
		Quantity:    10,
	})
	if err != nil {
		t.Fatalf("CalculateQuote returned error: %v", err)
	}

	if !resp.BelowMinimumOrder {
		t.Error("10 units should flag below the 25 minimum")
	}
	if !resp.UnitPrice.Equal(dec(t, "10.00")) {
		t.Errorf("unit price = %s, below-minimum orders still price", resp.UnitPrice)
	}
}

func TestCalculateQuoteClothingBlend(t *testing.T) {
	svc := NewQuoteService(&fakeCatalogRepo{detail: teeDetail(t)}, &fakeQuoteRepo{})

	resp, err := svc.CalculateQuote(context.Background(), models.QuoteRequest{
		ProductSlug: "classic-cotton-tee",
		Quantity:    1,
		ColourRows: []models.ColourOrderRow{
			{ColourCode: "BLK", ColourName: "Black", Sizes: map[string]int{"S": 5, "M": 10, "L": 5}},
			{ColourCode: "WHT", ColourName: "White", Sizes: map[string]int{"M": 20, "XL": 10}},
		},
		Positions: []models.PositionSelection{{Position: "Front", ColourCount: "2 col"}},
	})
	if err != nil {
		t.Fatalf("CalculateQuote returned error: %v", err)
	}

	if resp.Quantity != 50 {
		t.Errorf("quantity = %d, want the combined 50 units", resp.Quantity)
	}
	if !resp.UnitPrice.Equal(dec(t, "5.72")) {
		t.Errorf("unit price = %s, want the 5.72 blend", resp.UnitPrice)
	}
	if !resp.TotalPrice.Equal(dec(t, "286.00")) {
		t.Errorf("total = %s, want 286.00", resp.TotalPrice)
	}
}

func TestCalculateQuoteUnknownProduct(t *testing.T) {
	svc := NewQuoteService(&fakeCatalogRepo{err: repository.ErrProductNotFound}, &fakeQuoteRepo{})

	_, err := svc.CalculateQuote(context.Background(), models.QuoteRequest{ProductSlug: "gone"})
	if !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestSaveQuote(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{}
	svc := NewQuoteService(&fakeCatalogRepo{detail: teeDetail(t)}, quoteRepo)

	quote, err := svc.SaveQuote(context.Background(), models.QuoteRequest{
		ProductSlug: "classic-cotton-tee",
		Quantity:    1,
		ColourRows: []models.ColourOrderRow{
			{ColourCode: "BLK", ColourName: "Black", Sizes: map[string]int{"small": 5, "M": 10, "L": 5}},
			{ColourCode: "WHT", ColourName: "White", Sizes: map[string]int{"M": 20, "XL": 10}},
			{ColourCode: "NVY", ColourName: "Navy", Sizes: map[string]int{}},
		},
		Positions:     []models.PositionSelection{{Position: "Front", ColourCount: "2 col"}},
		CustomerName:  "  Jordan Field ",
		CustomerEmail: " Jordan@Example.COM ",
	})
	if err != nil {
		t.Fatalf("SaveQuote returned error: %v", err)
	}

	if quoteRepo.saved == nil {
		t.Fatal("quote was not passed to the repository")
	}
	if !strings.HasPrefix(quote.Reference, "Q-") || len(quote.Reference) != 10 {
		t.Errorf("reference = %q, want Q- plus eight characters", quote.Reference)
	}
	if quote.CustomerName != "Jordan Field" {
		t.Errorf("customer name = %q, want trimmed", quote.CustomerName)
	}
	if quote.CustomerEmail != "jordan@example.com" {
		t.Errorf("customer email = %q, want normalized lowercase", quote.CustomerEmail)
	}
	if quote.Currency != "GBP" {
		t.Errorf("currency = %q, want GBP", quote.Currency)
	}
	if !quote.UnitPrice.Equal(dec(t, "5.72")) || !quote.TotalPrice.Equal(dec(t, "286.00")) {
		t.Errorf("prices = %s / %s, want 5.72 / 286.00", quote.UnitPrice, quote.TotalPrice)
	}

	// The empty navy row is dropped; "small" normalizes onto the S column.
	if len(quote.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(quote.Lines))
	}
	black := quote.Lines[0]
	if black.SizeS != 5 || black.SizeM != 10 || black.SizeL != 5 || black.Subtotal != 20 {
		t.Errorf("black line = %+v, want S5 M10 L5 subtotal 20", black)
	}
	if len(quote.Positions) != 1 || quote.Positions[0].Position != "Front" {
		t.Errorf("positions = %+v, want the front selection", quote.Positions)
	}
}

func TestSaveQuotePropagatesInsertError(t *testing.T) {
	quoteRepo := &fakeQuoteRepo{insertErr: errors.New("connection refused")}
	svc := NewQuoteService(&fakeCatalogRepo{detail: mugDetail(t)}, quoteRepo)

	_, err := svc.SaveQuote(context.Background(), models.QuoteRequest{
		ProductSlug: "premium-ceramic-mug",
		Quantity:    75,
	})
	if err == nil {
		t.Fatal("expected the insert error to propagate")
	}
}
