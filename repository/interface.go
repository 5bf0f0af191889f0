package repository

import (
	"context"

	"github.com/PGifts2025/Site2026-sub000/models"
)

// CatalogRepositoryInterface defines the contract for catalog reads and
// Product Manager writes
type CatalogRepositoryInterface interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListProducts(ctx context.Context, categorySlug string) ([]models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
	GetProductDetailBySlug(ctx context.Context, slug string) (*models.ProductDetail, error)
	GetPricingTiers(ctx context.Context, productID int) ([]models.PricingTier, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, req *models.UpdateProductRequest) (*models.Product, error)
	DeactivateProduct(ctx context.Context, id int) error
	ReplacePricingTiers(ctx context.Context, productID int, tiers []models.PricingTier) error
	ReplacePrintPricing(ctx context.Context, productID int, rows []models.PrintPricingRow) error
	ReplaceColours(ctx context.Context, productID int, colours []models.Colour) error
	UpdateProductImage(ctx context.Context, sku string, imagePath string) (bool, error)
}

// QuoteRepositoryInterface defines the contract for quote persistence
type QuoteRepositoryInterface interface {
	Insert(ctx context.Context, quote *models.QuoteDetail) error
	GetByReference(ctx context.Context, reference string) (*models.QuoteDetail, error)
	ListByEmail(ctx context.Context, email string) ([]models.Quote, error)
}
