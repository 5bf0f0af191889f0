package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/PGifts2025/Site2026-sub000/db"
	"github.com/PGifts2025/Site2026-sub000/models"
)

// ErrProductNotFound is returned when a product lookup matches nothing.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository handles database operations for the product catalog
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

const productColumns = `id, category_id, sku, name, slug, description, pricing_model, min_order_quantity, max_print_positions, lead_time_days, image_path, is_active, created_at, updated_at`

// ListCategories retrieves all active categories in display order
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, name, slug, sort_order, is_active
		FROM categories
		WHERE is_active = TRUE
		ORDER BY sort_order, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.SortOrder, &category.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// ListProducts retrieves active products, optionally filtered by category
// slug. An unknown category simply yields an empty list.
func (r *CatalogRepository) ListProducts(ctx context.Context, categorySlug string) ([]models.Product, error) {
	query := `
		SELECT ` + joinProductColumns("p") + `
		FROM products p
		WHERE p.is_active = TRUE
		ORDER BY p.name
	`
	args := []interface{}{}
	if categorySlug != "" {
		query = `
			SELECT ` + joinProductColumns("p") + `
			FROM products p
			JOIN categories c ON c.id = p.category_id
			WHERE p.is_active = TRUE AND c.slug = $1
			ORDER BY p.name
		`
		args = append(args, categorySlug)
	}

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetProductBySlug retrieves a single active product by its URL slug
func (r *CatalogRepository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	row := db.DB.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE slug = $1 AND is_active = TRUE
	`, slug)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// GetProductByID retrieves a product by primary key, active or not
func (r *CatalogRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	row := db.DB.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// GetProductDetailBySlug retrieves a product with its colours, pricing
// tiers and raw print-pricing rows in one call
func (r *CatalogRepository) GetProductDetailBySlug(ctx context.Context, slug string) (*models.ProductDetail, error) {
	product, err := r.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	colours, err := r.getColours(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	tiers, err := r.GetPricingTiers(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	printPricing, err := r.getPrintPricing(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("🔍 Loaded product %s: %d colours, %d tiers, %d print pricing rows", product.SKU, len(colours), len(tiers), len(printPricing))

	return &models.ProductDetail{
		Product:      *product,
		Colours:      colours,
		PricingTiers: tiers,
		PrintPricing: printPricing,
	}, nil
}

// GetPricingTiers retrieves a product's volume-discount table sorted
// ascending by minimum quantity
func (r *CatalogRepository) GetPricingTiers(ctx context.Context, productID int) ([]models.PricingTier, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, product_id, min_quantity, max_quantity, price_per_unit, is_popular
		FROM pricing_tiers
		WHERE product_id = $1
		ORDER BY min_quantity
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing tiers: %w", err)
	}
	defer rows.Close()

	var tiers []models.PricingTier
	for rows.Next() {
		var tier models.PricingTier
		var maxQty sql.NullInt64
		if err := rows.Scan(&tier.ID, &tier.ProductID, &tier.MinQuantity, &maxQty, &tier.PricePerUnit, &tier.IsPopular); err != nil {
			return nil, fmt.Errorf("failed to scan pricing tier: %w", err)
		}
		tier.MaxQuantity = nullableInt(maxQty)
		tiers = append(tiers, tier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pricing tiers: %w", err)
	}

	return tiers, nil
}

// getColours retrieves a product's colour swatches in display order
func (r *CatalogRepository) getColours(ctx context.Context, productID int) ([]models.Colour, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, product_id, colour_code, colour_name, hex_value, sort_order
		FROM product_colours
		WHERE product_id = $1
		ORDER BY sort_order, colour_name
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query colours: %w", err)
	}
	defer rows.Close()

	var colours []models.Colour
	for rows.Next() {
		var colour models.Colour
		if err := rows.Scan(&colour.ID, &colour.ProductID, &colour.ColourCode, &colour.ColourName, &colour.HexValue, &colour.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan colour: %w", err)
		}
		colours = append(colours, colour)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating colours: %w", err)
	}

	return colours, nil
}

// getPrintPricing retrieves a product's raw print-pricing rows in insert
// order. Classification into kinds happens in the pricing package.
func (r *CatalogRepository) getPrintPricing(ctx context.Context, productID int) ([]models.PrintPricingRow, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, product_id, colour_variant, colour_count, print_cost_per_position, garment_cost, min_quantity, max_quantity, extra_position_price, coverage_type, coverage_price_per_unit
		FROM print_pricing
		WHERE product_id = $1
		ORDER BY id
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query print pricing: %w", err)
	}
	defer rows.Close()

	var pricingRows []models.PrintPricingRow
	for rows.Next() {
		var row models.PrintPricingRow
		var colourCount, minQty, maxQty sql.NullInt64
		var printCost, garmentCost, extraPrice, coveragePrice decimal.NullDecimal
		var coverageType sql.NullString
		if err := rows.Scan(&row.ID, &row.ProductID, &row.ColourVariant, &colourCount, &printCost, &garmentCost, &minQty, &maxQty, &extraPrice, &coverageType, &coveragePrice); err != nil {
			return nil, fmt.Errorf("failed to scan print pricing row: %w", err)
		}
		row.ColourCount = nullableInt(colourCount)
		row.PrintCostPerPosition = nullableDecimal(printCost)
		row.GarmentCost = nullableDecimal(garmentCost)
		row.MinQuantity = nullableInt(minQty)
		row.MaxQuantity = nullableInt(maxQty)
		row.ExtraPositionPrice = nullableDecimal(extraPrice)
		row.CoverageType = nullableString(coverageType)
		row.CoveragePricePerUnit = nullableDecimal(coveragePrice)
		pricingRows = append(pricingRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating print pricing: %w", err)
	}

	return pricingRows, nil
}

// CreateProduct inserts a new product and returns the stored record
func (r *CatalogRepository) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	row := db.DB.QueryRowContext(ctx, `
		INSERT INTO products (category_id, sku, name, slug, description, pricing_model, min_order_quantity, max_print_positions, lead_time_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+productColumns+`
	`, req.CategoryID, req.SKU, req.Name, req.Slug, req.Description, req.PricingModel, req.MinOrderQuantity, req.MaxPrintPositions, req.LeadTimeDays)

	product, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	log.Printf("➕ Product created: %s (%s)", product.SKU, product.Slug)
	return product, nil
}

// UpdateProduct applies the non-nil fields of the request and returns the
// updated record
func (r *CatalogRepository) UpdateProduct(ctx context.Context, id int, req *models.UpdateProductRequest) (*models.Product, error) {
	row := db.DB.QueryRowContext(ctx, `
		UPDATE products SET
			category_id = COALESCE($2, category_id),
			name = COALESCE($3, name),
			description = COALESCE($4, description),
			pricing_model = COALESCE($5, pricing_model),
			min_order_quantity = COALESCE($6, min_order_quantity),
			max_print_positions = COALESCE($7, max_print_positions),
			lead_time_days = COALESCE($8, lead_time_days),
			is_active = COALESCE($9, is_active),
			updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns+`
	`, id, req.CategoryID, req.Name, req.Description, req.PricingModel, req.MinOrderQuantity, req.MaxPrintPositions, req.LeadTimeDays, req.IsActive)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	log.Printf("🔄 Product updated: %s", product.SKU)
	return product, nil
}

// DeactivateProduct soft-deletes a product so existing quotes keep their
// reference
func (r *CatalogRepository) DeactivateProduct(ctx context.Context, id int) error {
	result, err := db.DB.ExecContext(ctx, `
		UPDATE products SET is_active = FALSE, updated_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	log.Printf("🗑️  Product %d deactivated", id)
	return nil
}

// ReplacePricingTiers swaps a product's whole volume-discount table inside
// one transaction
func (r *CatalogRepository) ReplacePricingTiers(ctx context.Context, productID int, tiers []models.PricingTier) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pricing_tiers WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to clear pricing tiers: %w", err)
	}

	for _, tier := range tiers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pricing_tiers (product_id, min_quantity, max_quantity, price_per_unit, is_popular)
			VALUES ($1, $2, $3, $4, $5)
		`, productID, tier.MinQuantity, tier.MaxQuantity, tier.PricePerUnit, tier.IsPopular); err != nil {
			return fmt.Errorf("failed to insert pricing tier: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pricing tiers: %w", err)
	}

	log.Printf("💾 Replaced pricing tiers for product %d: %d rows", productID, len(tiers))
	return nil
}

// ReplacePrintPricing swaps a product's print-pricing rows inside one
// transaction, preserving payload order
func (r *CatalogRepository) ReplacePrintPricing(ctx context.Context, productID int, rows []models.PrintPricingRow) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM print_pricing WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to clear print pricing: %w", err)
	}

	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO print_pricing (product_id, colour_variant, colour_count, print_cost_per_position, garment_cost, min_quantity, max_quantity, extra_position_price, coverage_type, coverage_price_per_unit)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, productID, row.ColourVariant, row.ColourCount, row.PrintCostPerPosition, row.GarmentCost, row.MinQuantity, row.MaxQuantity, row.ExtraPositionPrice, row.CoverageType, row.CoveragePricePerUnit); err != nil {
			return fmt.Errorf("failed to insert print pricing row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit print pricing: %w", err)
	}

	log.Printf("💾 Replaced print pricing for product %d: %d rows", productID, len(rows))
	return nil
}

// ReplaceColours swaps a product's colour swatches inside one transaction
func (r *CatalogRepository) ReplaceColours(ctx context.Context, productID int, colours []models.Colour) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_colours WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to clear colours: %w", err)
	}

	for i, colour := range colours {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO product_colours (product_id, colour_code, colour_name, hex_value, sort_order)
			VALUES ($1, $2, $3, $4, $5)
		`, productID, colour.ColourCode, colour.ColourName, colour.HexValue, i); err != nil {
			return fmt.Errorf("failed to insert colour: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit colours: %w", err)
	}

	log.Printf("💾 Replaced colours for product %d: %d rows", productID, len(colours))
	return nil
}

// UpdateProductImage points a product at a freshly synced artwork file.
// Returns false when no product carries the SKU.
func (r *CatalogRepository) UpdateProductImage(ctx context.Context, sku string, imagePath string) (bool, error) {
	result, err := db.DB.ExecContext(ctx, `
		UPDATE products SET image_path = $2, updated_at = now() WHERE sku = $1
	`, sku, imagePath)
	if err != nil {
		return false, fmt.Errorf("failed to update product image: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// rowScanner lets scanProduct work for both QueryRow and Query results.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	if err := row.Scan(
		&product.ID,
		&product.CategoryID,
		&product.SKU,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.PricingModel,
		&product.MinOrderQuantity,
		&product.MaxPrintPositions,
		&product.LeadTimeDays,
		&product.ImagePath,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return &product, nil
}

func joinProductColumns(alias string) string {
	return alias + `.id, ` + alias + `.category_id, ` + alias + `.sku, ` + alias + `.name, ` + alias + `.slug, ` + alias + `.description, ` + alias + `.pricing_model, ` + alias + `.min_order_quantity, ` + alias + `.max_print_positions, ` + alias + `.lead_time_days, ` + alias + `.image_path, ` + alias + `.is_active, ` + alias + `.created_at, ` + alias + `.updated_at`
}

func nullableInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullableString(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	return &n.String
}

func nullableDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	return &n.Decimal
}
