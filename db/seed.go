package db

import (
	"database/sql"
	"fmt"
	"log"
)

// SeedStats contains seed operation counters.
type SeedStats struct {
	Products int
	Skipped  int
}

// seedProduct is one demo product with its full pricing catalog.
type seedProduct struct {
	categorySlug string
	categoryName string
	sku          string
	name         string
	slug         string
	description  string
	pricingModel string
	minOrder     int
	maxPositions int
	leadTimeDays int
	colours      [][3]string // code, name, hex
	tiers        []seedTier
	printRows    []seedPrintRow
}

type seedTier struct {
	minQty  int
	maxQty  *int
	price   string
	popular bool
}

// seedPrintRow mirrors the print_pricing columns; nil means NULL.
type seedPrintRow struct {
	variant      string
	colourCount  *int
	printCost    *string
	garmentCost  *string
	minQty       *int
	maxQty       *int
	extraPrice   *string
	coverageType *string
	coveragePPU  *string
}

func iptr(v int) *int       { return &v }
func sptr(v string) *string { return &v }

// RunSeed inserts the demo catalog in an idempotent way. Products already
// present by SKU are left untouched.
func RunSeed() (SeedStats, error) {
	if DB == nil {
		return SeedStats{}, fmt.Errorf("database not initialized")
	}

	tx, err := DB.Begin()
	if err != nil {
		return SeedStats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := SeedStats{}
	for _, product := range demoCatalog() {
		inserted, err := ensureProduct(tx, product)
		if err != nil {
			_ = tx.Rollback()
			return SeedStats{}, err
		}
		if inserted {
			stats.Products++
		} else {
			stats.Skipped++
		}
	}

	if err := tx.Commit(); err != nil {
		return SeedStats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	log.Printf("✓ Seed complete: %d products inserted, %d already present", stats.Products, stats.Skipped)
	return stats, nil
}

func ensureProduct(tx *sql.Tx, p seedProduct) (bool, error) {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM products WHERE sku = $1)`, p.sku).Scan(&exists); err != nil {
		return false, fmt.Errorf("check product %s existence: %w", p.sku, err)
	}
	if exists {
		return false, nil
	}

	categoryID, err := ensureCategory(tx, p.categoryName, p.categorySlug)
	if err != nil {
		return false, err
	}

	var productID int
	err = tx.QueryRow(`
		INSERT INTO products (category_id, sku, name, slug, description, pricing_model, min_order_quantity, max_print_positions, lead_time_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, categoryID, p.sku, p.name, p.slug, p.description, p.pricingModel, p.minOrder, p.maxPositions, p.leadTimeDays).Scan(&productID)
	if err != nil {
		return false, fmt.Errorf("insert product %s: %w", p.sku, err)
	}

	for i, colour := range p.colours {
		if _, err := tx.Exec(`
			INSERT INTO product_colours (product_id, colour_code, colour_name, hex_value, sort_order)
			VALUES ($1, $2, $3, $4, $5)
		`, productID, colour[0], colour[1], colour[2], i); err != nil {
			return false, fmt.Errorf("insert colour %s for %s: %w", colour[0], p.sku, err)
		}
	}

	for _, tier := range p.tiers {
		if _, err := tx.Exec(`
			INSERT INTO pricing_tiers (product_id, min_quantity, max_quantity, price_per_unit, is_popular)
			VALUES ($1, $2, $3, $4, $5)
		`, productID, tier.minQty, tier.maxQty, tier.price, tier.popular); err != nil {
			return false, fmt.Errorf("insert tier for %s: %w", p.sku, err)
		}
	}

	for _, row := range p.printRows {
		if _, err := tx.Exec(`
			INSERT INTO print_pricing (product_id, colour_variant, colour_count, print_cost_per_position, garment_cost, min_quantity, max_quantity, extra_position_price, coverage_type, coverage_price_per_unit)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, productID, row.variant, row.colourCount, row.printCost, row.garmentCost, row.minQty, row.maxQty, row.extraPrice, row.coverageType, row.coveragePPU); err != nil {
			return false, fmt.Errorf("insert print pricing for %s: %w", p.sku, err)
		}
	}

	return true, nil
}

func ensureCategory(tx *sql.Tx, name, slug string) (int, error) {
	var id int
	err := tx.QueryRow(`SELECT id FROM categories WHERE slug = $1`, slug).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("check category %s existence: %w", slug, err)
	}

	err = tx.QueryRow(`
		INSERT INTO categories (name, slug, sort_order)
		VALUES ($1, $2, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM categories))
		RETURNING id
	`, name, slug).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert category %s: %w", slug, err)
	}
	return id, nil
}

func demoCatalog() []seedProduct {
	return []seedProduct{
		{
			categorySlug: "apparel",
			categoryName: "Apparel",
			sku:          "TEE-01",
			name:         "Classic Cotton Tee",
			slug:         "classic-cotton-tee",
			description:  "Heavyweight ringspun tee, screen printed in up to six colours.",
			pricingModel: "clothing",
			minOrder:     10,
			maxPositions: 4,
			leadTimeDays: 10,
			colours: [][3]string{
				{"WHT", "White", "#FFFFFF"},
				{"BLK", "Black", "#1D1D1B"},
				{"NVY", "Navy", "#1F2A44"},
				{"NAT", "Natural", "#F5F0E1"},
			},
			tiers: []seedTier{
				{1, iptr(49), "9.50", false},
				{50, iptr(99), "8.20", true},
				{100, nil, "6.90", false},
			},
			printRows: []seedPrintRow{
				{variant: "white", garmentCost: sptr("3.80"), minQty: iptr(1), maxQty: iptr(49)},
				{variant: "white", garmentCost: sptr("3.40"), minQty: iptr(50)},
				{variant: "coloured", garmentCost: sptr("4.20"), minQty: iptr(1), maxQty: iptr(49)},
				{variant: "coloured", garmentCost: sptr("3.80"), minQty: iptr(50)},
				{variant: "white", colourCount: iptr(1), printCost: sptr("1.50"), minQty: iptr(1), maxQty: iptr(49)},
				{variant: "white", colourCount: iptr(1), printCost: sptr("1.10"), minQty: iptr(50)},
				{variant: "white", colourCount: iptr(2), printCost: sptr("1.90"), minQty: iptr(1), maxQty: iptr(49)},
				{variant: "white", colourCount: iptr(2), printCost: sptr("1.60"), minQty: iptr(50)},
				{variant: "coloured", colourCount: iptr(1), printCost: sptr("1.80"), minQty: iptr(1), maxQty: iptr(49)},
				{variant: "coloured", colourCount: iptr(1), printCost: sptr("1.40"), minQty: iptr(50)},
				{variant: "coloured", colourCount: iptr(2), printCost: sptr("2.30"), minQty: iptr(1), maxQty: iptr(49)},
				{variant: "coloured", colourCount: iptr(2), printCost: sptr("2.00"), minQty: iptr(50)},
			},
		},
		{
			categorySlug: "drinkware",
			categoryName: "Drinkware",
			sku:          "MUG-01",
			name:         "Premium Ceramic Mug",
			slug:         "premium-ceramic-mug",
			description:  "11oz ceramic mug with wrap or spot print.",
			pricingModel: "flat",
			minOrder:     25,
			maxPositions: 2,
			leadTimeDays: 7,
			colours: [][3]string{
				{"WHT", "White", "#FFFFFF"},
				{"BLK", "Black", "#1D1D1B"},
				{"RED", "Red", "#C8102E"},
			},
			tiers: []seedTier{
				{1, iptr(49), "10.00", false},
				{50, iptr(99), "8.00", true},
				{100, nil, "6.00", false},
			},
			printRows: []seedPrintRow{
				{variant: "coloured", extraPrice: sptr("1.50")},
			},
		},
		{
			categorySlug: "drinkware",
			categoryName: "Drinkware",
			sku:          "BTL-01",
			name:         "Sports Bottle 750ml",
			slug:         "sports-bottle-750ml",
			description:  "BPA-free sports bottle, printed front only, front and back, or full wrap.",
			pricingModel: "coverage",
			minOrder:     50,
			maxPositions: 1,
			leadTimeDays: 12,
			colours: [][3]string{
				{"WHT", "White", "#FFFFFF"},
				{"BLU", "Blue", "#0057B8"},
			},
			tiers: []seedTier{
				{1, iptr(99), "4.80", false},
				{100, nil, "4.20", true},
			},
			printRows: []seedPrintRow{
				{variant: "coloured", coverageType: sptr("front_only"), coveragePPU: sptr("5.95")},
				{variant: "coloured", coverageType: sptr("front_back"), coveragePPU: sptr("7.95")},
				{variant: "coloured", coverageType: sptr("full_wrap"), coveragePPU: sptr("9.95")},
			},
		},
	}
}
