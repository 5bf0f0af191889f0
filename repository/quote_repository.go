package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/PGifts2025/Site2026-sub000/db"
	"github.com/PGifts2025/Site2026-sub000/models"
)

// ErrQuoteNotFound is returned when a quote lookup matches nothing.
var ErrQuoteNotFound = errors.New("quote not found")

// QuoteRepository handles database operations for saved quotes
type QuoteRepository struct{}

// NewQuoteRepository creates a new QuoteRepository
func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

// Ensure QuoteRepository implements QuoteRepositoryInterface
var _ QuoteRepositoryInterface = (*QuoteRepository)(nil)

// Insert stores a quote with its colour lines and print positions in one
// transaction. The quote's CreatedAt is filled from the database.
func (r *QuoteRepository) Insert(ctx context.Context, quote *models.QuoteDetail) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO quotes (id, reference, product_id, customer_name, customer_email, pricing_model, quantity, unit_price, total_price, currency, coverage_type, below_minimum)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`, quote.ID, quote.Reference, quote.ProductID, quote.CustomerName, quote.CustomerEmail, quote.PricingModel,
		quote.Quantity, quote.UnitPrice, quote.TotalPrice, quote.Currency, quote.CoverageType, quote.BelowMinimum).Scan(&quote.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	for i := range quote.Lines {
		line := &quote.Lines[i]
		line.QuoteID = quote.ID
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO quote_lines (quote_id, colour_code, colour_name, size_s, size_m, size_l, size_xl, size_xxl, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`, quote.ID, line.ColourCode, line.ColourName, line.SizeS, line.SizeM, line.SizeL, line.SizeXL, line.SizeXXL, line.Subtotal).Scan(&line.ID); err != nil {
			return fmt.Errorf("failed to insert quote line: %w", err)
		}
	}

	for _, position := range quote.Positions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO quote_positions (quote_id, print_position, colour_count)
			VALUES ($1, $2, $3)
		`, quote.ID, position.Position, position.ColourCount); err != nil {
			return fmt.Errorf("failed to insert quote position: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quote: %w", err)
	}

	log.Printf("💾 Quote %s saved with %d lines and %d positions", quote.Reference, len(quote.Lines), len(quote.Positions))
	return nil
}

// GetByReference retrieves a quote with its lines and positions
func (r *QuoteRepository) GetByReference(ctx context.Context, reference string) (*models.QuoteDetail, error) {
	var quote models.QuoteDetail
	err := db.DB.QueryRowContext(ctx, `
		SELECT q.id, q.reference, q.product_id, p.name, p.sku, q.customer_name, q.customer_email,
		       q.pricing_model, q.quantity, q.unit_price, q.total_price, q.currency, q.coverage_type,
		       q.below_minimum, q.created_at
		FROM quotes q
		JOIN products p ON p.id = q.product_id
		WHERE q.reference = $1
	`, reference).Scan(
		&quote.ID, &quote.Reference, &quote.ProductID, &quote.ProductName, &quote.ProductSKU,
		&quote.CustomerName, &quote.CustomerEmail, &quote.PricingModel, &quote.Quantity,
		&quote.UnitPrice, &quote.TotalPrice, &quote.Currency, &quote.CoverageType,
		&quote.BelowMinimum, &quote.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to query quote: %w", err)
	}

	lines, err := r.getLines(ctx, quote.ID)
	if err != nil {
		return nil, err
	}
	quote.Lines = lines

	positions, err := r.getPositions(ctx, quote.ID)
	if err != nil {
		return nil, err
	}
	quote.Positions = positions

	return &quote, nil
}

// ListByEmail retrieves a customer's quote headers, newest first. The email
// match is exact; callers normalize before storing and querying.
func (r *QuoteRepository) ListByEmail(ctx context.Context, email string) ([]models.Quote, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT q.id, q.reference, q.product_id, p.name, p.sku, q.customer_name, q.customer_email,
		       q.pricing_model, q.quantity, q.unit_price, q.total_price, q.currency, q.coverage_type,
		       q.below_minimum, q.created_at
		FROM quotes q
		JOIN products p ON p.id = q.product_id
		WHERE q.customer_email = $1
		ORDER BY q.created_at DESC
	`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		var quote models.Quote
		if err := rows.Scan(
			&quote.ID, &quote.Reference, &quote.ProductID, &quote.ProductName, &quote.ProductSKU,
			&quote.CustomerName, &quote.CustomerEmail, &quote.PricingModel, &quote.Quantity,
			&quote.UnitPrice, &quote.TotalPrice, &quote.Currency, &quote.CoverageType,
			&quote.BelowMinimum, &quote.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quotes: %w", err)
	}

	return quotes, nil
}

func (r *QuoteRepository) getLines(ctx context.Context, quoteID string) ([]models.QuoteLine, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, quote_id, colour_code, colour_name, size_s, size_m, size_l, size_xl, size_xxl, subtotal
		FROM quote_lines
		WHERE quote_id = $1
		ORDER BY id
	`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote lines: %w", err)
	}
	defer rows.Close()

	var lines []models.QuoteLine
	for rows.Next() {
		var line models.QuoteLine
		if err := rows.Scan(&line.ID, &line.QuoteID, &line.ColourCode, &line.ColourName, &line.SizeS, &line.SizeM, &line.SizeL, &line.SizeXL, &line.SizeXXL, &line.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan quote line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote lines: %w", err)
	}

	return lines, nil
}

func (r *QuoteRepository) getPositions(ctx context.Context, quoteID string) ([]models.PositionSelection, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT print_position, colour_count
		FROM quote_positions
		WHERE quote_id = $1
		ORDER BY id
	`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote positions: %w", err)
	}
	defer rows.Close()

	var positions []models.PositionSelection
	for rows.Next() {
		var position models.PositionSelection
		if err := rows.Scan(&position.Position, &position.ColourCount); err != nil {
			return nil, fmt.Errorf("failed to scan quote position: %w", err)
		}
		positions = append(positions, position)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote positions: %w", err)
	}

	return positions, nil
}
