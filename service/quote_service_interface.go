package service

import (
	"context"

	"github.com/PGifts2025/Site2026-sub000/models"
)

// QuoteServiceInterface defines the contract for quote pricing and storage
type QuoteServiceInterface interface {
	// CalculateQuote prices a configurator submission without persisting
	// anything.
	CalculateQuote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error)
	// SaveQuote prices a submission and stores the result under a fresh
	// reference.
	SaveQuote(ctx context.Context, req models.QuoteRequest) (*models.QuoteDetail, error)
}
