package services

import (
	"context"

	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	"github.com/pharmakeep/pharmacy_pos_app/internal/dto"
)

// SaleCreatorSvc defines the checkout operation: cart in, durable sale out.
type SaleCreatorSvc interface {
	// CreateSale validates the cart, prices it, commits stock and persists
	// the sale with its items and initial timeline entry as one unit of
	// work. It returns the persisted sale with items and timeline loaded.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorActorID string) (*domain.Sale, error)
}

// SaleVoiderSvc defines the compensating void/refund transition.
type SaleVoiderSvc interface {
	// VoidSale restores the sale's stock and moves it to a terminal status
	// (CANCELLED, or REFUNDED when req.Refund is set). It fails with
	// apperrors.ErrInvalidTransition if the sale is not voidable.
	VoidSale(ctx context.Context, saleID string, req dto.VoidSaleRequest, actorID string) (*domain.Sale, error)
}

// SaleReaderSvc defines read operations for sales and their timeline.
type SaleReaderSvc interface {
	// GetSaleByID returns the persisted sale with items and timeline.
	// Totals are returned as stored; they are never recomputed on read.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a token-paginated list of sales, newest first.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)

	// GetSaleTimeline returns the sale's audit timeline in chronological order.
	GetSaleTimeline(ctx context.Context, saleID string) ([]domain.TimelineEntry, error)
}

// SaleSvcFacade combines all sale service interfaces.
type SaleSvcFacade interface {
	SaleCreatorSvc
	SaleVoiderSvc
	SaleReaderSvc
}
