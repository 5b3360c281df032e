package repositories

import (
	"context"

	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale header by its unique identifier.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// FindSaleItemsBySaleID retrieves all line items belonging to a sale.
	FindSaleItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error)

	// ListSales retrieves a paginated list of sales using token-based
	// pagination, newest first. It returns the sales, a token for the next
	// page, and an error.
	ListSales(ctx context.Context, limit int, nextToken *string, status *domain.SaleStatus) ([]domain.Sale, *string, error)
}

// SaleWriter defines the two mutating units of work on sales. Both execute
// as a single database transaction: either every effect is persisted or
// none is.
type SaleWriter interface {
	// SaveSale persists a sale with its items and initial timeline entry,
	// committing the stock decrements in the same transaction. It assigns
	// and returns the human-readable sale number. stockDeltas carries the
	// per-medicine decrements (negative values).
	SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, entry domain.TimelineEntry, stockDeltas map[string]int64) (string, error)

	// VoidSale restores stock, moves the sale to the given terminal status
	// and appends the void timeline entry, all in one transaction.
	// stockDeltas carries the per-medicine restores (positive values).
	VoidSale(ctx context.Context, sale domain.Sale, newStatus domain.SaleStatus, entry domain.TimelineEntry, stockDeltas map[string]int64) error
}

// TimelineReader defines read operations for the append-only sale timeline.
type TimelineReader interface {
	// FindTimelineBySaleID retrieves all timeline entries for a sale in
	// chronological order.
	FindTimelineBySaleID(ctx context.Context, saleID string) ([]domain.TimelineEntry, error)
}

// SaleRepositoryFacade combines all sale-related repository interfaces
// This is a facade for clients that need access to all operations
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
	TimelineReader
}

// SaleRepositoryWithTx extends SaleRepositoryFacade with transaction capabilities
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	TransactionManager
}
