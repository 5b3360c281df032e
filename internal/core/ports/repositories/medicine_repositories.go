package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
)

// MedicineReader defines read operations for medicine data
type MedicineReader interface {
	// FindMedicineByID retrieves a specific medicine by its unique identifier.
	FindMedicineByID(ctx context.Context, medicineID string) (*domain.Medicine, error)

	// FindMedicinesByIDs retrieves multiple medicines by their IDs.
	FindMedicinesByIDs(ctx context.Context, medicineIDs []string) (map[string]domain.Medicine, error)

	// ListMedicines retrieves a paginated list of medicines.
	ListMedicines(ctx context.Context, limit int, offset int, includeInactive bool) ([]domain.Medicine, error)
}

// MedicineWriter defines write operations for medicine catalogue data.
// Stock quantity is deliberately absent here; it changes only through
// MedicineStockSupport inside a transaction.
type MedicineWriter interface {
	// SaveMedicine persists a new medicine.
	SaveMedicine(ctx context.Context, medicine domain.Medicine) error

	// UpdateMedicine updates an existing medicine's catalogue details.
	UpdateMedicine(ctx context.Context, medicine domain.Medicine) error

	// DeactivateMedicine marks a medicine as inactive.
	DeactivateMedicine(ctx context.Context, medicineID string, actorID string, now time.Time) error
}

// MedicineStockSupport defines the inventory ledger operations. All of them
// run against a caller-provided transaction so a stock commit and the sale
// that caused it share one unit of work.
type MedicineStockSupport interface {
	// FindMedicinesByIDsForUpdate selects medicines and locks their rows for
	// update within a transaction. IDs are locked in sorted order to avoid
	// deadlocks between concurrent commits.
	FindMedicinesByIDsForUpdate(ctx context.Context, tx pgx.Tx, medicineIDs []string) (map[string]domain.Medicine, error)

	// ApplyStockDeltasInTx adjusts stock_quantity for multiple medicines
	// within a given transaction. Deltas are negative for a commit and
	// positive for a restore. The database CHECK constraint backs up the
	// application-level sufficiency guard.
	ApplyStockDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]int64, actorID string, now time.Time) error
}

// MedicineRepositoryFacade combines all medicine-related repository interfaces
// This is a facade for clients that need access to all operations
type MedicineRepositoryFacade interface {
	MedicineReader
	MedicineWriter
	MedicineStockSupport
}

// MedicineRepositoryWithTx extends MedicineRepositoryFacade with transaction capabilities
type MedicineRepositoryWithTx interface {
	MedicineRepositoryFacade
	TransactionManager
}
