package pgsql

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pharmakeep/pharmacy_pos_app/internal/apperrors"
	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	portsrepo "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/repositories"
	"github.com/pharmakeep/pharmacy_pos_app/internal/models"
	"github.com/pharmakeep/pharmacy_pos_app/internal/utils/mapping"
)

type PgxMedicineRepository struct {
	BaseRepository
}

// newPgxMedicineRepository creates a new repository for medicine and stock data.
func newPgxMedicineRepository(pool *pgxpool.Pool) portsrepo.MedicineRepositoryWithTx {
	return &PgxMedicineRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxMedicineRepository implements portsrepo.MedicineRepositoryWithTx
var _ portsrepo.MedicineRepositoryWithTx = (*PgxMedicineRepository)(nil)

const medicineColumns = `
	medicine_id, name, generic_name, manufacturer, category, unit_price,
	stock_quantity, reorder_level, expiry_date, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanMedicine(row pgx.Row) (models.Medicine, error) {
	var m models.Medicine
	err := row.Scan(
		&m.MedicineID,
		&m.Name,
		&m.GenericName,
		&m.Manufacturer,
		&m.Category,
		&m.UnitPrice,
		&m.StockQuantity,
		&m.ReorderLevel,
		&m.ExpiryDate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveMedicine persists a new medicine.
func (r *PgxMedicineRepository) SaveMedicine(ctx context.Context, medicine domain.Medicine) error {
	modelMedicine := mapping.ToModelMedicine(medicine)
	query := `
		INSERT INTO medicines (
			medicine_id, name, generic_name, manufacturer, category, unit_price,
			stock_quantity, reorder_level, expiry_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelMedicine.MedicineID,
		modelMedicine.Name,
		modelMedicine.GenericName,
		modelMedicine.Manufacturer,
		modelMedicine.Category,
		modelMedicine.UnitPrice,
		modelMedicine.StockQuantity,
		modelMedicine.ReorderLevel,
		modelMedicine.ExpiryDate,
		modelMedicine.IsActive,
		modelMedicine.CreatedAt,
		modelMedicine.CreatedBy,
		modelMedicine.LastUpdatedAt,
		modelMedicine.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapConcurrencyError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert medicine "+modelMedicine.MedicineID, err)
	}
	return nil
}

// FindMedicineByID retrieves a medicine by its ID.
func (r *PgxMedicineRepository) FindMedicineByID(ctx context.Context, medicineID string) (*domain.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines WHERE medicine_id = $1;`

	modelMedicine, err := scanMedicine(r.Pool.QueryRow(ctx, query, medicineID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find medicine by ID "+medicineID, err)
	}

	domainMedicine := mapping.ToDomainMedicine(modelMedicine)
	return &domainMedicine, nil
}

// FindMedicinesByIDs retrieves multiple medicines by their IDs.
func (r *PgxMedicineRepository) FindMedicinesByIDs(ctx context.Context, medicineIDs []string) (map[string]domain.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines WHERE medicine_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, medicineIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query medicines by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Medicine, len(medicineIDs))
	for rows.Next() {
		modelMedicine, err := scanMedicine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan medicine row", err)
		}
		result[modelMedicine.MedicineID] = mapping.ToDomainMedicine(modelMedicine)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating medicine rows", err)
	}

	return result, nil
}

// ListMedicines retrieves a paginated list of medicines.
func (r *PgxMedicineRepository) ListMedicines(ctx context.Context, limit int, offset int, includeInactive bool) ([]domain.Medicine, error) {
	query := `SELECT ` + medicineColumns + `
		FROM medicines
		WHERE ($3 OR is_active)
		ORDER BY name, medicine_id
		LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset, includeInactive)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list medicines", err)
	}
	defer rows.Close()

	medicines := []domain.Medicine{}
	for rows.Next() {
		modelMedicine, err := scanMedicine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan medicine row", err)
		}
		medicines = append(medicines, mapping.ToDomainMedicine(modelMedicine))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating medicine rows", err)
	}

	return medicines, nil
}

// UpdateMedicine updates an existing medicine's catalogue details. The
// stock quantity is intentionally not part of this statement.
func (r *PgxMedicineRepository) UpdateMedicine(ctx context.Context, medicine domain.Medicine) error {
	modelMedicine := mapping.ToModelMedicine(medicine)
	query := `
		UPDATE medicines
		SET name = $2, generic_name = $3, manufacturer = $4, category = $5,
		    unit_price = $6, reorder_level = $7, expiry_date = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE medicine_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelMedicine.MedicineID,
		modelMedicine.Name,
		modelMedicine.GenericName,
		modelMedicine.Manufacturer,
		modelMedicine.Category,
		modelMedicine.UnitPrice,
		modelMedicine.ReorderLevel,
		modelMedicine.ExpiryDate,
		modelMedicine.LastUpdatedAt,
		modelMedicine.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update medicine "+modelMedicine.MedicineID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateMedicine marks a medicine as inactive.
func (r *PgxMedicineRepository) DeactivateMedicine(ctx context.Context, medicineID string, actorID string, now time.Time) error {
	query := `
		UPDATE medicines
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE medicine_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, medicineID, now, actorID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate medicine "+medicineID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindMedicinesByIDsForUpdate selects medicines and locks their rows for
// update within a transaction. Rows are locked in sorted ID order so two
// concurrent commits touching the same medicines acquire locks in the same
// sequence and cannot deadlock each other.
func (r *PgxMedicineRepository) FindMedicinesByIDsForUpdate(ctx context.Context, tx pgx.Tx, medicineIDs []string) (map[string]domain.Medicine, error) {
	sortedIDs := make([]string, len(medicineIDs))
	copy(sortedIDs, medicineIDs)
	sort.Strings(sortedIDs)

	query := `SELECT ` + medicineColumns + `
		FROM medicines
		WHERE medicine_id = ANY($1)
		ORDER BY medicine_id
		FOR UPDATE;`

	rows, err := tx.Query(ctx, query, sortedIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock medicines for update", mapConcurrencyError(err))
	}
	defer rows.Close()

	result := make(map[string]domain.Medicine, len(sortedIDs))
	for rows.Next() {
		modelMedicine, err := scanMedicine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked medicine row", err)
		}
		result[modelMedicine.MedicineID] = mapping.ToDomainMedicine(modelMedicine)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked medicine rows", mapConcurrencyError(err))
	}

	// Every requested medicine must exist; a missing row during a stock
	// operation is a data-integrity failure, not a silent skip.
	for _, id := range sortedIDs {
		if _, ok := result[id]; !ok {
			return nil, apperrors.NewAppError(404, "medicine "+id+" not found while locking stock rows", apperrors.ErrNotFound)
		}
	}

	return result, nil
}

// ApplyStockDeltasInTx adjusts stock_quantity for multiple medicines within
// a given transaction. The schema's CHECK (stock_quantity >= 0) backs up
// the caller's sufficiency guard.
func (r *PgxMedicineRepository) ApplyStockDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]int64, actorID string, now time.Time) error {
	// Deterministic statement order, matching the lock order.
	ids := make([]string, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	batch := &pgx.Batch{}
	query := `
		UPDATE medicines
		SET stock_quantity = stock_quantity + $2, last_updated_at = $3, last_updated_by = $4
		WHERE medicine_id = $1;
	`
	for _, id := range ids {
		batch.Queue(query, id, deltas[id], now, actorID)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to apply stock deltas", mapConcurrencyError(err))
	}
	return nil
}
