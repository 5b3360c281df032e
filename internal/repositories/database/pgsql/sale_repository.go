package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pharmakeep/pharmacy_pos_app/internal/apperrors"
	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	portsrepo "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/repositories"
	"github.com/pharmakeep/pharmacy_pos_app/internal/models"
	"github.com/pharmakeep/pharmacy_pos_app/internal/utils/mapping"
	"github.com/pharmakeep/pharmacy_pos_app/internal/utils/pagination"
)

type PgxSaleRepository struct {
	BaseRepository
	medicineRepo portsrepo.MedicineRepositoryFacade
}

// newPgxSaleRepository creates a new repository for sale, sale item and
// timeline data. The medicine repository is injected so stock movements run
// inside the same transaction as the sale rows.
func newPgxSaleRepository(pool *pgxpool.Pool, medicineRepo portsrepo.MedicineRepositoryFacade) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
		medicineRepo:   medicineRepo,
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryWithTx
var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

const saleColumns = `
	sale_id, sale_number, patient_id, payment_method, status,
	subtotal, discount_amount, tax_amount, grand_total, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.SaleNumber,
		&m.PatientID,
		&m.PaymentMethod,
		&m.Status,
		&m.Subtotal,
		&m.DiscountAmount,
		&m.TaxAmount,
		&m.GrandTotal,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSale persists a sale, its items and the initial timeline entry, and
// commits the stock decrements, all within one DB transaction. It verifies
// stock sufficiency under row locks: if any single item is short, nothing
// is persisted and the first insufficient medicine is reported.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, entry domain.TimelineEntry, stockDeltas map[string]int64) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	// Will be ignored if the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	now := sale.CreatedAt
	actorID := sale.CreatedBy

	// 1. Lock the affected medicine rows and guard the stock invariant.
	medicineIDs := make([]string, 0, len(stockDeltas))
	for id := range stockDeltas {
		medicineIDs = append(medicineIDs, id)
	}
	lockedMedicines, err := r.medicineRepo.FindMedicinesByIDsForUpdate(ctx, tx, medicineIDs)
	if err != nil {
		return "", err
	}
	// Items are checked in request order so the first insufficient
	// medicine named matches what the caller submitted.
	for _, item := range items {
		needed := -stockDeltas[item.MedicineID]
		available := lockedMedicines[item.MedicineID].StockQuantity
		if available < needed {
			return "", &apperrors.InsufficientStockError{
				MedicineID: item.MedicineID,
				Requested:  needed,
				Available:  available,
			}
		}
	}

	// 2. Decrement stock while the rows are still locked.
	if err := r.medicineRepo.ApplyStockDeltasInTx(ctx, tx, stockDeltas, actorID, now); err != nil {
		return "", err
	}

	// 3. Claim the next human-readable sale number inside the transaction
	// so numbers are assigned in commit order and never reused.
	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('sale_number_seq');`).Scan(&seq); err != nil {
		return "", apperrors.NewAppError(500, "failed to claim next sale number", mapConcurrencyError(err))
	}
	saleNumber := fmt.Sprintf("SALE-%06d", seq)

	// 4. Insert the sale header.
	modelSale := mapping.ToModelSale(sale)
	modelSale.SaleNumber = saleNumber
	saleQuery := `
		INSERT INTO sales (
			sale_id, sale_number, patient_id, payment_method, status,
			subtotal, discount_amount, tax_amount, grand_total, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, saleQuery,
		modelSale.SaleID,
		modelSale.SaleNumber,
		modelSale.PatientID,
		modelSale.PaymentMethod,
		modelSale.Status,
		modelSale.Subtotal,
		modelSale.DiscountAmount,
		modelSale.TaxAmount,
		modelSale.GrandTotal,
		modelSale.Notes,
		modelSale.CreatedAt,
		modelSale.CreatedBy,
		modelSale.LastUpdatedAt,
		modelSale.LastUpdatedBy,
	)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to insert sale "+modelSale.SaleID, mapConcurrencyError(err))
	}

	// 5. Insert the line items as a batch.
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO sale_items (sale_item_id, sale_id, medicine_id, quantity, unit_price, discount_percentage, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, item := range items {
		modelItem := mapping.ToModelSaleItem(item)
		batch.Queue(itemQuery,
			modelItem.SaleItemID,
			modelItem.SaleID,
			modelItem.MedicineID,
			modelItem.Quantity,
			modelItem.UnitPrice,
			modelItem.DiscountPercentage,
			modelItem.TotalPrice,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return "", apperrors.NewAppError(500, "failed to insert sale items for sale "+modelSale.SaleID, mapConcurrencyError(err))
	}

	// 6. Append the initial timeline entry.
	if err := insertTimelineEntry(ctx, tx, entry); err != nil {
		return "", err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}

	return saleNumber, nil
}

// VoidSale restores the sale's stock, moves it to the given terminal status
// and appends the void timeline entry within one DB transaction. The status
// update is guarded on the previously observed status, so a racing void of
// the same sale fails instead of restoring stock twice.
func (r *PgxSaleRepository) VoidSale(ctx context.Context, sale domain.Sale, newStatus domain.SaleStatus, entry domain.TimelineEntry, stockDeltas map[string]int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := sale.LastUpdatedAt
	actorID := sale.LastUpdatedBy

	// 1. Lock the medicine rows. A missing medicine here means the sale
	// references stock that no longer exists, which is a data-integrity
	// failure surfaced to the caller, never silently ignored.
	medicineIDs := make([]string, 0, len(stockDeltas))
	for id := range stockDeltas {
		medicineIDs = append(medicineIDs, id)
	}
	if _, err := r.medicineRepo.FindMedicinesByIDsForUpdate(ctx, tx, medicineIDs); err != nil {
		return err
	}

	// 2. Restore stock.
	if err := r.medicineRepo.ApplyStockDeltasInTx(ctx, tx, stockDeltas, actorID, now); err != nil {
		return err
	}

	// 3. Move the sale to its terminal status, guarded on the status the
	// caller validated against.
	statusQuery := `
		UPDATE sales
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE sale_id = $1 AND status = $2;
	`
	tag, err := tx.Exec(ctx, statusQuery,
		sale.SaleID,
		models.SaleStatus(sale.Status),
		models.SaleStatus(newStatus),
		now,
		actorID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for sale "+sale.SaleID, mapConcurrencyError(err))
	}
	if tag.RowsAffected() == 0 {
		// Someone else transitioned the sale first; the whole void rolls back.
		return apperrors.ErrConflict
	}

	// 4. Append the void timeline entry.
	if err := insertTimelineEntry(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertTimelineEntry(ctx context.Context, tx pgx.Tx, entry domain.TimelineEntry) error {
	modelEntry := mapping.ToModelTimelineEntry(entry)
	query := `
		INSERT INTO sale_timeline (entry_id, sale_id, action, reason, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.SaleID,
		modelEntry.Action,
		modelEntry.Reason,
		modelEntry.Actor,
		modelEntry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert timeline entry for sale "+modelEntry.SaleID, mapConcurrencyError(err))
	}
	return nil
}

// FindSaleByID retrieves a sale header by its ID.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`

	modelSale, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sale by ID "+saleID, err)
	}

	domainSale := mapping.ToDomainSale(modelSale)
	return &domainSale, nil
}

// FindSaleItemsBySaleID retrieves all line items belonging to a sale.
func (r *PgxSaleRepository) FindSaleItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	query := `
		SELECT sale_item_id, sale_id, medicine_id, quantity, unit_price, discount_percentage, total_price
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY sale_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sale items for sale "+saleID, err)
	}
	defer rows.Close()

	items := []models.SaleItem{}
	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(
			&item.SaleItemID,
			&item.SaleID,
			&item.MedicineID,
			&item.Quantity,
			&item.UnitPrice,
			&item.DiscountPercentage,
			&item.TotalPrice,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale item row for sale "+saleID, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sale item rows for sale "+saleID, err)
	}

	return mapping.ToDomainSaleItemSlice(items), nil
}

// FindTimelineBySaleID retrieves all timeline entries for a sale in
// chronological order.
func (r *PgxSaleRepository) FindTimelineBySaleID(ctx context.Context, saleID string) ([]domain.TimelineEntry, error) {
	query := `
		SELECT entry_id, sale_id, action, reason, actor, created_at
		FROM sale_timeline
		WHERE sale_id = $1
		ORDER BY created_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query timeline for sale "+saleID, err)
	}
	defer rows.Close()

	entries := []models.TimelineEntry{}
	for rows.Next() {
		var entry models.TimelineEntry
		if err := rows.Scan(
			&entry.EntryID,
			&entry.SaleID,
			&entry.Action,
			&entry.Reason,
			&entry.Actor,
			&entry.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan timeline row for sale "+saleID, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating timeline rows for sale "+saleID, err)
	}

	return mapping.ToDomainTimelineEntrySlice(entries), nil
}

// ListSales retrieves a paginated list of sales using token-based keyset
// pagination on (created_at, sale_id), newest first.
func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string, status *domain.SaleStatus) ([]domain.Sale, *string, error) {
	args := []interface{}{limit + 1}
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`

	if status != nil {
		args = append(args, models.SaleStatus(*status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	if nextToken != nil && *nextToken != "" {
		createdAt, saleID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, createdAt, saleID)
		query += fmt.Sprintf(" AND (created_at, sale_id) < ($%d, $%d)", len(args)-1, len(args))
	}

	query += ` ORDER BY created_at DESC, sale_id DESC LIMIT $1;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list sales", err)
	}
	defer rows.Close()

	modelSales := []models.Sale{}
	for rows.Next() {
		modelSale, err := scanSale(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan sale row", err)
		}
		modelSales = append(modelSales, modelSale)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating sale rows", err)
	}

	// One extra row was fetched to know whether a next page exists.
	var token *string
	if len(modelSales) > limit {
		modelSales = modelSales[:limit]
		last := modelSales[len(modelSales)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.SaleID)
		token = &t
	}

	sales := make([]domain.Sale, len(modelSales))
	for i, m := range modelSales {
		sales[i] = mapping.ToDomainSale(m)
	}

	return sales, token, nil
}
