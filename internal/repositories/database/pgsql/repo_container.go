package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires up the concrete pgx-backed repositories. The
// sale repository receives the medicine repository so stock movements share
// the sale's transaction.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	medicineRepo := newPgxMedicineRepository(pool)
	saleRepo := newPgxSaleRepository(pool, medicineRepo)

	return &portsrepo.RepositoryProvider{
		MedicineRepo: medicineRepo,
		SaleRepo:     saleRepo,
	}
}
