package services

import (
	"context"

	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	"github.com/pharmakeep/pharmacy_pos_app/internal/dto"
)

// MedicineReaderSvc defines read operations on the medicine catalogue.
type MedicineReaderSvc interface {
	GetMedicineByID(ctx context.Context, medicineID string) (*domain.Medicine, error)
	ListMedicines(ctx context.Context, limit int, offset int, includeInactive bool) ([]domain.Medicine, error)
}

// MedicineWriterSvc defines catalogue maintenance operations.
type MedicineWriterSvc interface {
	CreateMedicine(ctx context.Context, req dto.CreateMedicineRequest, creatorActorID string) (*domain.Medicine, error)
	UpdateMedicine(ctx context.Context, medicineID string, req dto.UpdateMedicineRequest, actorID string) (*domain.Medicine, error)
	DeactivateMedicine(ctx context.Context, medicineID string, actorID string) error
}

// MedicineStockSvc defines the audited manual stock adjustment, which goes
// through the same inventory ledger discipline as sales.
type MedicineStockSvc interface {
	AdjustStock(ctx context.Context, medicineID string, req dto.AdjustStockRequest, actorID string) (*domain.Medicine, error)
}

// MedicineSvcFacade combines all medicine service interfaces.
type MedicineSvcFacade interface {
	MedicineReaderSvc
	MedicineWriterSvc
	MedicineStockSvc
}
