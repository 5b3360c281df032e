package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pharmakeep/pharmacy_pos_app/internal/apperrors"
	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	portsrepo "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/repositories"
	portssvc "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/services"
	"github.com/pharmakeep/pharmacy_pos_app/internal/dto"
	"github.com/pharmakeep/pharmacy_pos_app/internal/middleware"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// medicineService provides catalogue maintenance and audited manual stock
// adjustments.
type medicineService struct {
	medicineRepo portsrepo.MedicineRepositoryWithTx
}

// NewMedicineService creates a new MedicineService.
func NewMedicineService(medicineRepo portsrepo.MedicineRepositoryWithTx) portssvc.MedicineSvcFacade {
	return &medicineService{
		medicineRepo: medicineRepo,
	}
}

// Ensure medicineService implements the portssvc.MedicineSvcFacade interface
var _ portssvc.MedicineSvcFacade = (*medicineService)(nil)

// CreateMedicine registers a new catalogue item with its opening stock.
func (s *medicineService) CreateMedicine(ctx context.Context, req dto.CreateMedicineRequest, creatorActorID string) (*domain.Medicine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}
	if req.InitialStock < 0 {
		return nil, fmt.Errorf("%w: initial stock must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	medicine := domain.Medicine{
		MedicineID:    uuid.NewString(),
		Name:          req.Name,
		GenericName:   req.GenericName,
		Manufacturer:  req.Manufacturer,
		Category:      req.Category,
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.InitialStock,
		ReorderLevel:  req.ReorderLevel,
		ExpiryDate:    req.ExpiryDate,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorActorID,
		},
	}

	if err := s.medicineRepo.SaveMedicine(ctx, medicine); err != nil {
		logger.Error("Failed to save medicine", slog.String("error", err.Error()), slog.String("medicine_name", req.Name))
		return nil, err
	}

	logger.Info("Medicine created successfully", slog.String("medicine_id", medicine.MedicineID))
	return &medicine, nil
}

// GetMedicineByID returns a single catalogue item.
func (s *medicineService) GetMedicineByID(ctx context.Context, medicineID string) (*domain.Medicine, error) {
	return s.medicineRepo.FindMedicineByID(ctx, medicineID)
}

// ListMedicines returns a page of the catalogue. Inactive items are excluded
// unless explicitly requested.
func (s *medicineService) ListMedicines(ctx context.Context, limit int, offset int, includeInactive bool) ([]domain.Medicine, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.medicineRepo.ListMedicines(ctx, limit, offset, includeInactive)
}

// UpdateMedicine applies partial catalogue updates. Stock quantity cannot be
// changed here; that path is AdjustStock.
func (s *medicineService) UpdateMedicine(ctx context.Context, medicineID string, req dto.UpdateMedicineRequest, actorID string) (*domain.Medicine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	medicine, err := s.medicineRepo.FindMedicineByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
		}
		medicine.Name = *req.Name
	}
	if req.GenericName != nil {
		medicine.GenericName = *req.GenericName
	}
	if req.Manufacturer != nil {
		medicine.Manufacturer = *req.Manufacturer
	}
	if req.Category != nil {
		medicine.Category = *req.Category
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
		}
		medicine.UnitPrice = *req.UnitPrice
	}
	if req.ReorderLevel != nil {
		if *req.ReorderLevel < 0 {
			return nil, fmt.Errorf("%w: reorder level must not be negative", apperrors.ErrValidation)
		}
		medicine.ReorderLevel = *req.ReorderLevel
	}
	if req.ExpiryDate != nil {
		medicine.ExpiryDate = req.ExpiryDate
	}

	medicine.LastUpdatedAt = time.Now().UTC()
	medicine.LastUpdatedBy = actorID

	if err := s.medicineRepo.UpdateMedicine(ctx, *medicine); err != nil {
		logger.Error("Failed to update medicine", slog.String("error", err.Error()), slog.String("medicine_id", medicineID))
		return nil, err
	}

	logger.Info("Medicine updated successfully", slog.String("medicine_id", medicineID))
	return medicine, nil
}

// DeactivateMedicine soft-deletes a catalogue item. Existing sales keep
// referencing it; it just stops being sellable.
func (s *medicineService) DeactivateMedicine(ctx context.Context, medicineID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.medicineRepo.DeactivateMedicine(ctx, medicineID, actorID, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate medicine", slog.String("error", err.Error()), slog.String("medicine_id", medicineID))
		return err
	}

	logger.Info("Medicine deactivated", slog.String("medicine_id", medicineID), slog.String("actor_id", actorID))
	return nil
}

// AdjustStock applies a manual stock adjustment (goods received, stocktake
// correction) under the same row-locking discipline sales use. A negative
// quantity is refused if it would take stock below zero.
func (s *medicineService) AdjustStock(ctx context.Context, medicineID string, req dto.AdjustStockRequest, actorID string) (*domain.Medicine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Quantity == 0 {
		return nil, fmt.Errorf("%w: adjustment quantity must not be zero", apperrors.ErrValidation)
	}

	err := retryOnConflict(ctx, logger, func() error {
		return s.adjustStockOnce(ctx, medicineID, req.Quantity, actorID)
	})
	if err != nil {
		logger.Error("Failed to adjust stock", slog.String("error", err.Error()), slog.String("medicine_id", medicineID))
		return nil, err
	}

	logger.Info("Stock adjusted",
		slog.String("medicine_id", medicineID),
		slog.Int64("quantity", req.Quantity),
		slog.String("reason", req.Reason),
		slog.String("actor_id", actorID))

	return s.medicineRepo.FindMedicineByID(ctx, medicineID)
}

func (s *medicineService) adjustStockOnce(ctx context.Context, medicineID string, quantity int64, actorID string) error {
	tx, err := s.medicineRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.medicineRepo.Rollback(ctx, tx)

	locked, err := s.medicineRepo.FindMedicinesByIDsForUpdate(ctx, tx, []string{medicineID})
	if err != nil {
		return err
	}
	if quantity < 0 {
		available := locked[medicineID].StockQuantity
		if available < -quantity {
			return &apperrors.InsufficientStockError{
				MedicineID: medicineID,
				Requested:  -quantity,
				Available:  available,
			}
		}
	}

	now := time.Now().UTC()
	deltas := map[string]int64{medicineID: quantity}
	if err := s.medicineRepo.ApplyStockDeltasInTx(ctx, tx, deltas, actorID, now); err != nil {
		return err
	}

	return s.medicineRepo.Commit(ctx, tx)
}
