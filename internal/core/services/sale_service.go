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
	"github.com/pharmakeep/pharmacy_pos_app/internal/utils/pricing"
)

// saleService provides the checkout, void and read operations for sales.
type saleService struct {
	saleRepo     portsrepo.SaleRepositoryWithTx
	medicineRepo portsrepo.MedicineRepositoryWithTx
	taxBase      pricing.TaxBase
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo portsrepo.SaleRepositoryWithTx, medicineRepo portsrepo.MedicineRepositoryWithTx, taxBase pricing.TaxBase) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:     saleRepo,
		medicineRepo: medicineRepo,
		taxBase:      taxBase,
	}
}

// Ensure saleService implements the portssvc.SaleSvcFacade interface
var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CreateSale validates the cart against the catalogue, prices it, and
// persists the sale together with its stock decrements as one transaction.
// The returned sale carries the assigned sale number, items and timeline.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorActorID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	paymentMethod := domain.PaymentMethod(req.PaymentMethod)
	if !paymentMethod.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", apperrors.ErrValidation)
	}

	// Resolve the cart against the catalogue. Prices are snapshotted from
	// the catalogue here, never taken from the request.
	medicineIDs := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		medicineIDs = append(medicineIDs, item.MedicineID)
	}
	medicines, err := s.medicineRepo.FindMedicinesByIDs(ctx, medicineIDs)
	if err != nil {
		logger.Error("Failed to fetch medicines for sale creation", slog.String("error", err.Error()))
		return nil, err
	}

	lines := make([]pricing.Line, len(req.Items))
	for i, item := range req.Items {
		medicine, ok := medicines[item.MedicineID]
		if !ok {
			return nil, fmt.Errorf("%w: medicine %s", apperrors.ErrNotFound, item.MedicineID)
		}
		if !medicine.IsActive {
			return nil, fmt.Errorf("%w: medicine %s is inactive", apperrors.ErrValidation, item.MedicineID)
		}
		lines[i] = pricing.Line{
			UnitPrice:          medicine.UnitPrice,
			Quantity:           item.Quantity,
			DiscountPercentage: item.DiscountPercentage,
		}
	}

	orderDiscount := pricing.OrderDiscount{
		Type:  domain.DiscountType(req.Discount.Type),
		Value: req.Discount.Value,
	}
	result, err := pricing.Calculate(lines, orderDiscount, req.TaxRate, s.taxBase)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sale := domain.Sale{
		SaleID:         uuid.NewString(),
		PatientID:      req.PatientID,
		PaymentMethod:  paymentMethod,
		Status:         domain.SaleCompleted,
		Subtotal:       result.Subtotal,
		DiscountAmount: result.DiscountAmount,
		TaxAmount:      result.TaxAmount,
		GrandTotal:     result.GrandTotal,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorActorID,
		},
	}

	items := make([]domain.SaleItem, len(req.Items))
	stockDeltas := make(map[string]int64, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.SaleItem{
			SaleItemID:         uuid.NewString(),
			SaleID:             sale.SaleID,
			MedicineID:         item.MedicineID,
			Quantity:           item.Quantity,
			UnitPrice:          medicines[item.MedicineID].UnitPrice,
			DiscountPercentage: item.DiscountPercentage,
			TotalPrice:         result.LineTotals[i],
		}
		// A medicine appearing on multiple lines is decremented once by
		// the combined quantity.
		stockDeltas[item.MedicineID] -= item.Quantity
	}

	entry := domain.TimelineEntry{
		EntryID:   uuid.NewString(),
		SaleID:    sale.SaleID,
		Action:    domain.TimelineCreated,
		Actor:     creatorActorID,
		CreatedAt: now,
	}

	var saleNumber string
	err = retryOnConflict(ctx, logger, func() error {
		var saveErr error
		saleNumber, saveErr = s.saleRepo.SaveSale(ctx, sale, items, entry, stockDeltas)
		return saveErr
	})
	if err != nil {
		logger.Error("Failed to save sale", slog.String("error", err.Error()), slog.String("sale_id", sale.SaleID))
		return nil, err
	}

	sale.SaleNumber = saleNumber
	sale.Items = items
	sale.Timeline = []domain.TimelineEntry{entry}

	logger.Info("Sale created successfully",
		slog.String("sale_id", sale.SaleID),
		slog.String("sale_number", saleNumber),
		slog.String("grand_total", sale.GrandTotal.String()))

	return &sale, nil
}

// VoidSale restores the sale's stock and moves it to CANCELLED, or REFUNDED
// when req.Refund is set. Voiding a sale that is already terminal fails with
// ErrInvalidTransition, so repeating a void cannot restore stock twice.
func (s *saleService) VoidSale(ctx context.Context, saleID string, req dto.VoidSaleRequest, actorID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Reason == "" {
		return nil, fmt.Errorf("%w: a void reason is required", apperrors.ErrValidation)
	}

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	newStatus := domain.SaleCancelled
	if req.Refund {
		newStatus = domain.SaleRefunded
	}
	if !sale.Status.IsVoidable() || !sale.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: sale in status %s cannot be voided", apperrors.ErrInvalidTransition, sale.Status)
	}

	items, err := s.saleRepo.FindSaleItemsBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	// Compensating restore: every quantity the sale took out goes back in.
	stockDeltas := make(map[string]int64, len(items))
	for _, item := range items {
		stockDeltas[item.MedicineID] += item.Quantity
	}

	now := time.Now().UTC()
	sale.LastUpdatedAt = now
	sale.LastUpdatedBy = actorID

	entry := domain.TimelineEntry{
		EntryID:   uuid.NewString(),
		SaleID:    saleID,
		Action:    domain.TimelineVoided,
		Reason:    req.Reason,
		Actor:     actorID,
		CreatedAt: now,
	}

	// No retry here: a conflict means another actor transitioned the sale
	// first, and blindly redoing the void would be wrong. The caller gets
	// the conflict and can re-read the sale.
	if err := s.saleRepo.VoidSale(ctx, *sale, newStatus, entry, stockDeltas); err != nil {
		logger.Error("Failed to void sale", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		return nil, err
	}

	logger.Info("Sale voided",
		slog.String("sale_id", saleID),
		slog.String("new_status", string(newStatus)),
		slog.String("actor_id", actorID))

	return s.GetSaleByID(ctx, saleID)
}

// GetSaleByID returns the sale with its items and timeline loaded. Totals
// are returned exactly as stored at creation time.
func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	items, err := s.saleRepo.FindSaleItemsBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	timeline, err := s.saleRepo.FindTimelineBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	sale.Timeline = timeline

	return sale, nil
}

// ListSales returns a token-paginated page of sale headers, newest first,
// optionally filtered by status.
func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	var status *domain.SaleStatus
	if params.Status != nil && *params.Status != "" {
		candidate := domain.SaleStatus(*params.Status)
		switch candidate {
		case domain.SalePending, domain.SaleCompleted, domain.SaleCancelled, domain.SaleRefunded:
			status = &candidate
		default:
			return nil, fmt.Errorf("%w: unknown sale status %q", apperrors.ErrValidation, *params.Status)
		}
	}

	sales, nextToken, err := s.saleRepo.ListSales(ctx, limit, params.NextToken, status)
	if err != nil {
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		return nil, err
	}

	responses := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		responses[i] = dto.ToSaleResponse(&sales[i])
	}

	return &dto.ListSalesResponse{
		Sales:     responses,
		NextToken: nextToken,
	}, nil
}

// GetSaleTimeline returns the audit timeline for a sale in chronological
// order. The sale must exist.
func (s *saleService) GetSaleTimeline(ctx context.Context, saleID string) ([]domain.TimelineEntry, error) {
	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, err
	}
	return s.saleRepo.FindTimelineBySaleID(ctx, saleID)
}
