package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	portsrepo "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/repositories"
)

// --- Mock MedicineRepository ---
type MockMedicineRepository struct {
	mock.Mock
}

// Ensure MockMedicineRepository implements portsrepo.MedicineRepositoryWithTx
var _ portsrepo.MedicineRepositoryWithTx = (*MockMedicineRepository)(nil)

func (m *MockMedicineRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockMedicineRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMedicineRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMedicineRepository) SaveMedicine(ctx context.Context, medicine domain.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockMedicineRepository) UpdateMedicine(ctx context.Context, medicine domain.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockMedicineRepository) DeactivateMedicine(ctx context.Context, medicineID string, actorID string, now time.Time) error {
	args := m.Called(ctx, medicineID, actorID, now)
	return args.Error(0)
}

func (m *MockMedicineRepository) FindMedicineByID(ctx context.Context, medicineID string) (*domain.Medicine, error) {
	args := m.Called(ctx, medicineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) FindMedicinesByIDs(ctx context.Context, medicineIDs []string) (map[string]domain.Medicine, error) {
	args := m.Called(ctx, medicineIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) ListMedicines(ctx context.Context, limit int, offset int, includeInactive bool) ([]domain.Medicine, error) {
	args := m.Called(ctx, limit, offset, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) FindMedicinesByIDsForUpdate(ctx context.Context, tx pgx.Tx, medicineIDs []string) (map[string]domain.Medicine, error) {
	args := m.Called(ctx, tx, medicineIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) ApplyStockDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]int64, actorID string, now time.Time) error {
	args := m.Called(ctx, tx, deltas, actorID, now)
	return args.Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

// Ensure MockSaleRepository implements portsrepo.SaleRepositoryWithTx
var _ portsrepo.SaleRepositoryWithTx = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSaleRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSaleRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, entry domain.TimelineEntry, stockDeltas map[string]int64) (string, error) {
	args := m.Called(ctx, sale, items, entry, stockDeltas)
	return args.String(0), args.Error(1)
}

func (m *MockSaleRepository) VoidSale(ctx context.Context, sale domain.Sale, newStatus domain.SaleStatus, entry domain.TimelineEntry, stockDeltas map[string]int64) error {
	args := m.Called(ctx, sale, newStatus, entry, stockDeltas)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindSaleItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleItem), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string, status *domain.SaleStatus) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, limit, nextToken, status)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Sale), returnedNextToken, args.Error(2)
}

func (m *MockSaleRepository) FindTimelineBySaleID(ctx context.Context, saleID string) ([]domain.TimelineEntry, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimelineEntry), args.Error(1)
}
