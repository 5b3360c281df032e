package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pharmakeep/pharmacy_pos_app/internal/apperrors"
	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	portssvc "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/services"
	"github.com/pharmakeep/pharmacy_pos_app/internal/core/services"
	"github.com/pharmakeep/pharmacy_pos_app/internal/dto"
)

type MedicineServiceTestSuite struct {
	suite.Suite
	mockMedicineRepo *MockMedicineRepository
	service          portssvc.MedicineSvcFacade

	actorID string
}

func (suite *MedicineServiceTestSuite) SetupTest() {
	suite.mockMedicineRepo = new(MockMedicineRepository)
	suite.service = services.NewMedicineService(suite.mockMedicineRepo)
	suite.actorID = uuid.NewString()
}

func (suite *MedicineServiceTestSuite) TestCreateMedicine_Success() {
	ctx := context.Background()

	req := dto.CreateMedicineRequest{
		Name:         "Ibuprofen 400mg",
		GenericName:  "Ibuprofen",
		Category:     "Analgesic",
		UnitPrice:    decimal.RequireFromString("12.50"),
		InitialStock: 200,
		ReorderLevel: 20,
	}

	suite.mockMedicineRepo.On("SaveMedicine", ctx, mock.AnythingOfType("domain.Medicine")).Return(nil).Once()

	medicine, err := suite.service.CreateMedicine(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(medicine)
	suite.NotEmpty(medicine.MedicineID)
	suite.Equal(req.Name, medicine.Name)
	suite.Equal(int64(200), medicine.StockQuantity)
	suite.True(medicine.IsActive)
	suite.Equal(suite.actorID, medicine.CreatedBy)
	suite.mockMedicineRepo.AssertExpectations(suite.T())
}

func (suite *MedicineServiceTestSuite) TestCreateMedicine_NegativePrice() {
	ctx := context.Background()

	req := dto.CreateMedicineRequest{
		Name:      "Bad Price",
		UnitPrice: decimal.NewFromInt(-1),
	}

	_, err := suite.service.CreateMedicine(ctx, req, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockMedicineRepo.AssertNotCalled(suite.T(), "SaveMedicine", mock.Anything, mock.Anything)
}

func (suite *MedicineServiceTestSuite) TestUpdateMedicine_PartialUpdate() {
	ctx := context.Background()

	existing := &domain.Medicine{
		MedicineID:    uuid.NewString(),
		Name:          "Old Name",
		Category:      "Antibiotic",
		UnitPrice:     decimal.NewFromInt(80),
		StockQuantity: 30,
		IsActive:      true,
	}

	newName := "New Name"
	newPrice := decimal.NewFromInt(90)
	req := dto.UpdateMedicineRequest{Name: &newName, UnitPrice: &newPrice}

	suite.mockMedicineRepo.On("FindMedicineByID", ctx, existing.MedicineID).Return(existing, nil).Once()
	suite.mockMedicineRepo.On("UpdateMedicine", ctx, mock.MatchedBy(func(m domain.Medicine) bool {
		return m.Name == newName &&
			m.UnitPrice.Equal(newPrice) &&
			m.Category == "Antibiotic" && // untouched field survives
			m.LastUpdatedBy == suite.actorID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateMedicine(ctx, existing.MedicineID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockMedicineRepo.AssertExpectations(suite.T())
}

func (suite *MedicineServiceTestSuite) TestUpdateMedicine_NotFound() {
	ctx := context.Background()
	medicineID := uuid.NewString()

	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicineID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateMedicine(ctx, medicineID, dto.UpdateMedicineRequest{}, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MedicineServiceTestSuite) TestDeactivateMedicine() {
	ctx := context.Background()
	medicineID := uuid.NewString()

	suite.mockMedicineRepo.On("DeactivateMedicine", ctx, medicineID, suite.actorID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeactivateMedicine(ctx, medicineID, suite.actorID)

	suite.Require().NoError(err)
	suite.mockMedicineRepo.AssertExpectations(suite.T())
}

func (suite *MedicineServiceTestSuite) TestAdjustStock_Increase() {
	ctx := context.Background()

	medicine := domain.Medicine{
		MedicineID:    uuid.NewString(),
		Name:          "Cetirizine 10mg",
		StockQuantity: 10,
		IsActive:      true,
	}
	restocked := medicine
	restocked.StockQuantity = 60

	suite.mockMedicineRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockMedicineRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	suite.mockMedicineRepo.On("FindMedicinesByIDsForUpdate", ctx, mock.Anything, []string{medicine.MedicineID}).
		Return(map[string]domain.Medicine{medicine.MedicineID: medicine}, nil).Once()
	suite.mockMedicineRepo.On("ApplyStockDeltasInTx", ctx, mock.Anything,
		map[string]int64{medicine.MedicineID: 50},
		suite.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockMedicineRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockMedicineRepo.On("FindMedicineByID", ctx, medicine.MedicineID).Return(&restocked, nil).Once()

	result, err := suite.service.AdjustStock(ctx, medicine.MedicineID,
		dto.AdjustStockRequest{Quantity: 50, Reason: "goods received"}, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(int64(60), result.StockQuantity)
	suite.mockMedicineRepo.AssertExpectations(suite.T())
}

func (suite *MedicineServiceTestSuite) TestAdjustStock_InsufficientStock() {
	ctx := context.Background()

	medicine := domain.Medicine{
		MedicineID:    uuid.NewString(),
		Name:          "Cetirizine 10mg",
		StockQuantity: 10,
		IsActive:      true,
	}

	suite.mockMedicineRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockMedicineRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	suite.mockMedicineRepo.On("FindMedicinesByIDsForUpdate", ctx, mock.Anything, []string{medicine.MedicineID}).
		Return(map[string]domain.Medicine{medicine.MedicineID: medicine}, nil).Once()

	_, err := suite.service.AdjustStock(ctx, medicine.MedicineID,
		dto.AdjustStockRequest{Quantity: -25, Reason: "stocktake correction"}, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockMedicineRepo.AssertNotCalled(suite.T(), "ApplyStockDeltasInTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockMedicineRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *MedicineServiceTestSuite) TestAdjustStock_ZeroQuantity() {
	ctx := context.Background()

	_, err := suite.service.AdjustStock(ctx, uuid.NewString(),
		dto.AdjustStockRequest{Quantity: 0, Reason: "noop"}, suite.actorID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockMedicineRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *MedicineServiceTestSuite) TestListMedicines_NormalizesLimit() {
	ctx := context.Background()

	suite.mockMedicineRepo.On("ListMedicines", ctx, 50, 0, false).
		Return([]domain.Medicine{}, nil).Once()

	_, err := suite.service.ListMedicines(ctx, 0, -5, false)

	suite.Require().NoError(err)
	suite.mockMedicineRepo.AssertExpectations(suite.T())
}

func TestMedicineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MedicineServiceTestSuite))
}
