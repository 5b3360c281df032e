package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pharmakeep/pharmacy_pos_app/internal/apperrors"
	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	portssvc "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/services"
	"github.com/pharmakeep/pharmacy_pos_app/internal/dto"
	"github.com/pharmakeep/pharmacy_pos_app/internal/handlers"
	"github.com/pharmakeep/pharmacy_pos_app/internal/middleware"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

func (m *MockSaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorActorID string) (*domain.Sale, error) {
	args := m.Called(ctx, req, creatorActorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) VoidSale(ctx context.Context, saleID string, req dto.VoidSaleRequest, actorID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSalesResponse), args.Error(1)
}

func (m *MockSaleService) GetSaleTimeline(ctx context.Context, saleID string) ([]domain.TimelineEntry, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimelineEntry), args.Error(1)
}

type SaleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockSaleService *MockSaleService
	actorID         string
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockSaleService = new(MockSaleService)
	suite.actorID = uuid.NewString()

	v1 := suite.router.Group("/api/v1", middleware.ActorMiddleware(true))
	handlers.RegisterSaleRoutes(v1, suite.mockSaleService)
}

func (suite *SaleHandlerTestSuite) performRequest(method, path string, body any, withActor bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if withActor {
		req.Header.Set(middleware.ActorHeader, suite.actorID)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SaleHandlerTestSuite) sampleSale() *domain.Sale {
	now := time.Now().UTC()
	return &domain.Sale{
		SaleID:         uuid.NewString(),
		SaleNumber:     "SALE-000001",
		PaymentMethod:  domain.PaymentCash,
		Status:         domain.SaleCompleted,
		Subtotal:       decimal.NewFromInt(200),
		DiscountAmount: decimal.NewFromInt(30),
		TaxAmount:      decimal.NewFromInt(10),
		GrandTotal:     decimal.NewFromInt(180),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     suite.actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: suite.actorID,
		},
	}
}

func (suite *SaleHandlerTestSuite) TestCreateSale_Success() {
	sale := suite.sampleSale()

	suite.mockSaleService.On("CreateSale", mock.Anything, mock.AnythingOfType("dto.CreateSaleRequest"), suite.actorID).
		Return(sale, nil).Once()

	body := dto.CreateSaleRequest{
		PaymentMethod: "CASH",
		Items:         []dto.SaleItemRequest{{MedicineID: uuid.NewString(), Quantity: 2}},
	}
	w := suite.performRequest(http.MethodPost, "/api/v1/sales", body, true)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.SaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(sale.SaleID, resp.SaleID)
	suite.Equal("SALE-000001", resp.SaleNumber)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCreateSale_MissingActorHeader() {
	body := dto.CreateSaleRequest{
		PaymentMethod: "CASH",
		Items:         []dto.SaleItemRequest{{MedicineID: uuid.NewString(), Quantity: 1}},
	}
	w := suite.performRequest(http.MethodPost, "/api/v1/sales", body, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestCreateSale_EmptyCartRejectedByBinding() {
	body := dto.CreateSaleRequest{
		PaymentMethod: "CASH",
		Items:         []dto.SaleItemRequest{},
	}
	w := suite.performRequest(http.MethodPost, "/api/v1/sales", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestCreateSale_InsufficientStockMapsToConflict() {
	stockErr := &apperrors.InsufficientStockError{
		MedicineID: uuid.NewString(),
		Requested:  10,
		Available:  3,
	}
	suite.mockSaleService.On("CreateSale", mock.Anything, mock.Anything, suite.actorID).
		Return(nil, stockErr).Once()

	body := dto.CreateSaleRequest{
		PaymentMethod: "CASH",
		Items:         []dto.SaleItemRequest{{MedicineID: stockErr.MedicineID, Quantity: 10}},
	}
	w := suite.performRequest(http.MethodPost, "/api/v1/sales", body, true)

	suite.Equal(http.StatusConflict, w.Code)

	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(stockErr.MedicineID, resp["medicineID"])
	suite.Equal(float64(3), resp["available"])
}

func (suite *SaleHandlerTestSuite) TestGetSale_NotFound() {
	saleID := uuid.NewString()
	suite.mockSaleService.On("GetSaleByID", mock.Anything, saleID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/sales/"+saleID, nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SaleHandlerTestSuite) TestVoidSale_InvalidTransitionMapsToConflict() {
	saleID := uuid.NewString()
	suite.mockSaleService.On("VoidSale", mock.Anything, saleID, mock.AnythingOfType("dto.VoidSaleRequest"), suite.actorID).
		Return(nil, apperrors.ErrInvalidTransition).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/sales/"+saleID+"/void",
		dto.VoidSaleRequest{Reason: "too late"}, true)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *SaleHandlerTestSuite) TestVoidSale_MissingReasonRejectedByBinding() {
	saleID := uuid.NewString()

	w := suite.performRequest(http.MethodPost, "/api/v1/sales/"+saleID+"/void",
		map[string]any{"refund": true}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "VoidSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestListSales_PassesQueryParams() {
	status := "COMPLETED"
	token := "abc123"
	expectedParams := dto.ListSalesParams{Limit: 25, NextToken: &token, Status: &status}

	suite.mockSaleService.On("ListSales", mock.Anything, mock.MatchedBy(func(p dto.ListSalesParams) bool {
		return p.Limit == expectedParams.Limit &&
			p.NextToken != nil && *p.NextToken == token &&
			p.Status != nil && *p.Status == status
	})).Return(&dto.ListSalesResponse{Sales: []dto.SaleResponse{}}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/sales?limit=25&nextToken=abc123&status=COMPLETED", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestGetSaleTimeline_Success() {
	saleID := uuid.NewString()
	timeline := []domain.TimelineEntry{
		{EntryID: uuid.NewString(), SaleID: saleID, Action: domain.TimelineCreated, Actor: suite.actorID, CreatedAt: time.Now().UTC()},
		{EntryID: uuid.NewString(), SaleID: saleID, Action: domain.TimelineVoided, Reason: "damaged stock", Actor: suite.actorID, CreatedAt: time.Now().UTC()},
	}
	suite.mockSaleService.On("GetSaleTimeline", mock.Anything, saleID).Return(timeline, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/sales/"+saleID+"/timeline", nil, true)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.TimelineEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("CREATED", resp[0].Action)
	suite.Equal("VOIDED", resp[1].Action)
	suite.Equal("damaged stock", resp[1].Reason)
}

func TestSaleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}
