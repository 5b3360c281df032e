package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pharmakeep/pharmacy_pos_app/internal/core/ports/services"
	"github.com/pharmakeep/pharmacy_pos_app/internal/dto"
	"github.com/pharmakeep/pharmacy_pos_app/internal/middleware"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(saleService portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{
		saleService: saleService,
	}
}

// createSale godoc
// @Summary Create a sale
// @Description Prices the cart, commits stock and persists the sale atomically
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Cart, payment method and discounts"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Unknown medicine"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + middleware.ActorHeader + " header"})
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create sale")
		return
	}

	logger.Info("Sale created", slog.String("sale_id", sale.SaleID), slog.String("sale_number", sale.SaleNumber))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale
// @Description Retrieves a sale with its items and audit timeline
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Router /sales/{saleID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve sale")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Retrieves a token-paginated list of sales, newest first
// @Tags sales
// @Produce json
// @Param limit query int false "Max results (default 50)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Param status query string false "Filter by status (PENDING, COMPLETED, CANCELLED, REFUNDED)"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} map[string]string "Invalid status or token"
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	params := dto.ListSalesParams{Limit: limit}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}
	if status := c.Query("status"); status != "" {
		params.Status = &status
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list sales")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// voidSale godoc
// @Summary Void a sale
// @Description Restores stock and moves the sale to CANCELLED, or REFUNDED when refund is set
// @Tags sales
// @Accept json
// @Produce json
// @Param saleID path string true "Sale ID"
// @Param void body dto.VoidSaleRequest true "Reason and refund flag"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 409 {object} map[string]string "Sale is not voidable"
// @Router /sales/{saleID}/void [post]
func (h *saleHandler) voidSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	var req dto.VoidSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for voidSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + middleware.ActorHeader + " header"})
		return
	}

	sale, err := h.saleService.VoidSale(c.Request.Context(), saleID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to void sale")
		return
	}

	logger.Info("Sale voided", slog.String("sale_id", saleID), slog.String("status", string(sale.Status)))
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// getSaleTimeline godoc
// @Summary Get a sale's audit timeline
// @Description Retrieves the append-only timeline entries for a sale in chronological order
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {array} dto.TimelineEntryResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Router /sales/{saleID}/timeline [get]
func (h *saleHandler) getSaleTimeline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	timeline, err := h.saleService.GetSaleTimeline(c.Request.Context(), saleID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve sale timeline")
		return
	}

	responses := make([]dto.TimelineEntryResponse, len(timeline))
	for i := range timeline {
		responses[i] = dto.ToTimelineEntryResponse(&timeline[i])
	}
	c.JSON(http.StatusOK, responses)
}

// RegisterSaleRoutes registers sale specific routes
func RegisterSaleRoutes(group *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	handler := newSaleHandler(saleService)

	sales := group.Group("/sales")
	{
		sales.POST("", handler.createSale)
		sales.GET("", handler.listSales)
		sales.GET("/:saleID", handler.getSale)
		sales.POST("/:saleID/void", handler.voidSale)
		sales.GET("/:saleID/timeline", handler.getSaleTimeline)
	}
}
