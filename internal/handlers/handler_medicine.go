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

// medicineHandler handles HTTP requests related to the medicine catalogue.
type medicineHandler struct {
	medicineService portssvc.MedicineSvcFacade
}

// newMedicineHandler creates a new medicineHandler.
func newMedicineHandler(medicineService portssvc.MedicineSvcFacade) *medicineHandler {
	return &medicineHandler{
		medicineService: medicineService,
	}
}

// createMedicine godoc
// @Summary Create a medicine
// @Description Registers a new catalogue item with its opening stock
// @Tags medicines
// @Accept json
// @Produce json
// @Param medicine body dto.CreateMedicineRequest true "Medicine details"
// @Success 201 {object} dto.MedicineResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to create medicine"
// @Router /medicines [post]
func (h *medicineHandler) createMedicine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createMedicine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + middleware.ActorHeader + " header"})
		return
	}

	medicine, err := h.medicineService.CreateMedicine(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create medicine")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMedicineResponse(medicine))
}

// getMedicine godoc
// @Summary Get a medicine
// @Description Retrieves a catalogue item by its ID
// @Tags medicines
// @Produce json
// @Param medicineID path string true "Medicine ID"
// @Success 200 {object} dto.MedicineResponse
// @Failure 404 {object} map[string]string "Medicine not found"
// @Router /medicines/{medicineID} [get]
func (h *medicineHandler) getMedicine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	medicineID := c.Param("medicineID")

	medicine, err := h.medicineService.GetMedicineByID(c.Request.Context(), medicineID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve medicine")
		return
	}

	c.JSON(http.StatusOK, dto.ToMedicineResponse(medicine))
}

// listMedicines godoc
// @Summary List medicines
// @Description Retrieves a paginated list of catalogue items
// @Tags medicines
// @Produce json
// @Param limit query int false "Max results (default 50)"
// @Param offset query int false "Offset"
// @Param includeInactive query bool false "Include deactivated medicines"
// @Success 200 {object} dto.ListMedicinesResponse
// @Router /medicines [get]
func (h *medicineHandler) listMedicines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("includeInactive", "false"))

	medicines, err := h.medicineService.ListMedicines(c.Request.Context(), limit, offset, includeInactive)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list medicines")
		return
	}

	c.JSON(http.StatusOK, dto.ListMedicinesResponse{Medicines: dto.ToMedicineResponses(medicines)})
}

// updateMedicine godoc
// @Summary Update a medicine
// @Description Applies partial updates to catalogue details (never stock)
// @Tags medicines
// @Accept json
// @Produce json
// @Param medicineID path string true "Medicine ID"
// @Param medicine body dto.UpdateMedicineRequest true "Fields to update"
// @Success 200 {object} dto.MedicineResponse
// @Failure 404 {object} map[string]string "Medicine not found"
// @Router /medicines/{medicineID} [put]
func (h *medicineHandler) updateMedicine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	medicineID := c.Param("medicineID")

	var req dto.UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateMedicine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + middleware.ActorHeader + " header"})
		return
	}

	medicine, err := h.medicineService.UpdateMedicine(c.Request.Context(), medicineID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update medicine")
		return
	}

	c.JSON(http.StatusOK, dto.ToMedicineResponse(medicine))
}

// deactivateMedicine godoc
// @Summary Deactivate a medicine
// @Description Soft-deletes a catalogue item; existing sales keep referencing it
// @Tags medicines
// @Produce json
// @Param medicineID path string true "Medicine ID"
// @Success 204 "Deactivated"
// @Failure 404 {object} map[string]string "Medicine not found"
// @Router /medicines/{medicineID} [delete]
func (h *medicineHandler) deactivateMedicine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	medicineID := c.Param("medicineID")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + middleware.ActorHeader + " header"})
		return
	}

	if err := h.medicineService.DeactivateMedicine(c.Request.Context(), medicineID, actorID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate medicine")
		return
	}

	c.Status(http.StatusNoContent)
}

// adjustStock godoc
// @Summary Adjust stock manually
// @Description Applies an audited manual stock adjustment (restock or correction)
// @Tags medicines
// @Accept json
// @Produce json
// @Param medicineID path string true "Medicine ID"
// @Param adjustment body dto.AdjustStockRequest true "Signed quantity and reason"
// @Success 200 {object} dto.MedicineResponse
// @Failure 404 {object} map[string]string "Medicine not found"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Router /medicines/{medicineID}/stock-adjustments [post]
func (h *medicineHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	medicineID := c.Param("medicineID")

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for adjustStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + middleware.ActorHeader + " header"})
		return
	}

	medicine, err := h.medicineService.AdjustStock(c.Request.Context(), medicineID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to adjust stock")
		return
	}

	c.JSON(http.StatusOK, dto.ToMedicineResponse(medicine))
}

// RegisterMedicineRoutes registers medicine specific routes
func RegisterMedicineRoutes(group *gin.RouterGroup, medicineService portssvc.MedicineSvcFacade) {
	handler := newMedicineHandler(medicineService)

	medicines := group.Group("/medicines")
	{
		medicines.POST("", handler.createMedicine)
		medicines.GET("", handler.listMedicines)
		medicines.GET("/:medicineID", handler.getMedicine)
		medicines.PUT("/:medicineID", handler.updateMedicine)
		medicines.DELETE("/:medicineID", handler.deactivateMedicine)
		medicines.POST("/:medicineID/stock-adjustments", handler.adjustStock)
	}
}
