package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pharmakeep/pharmacy_pos_app/internal/apperrors"
)

// bindingError formats request binding failures, surfacing field-level
// validation messages when the error came from struct validation.
func bindingError(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fe.Field()+" failed on '"+fe.Tag()+"'")
		}
		return gin.H{"error": "Invalid request format", "details": details}
	}
	return gin.H{"error": "Invalid request format"}
}

// respondServiceError translates service-layer errors into HTTP responses.
// Validation problems carry their message to the client; internal failures
// return a generic message and are logged with detail.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var stockErr *apperrors.InsufficientStockError
	if errors.As(err, &stockErr) {
		logger.Warn("Insufficient stock", slog.String("medicine_id", stockErr.MedicineID))
		c.JSON(http.StatusConflict, gin.H{
			"error":      "insufficient stock",
			"medicineID": stockErr.MedicineID,
			"requested":  stockErr.Requested,
			"available":  stockErr.Available,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		logger.Warn("Invalid state transition", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Concurrency conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "resource was modified concurrently, please retry"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
