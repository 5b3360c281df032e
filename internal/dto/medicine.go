package dto

import (
	"time"

	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMedicineRequest defines the payload for creating a medicine.
type CreateMedicineRequest struct {
	Name          string          `json:"name" binding:"required"`
	GenericName   string          `json:"genericName"`
	Manufacturer  string          `json:"manufacturer"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unitPrice" binding:"required"`
	InitialStock  int64           `json:"initialStock" binding:"gte=0"`
	ReorderLevel  int64           `json:"reorderLevel" binding:"gte=0"`
	ExpiryDate    *time.Time      `json:"expiryDate"`
}

// UpdateMedicineRequest defines the payload for updating catalogue details.
// Stock quantity is absent on purpose; it only moves through the ledger.
type UpdateMedicineRequest struct {
	Name         *string          `json:"name"`
	GenericName  *string          `json:"genericName"`
	Manufacturer *string          `json:"manufacturer"`
	Category     *string          `json:"category"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	ReorderLevel *int64           `json:"reorderLevel"`
	ExpiryDate   *time.Time       `json:"expiryDate"`
}

// AdjustStockRequest defines a manual, audited stock adjustment (goods
// received, stocktake correction). Positive quantity restores stock,
// negative commits it, through the same ledger discipline sales use.
type AdjustStockRequest struct {
	Quantity int64  `json:"quantity" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// MedicineResponse defines the data returned for a medicine.
type MedicineResponse struct {
	MedicineID    string          `json:"medicineID"`
	Name          string          `json:"name"`
	GenericName   string          `json:"genericName,omitempty"`
	Manufacturer  string          `json:"manufacturer,omitempty"`
	Category      string          `json:"category,omitempty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	StockQuantity int64           `json:"stockQuantity"`
	ReorderLevel  int64           `json:"reorderLevel"`
	ExpiryDate    *time.Time      `json:"expiryDate,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListMedicinesResponse wraps a page of medicines.
type ListMedicinesResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
}

// ToMedicineResponse converts a domain.Medicine to MedicineResponse DTO.
func ToMedicineResponse(m *domain.Medicine) MedicineResponse {
	return MedicineResponse{
		MedicineID:    m.MedicineID,
		Name:          m.Name,
		GenericName:   m.GenericName,
		Manufacturer:  m.Manufacturer,
		Category:      m.Category,
		UnitPrice:     m.UnitPrice.Round(2),
		StockQuantity: m.StockQuantity,
		ReorderLevel:  m.ReorderLevel,
		ExpiryDate:    m.ExpiryDate,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
	}
}

// ToMedicineResponses converts a slice of domain.Medicine to DTOs.
func ToMedicineResponses(ms []domain.Medicine) []MedicineResponse {
	responses := make([]MedicineResponse, len(ms))
	for i := range ms {
		responses[i] = ToMedicineResponse(&ms[i])
	}
	return responses
}
