package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine represents a sellable catalogue item with its on-hand stock.
// StockQuantity is never mutated directly by callers; every change goes
// through the inventory ledger operations so the non-negative invariant is
// enforced inside a database transaction.
type Medicine struct {
	MedicineID    string          `json:"medicineID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	GenericName   string          `json:"genericName"`  // Nullable display attribute
	Manufacturer  string          `json:"manufacturer"` // Nullable display attribute
	Category      string          `json:"category"`     // Nullable display attribute
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	StockQuantity int64           `json:"stockQuantity"` // Invariant: always >= 0
	ReorderLevel  int64           `json:"reorderLevel"`  // Threshold for low-stock reporting
	ExpiryDate    *time.Time      `json:"expiryDate"`    // Nullable
	IsActive      bool            `json:"isActive"`      // Soft delete flag
	AuditFields
}

// StockChange is one (medicine, quantity) pair passed to the inventory
// ledger. Quantity is always positive; the operation decides the direction.
type StockChange struct {
	MedicineID string
	Quantity   int64
}
