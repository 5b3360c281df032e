package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine is the persistence model for the medicines table.
type Medicine struct {
	MedicineID    string          `json:"medicineID"`
	Name          string          `json:"name"`
	GenericName   string          `json:"genericName"`
	Manufacturer  string          `json:"manufacturer"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	StockQuantity int64           `json:"stockQuantity"` // CHECK (stock_quantity >= 0) in the schema
	ReorderLevel  int64           `json:"reorderLevel"`
	ExpiryDate    *time.Time      `json:"expiryDate"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
