package domain

import (
	"github.com/shopspring/decimal"
)

// SaleStatus indicates the lifecycle state of a sale.
type SaleStatus string

const (
	SalePending   SaleStatus = "PENDING"
	SaleCompleted SaleStatus = "COMPLETED"
	SaleCancelled SaleStatus = "CANCELLED"
	SaleRefunded  SaleStatus = "REFUNDED"
)

// CanTransitionTo reports whether the status state machine allows moving
// from the current status to the target one. A sale never returns to
// PENDING and the cancelled/refunded states are terminal.
func (s SaleStatus) CanTransitionTo(target SaleStatus) bool {
	switch s {
	case SalePending:
		return target == SaleCompleted || target == SaleCancelled || target == SaleRefunded
	case SaleCompleted:
		return target == SaleCancelled || target == SaleRefunded
	default:
		return false
	}
}

// IsVoidable reports whether a sale in this status may still be voided.
func (s SaleStatus) IsVoidable() bool {
	return s == SalePending || s == SaleCompleted
}

// PaymentMethod records how the customer paid. Payment is recorded, not
// processed.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "CASH"
	PaymentCard      PaymentMethod = "CARD"
	PaymentInsurance PaymentMethod = "INSURANCE"
	PaymentCredit    PaymentMethod = "CREDIT"
)

// IsValid reports whether the payment method is one of the known values.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentInsurance, PaymentCredit:
		return true
	}
	return false
}

// DiscountType distinguishes an order-level percentage discount from a
// fixed amount discount.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// Sale is the durable financial record of selling one or more medicines.
// Totals are computed once at creation time and never recomputed on read.
// Invariant: GrandTotal = max(0, Subtotal - DiscountAmount) + TaxAmount.
type Sale struct {
	SaleID         string          `json:"saleID"`     // Primary Key (UUID)
	SaleNumber     string          `json:"saleNumber"` // Human-readable, monotonically increasing
	PatientID      *string         `json:"patientID"`  // Nullable reference, not validated here
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	Status         SaleStatus      `json:"status"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	Notes          string          `json:"notes"`
	AuditFields

	// Owned exclusively by the sale; loaded alongside it.
	Items    []SaleItem      `json:"items,omitempty"`
	Timeline []TimelineEntry `json:"timeline,omitempty"`
}

// SaleItem is one line of a sale, snapshotting price and discount at sale
// time. Immutable once the sale is committed.
type SaleItem struct {
	SaleItemID         string          `json:"saleItemID"` // Primary Key (UUID)
	SaleID             string          `json:"saleID"`     // FK -> Sale.SaleID
	MedicineID         string          `json:"medicineID"` // FK -> Medicine.MedicineID
	Quantity           int64           `json:"quantity"`   // Always > 0
	UnitPrice          decimal.Decimal `json:"unitPrice"`  // Snapshot at sale time
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	TotalPrice         decimal.Decimal `json:"totalPrice"` // UnitPrice * Quantity
}

// StockChanges returns the (medicine, quantity) pairs this sale moves
// through the inventory ledger.
func (s *Sale) StockChanges() []StockChange {
	changes := make([]StockChange, len(s.Items))
	for i, item := range s.Items {
		changes[i] = StockChange{MedicineID: item.MedicineID, Quantity: item.Quantity}
	}
	return changes
}
