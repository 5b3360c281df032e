package models

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

// PaymentMethod records how the customer paid.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "CASH"
	PaymentCard      PaymentMethod = "CARD"
	PaymentInsurance PaymentMethod = "INSURANCE"
	PaymentCredit    PaymentMethod = "CREDIT"
)

// Sale is the persistence model for the sales table. Items and timeline
// entries live in their own tables and are loaded separately.
type Sale struct {
	SaleID         string          `json:"saleID"`
	SaleNumber     string          `json:"saleNumber"`
	PatientID      *string         `json:"patientID"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	Status         SaleStatus      `json:"status"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	Notes          string          `json:"notes"`
	AuditFields
}

// SaleItem is the persistence model for the sale_items table.
type SaleItem struct {
	SaleItemID         string          `json:"saleItemID"`
	SaleID             string          `json:"saleID"`
	MedicineID         string          `json:"medicineID"`
	Quantity           int64           `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
}
