package dto

import (
	"time"

	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one cart line submitted by a collaborator. Medicine
// resolution and stock checks happen in the core; the caller only names the
// medicine and quantity.
type SaleItemRequest struct {
	MedicineID         string          `json:"medicineID" binding:"required"`
	Quantity           int64           `json:"quantity" binding:"required,gt=0"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
}

// DiscountRequest is the optional order-level discount.
type DiscountRequest struct {
	Type  string          `json:"type" binding:"omitempty,oneof=PERCENTAGE FIXED"`
	Value decimal.Decimal `json:"value"`
}

// CreateSaleRequest defines the payload for creating a sale.
type CreateSaleRequest struct {
	PatientID     *string           `json:"patientID"`
	PaymentMethod string            `json:"paymentMethod" binding:"required,oneof=CASH CARD INSURANCE CREDIT"`
	Discount      DiscountRequest   `json:"discount"`
	TaxRate       decimal.Decimal   `json:"taxRate"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes         string            `json:"notes"`
}

// VoidSaleRequest defines the payload for voiding a sale. Refund selects
// the REFUNDED terminal status instead of CANCELLED; the compensating stock
// restore is identical.
type VoidSaleRequest struct {
	Reason string `json:"reason" binding:"required"`
	Refund bool   `json:"refund"`
}

// ListSalesParams holds parameters for listing sales.
type ListSalesParams struct {
	Limit     int
	NextToken *string
	Status    *string
}

// SaleItemResponse defines the data returned for one sale line.
type SaleItemResponse struct {
	SaleItemID         string          `json:"saleItemID"`
	MedicineID         string          `json:"medicineID"`
	Quantity           int64           `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
}

// TimelineEntryResponse defines the data returned for one timeline entry.
type TimelineEntryResponse struct {
	Action    string    `json:"action"`
	Reason    string    `json:"reason,omitempty"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// SaleResponse defines the data returned for a sale. Monetary values are
// rounded to 2 decimals here, at the display boundary.
type SaleResponse struct {
	SaleID         string                  `json:"saleID"`
	SaleNumber     string                  `json:"saleNumber"`
	PatientID      *string                 `json:"patientID,omitempty"`
	PaymentMethod  string                  `json:"paymentMethod"`
	Status         string                  `json:"status"`
	Subtotal       decimal.Decimal         `json:"subtotal"`
	DiscountAmount decimal.Decimal         `json:"discountAmount"`
	TaxAmount      decimal.Decimal         `json:"taxAmount"`
	GrandTotal     decimal.Decimal         `json:"grandTotal"`
	Notes          string                  `json:"notes,omitempty"`
	Items          []SaleItemResponse      `json:"items,omitempty"`
	Timeline       []TimelineEntryResponse `json:"timeline,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
	CreatedBy      string                  `json:"createdBy"`
}

// ListSalesResponse wraps a page of sales with the pagination token.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToSaleItemResponse converts a domain.SaleItem to SaleItemResponse DTO.
func ToSaleItemResponse(item *domain.SaleItem) SaleItemResponse {
	return SaleItemResponse{
		SaleItemID:         item.SaleItemID,
		MedicineID:         item.MedicineID,
		Quantity:           item.Quantity,
		UnitPrice:          item.UnitPrice.Round(2),
		DiscountPercentage: item.DiscountPercentage,
		TotalPrice:         item.TotalPrice.Round(2),
	}
}

// ToTimelineEntryResponse converts a domain.TimelineEntry to its DTO.
func ToTimelineEntryResponse(entry *domain.TimelineEntry) TimelineEntryResponse {
	return TimelineEntryResponse{
		Action:    string(entry.Action),
		Reason:    entry.Reason,
		Actor:     entry.Actor,
		Timestamp: entry.CreatedAt,
	}
}

// ToSaleResponse converts a domain.Sale (with whatever items/timeline are
// loaded) to SaleResponse DTO.
func ToSaleResponse(sale *domain.Sale) SaleResponse {
	resp := SaleResponse{
		SaleID:         sale.SaleID,
		SaleNumber:     sale.SaleNumber,
		PatientID:      sale.PatientID,
		PaymentMethod:  string(sale.PaymentMethod),
		Status:         string(sale.Status),
		Subtotal:       sale.Subtotal.Round(2),
		DiscountAmount: sale.DiscountAmount.Round(2),
		TaxAmount:      sale.TaxAmount.Round(2),
		GrandTotal:     sale.GrandTotal.Round(2),
		Notes:          sale.Notes,
		CreatedAt:      sale.CreatedAt,
		CreatedBy:      sale.CreatedBy,
	}
	if len(sale.Items) > 0 {
		resp.Items = make([]SaleItemResponse, len(sale.Items))
		for i := range sale.Items {
			resp.Items[i] = ToSaleItemResponse(&sale.Items[i])
		}
	}
	if len(sale.Timeline) > 0 {
		resp.Timeline = make([]TimelineEntryResponse, len(sale.Timeline))
		for i := range sale.Timeline {
			resp.Timeline[i] = ToTimelineEntryResponse(&sale.Timeline[i])
		}
	}
	return resp
}
