package mapping

import (
	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	"github.com/pharmakeep/pharmacy_pos_app/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:         d.SaleID,
		SaleNumber:     d.SaleNumber,
		PatientID:      d.PatientID,
		PaymentMethod:  models.PaymentMethod(d.PaymentMethod),
		Status:         models.SaleStatus(d.Status),
		Subtotal:       d.Subtotal,
		DiscountAmount: d.DiscountAmount,
		TaxAmount:      d.TaxAmount,
		GrandTotal:     d.GrandTotal,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:         m.SaleID,
		SaleNumber:     m.SaleNumber,
		PatientID:      m.PatientID,
		PaymentMethod:  domain.PaymentMethod(m.PaymentMethod),
		Status:         domain.SaleStatus(m.Status),
		Subtotal:       m.Subtotal,
		DiscountAmount: m.DiscountAmount,
		TaxAmount:      m.TaxAmount,
		GrandTotal:     m.GrandTotal,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSaleItem converts a domain SaleItem to a model SaleItem
func ToModelSaleItem(d domain.SaleItem) models.SaleItem {
	return models.SaleItem{
		SaleItemID:         d.SaleItemID,
		SaleID:             d.SaleID,
		MedicineID:         d.MedicineID,
		Quantity:           d.Quantity,
		UnitPrice:          d.UnitPrice,
		DiscountPercentage: d.DiscountPercentage,
		TotalPrice:         d.TotalPrice,
	}
}

// ToDomainSaleItem converts a model SaleItem to a domain SaleItem
func ToDomainSaleItem(m models.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		SaleItemID:         m.SaleItemID,
		SaleID:             m.SaleID,
		MedicineID:         m.MedicineID,
		Quantity:           m.Quantity,
		UnitPrice:          m.UnitPrice,
		DiscountPercentage: m.DiscountPercentage,
		TotalPrice:         m.TotalPrice,
	}
}

// ToDomainSaleItemSlice converts a slice of model SaleItems to domain SaleItems
func ToDomainSaleItemSlice(ms []models.SaleItem) []domain.SaleItem {
	ds := make([]domain.SaleItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleItem(m)
	}
	return ds
}

// ToModelTimelineEntry converts a domain TimelineEntry to a model TimelineEntry
func ToModelTimelineEntry(d domain.TimelineEntry) models.TimelineEntry {
	return models.TimelineEntry{
		EntryID:   d.EntryID,
		SaleID:    d.SaleID,
		Action:    models.TimelineAction(d.Action),
		Reason:    d.Reason,
		Actor:     d.Actor,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainTimelineEntry converts a model TimelineEntry to a domain TimelineEntry
func ToDomainTimelineEntry(m models.TimelineEntry) domain.TimelineEntry {
	return domain.TimelineEntry{
		EntryID:   m.EntryID,
		SaleID:    m.SaleID,
		Action:    domain.TimelineAction(m.Action),
		Reason:    m.Reason,
		Actor:     m.Actor,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainTimelineEntrySlice converts a slice of model TimelineEntries to domain TimelineEntries
func ToDomainTimelineEntrySlice(ms []models.TimelineEntry) []domain.TimelineEntry {
	ds := make([]domain.TimelineEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTimelineEntry(m)
	}
	return ds
}
