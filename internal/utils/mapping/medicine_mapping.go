package mapping

import (
	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	"github.com/pharmakeep/pharmacy_pos_app/internal/models"
)

// ToModelMedicine converts a domain Medicine to a model Medicine
func ToModelMedicine(d domain.Medicine) models.Medicine {
	return models.Medicine{
		MedicineID:    d.MedicineID,
		Name:          d.Name,
		GenericName:   d.GenericName,
		Manufacturer:  d.Manufacturer,
		Category:      d.Category,
		UnitPrice:     d.UnitPrice,
		StockQuantity: d.StockQuantity,
		ReorderLevel:  d.ReorderLevel,
		ExpiryDate:    d.ExpiryDate,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMedicine converts a model Medicine to a domain Medicine
func ToDomainMedicine(m models.Medicine) domain.Medicine {
	return domain.Medicine{
		MedicineID:    m.MedicineID,
		Name:          m.Name,
		GenericName:   m.GenericName,
		Manufacturer:  m.Manufacturer,
		Category:      m.Category,
		UnitPrice:     m.UnitPrice,
		StockQuantity: m.StockQuantity,
		ReorderLevel:  m.ReorderLevel,
		ExpiryDate:    m.ExpiryDate,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
