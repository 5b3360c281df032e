package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
)

func TestSaleStatusCanTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    domain.SaleStatus
		to      domain.SaleStatus
		allowed bool
	}{
		{"pending to completed", domain.SalePending, domain.SaleCompleted, true},
		{"pending to cancelled", domain.SalePending, domain.SaleCancelled, true},
		{"pending to refunded", domain.SalePending, domain.SaleRefunded, true},
		{"completed to cancelled", domain.SaleCompleted, domain.SaleCancelled, true},
		{"completed to refunded", domain.SaleCompleted, domain.SaleRefunded, true},
		{"completed back to pending", domain.SaleCompleted, domain.SalePending, false},
		{"cancelled is terminal", domain.SaleCancelled, domain.SaleCompleted, false},
		{"cancelled to refunded", domain.SaleCancelled, domain.SaleRefunded, false},
		{"refunded is terminal", domain.SaleRefunded, domain.SaleCancelled, false},
		{"no self transition", domain.SaleCompleted, domain.SaleCompleted, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestSaleStatusIsVoidable(t *testing.T) {
	assert.True(t, domain.SalePending.IsVoidable())
	assert.True(t, domain.SaleCompleted.IsVoidable())
	assert.False(t, domain.SaleCancelled.IsVoidable())
	assert.False(t, domain.SaleRefunded.IsVoidable())
}

func TestPaymentMethodIsValid(t *testing.T) {
	for _, pm := range []domain.PaymentMethod{
		domain.PaymentCash, domain.PaymentCard, domain.PaymentInsurance, domain.PaymentCredit,
	} {
		assert.True(t, pm.IsValid(), "expected %s to be valid", pm)
	}
	assert.False(t, domain.PaymentMethod("BARTER").IsValid())
	assert.False(t, domain.PaymentMethod("").IsValid())
}

func TestSaleStockChanges(t *testing.T) {
	sale := domain.Sale{
		Items: []domain.SaleItem{
			{MedicineID: "med-1", Quantity: 2},
			{MedicineID: "med-2", Quantity: 5},
		},
	}

	changes := sale.StockChanges()

	assert.Len(t, changes, 2)
	assert.Equal(t, domain.StockChange{MedicineID: "med-1", Quantity: 2}, changes[0])
	assert.Equal(t, domain.StockChange{MedicineID: "med-2", Quantity: 5}, changes[1])
}
