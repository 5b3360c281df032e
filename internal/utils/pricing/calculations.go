package pricing

import (
	"fmt"

	"github.com/pharmakeep/pharmacy_pos_app/internal/apperrors"
	"github.com/pharmakeep/pharmacy_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxBase selects which amount the tax rate is applied to. Observed
// behaviour taxed the pre-discount subtotal, so that is the default, but it
// is configurable rather than hard-coded.
type TaxBase string

const (
	TaxBasePreDiscount  TaxBase = "pre_discount"
	TaxBasePostDiscount TaxBase = "post_discount"
)

var oneHundred = decimal.NewFromInt(100)

// Line is one cart entry fed into the price calculation.
type Line struct {
	UnitPrice          decimal.Decimal
	Quantity           int64
	DiscountPercentage decimal.Decimal // Clamped to [0, 100]
}

// OrderDiscount is an order-level discount applied on top of per-line
// discounts. A percentage value is clamped to [0, 100]; a fixed value is
// clamped to [0, subtotal].
type OrderDiscount struct {
	Type  domain.DiscountType
	Value decimal.Decimal
}

// Result holds the computed totals. All values keep full decimal precision;
// rounding to 2 decimals happens only at the persistence/display boundary.
type Result struct {
	LineTotals     []decimal.Decimal // UnitPrice * Quantity per line, pre-discount
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal // Item discounts + order discount
	TaxAmount      decimal.Decimal
	GrandTotal     decimal.Decimal // max(0, Subtotal - DiscountAmount) + TaxAmount
}

// Calculate computes subtotal, total discount, tax and grand total for a set
// of cart lines. It has no side effects.
func Calculate(lines []Line, orderDiscount OrderDiscount, taxRate decimal.Decimal, taxBase TaxBase) (*Result, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: at least one line item is required", apperrors.ErrValidation)
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
	}

	subtotal := decimal.Zero
	itemDiscountTotal := decimal.Zero
	lineTotals := make([]decimal.Decimal, len(lines))

	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for line %d", apperrors.ErrValidation, i)
		}
		if line.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price must not be negative for line %d", apperrors.ErrValidation, i)
		}

		lineTotal := line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))
		lineTotals[i] = lineTotal
		subtotal = subtotal.Add(lineTotal)

		itemPct := clampPercentage(line.DiscountPercentage)
		itemDiscountTotal = itemDiscountTotal.Add(lineTotal.Mul(itemPct).Div(oneHundred))
	}

	orderDiscountAmount, err := resolveOrderDiscount(orderDiscount, subtotal)
	if err != nil {
		return nil, err
	}

	totalDiscount := itemDiscountTotal.Add(orderDiscountAmount)

	discounted := subtotal.Sub(totalDiscount)
	if discounted.IsNegative() {
		discounted = decimal.Zero
	}

	taxableBase := subtotal
	if taxBase == TaxBasePostDiscount {
		taxableBase = discounted
	}
	tax := taxableBase.Mul(taxRate).Div(oneHundred)

	return &Result{
		LineTotals:     lineTotals,
		Subtotal:       subtotal,
		DiscountAmount: totalDiscount,
		TaxAmount:      tax,
		GrandTotal:     discounted.Add(tax),
	}, nil
}

// resolveOrderDiscount turns the order-level discount into an absolute
// amount, clamped so it can never exceed the subtotal or go negative.
func resolveOrderDiscount(d OrderDiscount, subtotal decimal.Decimal) (decimal.Decimal, error) {
	if d.Value.IsZero() {
		return decimal.Zero, nil
	}

	switch d.Type {
	case domain.DiscountPercentage:
		return subtotal.Mul(clampPercentage(d.Value)).Div(oneHundred), nil
	case domain.DiscountFixed:
		amount := d.Value
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		if amount.GreaterThan(subtotal) {
			amount = subtotal
		}
		return amount, nil
	case "":
		// No discount type with a non-zero value is a caller mistake.
		return decimal.Zero, fmt.Errorf("%w: discount type is required when a discount value is given", apperrors.ErrValidation)
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown discount type %q", apperrors.ErrValidation, d.Type)
	}
}

func clampPercentage(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(oneHundred) {
		return oneHundred
	}
	return pct
}
