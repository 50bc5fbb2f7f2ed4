// Package pricing derives checkout totals from a cart subtotal. All
// arithmetic stays in decimals; rounding to two digits happens once, at
// the wire or display boundary.
package pricing

import "github.com/shopspring/decimal"

var (
	// Orders at or above this subtotal ship for free.
	FreeShippingThreshold = decimal.NewFromInt(50)
	// Flat fee below the free-shipping threshold.
	FlatShippingFee = decimal.NewFromInt(10)
	// Flat 10% rate, not jurisdiction-aware.
	TaxRate = decimal.NewFromFloat(0.10)
)

type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Compute prices a cart with the given subtotal. An empty cart always
// quotes zero shipping; the source system disagreed with itself between
// call sites here, and the zero rule won.
func Compute(subtotal decimal.Decimal) Quote {
	shipping := decimal.Zero
	if subtotal.IsPositive() && subtotal.LessThan(FreeShippingThreshold) {
		shipping = FlatShippingFee
	}

	tax := subtotal.Mul(TaxRate)

	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// FreeShippingRemaining reports how much more spend unlocks free
// shipping, or zero once unlocked (or with an empty cart).
func (q Quote) FreeShippingRemaining() decimal.Decimal {
	if !q.Subtotal.IsPositive() || q.Subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FreeShippingThreshold.Sub(q.Subtotal)
}

// FreeShippingProgress is the subtotal's fraction of the threshold,
// clamped to [0, 1] for display.
func (q Quote) FreeShippingProgress() decimal.Decimal {
	if !q.Subtotal.IsPositive() {
		return decimal.Zero
	}
	one := decimal.NewFromInt(1)
	progress := q.Subtotal.Div(FreeShippingThreshold)
	if progress.GreaterThan(one) {
		return one
	}
	return progress
}
